package repositories

import (
	"database/sql"

	"westudy/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

// ReserveListing is the atomic check-and-set on availability: it only flips
// the flag when the listing is still available. Returns the affected row
// count so the caller can distinguish "taken" from "missing".
func (r BookingRepository) ReserveListing(tx *sql.Tx, listingID int64) (int64, error) {
	res, err := tx.Exec(`UPDATE listings SET is_available = 0 WHERE id = ? AND is_available = 1`, listingID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListingExists reports whether the listing row exists at all, used to pick
// between a 404 and a conflict after a failed reserve.
func (r BookingRepository) ListingExists(tx *sql.Tx, listingID int64) (bool, error) {
	var one int
	err := tx.QueryRow(`SELECT 1 FROM listings WHERE id = ? LIMIT 1`, listingID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert appends the booking row inside the reservation transaction.
func (r BookingRepository) Insert(tx *sql.Tx, b models.Booking) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO bookings (listing_id, user_id, check_in, check_out, total_price, status, guests)
		VALUES (?,?,?,?,?,?,?)`,
		b.ListingID, b.UserID, b.CheckIn, b.CheckOut, b.TotalPrice, b.Status, b.Guests,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID loads booking ownership and status data for the unlock and voucher
// endpoints.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	var b models.Booking
	err := r.DB.QueryRow(`
		SELECT id, listing_id, user_id, DATE_FORMAT(check_in, '%Y-%m-%d'),
		       DATE_FORMAT(check_out, '%Y-%m-%d'), total_price, status, guests, booked_at
		FROM bookings WHERE id = ?`, id).Scan(
		&b.ID, &b.ListingID, &b.UserID, &b.CheckIn, &b.CheckOut,
		&b.TotalPrice, &b.Status, &b.Guests, &b.BookedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

// ListByUser returns the caller's bookings with the listing summary embedded,
// newest check-in first.
func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	rows, err := r.DB.Query(`
		SELECT b.id, b.listing_id, b.user_id, DATE_FORMAT(b.check_in, '%Y-%m-%d'),
		       DATE_FORMAT(b.check_out, '%Y-%m-%d'), b.total_price, b.status, b.guests, b.booked_at,
		       l.title, l.address, l.price_per_month, l.type,
		       un.name, un.acronym, un.city
		FROM bookings b
		JOIN listings l ON l.id = b.listing_id
		JOIN universities un ON un.id = l.university_id
		WHERE b.user_id = ?
		ORDER BY b.check_in DESC, b.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		var l models.Listing
		if err := rows.Scan(
			&b.ID, &b.ListingID, &b.UserID, &b.CheckIn, &b.CheckOut,
			&b.TotalPrice, &b.Status, &b.Guests, &b.BookedAt,
			&l.Title, &l.Address, &l.PricePerMonth, &l.Type,
			&l.University.Name, &l.University.Acronym, &l.University.City,
		); err != nil {
			return nil, err
		}
		l.ID = b.ListingID
		l.Images = []models.ListingImage{}
		b.Listing = &l
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// attach listing images so booking cards can render covers
	imgRepo := ListingRepository{DB: r.DB}
	listings := make([]models.Listing, 0, len(out))
	for _, b := range out {
		listings = append(listings, *b.Listing)
	}
	if err := imgRepo.attachImages(listings); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Listing = &listings[i]
	}
	return out, nil
}
