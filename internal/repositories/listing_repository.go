package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"westudy/internal/domain/models"
)

type ListingRepository struct {
	DB *sql.DB
}

const listingSelect = `
	SELECT
		l.id, l.title, l.description, l.price_per_month, l.address, l.lat, l.lng,
		l.guests, l.bedrooms, l.beds, l.baths, l.rating, l.review_count,
		l.is_available, l.approval_status, l.type, COALESCE(l.category_id, ''), l.created_at,
		l.cancellation_policy, l.house_rules, l.safety_and_property,
		un.id, un.name, un.acronym, un.city, un.neighborhood, un.lat, un.lng,
		h.id, h.name, COALESCE(h.avatar_url, '')
	FROM listings l
	JOIN universities un ON un.id = l.university_id
	JOIN users h ON h.id = l.host_id
`

// List returns one page of approved listings matching the filters, ordered by
// newest first so that offset pagination stays deterministic.
func (r ListingRepository) List(filters models.ListingFilters, limit, offset int) ([]models.Listing, error) {
	where := []string{"l.approval_status = 'approved'"}
	args := []any{}

	if term := strings.TrimSpace(filters.SearchTerm); term != "" {
		where = append(where, "(l.title LIKE ? OR l.address LIKE ? OR un.name LIKE ? OR un.city LIKE ?)")
		like := "%" + term + "%"
		args = append(args, like, like, like, like)
	}
	if filters.Category != "" {
		where = append(where, "l.category_id = ?")
		args = append(args, filters.Category)
	}
	if filters.University != "" {
		where = append(where, "un.acronym = ?")
		args = append(args, filters.University)
	}
	if filters.MinPrice != nil {
		where = append(where, "l.price_per_month >= ?")
		args = append(args, *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		where = append(where, "l.price_per_month <= ?")
		args = append(args, *filters.MaxPrice)
	}

	query := listingSelect + " WHERE " + strings.Join(where, " AND ") +
		" ORDER BY l.created_at DESC, l.id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachImages(list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID loads one listing with images and amenities, regardless of approval
// status (the service decides who may see unapproved rows).
func (r ListingRepository) GetByID(id int64) (models.Listing, error) {
	row := r.DB.QueryRow(listingSelect+" WHERE l.id = ?", id)
	l, err := scanListing(row)
	if err != nil {
		return models.Listing{}, err
	}

	page := []models.Listing{l}
	if err := r.attachImages(page); err != nil {
		return models.Listing{}, err
	}
	l = page[0]

	amenities, err := r.amenities(id)
	if err != nil {
		return models.Listing{}, err
	}
	l.Amenities = amenities
	return l, nil
}

// Create inserts a listing with its images and amenities.
func (r ListingRepository) Create(in models.ListingInput, hostID int64, approvalStatus string) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO listings
			(title, description, price_per_month, address, lat, lng,
			 guests, bedrooms, beds, baths, host_id, university_id, category_id,
			 is_available, approval_status, type,
			 cancellation_policy, house_rules, safety_and_property)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,1,?,?,?,?,?)`,
		in.Title, in.Description, in.PricePerMonth, in.Address, in.Lat, in.Lng,
		in.Guests, in.Bedrooms, in.Beds, in.Baths, hostID, in.UniversityID,
		nullIfEmpty(in.CategoryID), approvalStatus, in.Type,
		in.CancellationPolicy, in.HouseRules, in.SafetyAndProperty,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, url := range in.ImageURLs {
		if _, err := r.DB.Exec(`INSERT INTO listing_images (listing_id, url, alt, position) VALUES (?,?,?,?)`,
			id, url, in.Title, i); err != nil {
			return 0, err
		}
	}
	for _, a := range in.Amenities {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, err := r.DB.Exec(`INSERT INTO listing_amenities (listing_id, amenity) VALUES (?,?)`, id, a); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// ListPending returns listings awaiting moderation, oldest first.
func (r ListingRepository) ListPending() ([]models.Listing, error) {
	rows, err := r.DB.Query(listingSelect + " WHERE l.approval_status = 'pending' ORDER BY l.created_at ASC, l.id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachImages(list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetApproval flips moderation status. Returns sql.ErrNoRows when the listing
// does not exist.
func (r ListingRepository) SetApproval(id int64, status string) error {
	res, err := r.DB.Exec(`UPDATE listings SET approval_status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r ListingRepository) amenities(listingID int64) ([]string, error) {
	rows, err := r.DB.Query(`SELECT amenity FROM listing_amenities WHERE listing_id = ? ORDER BY amenity`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r ListingRepository) attachImages(list []models.Listing) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]string, 0, len(list))
	byID := map[int64]int{}
	for i, l := range list {
		ids = append(ids, fmt.Sprintf("%d", l.ID))
		byID[l.ID] = i
	}
	query := `SELECT listing_id, id, url, alt FROM listing_images WHERE listing_id IN (` +
		strings.Join(ids, ",") + `) ORDER BY listing_id, position`
	rows, err := r.DB.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var listingID int64
		var img models.ListingImage
		if err := rows.Scan(&listingID, &img.ID, &img.URL, &img.Alt); err != nil {
			return err
		}
		if i, ok := byID[listingID]; ok {
			list[i].Images = append(list[i].Images, img)
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (models.Listing, error) {
	var l models.Listing
	var host models.User
	var category sql.NullString
	var cancel, rules, safety sql.NullString
	err := row.Scan(
		&l.ID, &l.Title, &l.Description, &l.PricePerMonth, &l.Address, &l.Lat, &l.Lng,
		&l.Guests, &l.Bedrooms, &l.Beds, &l.Baths, &l.Rating, &l.ReviewCount,
		&l.IsAvailable, &l.ApprovalStatus, &l.Type, &category, &l.CreatedAt,
		&cancel, &rules, &safety,
		&l.University.ID, &l.University.Name, &l.University.Acronym,
		&l.University.City, &l.University.Neighborhood, &l.University.Lat, &l.University.Lng,
		&host.ID, &host.Name, &host.AvatarURL,
	)
	if err != nil {
		return models.Listing{}, err
	}
	l.CategoryID = category.String
	l.CancellationPolicy = cancel.String
	l.HouseRules = rules.String
	l.SafetyAndProperty = safety.String
	l.Host = &host
	l.Images = []models.ListingImage{}
	return l, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
