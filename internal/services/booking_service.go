package services

import (
	"database/sql"
	"fmt"

	intconfig "westudy/internal/config"
	"westudy/internal/domain"
	"westudy/internal/domain/models"
	"westudy/internal/repositories"
	"westudy/internal/utils"
)

type BookingService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

// Book reserves a listing for the caller. Availability flip and booking
// insert run in one transaction; the flip is a compare-and-swap so two
// simultaneous requests for the same listing cannot both succeed.
func (s BookingService) Book(session domain.Session, in models.BookingInput) (models.Booking, error) {
	if in.ListingID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "listingId", Msg: "id inválido"}
	}
	checkIn, err := utils.ParseDate(in.CheckIn)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "checkIn", Msg: "data inválida (use YYYY-MM-DD)"}
	}
	checkOut, err := utils.ParseDate(in.CheckOut)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "checkOut", Msg: "data inválida (use YYYY-MM-DD)"}
	}
	if !checkOut.After(checkIn) {
		return models.Booking{}, domain.ValidationError{Field: "checkOut", Msg: "check-out deve ser depois do check-in"}
	}
	if in.Guests < 1 {
		return models.Booking{}, domain.ValidationError{Field: "guests", Msg: "informe ao menos um hóspede"}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "erro ao criar a reserva", Err: err}
	}
	defer tx.Rollback()

	repo := s.bookings()
	affected, err := repo.ReserveListing(tx, in.ListingID)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "erro ao criar a reserva", Err: err}
	}
	if affected == 0 {
		exists, err := repo.ListingExists(tx, in.ListingID)
		if err != nil {
			return models.Booking{}, domain.InternalError{Msg: "erro ao criar a reserva", Err: err}
		}
		if !exists {
			return models.Booking{}, domain.NotFoundError{Resource: "quarto"}
		}
		return models.Booking{}, domain.ConflictError{Resource: "quarto", Msg: "este quarto não está mais disponível"}
	}

	var pricePerMonth int64
	if err := tx.QueryRow(`SELECT price_per_month FROM listings WHERE id = ?`, in.ListingID).Scan(&pricePerMonth); err != nil {
		return models.Booking{}, domain.InternalError{Msg: "erro ao criar a reserva", Err: err}
	}

	nights := int64(checkOut.Sub(checkIn).Hours() / 24)
	booking := models.Booking{
		ListingID:  in.ListingID,
		UserID:     session.UserID,
		CheckIn:    utils.FormatDate(checkIn),
		CheckOut:   utils.FormatDate(checkOut),
		TotalPrice: utils.ProrateMonthly(pricePerMonth, nights),
		Status:     models.BookingConfirmed,
		Guests:     in.Guests,
	}

	id, err := repo.Insert(tx, booking)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "erro ao criar a reserva", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Msg: "erro ao criar a reserva", Err: err}
	}

	booking.ID = id
	booking.BookedAt = utils.NowUTC()
	return booking, nil
}

// ListForUser returns the caller's booking history.
func (s BookingService) ListForUser(session domain.Session) ([]models.Booking, error) {
	out, err := s.bookings().ListByUser(session.UserID)
	if err != nil {
		return nil, domain.InternalError{Msg: "erro ao buscar reservas", Err: err}
	}
	return out, nil
}

// Unlock performs the ownership and status gate for the door-unlock action.
// The hardware side is an external collaborator; a passing gate reports
// success.
func (s BookingService) Unlock(session domain.Session, bookingID int64) (string, error) {
	if bookingID <= 0 {
		return "", domain.ValidationError{Field: "id", Msg: "id da reserva é obrigatório"}
	}
	b, err := s.bookings().GetByID(bookingID)
	if err == sql.ErrNoRows {
		return "", domain.NotFoundError{Resource: "reserva"}
	}
	if err != nil {
		return "", domain.InternalError{Msg: "erro ao destrancar a porta", Err: err}
	}
	if b.UserID != session.UserID {
		return "", domain.ForbiddenError{Msg: "você não tem permissão para esta reserva"}
	}
	if b.Status != models.BookingConfirmed {
		return "", domain.ForbiddenError{Msg: fmt.Sprintf("não é possível destrancar uma reserva com status: %s", b.Status)}
	}

	utils.LogEvent("", "bookings", "unlock", fmt.Sprintf("user_id=%d booking_id=%d", session.UserID, bookingID))
	return fmt.Sprintf("Porta para a reserva %d destrancada com sucesso.", bookingID), nil
}
