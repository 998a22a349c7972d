package services

import (
	"database/sql"

	intconfig "westudy/internal/config"
	"westudy/internal/domain"
	"westudy/internal/domain/models"
	"westudy/internal/repositories"
)

// commissionPercent is the platform's cut used for the revenue cards.
const commissionPercent = 15

type AdminService struct {
	ListingRepo repositories.ListingRepository
	UserRepo    repositories.UserRepository
	DB          *sql.DB
}

func (s AdminService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AdminService) listings() repositories.ListingRepository {
	if s.ListingRepo.DB != nil {
		return s.ListingRepo
	}
	return repositories.ListingRepository{DB: s.db()}
}

func (s AdminService) users() repositories.UserRepository {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{DB: s.db()}
}

// DashboardStats aggregates the four dashboard cards in one call.
func (s AdminService) DashboardStats() (models.AdminDashboardStats, error) {
	db := s.db()
	var stats models.AdminDashboardStats

	var gross sql.NullInt64
	err := db.QueryRow(`
		SELECT COALESCE(SUM(total_price), 0)
		FROM bookings WHERE status IN (?, ?)`,
		models.BookingConfirmed, models.BookingCompleted).Scan(&gross)
	if err != nil {
		return stats, domain.InternalError{Msg: "erro ao calcular estatísticas", Err: err}
	}
	stats.TotalRevenue = gross.Int64 * commissionPercent / 100

	if err := db.QueryRow(`
		SELECT COUNT(*) FROM users
		WHERE created_at >= DATE_SUB(NOW(), INTERVAL 30 DAY)`).Scan(&stats.NewUsers); err != nil {
		return stats, domain.InternalError{Msg: "erro ao calcular estatísticas", Err: err}
	}

	if err := db.QueryRow(`
		SELECT COUNT(*) FROM listings WHERE approval_status = 'pending'`).Scan(&stats.PendingApprovals); err != nil {
		return stats, domain.InternalError{Msg: "erro ao calcular estatísticas", Err: err}
	}

	if err := db.QueryRow(`
		SELECT COUNT(*) FROM bookings WHERE status = ?`, models.BookingConfirmed).Scan(&stats.ActiveBookings); err != nil {
		return stats, domain.InternalError{Msg: "erro ao calcular estatísticas", Err: err}
	}

	return stats, nil
}

// MonthlyRevenue returns booking revenue aggregated by month for the chart,
// covering the last six months.
func (s AdminService) MonthlyRevenue() ([]models.MonthlyRevenue, error) {
	rows, err := s.db().Query(`
		SELECT DATE_FORMAT(booked_at, '%Y-%m') AS month, COALESCE(SUM(total_price), 0)
		FROM bookings
		WHERE status IN (?, ?)
		  AND booked_at >= DATE_SUB(NOW(), INTERVAL 6 MONTH)
		GROUP BY month
		ORDER BY month`,
		models.BookingConfirmed, models.BookingCompleted)
	if err != nil {
		return nil, domain.InternalError{Msg: "erro ao calcular receita", Err: err}
	}
	defer rows.Close()

	out := []models.MonthlyRevenue{}
	for rows.Next() {
		var m models.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Revenue); err != nil {
			return nil, domain.InternalError{Msg: "erro ao calcular receita", Err: err}
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "erro ao calcular receita", Err: err}
	}
	return out, nil
}

// PendingListings lists rooms awaiting moderation.
func (s AdminService) PendingListings() ([]models.Listing, error) {
	out, err := s.listings().ListPending()
	if err != nil {
		return nil, domain.InternalError{Msg: "erro ao buscar aprovações pendentes", Err: err}
	}
	return out, nil
}

// SetListingApproval approves or rejects a pending room.
func (s AdminService) SetListingApproval(id int64, approve bool) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id inválido"}
	}
	status := models.ApprovalApproved
	if !approve {
		status = models.ApprovalRejected
	}
	err := s.listings().SetApproval(id, status)
	if err == sql.ErrNoRows {
		return domain.NotFoundError{Resource: "quarto"}
	}
	if err != nil {
		return domain.InternalError{Msg: "erro ao moderar o quarto", Err: err}
	}
	return nil
}

// CreateListing registers a new room submitted through the admin add-room
// screen; admin submissions go live immediately.
func (s AdminService) CreateListing(session domain.Session, in models.ListingInput) (models.Listing, error) {
	if in.Title == "" {
		return models.Listing{}, domain.ValidationError{Field: "title", Msg: "título é obrigatório"}
	}
	if in.PricePerMonth <= 0 {
		return models.Listing{}, domain.ValidationError{Field: "pricePerMonth", Msg: "preço deve ser positivo"}
	}
	if in.UniversityID <= 0 {
		return models.Listing{}, domain.ValidationError{Field: "universityId", Msg: "universidade é obrigatória"}
	}
	if in.Guests < 1 {
		in.Guests = 1
	}

	id, err := s.listings().Create(in, session.UserID, models.ApprovalApproved)
	if err != nil {
		return models.Listing{}, domain.InternalError{Msg: "erro ao criar o quarto", Err: err}
	}

	created, err := s.listings().GetByID(id)
	if err != nil {
		return models.Listing{}, domain.InternalError{Msg: "erro ao criar o quarto", Err: err}
	}
	return created, nil
}

// Users lists all accounts for the user-management screen.
func (s AdminService) Users() ([]models.User, error) {
	out, err := s.users().List()
	if err != nil {
		return nil, domain.InternalError{Msg: "erro ao buscar usuários", Err: err}
	}
	return out, nil
}
