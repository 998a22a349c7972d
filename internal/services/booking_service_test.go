package services

import (
	"database/sql"
	"testing"
	"time"

	"westudy/internal/domain"
	"westudy/internal/domain/models"
	"westudy/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestBookHappyPathProratesPrice(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE listings SET is_available").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT price_per_month FROM listings").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"price_per_month"}).AddRow(900))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(7), int64(42), "2026-09-01", "2026-09-16", int64(450), models.BookingConfirmed, 1).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}, DB: db}
	b, err := svc.Book(domain.Session{UserID: 42}, models.BookingInput{
		ListingID: 7,
		CheckIn:   "2026-09-01",
		CheckOut:  "2026-09-16",
		Guests:    1,
	})
	if err != nil {
		t.Fatalf("reserva deveria passar: %v", err)
	}
	if b.ID != 11 {
		t.Fatalf("id esperado 11, veio %d", b.ID)
	}
	// 15 noites de um mês a R$900: metade do aluguel
	if b.TotalPrice != 450 {
		t.Fatalf("preço esperado 450, veio %d", b.TotalPrice)
	}
	if b.Status != models.BookingConfirmed {
		t.Fatalf("status esperado %q, veio %q", models.BookingConfirmed, b.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookUnavailableListingConflicts(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE listings SET is_available").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM listings").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectRollback()

	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}, DB: db}
	_, err := svc.Book(domain.Session{UserID: 42}, models.BookingInput{
		ListingID: 7,
		CheckIn:   "2026-09-01",
		CheckOut:  "2026-09-10",
		Guests:    1,
	})
	if !domain.IsConflict(err) {
		t.Fatalf("esperava conflito para quarto já reservado, veio %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookMissingListingNotFound(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE listings SET is_available").WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM listings").WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectRollback()

	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}, DB: db}
	_, err := svc.Book(domain.Session{UserID: 42}, models.BookingInput{
		ListingID: 999,
		CheckIn:   "2026-09-01",
		CheckOut:  "2026-09-10",
		Guests:    1,
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("esperava not found para quarto inexistente, veio %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookValidatesInputBeforeTouchingDB(t *testing.T) {
	db, _ := newMock(t)
	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}, DB: db}
	session := domain.Session{UserID: 42}

	cases := []struct {
		name string
		in   models.BookingInput
	}{
		{"id zerado", models.BookingInput{CheckIn: "2026-09-01", CheckOut: "2026-09-10", Guests: 1}},
		{"check-in inválido", models.BookingInput{ListingID: 1, CheckIn: "01/09/2026", CheckOut: "2026-09-10", Guests: 1}},
		{"check-out antes do check-in", models.BookingInput{ListingID: 1, CheckIn: "2026-09-10", CheckOut: "2026-09-01", Guests: 1}},
		{"datas iguais", models.BookingInput{ListingID: 1, CheckIn: "2026-09-01", CheckOut: "2026-09-01", Guests: 1}},
		{"sem hóspedes", models.BookingInput{ListingID: 1, CheckIn: "2026-09-01", CheckOut: "2026-09-10"}},
	}
	for _, tc := range cases {
		if _, err := svc.Book(session, tc.in); !domain.IsValidation(err) {
			t.Fatalf("%s: esperava erro de validação, veio %v", tc.name, err)
		}
	}
}

func TestUnlockGates(t *testing.T) {
	db, mock := newMock(t)
	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}, DB: db}

	bookingRow := func(userID int64, status string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "listing_id", "user_id", "check_in", "check_out",
			"total_price", "status", "guests", "booked_at",
		}).AddRow(5, 7, userID, "2026-09-01", "2026-09-10", 450, status, 1, time.Now())
	}

	// dono com reserva confirmada destranca
	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(int64(5)).
		WillReturnRows(bookingRow(42, models.BookingConfirmed))
	msg, err := svc.Unlock(domain.Session{UserID: 42}, 5)
	if err != nil {
		t.Fatalf("destrancar deveria passar: %v", err)
	}
	if msg == "" {
		t.Fatalf("mensagem de sucesso vazia")
	}

	// outro usuário é barrado
	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(int64(5)).
		WillReturnRows(bookingRow(42, models.BookingConfirmed))
	if _, err := svc.Unlock(domain.Session{UserID: 99}, 5); !domain.IsForbidden(err) {
		t.Fatalf("não-dono deveria ser barrado, veio %v", err)
	}

	// reserva cancelada não destranca
	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(int64(5)).
		WillReturnRows(bookingRow(42, models.BookingCancelled))
	if _, err := svc.Unlock(domain.Session{UserID: 42}, 5); !domain.IsForbidden(err) {
		t.Fatalf("status errado deveria ser barrado, veio %v", err)
	}

	// reserva inexistente
	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)
	if _, err := svc.Unlock(domain.Session{UserID: 42}, 404); !domain.IsNotFound(err) {
		t.Fatalf("reserva inexistente deveria dar not found, veio %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
