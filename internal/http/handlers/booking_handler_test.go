package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"westudy/internal/domain"
	"westudy/internal/repositories"
	"westudy/internal/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

// withSession injects an authenticated session the way the auth middleware
// does, so handlers can be exercised without a real token.
func withSession(session domain.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", session)
		c.Next()
	}
}

func TestCreateBookingEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	prev := bookingSvc
	bookingSvc = services.BookingService{BookingRepo: repositories.BookingRepository{DB: db}, DB: db}
	defer func() { bookingSvc = prev }()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE listings SET is_available").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT price_per_month FROM listings").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"price_per_month"}).AddRow(900))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	r := gin.New()
	r.POST("/api/bookings", withSession(domain.Session{UserID: 42}), CreateBooking)

	body := `{"listingId":7,"checkIn":"2026-09-01","checkOut":"2026-09-16","guests":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("esperava 201, veio %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("corpo não é JSON: %v", err)
	}
	if resp["id"] != float64(11) || resp["totalPrice"] != float64(450) {
		t.Fatalf("reserva inesperada: %v", resp)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingConflictMapsTo409(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	prev := bookingSvc
	bookingSvc = services.BookingService{BookingRepo: repositories.BookingRepository{DB: db}, DB: db}
	defer func() { bookingSvc = prev }()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE listings SET is_available").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM listings").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectRollback()

	r := gin.New()
	r.POST("/api/bookings", withSession(domain.Session{UserID: 42}), CreateBooking)

	body := `{"listingId":7,"checkIn":"2026-09-01","checkOut":"2026-09-16","guests":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("esperava 409, veio %d (%s)", w.Code, w.Body.String())
	}
}

func TestCreateBookingRequiresSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/bookings", CreateBooking)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("sem sessão esperava 401, veio %d", w.Code)
	}
}

func TestUnlockBookingBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/bookings/:id/unlock", withSession(domain.Session{UserID: 42}), UnlockBooking)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/abc/unlock", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("id inválido esperava 400, veio %d", w.Code)
	}
}
