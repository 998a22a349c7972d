package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	intconfig "westudy/internal/config"
	"westudy/internal/domain"
	"westudy/internal/repositories"
	"westudy/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the booking voucher PDF.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
	Loader      func(int64) (voucherData, error)
}

type voucherData struct {
	BookingID  int64
	GuestName  string
	Title      string
	Address    string
	University string
	CheckIn    string
	CheckOut   string
	Guests     int
	TotalPrice int64
	Status     string
}

func (s DocsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// GenerateVoucher builds the PDF for a booking owned by the session user.
func (s DocsService) GenerateVoucher(session domain.Session, bookingID int64) ([]byte, string, error) {
	data, err := s.loadVoucherData(bookingID)
	if err == sql.ErrNoRows {
		return nil, "", domain.NotFoundError{Resource: "reserva"}
	}
	if err != nil {
		return nil, "", domain.InternalError{Msg: "erro ao gerar o comprovante", Err: err}
	}

	var owner int64
	if err := s.db().QueryRow(`SELECT user_id FROM bookings WHERE id = ?`, bookingID).Scan(&owner); err != nil {
		return nil, "", domain.InternalError{Msg: "erro ao gerar o comprovante", Err: err}
	}
	if owner != session.UserID {
		return nil, "", domain.ForbiddenError{Msg: "você não tem permissão para esta reserva"}
	}

	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", bookingID))
	return buildVoucherPDF(data)
}

func (s DocsService) loadVoucherData(bookingID int64) (voucherData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	var d voucherData
	err := s.db().QueryRow(`
		SELECT b.id, u.name, l.title, l.address, un.name,
		       DATE_FORMAT(b.check_in, '%Y-%m-%d'), DATE_FORMAT(b.check_out, '%Y-%m-%d'),
		       b.guests, b.total_price, b.status
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN listings l ON l.id = b.listing_id
		JOIN universities un ON un.id = l.university_id
		WHERE b.id = ?`, bookingID).Scan(
		&d.BookingID, &d.GuestName, &d.Title, &d.Address, &d.University,
		&d.CheckIn, &d.CheckOut, &d.Guests, &d.TotalPrice, &d.Status,
	)
	return d, err
}

func buildVoucherPDF(d voucherData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Comprovante de Reserva", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "COMPROVANTE DE RESERVA")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Hospede       : %s", safe(d.GuestName, "-")),
		fmt.Sprintf("Quarto        : %s", safe(d.Title, "-")),
		fmt.Sprintf("Endereco      : %s", safe(d.Address, "-")),
		fmt.Sprintf("Universidade  : %s", safe(d.University, "-")),
		fmt.Sprintf("Check-in      : %s", safe(d.CheckIn, "-")),
		fmt.Sprintf("Check-out     : %s", safe(d.CheckOut, "-")),
		fmt.Sprintf("Hospedes      : %d", d.Guests),
		fmt.Sprintf("Valor total   : %s", utils.FormatReal(d.TotalPrice)),
		fmt.Sprintf("Status        : %s", safe(d.Status, "-")),
		fmt.Sprintf("Codigo        : WS-%d", d.BookingID),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Apresente este comprovante no check-in. Em caso de duvida, fale com o anfitriao pelo chat do aplicativo.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("comprovante-reserva-%d.pdf", d.BookingID)
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
