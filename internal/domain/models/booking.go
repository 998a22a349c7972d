package models

import "time"

// Booking statuses keep the values the mobile clients already display.
const (
	BookingConfirmed = "Confirmada"
	BookingPending   = "Pendente"
	BookingCancelled = "Cancelada"
	BookingCompleted = "Concluída"
)

// Booking is a reservation against a listing for a date range.
type Booking struct {
	ID         int64     `json:"id"`
	ListingID  int64     `json:"listingId"`
	Listing    *Listing  `json:"listing,omitempty"`
	UserID     int64     `json:"userId"`
	CheckIn    string    `json:"checkInDate"`  // YYYY-MM-DD
	CheckOut   string    `json:"checkOutDate"` // YYYY-MM-DD
	TotalPrice int64     `json:"totalPrice"`   // whole reais
	Status     string    `json:"status"`
	Guests     int       `json:"guests"`
	BookedAt   time.Time `json:"bookedAt"`
}

// BookingInput is the payload accepted by the booking endpoint.
type BookingInput struct {
	ListingID int64  `json:"listingId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Guests    int    `json:"guests"`
}
