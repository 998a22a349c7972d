package handlers

import (
	"net/http"

	"westudy/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var req models.BookingInput
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := bookingSvc.Book(session, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings
func GetBookings(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	bookings, err := bookingSvc.ListForUser(session)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// POST /api/bookings/:id/unlock
func UnlockBooking(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	msg, err := bookingSvc.Unlock(session, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msg,
	})
}

// GET /api/bookings/:id/voucher
func GetBookingVoucher(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	pdf, filename, err := docsSvc.GenerateVoucher(session, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
