package handlers

import (
	"net/http"

	"westudy/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/stats
func GetAdminStats(c *gin.Context) {
	stats, err := adminSvc.DashboardStats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/admin/revenue/monthly
func GetMonthlyRevenue(c *gin.Context) {
	data, err := adminSvc.MonthlyRevenue()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// GET /api/admin/listings/pending
func GetPendingListings(c *gin.Context) {
	list, err := adminSvc.PendingListings()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// PUT /api/admin/listings/:id/approve
func ApproveListing(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := adminSvc.SetListingApproval(id, true); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quarto aprovado"})
}

// PUT /api/admin/listings/:id/reject
func RejectListing(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := adminSvc.SetListingApproval(id, false); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quarto rejeitado"})
}

// POST /api/admin/listings
func CreateListing(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var req models.ListingInput
	if !BindJSONOrError(c, &req) {
		return
	}

	listing, err := adminSvc.CreateListing(session, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}

// GET /api/admin/users
func GetUsers(c *gin.Context) {
	users, err := adminSvc.Users()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
