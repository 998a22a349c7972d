package handlers

import (
	"net/http"
	"strconv"

	"westudy/internal/domain/models"
	"westudy/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/listings?page=1&limit=10&searchTerm=usp&category=kitnet&university=USP&minPrice=500&maxPrice=1500
func GetListings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filters := models.ListingFilters{
		SearchTerm: c.Query("searchTerm"),
		Category:   utils.TrimOrEmpty(c.Query("category")),
		University: utils.TrimOrEmpty(c.Query("university")),
	}
	if v := c.Query("minPrice"); v != "" {
		if p, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.MinPrice = &p
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if p, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.MaxPrice = &p
		}
	}

	list, err := listingSvc.List(filters, page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/listings/:id
func GetListingByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	listing, err := listingSvc.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// GET /api/categories
func GetCategories(c *gin.Context) {
	out, err := listingSvc.Categories()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/universities
func GetUniversities(c *gin.Context) {
	out, err := listingSvc.Universities()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
