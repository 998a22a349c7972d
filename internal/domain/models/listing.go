package models

import "time"

// Listing approval states for the admin moderation flow.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

type ListingImage struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type UniversityArea struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Acronym      string  `json:"acronym"`
	City         string  `json:"city"`
	Neighborhood string  `json:"neighborhood"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

type Category struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Listing is a rentable room/unit record.
type Listing struct {
	ID                int64          `json:"id"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Images            []ListingImage `json:"images"`
	PricePerMonth     int64          `json:"pricePerMonth"` // whole reais
	Address           string         `json:"address"`
	Lat               float64        `json:"lat"`
	Lng               float64        `json:"lng"`
	Guests            int            `json:"guests"`
	Bedrooms          int            `json:"bedrooms"`
	Beds              int            `json:"beds"`
	Baths             int            `json:"baths"`
	Amenities         []string       `json:"amenities,omitempty"`
	Rating            float64        `json:"rating"`
	ReviewCount       int            `json:"reviews"`
	Host              *User          `json:"host,omitempty"`
	University        UniversityArea `json:"university"`
	IsAvailable       bool           `json:"isAvailable"`
	Type              string         `json:"type"`
	CategoryID        string         `json:"category,omitempty"`
	ApprovalStatus    string         `json:"approvalStatus,omitempty"`
	CancellationPolicy string        `json:"cancellationPolicy,omitempty"`
	HouseRules        string         `json:"houseRules,omitempty"`
	SafetyAndProperty string         `json:"safetyAndProperty,omitempty"`
	CreatedAt         time.Time      `json:"createdAt,omitempty"`
}

// ListingFilters is the request-scoped query object for the explore surface.
type ListingFilters struct {
	SearchTerm string
	Category   string
	University string
	MinPrice   *int64
	MaxPrice   *int64
}

// ListingInput is the admin add-room payload.
type ListingInput struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	PricePerMonth      int64    `json:"pricePerMonth"`
	Address            string   `json:"address"`
	Lat                float64  `json:"lat"`
	Lng                float64  `json:"lng"`
	Guests             int      `json:"guests"`
	Bedrooms           int      `json:"bedrooms"`
	Beds               int      `json:"beds"`
	Baths              int      `json:"baths"`
	Amenities          []string `json:"amenities"`
	UniversityID       int64    `json:"universityId"`
	CategoryID         string   `json:"category"`
	Type               string   `json:"type"`
	ImageURLs          []string `json:"imageUrls"`
	CancellationPolicy string   `json:"cancellationPolicy"`
	HouseRules         string   `json:"houseRules"`
	SafetyAndProperty  string   `json:"safetyAndProperty"`
}
