package models

import "time"

// Listing statuses.
const (
	PropertyAvailable = "available"
	PropertyPending   = "pending"
	PropertySold      = "sold"
	PropertyRented    = "rented"
)

// Property represents a published real-estate listing.
type Property struct {
	ID          string    `bson:"id" json:"id"`
	AgentID     string    `bson:"agent_id" json:"agentId"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Address     string    `bson:"address" json:"address"`
	City        string    `bson:"city" json:"city"`
	Price       float64   `bson:"price" json:"price"`
	ListingType string    `bson:"listing_type" json:"listingType"` // "sale" or "rent"
	Status      string    `bson:"status" json:"status"`
	Bedrooms    int       `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms   int       `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	AreaSqm     float64   `bson:"area_sqm,omitempty" json:"areaSqm,omitempty"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"` // opaque URLs
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// PropertyFilter narrows a browse query. Zero values mean "no constraint".
type PropertyFilter struct {
	City        string  `form:"city" json:"city"`
	ListingType string  `form:"listingType" json:"listingType"`
	Status      string  `form:"status" json:"status"`
	MinPrice    float64 `form:"minPrice" json:"minPrice"`
	MaxPrice    float64 `form:"maxPrice" json:"maxPrice"`
	AgentID     string  `form:"agentId" json:"agentId"`
}
