package models

import "time"

// Feed post kinds.
const (
	FeedListingPublished    = "listing_published"
	FeedInspectionBooked    = "inspection_booked"
	FeedMaintenanceResolved = "maintenance_resolved"
)

// FeedPost is one entry on an agent's timeline.
type FeedPost struct {
	ID        string    `bson:"id" json:"id"`
	AgentID   string    `bson:"agent_id" json:"agentId"`
	Kind      string    `bson:"kind" json:"kind"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body,omitempty" json:"body,omitempty"`
	RefID     string    `bson:"ref_id,omitempty" json:"refId,omitempty"` // related listing/inspection/request
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
