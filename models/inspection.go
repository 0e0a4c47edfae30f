package models

import "time"

// Inspection statuses.
const (
	InspectionScheduled = "scheduled"
	InspectionCompleted = "completed"
	InspectionCancelled = "cancelled"
)

// Inspection represents a scheduled property viewing occupying a contiguous
// run of time rows on one day column of an agent's weekly grid.
type Inspection struct {
	ID         string    `bson:"id" json:"id"`
	PropertyID string    `bson:"property_id" json:"propertyId"`
	AgentID    string    `bson:"agent_id" json:"agentId"`
	ClientID   string    `bson:"client_id,omitempty" json:"clientId,omitempty"`
	Date       string    `bson:"date" json:"date"`            // "YYYY-MM-DD"
	Day        int       `bson:"day" json:"day"`              // day-of-week column, 1..7
	StartTime  string    `bson:"start_time" json:"startTime"` // display label, e.g. "2:00 pm"
	EndTime    string    `bson:"end_time" json:"endTime"`
	Category   string    `bson:"category,omitempty" json:"category,omitempty"` // e.g. "viewing", "valuation"
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}
