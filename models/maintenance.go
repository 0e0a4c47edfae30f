package models

import "time"

// Maintenance request statuses.
const (
	MaintenanceOpen       = "open"
	MaintenanceInProgress = "in_progress"
	MaintenanceResolved   = "resolved"
)

// MaintenanceRequest tracks a reported issue against a property.
type MaintenanceRequest struct {
	ID         string    `bson:"id" json:"id"`
	PropertyID string    `bson:"property_id" json:"propertyId"`
	ReporterID string    `bson:"reporter_id" json:"reporterId"`
	Title      string    `bson:"title" json:"title"`
	Details    string    `bson:"details,omitempty" json:"details,omitempty"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}
