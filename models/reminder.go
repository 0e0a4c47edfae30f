package models

// ReminderPayload is the queued message for an inspection reminder.
type ReminderPayload struct {
	ReminderID   string `json:"reminderId"`
	AccountID    string `json:"accountId"`
	InspectionID string `json:"inspectionId"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	FireDate     string `json:"fireDate"`
}
