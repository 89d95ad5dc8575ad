package domain

import "time"

type InteractionType string

const (
	InteractionTypeCall          InteractionType = "call"
	InteractionTypeEmail         InteractionType = "email"
	InteractionTypeMeeting       InteractionType = "meeting"
	InteractionTypeText          InteractionType = "text"
	InteractionTypeShowroomVisit InteractionType = "showroom_visit"
	InteractionTypeTestDrive     InteractionType = "test_drive"
	InteractionTypeFollowUp      InteractionType = "follow_up"
	InteractionTypeService       InteractionType = "service"
	InteractionTypeOther         InteractionType = "other"
)

// Interaction references either a customer or a lead, never both. Logging one
// against a customer bumps that customer's LastContact.
type Interaction struct {
	ID         string          `json:"id"`
	CustomerID *string         `json:"customerId"`
	LeadID     *string         `json:"leadId"`
	Type       InteractionType `json:"type"`
	Notes      string          `json:"notes"`
	Timestamp  time.Time       `json:"timestamp"`
	CreatedAt  time.Time       `json:"createdAt"`
}
