package domain

import "time"

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

type LeadPriority string

const (
	LeadPriorityLow    LeadPriority = "low"
	LeadPriorityMedium LeadPriority = "medium"
	LeadPriorityHigh   LeadPriority = "high"
)

type Lead struct {
	ID                string       `json:"id"`
	FirstName         string       `json:"firstName"`
	LastName          string       `json:"lastName"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone"`
	InterestedVehicle string       `json:"interestedVehicle"`
	Budget            *float64     `json:"budget"`
	Status            LeadStatus   `json:"status"`
	Priority          LeadPriority `json:"priority"`
	Source            string       `json:"source"`
	FollowUpDate      *time.Time   `json:"followUpDate"`
	Notes             string       `json:"notes"`
	Tags              []string     `json:"tags"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         *time.Time   `json:"updatedAt"`
}
