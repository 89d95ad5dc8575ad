package wire

import (
	"time"

	"github.com/vfg2006/dealer-crm/internal/domain"
)

type LeadRecord struct {
	ID                string     `json:"id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	InterestedVehicle string     `json:"interested_vehicle"`
	Budget            *float64   `json:"budget"`
	Status            string     `json:"status"`
	Priority          string     `json:"priority"`
	Source            string     `json:"source"`
	FollowUpDate      *time.Time `json:"follow_up_date"`
	Notes             string     `json:"notes"`
	Tags              []string   `json:"tags"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}

func LeadToWire(l *domain.Lead) *LeadRecord {
	if l == nil {
		return nil
	}
	return &LeadRecord{
		ID:                l.ID,
		FirstName:         l.FirstName,
		LastName:          l.LastName,
		Email:             l.Email,
		Phone:             l.Phone,
		InterestedVehicle: l.InterestedVehicle,
		Budget:            l.Budget,
		Status:            string(l.Status),
		Priority:          string(l.Priority),
		Source:            l.Source,
		FollowUpDate:      l.FollowUpDate,
		Notes:             l.Notes,
		Tags:              l.Tags,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

func LeadToApp(rec *LeadRecord) *domain.Lead {
	if rec == nil {
		return nil
	}
	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Lead{
		ID:                rec.ID,
		FirstName:         rec.FirstName,
		LastName:          rec.LastName,
		Email:             rec.Email,
		Phone:             rec.Phone,
		InterestedVehicle: rec.InterestedVehicle,
		Budget:            rec.Budget,
		Status:            domain.LeadStatus(rec.Status),
		Priority:          domain.LeadPriority(rec.Priority),
		Source:            rec.Source,
		FollowUpDate:      rec.FollowUpDate,
		Notes:             rec.Notes,
		Tags:              tags,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}
}
