// Package wire holds the storage-shape records for the five CRM collections
// and the pure transforms between them and the app-shape domain structs. The
// mapping is intentionally dumb: a fixed field rename in each direction, no
// validation, and nil in means nil out.
package wire

import (
	"time"

	"github.com/vfg2006/dealer-crm/internal/domain"
)

type CustomerRecord struct {
	ID                string     `json:"id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Address           string     `json:"address"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	ZipCode           string     `json:"zip_code"`
	InterestedVehicle string     `json:"interested_vehicle"`
	Budget            *float64   `json:"budget"`
	Status            string     `json:"status"`
	LeadSource        string     `json:"lead_source"`
	Notes             string     `json:"notes"`
	Tags              []string   `json:"tags"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
	LastContact       *time.Time `json:"last_contact"`
}

func CustomerToWire(c *domain.Customer) *CustomerRecord {
	if c == nil {
		return nil
	}
	return &CustomerRecord{
		ID:                c.ID,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Email:             c.Email,
		Phone:             c.Phone,
		Address:           c.Address,
		City:              c.City,
		State:             c.State,
		ZipCode:           c.ZipCode,
		InterestedVehicle: c.InterestedVehicle,
		Budget:            c.Budget,
		Status:            string(c.Status),
		LeadSource:        c.LeadSource,
		Notes:             c.Notes,
		Tags:              c.Tags,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		LastContact:       c.LastContact,
	}
}

func CustomerToApp(rec *CustomerRecord) *domain.Customer {
	if rec == nil {
		return nil
	}
	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Customer{
		ID:                rec.ID,
		FirstName:         rec.FirstName,
		LastName:          rec.LastName,
		Email:             rec.Email,
		Phone:             rec.Phone,
		Address:           rec.Address,
		City:              rec.City,
		State:             rec.State,
		ZipCode:           rec.ZipCode,
		InterestedVehicle: rec.InterestedVehicle,
		Budget:            rec.Budget,
		Status:            domain.CustomerStatus(rec.Status),
		LeadSource:        rec.LeadSource,
		Notes:             rec.Notes,
		Tags:              tags,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
		LastContact:       rec.LastContact,
	}
}
