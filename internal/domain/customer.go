package domain

import "time"

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusProspect CustomerStatus = "prospect"
	CustomerStatusInactive CustomerStatus = "inactive"
)

type Customer struct {
	ID                string         `json:"id"`
	FirstName         string         `json:"firstName"`
	LastName          string         `json:"lastName"`
	Email             string         `json:"email"`
	Phone             string         `json:"phone"`
	Address           string         `json:"address"`
	City              string         `json:"city"`
	State             string         `json:"state"`
	ZipCode           string         `json:"zipCode"`
	InterestedVehicle string         `json:"interestedVehicle"`
	Budget            *float64       `json:"budget"`
	Status            CustomerStatus `json:"status"`
	LeadSource        string         `json:"leadSource"`
	Notes             string         `json:"notes"`
	Tags              []string       `json:"tags"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         *time.Time     `json:"updatedAt"`
	LastContact       *time.Time     `json:"lastContact"`
}
