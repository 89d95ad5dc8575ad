package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusPending     VehicleStatus = "pending"
	VehicleStatusSold        VehicleStatus = "sold"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

type Vehicle struct {
	ID          string        `json:"id"`
	Make        string        `json:"make"`
	Model       string        `json:"model"`
	Year        int           `json:"year"`
	Type        string        `json:"type"`
	VIN         string        `json:"vin"`
	Color       string        `json:"color"`
	Mileage     int           `json:"mileage"`
	Price       int           `json:"price"`
	Status      VehicleStatus `json:"status"`
	Description string        `json:"description"`
	ImageURL    string        `json:"imageUrl"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   *time.Time    `json:"updatedAt"`
}
