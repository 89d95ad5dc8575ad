package domain

import "time"

type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// Sale keeps denormalized copies of the customer name and vehicle details as
// captured at sale time. They are never re-derived from the referenced rows.
type Sale struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customerId"`
	VehicleID      string     `json:"vehicleId"`
	CustomerName   string     `json:"customerName"`
	VehicleDetails string     `json:"vehicleDetails"`
	SalePrice      float64    `json:"salePrice"`
	SaleDate       time.Time  `json:"saleDate"`
	Status         SaleStatus `json:"status"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"createdAt"`
}
