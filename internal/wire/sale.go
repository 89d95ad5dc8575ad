package wire

import (
	"time"

	"github.com/vfg2006/dealer-crm/internal/domain"
)

type SaleRecord struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	VehicleID      string    `json:"vehicle_id"`
	CustomerName   string    `json:"customer_name"`
	VehicleDetails string    `json:"vehicle_details"`
	SalePrice      float64   `json:"sale_price"`
	SaleDate       time.Time `json:"sale_date"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

func SaleToWire(s *domain.Sale) *SaleRecord {
	if s == nil {
		return nil
	}
	return &SaleRecord{
		ID:             s.ID,
		CustomerID:     s.CustomerID,
		VehicleID:      s.VehicleID,
		CustomerName:   s.CustomerName,
		VehicleDetails: s.VehicleDetails,
		SalePrice:      s.SalePrice,
		SaleDate:       s.SaleDate,
		Status:         string(s.Status),
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt,
	}
}

func SaleToApp(rec *SaleRecord) *domain.Sale {
	if rec == nil {
		return nil
	}
	return &domain.Sale{
		ID:             rec.ID,
		CustomerID:     rec.CustomerID,
		VehicleID:      rec.VehicleID,
		CustomerName:   rec.CustomerName,
		VehicleDetails: rec.VehicleDetails,
		SalePrice:      rec.SalePrice,
		SaleDate:       rec.SaleDate,
		Status:         domain.SaleStatus(rec.Status),
		Notes:          rec.Notes,
		CreatedAt:      rec.CreatedAt,
	}
}
