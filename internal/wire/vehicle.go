package wire

import (
	"time"

	"github.com/vfg2006/dealer-crm/internal/domain"
)

type VehicleRecord struct {
	ID          string     `json:"id"`
	Make        string     `json:"make"`
	Model       string     `json:"model"`
	Year        int        `json:"year"`
	Type        string     `json:"type"`
	VIN         string     `json:"vin"`
	Color       string     `json:"color"`
	Mileage     int        `json:"mileage"`
	Price       int        `json:"price"`
	Status      string     `json:"status"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func VehicleToWire(v *domain.Vehicle) *VehicleRecord {
	if v == nil {
		return nil
	}
	return &VehicleRecord{
		ID:          v.ID,
		Make:        v.Make,
		Model:       v.Model,
		Year:        v.Year,
		Type:        v.Type,
		VIN:         v.VIN,
		Color:       v.Color,
		Mileage:     v.Mileage,
		Price:       v.Price,
		Status:      string(v.Status),
		Description: v.Description,
		ImageURL:    v.ImageURL,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func VehicleToApp(rec *VehicleRecord) *domain.Vehicle {
	if rec == nil {
		return nil
	}
	return &domain.Vehicle{
		ID:          rec.ID,
		Make:        rec.Make,
		Model:       rec.Model,
		Year:        rec.Year,
		Type:        rec.Type,
		VIN:         rec.VIN,
		Color:       rec.Color,
		Mileage:     rec.Mileage,
		Price:       rec.Price,
		Status:      domain.VehicleStatus(rec.Status),
		Description: rec.Description,
		ImageURL:    rec.ImageURL,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}
