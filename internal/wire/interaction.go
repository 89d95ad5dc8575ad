package wire

import (
	"time"

	"github.com/vfg2006/dealer-crm/internal/domain"
)

type InteractionRecord struct {
	ID         string    `json:"id"`
	CustomerID *string   `json:"customer_id"`
	LeadID     *string   `json:"lead_id"`
	Type       string    `json:"type"`
	Notes      string    `json:"notes"`
	Timestamp  time.Time `json:"timestamp"`
	CreatedAt  time.Time `json:"created_at"`
}

func InteractionToWire(i *domain.Interaction) *InteractionRecord {
	if i == nil {
		return nil
	}
	return &InteractionRecord{
		ID:         i.ID,
		CustomerID: i.CustomerID,
		LeadID:     i.LeadID,
		Type:       string(i.Type),
		Notes:      i.Notes,
		Timestamp:  i.Timestamp,
		CreatedAt:  i.CreatedAt,
	}
}

func InteractionToApp(rec *InteractionRecord) *domain.Interaction {
	if rec == nil {
		return nil
	}
	return &domain.Interaction{
		ID:         rec.ID,
		CustomerID: rec.CustomerID,
		LeadID:     rec.LeadID,
		Type:       domain.InteractionType(rec.Type),
		Notes:      rec.Notes,
		Timestamp:  rec.Timestamp,
		CreatedAt:  rec.CreatedAt,
	}
}
