// Package store is the single process-wide state container for the CRM. All
// five entity collections live here, every mutation goes through the typed
// action set in action.go and the pure reducer in reducer.go, and the UI
// layer consumes snapshots plus the action methods on Store — nothing else.
package store

import "github.com/vfg2006/dealer-crm/internal/domain"

// State is the full view state. The reducer never mutates a State in place;
// collections inside a returned snapshot must be treated as read-only.
type State struct {
	Customers    []*domain.Customer    `json:"customers"`
	Leads        []*domain.Lead        `json:"leads"`
	Vehicles     []*domain.Vehicle     `json:"vehicles"`
	Sales        []*domain.Sale        `json:"sales"`
	Interactions []*domain.Interaction `json:"interactions"`

	// Static vocabularies, shipped with the initial state and never mutated
	// by any action.
	Tags         []string `json:"tags"`
	LeadSources  []string `json:"leadSources"`
	VehicleTypes []string `json:"vehicleTypes"`

	// Transient UI fields, not persisted anywhere.
	Filter     string `json:"filter"`
	SearchTerm string `json:"searchTerm"`

	// ModalLoading is independent of Loading so a modal-driven write does
	// not blank out a page-level list that is mid-render.
	Loading      bool `json:"loading"`
	ModalLoading bool `json:"modalLoading"`

	// Error is the last surfaced error message, empty when there is none.
	Error string `json:"error"`
}

func NewState() State {
	return State{
		Customers:    []*domain.Customer{},
		Leads:        []*domain.Lead{},
		Vehicles:     []*domain.Vehicle{},
		Sales:        []*domain.Sale{},
		Interactions: []*domain.Interaction{},
		Tags:         domain.DefaultTags(),
		LeadSources:  domain.DefaultLeadSources(),
		VehicleTypes: domain.DefaultVehicleTypes(),
		Filter:       "all",
	}
}
