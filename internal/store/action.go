package store

import "github.com/vfg2006/dealer-crm/internal/domain"

// Action is the closed set of state transitions understood by Reduce. Every
// concrete action is a plain struct carrying its payload; the set is sealed
// by the unexported marker method.
type Action interface {
	isAction()
}

type LoadingSet struct{ Loading bool }

type ModalLoadingSet struct{ Loading bool }

// ErrorSet stores the message and clears both loading flags, so a failed
// flow always lands the UI in a settled state.
type ErrorSet struct{ Message string }

type FilterSet struct{ Filter string }

type SearchSet struct{ Term string }

type CustomersSet struct{ Customers []*domain.Customer }

type CustomerAdded struct{ Customer *domain.Customer }

type CustomerUpdated struct{ Customer *domain.Customer }

type CustomerDeleted struct{ ID string }

type LeadsSet struct{ Leads []*domain.Lead }

type LeadAdded struct{ Lead *domain.Lead }

type LeadUpdated struct{ Lead *domain.Lead }

type LeadDeleted struct{ ID string }

type VehiclesSet struct{ Vehicles []*domain.Vehicle }

type VehicleAdded struct{ Vehicle *domain.Vehicle }

type VehicleUpdated struct{ Vehicle *domain.Vehicle }

type VehicleDeleted struct{ ID string }

type SalesSet struct{ Sales []*domain.Sale }

type SaleAdded struct{ Sale *domain.Sale }

type InteractionsSet struct{ Interactions []*domain.Interaction }

type InteractionAdded struct{ Interaction *domain.Interaction }

func (LoadingSet) isAction()       {}
func (ModalLoadingSet) isAction()  {}
func (ErrorSet) isAction()         {}
func (FilterSet) isAction()        {}
func (SearchSet) isAction()        {}
func (CustomersSet) isAction()     {}
func (CustomerAdded) isAction()    {}
func (CustomerUpdated) isAction()  {}
func (CustomerDeleted) isAction()  {}
func (LeadsSet) isAction()         {}
func (LeadAdded) isAction()        {}
func (LeadUpdated) isAction()      {}
func (LeadDeleted) isAction()      {}
func (VehiclesSet) isAction()      {}
func (VehicleAdded) isAction()     {}
func (VehicleUpdated) isAction()   {}
func (VehicleDeleted) isAction()   {}
func (SalesSet) isAction()         {}
func (SaleAdded) isAction()        {}
func (InteractionsSet) isAction()  {}
func (InteractionAdded) isAction() {}
