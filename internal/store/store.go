package store

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/dealer-crm/internal/domain"
	"github.com/vfg2006/dealer-crm/internal/gateway"
)

var (
	ErrEmptyNotes       = errors.New("interaction notes must not be empty")
	ErrAmbiguousSubject = errors.New("interaction must reference exactly one of customer or lead")
)

// Store serializes every dispatch under one mutex, so a batch of actions is
// applied as a unit and subscribers only ever observe batch boundaries.
type Store struct {
	mu    sync.Mutex
	state State

	customers    gateway.CustomerGateway
	leads        gateway.LeadGateway
	vehicles     gateway.VehicleGateway
	sales        gateway.SaleGateway
	interactions gateway.InteractionGateway

	seedFallback bool

	subID       int
	subscribers map[int]func(State)
}

type Option func(*Store)

// WithSeedFallback controls whether LoadAll substitutes the built-in sample
// datasets for collections that come back empty or degraded.
func WithSeedFallback(enabled bool) Option {
	return func(s *Store) {
		s.seedFallback = enabled
	}
}

func New(
	customers gateway.CustomerGateway,
	leads gateway.LeadGateway,
	vehicles gateway.VehicleGateway,
	sales gateway.SaleGateway,
	interactions gateway.InteractionGateway,
	opts ...Option,
) *Store {
	s := &Store{
		state:        NewState(),
		customers:    customers,
		leads:        leads,
		vehicles:     vehicles,
		sales:        sales,
		interactions: interactions,
		seedFallback: true,
		subscribers:  make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run after every dispatch batch with the
// resulting snapshot. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	s.subID++
	id := s.subID
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// dispatch applies the actions as one batch and notifies subscribers once.
func (s *Store) dispatch(actions ...Action) State {
	return s.dispatchFn(func(State) []Action { return actions })
}

// dispatchFn lets a caller derive the batch from the state it will be
// applied against, without a gap in between.
func (s *Store) dispatchFn(build func(State) []Action) State {
	s.mu.Lock()
	for _, action := range build(s.state) {
		s.state = Reduce(s.state, action)
	}
	snapshot := s.state
	subs := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return snapshot
}

// InteractionsForCustomer filters the current snapshot, which is already
// ordered newest-first.
func (s *Store) InteractionsForCustomer(customerID string) []*domain.Interaction {
	return filterInteractions(s.State().Interactions, func(i *domain.Interaction) bool {
		return i.CustomerID != nil && *i.CustomerID == customerID
	})
}

func (s *Store) InteractionsForLead(leadID string) []*domain.Interaction {
	return filterInteractions(s.State().Interactions, func(i *domain.Interaction) bool {
		return i.LeadID != nil && *i.LeadID == leadID
	})
}

func filterInteractions(items []*domain.Interaction, keep func(*domain.Interaction) bool) []*domain.Interaction {
	out := make([]*domain.Interaction, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func (s *Store) SetFilter(filter string) {
	s.dispatch(FilterSet{Filter: filter})
}

func (s *Store) SetSearchTerm(term string) {
	s.dispatch(SearchSet{Term: term})
}

func (s *Store) AddCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	s.dispatch(ModalLoadingSet{Loading: true})

	created, provenance := s.customers.Create(ctx, customer)
	if provenance == domain.LocalOnly {
		logrus.WithField("customer_id", created.ID).Warn("customer kept locally until reconciliation")
	}
	s.dispatch(CustomerAdded{Customer: created})
	return created, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, id string, customer *domain.Customer) (*domain.Customer, error) {
	s.dispatch(ModalLoadingSet{Loading: true})

	updated, provenance := s.customers.Update(ctx, id, customer)
	if provenance == domain.LocalOnly {
		logrus.WithField("customer_id", id).Warn("customer update kept locally until reconciliation")
	}
	s.dispatch(CustomerUpdated{Customer: updated})
	return updated, nil
}

// DeleteCustomer is pessimistic. A remote failure surfaces as an error and
// the record stays in the state, there is nothing to reconcile later.
func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	s.dispatch(LoadingSet{Loading: true})

	if err := s.customers.Delete(ctx, id); err != nil {
		s.dispatch(ErrorSet{Message: err.Error()})
		return err
	}
	s.dispatch(CustomerDeleted{ID: id})
	return nil
}

func (s *Store) AddLead(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	s.dispatch(ModalLoadingSet{Loading: true})

	created, provenance := s.leads.Create(ctx, lead)
	if provenance == domain.LocalOnly {
		logrus.WithField("lead_id", created.ID).Warn("lead kept locally until reconciliation")
	}
	s.dispatch(LeadAdded{Lead: created})
	return created, nil
}

func (s *Store) UpdateLead(ctx context.Context, id string, lead *domain.Lead) (*domain.Lead, error) {
	s.dispatch(ModalLoadingSet{Loading: true})

	updated, provenance := s.leads.Update(ctx, id, lead)
	if provenance == domain.LocalOnly {
		logrus.WithField("lead_id", id).Warn("lead update kept locally until reconciliation")
	}
	s.dispatch(LeadUpdated{Lead: updated})
	return updated, nil
}

func (s *Store) DeleteLead(ctx context.Context, id string) error {
	s.dispatch(LoadingSet{Loading: true})

	if err := s.leads.Delete(ctx, id); err != nil {
		s.dispatch(ErrorSet{Message: err.Error()})
		return err
	}
	s.dispatch(LeadDeleted{ID: id})
	return nil
}

func (s *Store) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	s.dispatch(ModalLoadingSet{Loading: true})

	created, provenance := s.vehicles.Create(ctx, vehicle)
	if provenance == domain.LocalOnly {
		logrus.WithField("vehicle_id", created.ID).Warn("vehicle kept locally until reconciliation")
	}
	s.dispatch(VehicleAdded{Vehicle: created})
	return created, nil
}

func (s *Store) UpdateVehicle(ctx context.Context, id string, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	s.dispatch(ModalLoadingSet{Loading: true})

	updated, provenance := s.vehicles.Update(ctx, id, vehicle)
	if provenance == domain.LocalOnly {
		logrus.WithField("vehicle_id", id).Warn("vehicle update kept locally until reconciliation")
	}
	s.dispatch(VehicleUpdated{Vehicle: updated})
	return updated, nil
}

func (s *Store) DeleteVehicle(ctx context.Context, id string) error {
	s.dispatch(LoadingSet{Loading: true})

	if err := s.vehicles.Delete(ctx, id); err != nil {
		s.dispatch(ErrorSet{Message: err.Error()})
		return err
	}
	s.dispatch(VehicleDeleted{ID: id})
	return nil
}

func (s *Store) AddSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	s.dispatch(ModalLoadingSet{Loading: true})

	created, provenance := s.sales.Create(ctx, sale)
	if provenance == domain.LocalOnly {
		logrus.WithField("sale_id", created.ID).Warn("sale kept locally until reconciliation")
	}
	s.dispatch(SaleAdded{Sale: created})
	return created, nil
}

// AddInteraction records an interaction and, when it targets a customer,
// bumps that customer's last contact in the same dispatch batch. Remotely
// the two writes already share a transaction, so neither side can observe
// the append without the bump.
func (s *Store) AddInteraction(ctx context.Context, interaction *domain.Interaction) (*domain.Interaction, error) {
	if err := validateInteraction(interaction); err != nil {
		s.dispatch(ErrorSet{Message: err.Error()})
		return nil, err
	}

	s.dispatch(ModalLoadingSet{Loading: true})

	stamped := *interaction
	now := time.Now().UTC()
	stamped.Timestamp = now

	created, provenance := s.interactions.Create(ctx, &stamped)
	if provenance == domain.LocalOnly {
		logrus.WithField("interaction_id", created.ID).Warn("interaction kept locally until reconciliation")
	}

	s.dispatchFn(func(state State) []Action {
		actions := []Action{InteractionAdded{Interaction: created}}
		if created.CustomerID == nil {
			return actions
		}
		for _, customer := range state.Customers {
			if customer.ID == *created.CustomerID {
				bumped := *customer
				contact := now
				bumped.LastContact = &contact
				actions = append(actions, CustomerUpdated{Customer: &bumped})
				break
			}
		}
		return actions
	})
	return created, nil
}

func validateInteraction(interaction *domain.Interaction) error {
	if interaction.Notes == "" {
		return ErrEmptyNotes
	}
	hasCustomer := interaction.CustomerID != nil && *interaction.CustomerID != ""
	hasLead := interaction.LeadID != nil && *interaction.LeadID != ""
	if hasCustomer == hasLead {
		return ErrAmbiguousSubject
	}
	return nil
}
