package store

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/dealer-crm/internal/domain"
	"github.com/vfg2006/dealer-crm/internal/seed"
)

// LoadAll fetches the five collections concurrently and lands them in the
// state as a single batch. With seed fallback on, any collection that comes
// back degraded or simply empty is replaced by the built-in sample dataset,
// so a fresh or offline install still boots into a populated UI.
func (s *Store) LoadAll(ctx context.Context) error {
	s.dispatch(LoadingSet{Loading: true})

	var (
		customers    []*domain.Customer
		leads        []*domain.Lead
		vehicles     []*domain.Vehicle
		sales        []*domain.Sale
		interactions []*domain.Interaction

		customersDegraded    bool
		leadsDegraded        bool
		vehiclesDegraded     bool
		salesDegraded        bool
		interactionsDegraded bool
	)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		customers, customersDegraded = s.customers.ListAll(ctx)
	}()
	go func() {
		defer wg.Done()
		leads, leadsDegraded = s.leads.ListAll(ctx)
	}()
	go func() {
		defer wg.Done()
		vehicles, vehiclesDegraded = s.vehicles.ListAll(ctx)
	}()
	go func() {
		defer wg.Done()
		sales, salesDegraded = s.sales.ListAll(ctx)
	}()
	go func() {
		defer wg.Done()
		interactions, interactionsDegraded = s.interactions.ListAll(ctx)
	}()
	wg.Wait()

	if s.seedFallback {
		now := time.Now().UTC()
		if customersDegraded || len(customers) == 0 {
			logrus.WithField("entity", "customers").Info("falling back to sample dataset")
			customers = seed.Customers(now)
		}
		if leadsDegraded || len(leads) == 0 {
			logrus.WithField("entity", "leads").Info("falling back to sample dataset")
			leads = seed.Leads(now)
		}
		if vehiclesDegraded || len(vehicles) == 0 {
			logrus.WithField("entity", "vehicles").Info("falling back to sample dataset")
			vehicles = seed.Vehicles(now)
		}
		if salesDegraded || len(sales) == 0 {
			logrus.WithField("entity", "sales").Info("falling back to sample dataset")
			sales = seed.Sales(now)
		}
		if interactionsDegraded || len(interactions) == 0 {
			logrus.WithField("entity", "interactions").Info("falling back to sample dataset")
			interactions = seed.Interactions(now)
		}
	}

	s.dispatch(
		CustomersSet{Customers: customers},
		LeadsSet{Leads: leads},
		VehiclesSet{Vehicles: vehicles},
		SalesSet{Sales: sales},
		InteractionsSet{Interactions: interactions},
	)
	return nil
}
