package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/dealer-crm/internal/domain"
	"github.com/vfg2006/dealer-crm/internal/seed"
)

func expectListAll(m storeMocks, customers []*domain.Customer, customersDegraded bool) {
	m.customers.EXPECT().ListAll(gomock.Any()).Return(customers, customersDegraded)
	m.leads.EXPECT().ListAll(gomock.Any()).Return([]*domain.Lead{}, false)
	m.vehicles.EXPECT().ListAll(gomock.Any()).Return([]*domain.Vehicle{}, false)
	m.sales.EXPECT().ListAll(gomock.Any()).Return([]*domain.Sale{}, false)
	m.interactions.EXPECT().ListAll(gomock.Any()).Return([]*domain.Interaction{}, false)
}

func TestLoadAll_EmptyRemoteFallsBackToSeeds(t *testing.T) {
	s, m := newTestStore(t)
	expectListAll(m, []*domain.Customer{}, false)

	assert.NoError(t, s.LoadAll(context.Background()))

	now := time.Now().UTC()
	state := s.State()

	assert.Len(t, state.Customers, len(seed.Customers(now)))
	assert.Len(t, state.Leads, len(seed.Leads(now)))
	assert.Len(t, state.Vehicles, len(seed.Vehicles(now)))
	assert.Len(t, state.Sales, len(seed.Sales(now)))
	assert.Len(t, state.Interactions, len(seed.Interactions(now)))

	assert.Equal(t, "cust-1", state.Customers[0].ID)
	assert.Equal(t, "lead-1", state.Leads[0].ID)
	assert.Equal(t, "veh-1", state.Vehicles[0].ID)
	assert.Equal(t, "sale-1", state.Sales[0].ID)
	assert.Equal(t, "int-1", state.Interactions[0].ID)

	assert.False(t, state.Loading)
	assert.False(t, state.ModalLoading)
	assert.Empty(t, state.Error)
}

func TestLoadAll_DegradedReadFallsBackToSeeds(t *testing.T) {
	s, m := newTestStore(t)
	expectListAll(m, []*domain.Customer{}, true)

	assert.NoError(t, s.LoadAll(context.Background()))

	state := s.State()
	assert.NotEmpty(t, state.Customers)
	assert.Equal(t, "cust-1", state.Customers[0].ID)
	assert.Empty(t, state.Error)
	assert.False(t, state.Loading)
}

func TestLoadAll_RemoteDataWinsOverSeeds(t *testing.T) {
	s, m := newTestStore(t)

	remote := []*domain.Customer{{ID: "7f3a91c2", FirstName: "Ana"}}
	expectListAll(m, remote, false)

	assert.NoError(t, s.LoadAll(context.Background()))

	state := s.State()
	assert.Equal(t, remote, state.Customers)
	// the other collections were empty remotely, so they still get seeded
	assert.NotEmpty(t, state.Leads)
	assert.NotEmpty(t, state.Vehicles)
}

func TestLoadAll_SeedFallbackDisabled(t *testing.T) {
	s, m := newTestStore(t, WithSeedFallback(false))
	expectListAll(m, []*domain.Customer{}, true)

	assert.NoError(t, s.LoadAll(context.Background()))

	state := s.State()
	assert.Empty(t, state.Customers)
	assert.Empty(t, state.Leads)
	assert.Empty(t, state.Vehicles)
	assert.Empty(t, state.Sales)
	assert.Empty(t, state.Interactions)
	assert.False(t, state.Loading)
}
