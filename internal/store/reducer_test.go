package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/dealer-crm/internal/domain"
)

func TestReduce_CustomerActions(t *testing.T) {
	existing := &domain.Customer{ID: "cust-1", FirstName: "Michael"}
	other := &domain.Customer{ID: "cust-2", FirstName: "Jennifer"}

	tests := []struct {
		name     string
		state    State
		action   Action
		validate func(t *testing.T, before, after State)
	}{
		{
			name:   "set replaces the collection and clears loading",
			state:  State{Customers: []*domain.Customer{existing}, Loading: true},
			action: CustomersSet{Customers: []*domain.Customer{other}},
			validate: func(t *testing.T, before, after State) {
				assert.Equal(t, []*domain.Customer{other}, after.Customers)
				assert.False(t, after.Loading)
			},
		},
		{
			name:   "add prepends and clears only modal loading",
			state:  State{Customers: []*domain.Customer{existing}, Loading: true, ModalLoading: true},
			action: CustomerAdded{Customer: other},
			validate: func(t *testing.T, before, after State) {
				assert.Len(t, after.Customers, 2)
				assert.Equal(t, "cust-2", after.Customers[0].ID)
				assert.Equal(t, "cust-1", after.Customers[1].ID)
				assert.False(t, after.ModalLoading)
				assert.True(t, after.Loading)
			},
		},
		{
			name:   "update replaces the matching record in place",
			state:  State{Customers: []*domain.Customer{existing, other}, ModalLoading: true},
			action: CustomerUpdated{Customer: &domain.Customer{ID: "cust-1", FirstName: "Mike"}},
			validate: func(t *testing.T, before, after State) {
				assert.Len(t, after.Customers, 2)
				assert.Equal(t, "Mike", after.Customers[0].FirstName)
				assert.Equal(t, "cust-2", after.Customers[1].ID)
				assert.False(t, after.ModalLoading)
			},
		},
		{
			name:   "update with unknown id is a no-op on the collection",
			state:  State{Customers: []*domain.Customer{existing}},
			action: CustomerUpdated{Customer: &domain.Customer{ID: "cust-404", FirstName: "Ghost"}},
			validate: func(t *testing.T, before, after State) {
				assert.Equal(t, before.Customers, after.Customers)
			},
		},
		{
			name:   "delete removes by id and clears loading",
			state:  State{Customers: []*domain.Customer{existing, other}, Loading: true},
			action: CustomerDeleted{ID: "cust-1"},
			validate: func(t *testing.T, before, after State) {
				assert.Equal(t, []*domain.Customer{other}, after.Customers)
				assert.False(t, after.Loading)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			after := Reduce(tt.state, tt.action)
			tt.validate(t, tt.state, after)
		})
	}
}

func TestReduce_NeverMutatesInput(t *testing.T) {
	existing := &domain.Customer{ID: "cust-1"}
	state := State{Customers: []*domain.Customer{existing}}

	Reduce(state, CustomerAdded{Customer: &domain.Customer{ID: "cust-2"}})
	assert.Equal(t, []*domain.Customer{existing}, state.Customers)

	Reduce(state, CustomerUpdated{Customer: &domain.Customer{ID: "cust-1", FirstName: "Changed"}})
	assert.Empty(t, state.Customers[0].FirstName)

	Reduce(state, CustomerDeleted{ID: "cust-1"})
	assert.Len(t, state.Customers, 1)
}

func TestReduce_ErrorClearsBothLoadingFlags(t *testing.T) {
	state := State{Loading: true, ModalLoading: true}

	after := Reduce(state, ErrorSet{Message: "remote store unreachable"})

	assert.Equal(t, "remote store unreachable", after.Error)
	assert.False(t, after.Loading)
	assert.False(t, after.ModalLoading)
}

func TestReduce_LoadingFlags(t *testing.T) {
	after := Reduce(State{}, LoadingSet{Loading: true})
	assert.True(t, after.Loading)
	assert.False(t, after.ModalLoading)

	after = Reduce(after, ModalLoadingSet{Loading: true})
	assert.True(t, after.ModalLoading)

	// setting the same flag again is idempotent
	assert.Equal(t, after, Reduce(after, LoadingSet{Loading: true}))
}

func TestReduce_FilterAndSearchTouchNothingElse(t *testing.T) {
	state := State{Loading: true, Error: "boom"}

	after := Reduce(state, FilterSet{Filter: "active"})
	assert.Equal(t, "active", after.Filter)
	assert.True(t, after.Loading)
	assert.Equal(t, "boom", after.Error)

	after = Reduce(after, SearchSet{Term: "honda"})
	assert.Equal(t, "honda", after.SearchTerm)
	assert.Equal(t, "active", after.Filter)
}

func TestReduce_SaleAndInteractionPrepend(t *testing.T) {
	now := time.Now().UTC()
	oldSale := &domain.Sale{ID: "sale-1", SaleDate: now.AddDate(0, 0, -8)}
	newSale := &domain.Sale{ID: "sale-2", SaleDate: now}

	after := Reduce(State{Sales: []*domain.Sale{oldSale}, ModalLoading: true}, SaleAdded{Sale: newSale})
	assert.Equal(t, []*domain.Sale{newSale, oldSale}, after.Sales)
	assert.False(t, after.ModalLoading)

	customerID := "cust-1"
	interaction := &domain.Interaction{ID: "int-1", CustomerID: &customerID, Timestamp: now}
	after = Reduce(after, InteractionAdded{Interaction: interaction})
	assert.Equal(t, []*domain.Interaction{interaction}, after.Interactions)
}

func TestNewState(t *testing.T) {
	state := NewState()

	assert.Empty(t, state.Customers)
	assert.Empty(t, state.Leads)
	assert.Empty(t, state.Vehicles)
	assert.Empty(t, state.Sales)
	assert.Empty(t, state.Interactions)
	assert.Equal(t, "all", state.Filter)
	assert.Empty(t, state.SearchTerm)
	assert.False(t, state.Loading)
	assert.False(t, state.ModalLoading)
	assert.Empty(t, state.Error)
	assert.Contains(t, state.Tags, "High Value")
	assert.Contains(t, state.LeadSources, "Website")
	assert.Contains(t, state.VehicleTypes, "SUV")
}
