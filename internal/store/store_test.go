package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/dealer-crm/internal/domain"
	"github.com/vfg2006/dealer-crm/internal/gateway/mocks"
)

type storeMocks struct {
	customers    *mocks.MockCustomerGateway
	leads        *mocks.MockLeadGateway
	vehicles     *mocks.MockVehicleGateway
	sales        *mocks.MockSaleGateway
	interactions *mocks.MockInteractionGateway
}

func newTestStore(t *testing.T, opts ...Option) (*Store, storeMocks) {
	ctrl := gomock.NewController(t)

	m := storeMocks{
		customers:    mocks.NewMockCustomerGateway(ctrl),
		leads:        mocks.NewMockLeadGateway(ctrl),
		vehicles:     mocks.NewMockVehicleGateway(ctrl),
		sales:        mocks.NewMockSaleGateway(ctrl),
		interactions: mocks.NewMockInteractionGateway(ctrl),
	}

	s := New(m.customers, m.leads, m.vehicles, m.sales, m.interactions, opts...)
	return s, m
}

func TestStore_AddCustomer_Persisted(t *testing.T) {
	s, m := newTestStore(t)
	ctx := context.Background()

	input := &domain.Customer{FirstName: "Linda", LastName: "Brown"}
	persisted := &domain.Customer{ID: "a2c9e1f0", FirstName: "Linda", LastName: "Brown", Tags: []string{}}

	m.customers.EXPECT().Create(ctx, input).Return(persisted, domain.Persisted)

	created, err := s.AddCustomer(ctx, input)
	assert.NoError(t, err)
	assert.Equal(t, persisted, created)

	state := s.State()
	assert.Equal(t, []*domain.Customer{persisted}, state.Customers)
	assert.False(t, state.ModalLoading)
	assert.Empty(t, state.Error)
}

func TestStore_AddVehicle_DegradedCreateStillLandsInState(t *testing.T) {
	s, m := newTestStore(t)
	ctx := context.Background()

	input := &domain.Vehicle{Make: "Kia", Model: "EV9", Year: 2024}
	local := &domain.Vehicle{ID: "veh-x7k2m9qa", Make: "Kia", Model: "EV9", Year: 2024}

	m.vehicles.EXPECT().Create(ctx, input).Return(local, domain.LocalOnly)

	created, err := s.AddVehicle(ctx, input)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "veh-"))

	state := s.State()
	assert.Equal(t, []*domain.Vehicle{local}, state.Vehicles)
	assert.False(t, state.ModalLoading)
	assert.Empty(t, state.Error)
}

func TestStore_UpdateLead(t *testing.T) {
	s, m := newTestStore(t)
	ctx := context.Background()

	existing := &domain.Lead{ID: "lead-1", Status: domain.LeadStatusNew}
	s.dispatch(LeadsSet{Leads: []*domain.Lead{existing}})

	updated := &domain.Lead{ID: "lead-1", Status: domain.LeadStatusQualified}
	m.leads.EXPECT().Update(ctx, "lead-1", gomock.Any()).Return(updated, domain.Persisted)

	got, err := s.UpdateLead(ctx, "lead-1", &domain.Lead{Status: domain.LeadStatusQualified})
	assert.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, domain.LeadStatusQualified, s.State().Leads[0].Status)
}

func TestStore_DeleteLead_RemoteFailureKeepsRecord(t *testing.T) {
	s, m := newTestStore(t)
	ctx := context.Background()

	existing := &domain.Lead{ID: "lead-1", FirstName: "Sarah"}
	s.dispatch(LeadsSet{Leads: []*domain.Lead{existing}})

	m.leads.EXPECT().Delete(ctx, "lead-1").Return(errors.New("deleting lead: connection refused"))

	err := s.DeleteLead(ctx, "lead-1")
	assert.Error(t, err)

	state := s.State()
	assert.Equal(t, []*domain.Lead{existing}, state.Leads)
	assert.Contains(t, state.Error, "connection refused")
	assert.False(t, state.Loading)
}

func TestStore_DeleteCustomer_Success(t *testing.T) {
	s, m := newTestStore(t)
	ctx := context.Background()

	s.dispatch(CustomersSet{Customers: []*domain.Customer{
		{ID: "cust-1"},
		{ID: "cust-2"},
	}})

	m.customers.EXPECT().Delete(ctx, "cust-1").Return(nil)

	assert.NoError(t, s.DeleteCustomer(ctx, "cust-1"))

	state := s.State()
	assert.Len(t, state.Customers, 1)
	assert.Equal(t, "cust-2", state.Customers[0].ID)
	assert.False(t, state.Loading)
}

func TestStore_AddInteraction_BumpsCustomerLastContact(t *testing.T) {
	s, m := newTestStore(t)
	ctx := context.Background()

	s.dispatch(CustomersSet{Customers: []*domain.Customer{
		{ID: "cust-1", FirstName: "Michael"},
		{ID: "cust-2", FirstName: "Jennifer"},
	}})

	customerID := "cust-1"
	input := &domain.Interaction{
		CustomerID: &customerID,
		Type:       domain.InteractionTypeCall,
		Notes:      "Discussed financing options",
	}

	// even a degraded create must bump the referenced customer locally
	m.interactions.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *domain.Interaction) (*domain.Interaction, domain.Provenance) {
			assert.False(t, in.Timestamp.IsZero())
			created := *in
			created.ID = "int-q3p8r2da"
			created.CreatedAt = in.Timestamp
			return &created, domain.LocalOnly
		})

	created, err := s.AddInteraction(ctx, input)
	assert.NoError(t, err)
	assert.Equal(t, "int-q3p8r2da", created.ID)

	state := s.State()
	assert.Len(t, state.Interactions, 1)
	assert.Equal(t, created, state.Interactions[0])

	bumped := state.Customers[0]
	assert.Equal(t, "cust-1", bumped.ID)
	if assert.NotNil(t, bumped.LastContact) {
		assert.WithinDuration(t, time.Now().UTC(), *bumped.LastContact, 5*time.Second)
	}
	assert.Nil(t, state.Customers[1].LastContact)
	assert.False(t, state.ModalLoading)
}

func TestStore_AddInteraction_LeadReferentDoesNotTouchCustomers(t *testing.T) {
	s, m := newTestStore(t)
	ctx := context.Background()

	s.dispatch(CustomersSet{Customers: []*domain.Customer{{ID: "cust-1"}}})

	leadID := "lead-1"
	input := &domain.Interaction{
		LeadID: &leadID,
		Type:   domain.InteractionTypeEmail,
		Notes:  "Sent pre-approval information",
	}

	m.interactions.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *domain.Interaction) (*domain.Interaction, domain.Provenance) {
			created := *in
			created.ID = "int-1"
			return &created, domain.Persisted
		})

	_, err := s.AddInteraction(ctx, input)
	assert.NoError(t, err)

	state := s.State()
	assert.Len(t, state.Interactions, 1)
	assert.Nil(t, state.Customers[0].LastContact)
}

func TestStore_AddInteraction_Validation(t *testing.T) {
	customerID := "cust-1"
	leadID := "lead-1"

	tests := []struct {
		name        string
		interaction *domain.Interaction
		wantErr     error
	}{
		{
			name:        "empty notes",
			interaction: &domain.Interaction{CustomerID: &customerID, Type: domain.InteractionTypeCall},
			wantErr:     ErrEmptyNotes,
		},
		{
			name:        "no referent",
			interaction: &domain.Interaction{Type: domain.InteractionTypeCall, Notes: "orphaned"},
			wantErr:     ErrAmbiguousSubject,
		},
		{
			name: "both referents",
			interaction: &domain.Interaction{
				CustomerID: &customerID,
				LeadID:     &leadID,
				Type:       domain.InteractionTypeCall,
				Notes:      "ambiguous",
			},
			wantErr: ErrAmbiguousSubject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t)

			created, err := s.AddInteraction(context.Background(), tt.interaction)
			assert.Nil(t, created)
			assert.ErrorIs(t, err, tt.wantErr)

			state := s.State()
			assert.Empty(t, state.Interactions)
			assert.Equal(t, tt.wantErr.Error(), state.Error)
		})
	}
}

func TestStore_InteractionsForReferent(t *testing.T) {
	s, _ := newTestStore(t)

	custID := "cust-1"
	leadID := "lead-1"
	s.dispatch(InteractionsSet{Interactions: []*domain.Interaction{
		{ID: "int-1", CustomerID: &custID},
		{ID: "int-2", LeadID: &leadID},
		{ID: "int-3", CustomerID: &custID},
	}})

	forCustomer := s.InteractionsForCustomer("cust-1")
	assert.Len(t, forCustomer, 2)
	assert.Equal(t, "int-1", forCustomer[0].ID)
	assert.Equal(t, "int-3", forCustomer[1].ID)

	forLead := s.InteractionsForLead("lead-1")
	assert.Len(t, forLead, 1)
	assert.Equal(t, "int-2", forLead[0].ID)

	assert.Empty(t, s.InteractionsForCustomer("cust-404"))
}

func TestStore_FilterAndSearch(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetFilter("prospect")
	s.SetSearchTerm("tesla")

	state := s.State()
	assert.Equal(t, "prospect", state.Filter)
	assert.Equal(t, "tesla", state.SearchTerm)
}

func TestStore_SubscribeSeesBatchBoundariesOnly(t *testing.T) {
	s, m := newTestStore(t)
	ctx := context.Background()

	s.dispatch(CustomersSet{Customers: []*domain.Customer{{ID: "cust-1"}}})

	var snapshots []State
	unsubscribe := s.Subscribe(func(st State) {
		snapshots = append(snapshots, st)
	})

	customerID := "cust-1"
	m.interactions.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *domain.Interaction) (*domain.Interaction, domain.Provenance) {
			created := *in
			created.ID = "int-1"
			return &created, domain.Persisted
		})

	_, err := s.AddInteraction(ctx, &domain.Interaction{
		CustomerID: &customerID,
		Type:       domain.InteractionTypeCall,
		Notes:      "quick check-in",
	})
	assert.NoError(t, err)

	// one notification for the modal flag, one for the append-plus-bump batch
	assert.Len(t, snapshots, 2)
	final := snapshots[len(snapshots)-1]
	assert.Len(t, final.Interactions, 1)
	assert.NotNil(t, final.Customers[0].LastContact)

	unsubscribe()
	s.SetFilter("all")
	assert.Len(t, snapshots, 2)
}
