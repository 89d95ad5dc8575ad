package gateway

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/dealer-crm/infrastructure/repository/mocks"
	"github.com/vfg2006/dealer-crm/internal/domain"
	"github.com/vfg2006/dealer-crm/internal/wire"
)

func TestInteractionGateway_ListByCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	repo := mocks.NewMockInteractionRepository(ctrl)
	gw := NewInteractionGateway(repo)

	customerID := "cust-1"
	repo.EXPECT().ListByCustomer(ctx, "cust-1").Return([]*wire.InteractionRecord{
		{ID: "int-1", CustomerID: &customerID, Type: "call"},
	}, nil)

	interactions, degraded := gw.ListByCustomer(ctx, "cust-1")
	assert.False(t, degraded)
	assert.Len(t, interactions, 1)
	assert.Equal(t, domain.InteractionTypeCall, interactions[0].Type)
}

func TestInteractionGateway_ListByLeadDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	repo := mocks.NewMockInteractionRepository(ctrl)
	gw := NewInteractionGateway(repo)

	repo.EXPECT().ListByLead(ctx, "lead-1").Return(nil, errors.New("connection refused"))

	interactions, degraded := gw.ListByLead(ctx, "lead-1")
	assert.True(t, degraded)
	assert.Empty(t, interactions)
}

func TestInteractionGateway_CreateDegradedThenReconciled(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	repo := mocks.NewMockInteractionRepository(ctrl)
	gw := NewInteractionGateway(repo)

	customerID := "cust-1"
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("down"))

	created, provenance := gw.Create(ctx, &domain.Interaction{
		CustomerID: &customerID,
		Type:       domain.InteractionTypeCall,
		Notes:      "Discussed financing options",
	})

	assert.Equal(t, domain.LocalOnly, provenance)
	assert.True(t, strings.HasPrefix(created.ID, "int-"))
	assert.Equal(t, 1, gw.PendingLocal())

	repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *wire.InteractionRecord) (*wire.InteractionRecord, error) {
			assert.Equal(t, created.ID, rec.ID)
			return rec, nil
		})

	persisted, remaining := gw.Reconcile(ctx)
	assert.Equal(t, 1, persisted)
	assert.Zero(t, remaining)
	assert.Zero(t, gw.PendingLocal())
}
