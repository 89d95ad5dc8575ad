package gateway

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/dealer-crm/infrastructure/repository/mocks"
	"github.com/vfg2006/dealer-crm/internal/domain"
	"github.com/vfg2006/dealer-crm/internal/wire"
)

func TestCustomerGateway_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("healthy read maps records to the app shape", func(t *testing.T) {
		repo := mocks.NewMockCustomerRepository(ctrl)
		gw := NewCustomerGateway(repo)

		repo.EXPECT().List(ctx).Return([]*wire.CustomerRecord{
			{ID: "cust-1", FirstName: "Michael", Status: "active"},
		}, nil)

		customers, degraded := gw.ListAll(ctx)
		assert.False(t, degraded)
		assert.Len(t, customers, 1)
		assert.Equal(t, domain.CustomerStatusActive, customers[0].Status)
	})

	t.Run("failed read degrades to empty without an error", func(t *testing.T) {
		repo := mocks.NewMockCustomerRepository(ctrl)
		gw := NewCustomerGateway(repo)

		repo.EXPECT().List(ctx).Return(nil, errors.New("connection refused"))

		customers, degraded := gw.ListAll(ctx)
		assert.True(t, degraded)
		assert.NotNil(t, customers)
		assert.Empty(t, customers)
	})
}

func TestCustomerGateway_CreateDegradesToLocalOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	repo := mocks.NewMockCustomerRepository(ctrl)
	gw := NewCustomerGateway(repo)

	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("i/o timeout"))

	created, provenance := gw.Create(ctx, &domain.Customer{FirstName: "Linda", LastName: "Brown"})

	assert.Equal(t, domain.LocalOnly, provenance)
	assert.True(t, strings.HasPrefix(created.ID, "cust-"))
	assert.Equal(t, "Linda", created.FirstName)
	assert.NotNil(t, created.Tags)
	assert.WithinDuration(t, time.Now().UTC(), created.CreatedAt, 5*time.Second)
	assert.Equal(t, 1, gw.PendingLocal())
}

func TestCustomerGateway_CreatePersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	repo := mocks.NewMockCustomerRepository(ctrl)
	gw := NewCustomerGateway(repo)

	// the repository assigns the id; any caller-supplied id is discarded
	repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *wire.CustomerRecord) (*wire.CustomerRecord, error) {
			assert.Empty(t, rec.ID)
			saved := *rec
			saved.ID = "8d1f40b7"
			saved.CreatedAt = time.Now().UTC()
			return &saved, nil
		})

	created, provenance := gw.Create(ctx, &domain.Customer{ID: "client-chosen", FirstName: "Linda"})

	assert.Equal(t, domain.Persisted, provenance)
	assert.Equal(t, "8d1f40b7", created.ID)
	assert.Zero(t, gw.PendingLocal())
}

func TestCustomerGateway_UpdateDegradedKeepsRequestedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	repo := mocks.NewMockCustomerRepository(ctrl)
	gw := NewCustomerGateway(repo)

	repo.EXPECT().Update(ctx, "cust-1", gomock.Any()).Return(nil, errors.New("connection refused"))

	updated, provenance := gw.Update(ctx, "cust-1", &domain.Customer{FirstName: "Mike"})

	assert.Equal(t, domain.LocalOnly, provenance)
	assert.Equal(t, "cust-1", updated.ID)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, 1, gw.PendingLocal())
}

func TestCustomerGateway_DeleteSurfacesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	repo := mocks.NewMockCustomerRepository(ctrl)
	gw := NewCustomerGateway(repo)

	repo.EXPECT().Delete(ctx, "cust-1").Return(errors.New("connection refused"))

	err := gw.Delete(ctx, "cust-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "deleting customer")
	assert.Zero(t, gw.PendingLocal())
}

func TestCustomerGateway_ReconcileRetriesUnderLocalIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	repo := mocks.NewMockCustomerRepository(ctrl)
	gw := NewCustomerGateway(repo)

	// park two local-only creates
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("down")).Times(2)
	first, _ := gw.Create(ctx, &domain.Customer{FirstName: "Linda"})
	second, _ := gw.Create(ctx, &domain.Customer{FirstName: "James"})
	assert.Equal(t, 2, gw.PendingLocal())

	// the retry inserts each record under the id the store already knows
	retried := map[string]bool{}
	repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *wire.CustomerRecord) (*wire.CustomerRecord, error) {
			retried[rec.ID] = true
			if rec.ID == second.ID {
				return nil, errors.New("still down")
			}
			return rec, nil
		}).Times(2)

	persisted, remaining := gw.Reconcile(ctx)
	assert.Equal(t, 1, persisted)
	assert.Equal(t, 1, remaining)
	assert.True(t, retried[first.ID])
	assert.True(t, retried[second.ID])
	assert.Equal(t, 1, gw.PendingLocal())

	// a later pass drains the rest
	repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *wire.CustomerRecord) (*wire.CustomerRecord, error) {
			assert.Equal(t, second.ID, rec.ID)
			return rec, nil
		})

	persisted, remaining = gw.Reconcile(ctx)
	assert.Equal(t, 1, persisted)
	assert.Zero(t, remaining)
	assert.Equal(t, "customers", gw.Entity())
}
