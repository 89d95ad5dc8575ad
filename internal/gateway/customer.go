package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-crm/infrastructure/repository"
	"github.com/vfg2006/dealer-crm/internal/domain"
	"github.com/vfg2006/dealer-crm/internal/wire"
)

const customerIDPrefix = "cust"

type CustomerGateway interface {
	// ListAll returns the collection most-recent-first. degraded reports
	// whether the remote read failed; the records are then empty, not an
	// error, and the bootstrap sequencer decides what to substitute.
	ListAll(ctx context.Context) (records []*domain.Customer, degraded bool)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, domain.Provenance)
	Update(ctx context.Context, id string, customer *domain.Customer) (*domain.Customer, domain.Provenance)
	Delete(ctx context.Context, id string) error

	Reconcilable
}

type customerGateway struct {
	repo repository.CustomerRepository

	mu      sync.Mutex
	pending []pendingCustomer
}

type pendingCustomer struct {
	op     pendingOp
	record *domain.Customer
}

func NewCustomerGateway(repo repository.CustomerRepository) CustomerGateway {
	return &customerGateway{repo: repo}
}

func (g *customerGateway) ListAll(ctx context.Context) ([]*domain.Customer, bool) {
	recs, err := g.repo.List(ctx)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "listing customers")).Warn("Customer read degraded to empty")
		return []*domain.Customer{}, true
	}

	customers := make([]*domain.Customer, 0, len(recs))
	for _, rec := range recs {
		customers = append(customers, wire.CustomerToApp(rec))
	}

	return customers, false
}

func (g *customerGateway) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, domain.Provenance) {
	rec := wire.CustomerToWire(customer)
	rec.ID = ""

	created, err := g.repo.Create(ctx, rec)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "creating customer")).Warn("Customer create degraded to local-only record")
		local := g.synthesize(customer)
		g.enqueue(opCreate, local)
		return local, domain.LocalOnly
	}

	return wire.CustomerToApp(created), domain.Persisted
}

func (g *customerGateway) Update(ctx context.Context, id string, customer *domain.Customer) (*domain.Customer, domain.Provenance) {
	updated, err := g.repo.Update(ctx, id, wire.CustomerToWire(customer))
	if err != nil {
		logrus.WithError(errors.Wrap(err, "updating customer")).
			WithField("customer_id", id).
			Warn("Customer update degraded to local-only record")

		now := time.Now().UTC()
		local := *customer
		local.ID = id
		local.UpdatedAt = &now
		g.enqueue(opUpdate, &local)
		return &local, domain.LocalOnly
	}

	return wire.CustomerToApp(updated), domain.Persisted
}

func (g *customerGateway) Delete(ctx context.Context, id string) error {
	if err := g.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "deleting customer")
	}
	return nil
}

func (g *customerGateway) Entity() string {
	return "customers"
}

func (g *customerGateway) PendingLocal() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

// Reconcile retries outboxed writes under their local ids, so a record that
// finally lands keeps the id the store already knows it by.
func (g *customerGateway) Reconcile(ctx context.Context) (int, int) {
	g.mu.Lock()
	queue := g.pending
	g.pending = nil
	g.mu.Unlock()

	persisted := 0
	var failed []pendingCustomer
	for _, p := range queue {
		var err error
		switch p.op {
		case opCreate:
			_, err = g.repo.Create(ctx, wire.CustomerToWire(p.record))
		case opUpdate:
			_, err = g.repo.Update(ctx, p.record.ID, wire.CustomerToWire(p.record))
		}

		if err != nil {
			failed = append(failed, p)
			continue
		}
		persisted++
	}

	g.mu.Lock()
	g.pending = append(failed, g.pending...)
	remaining := len(g.pending)
	g.mu.Unlock()

	return persisted, remaining
}

func (g *customerGateway) synthesize(customer *domain.Customer) *domain.Customer {
	now := time.Now().UTC()
	local := *customer
	local.ID = localID(customerIDPrefix)
	local.CreatedAt = now
	local.UpdatedAt = &now
	if local.Tags == nil {
		local.Tags = []string{}
	}
	return &local
}

func (g *customerGateway) enqueue(op pendingOp, record *domain.Customer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, pendingCustomer{op: op, record: record})
}
