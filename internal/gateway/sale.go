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

const saleIDPrefix = "sale"

// SaleGateway has no update or delete surface; sales are append-mostly.
type SaleGateway interface {
	ListAll(ctx context.Context) (records []*domain.Sale, degraded bool)
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, domain.Provenance)

	Reconcilable
}

type saleGateway struct {
	repo repository.SaleRepository

	mu      sync.Mutex
	pending []*domain.Sale
}

func NewSaleGateway(repo repository.SaleRepository) SaleGateway {
	return &saleGateway{repo: repo}
}

func (g *saleGateway) ListAll(ctx context.Context) ([]*domain.Sale, bool) {
	recs, err := g.repo.List(ctx)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "listing sales")).Warn("Sale read degraded to empty")
		return []*domain.Sale{}, true
	}

	sales := make([]*domain.Sale, 0, len(recs))
	for _, rec := range recs {
		sales = append(sales, wire.SaleToApp(rec))
	}

	return sales, false
}

func (g *saleGateway) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, domain.Provenance) {
	rec := wire.SaleToWire(sale)
	rec.ID = ""

	created, err := g.repo.Create(ctx, rec)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "creating sale")).Warn("Sale create degraded to local-only record")

		local := *sale
		local.ID = localID(saleIDPrefix)
		local.CreatedAt = time.Now().UTC()
		g.enqueue(&local)
		return &local, domain.LocalOnly
	}

	return wire.SaleToApp(created), domain.Persisted
}

func (g *saleGateway) Entity() string {
	return "sales"
}

func (g *saleGateway) PendingLocal() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

func (g *saleGateway) Reconcile(ctx context.Context) (int, int) {
	g.mu.Lock()
	queue := g.pending
	g.pending = nil
	g.mu.Unlock()

	persisted := 0
	var failed []*domain.Sale
	for _, sale := range queue {
		if _, err := g.repo.Create(ctx, wire.SaleToWire(sale)); err != nil {
			failed = append(failed, sale)
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

func (g *saleGateway) enqueue(sale *domain.Sale) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, sale)
}
