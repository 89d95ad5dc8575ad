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

const leadIDPrefix = "lead"

type LeadGateway interface {
	ListAll(ctx context.Context) (records []*domain.Lead, degraded bool)
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, domain.Provenance)
	Update(ctx context.Context, id string, lead *domain.Lead) (*domain.Lead, domain.Provenance)
	Delete(ctx context.Context, id string) error

	Reconcilable
}

type leadGateway struct {
	repo repository.LeadRepository

	mu      sync.Mutex
	pending []pendingLead
}

type pendingLead struct {
	op     pendingOp
	record *domain.Lead
}

func NewLeadGateway(repo repository.LeadRepository) LeadGateway {
	return &leadGateway{repo: repo}
}

func (g *leadGateway) ListAll(ctx context.Context) ([]*domain.Lead, bool) {
	recs, err := g.repo.List(ctx)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "listing leads")).Warn("Lead read degraded to empty")
		return []*domain.Lead{}, true
	}

	leads := make([]*domain.Lead, 0, len(recs))
	for _, rec := range recs {
		leads = append(leads, wire.LeadToApp(rec))
	}

	return leads, false
}

func (g *leadGateway) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, domain.Provenance) {
	rec := wire.LeadToWire(lead)
	rec.ID = ""

	created, err := g.repo.Create(ctx, rec)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "creating lead")).Warn("Lead create degraded to local-only record")

		now := time.Now().UTC()
		local := *lead
		local.ID = localID(leadIDPrefix)
		local.CreatedAt = now
		local.UpdatedAt = &now
		if local.Tags == nil {
			local.Tags = []string{}
		}
		g.enqueue(opCreate, &local)
		return &local, domain.LocalOnly
	}

	return wire.LeadToApp(created), domain.Persisted
}

func (g *leadGateway) Update(ctx context.Context, id string, lead *domain.Lead) (*domain.Lead, domain.Provenance) {
	updated, err := g.repo.Update(ctx, id, wire.LeadToWire(lead))
	if err != nil {
		logrus.WithError(errors.Wrap(err, "updating lead")).
			WithField("lead_id", id).
			Warn("Lead update degraded to local-only record")

		now := time.Now().UTC()
		local := *lead
		local.ID = id
		local.UpdatedAt = &now
		g.enqueue(opUpdate, &local)
		return &local, domain.LocalOnly
	}

	return wire.LeadToApp(updated), domain.Persisted
}

func (g *leadGateway) Delete(ctx context.Context, id string) error {
	if err := g.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "deleting lead")
	}
	return nil
}

func (g *leadGateway) Entity() string {
	return "leads"
}

func (g *leadGateway) PendingLocal() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

func (g *leadGateway) Reconcile(ctx context.Context) (int, int) {
	g.mu.Lock()
	queue := g.pending
	g.pending = nil
	g.mu.Unlock()

	persisted := 0
	var failed []pendingLead
	for _, p := range queue {
		var err error
		switch p.op {
		case opCreate:
			_, err = g.repo.Create(ctx, wire.LeadToWire(p.record))
		case opUpdate:
			_, err = g.repo.Update(ctx, p.record.ID, wire.LeadToWire(p.record))
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

func (g *leadGateway) enqueue(op pendingOp, record *domain.Lead) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, pendingLead{op: op, record: record})
}
