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

const interactionIDPrefix = "int"

type InteractionGateway interface {
	ListAll(ctx context.Context) (records []*domain.Interaction, degraded bool)
	ListByCustomer(ctx context.Context, customerID string) (records []*domain.Interaction, degraded bool)
	ListByLead(ctx context.Context, leadID string) (records []*domain.Interaction, degraded bool)

	// Create inserts the interaction remotely; when it references a customer
	// the remote last-contact bump happens in the same transaction, so there
	// is no partial outcome to reconcile.
	Create(ctx context.Context, interaction *domain.Interaction) (*domain.Interaction, domain.Provenance)

	Reconcilable
}

type interactionGateway struct {
	repo repository.InteractionRepository

	mu      sync.Mutex
	pending []*domain.Interaction
}

func NewInteractionGateway(repo repository.InteractionRepository) InteractionGateway {
	return &interactionGateway{repo: repo}
}

func (g *interactionGateway) ListAll(ctx context.Context) ([]*domain.Interaction, bool) {
	return g.transform(g.repo.List(ctx))
}

func (g *interactionGateway) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Interaction, bool) {
	return g.transform(g.repo.ListByCustomer(ctx, customerID))
}

func (g *interactionGateway) ListByLead(ctx context.Context, leadID string) ([]*domain.Interaction, bool) {
	return g.transform(g.repo.ListByLead(ctx, leadID))
}

func (g *interactionGateway) transform(recs []*wire.InteractionRecord, err error) ([]*domain.Interaction, bool) {
	if err != nil {
		logrus.WithError(errors.Wrap(err, "listing interactions")).Warn("Interaction read degraded to empty")
		return []*domain.Interaction{}, true
	}

	interactions := make([]*domain.Interaction, 0, len(recs))
	for _, rec := range recs {
		interactions = append(interactions, wire.InteractionToApp(rec))
	}

	return interactions, false
}

func (g *interactionGateway) Create(ctx context.Context, interaction *domain.Interaction) (*domain.Interaction, domain.Provenance) {
	rec := wire.InteractionToWire(interaction)
	rec.ID = ""

	created, err := g.repo.Create(ctx, rec)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "creating interaction")).Warn("Interaction create degraded to local-only record")

		local := *interaction
		local.ID = localID(interactionIDPrefix)
		local.CreatedAt = time.Now().UTC()
		g.enqueue(&local)
		return &local, domain.LocalOnly
	}

	return wire.InteractionToApp(created), domain.Persisted
}

func (g *interactionGateway) Entity() string {
	return "interactions"
}

func (g *interactionGateway) PendingLocal() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

func (g *interactionGateway) Reconcile(ctx context.Context) (int, int) {
	g.mu.Lock()
	queue := g.pending
	g.pending = nil
	g.mu.Unlock()

	persisted := 0
	var failed []*domain.Interaction
	for _, interaction := range queue {
		if _, err := g.repo.Create(ctx, wire.InteractionToWire(interaction)); err != nil {
			failed = append(failed, interaction)
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

func (g *interactionGateway) enqueue(interaction *domain.Interaction) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, interaction)
}
