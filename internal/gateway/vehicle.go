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

const vehicleIDPrefix = "veh"

type VehicleGateway interface {
	ListAll(ctx context.Context) (records []*domain.Vehicle, degraded bool)
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, domain.Provenance)
	Update(ctx context.Context, id string, vehicle *domain.Vehicle) (*domain.Vehicle, domain.Provenance)
	Delete(ctx context.Context, id string) error

	Reconcilable
}

type vehicleGateway struct {
	repo repository.VehicleRepository

	mu      sync.Mutex
	pending []pendingVehicle
}

type pendingVehicle struct {
	op     pendingOp
	record *domain.Vehicle
}

func NewVehicleGateway(repo repository.VehicleRepository) VehicleGateway {
	return &vehicleGateway{repo: repo}
}

func (g *vehicleGateway) ListAll(ctx context.Context) ([]*domain.Vehicle, bool) {
	recs, err := g.repo.List(ctx)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "listing vehicles")).Warn("Vehicle read degraded to empty")
		return []*domain.Vehicle{}, true
	}

	vehicles := make([]*domain.Vehicle, 0, len(recs))
	for _, rec := range recs {
		vehicles = append(vehicles, wire.VehicleToApp(rec))
	}

	return vehicles, false
}

func (g *vehicleGateway) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, domain.Provenance) {
	rec := wire.VehicleToWire(vehicle)
	rec.ID = ""

	created, err := g.repo.Create(ctx, rec)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "creating vehicle")).Warn("Vehicle create degraded to local-only record")

		now := time.Now().UTC()
		local := *vehicle
		local.ID = localID(vehicleIDPrefix)
		local.CreatedAt = now
		local.UpdatedAt = &now
		g.enqueue(opCreate, &local)
		return &local, domain.LocalOnly
	}

	return wire.VehicleToApp(created), domain.Persisted
}

func (g *vehicleGateway) Update(ctx context.Context, id string, vehicle *domain.Vehicle) (*domain.Vehicle, domain.Provenance) {
	updated, err := g.repo.Update(ctx, id, wire.VehicleToWire(vehicle))
	if err != nil {
		logrus.WithError(errors.Wrap(err, "updating vehicle")).
			WithField("vehicle_id", id).
			Warn("Vehicle update degraded to local-only record")

		now := time.Now().UTC()
		local := *vehicle
		local.ID = id
		local.UpdatedAt = &now
		g.enqueue(opUpdate, &local)
		return &local, domain.LocalOnly
	}

	return wire.VehicleToApp(updated), domain.Persisted
}

func (g *vehicleGateway) Delete(ctx context.Context, id string) error {
	if err := g.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "deleting vehicle")
	}
	return nil
}

func (g *vehicleGateway) Entity() string {
	return "vehicles"
}

func (g *vehicleGateway) PendingLocal() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

func (g *vehicleGateway) Reconcile(ctx context.Context) (int, int) {
	g.mu.Lock()
	queue := g.pending
	g.pending = nil
	g.mu.Unlock()

	persisted := 0
	var failed []pendingVehicle
	for _, p := range queue {
		var err error
		switch p.op {
		case opCreate:
			_, err = g.repo.Create(ctx, wire.VehicleToWire(p.record))
		case opUpdate:
			_, err = g.repo.Update(ctx, p.record.ID, wire.VehicleToWire(p.record))
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

func (g *vehicleGateway) enqueue(op pendingOp, record *domain.Vehicle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, pendingVehicle{op: op, record: record})
}
