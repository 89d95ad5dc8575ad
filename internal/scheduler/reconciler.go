// Package scheduler runs the background jobs of the CRM. Today that is a
// single job: draining the gateways' local-only records back into Postgres.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/dealer-crm/internal/config"
	"github.com/vfg2006/dealer-crm/internal/gateway"
)

// ReconcilerConfig holds the schedule settings for the outbox drain job.
type ReconcilerConfig struct {
	CronSchedule string
	Enabled      bool
}

// ReconcilerService periodically retries every record the gateways kept
// locally after a failed write. Retried records keep their local ids, so a
// record stays addressable across the persisted/local boundary.
type ReconcilerService struct {
	scheduler *gocron.Scheduler
	config    ReconcilerConfig
	gateways  []gateway.Reconcilable

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewReconcilerService(appConfig *config.Config, gateways ...gateway.Reconcilable) *ReconcilerService {
	cfg := ReconcilerConfig{
		CronSchedule: appConfig.Reconciler.CronSchedule,
		Enabled:      appConfig.Reconciler.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
		"gateways":      len(gateways),
	}).Info("Reconciler configuration loaded")

	return &ReconcilerService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		gateways:  gateways,
	}
}

// Start schedules the drain job and ties the scheduler's lifetime to ctx.
func (s *ReconcilerService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Reconciler disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting outbox reconciler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reconcileAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule outbox reconciliation: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping outbox reconciler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce triggers a drain outside the schedule, used at startup so a
// backlog does not wait for the first cron tick.
func (s *ReconcilerService) RunOnce(ctx context.Context) {
	s.reconcileAll(ctx)
}

func (s *ReconcilerService) reconcileAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Outbox reconciliation already in progress, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	totalPending := 0
	for _, gw := range s.gateways {
		totalPending += gw.PendingLocal()
	}
	if totalPending == 0 {
		return
	}

	logrus.WithField("pending", totalPending).Info("Starting outbox reconciliation")

	totalPersisted := 0
	totalRemaining := 0
	for _, gw := range s.gateways {
		if gw.PendingLocal() == 0 {
			continue
		}
		persisted, remaining := gw.Reconcile(ctx)
		totalPersisted += persisted
		totalRemaining += remaining

		logrus.WithFields(logrus.Fields{
			"entity":    gw.Entity(),
			"persisted": persisted,
			"remaining": remaining,
		}).Info("Reconciled entity outbox")
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"persisted": totalPersisted,
		"remaining": totalRemaining,
	}).Info("Outbox reconciliation finished")

	s.lastSyncCompletedAt = time.Now()
}
