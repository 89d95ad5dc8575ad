package main

import (
	"context"
	"os"
	"os/signal"
	"path"
	"runtime"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-crm/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-crm/infrastructure/repository"
	"github.com/vfg2006/dealer-crm/internal/config"
	"github.com/vfg2006/dealer-crm/internal/gateway"
	"github.com/vfg2006/dealer-crm/internal/scheduler"
	"github.com/vfg2006/dealer-crm/internal/store"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	customerRepo := repository.NewCustomerRepository(pgConn)
	leadRepo := repository.NewLeadRepository(pgConn)
	vehicleRepo := repository.NewVehicleRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	interactionRepo := repository.NewInteractionRepository(pgConn)

	customerGateway := gateway.NewCustomerGateway(customerRepo)
	leadGateway := gateway.NewLeadGateway(leadRepo)
	vehicleGateway := gateway.NewVehicleGateway(vehicleRepo)
	saleGateway := gateway.NewSaleGateway(saleRepo)
	interactionGateway := gateway.NewInteractionGateway(interactionRepo)

	crmStore := store.New(
		customerGateway,
		leadGateway,
		vehicleGateway,
		saleGateway,
		interactionGateway,
		store.WithSeedFallback(cfg.Bootstrap.SeedFallback),
	)

	unsubscribe := crmStore.Subscribe(func(state store.State) {
		logrus.WithFields(logrus.Fields{
			"customers":    len(state.Customers),
			"leads":        len(state.Leads),
			"vehicles":     len(state.Vehicles),
			"sales":        len(state.Sales),
			"interactions": len(state.Interactions),
			"loading":      state.Loading,
		}).Debug("State updated")
	})
	defer unsubscribe()

	reconciler := scheduler.NewReconcilerService(
		cfg,
		customerGateway,
		leadGateway,
		vehicleGateway,
		saleGateway,
		interactionGateway,
	)
	if err := reconciler.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start outbox reconciler")
	} else {
		logrus.Info("Outbox reconciler started")
	}

	if err := crmStore.LoadAll(ctx); err != nil {
		logrus.WithError(err).Error("Initial load failed")
	}
	logrus.Info("Initial state loaded")

	<-ctx.Done()
	logrus.Info("Shutting down")
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens the connection and probes it. A failed probe is only a
// warning, the gateways degrade to local-only operation and the reconciler
// picks the writes up once the database is reachable again.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open PostgreSQL connection")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("PostgreSQL unreachable, starting in degraded mode")
	} else {
		logrus.Info("PostgreSQL connection established")
	}
	return conn
}
