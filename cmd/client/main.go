package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-habit-sync/internal/adapter"
	"github.com/MKhiriev/go-habit-sync/internal/config"
	"github.com/MKhiriev/go-habit-sync/internal/logger"
	"github.com/MKhiriev/go-habit-sync/internal/service"
	"github.com/MKhiriev/go-habit-sync/internal/store"
	"github.com/MKhiriev/go-habit-sync/internal/workers"
	"github.com/MKhiriev/go-habit-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("habit-sync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	transport, err := adapter.NewHTTPSyncTransport(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create sync transport")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewServices(storages, transport, cfg.Sync, log)

	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	defer cancel()

	if err = services.Orchestrator.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("init sync orchestrator")
	}
	defer services.Orchestrator.Dispose()

	notifier := adapter.NewPollingConnectivityNotifier(transport, cfg.Workers.ConnectivityPollInterval, log)
	jobs := workers.NewWorkers(services.Manager, notifier, cfg.Workers, log)
	jobs.Start(ctx)
	defer jobs.Stop()

	if err = runDemo(ctx, services.Manager, log); err != nil {
		log.Fatal().Err(err).Msg("demo run failed")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")
}

// runDemo enqueues a sample operation and runs one forced sync cycle when
// HABITSYNC_DEMO=1 is set. Handy for smoke-testing a fresh deployment
// against a running server.
func runDemo(ctx context.Context, manager service.SyncManager, log *logger.Logger) error {
	if os.Getenv("HABITSYNC_DEMO") != "1" {
		return nil
	}

	op, err := manager.QueueOperation(ctx, models.OperationUpdate, "habit", "demo-habit", models.DataMap{
		"name":        "Morning Run",
		"streakCount": 1,
		"updatedAt":   "2026-01-01T08:00:00Z",
	})
	if err != nil {
		return fmt.Errorf("enqueue demo operation: %w", err)
	}
	log.Info().Str("operation_id", op.ID).Msg("demo operation queued")

	if err = manager.ForceSync(ctx); err != nil {
		log.Warn().Err(err).Msg("demo sync cycle failed, operations stay queued")
	}

	stats, err := manager.SyncStats(ctx)
	if err != nil {
		return fmt.Errorf("collect sync stats: %w", err)
	}
	out, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Printf("Sync stats: %s\n", out)

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
