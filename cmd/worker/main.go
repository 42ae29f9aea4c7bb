package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"speed/internal/infra/adapter/persistence"
	"speed/internal/infra/db"
	"speed/internal/infra/notifier"
	workerPkg "speed/internal/infra/worker"
	"speed/internal/observability/logging"
	"speed/internal/usecase/digest"
)

// waitForMigrations blocks until the API has created the schema.
func waitForMigrations(logger *slog.Logger, database *sql.DB) {
	const probe = "SELECT 1 FROM queued_articles LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := database.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	waitForMigrations(logger, database)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workerMetrics := workerPkg.NewWorkerMetrics()
	cfg := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	logger.Info("worker configuration loaded",
		slog.String("digest_schedule", cfg.DigestSchedule),
		slog.String("timezone", cfg.Timezone),
		slog.Duration("digest_timeout", cfg.DigestTimeout),
		slog.Int("health_port", cfg.HealthPort))

	stores, err := persistence.NewStores(database, db.Driver())
	if err != nil {
		logger.Error("failed to create stores", slog.Any("error", err))
		os.Exit(1)
	}

	notifiers := notifier.FromConfig(notifier.LoadConfigFromEnv())
	for _, n := range notifiers {
		logger.Info("digest channel enabled", slog.String("channel", n.Name()))
	}

	svc := &digest.Service{
		Queue:     stores.Queue,
		Articles:  stores.Articles,
		Rejected:  stores.Rejected,
		Notifiers: notifiers,
	}

	healthServer := workerPkg.NewHealthServer(fmt.Sprintf(":%d", cfg.HealthPort), logger, notifiers)
	go func() {
		if err := healthServer.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	job := &workerPkg.DigestJob{
		Run:     svc.Run,
		Timeout: cfg.DigestTimeout,
		Metrics: workerMetrics,
		Logger:  logger,
	}
	runScheduler(ctx, logger, cfg, job, healthServer)
}

// runScheduler runs the digest job on cfg.DigestSchedule until ctx is cancelled.
func runScheduler(ctx context.Context, logger *slog.Logger, cfg *workerPkg.WorkerConfig, job *workerPkg.DigestJob, healthServer *workerPkg.HealthServer) {
	c := cron.New(cron.WithLocation(cfg.Location()), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(cfg.DigestSchedule, job.Execute); err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()
	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", cfg.DigestSchedule),
		slog.String("timezone", cfg.Timezone))

	<-ctx.Done()
	healthServer.SetReady(false)
	logger.Info("worker shutting down, waiting for running digest")
	<-c.Stop().Done()
	logger.Info("worker stopped")
}
