package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/power-ledger/internal/adapter"
	"github.com/feral-file/power-ledger/internal/config"
	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/metrics"
	"github.com/feral-file/power-ledger/internal/outbox"
	"github.com/feral-file/power-ledger/internal/providers/balance"
	"github.com/feral-file/power-ledger/internal/providers/jetstream"
	"github.com/feral-file/power-ledger/internal/ranking"
	"github.com/feral-file/power-ledger/internal/reconciler"
	"github.com/feral-file/power-ledger/internal/round"
	"github.com/feral-file/power-ledger/internal/snapshot"
	"github.com/feral-file/power-ledger/internal/store"
	"github.com/feral-file/power-ledger/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSchedulerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Service:         "scheduler",
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Scheduler")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, store.PoolSettings{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	}); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.BalanceSource.Timeout)

	m := metrics.PrometheusMetrics(cfg.Metrics.Namespace)

	// Connect to NATS JetStream
	publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewJetStreamDialer())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))

	// Round window policy
	epoch, _ := cfg.Rounds.EpochTime()
	policy := round.NewCalendarWindowPolicy(epoch, cfg.Rounds.WindowMonths)
	provider := round.NewProvider(dataStore)

	// Jobs
	source := balance.NewSubgraphClient(httpClient, cfg.BalanceSource.URL, jsonAdapter)
	rankingService := ranking.NewService(dataStore, provider, outbox.NewBuilder(jsonAdapter, clock))

	jobs := []sweeper.ScheduledJob{
		{Spec: cfg.Schedules.Snapshot, Job: snapshot.NewEngine(dataStore, source, clock, m)},
		{Spec: cfg.Schedules.Reconciler, Job: reconciler.New(dataStore, source, m, reconciler.Config{
			BatchSize:   cfg.Reconciler.BatchSize,
			Concurrency: cfg.BalanceSource.Concurrency,
		})},
		{Spec: cfg.Schedules.RoundWindow, Job: snapshot.NewAssigner(dataStore, policy, m, cfg.Reconciler.BatchSize)},
		{Spec: cfg.Schedules.RankingRefresh, Job: ranking.NewRefreshJob(provider, rankingService, rankingService, m)},
		{Spec: cfg.Schedules.RoundRollover, Job: ranking.NewRolloverJob(dataStore, provider, policy, rankingService, rankingService, clock, m)},
		{Spec: cfg.Schedules.OutboxRelay, Job: outbox.NewRelay(dataStore, publisher, clock, m, cfg.Outbox.BatchSize)},
	}
	scheduler := sweeper.NewScheduledSweeper(jobs, clock, m)

	// Expose Prometheus metrics
	metricsServer := &http.Server{
		Addr:              cfg.Metrics.Address,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorCtx(ctx, err, zap.String("component", "metrics"))
		}
	}()
	logger.InfoCtx(ctx, "Serving metrics", zap.String("address", cfg.Metrics.Address))

	errChan := make(chan error, 1)
	go func() {
		if err := scheduler.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.Error(err, zap.String("message", "Scheduler did not stop cleanly"))
	}
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("Scheduler stopped")
}
