package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/cache"
	"github.com/vtopia/nft-assistant/internal/config"
	"github.com/vtopia/nft-assistant/internal/ingest"
	"github.com/vtopia/nft-assistant/internal/logger"
	"github.com/vtopia/nft-assistant/internal/messaging"
	"github.com/vtopia/nft-assistant/internal/metadata"
	"github.com/vtopia/nft-assistant/internal/metrics"
	"github.com/vtopia/nft-assistant/internal/providers/jetstream"
	"github.com/vtopia/nft-assistant/internal/providers/temporal"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/helius"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/hellomoon"
	"github.com/vtopia/nft-assistant/internal/ratelimit"
	"github.com/vtopia/nft-assistant/internal/retry"
	"github.com/vtopia/nft-assistant/internal/store"
	"github.com/vtopia/nft-assistant/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerIngestConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "worker-ingest",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting ingestion worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db, cfg.Ingest.WriteBatchSize)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clockAdapter := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Vendors.HTTPTimeout)

	// Redis backs the resolver cache and the distributed rate limiter
	var redisClient adapter.RedisClient
	var resolverCache cache.ResolverCache
	if cfg.Redis.URL != "" {
		redisClient, err = adapter.NewRedisClient(cfg.Redis.URL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create Redis client", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		resolverCache = cache.NewRedisResolverCache(redisClient, jsonAdapter, cfg.Redis.KeyPrefix, cfg.Redis.ResolverCacheTTL)
	} else {
		logger.WarnCtx(ctx, "Redis not configured, resolver cache disabled")
	}

	var rateLimitProxy ratelimit.Proxy
	if cfg.RateLimiter.Enabled {
		rateLimitProxy, err = ratelimit.NewProxy(cfg.RateLimiter, redisClient, clockAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
		}
		defer func() { _ = rateLimitProxy.Close() }()
	}

	// Event publisher is optional
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err))
		}
		defer publisher.Close()
	}

	// Ingestion pipeline
	hellomoonClient := hellomoon.NewClient(httpClient, rateLimitProxy, cfg.Vendors.HelloMoonURL, cfg.Vendors.HelloMoonAPIKey, jsonAdapter)
	heliusClient := helius.NewClient(httpClient, rateLimitProxy, cfg.Vendors.HeliusRPCURL, cfg.Vendors.HeliusAPIKey, jsonAdapter)
	normalizer := metadata.NewNormalizer(jsonAdapter, adapter.NewJCS())
	retrier := retry.New(clockAdapter)

	resolver := ingest.NewResolver(hellomoonClient, resolverCache, retrier, retry.FromConfig(cfg.Ingest.ResolverRetry))
	fetcher := ingest.NewFetcher(ingest.FetcherConfig{
		MintPageSize:    cfg.Ingest.MintPageSize,
		MaxPages:        cfg.Ingest.MaxPages,
		BatchSize:       cfg.Ingest.BatchSize,
		BatchRetry:      retry.FromConfig(cfg.Ingest.BatchRetry),
		PaginationRetry: retry.FromConfig(cfg.Ingest.PaginationRetry),
	}, hellomoonClient, heliusClient, normalizer, dataStore, retrier)
	ingestor := ingest.NewIngestor(resolver, fetcher, dataStore, publisher, clockAdapter)

	// Connect to Temporal
	temporalClient, err := temporal.Dial(temporal.ClientConfig{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.IngestionTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			Interceptors:                       []interceptor.WorkerInterceptor{temporal.NewSentryActivityInterceptor()},
		})

	executor := workflows.NewExecutor(ingestor, adapter.NewActivity())
	workerCore := workflows.NewWorkerCore(executor, workflows.WorkerCoreConfig{
		IngestionActivityTimeout: cfg.Temporal.IngestionActivityTimeout,
	})

	temporalWorker.RegisterWorkflow(workerCore.IngestCollection)
	temporalWorker.RegisterActivity(executor.IngestCollection)
	logger.InfoCtx(ctx, "Registered workflows and activities", zap.String("task_queue", cfg.Temporal.IngestionTaskQueue))

	// Metrics endpoint
	metricsServer := metrics.NewServer(fmt.Sprintf(":%d", cfg.MetricsPort))
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorCtx(ctx, fmt.Errorf("metrics server stopped: %w", err))
		}
	}()

	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	cancel()

	temporalWorker.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(fmt.Errorf("failed to shutdown metrics server: %w", err))
	}

	logger.Info("Worker stopped")
}
