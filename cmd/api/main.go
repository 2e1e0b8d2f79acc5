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

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/api/middleware"
	"github.com/vtopia/nft-assistant/internal/api/server"
	"github.com/vtopia/nft-assistant/internal/api/shared/executor"
	"github.com/vtopia/nft-assistant/internal/cache"
	"github.com/vtopia/nft-assistant/internal/chat"
	"github.com/vtopia/nft-assistant/internal/config"
	"github.com/vtopia/nft-assistant/internal/ingest"
	"github.com/vtopia/nft-assistant/internal/logger"
	"github.com/vtopia/nft-assistant/internal/messaging"
	"github.com/vtopia/nft-assistant/internal/metadata"
	"github.com/vtopia/nft-assistant/internal/metrics"
	"github.com/vtopia/nft-assistant/internal/providers/jetstream"
	"github.com/vtopia/nft-assistant/internal/providers/openai"
	"github.com/vtopia/nft-assistant/internal/providers/temporal"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/helius"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/hellomoon"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/magiceden"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/moralis"
	"github.com/vtopia/nft-assistant/internal/ratelimit"
	"github.com/vtopia/nft-assistant/internal/retry"
	"github.com/vtopia/nft-assistant/internal/store"
	"github.com/vtopia/nft-assistant/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting NFT assistant API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

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

	// Vendor clients
	hellomoonClient := hellomoon.NewClient(httpClient, rateLimitProxy, cfg.Vendors.HelloMoonURL, cfg.Vendors.HelloMoonAPIKey, jsonAdapter)
	heliusClient := helius.NewClient(httpClient, rateLimitProxy, cfg.Vendors.HeliusRPCURL, cfg.Vendors.HeliusAPIKey, jsonAdapter)
	uriResolver := uri.NewResolver(httpClient, uri.Config{
		IPFSGateways:    cfg.Vendors.IPFSGateways,
		ArweaveGateways: cfg.Vendors.ArweaveGateways,
	})
	moralisClient := moralis.NewClient(httpClient, rateLimitProxy, cfg.Vendors.MoralisURL, cfg.Vendors.MoralisAPIKey, cfg.Vendors.MoralisNetwork, jsonAdapter, uriResolver)
	magicEdenClient := magiceden.NewClient(httpClient, rateLimitProxy, cfg.Vendors.MagicEdenURL, cfg.Vendors.MagicEdenAPIKey, jsonAdapter)
	openaiClient := openai.NewClient(adapter.NewHTTPClient(cfg.OpenAI.Timeout), rateLimitProxy, cfg.OpenAI.URL, cfg.OpenAI.APIKey, cfg.OpenAI.Model, jsonAdapter)

	// Ingestion pipeline, used synchronously for lookups by name
	retrier := retry.New(clockAdapter)
	resolver := ingest.NewResolver(hellomoonClient, resolverCache, retrier, retry.FromConfig(cfg.Ingest.ResolverRetry))
	fetcher := ingest.NewFetcher(ingest.FetcherConfig{
		MintPageSize:    cfg.Ingest.MintPageSize,
		MaxPages:        cfg.Ingest.MaxPages,
		BatchSize:       cfg.Ingest.BatchSize,
		BatchRetry:      retry.FromConfig(cfg.Ingest.BatchRetry),
		PaginationRetry: retry.FromConfig(cfg.Ingest.PaginationRetry),
	}, hellomoonClient, heliusClient, metadata.NewNormalizer(jsonAdapter, adapter.NewJCS()), dataStore, retrier)
	ingestor := ingest.NewIngestor(resolver, fetcher, dataStore, publisher, clockAdapter)

	assistant := chat.NewAssistant(openaiClient, moralisClient, magicEdenClient, ingestor, jsonAdapter, cfg.OpenAI.Temperature)

	// Connect to Temporal with logger integration
	temporalClient, err := temporal.Dial(temporal.ClientConfig{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	exec := executor.NewExecutor(assistant, ingestor, dataStore, moralisClient, magicEdenClient, temporalClient, cfg.Temporal.IngestionTaskQueue)

	srv := server.New(server.Config{
		Debug:              cfg.Debug,
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		ReadTimeout:        time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:       time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:        time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, exec)

	errCh := make(chan error, 2)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	metricsServer := metrics.NewServer(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.MetricsPort))
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("metrics server stopped: %w", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}
	cancel()

	// The original ctx is canceled at this point
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, zap.String("component", "server"))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, zap.String("component", "metrics"))
	}

	logger.Info("API server stopped")
}
