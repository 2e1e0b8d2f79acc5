package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  port: 9000
auth:
  api_keys: ["key-1", "key-2"]
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
redis:
  url: "redis://localhost:6379/0"
vendors:
  hellomoon_api_key: hm-key
  helius_api_key: helius-key
  moralis_api_key: moralis-key
  ipfs_gateways:
    - https://nftstorage.link
    - https://ipfs.io
openai:
  api_key: sk-test
  model: gpt-4o-mini
ingest:
  max_pages: 50
  batch_retry:
    max_attempts: 3
    delay: 2s
    strategy: exponential
    max_delay: 30s
  resolver_retry:
    max_attempts: 3
    delay: 1s
rate_limiter:
  enabled: true
  providers:
    helius:
      requests_per_second: 10
      burst: 20
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, []string{"key-1", "key-2"}, cfg.Auth.APIKeys)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
				assert.Equal(t, "hm-key", cfg.Vendors.HelloMoonAPIKey)
				assert.Equal(t, "helius-key", cfg.Vendors.HeliusAPIKey)
				assert.Equal(t, "moralis-key", cfg.Vendors.MoralisAPIKey)
				assert.Equal(t, []string{"https://nftstorage.link", "https://ipfs.io"}, cfg.Vendors.IPFSGateways)
				assert.Empty(t, cfg.Vendors.ArweaveGateways)
				assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
				assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
				assert.Equal(t, 50, cfg.Ingest.MaxPages)
				assert.Equal(t, 3, cfg.Ingest.BatchRetry.MaxAttempts)
				assert.Equal(t, 2*time.Second, cfg.Ingest.BatchRetry.Delay)
				assert.Equal(t, "exponential", cfg.Ingest.BatchRetry.Strategy)
				assert.Equal(t, 30*time.Second, cfg.Ingest.BatchRetry.MaxDelay)
				assert.Equal(t, 3, cfg.Ingest.ResolverRetry.MaxAttempts)
				assert.True(t, cfg.RateLimiter.Enabled)
				assert.Equal(t, 10, cfg.RateLimiter.Providers["helius"].RequestsPerSecond)
				assert.Equal(t, 20, cfg.RateLimiter.Providers["helius"].Burst)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "collection-ingestion", cfg.Temporal.IngestionTaskQueue)
				assert.Equal(t, "ingestion.collection", cfg.NATS.SubjectPrefix)
				assert.Equal(t, 24*time.Hour, cfg.Redis.ResolverCacheTTL)
				assert.Equal(t, "https://rest-api.hellomoon.io", cfg.Vendors.HelloMoonURL)
				assert.Equal(t, "mainnet", cfg.Vendors.MoralisNetwork)
				assert.Equal(t, 100, cfg.Ingest.MintPageSize)
				assert.Equal(t, 0, cfg.Ingest.MaxPages)
				assert.Equal(t, 1000, cfg.Ingest.BatchSize)
				assert.Equal(t, 7000, cfg.Ingest.WriteBatchSize)
				assert.Equal(t, 5, cfg.Ingest.BatchRetry.MaxAttempts)
				assert.Equal(t, 10*time.Second, cfg.Ingest.BatchRetry.Delay)
				assert.Equal(t, "fixed", cfg.Ingest.BatchRetry.Strategy)
				assert.Equal(t, 1, cfg.Ingest.ResolverRetry.MaxAttempts)
				assert.Equal(t, 1, cfg.Ingest.PaginationRetry.MaxAttempts)
				assert.False(t, cfg.RateLimiter.Enabled)
				assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
			},
		},
		{
			name: "invalid value",
			configFile: `
database:
  port: invalid
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfigFile(t, tt.configFile), t.TempDir())
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadWorkerIngestConfig(t *testing.T) {
	t.Run("valid config file", func(t *testing.T) {
		path := writeConfigFile(t, `
metrics_port: 9999
database:
  host: db
  dbname: nft
temporal:
  ingestion_activity_timeout: 2h
nats:
  url: "nats://localhost:4222"
`)
		cfg, err := LoadWorkerIngestConfig(path, t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 9999, cfg.MetricsPort)
		assert.Equal(t, "db", cfg.Database.Host)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, 2*time.Hour, cfg.Temporal.IngestionActivityTimeout)
		assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
		assert.Equal(t, "INGESTION_EVENTS", cfg.NATS.StreamName)
	})

	t.Run("missing database host", func(t *testing.T) {
		path := writeConfigFile(t, `
debug: true
`)
		cfg, err := LoadWorkerIngestConfig(path, t.TempDir())
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "user",
		Password: "p@ss",
		DBName:   "nft",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=user password=p@ss dbname=nft sslmode=disable", cfg.DSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	envDir := t.TempDir()
	envContent := `NFT_ASSISTANT_DEBUG=true
NFT_ASSISTANT_DATABASE_HOST=env-host
NFT_ASSISTANT_DATABASE_PORT=6543
NFT_ASSISTANT_VENDORS_HELIUS_API_KEY=env-helius
NFT_ASSISTANT_INGEST_BATCH_RETRY_MAX_ATTEMPTS=7
`
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600))
	t.Cleanup(func() {
		for _, k := range []string{
			"NFT_ASSISTANT_DEBUG",
			"NFT_ASSISTANT_DATABASE_HOST",
			"NFT_ASSISTANT_DATABASE_PORT",
			"NFT_ASSISTANT_VENDORS_HELIUS_API_KEY",
			"NFT_ASSISTANT_INGEST_BATCH_RETRY_MAX_ATTEMPTS",
		} {
			_ = os.Unsetenv(k)
		}
	})

	path := writeConfigFile(t, `
debug: false
database:
  host: file-host
  port: 5432
`)

	cfg, err := LoadAPIConfig(path, envDir)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "env-helius", cfg.Vendors.HeliusAPIKey)
	assert.Equal(t, 7, cfg.Ingest.BatchRetry.MaxAttempts)
}
