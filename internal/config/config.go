package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m"
}

// RedisConfig holds Redis configuration, used for rate limiting and the resolver cache
type RedisConfig struct {
	// URL is a redis:// or rediss:// URL, empty disables Redis
	URL              string        `mapstructure:"url"`
	ResolverCacheTTL time.Duration `mapstructure:"resolver_cache_ttl"`
	KeyPrefix        string        `mapstructure:"key_prefix"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	// URL is the NATS server URL, empty disables event publishing
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string        `mapstructure:"host_port"`
	Namespace                          string        `mapstructure:"namespace"`
	IngestionTaskQueue                 string        `mapstructure:"ingestion_task_queue"`
	IngestionActivityTimeout           time.Duration `mapstructure:"ingestion_activity_timeout"`
	MaxConcurrentActivityExecutionSize int           `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64       `mapstructure:"worker_activities_per_second"`
}

// VendorsConfig holds third-party API configuration
type VendorsConfig struct {
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
	HelloMoonURL    string        `mapstructure:"hellomoon_url"`
	HelloMoonAPIKey string        `mapstructure:"hellomoon_api_key"`
	HeliusRPCURL    string        `mapstructure:"helius_rpc_url"`
	HeliusAPIKey    string        `mapstructure:"helius_api_key"`
	MoralisURL      string        `mapstructure:"moralis_url"`
	MoralisAPIKey   string        `mapstructure:"moralis_api_key"`
	MoralisNetwork  string        `mapstructure:"moralis_network"`
	MagicEdenURL    string        `mapstructure:"magiceden_url"`
	MagicEdenAPIKey string        `mapstructure:"magiceden_api_key"`
	IPFSGateways    []string      `mapstructure:"ipfs_gateways"`
	ArweaveGateways []string      `mapstructure:"arweave_gateways"`
}

// OpenAIConfig holds LLM configuration
type OpenAIConfig struct {
	URL         string        `mapstructure:"url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// RetryPolicyConfig describes a retry policy
type RetryPolicyConfig struct {
	// MaxAttempts is the total number of attempts, 1 disables retries
	MaxAttempts int           `mapstructure:"max_attempts"`
	Delay       time.Duration `mapstructure:"delay"`
	// Strategy is either "fixed" or "exponential"
	Strategy string        `mapstructure:"strategy"`
	MaxDelay time.Duration `mapstructure:"max_delay"`
}

// IngestConfig holds collection ingestion configuration
type IngestConfig struct {
	MintPageSize int `mapstructure:"mint_page_size"`
	// MaxPages caps mint pagination, 0 means unbounded
	MaxPages        int               `mapstructure:"max_pages"`
	BatchSize       int               `mapstructure:"batch_size"`
	WriteBatchSize  int               `mapstructure:"write_batch_size"`
	BatchRetry      RetryPolicyConfig `mapstructure:"batch_retry"`
	ResolverRetry   RetryPolicyConfig `mapstructure:"resolver_retry"`
	PaginationRetry RetryPolicyConfig `mapstructure:"pagination_retry"`
}

// RateLimitConfig holds the rate limit of a single provider
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds rate limiting proxy configuration
type RateLimiterConfig struct {
	Enabled                 bool                       `mapstructure:"enabled"`
	RedisKeyPrefix          string                     `mapstructure:"redis_key_prefix"`
	MaxWorkers              int                        `mapstructure:"max_workers"`
	MaxQueueSize            int                        `mapstructure:"max_queue_size"`
	EnableLocalFallback     bool                       `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64                    `mapstructure:"local_fallback_multiplier"`
	Providers               map[string]RateLimitConfig `mapstructure:"providers"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	MetricsPort  int    `mapstructure:"metrics_port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// CORSAllowedOrigins restricts cross origin requests, every origin is allowed when empty
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Server      ServerConfig      `mapstructure:"server"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	NATS        NATSConfig        `mapstructure:"nats"`
	Temporal    TemporalConfig    `mapstructure:"temporal"`
	Vendors     VendorsConfig     `mapstructure:"vendors"`
	OpenAI      OpenAIConfig      `mapstructure:"openai"`
	Ingest      IngestConfig      `mapstructure:"ingest"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
}

// WorkerIngestConfig holds configuration for the ingestion worker
type WorkerIngestConfig struct {
	BaseConfig  `mapstructure:",squash"`
	MetricsPort int               `mapstructure:"metrics_port"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	NATS        NATSConfig        `mapstructure:"nats"`
	Temporal    TemporalConfig    `mapstructure:"temporal"`
	Vendors     VendorsConfig     `mapstructure:"vendors"`
	Ingest      IngestConfig      `mapstructure:"ingest"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	setCommonDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("openai.url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.temperature", 0)
	v.SetDefault("openai.timeout", "60s")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadWorkerIngestConfig loads configuration for the ingestion worker
func LoadWorkerIngestConfig(configFile string, envPath string) (*WorkerIngestConfig, error) {
	v := configureViper("worker-ingest", configFile, envPath)

	setCommonDefaults(v)
	v.SetDefault("metrics_port", 9091)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg WorkerIngestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}

	return &cfg, nil
}

// setCommonDefaults sets defaults shared by every service
func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("environment", "development")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("redis.resolver_cache_ttl", "24h")
	v.SetDefault("redis.key_prefix", "nft:assistant:")
	v.SetDefault("nats.stream_name", "INGESTION_EVENTS")
	v.SetDefault("nats.subject_prefix", "ingestion.collection")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.ingestion_task_queue", "collection-ingestion")
	v.SetDefault("temporal.ingestion_activity_timeout", "6h")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 4)
	v.SetDefault("temporal.worker_activities_per_second", 10)
	v.SetDefault("vendors.http_timeout", "60s")
	v.SetDefault("vendors.hellomoon_url", "https://rest-api.hellomoon.io")
	v.SetDefault("vendors.helius_rpc_url", "https://mainnet.helius-rpc.com")
	v.SetDefault("vendors.moralis_url", "https://solana-gateway.moralis.io")
	v.SetDefault("vendors.moralis_network", "mainnet")
	v.SetDefault("vendors.magiceden_url", "https://api-mainnet.magiceden.dev")
	v.SetDefault("ingest.mint_page_size", 100)
	v.SetDefault("ingest.max_pages", 0)
	v.SetDefault("ingest.batch_size", 1000)
	v.SetDefault("ingest.write_batch_size", 7000)
	v.SetDefault("ingest.batch_retry.max_attempts", 5)
	v.SetDefault("ingest.batch_retry.delay", "10s")
	v.SetDefault("ingest.batch_retry.strategy", "fixed")
	v.SetDefault("ingest.resolver_retry.max_attempts", 1)
	v.SetDefault("ingest.resolver_retry.strategy", "fixed")
	v.SetDefault("ingest.pagination_retry.max_attempts", 1)
	v.SetDefault("ingest.pagination_retry.strategy", "fixed")
	v.SetDefault("rate_limiter.enabled", false)
	v.SetDefault("rate_limiter.enable_local_fallback", true)
	v.SetDefault("rate_limiter.local_fallback_multiplier", 0.5)
}

// readConfig reads the config file, a missing file falls back to environment variables
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("NFT_ASSISTANT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars binds every known key so env-only deployments unmarshal into the structs
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"environment",
		"metrics_port",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Redis
		"redis.url",
		"redis.resolver_cache_ttl",
		"redis.key_prefix",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.ingestion_task_queue",
		"temporal.ingestion_activity_timeout",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		// Vendors
		"vendors.http_timeout",
		"vendors.hellomoon_url",
		"vendors.hellomoon_api_key",
		"vendors.helius_rpc_url",
		"vendors.helius_api_key",
		"vendors.moralis_url",
		"vendors.moralis_api_key",
		"vendors.moralis_network",
		"vendors.magiceden_url",
		"vendors.magiceden_api_key",
		"vendors.ipfs_gateways",
		"vendors.arweave_gateways",
		// OpenAI
		"openai.url",
		"openai.api_key",
		"openai.model",
		"openai.temperature",
		"openai.timeout",
		// Ingest
		"ingest.mint_page_size",
		"ingest.max_pages",
		"ingest.batch_size",
		"ingest.write_batch_size",
		"ingest.batch_retry.max_attempts",
		"ingest.batch_retry.delay",
		"ingest.batch_retry.strategy",
		"ingest.batch_retry.max_delay",
		"ingest.resolver_retry.max_attempts",
		"ingest.resolver_retry.delay",
		"ingest.resolver_retry.strategy",
		"ingest.resolver_retry.max_delay",
		"ingest.pagination_retry.max_attempts",
		"ingest.pagination_retry.delay",
		"ingest.pagination_retry.strategy",
		"ingest.pagination_retry.max_delay",
		// Rate limiter
		"rate_limiter.enabled",
		"rate_limiter.redis_key_prefix",
		"rate_limiter.max_workers",
		"rate_limiter.max_queue_size",
		"rate_limiter.enable_local_fallback",
		"rate_limiter.local_fallback_multiplier",
		// Server
		"server.host",
		"server.port",
		"server.metrics_port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads .env files from envPath, later files override earlier ones
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}

// ChdirRepoRoot walks up from the working directory to the first one holding a config directory
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
