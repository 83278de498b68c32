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

	"github.com/feral-file/power-ledger/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	TaskQueue                          string  `mapstructure:"task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	AllowedOrigins []string `mapstructure:"allowed_origins"` // CORS origins, empty allows all
}

// AllocationConfig holds allocation ledger configuration
type AllocationConfig struct {
	MaxProjects int   `mapstructure:"max_projects"`
	Precision   int32 `mapstructure:"precision"`   // decimal places kept for percentages
	MaxRetries  int   `mapstructure:"max_retries"` // retries on concurrent modification
}

// RoundsConfig holds the round window policy configuration
type RoundsConfig struct {
	Epoch        string `mapstructure:"epoch"` // RFC3339 start of round 1
	WindowMonths int    `mapstructure:"window_months"`
}

// EpochTime parses the configured epoch
func (c RoundsConfig) EpochTime() (time.Time, error) {
	epoch, err := time.Parse(time.RFC3339, c.Epoch)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid rounds.epoch %q: %w", c.Epoch, err)
	}
	return epoch.UTC(), nil
}

// BalanceSourceConfig holds the external balance source configuration
type BalanceSourceConfig struct {
	URL         string        `mapstructure:"url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Concurrency int           `mapstructure:"concurrency"` // parallel wallet lookups
}

// ScoringConfig holds donor scoring sources, one URL per scheme
type ScoringConfig struct {
	Sources map[string]string `mapstructure:"sources"`
	Timeout time.Duration     `mapstructure:"timeout"`
}

// BatchConfig holds a job's batch size
type BatchConfig struct {
	BatchSize int `mapstructure:"batch_size"`
}

// SchedulesConfig holds cron specs (with seconds) of the periodic jobs
type SchedulesConfig struct {
	Snapshot       string `mapstructure:"snapshot"`
	Reconciler     string `mapstructure:"reconciler"`
	RoundWindow    string `mapstructure:"round_window"`
	RankingRefresh string `mapstructure:"ranking_refresh"`
	RoundRollover  string `mapstructure:"round_rollover"`
	OutboxRelay    string `mapstructure:"outbox_relay"`
}

// MetricsConfig holds Prometheus exposition configuration
type MetricsConfig struct {
	Address   string `mapstructure:"address"`
	Namespace string `mapstructure:"namespace"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Temporal   TemporalConfig   `mapstructure:"temporal"`
	Allocation AllocationConfig `mapstructure:"allocation"`
	Scoring    ScoringConfig    `mapstructure:"scoring"`
}

// SchedulerConfig holds configuration for the scheduler program
type SchedulerConfig struct {
	BaseConfig    `mapstructure:",squash"`
	Database      DatabaseConfig      `mapstructure:"database"`
	NATS          NATSConfig          `mapstructure:"nats"`
	Rounds        RoundsConfig        `mapstructure:"rounds"`
	BalanceSource BalanceSourceConfig `mapstructure:"balance_source"`
	Reconciler    BatchConfig         `mapstructure:"reconciler"`
	Outbox        BatchConfig         `mapstructure:"outbox"`
	Schedules     SchedulesConfig     `mapstructure:"schedules"`
	Metrics       MetricsConfig       `mapstructure:"metrics"`
}

// WorkerConfig holds configuration for the funding round worker
type WorkerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Temporal   TemporalConfig `mapstructure:"temporal"`
	Scoring    ScoringConfig  `mapstructure:"scoring"`
}

// readConfig reads the config file, falling back to environment variables when it does not exist
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.task_queue", "funding-rounds")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 10)
	v.SetDefault("temporal.worker_activities_per_second", 10)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 2)
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("allocation.max_projects", 20)
	v.SetDefault("allocation.precision", 2)
	v.SetDefault("allocation.max_retries", 3)
	v.SetDefault("scoring.timeout", "30s")
	setDatabaseDefaults(v)
	setTemporalDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Allocation.MaxProjects <= 0 {
		return nil, errors.New("allocation.max_projects must be positive")
	}
	// Finer percentages would be rounded silently by the column
	if p := cfg.Allocation.Precision; p < 0 || p > domain.MAX_PERCENTAGE_PRECISION {
		return nil, fmt.Errorf("allocation.precision must be between 0 and %d, got %d", domain.MAX_PERCENTAGE_PRECISION, p)
	}

	return &cfg, nil
}

// LoadSchedulerConfig loads configuration for the scheduler program
func LoadSchedulerConfig(configFile string, envPath string) (*SchedulerConfig, error) {
	v := configureViper("scheduler", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "POWER_EVENTS")
	v.SetDefault("nats.connection_name", "power-ledger-scheduler")
	v.SetDefault("rounds.epoch", "2022-12-22T00:00:00Z")
	v.SetDefault("rounds.window_months", 1)
	v.SetDefault("balance_source.timeout", "30s")
	v.SetDefault("balance_source.concurrency", 8)
	v.SetDefault("reconciler.batch_size", 1000)
	v.SetDefault("outbox.batch_size", 100)
	v.SetDefault("schedules.snapshot", "0 */30 * * * *")
	v.SetDefault("schedules.reconciler", "0 */5 * * * *")
	v.SetDefault("schedules.round_window", "30 */5 * * * *")
	v.SetDefault("schedules.ranking_refresh", "0 */10 * * * *")
	v.SetDefault("schedules.round_rollover", "0 0 * * * *")
	v.SetDefault("schedules.outbox_relay", "*/15 * * * * *")
	v.SetDefault("metrics.address", ":9090")
	v.SetDefault("metrics.namespace", "power_ledger")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SchedulerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if _, err := cfg.Rounds.EpochTime(); err != nil {
		return nil, err
	}
	if cfg.Rounds.WindowMonths <= 0 {
		return nil, errors.New("rounds.window_months must be positive")
	}

	return &cfg, nil
}

// LoadWorkerConfig loads configuration for the funding round worker
func LoadWorkerConfig(configFile string, envPath string) (*WorkerConfig, error) {
	v := configureViper("worker", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	v.SetDefault("scoring.timeout", "30s")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg WorkerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/scheduler/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("POWER_LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Allocation ledger
		"allocation.max_projects",
		"allocation.precision",
		"allocation.max_retries",
		// Rounds
		"rounds.epoch",
		"rounds.window_months",
		// Balance source
		"balance_source.url",
		"balance_source.timeout",
		"balance_source.concurrency",
		// Scoring
		"scoring.sources",
		"scoring.timeout",
		// Jobs
		"reconciler.batch_size",
		"outbox.batch_size",
		"schedules.snapshot",
		"schedules.reconciler",
		"schedules.round_window",
		"schedules.ranking_refresh",
		"schedules.round_rollover",
		"schedules.outbox_relay",
		// Metrics
		"metrics.address",
		"metrics.namespace",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	// Create candidates list
	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
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

// ReadDSN returns the read-replica database connection string.
// If ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}
