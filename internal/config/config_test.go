package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	if content == "" {
		return filepath.Join(tmpDir, "nonexistent.yaml")
	}
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
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
  host: 127.0.0.1
  port: 9000
database:
  host: localhost
  port: 5433
  read_host: replica
  user: testuser
  password: testpass
  dbname: testdb
allocation:
  max_projects: 5
  precision: 1
  max_retries: 7
temporal:
  task_queue: close-rounds
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "replica", cfg.Database.ReadHost)
				assert.Equal(t, 5, cfg.Allocation.MaxProjects)
				assert.Equal(t, int32(1), cfg.Allocation.Precision)
				assert.Equal(t, 7, cfg.Allocation.MaxRetries)
				assert.Equal(t, "close-rounds", cfg.Temporal.TaskQueue)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Allocation.MaxProjects)
				assert.Equal(t, int32(2), cfg.Allocation.Precision)
				assert.Equal(t, 3, cfg.Allocation.MaxRetries)
				assert.Equal(t, "funding-rounds", cfg.Temporal.TaskQueue)
			},
		},
		{
			name:       "missing config file",
			configFile: "",
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, 20, cfg.Allocation.MaxProjects)
			},
		},
		{
			name: "non positive project limit",
			configFile: `
allocation:
  max_projects: 0
`,
			expectError: true,
		},
		{
			name: "precision finer than the percentage column",
			configFile: `
allocation:
  precision: 3
`,
			expectError: true,
		},
		{
			name: "negative precision",
			configFile: `
allocation:
  precision: -1
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfig(t, tt.configFile), t.TempDir())

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

func TestLoadSchedulerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SchedulerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
rounds:
  epoch: "2024-01-01T00:00:00Z"
  window_months: 3
balance_source:
  url: "https://subgraph.example.com"
  timeout: 5s
  concurrency: 4
reconciler:
  batch_size: 50
schedules:
  snapshot: "0 0 * * * *"
metrics:
  address: ":9999"
`,
			validate: func(t *testing.T, cfg *SchedulerConfig) {
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				epoch, err := cfg.Rounds.EpochTime()
				require.NoError(t, err)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), epoch)
				assert.Equal(t, 3, cfg.Rounds.WindowMonths)
				assert.Equal(t, "https://subgraph.example.com", cfg.BalanceSource.URL)
				assert.Equal(t, 5*time.Second, cfg.BalanceSource.Timeout)
				assert.Equal(t, 4, cfg.BalanceSource.Concurrency)
				assert.Equal(t, 50, cfg.Reconciler.BatchSize)
				assert.Equal(t, "0 0 * * * *", cfg.Schedules.Snapshot)
				assert.Equal(t, "0 */5 * * * *", cfg.Schedules.Reconciler)
				assert.Equal(t, ":9999", cfg.Metrics.Address)
			},
		},
		{
			name:       "defaults",
			configFile: "",
			validate: func(t *testing.T, cfg *SchedulerConfig) {
				assert.Equal(t, "2022-12-22T00:00:00Z", cfg.Rounds.Epoch)
				assert.Equal(t, 1, cfg.Rounds.WindowMonths)
				assert.Equal(t, 1000, cfg.Reconciler.BatchSize)
				assert.Equal(t, 100, cfg.Outbox.BatchSize)
				assert.Equal(t, "0 */30 * * * *", cfg.Schedules.Snapshot)
				assert.Equal(t, "POWER_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "power_ledger", cfg.Metrics.Namespace)
			},
		},
		{
			name: "invalid epoch",
			configFile: `
rounds:
  epoch: "yesterday"
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadSchedulerConfig(writeConfig(t, tt.configFile), t.TempDir())

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

func TestLoadWorkerConfig(t *testing.T) {
	configFile := writeConfig(t, `
temporal:
  host_port: "temporal:7233"
scoring:
  sources:
    gitcoin: "https://scores.example.com/gitcoin"
    passport: "https://scores.example.com/passport"
`)

	cfg, err := LoadWorkerConfig(configFile, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "temporal:7233", cfg.Temporal.HostPort)
	assert.Equal(t, "default", cfg.Temporal.Namespace)
	assert.Len(t, cfg.Scoring.Sources, 2)
	assert.Equal(t, "https://scores.example.com/gitcoin", cfg.Scoring.Sources["gitcoin"])
	assert.Equal(t, 30*time.Second, cfg.Scoring.Timeout)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		ReadHost: "replica",
		User:     "u",
		Password: "p",
		DBName:   "power",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=power sslmode=disable", cfg.DSN())
	assert.Equal(t, "host=replica port=5432 user=u password=p dbname=power sslmode=disable", cfg.ReadDSN())

	cfg.ReadPort = 6432
	assert.Equal(t, "host=replica port=6432 user=u password=p dbname=power sslmode=disable", cfg.ReadDSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("POWER_LEDGER_DATABASE_HOST", "env-host")
	t.Setenv("POWER_LEDGER_ALLOCATION_MAX_PROJECTS", "12")
	t.Setenv("POWER_LEDGER_SERVER_PORT", "7070")

	cfg, err := LoadAPIConfig(writeConfig(t, ""), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 12, cfg.Allocation.MaxProjects)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestConfigWithEnvFile(t *testing.T) {
	envDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte("POWER_LEDGER_ROUNDS_WINDOW_MONTHS=2\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env.scheduler.local"), []byte("POWER_LEDGER_ROUNDS_WINDOW_MONTHS=6\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("POWER_LEDGER_ROUNDS_WINDOW_MONTHS") })

	cfg, err := LoadSchedulerConfig(writeConfig(t, ""), envDir)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Rounds.WindowMonths)
}
