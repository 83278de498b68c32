package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/feral-file/power-ledger/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain starts PostgreSQL (or uses TEST_DB_HOST) and applies the schema
func TestMain(m *testing.M) {
	ctx := context.Background()

	dsn, err := testDSN(ctx)
	if err != nil {
		fmt.Printf("Failed to prepare test database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	if err := applySchema(testDB); err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	code := m.Run()
	terminateContainer(ctx)
	os.Exit(code)
}

// testDSN returns the DSN of an external database when TEST_DB_HOST is set, otherwise of a container
func testDSN(ctx context.Context) (string, error) {
	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host,
			envOr("TEST_DB_PORT", "5432"),
			envOr("TEST_DB_USER", "postgres"),
			envOr("TEST_DB_PASSWORD", "postgres"),
			envOr("TEST_DB_NAME", "test_db"))
		fmt.Printf("Using external database: %s\n", host)
		return dsn, nil
	}

	var err error
	pgContainer, err = postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	return pgContainer.ConnectionString(ctx, "sslmode=disable")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func terminateContainer(ctx context.Context) {
	if pgContainer == nil {
		return
	}
	if err := pgContainer.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
	}
}

// applySchema executes db/init_pg_db.sql
func applySchema(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	schemaPath := filepath.Join("..", "..", "db", "init_pg_db.sql")
	schemaSQL, err := os.ReadFile(schemaPath) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// testEnv is a store bound to a per-test transaction plus the raw handle used for seeding
type testEnv struct {
	store Store
	db    *gorm.DB
}

// initPGTestDB opens a transaction that is rolled back when the test ends
func initPGTestDB(t *testing.T) *testEnv {
	t.Helper()
	require.NotNil(t, testDB, "test database not initialized")

	tx := testDB.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
	})

	return &testEnv{store: NewPGStore(tx), db: tx}
}

// initCommittedPGTestDB binds the store to the shared handle so concurrent transactions see each
// other's commits. Rows seeded through it must be removed with cleanupCommitted.
func initCommittedPGTestDB(t *testing.T) *testEnv {
	t.Helper()
	require.NotNil(t, testDB, "test database not initialized")
	return &testEnv{store: NewPGStore(testDB), db: testDB}
}

// cleanupCommitted deletes seeded users and projects; allocations cascade
func (e *testEnv) cleanupCommitted(t *testing.T, userIDs, projectIDs []int64) {
	t.Cleanup(func() {
		e.db.Where("id IN ?", userIDs).Delete(&schema.User{})
		e.db.Where("id IN ?", projectIDs).Delete(&schema.Project{})
	})
}

func (e *testEnv) seedUser(t *testing.T, wallet string, scores schema.Scores) int64 {
	t.Helper()
	if scores == nil {
		scores = schema.Scores{}
	}
	user := schema.User{WalletAddress: wallet, Scores: datatypes.NewJSONType(scores)}
	require.NoError(t, e.db.Create(&user).Error)
	return user.ID
}

func (e *testEnv) seedProject(t *testing.T, title string, verified, eligible bool) int64 {
	t.Helper()
	project := schema.Project{Title: title, Verified: verified, Eligible: eligible}
	require.NoError(t, e.db.Create(&project).Error)
	return project.ID
}

func (e *testEnv) seedAllocation(t *testing.T, userID, projectID int64, pct string) {
	t.Helper()
	require.NoError(t, e.db.Create(&schema.PowerAllocation{
		UserID:     userID,
		ProjectID:  projectID,
		Percentage: decimal.RequireFromString(pct),
	}).Error)
}
