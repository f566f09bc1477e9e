package testhelpers

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/cadastre-search-api/internal/repository/postgres"
)

// TestDB represents a test database connection
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// SetupTestDB connects to the PostGIS test database described by TEST_DB_*.
// The test is skipped when the database is not reachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	host := getEnv("TEST_DB_HOST", "localhost")
	port := getEnv("TEST_DB_PORT", "5433")
	user := getEnv("TEST_DB_USER", "postgres")
	password := getEnv("TEST_DB_PASSWORD", "postgres")
	dbname := getEnv("TEST_DB_NAME", "cadastre_test")
	sslmode := getEnv("TEST_DB_SSLMODE", "disable")

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=2",
		host, port, user, password, dbname, sslmode,
	)

	// Retry a few times in case the container is still starting
	var db *sqlx.DB
	var err error
	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", connStr)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			t.Logf("Database not ready (attempt %d/%d), waiting %v...", i+1, maxRetries, retryDelay)
			time.Sleep(retryDelay)
			retryDelay *= 2
		}
	}

	if err != nil {
		t.Skipf("PostGIS test database is not reachable: %v", err)
	}

	var version string
	if err := db.Get(&version, "SELECT PostGIS_Version()"); err != nil {
		db.Close()
		t.Skipf("PostGIS not available: %v", err)
	}
	t.Logf("PostGIS version: %s", version)

	logger, _ := zap.NewDevelopment()
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TestDB{
		DB:     db,
		Logger: logger,
	}
}

// Postgres wraps the connection the way the service does
func (tdb *TestDB) Postgres() *postgres.DB {
	return postgres.NewDBForTest(tdb.DB, tdb.Logger)
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
