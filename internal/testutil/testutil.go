// Package testutil provides testing utilities and helpers.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"time"

	// Import pgx driver for database/sql compatibility in tests.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/greenplate/admin-api/internal/migrate"
)

// TestTenantID is the tenant row used by database-backed tests.
const TestTenantID = "test-college"

// RunMigrations delegates to the shared migrate package to apply production migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate.Run(ctx, db)
}

// TestDBConfig holds configuration for the test database.
type TestDBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// DefaultTestDBConfig returns default test database configuration.
// Defaults to port 55432 (local test DB from docker-compose test profile).
// CI/CD environments should set TEST_DB_PORT=5432 explicitly.
func DefaultTestDBConfig() TestDBConfig {
	return TestDBConfig{
		Host:     getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:     getEnvOrDefault("TEST_DB_PORT", "55432"),
		User:     getEnvOrDefault("TEST_DB_USER", "greenplate"),
		Password: getEnvOrDefault("TEST_DB_PASSWORD", "greenplate"),
		DBName:   getEnvOrDefault("TEST_DB_NAME", "greenplate"),
	}
}

// TestingTB is an interface that covers both *testing.T and *testing.B.
type TestingTB interface {
	Helper()
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Skip(args ...any)
	Cleanup(func())
}

// SkipIfNoTestDB skips the test unless a test database is reachable.
// Set TEST_REQUIRE_DB=true to fail instead of skipping.
func SkipIfNoTestDB(t TestingTB) {
	t.Helper()

	cfg := DefaultTestDBConfig()
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	conn, err := net.DialTimeout("tcp", addr, time.Second)
	if err != nil {
		if envBool("TEST_REQUIRE_DB") {
			t.Fatalf("test database required but unreachable at %s: %v", addr, err)
		}
		t.Skip("test database not available at " + addr)
		return
	}
	if cerr := conn.Close(); cerr != nil {
		t.Fatalf("close probe connection: %v", cerr)
	}
}

// SetupTestDB creates a test database connection, runs migrations, and seeds
// the test tenant with a default allow-list.
func SetupTestDB(t TestingTB) *sql.DB {
	t.Helper()
	SkipIfNoTestDB(t)

	cfg := DefaultTestDBConfig()
	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		cfg.User, cfg.Password, hostPort, cfg.DBName)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatal("Failed to open database:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		t.Fatal("Failed to connect to test database. Make sure PostgreSQL is running (docker-compose up -d):", pingErr)
	}

	// Run production migrations to ensure schema matches actual application
	if migrateErr := RunMigrations(ctx, db); migrateErr != nil {
		t.Fatal("Failed to run migrations:", migrateErr)
	}

	CleanupTestDB(t, db)
	SeedTestTenant(t, db, []string{"tint.edu.in"})

	return db
}

// CleanupTestDB removes all test data from the database.
func CleanupTestDB(t TestingTB, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stalls reference tenants; delete them first.
	if _, err := db.ExecContext(ctx, "DELETE FROM stalls"); err != nil {
		t.Fatalf("Failed to clean up table stalls: %v", err)
	}
	if _, err := db.ExecContext(ctx, "DELETE FROM tenants"); err != nil {
		t.Fatalf("Failed to clean up table tenants: %v", err)
	}
}

// SeedTestTenant inserts (or resets) the test tenant row with the given domains.
func SeedTestTenant(t TestingTB, db *sql.DB, domains []string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.ExecContext(ctx, `
		INSERT INTO tenants (id, name, domains)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET domains = EXCLUDED.domains`,
		TestTenantID, "Test College", domains)
	if err != nil {
		t.Fatalf("Failed to seed test tenant: %v", err)
	}
}

// TeardownTestDB closes the database connection.
func TeardownTestDB(t TestingTB, db *sql.DB) {
	t.Helper()
	if db != nil {
		CleanupTestDB(t, db)
		if err := db.Close(); err != nil {
			t.Fatal("Failed to close database:", err)
		}
	}
}

// WithTestDB is a helper that sets up and tears down a test database.
func WithTestDB(t TestingTB, fn func(*sql.DB)) {
	t.Helper()
	db := SetupTestDB(t)
	defer TeardownTestDB(t, db)
	fn(db)
}

// SetupTestRedis creates a Redis client for testing.
// Tests are skipped unless a Redis instance is reachable; set
// TEST_REQUIRE_REDIS=true to fail instead of skipping.
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	addr := getEnvOrDefault("TEST_REDIS_ADDR", "localhost:6379")
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		if envBool("TEST_REQUIRE_REDIS") {
			t.Fatalf("Redis required but unreachable at %s: %v", addr, err)
		}
		t.Skip("Redis not available at " + addr)
		return nil
	}

	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Fatal("Failed to close redis client:", err)
		}
	})
	return client
}

// FixedTimeFunc returns a function that always reports t.
func FixedTimeFunc(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// TestTime returns a stable timestamp for deterministic tests.
func TestTime() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

// getEnvOrDefault returns environment variable value or default.
func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "yes":
		return true
	default:
		return false
	}
}
