package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scottmc500/ScottLMS/internal/repository"
)

// TestDB holds the test database connection and container
type TestDB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL container and applies migrations
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	// Get the migrations directory path
	_, currentFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("scottlms_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to create migrate instance: %v", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to run migrations: %v", err)
	}
	m.Close()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to ping database: %v", err)
	}

	return &TestDB{
		Pool:      pool,
		Container: pgContainer,
		ConnStr:   connStr,
	}
}

// Cleanup closes the connection pool and terminates the container
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Pool != nil {
		tdb.Pool.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// TruncateTables clears all data from tables for test isolation
func (tdb *TestDB) TruncateTables(t *testing.T, tables ...string) {
	t.Helper()
	ctx := context.Background()
	for _, table := range tables {
		if _, err := tdb.Pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			t.Fatalf("Failed to truncate table %s: %v", table, err)
		}
	}
}

// TestMongo holds the test Mongo client and container
type TestMongo struct {
	Client    *mongo.Client
	DB        *mongo.Database
	Container testcontainers.Container
}

// SetupTestMongo creates a MongoDB container and creates the store indexes
func SetupTestMongo(t *testing.T) *TestMongo {
	t.Helper()
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("Failed to start mongo container: %v", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		_ = mongoContainer.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		_ = mongoContainer.Terminate(ctx)
		t.Fatalf("Failed to connect to mongo: %v", err)
	}

	db := client.Database("scottlms_test")
	if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		_ = mongoContainer.Terminate(ctx)
		t.Fatalf("Failed to create indexes: %v", err)
	}

	return &TestMongo{
		Client:    client,
		DB:        db,
		Container: mongoContainer,
	}
}

// Cleanup disconnects the client and terminates the container
func (tm *TestMongo) Cleanup(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	if tm.Client != nil {
		_ = tm.Client.Disconnect(ctx)
	}
	if tm.Container != nil {
		if err := tm.Container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// ClearCollections removes all documents but keeps the indexes
func (tm *TestMongo) ClearCollections(t *testing.T, collections ...string) {
	t.Helper()
	ctx := context.Background()
	for _, name := range collections {
		if _, err := tm.DB.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			t.Fatalf("Failed to clear collection %s: %v", name, err)
		}
	}
}

// engine is one storage backend under test.
type engine struct {
	name  string
	store repository.Store
	reset func(t *testing.T)
}

// setupEngines starts both storage backends. Each test runs its cases against every engine.
func setupEngines(t *testing.T) []engine {
	t.Helper()

	pg := SetupTestDB(t)
	t.Cleanup(func() { pg.Cleanup(t) })

	mg := SetupTestMongo(t)
	t.Cleanup(func() { mg.Cleanup(t) })

	return []engine{
		{
			name:  "postgres",
			store: repository.NewPostgresStore(pg.Pool),
			reset: func(t *testing.T) { pg.TruncateTables(t, "enrollments", "courses", "users") },
		},
		{
			name:  "mongo",
			store: repository.NewMongoStore(mg.DB),
			reset: func(t *testing.T) { mg.ClearCollections(t, "enrollments", "courses", "users") },
		},
	}
}
