package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/spendly/internal/pkg/models"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	// modernc registers "sqlite", which sqlx does not know by default
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// SQLClient wraps the sqlx handle shared by all repositories
type SQLClient struct {
	db     *sqlx.DB
	driver string
}

// NewSQLClient opens the database selected by config.Driver
func NewSQLClient(config models.DatabaseConfig) (*SQLClient, error) {
	switch config.Driver {
	case DriverSQLite:
		return NewSQLiteClient(config)
	case DriverPostgres:
		return NewPostgresClient(config)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
}

// NewSQLiteClient opens a single-file database with foreign keys enforced
func NewSQLiteClient(config models.DatabaseConfig) (*SQLClient, error) {
	if dir := filepath.Dir(config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Open(DriverSQLite, SQLiteDSN(config.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// sqlite serialises writers; one connection keeps transactions from
	// tripping over SQLITE_BUSY
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	return &SQLClient{db: db, driver: DriverSQLite}, nil
}

// SQLiteDSN builds the modernc DSN for path
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
}

// NewSQLClientFromDB wraps an existing handle. Used by tests.
func NewSQLClientFromDB(db *sqlx.DB, driver string) *SQLClient {
	return &SQLClient{db: db, driver: driver}
}

// GetDB returns the underlying sqlx DB instance
func (c *SQLClient) GetDB() *sqlx.DB {
	return c.db
}

// Driver returns the configured driver name
func (c *SQLClient) Driver() string {
	return c.driver
}

// Ping checks the connection is alive
func (c *SQLClient) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the database connection
func (c *SQLClient) Close() error {
	return c.db.Close()
}
