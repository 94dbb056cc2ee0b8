package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/stdlib"
	"github.com/piresc/spendly/internal/pkg/models"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// RunMigrations applies every pending schema migration for config.Driver.
// It uses its own connection because closing the migrator closes the
// database it was given.
func RunMigrations(config models.DatabaseConfig) error {
	var (
		migrateDB *sql.DB
		driver    database.Driver
		err       error
	)

	switch config.Driver {
	case DriverSQLite:
		migrateDB, err = sql.Open(DriverSQLite, SQLiteDSN(config.Path))
		if err != nil {
			return fmt.Errorf("open migration database: %w", err)
		}
		driver, err = sqlite.WithInstance(migrateDB, &sqlite.Config{})
	case DriverPostgres:
		connConfig, parseErr := pgx.ParseConfig(PostgresDSN(config))
		if parseErr != nil {
			return fmt.Errorf("parse migration database config: %w", parseErr)
		}
		migrateDB = stdlib.OpenDB(*connConfig)
		driver, err = migratepgx.WithInstance(migrateDB, &migratepgx.Config{})
	default:
		return fmt.Errorf("unsupported database driver %q", config.Driver)
	}
	if err != nil {
		migrateDB.Close()
		return fmt.Errorf("create %s migration driver: %w", config.Driver, err)
	}

	source, err := iofs.New(migrationsFS, "migrations/"+config.Driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, config.Driver, driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
