package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/spendly/internal/pkg/models"
)

// PostgresDSN builds the connection URL for config. Credentials are escaped
// so passwords may contain '@', '/' or ':'.
func PostgresDSN(config models.DatabaseConfig) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(config.Username, config.Password),
		Host:     net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		Path:     "/" + config.Database,
		RawQuery: url.Values{"sslmode": {config.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// NewPostgresClient opens PostgreSQL through the pgx stdlib adapter so the
// repositories can share sqlx with the sqlite build
func NewPostgresClient(config models.DatabaseConfig) (*SQLClient, error) {
	poolConfig, err := pgxpool.ParseConfig(PostgresDSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	sqlDB := stdlib.OpenDB(*poolConfig.ConnConfig)
	db := sqlx.NewDb(sqlDB, "pgx")

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &SQLClient{db: db, driver: DriverPostgres}, nil
}
