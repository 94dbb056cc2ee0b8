package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Logger    LoggerConfig
	Mail      MailConfig
	OTP       OTPConfig
	RateLimit RateLimitConfig
	Budget    BudgetConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	AllowedOrigins  []string
}

// DatabaseConfig contains database connection configuration.
// Driver is either "sqlite" (Path is used) or "postgres".
type DatabaseConfig struct {
	Driver    string
	Path      string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
	// AutoMigrate applies embedded migrations on serve start
	AutoMigrate bool
}

// RedisConfig contains Redis connection configuration.
// An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// Enabled reports whether a Redis server is configured
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// MailConfig contains outbound mail configuration.
// Without an API key mail is written to the log instead.
type MailConfig struct {
	SendGridAPIKey string
	SenderName     string
	SenderEmail    string
}

// OTPConfig contains password reset OTP configuration
type OTPConfig struct {
	Length      int
	Expiry      time.Duration
	MaxAttempts int
	ResetWindow time.Duration
}

// RateLimitConfig contains request rate limit configuration
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  time.Duration
}

// BudgetConfig contains budgeting defaults
type BudgetConfig struct {
	DefaultColor string
	HistoryLimit int
}
