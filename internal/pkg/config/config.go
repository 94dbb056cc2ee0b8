package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the dotenv file at configPath when running locally and
// builds the configuration from the environment.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "spendly")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 5000)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("SERVER_ALLOWED_ORIGINS", "*")

	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "data/spendly.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("JWT_EXPIRATION", 30*24*60)
	v.SetDefault("JWT_ISSUER", "spendly")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")

	v.SetDefault("MAIL_SENDER_NAME", "Spendly")
	v.SetDefault("MAIL_SENDER_EMAIL", "no-reply@spendly.app")

	v.SetDefault("OTP_LENGTH", 6)
	v.SetDefault("OTP_EXPIRY", 10*time.Minute)
	v.SetDefault("OTP_MAX_ATTEMPTS", 3)
	v.SetDefault("OTP_RESET_WINDOW", 15*time.Minute)

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_PERIOD", time.Minute)

	v.SetDefault("BUDGET_DEFAULT_COLOR", models.DefaultCategoryColor)
	v.SetDefault("BUDGET_HISTORY_LIMIT", 50)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")
	configs.Server.AllowedOrigins = splitList(v.GetString("SERVER_ALLOWED_ORIGINS"))

	// Database config
	configs.Database.Driver = strings.ToLower(v.GetString("DB_DRIVER"))
	configs.Database.Path = v.GetString("DB_PATH")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.AutoMigrate = v.GetBool("DB_AUTO_MIGRATE")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	// Mail config
	configs.Mail.SendGridAPIKey = v.GetString("SENDGRID_API_KEY")
	configs.Mail.SenderName = v.GetString("MAIL_SENDER_NAME")
	configs.Mail.SenderEmail = v.GetString("MAIL_SENDER_EMAIL")

	// OTP config
	configs.OTP.Length = v.GetInt("OTP_LENGTH")
	configs.OTP.Expiry = v.GetDuration("OTP_EXPIRY")
	configs.OTP.MaxAttempts = v.GetInt("OTP_MAX_ATTEMPTS")
	configs.OTP.ResetWindow = v.GetDuration("OTP_RESET_WINDOW")

	// Rate limit config
	configs.RateLimit.Enabled = v.GetBool("RATE_LIMIT_ENABLED")
	configs.RateLimit.Limit = v.GetInt("RATE_LIMIT_REQUESTS")
	configs.RateLimit.Period = v.GetDuration("RATE_LIMIT_PERIOD")

	// Budget config
	configs.Budget.DefaultColor = v.GetString("BUDGET_DEFAULT_COLOR")
	configs.Budget.HistoryLimit = v.GetInt("BUDGET_HISTORY_LIMIT")

	return configs
}

// Validate reports every missing or inconsistent setting at once
func Validate(cfg *models.Config) error {
	var errs []error

	if cfg.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if cfg.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be positive, got %d", cfg.Server.Port))
	}

	switch cfg.Database.Driver {
	case "sqlite":
		if cfg.Database.Path == "" {
			errs = append(errs, errors.New("DB_PATH is required for the sqlite driver"))
		}
	case "postgres":
		if cfg.Database.Host == "" || cfg.Database.Database == "" {
			errs = append(errs, errors.New("DB_HOST and DB_DATABASE are required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver))
	}

	if cfg.OTP.Length < 4 {
		errs = append(errs, fmt.Errorf("OTP_LENGTH must be at least 4, got %d", cfg.OTP.Length))
	}
	if cfg.OTP.MaxAttempts <= 0 {
		errs = append(errs, errors.New("OTP_MAX_ATTEMPTS must be positive"))
	}
	if cfg.RateLimit.Enabled && (cfg.RateLimit.Limit <= 0 || cfg.RateLimit.Period <= 0) {
		errs = append(errs, errors.New("RATE_LIMIT_REQUESTS and RATE_LIMIT_PERIOD must be positive when rate limiting is enabled"))
	}

	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
