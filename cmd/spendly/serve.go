package main

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/spendly/internal/pkg/database"
	"github.com/piresc/spendly/internal/pkg/health"
	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/pkg/middleware"
	"github.com/piresc/spendly/internal/pkg/models"
	natspkg "github.com/piresc/spendly/internal/pkg/nats"
	"github.com/piresc/spendly/internal/pkg/server"
	categorygw "github.com/piresc/spendly/services/categories/gateway"
	categoryhandler "github.com/piresc/spendly/services/categories/handler"
	categoryhttp "github.com/piresc/spendly/services/categories/handler/http"
	categoryrepo "github.com/piresc/spendly/services/categories/repository"
	categoryuc "github.com/piresc/spendly/services/categories/usecase"
	transactiongw "github.com/piresc/spendly/services/transactions/gateway"
	transactionhandler "github.com/piresc/spendly/services/transactions/handler"
	transactionhttp "github.com/piresc/spendly/services/transactions/handler/http"
	transactionrepo "github.com/piresc/spendly/services/transactions/repository"
	transactionuc "github.com/piresc/spendly/services/transactions/usecase"
	"github.com/piresc/spendly/services/users"
	usergw "github.com/piresc/spendly/services/users/gateway"
	userhandler "github.com/piresc/spendly/services/users/handler"
	userhttp "github.com/piresc/spendly/services/users/handler/http"
	userrepo "github.com/piresc/spendly/services/users/repository"
	useruc "github.com/piresc/spendly/services/users/usecase"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *models.Config) error {
	zapLogger, err := logger.InitZapLoggerFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to create zap logger: %w", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", cfg.App.Name),
		logger.String("version", cfg.App.Version),
		logger.String("environment", cfg.App.Environment),
		logger.String("db_driver", cfg.Database.Driver))

	shutdown := server.NewShutdownManager(zapLogger)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()
		_ = shutdown.Shutdown(ctx)
	}()

	sqlClient, err := database.NewSQLClient(cfg.Database)
	if err != nil {
		return err
	}
	shutdown.Register(func(context.Context) error { return sqlClient.Close() })

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(cfg.Database); err != nil {
			return err
		}
		zapLogger.Info("Database migrations applied")
	}

	healthSvc := health.NewService(zapLogger)
	healthSvc.AddChecker("database", health.CheckerFunc(sqlClient.Ping))

	var redisClient *database.RedisClient
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewRedisClient(cfg.Redis)
		if err != nil {
			return err
		}
		shutdown.Register(func(context.Context) error { return redisClient.Close() })
		healthSvc.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	} else {
		zapLogger.Warn("Redis not configured, OTPs and rate limits are kept in memory")
	}

	var natsClient *natspkg.Client
	if cfg.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(cfg.NATS.URL, cfg.App.Name)
		if err != nil {
			return err
		}
		shutdown.Register(func(context.Context) error { natsClient.Close(); return nil })
	}

	db := sqlClient.GetDB()

	// Users
	var otpRepo users.OTPRepo
	if redisClient != nil {
		otpRepo = userrepo.NewRedisOTPRepository(redisClient)
	} else {
		otpRepo = userrepo.NewMemoryOTPRepository()
	}
	var mailer users.UserGW
	if cfg.Mail.SendGridAPIKey != "" {
		mailer = usergw.NewSendGridMailer(cfg.Mail)
	} else {
		zapLogger.Warn("SENDGRID_API_KEY not set, OTP codes are written to the log")
		mailer = usergw.NewLogMailer()
	}
	userUC := useruc.NewUserUC(userrepo.NewUserRepository(cfg, db), otpRepo, mailer, cfg)
	userRoutes := userhandler.NewHandler(
		userhttp.NewAuthHandler(userUC),
		userhttp.NewUserHandler(userUC),
	)

	// Categories
	categoryUC := categoryuc.NewCategoryUC(
		categoryrepo.NewCategoryRepository(cfg, db),
		categorygw.NewCategoryGW(natsClient),
		cfg,
	)
	categoryRoutes := categoryhandler.NewHandler(categoryhttp.NewCategoryHandler(categoryUC))

	// Transactions
	transactionUC := transactionuc.NewTransactionUC(
		transactionrepo.NewTransactionRepository(cfg, db),
		transactiongw.NewTransactionGW(natsClient),
		cfg,
	)
	transactionRoutes := transactionhandler.NewHandler(transactionhttp.NewTransactionHandler(transactionUC))

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(cfg.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.Server.WriteTimeout) * time.Second

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	if cfg.RateLimit.Enabled {
		if redisClient != nil {
			e.Use(middleware.IPRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Period, redisClient.GetClient()))
		} else {
			e.Use(middleware.NewLocalRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Period).Middleware())
		}
	}

	health.RegisterHealthEndpoints(e, cfg.App.Name, healthSvc)

	api := e.Group("/api")
	auth := middleware.JWTAuthMiddleware(cfg.JWT)
	userRoutes.RegisterRoutes(api, auth)
	categoryRoutes.RegisterRoutes(api, auth)
	transactionRoutes.RegisterRoutes(api, auth, paymentLimiters(cfg, redisClient)...)

	return server.NewGracefulServer(e, zapLogger, cfg.Server.Port).Start(ctx)
}

// paymentLimiters throttles payment traffic per authenticated user
func paymentLimiters(cfg *models.Config, redisClient *database.RedisClient) []echo.MiddlewareFunc {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	if redisClient != nil {
		return []echo.MiddlewareFunc{middleware.UserRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Period, redisClient.GetClient())}
	}
	return []echo.MiddlewareFunc{middleware.NewLocalRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Period).Middleware()}
}
