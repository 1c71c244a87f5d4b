package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/clinic/clinic/internal/config"
	"github.com/clinic/clinic/internal/domain/identity"
	"github.com/clinic/clinic/internal/domain/records"
	"github.com/clinic/clinic/internal/domain/scheduling"
	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/internal/platform/db"
	"github.com/clinic/clinic/internal/platform/middleware"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "clinic-server",
		Short:        "Clinic management API server",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(userCmd())
	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(os.Getenv("ENV"))
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, gdb, err := openStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.Migrate(ctx, gdb, models()...); err != nil {
				return err
			}
			logger.Info().Msg("migrations applied")
			return nil
		},
	}
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	createAdmin := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				password = os.Getenv("CLINIC_ADMIN_PASSWORD")
			}

			logger := newLogger(os.Getenv("ENV"))
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, gdb, err := openStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := identity.NewService(identity.NewUserRepoGorm(gdb), nil, cfg.BcryptCost)
			u, err := svc.CreateUser(ctx, identity.NewUser{
				Name:     name,
				Email:    email,
				Password: password,
				Role:     string(auth.RoleAdmin),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (id %d)\n", u.Email, u.ID)
			return nil
		},
	}
	createAdmin.Flags().String("name", "", "Full name")
	createAdmin.Flags().String("email", "", "Login email")
	createAdmin.Flags().String("password", "", "Login password (default $CLINIC_ADMIN_PASSWORD)")
	createAdmin.MarkFlagRequired("name")
	createAdmin.MarkFlagRequired("email")

	cmd.AddCommand(createAdmin)
	return cmd
}

func newLogger(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func models() []interface{} {
	return []interface{}{&identity.User{}, &scheduling.Appointment{}, &records.PatientRecord{}}
}

func openStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*pgxpool.Pool, *gorm.DB, error) {
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, nil, err
	}
	gdb, err := db.Open(pool, logger, cfg.DBLogLevel)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return pool, gdb, nil
}

// newServer builds the HTTP surface. pinger backs /health/db.
func newServer(cfg *config.Config, logger zerolog.Logger, gdb *gorm.DB, pinger db.Pinger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)

	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.JWTTTL)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.RequestIDHeader},
	}))
	e.Use(echomw.BodyLimit("1M"))
	e.Use(auth.JWTMiddleware(tokens, auth.AuthSkipper))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/health/db", db.HealthHandler(pinger))

	apiV1 := e.Group("/api/v1")

	identitySvc := identity.NewService(identity.NewUserRepoGorm(gdb), tokens, cfg.BcryptCost)
	identity.NewHandler(identitySvc).RegisterRoutes(apiV1)

	schedulingSvc := scheduling.NewService(scheduling.NewAppointmentRepoGorm(gdb))
	scheduling.NewHandler(schedulingSvc).RegisterRoutes(apiV1)

	recordsSvc := records.NewService(records.NewRecordRepoGorm(gdb), identitySvc)
	records.NewHandler(recordsSvc).RegisterRoutes(apiV1)

	return e
}

func runServer() error {
	logger := newLogger(os.Getenv("ENV"))

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()
	pool, gdb, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	e := newServer(cfg, logger, gdb, pool)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
