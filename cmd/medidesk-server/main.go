package main

import (
	"context"
	crypto_rand "crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medidesk/medidesk/internal/config"
	"github.com/medidesk/medidesk/internal/domain/appointment"
	"github.com/medidesk/medidesk/internal/domain/billing"
	"github.com/medidesk/medidesk/internal/domain/doctor"
	"github.com/medidesk/medidesk/internal/domain/identity"
	"github.com/medidesk/medidesk/internal/domain/patient"
	"github.com/medidesk/medidesk/internal/domain/pharmacy"
	"github.com/medidesk/medidesk/internal/platform/middleware"
	"github.com/medidesk/medidesk/internal/platform/seed"
	"github.com/medidesk/medidesk/internal/platform/store"
	"github.com/medidesk/medidesk/internal/view"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medidesk-server",
		Short: "Hospital dashboard API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset into the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.StoreDriver == config.DriverMemory {
				return fmt.Errorf("the memory driver is seeded at startup; seed targets rest or postgres stores")
			}

			ctx := context.Background()
			client, err := newStoreClient(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeClient(client)

			return seed.Load(ctx, client, logger)
		},
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func newStoreClient(ctx context.Context, cfg *config.Config) (store.Client, error) {
	switch cfg.StoreDriver {
	case config.DriverREST:
		return store.NewREST(cfg.StoreURL, cfg.StoreKey), nil
	case config.DriverPostgres:
		return store.NewPostgres(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	case config.DriverMemory:
		mem := store.NewMemory()
		seed.Preload(mem)
		return mem, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func closeClient(client store.Client) {
	if closer, ok := client.(io.Closer); ok {
		closer.Close()
	}
}

func sessionSecret(cfg *config.Config, logger zerolog.Logger) ([]byte, error) {
	if cfg.SessionSecret != "" {
		return []byte(cfg.SessionSecret), nil
	}
	if !cfg.IsDev() {
		return nil, fmt.Errorf("SESSION_SECRET is required outside development")
	}
	// Dev convenience: sessions do not survive a restart.
	buf := make([]byte, 32)
	if _, err := crypto_rand.Read(buf); err != nil {
		return nil, err
	}
	logger.Warn().Msg("SESSION_SECRET not set, generated an ephemeral one")
	return []byte(hex.EncodeToString(buf)), nil
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	secret, err := sessionSecret(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare session secret")
	}

	ctx := context.Background()
	client, err := newStoreClient(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to store")
	}
	defer closeClient(client)
	logger.Info().Str("driver", cfg.StoreDriver).Msg("store client ready")

	// Services
	patients := patient.NewService(patient.NewStoreRepo(client))
	doctors := doctor.NewService(doctor.NewStoreRepo(client))
	appointments := appointment.NewService(appointment.NewStoreRepo(client), patients, doctors)
	prescriptions := pharmacy.NewService(pharmacy.NewStoreRepo(client))
	invoices := billing.NewService(billing.NewStoreRepo(client))

	tokens := identity.NewTokens(secret, identity.DefaultTokenTTL)
	resolver := identity.NewResolver(patients, doctors, prescriptions)
	dashboard := view.NewDashboard(patients, doctors, appointments, prescriptions)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// API routes
	apiV1 := e.Group("/api/v1")
	identity.NewHandler(resolver, tokens).RegisterRoutes(apiV1)
	view.NewHandler(tokens, dashboard, patients, doctors, appointments, prescriptions, invoices).RegisterRoutes(apiV1)
	patient.NewHandler(patients).RegisterRoutes(apiV1)
	doctor.NewHandler(doctors).RegisterRoutes(apiV1)
	appointment.NewHandler(appointments).RegisterRoutes(apiV1)
	pharmacy.NewHandler(prescriptions).RegisterRoutes(apiV1)
	billing.NewHandler(invoices).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
