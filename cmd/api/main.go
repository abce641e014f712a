// Package main is the entrypoint for the Voltpoint API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/voltpoint/voltpoint/internal/cache"
	"github.com/voltpoint/voltpoint/internal/config"
	"github.com/voltpoint/voltpoint/internal/handler"
	"github.com/voltpoint/voltpoint/internal/metrics"
	"github.com/voltpoint/voltpoint/internal/middleware"
	"github.com/voltpoint/voltpoint/internal/repository"
	"github.com/voltpoint/voltpoint/internal/server"
	"github.com/voltpoint/voltpoint/internal/service"
	"github.com/voltpoint/voltpoint/internal/session"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// Initialize cache
	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	// Session manager (signed cookie, sliding 24h expiry)
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())

	// Initialize services
	metricsRecorder := metrics.NewNoop()
	authService := service.NewAuthService(repo, metricsRecorder)
	stationService := service.NewStationService(repo, cacheClient, cfg.StationCacheTTL, metricsRecorder)
	vehicleService := service.NewVehicleService(repo)
	reservationService := service.NewReservationService(repo, cacheClient, metricsRecorder)
	statsService := service.NewStatsService(repo)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	authHandler := handler.NewAuthHandler(authService, sessions, logger)
	stationHandler := handler.NewStationHandler(stationService, logger)
	vehicleHandler := handler.NewVehicleHandler(vehicleService, logger)
	reservationHandler := handler.NewReservationHandler(reservationService, logger)
	adminHandler := handler.NewAdminHandler(authService, statsService, logger)

	// Setup router
	r := setupRouter(routerDeps{
		base:         h,
		health:       healthHandler,
		auth:         authHandler,
		stations:     stationHandler,
		vehicles:     vehicleHandler,
		reservations: reservationHandler,
		admin:        adminHandler,
		sessions:     sessions,
		cache:        cacheClient,
		cfg:          cfg,
		logger:       logger,
	})

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// routerDeps bundles everything the router needs.
type routerDeps struct {
	base         *handler.Handler
	health       *handler.HealthHandler
	auth         *handler.AuthHandler
	stations     *handler.StationHandler
	vehicles     *handler.VehicleHandler
	reservations *handler.ReservationHandler
	admin        *handler.AdminHandler
	sessions     *session.Manager
	cache        *cache.Cache
	cfg          *config.Config
	logger       *slog.Logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(d routerDeps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.logger))
	r.Use(middleware.Recoverer(d.logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:      d.cfg.IsDevelopment(),
		MaxRequestBodySize: d.cfg.MaxRequestBodySize,
	}))
	r.Use(middleware.MaxBodySize(d.cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = d.cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Health endpoints (no auth required)
	r.Get("/healthz", d.health.Healthz)
	r.Get("/readyz", d.health.Readyz)

	// Root info endpoint
	r.Get("/", d.base.Hello)

	// Rate limit middleware configuration
	rateLimitCfg := middleware.RateLimitConfig{
		Logger:       d.logger,
		Cache:        d.cache,
		LoginEnabled: d.cfg.RateLimitLoginEnabled,
		LoginRPS:     d.cfg.RateLimitLoginRPS,
		LoginBurst:   d.cfg.RateLimitLoginBurst,
	}

	sessionCfg := middleware.SessionConfig{
		Logger:   d.logger,
		Sessions: d.sessions,
	}

	r.Route("/api", func(r chi.Router) {
		// Every API request flows through the session middleware so the
		// sliding expiry is refreshed and guards see the identity.
		r.Use(middleware.Session(sessionCfg))

		// Public routes
		r.With(middleware.RateLimitLogin(rateLimitCfg)).Post("/login", d.auth.Login)
		r.Post("/logout", d.auth.Logout)
		r.Post("/register", d.auth.Register)
		r.Get("/check-auth", d.auth.CheckAuth)
		r.Get("/colonnine", d.stations.List)

		// Authenticated routes
		r.With(middleware.RequireAuth()).Get("/veicoli", d.vehicles.List)

		// User-only routes
		r.With(middleware.RequireUser()).Post("/veicoli", d.vehicles.Create)
		r.With(middleware.RequireUser()).Post("/prenotazioni", d.reservations.Create)

		// Admin-only routes
		r.With(middleware.RequireAdmin()).Post("/colonnine", d.stations.Create)
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin())
			r.Post("/utenti", d.admin.AddUser)
			r.Get("/statistiche", d.admin.Statistics)
		})
	})

	// 404 and 405 handlers
	r.NotFound(d.base.NotFound)
	r.MethodNotAllowed(d.base.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
