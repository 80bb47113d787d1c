package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/podiumhq/podium/internal/config"
	"github.com/podiumhq/podium/internal/database"
	"github.com/podiumhq/podium/internal/handler"
	"github.com/podiumhq/podium/internal/middleware"
	"github.com/podiumhq/podium/internal/repository"
	"github.com/podiumhq/podium/internal/service"
	"github.com/podiumhq/podium/pkg/jwt"
)

const version = "0.1.0"

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	speakerRepo := repository.NewSpeakerRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   userRepo,
		JWTService: jwtService,
	})
	speakerService := service.NewSpeakerService(service.SpeakerServiceConfig{
		SpeakerRepo: speakerRepo,
	})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	speakerHandler := handler.NewSpeakerHandler(handler.SpeakerHandlerConfig{
		SpeakerService: speakerService,
	})
	healthHandler := handler.NewHealthHandler(db, version)

	// Per-route middleware
	requireAuth := middleware.Auth(authService)
	loadSpeaker := middleware.SpeakerLoader(speakerService)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Check)

	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.Handle("GET /auth/me", middleware.Chain(
		http.HandlerFunc(authHandler.Me),
		requireAuth,
	))

	mux.HandleFunc("GET /speakers", speakerHandler.List)
	mux.Handle("POST /speakers", middleware.Chain(
		http.HandlerFunc(speakerHandler.Create),
		requireAuth,
	))
	mux.Handle("GET /speakers/{speakerId}", middleware.Chain(
		http.HandlerFunc(speakerHandler.Read),
		loadSpeaker,
	))
	mux.Handle("PUT /speakers/{speakerId}", middleware.Chain(
		http.HandlerFunc(speakerHandler.Update),
		loadSpeaker,
		requireAuth,
		middleware.SpeakerOwner,
	))
	mux.Handle("DELETE /speakers/{speakerId}", middleware.Chain(
		http.HandlerFunc(speakerHandler.Delete),
		loadSpeaker,
		requireAuth,
		middleware.SpeakerOwner,
	))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
