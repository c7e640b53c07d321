package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"

	"theatre-booking/internal/auth"
	auth_db "theatre-booking/internal/auth/db"
	"theatre-booking/internal/authlog"
	"theatre-booking/internal/booking"
	booking_db "theatre-booking/internal/booking/db"
	"theatre-booking/internal/config"
	"theatre-booking/internal/database"
	"theatre-booking/internal/logger"
	"theatre-booking/internal/shows"
	shows_db "theatre-booking/internal/shows/db"
	"theatre-booking/internal/web"
)

func openStore(cfg *config.Config, log *logger.Logger) *bun.DB {
	var db *bun.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		db, err = database.Open(cfg.Database.Path)
		if err == nil {
			err = db.Ping()
		}
		if err == nil {
			break
		}
		log.Error("DATABASE", fmt.Sprintf("Failed to open store (attempt %d/%d): %v", i+1, maxRetries, err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to open store after %d attempts: %v", maxRetries, err))
	}

	log.Info("DATABASE", fmt.Sprintf("Store opened at %s", cfg.Database.Path))
	return db
}

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting theatre booking service")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()
	if cfg.Session.Secret == "dev-secret" {
		log.Warn("CONFIG", "SECRET_KEY not set, using development fallback")
	}

	db := openStore(cfg, log)
	defer db.Close()

	ctx := context.Background()
	if err := database.Ensure(ctx, db); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Schema initialization failed: %v", err))
	}
	log.Info("DATABASE", "Schema and seed data ensured")

	sessions := auth.NewSessions(cfg.Session.Secret, cfg.Session.TTL)
	userDB := &auth_db.DB{Bun: db}
	auditDB := &authlog.DB{Bun: db}

	authService := auth.NewService(userDB, auditDB, log, cfg.Session.BcryptCost)
	showService := shows.NewService(&shows_db.DB{Bun: db})
	bookingService := booking.NewService(&booking_db.DB{Bun: db}, log)

	handler := web.NewHandler(authService, sessions, showService, bookingService, userDB, log)

	log.Info("HTTP", "Setting up router")
	r := handler.Router()

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("Theatre booking service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "Shutdown complete")
	}
}
