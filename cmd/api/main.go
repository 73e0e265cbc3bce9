package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/ticketbase/ticketbase-go/internal/config"
	"github.com/ticketbase/ticketbase-go/internal/handler"
	"github.com/ticketbase/ticketbase-go/internal/middleware"
	"github.com/ticketbase/ticketbase-go/internal/repository"
	"github.com/ticketbase/ticketbase-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	eventRepo := repository.NewEventRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	eventService := service.NewEventService(partnerRepo, eventRepo)

	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	// Public routes. Everything outside this set goes through the auth gate.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"ticketbase api"}`))
	})
	r.Post("/auth/login", authHandler.HandleLogin)
	r.Post("/partners/register", authHandler.HandleRegisterPartner)
	r.Post("/customers/register", authHandler.HandleRegisterCustomer)
	r.Get("/events", eventHandler.HandleListEvents)
	r.Get("/events/{event_id}", eventHandler.HandleGetEvent)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(cfg.JWTSecret, userRepo))
		r.Post("/partners/events", eventHandler.HandleCreateEvent)
		r.Get("/partners/events", eventHandler.HandleListPartnerEvents)
		r.Get("/partners/events/{event_id}", eventHandler.HandleGetPartnerEvent)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
