package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fundraiser/internal/config"
	"fundraiser/internal/http-server/handlers/category/getAllCategories"
	"fundraiser/internal/http-server/handlers/event/createEvent"
	"fundraiser/internal/http-server/handlers/event/deleteEvent"
	"fundraiser/internal/http-server/handlers/event/getAllEvents"
	"fundraiser/internal/http-server/handlers/event/getEvent"
	"fundraiser/internal/http-server/handlers/event/searchEvents"
	"fundraiser/internal/http-server/handlers/event/updateEvent"
	"fundraiser/internal/http-server/handlers/registration/createRegistration"
	"fundraiser/internal/http-server/middleware/mwlogger"
	"fundraiser/internal/lib/logger/handlers/slogpretty"
	"fundraiser/internal/lib/logger/sl"
	"fundraiser/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting fundraiser", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/events", getAllEvents.New(log, storage))
		r.Get("/events/search", searchEvents.New(log, storage))
		r.Get("/events/{id}", getEvent.New(log, storage))
		r.Post("/events", createEvent.New(log, storage))
		r.Put("/events/{id}", updateEvent.New(log, storage))
		r.Delete("/events/{id}", deleteEvent.New(log, storage))
		r.Post("/registrations", createRegistration.New(log, storage))
		r.Get("/categories", getAllCategories.New(log, storage))
	})

	clientFS := http.FileServer(http.Dir(cfg.Static.ClientDir))
	router.Handle("/client/*", http.StripPrefix("/client/", clientFS))

	adminFS := http.FileServer(http.Dir(cfg.Static.AdminDir))
	router.Handle("/admin/*", http.StripPrefix("/admin/", adminFS))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/client/index.html", http.StatusFound)
	})

	log.Info("starting server",
		slog.String("address", cfg.HTTPServer.Address),
		slog.String("client_dir", cfg.Static.ClientDir),
		slog.String("admin_dir", cfg.Static.AdminDir),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
