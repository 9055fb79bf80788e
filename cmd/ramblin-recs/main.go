package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ramblinrecs/internal/config"
	"ramblinrecs/internal/http-server/handlers/events/clickEvent"
	"ramblinrecs/internal/http-server/handlers/events/saveEvent"
	"ramblinrecs/internal/http-server/handlers/events/unsaveEvent"
	"ramblinrecs/internal/http-server/handlers/feed/getFeed"
	"ramblinrecs/internal/http-server/handlers/feed/ingestEvents"
	"ramblinrecs/internal/http-server/handlers/feedback/composeFeedback"
	"ramblinrecs/internal/http-server/handlers/metrics/getMetrics"
	"ramblinrecs/internal/http-server/handlers/onboarding/submitOnboarding"
	"ramblinrecs/internal/http-server/handlers/saved/getSavedEvents"
	"ramblinrecs/internal/http-server/handlers/user/getProfile"
	"ramblinrecs/internal/http-server/middleware/mwlogger"
	"ramblinrecs/internal/lib/logger/handlers/slogpretty"
	"ramblinrecs/internal/lib/logger/sl"
	"ramblinrecs/internal/recsapi"
	"ramblinrecs/internal/storage/sqlite"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting ramblin recs", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := sqlite.InitDB(cfg.Storage.Path, log)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	api := recsapi.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Post("/onboarding", submitOnboarding.New(log, api, storage))
	router.Get("/profile", getProfile.New(log, api, storage))
	router.Get("/feed", getFeed.New(log, api, storage, cfg.Backend.PageSize))
	router.Post("/feed/ingest", ingestEvents.New(log, api, storage, cfg.Backend.PageSize))
	router.Get("/saved", getSavedEvents.New(log, api, storage))
	router.Post("/events/{id}/save", saveEvent.New(log, storage))
	router.Delete("/events/{id}/save", unsaveEvent.New(log, storage))
	router.Post("/events/{id}/click", clickEvent.New(log, api, storage))
	router.Post("/feedback", composeFeedback.New(log, cfg.Backend.FeedbackTo))
	router.Get("/metrics", getMetrics.New(log, api))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

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
		if err = srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	if err = srv.Shutdown(context.Background()); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
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
