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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"sportsfest/internal/config"
	"sportsfest/internal/http-server/handlers/jersey/storeJersey"
	"sportsfest/internal/http-server/handlers/offering/getAllOfferings"
	"sportsfest/internal/http-server/handlers/offering/getOffering"
	"sportsfest/internal/http-server/handlers/order/createOrder"
	"sportsfest/internal/http-server/handlers/registration/storeRegistration"
	"sportsfest/internal/http-server/middleware/mwlogger"
	"sportsfest/internal/lib/logger/handlers/slogpretty"
	"sportsfest/internal/lib/logger/sl"
	"sportsfest/internal/notify"
	"sportsfest/internal/payments"
	"sportsfest/internal/payments/razorpay"
	"sportsfest/internal/storage/sheets"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting sportsfest backend", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := sheets.New(&cfg.Sheets)
	if err != nil {
		log.Error("failed to init sheets storage", sl.Err(err))
		os.Exit(1)
	}

	verifier := payments.NewVerifier(cfg.Razorpay.KeySecret)
	orders := razorpay.New(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	mailer := notify.NewMailer(&cfg.SMTP)

	if !mailer.Enabled() {
		log.Warn("SMTP is not configured, confirmation emails will be skipped")
	}

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

	router.Get("/api/offerings", getAllOfferings.New(log))
	router.Get("/api/offerings/{key}", getOffering.New(log))
	router.Post("/api/create-order", createOrder.New(log, orders))
	router.Post("/api/store-registration", storeRegistration.New(log, storage, verifier, mailer))
	router.Post("/api/store-jersey", storeJersey.New(log, storage, verifier))

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
