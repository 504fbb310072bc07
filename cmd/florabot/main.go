package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nanmu42/gzip"
	"go.uber.org/zap"

	"florabot/config"
	"florabot/internal/auth"
	handler "florabot/internal/handler/http"
	"florabot/internal/logger"
	"florabot/internal/middleware"
	"florabot/internal/notify"
	"florabot/internal/orderid"
	"florabot/internal/repository"
	"florabot/internal/service"
	"florabot/internal/worker"
)

func main() {
	cfg := config.MustLoad()

	zl, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer zl.Sync()

	if cfg.JWT.SigningKey == "" {
		zl.Fatal("JWT_SIGNING_KEY is not set")
	}
	if cfg.AdminID == 0 {
		zl.Warn("ADMIN_ID is not set, orders will not reach the administrator")
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	for _, path := range []string{cfg.Store.OrdersPath, cfg.Store.CounterPath} {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				zl.Fatal("Error creating store directory", zap.String("dir", dir), zap.Error(err))
			}
		}
	}

	loc := cfg.Location()

	// dependency injection
	store := repository.NewFileStore(cfg.Store.OrdersPath, loc, zl)
	counter := repository.NewCounterFile(cfg.Store.CounterPath, zl)
	ids := orderid.New(cfg.OrderPrefix, loc, counter)

	var notifier notify.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier = notify.NewTelegramNotifier(cfg.Telegram.APIURL, cfg.Telegram.BotToken)
	} else {
		zl.Warn("BOT_TOKEN is not set, notifications go to the log only")
		notifier = notify.NewLogNotifier(zl)
	}

	dispatcher := worker.NewDispatcher(notifier, zl, cfg.QueueSize)
	go dispatcher.Run(ctx)

	token := auth.NewToken([]byte(cfg.JWT.SigningKey), cfg.JWT.Expiration)

	orderService := service.NewOrderService(store, ids, dispatcher, cfg, zl)
	eventHandler := handler.NewEventHandler(orderService, zl)
	orderHandler := handler.NewOrderHandler(orderService, zl)

	router := chi.NewRouter()
	router.Use(middleware.Logging(zl))
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	router.Use(gzip.DefaultHandler().WrapHandler)

	router.Get("/api/healthz", handler.Healthz())

	// routes that require a verified identity
	router.Group(func(group chi.Router) {
		group.Use(middleware.Auth(token))
		group.Post("/api/events", eventHandler.SubmitEvent())
		group.Get("/api/orders", orderHandler.ListOwn())
		group.Get("/api/admin/orders", orderHandler.ListRecent())
		group.Post("/api/admin/orders/{orderID}/status", orderHandler.SetStatus())
	})

	hs := &http.Server{
		Addr:              cfg.HTTPServer.Address,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:       cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		zl.Info("Shutting down server",
			zap.Duration("timeout", cfg.HTTPServer.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			cfg.HTTPServer.ShutdownTimeout)
		defer cancel()

		if err := hs.Shutdown(shutdownCtx); err != nil {
			zl.Error("Graceful shutdown failed", zap.Error(err))
		}
	}()

	zl.Info("Running server", zap.String("addr", cfg.HTTPServer.Address))
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Fatal("Error starting server", zap.Error(err))
	}
}
