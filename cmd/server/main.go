package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Nick-the-BinaryTree/allergy-albert/internal/config"
	"github.com/Nick-the-BinaryTree/allergy-albert/internal/handler"
	"github.com/Nick-the-BinaryTree/allergy-albert/internal/jobs"
	"github.com/Nick-the-BinaryTree/allergy-albert/internal/messenger"
	"github.com/Nick-the-BinaryTree/allergy-albert/internal/middleware"
	"github.com/Nick-the-BinaryTree/allergy-albert/internal/repository"
	"github.com/Nick-the-BinaryTree/allergy-albert/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// State
	store := repository.NewStore(cfg.Store.EventIDBase)
	if cfg.Store.SeedDemo {
		store.Seed()
		slog.Info("seeded demo data")
	}
	seen := repository.NewSeenMessages(repository.SeenConfig{TTL: cfg.Store.DedupeTTL})
	defer seen.Stop()

	// Services
	chatService := service.NewChatService(service.ChatServiceConfig{
		Store:        store,
		Logger:       logger,
		ServerURL:    cfg.Server.URL,
		DebugEnabled: cfg.Store.DebugEnabled,
	})

	messengerClient := messenger.NewClient(messenger.Config{
		GraphURL:        cfg.Messenger.GraphURL,
		PageAccessToken: cfg.Messenger.PageAccessToken,
		Logger:          logger,
	})

	// Background jobs
	outbox := jobs.NewOutbox(messengerClient, jobs.OutboxConfig{
		QueueSize:   cfg.Outbox.QueueSize,
		Workers:     cfg.Outbox.Workers,
		SendTimeout: cfg.Outbox.SendTimeout,
		Logger:      logger,
	})
	outbox.Start()
	defer outbox.Stop()

	if cfg.Messenger.SetGreeting {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := messengerClient.SetGreeting(ctx, service.GreetingText); err != nil {
				slog.Warn("failed to set greeting text", slog.String("error", err.Error()))
				return
			}
			slog.Info("greeting text set")
		}()
	}

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   cfg.RateLimit.Rate,
		Window: cfg.RateLimit.Window,
		Burst:  cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Handlers
	webhookHandler := handler.NewWebhookHandler(handler.WebhookHandlerConfig{
		Chat:        chatService,
		Outbox:      outbox,
		Seen:        seen,
		VerifyToken: cfg.Messenger.ValidationToken,
		Validate:    validator.New(),
		Logger:      logger,
	})

	mux := http.NewServeMux()
	handler.NewHealthHandler().RegisterRoutes(mux)
	handler.NewAuthorizeHandler("").RegisterRoutes(mux)
	handler.NewAssetsHandler(cfg.Server.StaticDir).RegisterRoutes(mux)

	webhookMux := http.NewServeMux()
	webhookHandler.RegisterRoutes(webhookMux)
	mux.Handle("/webhook", middleware.Chain(
		webhookMux,
		middleware.RateLimit(rateLimiter),
		middleware.Signature(middleware.SignatureConfig{
			AppSecret:        cfg.Messenger.AppSecret,
			RequireSignature: cfg.IsProduction(),
			Logger:           logger,
		}),
	))

	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
