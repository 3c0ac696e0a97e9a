package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swiss-app/internal/config"
	"swiss-app/internal/store"
	"swiss-app/internal/web"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

//go:embed templates/* templates/partials/*
var content embed.FS

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg.Log, os.Stderr)

	templates, err := web.NewTemplates(content)
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	appStore, backend, err := store.Open(store.Options{
		PostgresDSN:           cfg.Postgres.DSN,
		PostgresMigrationsDir: cfg.Postgres.MigrationsDir,
		SQLitePath:            cfg.SQLite.Path,
		SQLiteMigrationsDir:   cfg.SQLite.MigrationsDir,
	})
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer appStore.Close()
	logger.Info("store ready", "backend", backend)

	if cfg.IsDev() && backend == "memory" && cfg.SeedPlayers > 0 {
		if err := store.SeedPlayers(context.Background(), appStore, cfg.SeedPlayers, 42); err != nil {
			log.Fatalf("seed: %v", err)
		}
		logger.Info("seeded demo players", "count", cfg.SeedPlayers)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server := web.NewServer(appStore, templates, web.Options{
		Logger:   logger,
		Registry: registry,
		Admin: web.AdminOptions{
			PasswordHash: cfg.Admin.PasswordHash,
			DevMode:      cfg.IsDev(),
		},
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}
	r.Mount("/", server.Routes())

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		logger.Info("starting in lambda mode")
		adapter := httpadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}()

	logger.Info("listening", "addr", cfg.HTTPAddr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("http server: %v", err)
	}
}
