package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"model-card-service/internal/adapters/primary/http/handlers"
	"model-card-service/internal/adapters/primary/http/middleware"
	"model-card-service/internal/adapters/secondary/kubernetes"
	"model-card-service/internal/adapters/secondary/postgres"
	"model-card-service/internal/adapters/secondary/search"
	"model-card-service/internal/config"
	output "model-card-service/internal/core/ports/output"
	"model-card-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters (Output Ports - Repositories)
	cardRepo := postgres.NewModelCardRepository(pool)
	revisionRepo := postgres.NewCardRevisionRepository(pool)

	// Search Client (Optional - based on config)
	var searchClient output.SearchClient
	if cfg.Search.Enabled {
		client, err := search.NewSearchClient(&cfg.Search)
		if err != nil {
			log.Warnf("search client init failed (continuing without search integration): %v", err)
		} else {
			searchClient = client
			log.Info("search client initialized")
		}
	} else {
		log.Info("search integration disabled")
	}

	// Publisher Client (Optional - based on config)
	var publisherClient output.PublisherClient
	if cfg.Kubernetes.Enabled {
		client, err := kubernetes.NewPublisherClient(&cfg.Kubernetes)
		if err != nil {
			log.Warnf("publisher client init failed (continuing without K8s integration): %v", err)
		} else {
			publisherClient = client
			log.Info("publisher client initialized")
		}
	} else {
		log.Info("K8s publishing disabled")
	}

	// Core Services (Application Layer)
	cardSvc := services.NewModelCardService(cardRepo, revisionRepo, searchClient)
	generatorSvc := services.NewGeneratorService()
	searchSvc := services.NewSearchService(searchClient, cardRepo, revisionRepo)
	publishSvc := services.NewPublishService(publisherClient, cardRepo, revisionRepo)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(cardSvc, generatorSvc, searchSvc, publishSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/model-cards")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
