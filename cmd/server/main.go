package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PYTHTRADER/e-commerce/config"
	"github.com/PYTHTRADER/e-commerce/internal/api"
	"github.com/PYTHTRADER/e-commerce/internal/backend"
	"github.com/PYTHTRADER/e-commerce/internal/broker"
	"github.com/PYTHTRADER/e-commerce/internal/catalog"
	"github.com/PYTHTRADER/e-commerce/internal/ledger"
	"github.com/PYTHTRADER/e-commerce/internal/shop"
	"github.com/PYTHTRADER/e-commerce/internal/util"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting storefront service")

	tp, err := util.InitTracer("storefront", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	ctx := context.Background()

	var source catalog.Source = catalog.Static()
	if cfg.Catalog.DatabaseURL != "" {
		pg, err := catalog.NewPostgresSource(cfg.Catalog.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to catalog database: %v", err)
		}
		defer pg.Close()
		source = pg
		log.Println("Catalog database connected")
	} else {
		log.Println("Using built-in catalog seed")
	}

	cat, err := catalog.Load(ctx, source)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	redisRepo, err := ledger.NewRedisRepository(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisRepo.Close()
	log.Println("Redis connected")

	orderLedger, err := ledger.Open(ctx, redisRepo, catalog.SeedOrders())
	if err != nil {
		log.Fatalf("Failed to open order ledger: %v", err)
	}

	var notifier backend.Notifier = backend.NewEmailSimulator(cfg.Simulate.EmailDelay)
	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicOrder)
		defer producer.Close()
		log.Println("Kafka producer initialized")

		notifier = backend.MultiNotifier{
			notifier,
			broker.NewNotifier(broker.NewEventPublisher(producer)),
		}
	}

	gateway := backend.NewSimulatedGateway(cfg.Simulate.PaymentDelay)
	session := shop.New(cat, orderLedger, gateway, notifier, cfg.Simulate.ConnectionDelay)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handler := api.NewHandler(session, cat)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
