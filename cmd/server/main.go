package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pulsewear/storefront/internal/cache"
	"github.com/pulsewear/storefront/internal/config"
	"github.com/pulsewear/storefront/internal/db"
	"github.com/pulsewear/storefront/internal/es"
	"github.com/pulsewear/storefront/internal/events"
	"github.com/pulsewear/storefront/internal/httpserver"
	"github.com/pulsewear/storefront/internal/logging"
	loggingmw "github.com/pulsewear/storefront/internal/middleware/logging"
	"github.com/pulsewear/storefront/internal/repo"
	"github.com/pulsewear/storefront/internal/service"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("database migrate error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	var store cache.Cache
	if cfg.RedisAddr != "" {
		store = cache.NewRedisCache(cfg.RedisAddr, cfg.ServiceName)
	} else {
		store = cache.NewNoop(cfg.ServiceName)
	}

	searchHandler := &httpserver.SearchHTTP{Index: "products"}
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searchHandler.ES = esClient
	}

	repository := &repo.GormRepo{DB: database}
	catalogSvc := &service.CatalogService{Repo: repository}
	couponSvc := &service.CouponService{Repo: repository}
	orderSvc := &service.OrderService{
		Repo:     repository,
		Catalog:  catalogSvc,
		Coupons:  couponSvc,
		Producer: producer,
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler:     &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: repository, JWTSecret: cfg.JWTSecret}},
		ProductHandler:  &httpserver.ProductHTTP{Svc: catalogSvc, Producer: producer},
		CategoryHandler: &httpserver.CategoryHTTP{Svc: &service.CategoryService{Repo: repository}},
		CouponHandler:   &httpserver.CouponHTTP{Svc: couponSvc},
		OrderHandler:    &httpserver.OrderHTTP{Svc: orderSvc},
		CustomerHandler: &httpserver.CustomerHTTP{Svc: &service.CustomerService{Repo: repository}},
		OverviewHandler: &httpserver.OverviewHTTP{Svc: &service.OverviewService{Repo: repository, Cache: store}},
		SearchHandler:   searchHandler,
		JWTSecret:       cfg.JWTSecret,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()
	logger.Info("server started", "port", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
