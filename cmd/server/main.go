package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ilomarket/shop-backend/internal/auth"
	"github.com/ilomarket/shop-backend/internal/catalog"
	"github.com/ilomarket/shop-backend/internal/config"
	"github.com/ilomarket/shop-backend/internal/handlers"
	"github.com/ilomarket/shop-backend/internal/logging"
	"github.com/ilomarket/shop-backend/internal/maps"
	"github.com/ilomarket/shop-backend/internal/mykafka"
	"github.com/ilomarket/shop-backend/internal/order"
	"github.com/ilomarket/shop-backend/internal/stores"
	httpserver "github.com/ilomarket/shop-backend/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := auth.NewDB()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer(strings.Split(configuration.KAFKA_ADDRESS, ","))
	}

	catalogStore := catalog.NewStore()
	catalogService := catalog.NewService(catalogStore)
	catalogService.Initialize()

	orderService := &order.Service{
		Catalog: catalogService,
		Ledger:  order.NewLedger(),
	}

	storeService := stores.NewService(maps.NewClient(configuration.MAPS_API_KEY))
	authService := &auth.Service{
		Repo:      &auth.Repo{DB: db},
		JWTSecret: []byte(configuration.JWT_SECRET),
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(httpserver.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler:    &handlers.AuthHandler{Auth: authService, Producer: producer},
		ProductHandler: &handlers.ProductHandler{Catalog: catalogService},
		OrderHandler:   &handlers.OrderHandler{Orders: orderService, Producer: producer},
		StoreHandler:   &handlers.StoreHandler{Stores: storeService},
		JWTSecret:      []byte(configuration.JWT_SECRET),
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	logger.Info("server started", "addr", configuration.HTTP_ADDR)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	logger.Info("shutdown complete")
}
