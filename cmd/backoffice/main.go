// @title       Restaurant back-office API
// @version     1.0
// @description Catalog, tables, orders and payments of a single restaurant.
// @BasePath    /api
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	servertiming "github.com/mitchellh/go-server-timing"
	"go.opentelemetry.io/otel"

	"github.com/MikeMC777/restau-management/internal/cache"
	"github.com/MikeMC777/restau-management/internal/category"
	"github.com/MikeMC777/restau-management/internal/client"
	"github.com/MikeMC777/restau-management/internal/config"
	"github.com/MikeMC777/restau-management/internal/database"
	"github.com/MikeMC777/restau-management/internal/events"
	"github.com/MikeMC777/restau-management/internal/family"
	"github.com/MikeMC777/restau-management/internal/grpcx"
	"github.com/MikeMC777/restau-management/internal/httpx"
	"github.com/MikeMC777/restau-management/internal/logging"
	"github.com/MikeMC777/restau-management/internal/observability"
	"github.com/MikeMC777/restau-management/internal/order"
	"github.com/MikeMC777/restau-management/internal/payment"
	"github.com/MikeMC777/restau-management/internal/paymentmethod"
	"github.com/MikeMC777/restau-management/internal/product"
	"github.com/MikeMC777/restau-management/internal/storage"
	"github.com/MikeMC777/restau-management/internal/table"
	"github.com/MikeMC777/restau-management/internal/user"
)

func main() {
	if err := run(); err != nil {
		slog.Error("backoffice stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tel := observability.New(otel.GetTracerProvider(), otel.GetMeterProvider())

	db, err := database.Open(ctx, cfg, tel)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		return err
	}

	images, err := storage.NewLocal(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		return err
	}

	var productCache cache.Cache = cache.NewMemory(cfg.CacheTTL)
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.CacheTTL)
		if err != nil {
			log.Warn("redis unavailable, using in-process cache", "err", err)
		} else {
			defer rc.Close()
			productCache = rc
		}
	}

	var publisher order.Publisher = events.NewLog(log)
	if cfg.AMQPURL != "" {
		mq, err := events.DialAMQP(cfg.AMQPURL)
		if err != nil {
			log.Warn("amqp unavailable, logging order events instead", "err", err)
		} else {
			defer mq.Close()
			publisher = mq
		}
	}

	svc := services{
		categories: category.NewService(category.NewGormRepo(db.Gorm)),
		clients:    client.NewService(client.NewGormRepo(db.Gorm)),
		families:   family.NewService(family.NewGormRepo(db.Gorm), images),
		orders:     order.NewService(order.NewGormRepo(db.Gorm), publisher, tel),
		payments:   payment.NewService(payment.NewGormRepo(db.Gorm)),
		methods:    paymentmethod.NewService(paymentmethod.NewGormRepo(db.Gorm)),
		products:   product.NewService(product.NewGormRepo(db.Gorm), images, productCache),
		tables:     table.NewService(table.NewGormRepo(db.Gorm)),
		users:      user.NewService(user.NewGormRepo(db.Gorm)),
	}

	limiter := httpx.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go func() {
		t := time.NewTicker(time.Minute)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				limiter.Sweep()
			}
		}
	}()

	router := newRouter(svc, routerConfig{
		log:        log,
		uploadRoot: images.Root(),
		baseURL:    cfg.PublicBaseURL,
		origins:    cfg.CORSOrigins,
		limiter:    limiter,
		ping:       db.Ping,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           servertiming.Middleware(router, nil),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer, health := grpcx.NewServer(db)
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}
	go health.Run(ctx, 15*time.Second)
	go func() {
		log.Info("grpc health listening", "addr", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("grpc serve", "err", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		stop()
		return err
	}

	health.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	grpcServer.GracefulStop()
	log.Info("stopped cleanly")
	return nil
}
