package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/travel-booking-service/internal/app/config"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/app/endpoints"
	"github.com/ijalalfrz/travel-booking-service/internal/app/service"
	"github.com/ijalalfrz/travel-booking-service/internal/app/transport"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/booking"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/flight"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/logger"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/navigation"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/session"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// @title           Travel Booking Service API
// @version         0.0.1
// @description     travel-booking-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
	defer redisClient.Close()

	store := session.NewStore(cfg.Session.TTL, nil)
	endpts := makeEndpoints(&cfg, redisClient, store)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return startHTTPServer(groupCtx, &cfg, endpts, redis_rate.NewLimiter(redisClient))
	})

	group.Go(func() error {
		return store.RunJanitor(groupCtx, cfg.Session.CleanupInterval)
	})

	if err := group.Wait(); err != nil {
		slog.ErrorContext(ctx, "service stopped with error", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg *config.Config, endpts endpoints.Endpoints,
	limiter *redis_rate.Limiter) error {
	router := transport.MakeHTTPRouter(cfg, endpts, limiter)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
		close(errChan)
	}()

	select {
	case err, ok := <-errChan:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
		slog.InfoContext(ctx, "received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")

	return nil
}

func makeEndpoints(cfg *config.Config, redisClient *redis.Client, store *session.Store) endpoints.Endpoints {
	catalog := flight.NewCatalog()

	// cache
	flightCache := flight.NewFlightCache(redisClient)

	// service
	flightService := service.NewFlightService(catalog, flightCache, cfg.Search.CacheExpiration)
	sessionService := service.NewSessionService(
		store,
		booking.NewMachine(catalog, nil, nil),
		navigation.NewRouter(),
		flightService,
	)

	// endpoint
	return endpoints.Endpoints{
		FlightEndpoint:       endpoints.MakeFlightEndpoint(flightService),
		SessionEndpoint:      endpoints.MakeSessionEndpoint(sessionService),
		NotificationEndpoint: endpoints.MakeNotificationEndpoint(service.NewNotificationService()),
	}
}
