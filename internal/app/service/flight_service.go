package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/flight"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

type FlightCacher interface {
	GetCacheKey(date string, filter dto.FilterState) string
	GetFlights(ctx context.Context, key string) ([]dto.Flight, error)
	SetFlights(ctx context.Context, key string, flights []dto.Flight, expiration time.Duration) error
}

type FlightCatalog interface {
	All() []dto.Flight
	ForDate(date string) []dto.Flight
}

type FlightService struct {
	Catalog         FlightCatalog
	Cache           FlightCacher
	CacheExpiration time.Duration
}

func NewFlightService(catalog FlightCatalog, cache FlightCacher, cacheExpiration time.Duration) *FlightService {
	return &FlightService{
		Catalog:         catalog,
		Cache:           cache,
		CacheExpiration: cacheExpiration,
	}
}

// ListFlights godoc
// @Summary      List flights
// @Tags         Flights
// @Description  List catalog flights, optionally only those departing on date
// @Param        date  query     string  false  "Departure date (YYYY-MM-DD)"
// @Success      200   {object}  dto.ListFlightsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/flights [get]
func (s *FlightService) ListFlights(_ context.Context, req dto.ListFlightsRequest) (dto.ListFlightsResponse, error) {
	flights := s.Catalog.All()
	if req.Date != "" {
		flights = s.Catalog.ForDate(req.Date)
	}

	return dto.ListFlightsResponse{
		Date:     req.Date,
		Flights:  flights,
		Metadata: dto.Metadata{TotalResults: len(flights)},
	}, nil
}

// SearchFlights godoc
// @Summary      Search flights
// @Tags         Flights
// @Description  Filter and sort the flights departing on a date. The default filter is used when none is sent.
// @Param        request  body      dto.SearchFlightRequest  true  "Search request"
// @Success      200      {object}  dto.SearchFlightResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *FlightService) SearchFlights(ctx context.Context, req dto.SearchFlightRequest) (dto.SearchFlightResponse, error) {
	filter := req.FilterOrDefault()

	flights, metadata, err := s.Search(ctx, req.Date, filter)
	if err != nil {
		return dto.SearchFlightResponse{}, err
	}

	return dto.SearchFlightResponse{
		Date:     req.Date,
		Filter:   filter,
		Metadata: metadata,
		Flights:  flights,
	}, nil
}

// Search returns the flights departing on date that pass filter, in filter order.
// Results are read through the cache; a cache failure only costs a recomputation.
// No match is an empty result, not an error.
func (s *FlightService) Search(ctx context.Context, date string, filter dto.FilterState) ([]dto.Flight, dto.Metadata, error) {
	startTime := time.Now()
	cacheKey := s.Cache.GetCacheKey(date, filter)

	flights, err := s.Cache.GetFlights(ctx, cacheKey)
	cacheHit := err == nil

	if cacheHit {
		metrics.SearchCacheLookups.WithLabelValues("hit").Inc()
	} else {
		if errors.Is(err, redis.Nil) {
			metrics.SearchCacheLookups.WithLabelValues("miss").Inc()
		} else {
			metrics.SearchCacheLookups.WithLabelValues("error").Inc()
			slog.WarnContext(ctx, "failed to get flights from cache", slog.String("error", err.Error()))
		}

		flights, err = flight.ApplyFilters(ctx, s.Catalog.ForDate(date), filter)
		if err != nil {
			return nil, dto.Metadata{}, fmt.Errorf("failed to apply filters: %w", err)
		}

		if err := s.Cache.SetFlights(ctx, cacheKey, flights, s.CacheExpiration); err != nil {
			slog.WarnContext(ctx, "failed to set flights to cache", slog.String("error", err.Error()))
		}
	}

	return flights, dto.Metadata{
		TotalResults: len(flights),
		SearchTimeMs: int(time.Since(startTime).Milliseconds()),
		CacheHit:     cacheHit,
	}, nil
}
