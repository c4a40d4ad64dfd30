package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// FlightCache stores filter results per date and filter, so repeated searches
// from the search and filter screens skip the filter/sort pass.
type FlightCache struct {
	redis RedisClient
}

func NewFlightCache(redis RedisClient) *FlightCache {
	return &FlightCache{
		redis: redis,
	}
}

func (c *FlightCache) GetCacheKey(date string, filter dto.FilterState) string {
	return fmt.Sprintf("flight:search:%s:%d:%d:%g:%g:%d",
		date,
		filter.DepartureTimeRange,
		filter.ArrivalTimeRange,
		filter.PriceRange.Min,
		filter.PriceRange.Max,
		filter.SelectedSortOption)
}

func (c *FlightCache) SetFlights(ctx context.Context,
	key string,
	flights []dto.Flight,
	expiration time.Duration,
) error {
	data, err := json.Marshal(flights)
	if err != nil {
		return fmt.Errorf("failed to marshal flights: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set flights: %w", err)
	}

	return nil
}

func (c *FlightCache) GetFlights(ctx context.Context, key string) ([]dto.Flight, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var flights []dto.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal flights: %w", err)
	}

	return flights, nil
}
