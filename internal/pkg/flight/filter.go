package flight

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/utils"
)

// ApplyFilters keeps the flights matching criteria and orders them by the selected sort option.
// A flight with an unparseable price or departure time fails the whole call with ErrMalformedFlight.
func ApplyFilters(ctx context.Context, flights []dto.Flight, criteria dto.FilterState) ([]dto.Flight, error) {
	filtered, err := FilterFlights(ctx, flights, criteria)
	if err != nil {
		return nil, err
	}

	return SortFlights(filtered, criteria.SelectedSortOption)
}

// FilterFlights keeps a flight when its departure hour falls in both the departure and
// the arrival time bucket and its price lies in the inclusive price range.
// The arrival bucket is tested against the departure hour too: flights carry no arrival time.
func FilterFlights(ctx context.Context, flights []dto.Flight, criteria dto.FilterState) ([]dto.Flight, error) {
	results := make([]dto.Flight, 0, len(flights))

	for _, flight := range flights {
		departureHour, err := utils.ParseHour(flight.Departure)
		if err != nil {
			slog.ErrorContext(ctx, "malformed flight departure",
				slog.String("flight_number", flight.Number), slog.Any("error", err))
			return nil, ErrMalformedFlight.WithCause(fmt.Errorf("flight %s: %w", flight.Number, err))
		}

		price, err := utils.ParsePrice(flight.Price)
		if err != nil {
			slog.ErrorContext(ctx, "malformed flight price",
				slog.String("flight_number", flight.Number), slog.Any("error", err))
			return nil, ErrMalformedFlight.WithCause(fmt.Errorf("flight %s: %w", flight.Number, err))
		}

		if !isWithinTimeRange(departureHour, criteria.DepartureTimeRange) {
			continue
		}

		if !isWithinTimeRange(departureHour, criteria.ArrivalTimeRange) {
			continue
		}

		if !criteria.PriceRange.Contains(price) {
			continue
		}

		results = append(results, flight)
	}

	return results, nil
}

// isWithinTimeRange checks hour against a bucket: 0 is 00-05, 1 is 06-11, 2 is 12-17.
// Any other bucket value does not constrain the hour.
func isWithinTimeRange(hour int, bucket int) bool {
	switch bucket {
	case dto.TimeRangeEarlyMorning:
		return hour >= 0 && hour <= 5
	case dto.TimeRangeMorning:
		return hour >= 6 && hour <= 11
	case dto.TimeRangeAfternoon:
		return hour >= 12 && hour <= 17
	default:
		return true
	}
}
