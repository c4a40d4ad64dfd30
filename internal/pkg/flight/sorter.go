package flight

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/utils"
)

type sortKey struct {
	flight    dto.Flight
	price     float64
	departure string
}

// SortFlights orders flights for a sort option. Time based options (arrival, departure)
// sort by the "HH:MM" departure string then price; price based options (price, lowest fare)
// sort by price then departure. Any other option sorts like departure time.
// The sort is stable, so input order breaks the remaining ties.
func SortFlights(flights []dto.Flight, sortOption int) ([]dto.Flight, error) {
	keys := make([]sortKey, len(flights))
	for i, flight := range flights {
		price, err := utils.ParsePrice(flight.Price)
		if err != nil {
			return nil, ErrMalformedFlight.WithCause(fmt.Errorf("flight %s: %w", flight.Number, err))
		}

		keys[i] = sortKey{flight: flight, price: price, departure: flight.Departure}
	}

	switch sortOption {
	case dto.SortByPrice, dto.SortByLowestFare:
		slices.SortStableFunc(keys, func(a, b sortKey) int {
			return cmp.Or(
				cmp.Compare(a.price, b.price),
				cmp.Compare(a.departure, b.departure),
			)
		})
	default:
		slices.SortStableFunc(keys, func(a, b sortKey) int {
			if c := cmp.Compare(a.departure, b.departure); c != 0 {
				return c
			}

			// only arrival and departure time break ties by price
			if sortOption == dto.SortByArrivalTime || sortOption == dto.SortByDepartureTime {
				return cmp.Compare(a.price, b.price)
			}

			return 0
		})
	}

	results := make([]dto.Flight, len(keys))
	for i, key := range keys {
		results[i] = key.flight
	}

	return results, nil
}
