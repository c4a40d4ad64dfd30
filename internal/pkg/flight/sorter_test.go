//go:build unit

package flight

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/utils"
)

func TestSortFlights_Closure(t *testing.T) {
	flights := []dto.Flight{
		{Number: "1", Departure: "14:15", Price: "$210"},
		{Number: "2", Departure: "09:30", Price: "$650"},
		{Number: "3", Departure: "09:30", Price: "$120"},
		{Number: "4", Departure: "01:20", Price: "$210"},
		{Number: "5", Departure: "01:20", Price: "$210"},
	}

	sortRequest := func(flights []dto.Flight, option int, wantNumbers []string) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := SortFlights(flights, option)
			if err != nil {
				t.Fatalf("SortFlights returned error: %v", err)
			}

			diff := cmp.Diff(wantNumbers, numbers(got))
			if diff != "" {
				t.Fatalf("SortFlights result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	// 4 and 5 are equal on every key, so input order is kept
	t.Run("arrival_time_then_price", sortRequest(flights, dto.SortByArrivalTime, []string{"4", "5", "3", "2", "1"}))
	t.Run("departure_time_then_price", sortRequest(flights, dto.SortByDepartureTime, []string{"4", "5", "3", "2", "1"}))
	t.Run("price_then_departure", sortRequest(flights, dto.SortByPrice, []string{"3", "4", "5", "1", "2"}))
	t.Run("lowest_fare_then_departure", sortRequest(flights, dto.SortByLowestFare, []string{"3", "4", "5", "1", "2"}))
	t.Run("duration_sorts_by_departure_only", sortRequest(flights, dto.SortByDuration, []string{"4", "5", "2", "3", "1"}))
	t.Run("unknown_option_sorts_by_departure_only", sortRequest(flights, 42, []string{"4", "5", "2", "3", "1"}))
	t.Run("empty", sortRequest([]dto.Flight{}, dto.SortByPrice, []string{}))
}

func TestSortFlights_DoesNotMutateInput(t *testing.T) {
	flights := []dto.Flight{
		{Number: "1", Departure: "14:15", Price: "$210"},
		{Number: "2", Departure: "09:30", Price: "$650"},
	}

	if _, err := SortFlights(flights, dto.SortByDepartureTime); err != nil {
		t.Fatalf("SortFlights returned error: %v", err)
	}

	if diff := cmp.Diff([]string{"1", "2"}, numbers(flights)); diff != "" {
		t.Fatalf("input was reordered (-want +got):\n%s", diff)
	}
}

func TestSortFlights_PriceIsNonDecreasing(t *testing.T) {
	got, err := SortFlights(NewCatalog().All(), dto.SortByPrice)
	if err != nil {
		t.Fatalf("SortFlights returned error: %v", err)
	}

	for i := 1; i < len(got); i++ {
		prev, _ := utils.ParsePrice(got[i-1].Price)
		curr, _ := utils.ParsePrice(got[i].Price)
		if curr < prev {
			t.Fatalf("price decreased at %d: %s after %s", i, got[i].Price, got[i-1].Price)
		}
		if curr == prev && got[i].Departure < got[i-1].Departure {
			t.Fatalf("tie at %s not ordered by departure", got[i].Price)
		}
	}
}

func TestSortFlights_Malformed(t *testing.T) {
	_, err := SortFlights([]dto.Flight{{Number: "X", Departure: "10:00", Price: "ten"}}, dto.SortByPrice)
	if !errors.Is(err, ErrMalformedFlight) {
		t.Fatalf("expected ErrMalformedFlight, got %v", err)
	}
}
