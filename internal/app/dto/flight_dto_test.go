//go:build unit

package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSearchFlightRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req SearchFlightRequest, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && wantMsg != "" {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	filter := DefaultFilterState()

	t.Run("valid_without_filter", validateRequest(SearchFlightRequest{Date: "2024-07-07"}, false, ""))
	t.Run("valid_with_filter", validateRequest(SearchFlightRequest{Date: "2024-07-07", Filter: &filter}, false, ""))
	t.Run("missing_date", validateRequest(SearchFlightRequest{}, true, "date is a required field"))
	t.Run("invalid_date", validateRequest(SearchFlightRequest{Date: "07/07/2024"}, true, ""))
	t.Run("inverted_price_range", validateRequest(SearchFlightRequest{
		Date: "2024-07-07",
		Filter: &FilterState{
			PriceRange:         PriceRange{Min: 300, Max: 100},
			SelectedSortOption: SortByPrice,
		},
	}, true, "price_range max must be greater than or equal to min"))
	t.Run("sort_option_out_of_range", validateRequest(SearchFlightRequest{
		Date: "2024-07-07",
		Filter: &FilterState{
			PriceRange:         PriceRange{Min: 0, Max: 100},
			SelectedSortOption: 5,
		},
	}, true, ""))
}

func TestSearchFlightRequest_FilterOrDefault(t *testing.T) {
	req := SearchFlightRequest{Date: "2024-07-07"}
	assert.Equal(t, DefaultFilterState(), req.FilterOrDefault())

	custom := FilterState{DepartureTimeRange: AnyTimeRange, PriceRange: PriceRange{Max: 900}}
	req.Filter = &custom
	assert.Equal(t, custom, req.FilterOrDefault())
}

func TestListFlightsRequest_Bind(t *testing.T) {
	_ = InitValidator()

	bindRequest := func(target string, wantDate string, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			var req ListFlightsRequest
			err := req.Bind(httptest.NewRequest("GET", target, nil))
			if (err != nil) != wantErr {
				t.Fatalf("Bind() error = %v, wantErr %v", err, wantErr)
			}
			assert.Equal(t, wantDate, req.Date)
		}
	}

	t.Run("no_date", bindRequest("/api/v1/flights", "", false))
	t.Run("with_date", bindRequest("/api/v1/flights?date=2024-07-14", "2024-07-14", false))
	t.Run("bad_date", bindRequest("/api/v1/flights?date=tomorrow", "tomorrow", true))
}

func TestPriceRange_Contains(t *testing.T) {
	r := PriceRange{Min: 50, Max: 250}

	assert.True(t, r.Contains(50))
	assert.True(t, r.Contains(250))
	assert.True(t, r.Contains(120.5))
	assert.False(t, r.Contains(49.99))
	assert.False(t, r.Contains(250.01))
}
