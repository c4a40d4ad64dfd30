package dto

import (
	"fmt"
	"net/http"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

// Flight is a catalog entry. It has no identifier: two flights are the same
// flight when every field is equal.
type Flight struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Departure   string `json:"departure"`
	Price       string `json:"price"`
	Number      string `json:"number"`
}

// time buckets used by FilterState.DepartureTimeRange and ArrivalTimeRange
const (
	AnyTimeRange          = -1
	TimeRangeEarlyMorning = 0 // 12AM - 06AM
	TimeRangeMorning      = 1 // 06AM - 12PM
	TimeRangeAfternoon    = 2 // 12PM - 06PM
)

// sort options used by FilterState.SelectedSortOption
const (
	SortByArrivalTime   = 0
	SortByDepartureTime = 1
	SortByPrice         = 2
	SortByLowestFare    = 3
	SortByDuration      = 4
)

var TimeRangeLabels = []string{"12AM - 06AM", "06AM - 12PM", "12PM - 06PM"}

var SortOptionLabels = []string{"Arrival time", "Departure time", "Price", "Lowest fare", "Duration"}

type PriceRange struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gte=0"`
}

// Contains reports whether price lies in the inclusive range.
func (p PriceRange) Contains(price float64) bool {
	return price >= p.Min && price <= p.Max
}

type FilterState struct {
	DepartureTimeRange int        `json:"departure_time_range"`
	ArrivalTimeRange   int        `json:"arrival_time_range"`
	PriceRange         PriceRange `json:"price_range"`
	SelectedSortOption int        `json:"selected_sort_option" validate:"gte=0,lte=4"`
}

// DefaultFilterState is the filter a flight search starts with.
func DefaultFilterState() FilterState {
	return FilterState{
		DepartureTimeRange: TimeRangeEarlyMorning,
		ArrivalTimeRange:   TimeRangeEarlyMorning,
		PriceRange:         PriceRange{Min: 50, Max: 250},
		SelectedSortOption: SortByPrice,
	}
}

func (f FilterState) Validate() error {
	if err := ValidateSingleError(f); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if f.PriceRange.Max < f.PriceRange.Min {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "price_range max must be greater than or equal to min",
		}
	}

	return nil
}

type SearchFlightRequest struct {
	Date   string       `json:"date" validate:"required,datetime=2006-01-02"`
	Filter *FilterState `json:"filter,omitempty"`
}

func (s *SearchFlightRequest) Bind(_ *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchFlightRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if s.Filter != nil {
		return s.Filter.Validate()
	}

	return nil
}

// FilterOrDefault returns the requested filter, or the default one when none was sent.
func (s SearchFlightRequest) FilterOrDefault() FilterState {
	if s.Filter == nil {
		return DefaultFilterState()
	}

	return *s.Filter
}

type ListFlightsRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (l *ListFlightsRequest) Bind(r *http.Request) error {
	if r != nil && l.Date == "" {
		l.Date = r.URL.Query().Get("date")
	}

	if err := ValidateSingleError(l); err != nil {
		return fmt.Errorf("error validate request: %w", exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		})
	}

	return nil
}

type Metadata struct {
	TotalResults int  `json:"total_results"`
	SearchTimeMs int  `json:"search_time_ms"`
	CacheHit     bool `json:"cache_hit"`
}

type ListFlightsResponse struct {
	Date     string   `json:"date,omitempty"`
	Metadata Metadata `json:"metadata"`
	Flights  []Flight `json:"flights"`
}

// SearchFlightResponse is the response struct for the search flight endpoint
type SearchFlightResponse struct {
	Date     string      `json:"date"`
	Filter   FilterState `json:"filter"`
	Metadata Metadata    `json:"metadata"`
	Flights  []Flight    `json:"flights"`
}
