package dto

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/utils"
)

// Cities selectable as trip origin and destination.
var Cities = []string{
	"New York (NYC)",
	"London (LDN)",
	"Paris (PAR)",
	"Tokyo (TYO)",
	"Sydney (SYD)",
}

const (
	ClassEconomy  = "Economy"
	ClassBusiness = "Business"
)

// TripDetails is the details-entry form filled before searching flights.
type TripDetails struct {
	From          string `json:"from" validate:"required"`
	To            string `json:"to" validate:"required"`
	DepartureDate string `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string `json:"return_date" validate:"omitempty,datetime=2006-01-02"`
	Adults        int    `json:"adults" validate:"min=1"`
	Children      int    `json:"children" validate:"min=0"`
	Pets          int    `json:"pets" validate:"min=0"`
	Luggage       int    `json:"luggage" validate:"min=0"`
	Class         string `json:"class" validate:"required,oneof=Economy Business"`
}

// DefaultTripDetails returns the form as first shown: New York to London,
// departing on departure and returning a week later.
func DefaultTripDetails(departure time.Time) TripDetails {
	return TripDetails{
		From:          Cities[0],
		To:            Cities[1],
		DepartureDate: departure.Format(time.DateOnly),
		ReturnDate:    departure.AddDate(0, 0, 7).Format(time.DateOnly),
		Adults:        1,
		Class:         ClassEconomy,
	}
}

func (d TripDetails) Validate() error {
	if err := ValidateSingleError(d); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	for _, city := range []string{d.From, d.To} {
		if !slices.Contains(Cities, city) {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("Unknown city %s", city),
			}
		}
	}

	// both dates already passed the datetime check
	if d.ReturnDate != "" && d.ReturnDate < d.DepartureDate {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "return_date must not be before departure_date",
		}
	}

	return nil
}

type Passenger struct {
	Name         string `json:"name"`
	TicketNumber string `json:"ticket_number"`
	TicketClass  string `json:"ticket_class"`
	SeatNumber   string `json:"seat_number"`
}

type Seat struct {
	Number string `json:"number"`
	Row    int    `json:"row"`
	Column string `json:"column"`
	Status string `json:"status"`
}

type BookingView struct {
	Kind       string      `json:"kind"`
	Flight     *Flight     `json:"flight,omitempty"`
	Passengers []Passenger `json:"passengers,omitempty"`
}

// BookingSnapshot is everything the booking screen currently on top needs to render,
// plus the actions it may send back.
type BookingSnapshot struct {
	View            BookingView          `json:"view"`
	Service         string               `json:"service,omitempty"`
	Details         TripDetails          `json:"details"`
	Cities          []string             `json:"cities,omitempty"`
	SelectedDate    string               `json:"selected_date,omitempty"`
	Calendar        []utils.CalendarDate `json:"calendar,omitempty"`
	Filter          FilterState          `json:"filter"`
	FilterCandidate *FilterState         `json:"filter_candidate,omitempty"`
	TimeRanges      []string             `json:"time_ranges,omitempty"`
	SortOptions     []string             `json:"sort_options,omitempty"`
	Flights         []Flight             `json:"flights,omitempty"`
	FlightCount     int                  `json:"flight_count"`
	Seats           []Seat               `json:"seats,omitempty"`
	SelectedSeats   []string             `json:"selected_seats,omitempty"`
	CanContinue     bool                 `json:"can_continue"`
	Actions         []string             `json:"actions"`
}

type BookingActionRequest struct {
	SessionID    string       `json:"-" validate:"required,uuid"`
	Type         string       `json:"type" validate:"required,oneof=choose_service update_details swap_cities search select_date open_filter update_filter reset_filter apply_filter select_flight toggle_seat continue back reset"`
	Service      string       `json:"service,omitempty" validate:"omitempty,oneof=hotel transport"`
	Details      *TripDetails `json:"details,omitempty"`
	Date         string       `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Filter       *FilterState `json:"filter,omitempty"`
	FlightNumber string       `json:"flight_number,omitempty"`
	Seat         string       `json:"seat,omitempty"`
	Names        []string     `json:"names,omitempty"`
}

func (b *BookingActionRequest) Bind(r *http.Request) error {
	if id := sessionIDFromRequest(r); id != "" {
		b.SessionID = id
	}

	if err := b.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (b *BookingActionRequest) Validate() error {
	if err := ValidateSingleError(b); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	missing := ""
	switch {
	case b.Type == "choose_service" && b.Service == "":
		missing = "service"
	case b.Type == "update_details" && b.Details == nil:
		missing = "details"
	case b.Type == "select_date" && b.Date == "":
		missing = "date"
	case b.Type == "update_filter" && b.Filter == nil:
		missing = "filter"
	case b.Type == "select_flight" && b.FlightNumber == "":
		missing = "flight_number"
	case b.Type == "toggle_seat" && b.Seat == "":
		missing = "seat"
	}

	if missing != "" {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("%s is required for action %s", missing, b.Type),
		}
	}

	if b.Details != nil {
		if err := b.Details.Validate(); err != nil {
			return err
		}
	}

	if b.Filter != nil {
		return b.Filter.Validate()
	}

	return nil
}
