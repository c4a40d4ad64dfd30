package booking

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/utils"
	"github.com/samber/lo"
)

type ActionType string

const (
	ActionChooseService ActionType = "choose_service"
	ActionUpdateDetails ActionType = "update_details"
	ActionSwapCities    ActionType = "swap_cities"
	ActionSearch        ActionType = "search"
	ActionSelectDate    ActionType = "select_date"
	ActionOpenFilter    ActionType = "open_filter"
	ActionUpdateFilter  ActionType = "update_filter"
	ActionResetFilter   ActionType = "reset_filter"
	ActionApplyFilter   ActionType = "apply_filter"
	ActionSelectFlight  ActionType = "select_flight"
	ActionToggleSeat    ActionType = "toggle_seat"
	ActionContinue      ActionType = "continue"
	ActionBack          ActionType = "back"
	ActionReset         ActionType = "reset"
)

const (
	ServiceHotel     = "hotel"
	ServiceTransport = "transport"
)

// allowedIn lists the views each action may be sent from.
// back and reset are accepted everywhere.
var allowedIn = map[ActionType][]ViewKind{
	ActionChooseService: {ViewMain},
	ActionUpdateDetails: {ViewHotelDetails, ViewTransportDetails},
	ActionSwapCities:    {ViewHotelDetails, ViewTransportDetails},
	ActionSearch:        {ViewHotelDetails, ViewTransportDetails},
	ActionSelectDate:    {ViewSearchDetails},
	ActionOpenFilter:    {ViewSearchDetails},
	ActionUpdateFilter:  {ViewFilter},
	ActionResetFilter:   {ViewFilter},
	ActionApplyFilter:   {ViewFilter},
	ActionSelectFlight:  {ViewSearchDetails},
	ActionToggleSeat:    {ViewSeatSelection},
	ActionContinue:      {ViewSeatSelection},
}

// actionOrder keeps AllowedActions output stable.
var actionOrder = []ActionType{
	ActionChooseService, ActionUpdateDetails, ActionSwapCities, ActionSearch,
	ActionSelectDate, ActionOpenFilter, ActionUpdateFilter, ActionResetFilter,
	ActionApplyFilter, ActionSelectFlight, ActionToggleSeat, ActionContinue,
}

// State is one booking flow instance. It is a value: Reduce never
// modifies the state it is given.
type State struct {
	View         View
	Service      string
	Details      dto.TripDetails
	SelectedDate string
	Filter       dto.FilterState

	// FilterCandidate and FilterSnapshot are only meaningful in the Filter view
	FilterCandidate dto.FilterState
	FilterSnapshot  dto.FilterState

	// SelectedSeats is only meaningful in the SeatSelection view
	SelectedSeats []string
}

// Action is a user action. Only the payload fields its Type needs are read.
type Action struct {
	Type    ActionType
	Service string
	Details *dto.TripDetails
	Date    string
	Filter  *dto.FilterState
	Flight  *dto.Flight
	Seat    string
	Names   []string
}

type Catalog interface {
	Contains(flight dto.Flight) bool
}

// Machine holds what the booking reducer needs besides the state itself.
type Machine struct {
	catalog Catalog
	layout  SeatLayout
	tickets TicketGenerator
	now     func() time.Time
}

// NewMachine builds a machine over catalog. A nil tickets uses RandomTickets
// and a nil now uses time.Now.
func NewMachine(catalog Catalog, tickets TicketGenerator, now func() time.Time) *Machine {
	if tickets == nil {
		tickets = RandomTickets
	}

	if now == nil {
		now = time.Now
	}

	return &Machine{
		catalog: catalog,
		layout:  DefaultSeatLayout(),
		tickets: tickets,
		now:     now,
	}
}

func (m *Machine) Layout() SeatLayout {
	return m.layout
}

// NewState is the flow as first shown: Main view, default trip details
// departing today and the default filter.
func (m *Machine) NewState() State {
	details := dto.DefaultTripDetails(m.now())

	return State{
		View:         MainView(),
		Details:      details,
		SelectedDate: details.DepartureDate,
		Filter:       dto.DefaultFilterState(),
	}
}

// Reduce returns the state following action. On error the returned state is
// the unchanged input.
func (m *Machine) Reduce(state State, action Action) (State, error) {
	switch action.Type {
	case ActionReset:
		return m.NewState(), nil
	case ActionBack:
		return m.back(state), nil
	}

	views, ok := allowedIn[action.Type]
	if !ok {
		return state, ErrUnknownAction.WithCause(fmt.Errorf("action %q", action.Type))
	}

	if !slices.Contains(views, state.View.Kind) {
		return state, ErrInvalidTransition.WithCause(
			fmt.Errorf("%s in %s", action.Type, state.View.Kind))
	}

	switch action.Type {
	case ActionChooseService:
		return chooseService(state, action.Service)
	case ActionUpdateDetails:
		if action.Details == nil {
			return state, ErrMissingPayload.WithCause(fmt.Errorf("%s needs details", action.Type))
		}
		state.Details = resolveCities(state.Details, *action.Details)
		return state, nil
	case ActionSwapCities:
		state.Details.From, state.Details.To = state.Details.To, state.Details.From
		return state, nil
	case ActionSearch:
		state.View = View{Kind: ViewSearchDetails}
		state.SelectedDate = state.Details.DepartureDate
		return state, nil
	case ActionSelectDate:
		if action.Date == "" {
			return state, ErrMissingPayload.WithCause(fmt.Errorf("%s needs date", action.Type))
		}
		if !inCalendarWeek(state.SelectedDate, action.Date) {
			return state, ErrDateOutsideWeek.WithCause(fmt.Errorf("%s from week of %s", action.Date, state.SelectedDate))
		}
		state.SelectedDate = action.Date
		return state, nil
	case ActionOpenFilter:
		state.View = View{Kind: ViewFilter}
		state.FilterCandidate = state.Filter
		state.FilterSnapshot = state.Filter
		return state, nil
	case ActionUpdateFilter:
		if action.Filter == nil {
			return state, ErrMissingPayload.WithCause(fmt.Errorf("%s needs filter", action.Type))
		}
		state.FilterCandidate = *action.Filter
		return state, nil
	case ActionResetFilter:
		state.FilterCandidate = state.FilterSnapshot
		return state, nil
	case ActionApplyFilter:
		state.Filter = state.FilterCandidate
		return closeFilter(state), nil
	case ActionSelectFlight:
		return m.selectFlight(state, action.Flight)
	case ActionToggleSeat:
		return m.toggleSeat(state, action.Seat)
	case ActionContinue:
		return m.continueToBoarding(state, action.Names), nil
	}

	return state, ErrUnknownAction.WithCause(fmt.Errorf("action %q", action.Type))
}

// AllowedActions lists the actions the current view accepts. continue is
// left out while no seat is selected.
func (m *Machine) AllowedActions(state State) []string {
	actions := make([]string, 0, len(actionOrder)+2)
	for _, action := range actionOrder {
		if !slices.Contains(allowedIn[action], state.View.Kind) {
			continue
		}

		if action == ActionContinue && len(state.SelectedSeats) == 0 {
			continue
		}

		actions = append(actions, string(action))
	}

	if state.View.Kind != ViewMain {
		actions = append(actions, string(ActionBack))
	}

	return append(actions, string(ActionReset))
}

func (m *Machine) back(state State) State {
	switch state.View.Kind {
	case ViewHotelDetails, ViewTransportDetails:
		state.View = MainView()
		state.Service = ""
	case ViewSearchDetails:
		state.View = detailsView(state.Service)
	case ViewFilter:
		state = closeFilter(state)
	case ViewSeatSelection:
		state.View = View{Kind: ViewSearchDetails}
		state.SelectedSeats = nil
	case ViewBoarding:
		state.View = SeatSelectionView(*state.View.Flight)
		state.SelectedSeats = nil
	}

	return state
}

func (m *Machine) selectFlight(state State, flight *dto.Flight) (State, error) {
	if flight == nil {
		return state, ErrMissingPayload.WithCause(fmt.Errorf("%s needs flight", ActionSelectFlight))
	}

	if !m.catalog.Contains(*flight) {
		return state, ErrFlightNotInCatalog.WithCause(fmt.Errorf("flight %s on %s", flight.Number, flight.Date))
	}

	state.View = SeatSelectionView(*flight)
	state.SelectedSeats = nil

	return state, nil
}

func (m *Machine) toggleSeat(state State, seat string) (State, error) {
	if !m.layout.Exists(seat) || m.layout.IsBooked(seat) {
		return state, ErrSeatUnavailable.WithCause(fmt.Errorf("seat %q", seat))
	}

	if slices.Contains(state.SelectedSeats, seat) {
		state.SelectedSeats = lo.Without(state.SelectedSeats, seat)
		return state, nil
	}

	// clone first so the caller's state keeps its own backing array
	state.SelectedSeats = append(slices.Clone(state.SelectedSeats), seat)

	return state, nil
}

// continueToBoarding issues one passenger per selected seat. With no seat
// selected the action is disabled and the state is returned as is.
func (m *Machine) continueToBoarding(state State, names []string) State {
	if len(state.SelectedSeats) == 0 {
		return state
	}

	passengers := make([]dto.Passenger, len(state.SelectedSeats))
	for i, seat := range state.SelectedSeats {
		passengers[i] = dto.Passenger{
			Name:         passengerName(names, i),
			TicketNumber: m.tickets.Next(),
			TicketClass:  dto.ClassEconomy,
			SeatNumber:   seat,
		}
	}

	state.View = BoardingView(*state.View.Flight, passengers)
	state.SelectedSeats = nil

	return state
}

func chooseService(state State, service string) (State, error) {
	if service != ServiceHotel && service != ServiceTransport {
		return state, ErrMissingPayload.WithCause(fmt.Errorf("service %q", service))
	}

	state.Service = service
	state.View = detailsView(service)

	return state, nil
}

func closeFilter(state State) State {
	state.View = View{Kind: ViewSearchDetails}
	state.FilterCandidate = dto.FilterState{}
	state.FilterSnapshot = dto.FilterState{}

	return state
}

func detailsView(service string) View {
	if service == ServiceHotel {
		return View{Kind: ViewHotelDetails}
	}

	return View{Kind: ViewTransportDetails}
}

// resolveCities keeps origin and destination apart. When next picks the same
// city on both sides, the side that did not change moves to the first other city.
func resolveCities(prev, next dto.TripDetails) dto.TripDetails {
	if next.From != next.To {
		return next
	}

	other := func(city string) string {
		for _, c := range dto.Cities {
			if c != city {
				return c
			}
		}
		return city
	}

	if next.From != prev.From {
		next.To = other(next.From)
	} else {
		next.From = other(next.To)
	}

	return next
}

// inCalendarWeek reports whether date is one of the seven days shown
// around selected.
func inCalendarWeek(selected, date string) bool {
	day, err := time.Parse(time.DateOnly, selected)
	if err != nil {
		return false
	}

	return slices.ContainsFunc(utils.CalendarWeek(day), func(d utils.CalendarDate) bool {
		return d.Date == date
	})
}

func passengerName(names []string, i int) string {
	if i < len(names) {
		if name := strings.TrimSpace(names[i]); name != "" {
			return name
		}
	}

	return fmt.Sprintf("Traveller %d", i+1)
}
