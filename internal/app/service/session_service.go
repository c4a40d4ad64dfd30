package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/booking"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/metrics"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/navigation"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/profile"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/session"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/utils"
	"github.com/samber/lo"
)

type SessionStore interface {
	Create(ctx context.Context, initial session.Session) session.Session
	Get(ctx context.Context, id string) (session.Session, error)
	Update(ctx context.Context, id string, fn func(session.Session) (session.Session, error)) (session.Session, error)
}

type FlightSearcher interface {
	Search(ctx context.Context, date string, filter dto.FilterState) ([]dto.Flight, dto.Metadata, error)
}

// SessionService drives the tabs, the booking flow and the profile flow of a session.
// Each call applies at most one action and answers with the resulting snapshot.
type SessionService struct {
	Store    SessionStore
	Machine  *booking.Machine
	Router   *navigation.Router
	Searcher FlightSearcher
}

func NewSessionService(store SessionStore, machine *booking.Machine,
	router *navigation.Router, searcher FlightSearcher) *SessionService {
	return &SessionService{
		Store:    store,
		Machine:  machine,
		Router:   router,
		Searcher: searcher,
	}
}

// CreateSession godoc
// @Summary      Create session
// @Tags         Sessions
// @Description  Start a session on the home tab with a fresh booking and profile flow
// @Success      201  {object}  dto.SessionResponse
// @Router       /api/v1/sessions [post]
func (s *SessionService) CreateSession(ctx context.Context, _ dto.CreateSessionRequest) (dto.SessionResponse, error) {
	sess := s.Store.Create(ctx, session.Session{
		Screen:  s.Router.Start(),
		Booking: s.Machine.NewState(),
		Profile: profile.NewState(),
	})

	slog.InfoContext(ctx, "session created", slog.String("session_id", sess.ID))

	return s.snapshot(ctx, sess)
}

// GetSession godoc
// @Summary      Get session
// @Tags         Sessions
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  dto.SessionResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/v1/sessions/{sessionID} [get]
func (s *SessionService) GetSession(ctx context.Context, req dto.GetSessionRequest) (dto.SessionResponse, error) {
	sess, err := s.Store.Get(ctx, req.SessionID)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	return s.snapshot(ctx, sess)
}

// Navigate godoc
// @Summary      Switch tab
// @Tags         Sessions
// @Description  Switch the active tab by route, or follow a home screen service shortcut
// @Param        sessionID  path      string               true  "Session ID"
// @Param        request    body      dto.NavigateRequest  true  "Route or service"
// @Success      200        {object}  dto.SessionResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/v1/sessions/{sessionID}/navigate [post]
func (s *SessionService) Navigate(ctx context.Context, req dto.NavigateRequest) (dto.SessionResponse, error) {
	sess, err := s.Store.Update(ctx, req.SessionID, func(sess session.Session) (session.Session, error) {
		var (
			screen dto.Screen
			err    error
		)

		if req.Service != "" {
			screen, err = s.Router.SelectService(req.Service)
		} else {
			screen, err = s.Router.Navigate(req.Route)
		}

		if err != nil {
			return sess, err
		}

		sess.Screen = screen

		return sess, nil
	})
	if err != nil {
		return dto.SessionResponse{}, err
	}

	slog.InfoContext(ctx, "screen changed", slog.String("route", sess.Screen.Route))

	return s.snapshot(ctx, sess)
}

// DispatchBooking godoc
// @Summary      Booking action
// @Tags         Sessions
// @Description  Apply one booking flow action and return the next state
// @Param        sessionID  path      string                    true  "Session ID"
// @Param        request    body      dto.BookingActionRequest  true  "Action"
// @Success      200        {object}  dto.SessionResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Failure      409        {object}  dto.ErrorResponse
// @Failure      422        {object}  dto.ErrorResponse
// @Router       /api/v1/sessions/{sessionID}/booking [post]
func (s *SessionService) DispatchBooking(ctx context.Context, req dto.BookingActionRequest) (dto.SessionResponse, error) {
	actionType := booking.ActionType(req.Type)

	sess, err := s.Store.Update(ctx, req.SessionID, func(sess session.Session) (session.Session, error) {
		action := booking.Action{
			Type:    actionType,
			Service: req.Service,
			Details: req.Details,
			Date:    req.Date,
			Filter:  req.Filter,
			Seat:    req.Seat,
			Names:   req.Names,
		}

		// outside search results the reducer rejects the transition itself
		if actionType == booking.ActionSelectFlight && sess.Booking.View.Kind == booking.ViewSearchDetails {
			f, err := s.resolveFlight(ctx, sess.Booking, req.FlightNumber)
			if err != nil {
				return sess, err
			}
			action.Flight = &f
		}

		next, err := s.Machine.Reduce(sess.Booking, action)
		if err != nil {
			return sess, err
		}

		sess.Booking = next

		return sess, nil
	})
	if err != nil {
		metrics.FlowTransitionsFailed.WithLabelValues("booking", req.Type).Inc()
		slog.WarnContext(ctx, "booking action rejected",
			slog.String("action", req.Type), slog.String("error", err.Error()))

		return dto.SessionResponse{}, err
	}

	metrics.FlowTransitions.WithLabelValues("booking", req.Type, string(sess.Booking.View.Kind)).Inc()
	slog.InfoContext(ctx, "booking action applied",
		slog.String("action", req.Type), slog.String("view", string(sess.Booking.View.Kind)))

	return s.snapshot(ctx, sess)
}

// DispatchProfile godoc
// @Summary      Profile action
// @Tags         Sessions
// @Description  Open, edit or leave the personal information form
// @Param        sessionID  path      string                    true  "Session ID"
// @Param        request    body      dto.ProfileActionRequest  true  "Action"
// @Success      200        {object}  dto.SessionResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Failure      409        {object}  dto.ErrorResponse
// @Router       /api/v1/sessions/{sessionID}/profile [post]
func (s *SessionService) DispatchProfile(ctx context.Context, req dto.ProfileActionRequest) (dto.SessionResponse, error) {
	sess, err := s.Store.Update(ctx, req.SessionID, func(sess session.Session) (session.Session, error) {
		next, err := profile.Reduce(sess.Profile, profile.Action{
			Type:    profile.ActionType(req.Type),
			Profile: req.Profile,
		})
		if err != nil {
			return sess, err
		}

		sess.Profile = next

		return sess, nil
	})
	if err != nil {
		metrics.FlowTransitionsFailed.WithLabelValues("profile", req.Type).Inc()
		slog.WarnContext(ctx, "profile action rejected",
			slog.String("action", req.Type), slog.String("error", err.Error()))

		return dto.SessionResponse{}, err
	}

	metrics.FlowTransitions.WithLabelValues("profile", req.Type, string(sess.Profile.View)).Inc()
	slog.InfoContext(ctx, "profile action applied", slog.String("action", req.Type))

	return s.snapshot(ctx, sess)
}

// resolveFlight finds number among the results currently shown for state.
func (s *SessionService) resolveFlight(ctx context.Context, state booking.State, number string) (dto.Flight, error) {
	flights, _, err := s.Searcher.Search(ctx, state.SelectedDate, state.Filter)
	if err != nil {
		return dto.Flight{}, err
	}

	f, ok := lo.Find(flights, func(f dto.Flight) bool {
		return f.Number == number
	})
	if !ok {
		return dto.Flight{}, ErrFlightNotFound.WithCause(fmt.Errorf("flight %s on %s", number, state.SelectedDate))
	}

	return f, nil
}

func (s *SessionService) snapshot(ctx context.Context, sess session.Session) (dto.SessionResponse, error) {
	bookingSnapshot, err := s.bookingSnapshot(ctx, sess.Booking)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	return dto.SessionResponse{
		ID:      sess.ID,
		Screen:  sess.Screen,
		Tabs:    s.Router.Screens(),
		Booking: bookingSnapshot,
		Profile: dto.ProfileSnapshot{
			View:     string(sess.Profile.View),
			FullName: sess.Profile.Profile.FullName(),
			Profile:  sess.Profile.Profile,
			Actions:  profile.AllowedActions(sess.Profile),
		},
		UpdatedAt: sess.UpdatedAt,
	}, nil
}

// bookingSnapshot renders the parts of state the current booking view needs.
func (s *SessionService) bookingSnapshot(ctx context.Context, state booking.State) (dto.BookingSnapshot, error) {
	snapshot := dto.BookingSnapshot{
		View:         state.View.ToDTO(),
		Service:      state.Service,
		Details:      state.Details,
		SelectedDate: state.SelectedDate,
		Filter:       state.Filter,
		Actions:      s.Machine.AllowedActions(state),
	}

	switch state.View.Kind {
	case booking.ViewHotelDetails, booking.ViewTransportDetails:
		snapshot.Cities = dto.Cities
	case booking.ViewSearchDetails, booking.ViewFilter:
		filter := state.Filter
		snapshot.TimeRanges = dto.TimeRangeLabels
		snapshot.SortOptions = dto.SortOptionLabels

		if state.View.Kind == booking.ViewFilter {
			candidate := state.FilterCandidate
			snapshot.FilterCandidate = &candidate
			filter = candidate
		}

		if day, err := time.Parse(time.DateOnly, state.SelectedDate); err == nil {
			snapshot.Calendar = utils.CalendarWeek(day)
		}

		flights, _, err := s.Searcher.Search(ctx, state.SelectedDate, filter)
		if err != nil {
			return dto.BookingSnapshot{}, err
		}

		snapshot.Flights = flights
		snapshot.FlightCount = len(flights)
	case booking.ViewSeatSelection:
		snapshot.Seats = s.Machine.Layout().Seats(state.SelectedSeats)
		snapshot.SelectedSeats = state.SelectedSeats
		snapshot.CanContinue = len(state.SelectedSeats) > 0
	}

	return snapshot, nil
}
