package navigation

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

const (
	RouteHome          = "home"
	RouteBookings      = "bookings"
	RouteNotifications = "notifications"
	RouteProfile       = "profile"
)

// home screen service shortcuts
const (
	ServiceTrips     = "trips"
	ServiceHotel     = "hotel"
	ServiceTransport = "transport"
	ServiceEvents    = "events"
)

var ErrUnknownRoute = exception.New(http.StatusNotFound, "unknown route")

// Router maps the bottom navigation routes to their screens.
type Router struct {
	screens []dto.Screen
}

func NewRouter() *Router {
	return &Router{
		screens: []dto.Screen{
			{Route: RouteHome, Label: "Home"},
			{Route: RouteBookings, Label: "Bookings"},
			{Route: RouteNotifications, Label: "Notifications"},
			{Route: RouteProfile, Label: "Profile"},
		},
	}
}

// Start is the screen shown when a session begins.
func (r *Router) Start() dto.Screen {
	return r.screens[0]
}

func (r *Router) Screens() []dto.Screen {
	return slices.Clone(r.screens)
}

func (r *Router) Navigate(route string) (dto.Screen, error) {
	idx := slices.IndexFunc(r.screens, func(s dto.Screen) bool {
		return s.Route == route
	})
	if idx < 0 {
		return dto.Screen{}, ErrUnknownRoute.WithCause(fmt.Errorf("route %q", route))
	}

	return r.screens[idx], nil
}

// SelectService follows a home screen shortcut. Only transport leaves the
// home tab, for the bookings tab.
func (r *Router) SelectService(service string) (dto.Screen, error) {
	switch service {
	case ServiceTransport:
		return r.Navigate(RouteBookings)
	case ServiceTrips, ServiceHotel, ServiceEvents:
		return r.Navigate(RouteHome)
	default:
		return dto.Screen{}, ErrUnknownRoute.WithCause(fmt.Errorf("service %q", service))
	}
}
