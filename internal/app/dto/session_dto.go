package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

// Screen is a bottom navigation tab.
type Screen struct {
	Route string `json:"route"`
	Label string `json:"label"`
}

type CreateSessionRequest struct{}

func (c *CreateSessionRequest) Bind(_ *http.Request) error {
	return nil
}

type GetSessionRequest struct {
	SessionID string `json:"-" validate:"required,uuid"`
}

func (g *GetSessionRequest) Bind(r *http.Request) error {
	if id := sessionIDFromRequest(r); id != "" {
		g.SessionID = id
	}

	if err := ValidateSingleError(g); err != nil {
		return fmt.Errorf("error validate request: %w", exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		})
	}

	return nil
}

// NavigateRequest switches tab either by route or through a home screen service shortcut.
type NavigateRequest struct {
	SessionID string `json:"-" validate:"required,uuid"`
	Route     string `json:"route,omitempty"`
	Service   string `json:"service,omitempty" validate:"omitempty,oneof=trips hotel transport events"`
}

func (n *NavigateRequest) Bind(r *http.Request) error {
	if id := sessionIDFromRequest(r); id != "" {
		n.SessionID = id
	}

	if err := n.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (n *NavigateRequest) Validate() error {
	if err := ValidateSingleError(n); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if (n.Route == "") == (n.Service == "") {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "exactly one of route or service is required",
		}
	}

	return nil
}

type SessionResponse struct {
	ID        string          `json:"id"`
	Screen    Screen          `json:"screen"`
	Tabs      []Screen        `json:"tabs"`
	Booking   BookingSnapshot `json:"booking"`
	Profile   ProfileSnapshot `json:"profile"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type ListNotificationsRequest struct{}

func (l *ListNotificationsRequest) Bind(_ *http.Request) error {
	return nil
}

type Notification struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationResponse struct {
	Message       string         `json:"message"`
	Notifications []Notification `json:"notifications"`
}
