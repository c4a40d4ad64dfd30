package dto

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

// UserProfile fields are free text; empty values are accepted.
type UserProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

func DefaultUserProfile() UserProfile {
	return UserProfile{
		FirstName: "Victoria",
		LastName:  "Yoker",
		Phone:     "+380 12 345 67 89",
		Email:     "victoria.yoker@gmail.com",
	}
}

// FullName is the name shown in the account header.
func (u UserProfile) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type ProfileSnapshot struct {
	View     string      `json:"view"`
	FullName string      `json:"full_name"`
	Profile  UserProfile `json:"profile"`
	Actions  []string    `json:"actions"`
}

type ProfileActionRequest struct {
	SessionID string       `json:"-" validate:"required,uuid"`
	Type      string       `json:"type" validate:"required,oneof=open_personal_info update back"`
	Profile   *UserProfile `json:"profile,omitempty"`
}

func (p *ProfileActionRequest) Bind(r *http.Request) error {
	if id := sessionIDFromRequest(r); id != "" {
		p.SessionID = id
	}

	if err := p.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (p *ProfileActionRequest) Validate() error {
	if err := ValidateSingleError(p); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if p.Type == "update" && p.Profile == nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "profile is required for action update",
		}
	}

	return nil
}
