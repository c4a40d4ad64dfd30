package profile

import (
	"fmt"
	"net/http"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

type View string

const (
	ViewMain         View = "main"
	ViewPersonalInfo View = "personal_info"
)

type ActionType string

const (
	ActionOpenPersonalInfo ActionType = "open_personal_info"
	ActionUpdate           ActionType = "update"
	ActionBack             ActionType = "back"
)

var (
	ErrInvalidTransition = exception.New(http.StatusConflict, "action not allowed in current profile view")

	ErrUnknownAction = exception.New(http.StatusBadRequest, "unknown profile action")

	ErrMissingPayload = exception.New(http.StatusBadRequest, "profile action payload is missing")
)

// State is the profile tab: which screen is shown and the profile it edits.
type State struct {
	View    View
	Profile dto.UserProfile
}

type Action struct {
	Type    ActionType
	Profile *dto.UserProfile
}

func NewState() State {
	return State{
		View:    ViewMain,
		Profile: dto.DefaultUserProfile(),
	}
}

// Update replaces the held profile wholesale and returns to the main view.
// Fields are not validated; empty strings are kept as is.
func Update(state State, profile dto.UserProfile) State {
	state.Profile = profile
	state.View = ViewMain

	return state
}

func Reduce(state State, action Action) (State, error) {
	switch action.Type {
	case ActionOpenPersonalInfo:
		if state.View != ViewMain {
			return state, ErrInvalidTransition.WithCause(fmt.Errorf("%s in %s", action.Type, state.View))
		}
		state.View = ViewPersonalInfo
		return state, nil
	case ActionUpdate:
		if state.View != ViewPersonalInfo {
			return state, ErrInvalidTransition.WithCause(fmt.Errorf("%s in %s", action.Type, state.View))
		}
		if action.Profile == nil {
			return state, ErrMissingPayload
		}
		return Update(state, *action.Profile), nil
	case ActionBack:
		// back in main is a no-op
		state.View = ViewMain
		return state, nil
	default:
		return state, ErrUnknownAction.WithCause(fmt.Errorf("action %q", action.Type))
	}
}

func AllowedActions(state State) []string {
	if state.View == ViewPersonalInfo {
		return []string{string(ActionUpdate), string(ActionBack)}
	}

	return []string{string(ActionOpenPersonalInfo)}
}
