package profile

import (
	"errors"
	"testing"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate(t *testing.T) {
	state := State{View: ViewPersonalInfo, Profile: dto.DefaultUserProfile()}

	got := Update(state, dto.UserProfile{FirstName: "Ann", Email: ""})

	assert.Equal(t, ViewMain, got.View)
	assert.Equal(t, dto.UserProfile{FirstName: "Ann"}, got.Profile)
	assert.Equal(t, dto.DefaultUserProfile(), state.Profile, "input state must not change")
}

func TestReduce_Closure(t *testing.T) {
	edited := dto.UserProfile{FirstName: "Taras", LastName: "Shevchenko", Phone: "", Email: "t@example.com"}

	reduceRequest := func(state State, action Action, want State, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := Reduce(state, action)
			if wantErr != nil {
				if !errors.Is(err, wantErr) {
					t.Fatalf("expected %v, got %v", wantErr, err)
				}
				assert.Equal(t, state, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	mainState := NewState()
	info := State{View: ViewPersonalInfo, Profile: dto.DefaultUserProfile()}

	t.Run("open_personal_info", reduceRequest(mainState, Action{Type: ActionOpenPersonalInfo}, info, nil))
	t.Run("update_returns_to_main", reduceRequest(info, Action{Type: ActionUpdate, Profile: &edited},
		State{View: ViewMain, Profile: edited}, nil))
	t.Run("back_discards_nothing", reduceRequest(info, Action{Type: ActionBack}, mainState, nil))
	t.Run("back_in_main_is_noop", reduceRequest(mainState, Action{Type: ActionBack}, mainState, nil))
	t.Run("update_from_main", reduceRequest(mainState, Action{Type: ActionUpdate, Profile: &edited}, State{}, ErrInvalidTransition))
	t.Run("open_twice", reduceRequest(info, Action{Type: ActionOpenPersonalInfo}, State{}, ErrInvalidTransition))
	t.Run("update_without_profile", reduceRequest(info, Action{Type: ActionUpdate}, State{}, ErrMissingPayload))
	t.Run("unknown", reduceRequest(mainState, Action{Type: "logout"}, State{}, ErrUnknownAction))
}

func TestAllowedActions(t *testing.T) {
	assert.Equal(t, []string{"open_personal_info"}, AllowedActions(NewState()))
	assert.Equal(t, []string{"update", "back"}, AllowedActions(State{View: ViewPersonalInfo}))
}
