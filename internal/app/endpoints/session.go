package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
)

type SessionService interface {
	CreateSession(ctx context.Context, req dto.CreateSessionRequest) (dto.SessionResponse, error)
	GetSession(ctx context.Context, req dto.GetSessionRequest) (dto.SessionResponse, error)
	Navigate(ctx context.Context, req dto.NavigateRequest) (dto.SessionResponse, error)
	DispatchBooking(ctx context.Context, req dto.BookingActionRequest) (dto.SessionResponse, error)
	DispatchProfile(ctx context.Context, req dto.ProfileActionRequest) (dto.SessionResponse, error)
}

type SessionEndpoint struct {
	CreateSession   endpoint.Endpoint
	GetSession      endpoint.Endpoint
	Navigate        endpoint.Endpoint
	DispatchBooking endpoint.Endpoint
	DispatchProfile endpoint.Endpoint
}

func MakeSessionEndpoint(service SessionService) SessionEndpoint {
	return SessionEndpoint{
		CreateSession:   makeSessionEndpoint(service.CreateSession),
		GetSession:      makeSessionEndpoint(service.GetSession),
		Navigate:        makeSessionEndpoint(service.Navigate),
		DispatchBooking: makeSessionEndpoint(service.DispatchBooking),
		DispatchProfile: makeSessionEndpoint(service.DispatchProfile),
	}
}

// makeSessionEndpoint adapts one session service method; the decoded request must be a *T.
func makeSessionEndpoint[T any](call func(context.Context, T) (dto.SessionResponse, error)) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*T)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		resp, err := call(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("session service: %w", err)
		}

		return resp, nil
	}
}
