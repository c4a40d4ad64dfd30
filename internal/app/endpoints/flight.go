package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
)

type FlightService interface {
	ListFlights(ctx context.Context, req dto.ListFlightsRequest) (dto.ListFlightsResponse, error)
	SearchFlights(ctx context.Context, req dto.SearchFlightRequest) (dto.SearchFlightResponse, error)
}

type FlightEndpoint struct {
	ListFlights   endpoint.Endpoint
	SearchFlights endpoint.Endpoint
}

func MakeFlightEndpoint(service FlightService) FlightEndpoint {
	return FlightEndpoint{
		ListFlights:   makeListFlightsEndpoint(service),
		SearchFlights: makeSearchFlightsEndpoint(service),
	}
}

func makeListFlightsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ListFlightsRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		flights, err := service.ListFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return flights, nil
	}
}

func makeSearchFlightsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchFlightRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		flights, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return flights, nil
	}
}
