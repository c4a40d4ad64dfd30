package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
)

type NotificationService interface {
	ListNotifications(ctx context.Context, req dto.ListNotificationsRequest) (dto.NotificationResponse, error)
}

type NotificationEndpoint struct {
	ListNotifications endpoint.Endpoint
}

func MakeNotificationEndpoint(service NotificationService) NotificationEndpoint {
	return NotificationEndpoint{
		ListNotifications: func(ctx context.Context, req interface{}) (interface{}, error) {
			request, ok := req.(*dto.ListNotificationsRequest)
			if !ok || request == nil {
				return nil, errors.New("invalid type")
			}

			resp, err := service.ListNotifications(ctx, *request)
			if err != nil {
				return nil, fmt.Errorf("notification service: %w", err)
			}

			return resp, nil
		},
	}
}
