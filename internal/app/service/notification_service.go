package service

import (
	"context"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
)

// NotificationService serves the notifications tab. Nothing produces
// notifications yet, so the list is always empty.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// ListNotifications godoc
// @Summary      List notifications
// @Tags         Notifications
// @Success      200  {object}  dto.NotificationResponse
// @Router       /api/v1/notifications [get]
func (s *NotificationService) ListNotifications(_ context.Context, _ dto.ListNotificationsRequest) (dto.NotificationResponse, error) {
	return dto.NotificationResponse{
		Message:       "No new notifications",
		Notifications: []dto.Notification{},
	}, nil
}
