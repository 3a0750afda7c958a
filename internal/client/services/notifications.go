package services

import (
	"context"

	"github.com/karimfs/skybook/internal/client/models"
)

type NotificationRequest struct {
	UserID        string `json:"userId,omitempty"`
	ReservationID string `json:"reservationId,omitempty"`
	Type          string `json:"type,omitempty"`
	Message       string `json:"message,omitempty"`
}

type NotificationsService struct {
	backend Backend
}

func NewNotificationsService(backend Backend) *NotificationsService {
	return &NotificationsService{backend: backend}
}

func (s *NotificationsService) ByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.backend.Get(ctx, "/notifications/user/"+userID, nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *NotificationsService) ByReservation(ctx context.Context, reservationID string) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.backend.Get(ctx, "/notifications/reservation/"+reservationID, nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *NotificationsService) List(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.backend.Get(ctx, "/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *NotificationsService) Create(ctx context.Context, req NotificationRequest) (*models.Notification, error) {
	var notification models.Notification
	if err := s.backend.Post(ctx, "/notifications", req, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}
