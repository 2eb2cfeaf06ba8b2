package services

import (
	"context"
	"net/http"

	"ecommerce-backend/models"
	"ecommerce-backend/repository"

	"go.uber.org/zap"
)

// NotificationService lists the append-only notification feed.
type NotificationService struct {
	notifications repository.NotificationRepository
	logger        *zap.Logger
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(notifications repository.NotificationRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, logger: logger}
}

// List returns notifications newest first.
func (s *NotificationService) List(ctx context.Context, page, limit int) ([]models.Notification, models.Pagination, *ServiceError) {
	notifications, total, err := s.notifications.List(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to list notifications", zap.Error(err))
		return nil, models.Pagination{}, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return notifications, models.NewPagination(total, page, limit), nil
}
