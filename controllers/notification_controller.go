package controllers

import (
	"net/http"

	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
)

// NotificationController exposes the super-admin notification feed.
type NotificationController struct {
	notifications *services.NotificationService
}

// NewNotificationController creates a NotificationController.
func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// List handles GET /product/notifications.
func (nc *NotificationController) List(c *gin.Context) {
	page, limit := pageParams(c)
	notifications, pagination, svcErr := nc.notifications.List(c.Request.Context(), page, limit)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"notifications": notifications,
		"pagination":    pagination,
	})
}
