package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tharanikumar/medvault/domain"
)

// NotificationHandlers handles notification HTTP requests
type NotificationHandlers struct {
	notificationSvc domain.NotificationService
}

// NewNotificationHandlers creates new notification handlers
func NewNotificationHandlers(notificationSvc domain.NotificationService) *NotificationHandlers {
	return &NotificationHandlers{notificationSvc: notificationSvc}
}

// List returns the authenticated account's notifications
func (h *NotificationHandlers) List(c *gin.Context) {
	accountID, _ := c.Get("account_id")
	unreadOnly := c.Query("unread") == "true"

	ns, err := h.notificationSvc.List(c.Request.Context(), accountID.(uint), unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
		return
	}

	out := make([]gin.H, 0, len(ns))
	for _, n := range ns {
		out = append(out, gin.H{
			"id":         n.ID,
			"title":      n.Title,
			"body":       n.Body,
			"category":   n.Category,
			"read":       n.Read,
			"created_at": n.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// MarkRead flags one of the account's notifications as read
func (h *NotificationHandlers) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}

	accountID, _ := c.Get("account_id")

	if err := h.notificationSvc.MarkRead(c.Request.Context(), accountID.(uint), uint(id)); err != nil {
		if err == domain.ErrNotificationNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Notification marked read"}})
}
