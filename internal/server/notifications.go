package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListNotifications(c *gin.Context) {
	viewer := strings.TrimSpace(c.Query("viewer"))
	if viewer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "viewer is required"})
		return
	}

	notifications, unread, err := s.Store.ListNotifications(viewer)
	if err != nil {
		log.Printf("Failed to list notifications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":         len(notifications),
		"unread":        unread,
		"notifications": notifications,
	})
}

type MarkReadRequest struct {
	Viewer string `json:"viewer"`
	ID     int64  `json:"id"`
}

// MarkNotificationsRead marks one notification read, or all of the viewer's
// when no id is given.
func (s *Server) MarkNotificationsRead(c *gin.Context) {
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Viewer) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "viewer is required"})
		return
	}

	if err := s.Store.MarkRead(strings.TrimSpace(req.Viewer), req.ID); err != nil {
		log.Printf("Failed to mark notifications read: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
