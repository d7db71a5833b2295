package server

import (
	"waveline/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/notifications
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	page := parsePagination(c)
	notifications, unread, err := s.notificationService.List(c.Context(), currentUserID(c), page.Page, page.Limit)
	if err != nil {
		return models.RespondError(c, err)
	}
	return respond(c, fiber.StatusOK, fiber.Map{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkNotificationRead handles PUT /api/notifications/:id/read
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.notificationService.MarkRead(c.Context(), currentUserID(c), id); err != nil {
		return models.RespondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Notification marked as read")
}

// MarkAllNotificationsRead handles PUT /api/notifications/read
func (s *Server) MarkAllNotificationsRead(c *fiber.Ctx) error {
	if err := s.notificationService.MarkAllRead(c.Context(), currentUserID(c)); err != nil {
		return models.RespondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "All notifications marked as read")
}
