package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arodena/focusfeed/internal/models"
)

const defaultNotificationPageSize = 50

func (handler *Handler) ListNotifications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := c.QueryInt("limit")
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	notifications, err := handler.repositories.Notifications.ListByUser(user.ID, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notifications")
	}
	unread, err := handler.repositories.Notifications.CountUnread(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notifications")
	}

	return c.JSON(fiber.Map{
		"notifications": presentNotificationList(notifications),
		"unread_count":  unread,
	})
}

func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid notification id")
	}
	marked, err := handler.repositories.Notifications.MarkRead(notificationID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update notification")
	}
	if !marked {
		return apiError(c, fiber.StatusNotFound, "notification not found")
	}
	return apiOK(c)
}

func (handler *Handler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if err := handler.repositories.Notifications.MarkAllRead(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update notifications")
	}
	return apiOK(c)
}

func presentNotificationList(notifications []models.Notification) []fiber.Map {
	result := make([]fiber.Map, 0, len(notifications))
	for index := range notifications {
		result = append(result, presentNotification(&notifications[index]))
	}
	return result
}
