package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arodena/focusfeed/internal/models"
	"github.com/arodena/focusfeed/internal/timeframe"
)

func presentUser(user *models.User) fiber.Map {
	return fiber.Map{
		"id":                      user.ID,
		"email":                   user.Email,
		"display_name":            user.DisplayName,
		"role":                    user.Role,
		"require_follow_approval": user.RequireFollowApproval,
		"created_at":              user.CreatedAt.In(timeframe.ReferenceZone).Format(time.RFC3339),
	}
}

func presentProfile(user *models.User) fiber.Map {
	return fiber.Map{
		"id":                      user.ID,
		"display_name":            user.DisplayName,
		"require_follow_approval": user.RequireFollowApproval,
	}
}

func presentSession(session *models.FocusSession) fiber.Map {
	return fiber.Map{
		"public_id":        session.PublicID,
		"user_id":          session.UserID,
		"started_at":       session.StartedAt.In(timeframe.ReferenceZone).Format(time.RFC3339),
		"date":             timeframe.FormatDateKey(session.StartedAt),
		"duration_minutes": session.DurationMinutes,
		"task":             session.Task,
		"notes":            session.Notes,
	}
}

func presentSessions(sessions []models.FocusSession) []fiber.Map {
	result := make([]fiber.Map, 0, len(sessions))
	for index := range sessions {
		result = append(result, presentSession(&sessions[index]))
	}
	return result
}

func presentComment(comment *models.Comment) fiber.Map {
	return fiber.Map{
		"id":         comment.ID,
		"session_id": comment.SessionID,
		"user_id":    comment.UserID,
		"body":       comment.Body,
		"created_at": comment.CreatedAt.In(timeframe.ReferenceZone).Format(time.RFC3339),
	}
}

func presentFollow(follow *models.Follow) fiber.Map {
	return fiber.Map{
		"follower_id": follow.FollowerID,
		"followee_id": follow.FolloweeID,
		"status":      follow.Status,
	}
}

func presentNotification(notification *models.Notification) fiber.Map {
	payload := fiber.Map{
		"id":         notification.ID,
		"actor_id":   notification.ActorID,
		"kind":       notification.Kind,
		"read":       notification.Read,
		"created_at": notification.CreatedAt.In(timeframe.ReferenceZone).Format(time.RFC3339),
	}
	if notification.SessionID != nil {
		payload["session_id"] = *notification.SessionID
	}
	return payload
}
