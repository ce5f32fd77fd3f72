package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arodena/focusfeed/internal/cache"
	"github.com/arodena/focusfeed/internal/services"
)

// GetProfile shows another user's public card. Recent sessions are only
// included when the viewer passes the owner's visibility policy.
func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	viewer, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	owner, err := handler.authService.FindByDisplayName(c.Params("name"))
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}

	payload := presentProfile(&owner)
	allowed, err := handler.canViewerSeeSessions(viewer, &owner)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	payload["sessions_visible"] = allowed

	if allowed {
		sessions, err := handler.sessionService.ListRecent(owner.ID, c.QueryInt("limit"))
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
		}
		payload["recent_sessions"] = presentSessions(sessions)
	}
	return c.JSON(fiber.Map{"profile": payload})
}

func (handler *Handler) UpdateProfileSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileSettingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if input.DisplayName != nil {
		name, err := services.ValidateDisplayName(*input.DisplayName)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid display name")
		}
		if name != user.DisplayName {
			taken, err := handler.authService.DisplayNameExists(name)
			if err != nil {
				return apiError(c, fiber.StatusInternalServerError, "failed to update settings")
			}
			if taken {
				return apiError(c, fiber.StatusConflict, "display name already exists")
			}
			user.DisplayName = name
		}
	}
	if input.RequireFollowApproval != nil {
		user.RequireFollowApproval = *input.RequireFollowApproval
	}

	if err := handler.authService.SaveUser(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update settings")
	}
	handler.invalidateFor(cache.MutationUserWrite, user.ID)
	return c.JSON(fiber.Map{"user": presentUser(user)})
}
