package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arodena/focusfeed/internal/cache"
	"github.com/arodena/focusfeed/internal/models"
	"github.com/arodena/focusfeed/internal/services"
)

func (handler *Handler) CreateSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := sessionLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	startedAt, err := time.Parse(time.RFC3339, input.StartedAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid started_at")
	}

	session, err := handler.sessionService.Log(user, services.SessionInput{
		StartedAt:       startedAt,
		DurationMinutes: input.DurationMinutes,
		Task:            input.Task,
		Notes:           input.Notes,
	}, handler.now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionDurationInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid duration")
		case errors.Is(err, services.ErrSessionTaskInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid task")
		case errors.Is(err, services.ErrSessionNotesTooLong):
			return apiError(c, fiber.StatusBadRequest, "notes too long")
		case errors.Is(err, services.ErrSessionInFuture):
			return apiError(c, fiber.StatusBadRequest, "session starts in the future")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save session")
		}
	}

	handler.invalidateFor(cache.MutationSessionWrite, user.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session": presentSession(&session)})
}

func (handler *Handler) ListMySessions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	timeRange, err := handler.resolveRequestRange(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	sessions, err := handler.sessionService.ListForUser(user.ID, timeRange.Start, timeRange.End)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load sessions")
	}
	return c.JSON(fiber.Map{"sessions": presentSessions(sessions)})
}

func (handler *Handler) GetSession(c *fiber.Ctx) error {
	viewer, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	session, err := handler.sessionService.FindByPublicID(c.Params("publicID"))
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "session not found")
	}

	owner, err := handler.authService.FindByID(session.UserID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "session not found")
	}
	allowed, err := handler.canViewerSeeSessions(viewer, &owner)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load session")
	}
	if !allowed {
		// Hidden sessions and missing sessions look the same.
		return apiError(c, fiber.StatusNotFound, "session not found")
	}

	likeCount, err := handler.engagementService.LikeCount(session.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load session")
	}
	comments, err := handler.engagementService.ListComments(session.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load session")
	}

	payload := presentSession(&session)
	payload["author"] = presentProfile(&owner)
	payload["like_count"] = likeCount
	payload["comments"] = presentCommentList(comments)
	return c.JSON(fiber.Map{"session": payload})
}

func (handler *Handler) DeleteSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	sessionID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid session id")
	}
	if err := handler.sessionService.Delete(user, uint(sessionID)); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return apiError(c, fiber.StatusNotFound, "session not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete session")
	}

	handler.invalidateFor(cache.MutationSessionWrite, user.ID)
	return apiOK(c)
}

// Feed returns recent sessions from the viewer and everyone they follow.
func (handler *Handler) Feed(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	authorIDs, err := handler.followService.FeedAuthorIDs(user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load feed")
	}
	sessions, err := handler.sessionService.Feed(authorIDs, c.QueryInt("limit"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load feed")
	}
	return c.JSON(fiber.Map{"sessions": presentSessions(sessions)})
}

func (handler *Handler) canViewerSeeSessions(viewer *models.User, owner *models.User) (bool, error) {
	acceptedFollower := false
	if viewer.ID != owner.ID && owner.RequireFollowApproval {
		accepted, err := handler.followService.IsAcceptedFollower(viewer.ID, owner.ID)
		if err != nil {
			return false, err
		}
		acceptedFollower = accepted
	}
	return services.CanViewSessions(viewer, owner, acceptedFollower), nil
}

func presentCommentList(comments []models.Comment) []fiber.Map {
	result := make([]fiber.Map, 0, len(comments))
	for index := range comments {
		result = append(result, presentComment(&comments[index]))
	}
	return result
}
