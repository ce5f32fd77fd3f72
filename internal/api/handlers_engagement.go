package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/arodena/focusfeed/internal/models"
	"github.com/arodena/focusfeed/internal/services"
)

// loadVisibleSession resolves a session by public ID and enforces the
// owner's visibility policy for the viewer. Engagement always goes through
// this gate so nobody likes or comments on sessions they cannot see.
func (handler *Handler) loadVisibleSession(c *fiber.Ctx) (*models.FocusSession, bool) {
	viewer, ok := currentUser(c)
	if !ok {
		return nil, false
	}

	session, err := handler.sessionService.FindByPublicID(c.Params("publicID"))
	if err != nil {
		return nil, false
	}
	owner, err := handler.authService.FindByID(session.UserID)
	if err != nil {
		return nil, false
	}
	allowed, err := handler.canViewerSeeSessions(viewer, &owner)
	if err != nil || !allowed {
		return nil, false
	}
	return &session, true
}

func (handler *Handler) LikeSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	session, ok := handler.loadVisibleSession(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "session not found")
	}

	created, err := handler.engagementService.Like(user.ID, session.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to like session")
	}
	if created {
		if err := handler.notificationService.NotifyLike(session.UserID, user.ID, session.ID); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to like session")
		}
	}

	count, err := handler.engagementService.LikeCount(session.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to like session")
	}
	return c.JSON(fiber.Map{"liked": true, "like_count": count})
}

func (handler *Handler) UnlikeSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	session, ok := handler.loadVisibleSession(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "session not found")
	}

	if _, err := handler.engagementService.Unlike(user.ID, session.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to unlike session")
	}

	count, err := handler.engagementService.LikeCount(session.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to unlike session")
	}
	return c.JSON(fiber.Map{"liked": false, "like_count": count})
}

func (handler *Handler) ListSessionComments(c *fiber.Ctx) error {
	session, ok := handler.loadVisibleSession(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "session not found")
	}

	comments, err := handler.engagementService.ListComments(session.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load comments")
	}
	return c.JSON(fiber.Map{"comments": presentCommentList(comments)})
}

func (handler *Handler) AddSessionComment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	session, ok := handler.loadVisibleSession(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "session not found")
	}

	input := commentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	comment, err := handler.engagementService.AddComment(user.ID, session.ID, input.Body)
	if err != nil {
		if errors.Is(err, services.ErrCommentBodyInvalid) {
			return apiError(c, fiber.StatusBadRequest, "invalid comment")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to add comment")
	}

	if err := handler.notificationService.NotifyComment(session.UserID, user.ID, session.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to add comment")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": presentComment(&comment)})
}

func (handler *Handler) DeleteSessionComment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	session, ok := handler.loadVisibleSession(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "session not found")
	}

	commentID, err := parseIDParam(c, "commentID")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid comment id")
	}
	if err := handler.engagementService.DeleteComment(user, commentID, session.UserID); err != nil {
		switch {
		case errors.Is(err, services.ErrCommentNotFound):
			return apiError(c, fiber.StatusNotFound, "comment not found")
		case errors.Is(err, services.ErrEngagementDenied):
			return apiError(c, fiber.StatusForbidden, "cannot delete this comment")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to delete comment")
		}
	}

	return apiOK(c)
}
