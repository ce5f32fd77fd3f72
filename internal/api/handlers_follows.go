package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arodena/focusfeed/internal/models"
	"github.com/arodena/focusfeed/internal/services"
)

func (handler *Handler) RequestFollow(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	followee, err := handler.authService.FindByDisplayName(c.Params("name"))
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}

	follow, err := handler.followService.Request(user, &followee)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfFollow):
			return apiError(c, fiber.StatusBadRequest, "cannot follow yourself")
		case errors.Is(err, services.ErrAlreadyFollowing):
			return apiError(c, fiber.StatusConflict, "already following")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to follow")
		}
	}

	if follow.Status == models.FollowStatusPending {
		if err := handler.notificationService.NotifyFollowRequest(followee.ID, user.ID); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to follow")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"follow": presentFollow(&follow)})
}

func (handler *Handler) AcceptFollow(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	followerID, err := parseIDParam(c, "followerID")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid follower id")
	}

	follow, err := handler.followService.Accept(user, followerID)
	if err != nil {
		return respondFollowError(c, err)
	}

	if err := handler.notificationService.NotifyFollowAccepted(followerID, user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to accept follow")
	}
	return c.JSON(fiber.Map{"follow": presentFollow(&follow)})
}

func (handler *Handler) DeclineFollow(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	followerID, err := parseIDParam(c, "followerID")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid follower id")
	}
	if err := handler.followService.Decline(user, followerID); err != nil {
		return respondFollowError(c, err)
	}
	return apiOK(c)
}

func (handler *Handler) Unfollow(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	followee, err := handler.authService.FindByDisplayName(c.Params("name"))
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}
	if err := handler.followService.Unfollow(user, followee.ID); err != nil {
		return respondFollowError(c, err)
	}

	return apiOK(c)
}

func (handler *Handler) ListFollowers(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	follows, err := handler.repositories.Follows.ListFollowers(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load followers")
	}
	return c.JSON(fiber.Map{"follows": presentFollowList(follows)})
}

func (handler *Handler) ListFollowing(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	follows, err := handler.repositories.Follows.ListFollowing(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load following")
	}
	return c.JSON(fiber.Map{"follows": presentFollowList(follows)})
}

func (handler *Handler) ListFollowRequests(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	follows, err := handler.repositories.Follows.ListPendingRequests(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load follow requests")
	}
	return c.JSON(fiber.Map{"follows": presentFollowList(follows)})
}

func respondFollowError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrFollowNotFound):
		return apiError(c, fiber.StatusNotFound, "follow not found")
	case errors.Is(err, services.ErrFollowNotPending):
		return apiError(c, fiber.StatusConflict, "follow request not pending")
	case errors.Is(err, services.ErrFollowNotAddressee):
		return apiError(c, fiber.StatusForbidden, "not your follow request")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to update follow")
	}
}

func presentFollowList(follows []models.Follow) []fiber.Map {
	result := make([]fiber.Map, 0, len(follows))
	for index := range follows {
		result = append(result, presentFollow(&follows[index]))
	}
	return result
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
