package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arodena/focusfeed/internal/cache"
	"github.com/arodena/focusfeed/internal/services"
)

func (handler *Handler) MyStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	timeRange, err := handler.resolveRequestRange(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}
	granularity, err := requestGranularity(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid granularity")
	}

	key := append(cache.Key{"user", "stats", userCacheSegment(user.ID), string(granularity)}, rangeCacheSegments(timeRange)...)
	if cached, ok := handler.statsCache.Get(key); ok {
		if stats, ok := cached.(services.DashboardStats); ok {
			return c.JSON(fiber.Map{"stats": stats})
		}
	}

	stats, err := handler.statsService.BuildDashboard(user.ID, timeRange, granularity, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build stats")
	}
	handler.statsCache.Set(key, stats)
	return c.JSON(fiber.Map{"stats": stats})
}

func (handler *Handler) Leaderboard(c *fiber.Ctx) error {
	timeRange, err := handler.resolveRequestRange(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	limit := c.QueryInt("limit")
	if limit <= 0 {
		limit = services.DefaultLeaderboardSize
	}

	key := append(cache.Key{"leaderboard", strconv.Itoa(limit)}, rangeCacheSegments(timeRange)...)
	if cached, ok := handler.statsCache.Get(key); ok {
		if entries, ok := cached.([]services.LeaderboardEntry); ok {
			return c.JSON(fiber.Map{"leaderboard": entries})
		}
	}

	entries, err := handler.leaderboardService.Build(timeRange.Start, timeRange.End, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build leaderboard")
	}
	handler.statsCache.Set(key, entries)
	return c.JSON(fiber.Map{"leaderboard": entries})
}

func (handler *Handler) AdminStats(c *fiber.Ctx) error {
	timeRange, err := handler.resolveRequestRange(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}
	granularity, err := requestGranularity(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid granularity")
	}

	key := append(cache.Key{"admin", "stats", string(granularity)}, rangeCacheSegments(timeRange)...)
	if cached, ok := handler.statsCache.Get(key); ok {
		if stats, ok := cached.(services.SiteStats); ok {
			return c.JSON(fiber.Map{"stats": stats})
		}
	}

	stats, err := handler.adminStatsService.BuildSiteStats(timeRange, granularity, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build site stats")
	}
	handler.statsCache.Set(key, stats)
	return c.JSON(fiber.Map{"stats": stats})
}
