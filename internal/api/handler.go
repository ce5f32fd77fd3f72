package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/arodena/focusfeed/internal/cache"
	"github.com/arodena/focusfeed/internal/db"
	"github.com/arodena/focusfeed/internal/models"
	"github.com/arodena/focusfeed/internal/services"
	"github.com/arodena/focusfeed/internal/timeframe"
)

const (
	authCookieName = "focusfeed_auth"
	contextUserKey = "current_user"

	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour

	statsCacheTTL = 5 * time.Minute
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool
	clock        timeframe.Clock
	calculator   *timeframe.Calculator
	statsCache   *cache.Store
	cacheRules   cache.Rules
	loginLimiter *attemptLimiter

	repositories        *db.Repositories
	authService         *services.AuthService
	sessionService      *services.SessionService
	followService       *services.FollowService
	engagementService   *services.EngagementService
	statsService        *services.StatsService
	leaderboardService  *services.LeaderboardService
	adminStatsService   *services.AdminStatsService
	exportService       *services.ExportService
	notificationService *services.NotificationService
}

func NewHandler(database *gorm.DB, secretKey string, cookieSecure bool, clock timeframe.Clock) *Handler {
	if clock == nil {
		clock = timeframe.SystemClock{}
	}
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
		clock:        clock,
		calculator:   timeframe.NewCalculator(clock),
		statsCache:   cache.NewStore(statsCacheTTL, clock),
		cacheRules:   cache.DefaultRules(),
		loginLimiter: newAttemptLimiter(5, 15*time.Minute),
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.sessionService = services.NewSessionService(handler.repositories.Sessions)
	handler.followService = services.NewFollowService(handler.repositories.Follows)
	handler.engagementService = services.NewEngagementService(handler.repositories.Likes, handler.repositories.Comments)
	handler.statsService = services.NewStatsService(handler.repositories.Sessions)
	handler.leaderboardService = services.NewLeaderboardService(handler.repositories.Sessions)
	handler.adminStatsService = services.NewAdminStatsService(handler.repositories.Users, handler.repositories.Sessions)
	handler.exportService = services.NewExportService(handler.repositories.Sessions)
	handler.notificationService = services.NewNotificationService(handler.repositories.Notifications)
	return handler
}

func (handler *Handler) now() time.Time {
	return handler.clock.Now().In(timeframe.ReferenceZone)
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type passwordResetClaims struct {
	UserID  uint   `json:"uid"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}
