package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	sessions := api.Group("/sessions", handler.AuthRequired)
	sessions.Post("", handler.CreateSession)
	sessions.Get("", handler.ListMySessions)
	sessions.Get("/feed", handler.Feed)
	sessions.Get("/:publicID", handler.GetSession)
	sessions.Delete("/by-id/:id", handler.DeleteSession)
	sessions.Post("/:publicID/like", handler.LikeSession)
	sessions.Delete("/:publicID/like", handler.UnlikeSession)
	sessions.Get("/:publicID/comments", handler.ListSessionComments)
	sessions.Post("/:publicID/comments", handler.AddSessionComment)
	sessions.Delete("/:publicID/comments/:commentID", handler.DeleteSessionComment)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("/:name", handler.GetProfile)
	users.Post("/:name/follow", handler.RequestFollow)
	users.Delete("/:name/follow", handler.Unfollow)

	follows := api.Group("/follows", handler.AuthRequired)
	follows.Get("/followers", handler.ListFollowers)
	follows.Get("/following", handler.ListFollowing)
	follows.Get("/requests", handler.ListFollowRequests)
	follows.Post("/requests/:followerID/accept", handler.AcceptFollow)
	follows.Post("/requests/:followerID/decline", handler.DeclineFollow)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/me", handler.MyStats)
	stats.Get("/leaderboard", handler.Leaderboard)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/stats", handler.AdminStats)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Get("", handler.ListNotifications)
	notifications.Post("/:id/read", handler.MarkNotificationRead)
	notifications.Post("/read-all", handler.MarkAllNotificationsRead)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Patch("/profile", handler.UpdateProfileSettings)
	settings.Post("/change-password", handler.ChangePassword)
	settings.Post("/regenerate-recovery-code", handler.RegenerateRecoveryCode)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)
}
