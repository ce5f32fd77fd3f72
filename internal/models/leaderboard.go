package models

// LeaderboardRow is one aggregated ranking row produced by the session
// store; not a persisted table.
type LeaderboardRow struct {
	UserID       uint   `gorm:"column:user_id"`
	DisplayName  string `gorm:"column:display_name"`
	TotalMinutes int    `gorm:"column:total_minutes"`
	SessionCount int    `gorm:"column:session_count"`
}
