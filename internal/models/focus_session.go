package models

import "time"

const (
	MinSessionMinutes = 1
	MaxSessionMinutes = 480
	MaxTaskLength     = 120
	MaxNotesLength    = 1000
)

// FocusSession is one logged pomodoro. StartedAt is stored as an absolute
// instant; all bucketing happens in the reference zone at read time.
type FocusSession struct {
	ID              uint      `gorm:"primaryKey"`
	PublicID        string    `gorm:"uniqueIndex;not null"`
	UserID          uint      `gorm:"not null;index:idx_sessions_user_started"`
	StartedAt       time.Time `gorm:"not null;index:idx_sessions_user_started"`
	DurationMinutes int       `gorm:"not null"`
	Task            string    `gorm:"not null"`
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
