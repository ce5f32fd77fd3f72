package models

import "time"

const (
	NotificationKindLike           = "like"
	NotificationKindComment        = "comment"
	NotificationKindFollowRequest  = "follow-request"
	NotificationKindFollowAccepted = "follow-accepted"
)

type Notification struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	ActorID   uint   `gorm:"not null"`
	Kind      string `gorm:"not null"`
	SessionID *uint
	Read      bool `gorm:"not null;default:false"`
	CreatedAt time.Time
}
