package models

import "time"

const (
	FollowStatusPending  = "pending"
	FollowStatusAccepted = "accepted"
)

type Follow struct {
	ID         uint   `gorm:"primaryKey"`
	FollowerID uint   `gorm:"not null;uniqueIndex:uidx_follower_followee"`
	FolloweeID uint   `gorm:"not null;uniqueIndex:uidx_follower_followee"`
	Status     string `gorm:"not null;default:pending"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (follow *Follow) Accepted() bool {
	return follow != nil && follow.Status == FollowStatusAccepted
}
