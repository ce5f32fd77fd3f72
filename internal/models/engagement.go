package models

import "time"

type Like struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:uidx_like_user_session"`
	SessionID uint `gorm:"not null;uniqueIndex:uidx_like_user_session"`
	CreatedAt time.Time
}

const MaxCommentLength = 1000

type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null"`
	Body      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
