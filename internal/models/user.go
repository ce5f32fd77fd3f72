package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID               uint   `gorm:"primaryKey"`
	Email            string `gorm:"uniqueIndex;not null"`
	DisplayName      string `gorm:"uniqueIndex;not null"`
	PasswordHash     string `gorm:"not null"`
	RecoveryCodeHash string
	Role             string `gorm:"not null;default:user"`
	// RequireFollowApproval gates both new follows (they start pending) and
	// session visibility (only accepted followers can read).
	RequireFollowApproval bool `gorm:"not null;default:false"`
	MustChangePassword    bool `gorm:"not null;default:false"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (user *User) IsAdmin() bool {
	return user != nil && user.Role == RoleAdmin
}
