package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Sessions      *FocusSessionRepository
	Follows       *FollowRepository
	Likes         *LikeRepository
	Comments      *CommentRepository
	Notifications *NotificationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Sessions:      NewFocusSessionRepository(database),
		Follows:       NewFollowRepository(database),
		Likes:         NewLikeRepository(database),
		Comments:      NewCommentRepository(database),
		Notifications: NewNotificationRepository(database),
	}
}
