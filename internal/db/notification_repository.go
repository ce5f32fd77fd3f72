package db

import (
	"github.com/arodena/focusfeed/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) Create(notification *models.Notification) error {
	return repo.database.Create(notification).Error
}

func (repo *NotificationRepository) ListByUser(userID uint, limit int) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := repo.database.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead flags the given notification as read if it belongs to the user.
func (repo *NotificationRepository) MarkRead(notificationID uint, userID uint) (bool, error) {
	result := repo.database.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *NotificationRepository) MarkAllRead(userID uint) error {
	return repo.database.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
