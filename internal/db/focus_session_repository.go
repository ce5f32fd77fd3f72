package db

import (
	"time"

	"github.com/arodena/focusfeed/internal/models"
	"gorm.io/gorm"
)

type FocusSessionRepository struct {
	database *gorm.DB
}

func NewFocusSessionRepository(database *gorm.DB) *FocusSessionRepository {
	return &FocusSessionRepository{database: database}
}

func (repo *FocusSessionRepository) Create(session *models.FocusSession) error {
	return repo.database.Create(session).Error
}

func (repo *FocusSessionRepository) FindByPublicID(publicID string) (models.FocusSession, bool, error) {
	session := models.FocusSession{}
	result := repo.database.Where("public_id = ?", publicID).Limit(1).Find(&session)
	if result.Error != nil {
		return models.FocusSession{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.FocusSession{}, false, nil
	}
	return session, true, nil
}

// ListByUserRange returns a user's sessions inside the optional closed
// range, oldest first. Nil boundaries leave that side open.
func (repo *FocusSessionRepository) ListByUserRange(userID uint, from *time.Time, to *time.Time) ([]models.FocusSession, error) {
	query := repo.database.Model(&models.FocusSession{}).Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("started_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("started_at <= ?", *to)
	}

	sessions := make([]models.FocusSession, 0)
	if err := query.Order("started_at ASC, id ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *FocusSessionRepository) ListRecentByUser(userID uint, limit int) ([]models.FocusSession, error) {
	sessions := make([]models.FocusSession, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("started_at DESC, id DESC").
		Limit(limit).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListRecentByUsers feeds the follow timeline: newest sessions across the
// given authors.
func (repo *FocusSessionRepository) ListRecentByUsers(userIDs []uint, limit int) ([]models.FocusSession, error) {
	sessions := make([]models.FocusSession, 0)
	if len(userIDs) == 0 {
		return sessions, nil
	}
	if err := repo.database.
		Where("user_id IN ?", userIDs).
		Order("started_at DESC, id DESC").
		Limit(limit).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *FocusSessionRepository) ListAllRange(from *time.Time, to *time.Time) ([]models.FocusSession, error) {
	query := repo.database.Model(&models.FocusSession{})
	if from != nil {
		query = query.Where("started_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("started_at <= ?", *to)
	}

	sessions := make([]models.FocusSession, 0)
	if err := query.Order("started_at ASC, id ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *FocusSessionRepository) CountAll() (int64, error) {
	var count int64
	err := repo.database.Model(&models.FocusSession{}).Count(&count).Error
	return count, err
}

func (repo *FocusSessionRepository) DeleteByIDAndUser(sessionID uint, userID uint) (bool, error) {
	result := repo.database.
		Where("id = ? AND user_id = ?", sessionID, userID).
		Delete(&models.FocusSession{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SumMinutesByUser ranks users by focused minutes inside the optional
// range. Ties break toward more sessions, then lower user ID for a stable
// order.
func (repo *FocusSessionRepository) SumMinutesByUser(from *time.Time, to *time.Time, limit int) ([]models.LeaderboardRow, error) {
	query := repo.database.Model(&models.FocusSession{}).
		Select("focus_sessions.user_id AS user_id, users.display_name AS display_name, SUM(focus_sessions.duration_minutes) AS total_minutes, COUNT(focus_sessions.id) AS session_count").
		Joins("JOIN users ON users.id = focus_sessions.user_id").
		Group("focus_sessions.user_id, users.display_name").
		Order("total_minutes DESC, session_count DESC, user_id ASC").
		Limit(limit)
	if from != nil {
		query = query.Where("focus_sessions.started_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("focus_sessions.started_at <= ?", *to)
	}

	rows := make([]models.LeaderboardRow, 0)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
