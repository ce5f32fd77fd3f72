package db

import (
	"github.com/arodena/focusfeed/internal/models"
	"gorm.io/gorm"
)

type LikeRepository struct {
	database *gorm.DB
}

func NewLikeRepository(database *gorm.DB) *LikeRepository {
	return &LikeRepository{database: database}
}

func (repo *LikeRepository) Exists(userID uint, sessionID uint) (bool, error) {
	var count int64
	err := repo.database.Model(&models.Like{}).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Count(&count).Error
	return count > 0, err
}

func (repo *LikeRepository) Create(like *models.Like) error {
	return repo.database.Create(like).Error
}

func (repo *LikeRepository) Delete(userID uint, sessionID uint) (bool, error) {
	result := repo.database.
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Delete(&models.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *LikeRepository) CountBySession(sessionID uint) (int64, error) {
	var count int64
	err := repo.database.Model(&models.Like{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}

type CommentRepository struct {
	database *gorm.DB
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{database: database}
}

func (repo *CommentRepository) Create(comment *models.Comment) error {
	return repo.database.Create(comment).Error
}

func (repo *CommentRepository) FindByID(commentID uint) (models.Comment, bool, error) {
	comment := models.Comment{}
	result := repo.database.Limit(1).Find(&comment, commentID)
	if result.Error != nil {
		return models.Comment{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Comment{}, false, nil
	}
	return comment, true, nil
}

func (repo *CommentRepository) ListBySession(sessionID uint) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := repo.database.
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (repo *CommentRepository) DeleteByID(commentID uint) error {
	return repo.database.Delete(&models.Comment{}, commentID).Error
}
