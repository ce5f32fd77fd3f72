package db

import (
	"github.com/arodena/focusfeed/internal/models"
	"gorm.io/gorm"
)

type FollowRepository struct {
	database *gorm.DB
}

func NewFollowRepository(database *gorm.DB) *FollowRepository {
	return &FollowRepository{database: database}
}

func (repo *FollowRepository) Find(followerID uint, followeeID uint) (models.Follow, bool, error) {
	follow := models.Follow{}
	result := repo.database.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Limit(1).
		Find(&follow)
	if result.Error != nil {
		return models.Follow{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Follow{}, false, nil
	}
	return follow, true, nil
}

func (repo *FollowRepository) Create(follow *models.Follow) error {
	return repo.database.Create(follow).Error
}

func (repo *FollowRepository) Save(follow *models.Follow) error {
	return repo.database.Save(follow).Error
}

func (repo *FollowRepository) Delete(followerID uint, followeeID uint) (bool, error) {
	result := repo.database.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListAcceptedFolloweeIDs returns the IDs a user follows with accepted
// status, for feed assembly.
func (repo *FollowRepository) ListAcceptedFolloweeIDs(followerID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := repo.database.Model(&models.Follow{}).
		Where("follower_id = ? AND status = ?", followerID, models.FollowStatusAccepted).
		Order("followee_id ASC").
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (repo *FollowRepository) ListFollowers(followeeID uint) ([]models.Follow, error) {
	follows := make([]models.Follow, 0)
	err := repo.database.
		Where("followee_id = ? AND status = ?", followeeID, models.FollowStatusAccepted).
		Order("created_at ASC, id ASC").
		Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return follows, nil
}

func (repo *FollowRepository) ListFollowing(followerID uint) ([]models.Follow, error) {
	follows := make([]models.Follow, 0)
	err := repo.database.
		Where("follower_id = ? AND status = ?", followerID, models.FollowStatusAccepted).
		Order("created_at ASC, id ASC").
		Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return follows, nil
}

func (repo *FollowRepository) ListPendingRequests(followeeID uint) ([]models.Follow, error) {
	follows := make([]models.Follow, 0)
	err := repo.database.
		Where("followee_id = ? AND status = ?", followeeID, models.FollowStatusPending).
		Order("created_at ASC, id ASC").
		Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return follows, nil
}
