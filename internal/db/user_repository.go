package db

import (
	"strings"

	"github.com/arodena/focusfeed/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var count int64
	err := repo.database.Model(&models.User{}).
		Where("email = ?", normalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

func (repo *UserRepository) ExistsByDisplayName(name string) (bool, error) {
	var count int64
	err := repo.database.Model(&models.User{}).
		Where("LOWER(display_name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Count(&count).Error
	return count > 0, err
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	user := models.User{}
	err := repo.database.Where("email = ?", normalizeEmail(email)).First(&user).Error
	return user, err
}

func (repo *UserRepository) FindByDisplayName(name string) (models.User, error) {
	user := models.User{}
	err := repo.database.
		Where("LOWER(display_name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&user).Error
	return user, err
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	user := models.User{}
	err := repo.database.First(&user, userID).Error
	return user, err
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) ListWithRecoveryCodeHash() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Where("recovery_code_hash <> ''").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) ListAll() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) CountAll() (int64, error) {
	var count int64
	err := repo.database.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (repo *UserRepository) DeleteByID(userID uint) error {
	return repo.database.Delete(&models.User{}, userID).Error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
