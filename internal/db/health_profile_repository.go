package db

import (
	"github.com/bloombuddy/bloombuddy/internal/models"
	"gorm.io/gorm"
)

type HealthProfileRepository struct {
	database *gorm.DB
}

func NewHealthProfileRepository(database *gorm.DB) *HealthProfileRepository {
	return &HealthProfileRepository{database: database}
}

func (repo *HealthProfileRepository) FindByUser(userID uint) (models.HealthProfile, bool, error) {
	profile := models.HealthProfile{}
	result := repo.database.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&profile)
	if result.Error != nil {
		return models.HealthProfile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HealthProfile{}, false, nil
	}
	return profile, true, nil
}

func (repo *HealthProfileRepository) Create(profile *models.HealthProfile) error {
	return repo.database.Create(profile).Error
}

func (repo *HealthProfileRepository) Save(profile *models.HealthProfile) error {
	return repo.database.Save(profile).Error
}
