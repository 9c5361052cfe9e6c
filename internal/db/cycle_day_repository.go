package db

import (
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
	"gorm.io/gorm"
)

type CycleDayRepository struct {
	database *gorm.DB
}

func NewCycleDayRepository(database *gorm.DB) *CycleDayRepository {
	return &CycleDayRepository{database: database}
}

func (repo *CycleDayRepository) ListByUser(userID uint) ([]models.CycleDay, error) {
	days := []models.CycleDay{}
	err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (repo *CycleDayRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.CycleDay, bool, error) {
	day := models.CycleDay{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Limit(1).
		Find(&day)
	if result.Error != nil {
		return models.CycleDay{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleDay{}, false, nil
	}
	return day, true, nil
}

func (repo *CycleDayRepository) Create(day *models.CycleDay) error {
	return repo.database.Create(day).Error
}

func (repo *CycleDayRepository) Save(day *models.CycleDay) error {
	return repo.database.Save(day).Error
}

func (repo *CycleDayRepository) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) error {
	return repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Delete(&models.CycleDay{}).Error
}
