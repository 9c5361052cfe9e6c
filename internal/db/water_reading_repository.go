package db

import (
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
	"gorm.io/gorm"
)

type WaterReadingRepository struct {
	database *gorm.DB
}

func NewWaterReadingRepository(database *gorm.DB) *WaterReadingRepository {
	return &WaterReadingRepository{database: database}
}

func (repo *WaterReadingRepository) ListByUser(userID uint) ([]models.WaterReading, error) {
	readings := []models.WaterReading{}
	err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (repo *WaterReadingRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.WaterReading, bool, error) {
	reading := models.WaterReading{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Limit(1).
		Find(&reading)
	if result.Error != nil {
		return models.WaterReading{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WaterReading{}, false, nil
	}
	return reading, true, nil
}

func (repo *WaterReadingRepository) Create(reading *models.WaterReading) error {
	return repo.database.Create(reading).Error
}

func (repo *WaterReadingRepository) Save(reading *models.WaterReading) error {
	return repo.database.Save(reading).Error
}
