package db

import (
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
	"gorm.io/gorm"
)

type MoodEntryRepository struct {
	database *gorm.DB
}

func NewMoodEntryRepository(database *gorm.DB) *MoodEntryRepository {
	return &MoodEntryRepository{database: database}
}

func (repo *MoodEntryRepository) ListByUser(userID uint) ([]models.MoodEntry, error) {
	entries := []models.MoodEntry{}
	err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *MoodEntryRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodEntry, bool, error) {
	entry := models.MoodEntry{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.MoodEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MoodEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *MoodEntryRepository) FindByUserAndID(userID uint, entryID string) (models.MoodEntry, bool, error) {
	entry := models.MoodEntry{}
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, entryID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.MoodEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MoodEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *MoodEntryRepository) Create(entry *models.MoodEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *MoodEntryRepository) Save(entry *models.MoodEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *MoodEntryRepository) DeleteByUserAndID(userID uint, entryID string) error {
	return repo.database.
		Where("user_id = ? AND id = ?", userID, entryID).
		Delete(&models.MoodEntry{}).Error
}
