package db

import (
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
	"gorm.io/gorm"
)

type FitnessEntryRepository struct {
	database *gorm.DB
}

func NewFitnessEntryRepository(database *gorm.DB) *FitnessEntryRepository {
	return &FitnessEntryRepository{database: database}
}

func (repo *FitnessEntryRepository) ListByUser(userID uint) ([]models.FitnessEntry, error) {
	entries := []models.FitnessEntry{}
	err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *FitnessEntryRepository) ListByUserRange(userID uint, rangeStart time.Time, rangeEnd time.Time) ([]models.FitnessEntry, error) {
	entries := []models.FitnessEntry{}
	err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, rangeStart, rangeEnd).
		Order("date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *FitnessEntryRepository) FindByUserAndID(userID uint, entryID string) (models.FitnessEntry, bool, error) {
	entry := models.FitnessEntry{}
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, entryID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.FitnessEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.FitnessEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *FitnessEntryRepository) Create(entry *models.FitnessEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *FitnessEntryRepository) Save(entry *models.FitnessEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *FitnessEntryRepository) DeleteByUserAndID(userID uint, entryID string) error {
	return repo.database.
		Where("user_id = ? AND id = ?", userID, entryID).
		Delete(&models.FitnessEntry{}).Error
}
