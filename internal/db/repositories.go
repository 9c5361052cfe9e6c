package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	HealthProfiles *HealthProfileRepository
	CycleDays      *CycleDayRepository
	MoodEntries    *MoodEntryRepository
	FitnessEntries *FitnessEntryRepository
	WaterReadings  *WaterReadingRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		HealthProfiles: NewHealthProfileRepository(database),
		CycleDays:      NewCycleDayRepository(database),
		MoodEntries:    NewMoodEntryRepository(database),
		FitnessEntries: NewFitnessEntryRepository(database),
		WaterReadings:  NewWaterReadingRepository(database),
	}
}
