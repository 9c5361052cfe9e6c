package services

import (
	"errors"
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
)

var (
	ErrInvalidProfileAge            = errors.New("invalid profile age")
	ErrInvalidProfileHeight         = errors.New("invalid profile height")
	ErrInvalidProfileWeight         = errors.New("invalid profile weight")
	ErrInvalidProfilePeriodDuration = errors.New("invalid period duration")
	ErrInvalidProfileBirthControl   = errors.New("invalid birth control value")
	ErrInvalidProfileMoodSwings     = errors.New("invalid mood swing values")
)

type HealthProfileInput struct {
	Age            int
	HeightCm       float64
	WeightKg       float64
	LastPeriodDate *time.Time
	PeriodDuration string
	BirthControl   string
	MoodSwings     []string
}

type ProfileRepository interface {
	FindByUser(userID uint) (models.HealthProfile, bool, error)
	Create(profile *models.HealthProfile) error
	Save(profile *models.HealthProfile) error
}

type ProfileUserRepository interface {
	MarkOnboardingCompleted(userID uint) error
}

type ProfileService struct {
	profiles ProfileRepository
	users    ProfileUserRepository
}

func NewProfileService(profiles ProfileRepository, users ProfileUserRepository) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		users:    users,
	}
}

func (service *ProfileService) LoadProfile(userID uint) (models.HealthProfile, bool, error) {
	return service.profiles.FindByUser(userID)
}

// SaveProfile validates the closed vocabularies and replaces the user's
// profile wholesale, creating it on first submit and marking onboarding
// complete. Nothing is applied when validation fails.
func (service *ProfileService) SaveProfile(userID uint, input HealthProfileInput, location *time.Location) (models.HealthProfile, error) {
	if err := ValidateHealthProfileInput(input); err != nil {
		return models.HealthProfile{}, err
	}

	var lastPeriodDate *time.Time
	if input.LastPeriodDate != nil {
		normalized := DateAtLocation(*input.LastPeriodDate, location)
		lastPeriodDate = &normalized
	}

	profile, found, err := service.profiles.FindByUser(userID)
	if err != nil {
		return models.HealthProfile{}, err
	}

	profile.UserID = userID
	profile.Age = input.Age
	profile.HeightCm = input.HeightCm
	profile.WeightKg = input.WeightKg
	profile.LastPeriodDate = lastPeriodDate
	profile.PeriodDuration = input.PeriodDuration
	profile.BirthControl = input.BirthControl
	profile.MoodSwings = normalizeMoodSwings(input.MoodSwings)

	if found {
		if err := service.profiles.Save(&profile); err != nil {
			return models.HealthProfile{}, err
		}
	} else {
		if err := service.profiles.Create(&profile); err != nil {
			return models.HealthProfile{}, err
		}
	}

	if err := service.users.MarkOnboardingCompleted(userID); err != nil {
		return models.HealthProfile{}, err
	}
	return profile, nil
}

func ValidateHealthProfileInput(input HealthProfileInput) error {
	if input.Age <= 0 || input.Age > 120 {
		return ErrInvalidProfileAge
	}
	if input.HeightCm <= 0 {
		return ErrInvalidProfileHeight
	}
	if input.WeightKg <= 0 {
		return ErrInvalidProfileWeight
	}
	if !containsValue(models.PeriodDurationValues(), input.PeriodDuration) {
		return ErrInvalidProfilePeriodDuration
	}
	if input.BirthControl != models.BirthControlYes && input.BirthControl != models.BirthControlNo {
		return ErrInvalidProfileBirthControl
	}
	for _, value := range input.MoodSwings {
		if !containsValue(models.MoodSwingValues(), value) {
			return ErrInvalidProfileMoodSwings
		}
	}
	return nil
}

func normalizeMoodSwings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		if _, duplicate := seen[value]; duplicate {
			continue
		}
		seen[value] = struct{}{}
		normalized = append(normalized, value)
	}
	return normalized
}

func containsValue(values []string, needle string) bool {
	for _, value := range values {
		if value == needle {
			return true
		}
	}
	return false
}
