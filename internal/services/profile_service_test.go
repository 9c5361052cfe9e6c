package services

import (
	"errors"
	"testing"
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
)

type profileRepositoryStub struct {
	profiles map[uint]models.HealthProfile
	nextID   uint
}

func newProfileRepositoryStub() *profileRepositoryStub {
	return &profileRepositoryStub{
		profiles: make(map[uint]models.HealthProfile),
		nextID:   1,
	}
}

func (stub *profileRepositoryStub) FindByUser(userID uint) (models.HealthProfile, bool, error) {
	profile, ok := stub.profiles[userID]
	return profile, ok, nil
}

func (stub *profileRepositoryStub) Create(profile *models.HealthProfile) error {
	profile.ID = stub.nextID
	stub.nextID++
	stub.profiles[profile.UserID] = *profile
	return nil
}

func (stub *profileRepositoryStub) Save(profile *models.HealthProfile) error {
	stub.profiles[profile.UserID] = *profile
	return nil
}

type profileUserRepositoryStub struct {
	completed map[uint]bool
}

func newProfileUserRepositoryStub() *profileUserRepositoryStub {
	return &profileUserRepositoryStub{completed: make(map[uint]bool)}
}

func (stub *profileUserRepositoryStub) MarkOnboardingCompleted(userID uint) error {
	stub.completed[userID] = true
	return nil
}

func validProfileInput() HealthProfileInput {
	lastPeriod := mustParseDay("2025-02-20")
	return HealthProfileInput{
		Age:            29,
		HeightCm:       168,
		WeightKg:       61.5,
		LastPeriodDate: &lastPeriod,
		PeriodDuration: models.PeriodDurationMedium,
		BirthControl:   models.BirthControlNo,
		MoodSwings:     []string{models.MoodSwingMild, models.MoodSwingModerate},
	}
}

func TestSaveProfileCreatesAndMarksOnboarding(t *testing.T) {
	profiles := newProfileRepositoryStub()
	users := newProfileUserRepositoryStub()
	service := NewProfileService(profiles, users)

	saved, err := service.SaveProfile(4, validProfileInput(), time.UTC)
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if saved.UserID != 4 {
		t.Fatalf("expected profile bound to user 4, got %d", saved.UserID)
	}
	if !users.completed[4] {
		t.Fatal("expected onboarding marked complete")
	}
}

func TestSaveProfileReplacesWholesale(t *testing.T) {
	profiles := newProfileRepositoryStub()
	service := NewProfileService(profiles, newProfileUserRepositoryStub())

	first, err := service.SaveProfile(4, validProfileInput(), time.UTC)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	replacement := validProfileInput()
	replacement.Age = 30
	replacement.LastPeriodDate = nil
	replacement.MoodSwings = nil

	second, err := service.SaveProfile(4, replacement, time.UTC)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the one-per-user record updated in place, got new id %d", second.ID)
	}
	if second.Age != 30 {
		t.Fatalf("expected age replaced, got %d", second.Age)
	}
	if second.LastPeriodDate != nil {
		t.Fatal("expected last period date cleared by wholesale replace")
	}
}

func TestSaveProfileRejectsClosedVocabularyViolations(t *testing.T) {
	service := NewProfileService(newProfileRepositoryStub(), newProfileUserRepositoryStub())

	cases := []struct {
		name     string
		mutate   func(*HealthProfileInput)
		expected error
	}{
		{"zero age", func(input *HealthProfileInput) { input.Age = 0 }, ErrInvalidProfileAge},
		{"negative height", func(input *HealthProfileInput) { input.HeightCm = -1 }, ErrInvalidProfileHeight},
		{"zero weight", func(input *HealthProfileInput) { input.WeightKg = 0 }, ErrInvalidProfileWeight},
		{"unknown period duration", func(input *HealthProfileInput) { input.PeriodDuration = "9-10" }, ErrInvalidProfilePeriodDuration},
		{"unknown birth control", func(input *HealthProfileInput) { input.BirthControl = "maybe" }, ErrInvalidProfileBirthControl},
		{"unknown mood swing", func(input *HealthProfileInput) { input.MoodSwings = []string{"extreme"} }, ErrInvalidProfileMoodSwings},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			input := validProfileInput()
			testCase.mutate(&input)

			if _, err := service.SaveProfile(4, input, time.UTC); !errors.Is(err, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, err)
			}
		})
	}
}

func TestSaveProfileDeduplicatesMoodSwings(t *testing.T) {
	service := NewProfileService(newProfileRepositoryStub(), newProfileUserRepositoryStub())

	input := validProfileInput()
	input.MoodSwings = []string{models.MoodSwingMild, models.MoodSwingMild, models.MoodSwingNone}

	saved, err := service.SaveProfile(4, input, time.UTC)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(saved.MoodSwings) != 2 {
		t.Fatalf("expected deduplicated mood swings, got %v", saved.MoodSwings)
	}
}
