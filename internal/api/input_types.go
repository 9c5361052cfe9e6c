package api

type credentialsInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	RememberMe      bool   `json:"remember_me"`
}

type deleteAccountInput struct {
	Password string `json:"password"`
}

type profilePayload struct {
	Age            int      `json:"age"`
	HeightCm       float64  `json:"height_cm"`
	WeightKg       float64  `json:"weight_kg"`
	LastPeriodDate string   `json:"last_period_date"`
	PeriodDuration string   `json:"period_duration"`
	BirthControl   string   `json:"birth_control"`
	MoodSwings     []string `json:"mood_swings"`
}

type cycleDayPayload struct {
	Flow     string   `json:"flow"`
	Symptoms []string `json:"symptoms"`
}

type moodPayload struct {
	Date  string `json:"date"`
	Mood  string `json:"mood"`
	Notes string `json:"notes"`
}

type fitnessPayload struct {
	Date            string `json:"date"`
	ActivityType    string `json:"activity_type"`
	DurationMinutes int    `json:"duration_minutes"`
	Calories        int    `json:"calories"`
	Notes           string `json:"notes"`
}

type waterPayload struct {
	AmountML int `json:"amount_ml"`
}
