package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/bloombuddy/bloombuddy/internal/db"
	"github.com/bloombuddy/bloombuddy/internal/services"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	loginLimiter *attemptLimiter

	repositories     *db.Repositories
	authService      *services.AuthService
	profileService   *services.ProfileService
	cycleService     *services.CycleService
	moodService      *services.MoodService
	fitnessService   *services.FitnessService
	dashboardService *services.DashboardService
	exportService    *services.ExportService
}

const (
	authCookieName = "bloombuddy_auth"
	contextUserKey = "current_user"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		loginLimiter: newAttemptLimiter(),
	}
	return handler.withDependencies(database)
}
