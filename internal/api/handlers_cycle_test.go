package api

import (
	"net/http"
	"testing"

	"github.com/bloombuddy/bloombuddy/internal/models"
)

func TestUpsertCycleDayReplacesSameDate(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "cycle-upsert@example.com", "StrongPass1", true)
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	first := performJSON(t, app, authCookie, http.MethodPost, "/api/cycle/days/2026-03-10", map[string]any{
		"flow":     models.FlowLight,
		"symptoms": []string{"cramps"},
	})
	first.Body.Close()
	if first.StatusCode != http.StatusOK {
		t.Fatalf("expected first upsert status 200, got %d", first.StatusCode)
	}

	second := performJSON(t, app, authCookie, http.MethodPost, "/api/cycle/days/2026-03-10", map[string]any{
		"flow":     models.FlowHeavy,
		"symptoms": []string{"headache", "fatigue"},
	})
	defer second.Body.Close()
	if second.StatusCode != http.StatusOK {
		t.Fatalf("expected second upsert status 200, got %d", second.StatusCode)
	}

	var count int64
	if err := database.Model(&models.CycleDay{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count cycle days: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single entry after double upsert, got %d", count)
	}

	payload := cycleDayResponse{}
	decodeJSONBody(t, second.Body, &payload)
	if payload.Flow != models.FlowHeavy {
		t.Fatalf("expected replaced flow %q, got %q", models.FlowHeavy, payload.Flow)
	}
	if len(payload.Symptoms) != 2 {
		t.Fatalf("expected replaced symptom set of 2, got %v", payload.Symptoms)
	}
}

func TestGetCycleDaysSortedNewestFirst(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "cycle-sorted@example.com", "StrongPass1", true)
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	for _, date := range []string{"2026-03-08", "2026-03-12", "2026-03-10"} {
		response := performJSON(t, app, authCookie, http.MethodPost, "/api/cycle/days/"+date, map[string]any{
			"flow":     models.FlowMedium,
			"symptoms": []string{},
		})
		response.Body.Close()
		if response.StatusCode != http.StatusOK {
			t.Fatalf("upsert %s expected status 200, got %d", date, response.StatusCode)
		}
	}

	response := performJSON(t, app, authCookie, http.MethodGet, "/api/cycle/days", nil)
	defer response.Body.Close()

	days := []cycleDayResponse{}
	decodeJSONBody(t, response.Body, &days)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}

	expected := []string{"2026-03-12", "2026-03-10", "2026-03-08"}
	for index, date := range expected {
		if days[index].Date != date {
			t.Fatalf("expected day %d to be %s, got %s", index, date, days[index].Date)
		}
	}
}

func TestUpsertCycleDayRejectsUnknownFlow(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "cycle-flow@example.com", "StrongPass1", true)
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	response := performJSON(t, app, authCookie, http.MethodPost, "/api/cycle/days/2026-03-10", map[string]any{
		"flow":     "torrential",
		"symptoms": []string{},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	if errorValue := readAPIError(t, response.Body); errorValue != "invalid flow value" {
		t.Fatalf("expected flow validation error, got %q", errorValue)
	}
}

func TestDeleteCycleDayIsNoOpWhenAbsent(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "cycle-delete@example.com", "StrongPass1", true)
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	response := performJSON(t, app, authCookie, http.MethodDelete, "/api/cycle/days/2026-03-10", nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204 for missing day, got %d", response.StatusCode)
	}
}

func TestDeleteCycleDayRemovesLoggedDay(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "cycle-delete-logged@example.com", "StrongPass1", true)
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	upsert := performJSON(t, app, authCookie, http.MethodPost, "/api/cycle/days/2026-03-10", map[string]any{
		"flow":     models.FlowMedium,
		"symptoms": []string{"cramps"},
	})
	upsert.Body.Close()

	response := performJSON(t, app, authCookie, http.MethodDelete, "/api/cycle/days/2026-03-10", nil)
	response.Body.Close()
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.CycleDay{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count cycle days: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no entries after delete, got %d", count)
	}
}
