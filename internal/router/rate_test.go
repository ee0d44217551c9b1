package router_test

import (
	"net/http"
	"testing"
	"time"

	"girvi-backend/internal/database"
	"girvi-backend/internal/models"
)

func rateBody(date string) map[string]any {
	return map[string]any{
		"date": date,
		"rate": map[string]any{
			"gold":    map[string]any{"k24": 7200, "k23": 7000, "k22": 6700, "k20": 6100, "k18": 5500},
			"silver":  92.5,
			"diamond": map[string]any{"below_half_carat": 40000, "half_to_one_carat": 65000, "above_one_carat": 110000},
		},
	}
}

func TestDailyRateOnePerCalendarDay(t *testing.T) {
	r := setupTest(t)
	_, token := newAdmin(t)

	w := doJSON(t, r, "POST", "/api/daily-rates", rateBody("2026-03-10"), token)
	wantStatus(t, w, http.StatusCreated)

	// Same calendar day at a different time of day is still a duplicate
	w = doJSON(t, r, "POST", "/api/daily-rates", rateBody("2026-03-10T15:04:05Z"), token)
	wantStatus(t, w, http.StatusBadRequest)

	// The next day is fine
	w = doJSON(t, r, "POST", "/api/daily-rates", rateBody("2026-03-11"), token)
	wantStatus(t, w, http.StatusCreated)

	var count int64
	database.DB.Model(&models.DailyRate{}).Count(&count)
	if count != 2 {
		t.Fatalf("rate count = %d, want 2", count)
	}

	// Stored dates are normalized to midnight UTC
	var first models.DailyRate
	database.DB.Order("date asc").First(&first)
	if !first.Date.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("stored date = %v, want midnight UTC", first.Date)
	}

	w = doJSON(t, r, "GET", "/api/daily-rates", nil, token)
	wantStatus(t, w, http.StatusOK)
	body := decode(t, w)
	if rates, _ := body["daily_rates"].([]any); len(rates) != 2 {
		t.Fatalf("listed %d rates, want 2", len(rates))
	}
}

func TestTodayRateLookup(t *testing.T) {
	r := setupTest(t)
	_, token := newAdmin(t)

	// Nothing registered yet
	w := doJSON(t, r, "GET", "/api/daily-rates/today", nil, token)
	wantStatus(t, w, http.StatusNotFound)

	// Register at an arbitrary time of day; the lookup is day-based
	now := time.Now().UTC()
	w = doJSON(t, r, "POST", "/api/daily-rates", rateBody(now.Format(time.RFC3339)), token)
	wantStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, "GET", "/api/daily-rates/today", nil, token)
	wantStatus(t, w, http.StatusOK)

	// Second read comes from the cache and matches
	w2 := doJSON(t, r, "GET", "/api/daily-rates/today", nil, token)
	wantStatus(t, w2, http.StatusOK)
	if w.Body.String() != w2.Body.String() {
		t.Error("cached today-rate response differs from the fresh one")
	}

	// Yesterday's rate never satisfies today's lookup
	database.DB.Where("1 = 1").Delete(&models.DailyRate{})
	w = doJSON(t, r, "POST", "/api/daily-rates",
		rateBody(now.AddDate(0, 0, -1).Format("2006-01-02")), token)
	wantStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, "GET", "/api/daily-rates/today", nil, token)
	wantStatus(t, w, http.StatusNotFound)
}
