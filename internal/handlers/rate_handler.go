package handlers

import (
	"net/http"
	"time"

	"girvi-backend/internal/cache"
	"girvi-backend/internal/database"
	"girvi-backend/internal/ledger"
	"girvi-backend/internal/logging"
	"girvi-backend/internal/models"

	"github.com/gin-gonic/gin"
)

const todayRateEndpoint = "/api/daily-rates/today"

// RateHandler carries the injected response cache for the today-rate
// lookup. Rates change once a day at most, so this is the one read
// endpoint worth caching.
type RateHandler struct {
	Cache *cache.ResponseCache
}

func NewRateHandler(c *cache.ResponseCache) *RateHandler {
	return &RateHandler{Cache: c}
}

type DailyRateRequest struct {
	Date string `json:"date" binding:"required"`
	Rate struct {
		Gold    models.GoldRate    `json:"gold"`
		Silver  float64            `json:"silver" binding:"gte=0"`
		Diamond models.DiamondRate `json:"diamond"`
	} `json:"rate" binding:"required"`
}

// --- POST: register the day's rates ---
// Uniqueness is per calendar day: the incoming date is truncated to
// midnight UTC and the duplicate check runs over the whole day range,
// so the time of day on the request never matters.
func (h *RateHandler) CreateDailyRate(c *gin.Context) {
	var input DailyRateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid required fields"})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date must be YYYY-MM-DD or RFC3339"})
		return
	}

	start, end := ledger.DayRange(date)
	var count int64
	if err := database.DB.Model(&models.DailyRate{}).
		Where("date >= ? AND date < ?", start, end).
		Count(&count).Error; err != nil {
		logging.LogError("handlers", "CreateDailyRate", "duplicate check", input.Date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create daily rate"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A rate for this date already exists"})
		return
	}

	rate := models.DailyRate{
		Date:    ledger.DayOf(date),
		Gold:    input.Rate.Gold,
		Silver:  input.Rate.Silver,
		Diamond: input.Rate.Diamond,
	}

	if err := database.DB.Create(&rate).Error; err != nil {
		logging.LogError("handlers", "CreateDailyRate", "create rate", input.Date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create daily rate"})
		return
	}

	h.Cache.InvalidatePrefix(todayRateEndpoint)

	c.JSON(http.StatusCreated, gin.H{"message": "Daily rate created", "daily_rate": rate})
}

// --- GET: list all daily rates, newest first ---
func (h *RateHandler) GetAllDailyRates(c *gin.Context) {
	var rates []models.DailyRate
	if err := database.DB.Order("date desc").Find(&rates).Error; err != nil {
		logging.LogError("handlers", "GetAllDailyRates", "list rates", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch daily rates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Daily rates fetched", "daily_rates": rates})
}

// --- GET: the rate for the current calendar day ---
func (h *RateHandler) GetTodayDailyRate(c *gin.Context) {
	start, end := ledger.DayRange(time.Now())
	params := start.Format("2006-01-02")

	if cached, ok := h.Cache.Get(todayRateEndpoint, params); ok {
		c.JSON(http.StatusOK, gin.H{"message": "Daily rate fetched", "daily_rate": cached})
		return
	}

	var rate models.DailyRate
	if err := database.DB.
		Where("date >= ? AND date < ?", start, end).
		First(&rate).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No rate registered for today"})
		return
	}

	h.Cache.Set(todayRateEndpoint, params, rate)
	c.JSON(http.StatusOK, gin.H{"message": "Daily rate fetched", "daily_rate": rate})
}
