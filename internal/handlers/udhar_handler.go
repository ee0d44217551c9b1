package handlers

import (
	"net/http"
	"time"

	"girvi-backend/internal/database"
	"girvi-backend/internal/ledger"
	"girvi-backend/internal/logging"
	"girvi-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type UdharRequest struct {
	CustomerID uint    `json:"customer_id" binding:"required"`
	FirmID     uint    `json:"firm_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	SaleID     uint    `json:"sale_id" binding:"required"`
}

type SettlementRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate string  `json:"payment_date"`
}

// --- POST: open a credit entry against a sale ---
func CreateUdhar(c *gin.Context) {
	var input UdharRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid required fields"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, input.CustomerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}
	var sale models.Sale
	if err := database.DB.First(&sale, input.SaleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Sale not found"})
		return
	}

	udhar := models.Udhar{
		CustomerID: input.CustomerID,
		FirmID:     input.FirmID,
		Amount:     input.Amount,
		SaleID:     input.SaleID,
	}

	if err := database.DB.Create(&udhar).Error; err != nil {
		logging.LogError("handlers", "CreateUdhar", "create udhar", input.CustomerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create udhar"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Udhar created", "udhar": udhar})
}

// --- GET: list all active udhar entries ---
func GetAllUdhar(c *gin.Context) {
	var entries []models.Udhar
	if err := database.DB.Find(&entries).Error; err != nil {
		logging.LogError("handlers", "GetAllUdhar", "list udhar", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch udhar entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Udhar entries fetched", "udhar": entries})
}

// --- POST: apply a settlement against an udhar ---
// Settlements are never rejected on amount: overpayment is allowed and
// shows up as a negative outstanding balance with the overpaid flag set.
func CreateSettlement(c *gin.Context) {
	var input SettlementRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Settlement amount must be a positive number"})
		return
	}

	var udhar models.Udhar
	if err := database.DB.First(&udhar, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Udhar not found"})
		return
	}

	paymentDate := time.Now()
	if input.PaymentDate != "" {
		parsed, err := parseDate(input.PaymentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "payment_date must be YYYY-MM-DD or RFC3339"})
			return
		}
		paymentDate = parsed
	}

	settlement := models.UdharSettlement{
		UdharID:     udhar.ID,
		CustomerID:  udhar.CustomerID,
		FirmID:      udhar.FirmID,
		SaleID:      udhar.SaleID,
		Amount:      input.Amount,
		PaymentDate: paymentDate,
	}

	if err := database.DB.Create(&settlement).Error; err != nil {
		logging.LogError("handlers", "CreateSettlement", "create settlement", udhar.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create settlement"})
		return
	}

	balance, err := udharBalance(&udhar)
	if err != nil {
		logging.LogError("handlers", "CreateSettlement", "compute balance", udhar.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Settlement created",
		"settlement": settlement,
		"balance":    balance,
	})
}

// --- GET: settlements applied against one udhar ---
func GetSettlements(c *gin.Context) {
	var udhar models.Udhar
	if err := database.DB.First(&udhar, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Udhar not found"})
		return
	}

	var settlements []models.UdharSettlement
	if err := database.DB.Where("udhar_id = ?", udhar.ID).
		Order("payment_date asc").Find(&settlements).Error; err != nil {
		logging.LogError("handlers", "GetSettlements", "list settlements", udhar.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch settlements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settlements fetched", "settlements": settlements})
}

// --- GET: outstanding balance of one udhar ---
func GetUdharBalance(c *gin.Context) {
	var udhar models.Udhar
	if err := database.DB.First(&udhar, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Udhar not found"})
		return
	}

	balance, err := udharBalance(&udhar)
	if err != nil {
		logging.LogError("handlers", "GetUdharBalance", "compute balance", udhar.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Balance computed", "balance": balance})
}

func udharBalance(udhar *models.Udhar) (ledger.Balance, error) {
	var settlements []models.UdharSettlement
	if err := database.DB.Where("udhar_id = ?", udhar.ID).Find(&settlements).Error; err != nil {
		return ledger.Balance{}, err
	}
	return ledger.OutstandingBalance(udhar.Amount, settlements), nil
}
