package handlers

import (
	"net/http"
	"time"

	"girvi-backend/internal/database"
	"girvi-backend/internal/logging"
	"girvi-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type PaymentRequest struct {
	PaymentType   string  `json:"payment_type" binding:"required,oneof=cash credit debit udharsettlement upi other"`
	ReferenceCode string  `json:"reference_code"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Date          string  `json:"date"`
	SaleID        uint    `json:"sale_id"`
	CustomerID    uint    `json:"customer_id" binding:"required"`
	FirmID        uint    `json:"firm_id" binding:"required"`
}

// --- POST: record a payment ---
func CreatePayment(c *gin.Context) {
	var input PaymentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid required fields"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, input.CustomerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}
	if input.SaleID != 0 {
		var sale models.Sale
		if err := database.DB.First(&sale, input.SaleID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sale not found"})
			return
		}
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := parseDate(input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "date must be YYYY-MM-DD or RFC3339"})
			return
		}
		date = parsed
	}

	payment := models.Payment{
		PaymentType:   input.PaymentType,
		ReferenceCode: input.ReferenceCode,
		Amount:        input.Amount,
		Date:          date,
		SaleID:        input.SaleID,
		CustomerID:    input.CustomerID,
		FirmID:        input.FirmID,
	}

	if err := database.DB.Create(&payment).Error; err != nil {
		logging.LogError("handlers", "CreatePayment", "create payment", input.CustomerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Payment created", "payment": payment})
}

// --- GET: list all payments ---
func GetAllPayments(c *gin.Context) {
	var payments []models.Payment
	if err := database.DB.Order("date desc").Find(&payments).Error; err != nil {
		logging.LogError("handlers", "GetAllPayments", "list payments", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payments fetched", "payments": payments})
}
