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

type SaleRequest struct {
	SaleType       string  `json:"sale_type" binding:"required,oneof=stock rawmaterial"`
	SaleMaterialID uint    `json:"sale_material_id" binding:"required"`
	CustomerID     uint    `json:"customer_id" binding:"required"`
	FirmID         uint    `json:"firm_id" binding:"required"`
	TotalAmount    float64 `json:"total_amount" binding:"required,gt=0"`
	Quantity       int     `json:"quantity" binding:"required,gt=0"`
	SaleDate       string  `json:"sale_date"`
}

// resolveSaleSubject checks that the discriminated reference points at a
// live record in the right table, so a dangling subject fails at create
// time instead of surfacing later as a broken reference.
func resolveSaleSubject(saleType string, id uint) error {
	switch saleType {
	case models.SaleTypeStock:
		var stock models.Stock
		return database.DB.First(&stock, id).Error
	default:
		var material models.RawMaterial
		return database.DB.First(&material, id).Error
	}
}

// --- POST: record a sale ---
func CreateSale(c *gin.Context) {
	var input SaleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid required fields"})
		return
	}

	if err := resolveSaleSubject(input.SaleType, input.SaleMaterialID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Sale subject not found"})
		return
	}
	var customer models.Customer
	if err := database.DB.First(&customer, input.CustomerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}
	var firm models.Firm
	if err := database.DB.First(&firm, input.FirmID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Firm not found"})
		return
	}

	saleDate := time.Now()
	if input.SaleDate != "" {
		parsed, err := parseDate(input.SaleDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "sale_date must be YYYY-MM-DD or RFC3339"})
			return
		}
		saleDate = parsed
	}

	sale := models.Sale{
		SaleType:       input.SaleType,
		SaleMaterialID: input.SaleMaterialID,
		CustomerID:     input.CustomerID,
		FirmID:         input.FirmID,
		TotalAmount:    input.TotalAmount,
		Quantity:       input.Quantity,
		SaleDate:       saleDate,
	}

	if err := database.DB.Create(&sale).Error; err != nil {
		logging.LogError("handlers", "CreateSale", "create sale", input.CustomerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create sale"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Sale created", "sale": sale})
}

// --- GET: list sales, optionally for one calendar day (?date=YYYY-MM-DD) ---
func GetAllSales(c *gin.Context) {
	q := database.DB.Order("sale_date desc")

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "date must be YYYY-MM-DD or RFC3339"})
			return
		}
		start, end := ledger.DayRange(date)
		q = q.Where("sale_date >= ? AND sale_date < ?", start, end)
	}

	var sales []models.Sale
	if err := q.Find(&sales).Error; err != nil {
		logging.LogError("handlers", "GetAllSales", "list sales", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch sales"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sales fetched", "sales": sales})
}

// --- GET: sales of one customer ---
func GetSalesByCustomer(c *gin.Context) {
	var sales []models.Sale
	if err := database.DB.Where("customer_id = ?", c.Param("id")).
		Order("sale_date desc").Find(&sales).Error; err != nil {
		logging.LogError("handlers", "GetSalesByCustomer", "list by customer", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch sales"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sales fetched", "sales": sales})
}

// --- DELETE: soft-delete a sale ---
func RemoveSale(c *gin.Context) {
	id := c.Param("id")

	var sale models.Sale
	if err := database.DB.First(&sale, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Sale not found"})
		return
	}

	if err := database.DB.Delete(&sale).Error; err != nil {
		logging.LogError("handlers", "RemoveSale", "soft delete", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove sale"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale removed"})
}
