package handlers

import (
	"net/http"

	"girvi-backend/internal/database"
	"girvi-backend/internal/ledger"
	"girvi-backend/internal/logging"
	"girvi-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type StockRequest struct {
	Name         string  `form:"name" binding:"required"`
	MaterialType string  `form:"material_type" binding:"required,materialtype"`
	Weight       float64 `form:"weight" binding:"required,gt=0"`
	CategoryID   uint    `form:"category_id" binding:"required"`
	FirmID       uint    `form:"firm_id" binding:"required"`
	Quantity     int     `form:"quantity" binding:"required,gt=0"`
	Price        float64 `form:"price" binding:"gte=0"`
	MakingCharge float64 `form:"making_charge" binding:"gte=0"`
}

// --- POST: create a stock item (multipart, optional 'image') ---
// TotalValue and the unique stock code are derived here; whatever the
// client sends for either is ignored.
func CreateStock(c *gin.Context) {
	var input StockRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid required fields"})
		return
	}

	var category models.StockCategory
	if err := database.DB.First(&category, input.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	var firm models.Firm
	if err := database.DB.First(&firm, input.FirmID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Firm not found"})
		return
	}

	imagePath, err := optionalUpload(c, "image")
	if err != nil {
		logging.LogError("handlers", "CreateStock", "save image", input.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save image"})
		return
	}

	stock := models.Stock{
		Name:         input.Name,
		MaterialType: input.MaterialType,
		Weight:       input.Weight,
		CategoryID:   input.CategoryID,
		FirmID:       input.FirmID,
		Quantity:     input.Quantity,
		Price:        input.Price,
		MakingCharge: input.MakingCharge,
		TotalValue:   ledger.StockTotalValue(input.Price, input.MakingCharge),
		StockCode:    ledger.NewStockCode(),
		ImagePath:    imagePath,
	}

	if err := database.DB.Create(&stock).Error; err != nil {
		if isDuplicate(err) {
			// Code collision; the unique index is the backstop, no retry
			c.JSON(http.StatusBadRequest, gin.H{"message": "Stock code already exists"})
			return
		}
		logging.LogError("handlers", "CreateStock", "create stock", input.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create stock"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Stock created", "stock": stock})
}

// --- GET: list all active stock ---
func GetAllStock(c *gin.Context) {
	var stock []models.Stock
	if err := database.DB.Find(&stock).Error; err != nil {
		logging.LogError("handlers", "GetAllStock", "list stock", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stock"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock fetched", "stock": stock})
}

// --- GET: stock in one category ---
func GetStockByCategory(c *gin.Context) {
	var stock []models.Stock
	if err := database.DB.Where("category_id = ?", c.Param("id")).Find(&stock).Error; err != nil {
		logging.LogError("handlers", "GetStockByCategory", "list by category", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stock"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock fetched", "stock": stock})
}

// --- GET: stock of one firm ---
func GetStockByFirm(c *gin.Context) {
	var stock []models.Stock
	if err := database.DB.Where("firm_id = ?", c.Param("id")).Find(&stock).Error; err != nil {
		logging.LogError("handlers", "GetStockByFirm", "list by firm", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stock"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock fetched", "stock": stock})
}

// --- GET: stock of one material type ---
func GetStockByType(c *gin.Context) {
	materialType := c.Param("type")
	if !ledger.ValidMaterialType(materialType) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown material type"})
		return
	}

	var stock []models.Stock
	if err := database.DB.Where("material_type = ?", materialType).Find(&stock).Error; err != nil {
		logging.LogError("handlers", "GetStockByType", "list by type", materialType, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stock"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock fetched", "stock": stock})
}

// --- DELETE: soft-delete a stock item ---
func RemoveStock(c *gin.Context) {
	id := c.Param("id")

	var stock models.Stock
	if err := database.DB.First(&stock, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Stock not found"})
		return
	}

	if err := database.DB.Delete(&stock).Error; err != nil {
		logging.LogError("handlers", "RemoveStock", "soft delete", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove stock"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock removed"})
}
