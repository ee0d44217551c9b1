package handlers

import (
	"net/http"

	"girvi-backend/internal/database"
	"girvi-backend/internal/logging"
	"girvi-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type GirviRequest struct {
	ItemName         string  `form:"item_name" binding:"required"`
	ItemType         string  `form:"item_type" binding:"required"`
	ItemWeight       float64 `form:"item_weight" binding:"required,gt=0"`
	ItemValue        float64 `form:"item_value" binding:"required,gt=0"`
	TotalPayable     float64 `form:"total_payable" binding:"required,gt=0"`
	InterestRate     float64 `form:"interest_rate" binding:"gte=0"`
	LastDateToRedeem string  `form:"last_date_to_redeem" binding:"required"`
	CustomerID       uint    `form:"customer_id" binding:"required"`
	FirmID           uint    `form:"firm_id" binding:"required"`
}

// --- POST: pawn an item (multipart, optional 'image') ---
func CreateGirvi(c *gin.Context) {
	var input GirviRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid required fields"})
		return
	}

	redeemBy, err := parseDate(input.LastDateToRedeem)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "last_date_to_redeem must be YYYY-MM-DD or RFC3339"})
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

	imagePath, err := optionalUpload(c, "image")
	if err != nil {
		logging.LogError("handlers", "CreateGirvi", "save image", input.ItemName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save image"})
		return
	}

	girvi := models.Girvi{
		ItemName:         input.ItemName,
		ItemType:         input.ItemType,
		ItemWeight:       input.ItemWeight,
		ItemValue:        input.ItemValue,
		TotalPayable:     input.TotalPayable,
		InterestRate:     input.InterestRate,
		LastDateToRedeem: redeemBy,
		CustomerID:       input.CustomerID,
		FirmID:           input.FirmID,
		ImagePath:        imagePath,
	}

	if err := database.DB.Create(&girvi).Error; err != nil {
		logging.LogError("handlers", "CreateGirvi", "create girvi", input.ItemName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create girvi"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Girvi created", "girvi": girvi})
}

// --- GET: list all active girvi entries ---
func GetAllGirvi(c *gin.Context) {
	var entries []models.Girvi
	if err := database.DB.Find(&entries).Error; err != nil {
		logging.LogError("handlers", "GetAllGirvi", "list girvi", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch girvi entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Girvi entries fetched", "girvi": entries})
}

// --- GET: girvi entries for one customer ---
func GetGirviByCustomer(c *gin.Context) {
	var entries []models.Girvi
	if err := database.DB.Where("customer_id = ?", c.Param("id")).Find(&entries).Error; err != nil {
		logging.LogError("handlers", "GetGirviByCustomer", "list by customer", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch girvi entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Girvi entries fetched", "girvi": entries})
}

// --- DELETE: soft-delete a girvi entry ---
func RemoveGirvi(c *gin.Context) {
	id := c.Param("id")

	var girvi models.Girvi
	if err := database.DB.First(&girvi, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Girvi not found"})
		return
	}

	if err := database.DB.Delete(&girvi).Error; err != nil {
		logging.LogError("handlers", "RemoveGirvi", "soft delete", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove girvi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Girvi removed"})
}
