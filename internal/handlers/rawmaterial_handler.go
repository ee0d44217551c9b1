package handlers

import (
	"net/http"

	"girvi-backend/internal/database"
	"girvi-backend/internal/ledger"
	"girvi-backend/internal/logging"
	"girvi-backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RawMaterialRequest struct {
	Name         string  `form:"name" binding:"required"`
	MaterialType string  `form:"material_type" binding:"required,materialtype"`
	Weight       float64 `form:"weight" binding:"required,gt=0"`
	FirmID       uint    `form:"firm_id" binding:"required"`
}

type RestockRequest struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
}

// --- POST: create a raw material (multipart, optional 'image') ---
func CreateRawMaterial(c *gin.Context) {
	var input RawMaterialRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid required fields"})
		return
	}

	var firm models.Firm
	if err := database.DB.First(&firm, input.FirmID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Firm not found"})
		return
	}

	imagePath, err := optionalUpload(c, "image")
	if err != nil {
		logging.LogError("handlers", "CreateRawMaterial", "save image", input.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save image"})
		return
	}

	material := models.RawMaterial{
		Name:         input.Name,
		MaterialType: input.MaterialType,
		Code:         ledger.NewRawMaterialCode(),
		Weight:       input.Weight,
		FirmID:       input.FirmID,
		ImagePath:    imagePath,
	}

	if err := database.DB.Create(&material).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Material code already exists"})
			return
		}
		logging.LogError("handlers", "CreateRawMaterial", "create material", input.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create raw material"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Raw material created", "raw_material": material})
}

// --- GET: list all active raw materials ---
func GetAllRawMaterials(c *gin.Context) {
	var materials []models.RawMaterial
	if err := database.DB.Find(&materials).Error; err != nil {
		logging.LogError("handlers", "GetAllRawMaterials", "list materials", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch raw materials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Raw materials fetched", "raw_materials": materials})
}

// --- PUT: add weight to an existing raw material ---
// The increment runs as a single UPDATE so concurrent restocks don't
// clobber each other.
func RestockRawMaterial(c *gin.Context) {
	var input RestockRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Restock weight must be a positive number"})
		return
	}

	id := c.Param("id")
	var material models.RawMaterial
	if err := database.DB.First(&material, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Raw material not found"})
		return
	}

	if err := database.DB.Model(&material).
		Update("weight", gorm.Expr("weight + ?", input.Weight)).Error; err != nil {
		logging.LogError("handlers", "RestockRawMaterial", "increment weight", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to restock raw material"})
		return
	}

	// Re-read so the response carries the weight after the increment
	if err := database.DB.First(&material, id).Error; err != nil {
		logging.LogError("handlers", "RestockRawMaterial", "reload material", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to restock raw material"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Raw material restocked", "raw_material": material})
}

// --- DELETE: soft-delete a raw material ---
func RemoveRawMaterial(c *gin.Context) {
	id := c.Param("id")

	var material models.RawMaterial
	if err := database.DB.First(&material, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Raw material not found"})
		return
	}

	if err := database.DB.Delete(&material).Error; err != nil {
		logging.LogError("handlers", "RemoveRawMaterial", "soft delete", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove raw material"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Raw material removed"})
}
