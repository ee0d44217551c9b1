package handlers

import (
	"net/http"

	"girvi-backend/internal/database"
	"girvi-backend/internal/logging"
	"girvi-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type FirmRequest struct {
	Name     string `form:"name" binding:"required"`
	Location string `form:"location" binding:"required"`
	Size     string `form:"size"`
}

// --- POST: create a firm (multipart, optional 'logo' file) ---
func CreateFirm(c *gin.Context) {
	var input FirmRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid required fields"})
		return
	}

	logoPath, err := optionalUpload(c, "logo")
	if err != nil {
		logging.LogError("handlers", "CreateFirm", "save logo", input.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save logo"})
		return
	}

	firm := models.Firm{
		Name:     input.Name,
		Location: input.Location,
		Size:     input.Size,
		OwnerID:  c.MustGet("userID").(uint),
		LogoPath: logoPath,
	}

	if err := database.DB.Create(&firm).Error; err != nil {
		logging.LogError("handlers", "CreateFirm", "create firm", input.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create firm"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Firm created", "firm": firm})
}

// --- GET: list all active firms ---
func GetAllFirms(c *gin.Context) {
	var firms []models.Firm
	if err := database.DB.Find(&firms).Error; err != nil {
		logging.LogError("handlers", "GetAllFirms", "list firms", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch firms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Firms fetched", "firms": firms})
}

// --- DELETE: soft-delete a firm ---
func RemoveFirm(c *gin.Context) {
	id := c.Param("id")

	var firm models.Firm
	if err := database.DB.First(&firm, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Firm not found"})
		return
	}

	if err := database.DB.Delete(&firm).Error; err != nil {
		logging.LogError("handlers", "RemoveFirm", "soft delete", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove firm"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Firm removed"})
}
