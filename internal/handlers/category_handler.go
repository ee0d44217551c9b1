package handlers

import (
	"net/http"

	"girvi-backend/internal/database"
	"girvi-backend/internal/logging"
	"girvi-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
}

// --- POST: create a stock category (multipart, optional 'image') ---
func CreateCategory(c *gin.Context) {
	var input CategoryRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid required fields"})
		return
	}

	imagePath, err := optionalUpload(c, "image")
	if err != nil {
		logging.LogError("handlers", "CreateCategory", "save image", input.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save image"})
		return
	}

	category := models.StockCategory{
		Name:        input.Name,
		Description: input.Description,
		ImagePath:   imagePath,
	}

	if err := database.DB.Create(&category).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category name already exists"})
			return
		}
		logging.LogError("handlers", "CreateCategory", "create category", input.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// --- GET: list all active categories ---
func GetAllCategories(c *gin.Context) {
	var categories []models.StockCategory
	if err := database.DB.Find(&categories).Error; err != nil {
		logging.LogError("handlers", "GetAllCategories", "list categories", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Categories fetched", "categories": categories})
}

// --- DELETE: soft-delete a category ---
func RemoveCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.StockCategory
	if err := database.DB.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		logging.LogError("handlers", "RemoveCategory", "soft delete", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category removed"})
}
