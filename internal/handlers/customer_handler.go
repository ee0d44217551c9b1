package handlers

import (
	"net/http"

	"girvi-backend/internal/database"
	"girvi-backend/internal/logging"
	"girvi-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Contact string `json:"contact" binding:"required"`
	FirmID  uint   `json:"firm_id" binding:"required"`
	Address string `json:"address"`
}

// --- POST: create a customer ---
func CreateCustomer(c *gin.Context) {
	var input CustomerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid required fields"})
		return
	}

	var firm models.Firm
	if err := database.DB.First(&firm, input.FirmID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Firm not found"})
		return
	}

	customer := models.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Contact: input.Contact,
		FirmID:  input.FirmID,
		Address: input.Address,
	}

	if err := database.DB.Create(&customer).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email or contact already registered"})
			return
		}
		logging.LogError("handlers", "CreateCustomer", "create customer", input.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Customer created", "customer": customer})
}

// --- GET: list all active customers ---
func GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := database.DB.Find(&customers).Error; err != nil {
		logging.LogError("handlers", "GetAllCustomers", "list customers", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customers fetched", "customers": customers})
}

// --- GET: customers of one firm ---
func GetCustomersByFirm(c *gin.Context) {
	var customers []models.Customer
	if err := database.DB.Where("firm_id = ?", c.Param("id")).Find(&customers).Error; err != nil {
		logging.LogError("handlers", "GetCustomersByFirm", "list by firm", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customers fetched", "customers": customers})
}

// --- DELETE: soft-delete a customer ---
func RemoveCustomer(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	if err := database.DB.Delete(&customer).Error; err != nil {
		logging.LogError("handlers", "RemoveCustomer", "soft delete", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer removed"})
}
