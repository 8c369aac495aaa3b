package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tablerunner-api/config"
	"tablerunner-api/models"
	"tablerunner-api/utils"
)

// Expense tracker: supplier sections and their purchase receipts.

func GetExpenseSections(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var sections []models.ExpenseSection
	if err := config.DB.Where("owner_id = ?", *ownerID).Order("name").Find(&sections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sections)
}

func CreateExpenseSection(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var input struct {
		Name string   `json:"name" binding:"required"`
		Unit *string  `json:"unit"`
		Rate *float64 `json:"rate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section := models.ExpenseSection{
		OwnerID: *ownerID,
		Name:    input.Name,
		Unit:    input.Unit,
		Rate:    input.Rate,
	}
	if err := config.DB.Create(&section).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, section)
}

func DeleteExpenseSection(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var section models.ExpenseSection
	if err := config.DB.Where("id = ? AND owner_id = ?", c.Param("id"), *ownerID).First(&section).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	if err := config.DB.Delete(&section).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section deleted"})
}

func GetExpenseReceipts(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	query := config.DB.Where("owner_id = ?", *ownerID)
	if sectionID := c.Query("section_id"); sectionID != "" {
		query = query.Where("section_id = ?", sectionID)
	}

	var receipts []models.ExpenseReceipt
	if err := query.Order("date DESC").Find(&receipts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, receipts)
}

func CreateExpenseReceipt(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var input struct {
		SectionID  string   `json:"section_id" binding:"required,uuid"`
		SourceType string   `json:"source_type" binding:"omitempty,oneof=firm one-off"`
		SourceName string   `json:"source_name" binding:"required"`
		BillAmount float64  `json:"bill_amount" binding:"omitempty,gte=0"`
		Quantity   *float64 `json:"quantity"`
		Rate       *float64 `json:"rate"`
		Date       string   `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var section models.ExpenseSection
	if err := config.DB.Where("id = ? AND owner_id = ?", input.SectionID, *ownerID).First(&section).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	// quantity-billed sections compute the bill from quantity x rate
	bill := input.BillAmount
	if input.Quantity != nil && input.Rate != nil && *input.Quantity > 0 && *input.Rate > 0 {
		bill = *input.Quantity * *input.Rate
	}
	if bill <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bill amount must be positive"})
		return
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	sourceType := input.SourceType
	if sourceType == "" {
		sourceType = "firm"
	}

	receipt := models.ExpenseReceipt{
		OwnerID:    *ownerID,
		SectionID:  section.ID,
		SourceType: sourceType,
		SourceName: input.SourceName,
		BillAmount: bill,
		Quantity:   input.Quantity,
		Rate:       input.Rate,
		Date:       date,
	}
	if err := config.DB.Create(&receipt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

func MarkExpenseReceiptPaid(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var receipt models.ExpenseReceipt
	if err := config.DB.Where("id = ? AND owner_id = ?", c.Param("id"), *ownerID).First(&receipt).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}

	var input struct {
		Paid bool `json:"paid"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt.Paid = input.Paid
	if err := config.DB.Save(&receipt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func DeleteExpenseReceipt(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var receipt models.ExpenseReceipt
	if err := config.DB.Where("id = ? AND owner_id = ?", c.Param("id"), *ownerID).First(&receipt).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}
	if err := config.DB.Delete(&receipt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Receipt deleted"})
}
