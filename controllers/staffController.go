package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tablerunner-api/config"
	"tablerunner-api/models"
	"tablerunner-api/utils"
)

func GetStaff(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var staff []models.StaffRecord
	if err := config.DB.Where("owner_id = ?", *ownerID).Order("name").Find(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, staff)
}

func CreateStaff(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var input struct {
		Name   string  `json:"name" binding:"required"`
		Role   *string `json:"role"`
		Salary float64 `json:"salary" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff := models.StaffRecord{
		OwnerID: *ownerID,
		Name:    input.Name,
		Role:    input.Role,
		Salary:  input.Salary,
	}
	if err := config.DB.Create(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// UpdateStaff adjusts salary, advances and monthly payment state.
func UpdateStaff(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var staff models.StaffRecord
	if err := config.DB.Where("id = ? AND owner_id = ?", c.Param("id"), *ownerID).First(&staff).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff record not found"})
		return
	}

	var input struct {
		Name                *string  `json:"name"`
		Role                *string  `json:"role"`
		Salary              *float64 `json:"salary"`
		Advance             *float64 `json:"advance"`
		Reduced             *float64 `json:"reduced"`
		ReduceNextMonth     *bool    `json:"reduce_next_month"`
		PaidThisMonth       *bool    `json:"paid_this_month"`
		PaidThisMonthAmount *float64 `json:"paid_this_month_amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		staff.Name = *input.Name
	}
	if input.Role != nil {
		staff.Role = input.Role
	}
	if input.Salary != nil && *input.Salary >= 0 {
		staff.Salary = *input.Salary
	}
	if input.Advance != nil && *input.Advance >= 0 {
		staff.Advance = *input.Advance
	}
	if input.Reduced != nil && *input.Reduced >= 0 {
		staff.Reduced = *input.Reduced
	}
	if input.ReduceNextMonth != nil {
		staff.ReduceNextMonth = *input.ReduceNextMonth
	}
	if input.PaidThisMonth != nil {
		staff.PaidThisMonth = *input.PaidThisMonth
		if !*input.PaidThisMonth {
			staff.PaidThisMonthAmount = nil
		}
	}
	if input.PaidThisMonthAmount != nil {
		staff.PaidThisMonthAmount = input.PaidThisMonthAmount
	}

	if err := config.DB.Save(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, staff)
}

func DeleteStaff(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var staff models.StaffRecord
	if err := config.DB.Where("id = ? AND owner_id = ?", c.Param("id"), *ownerID).First(&staff).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff record not found"})
		return
	}
	if err := config.DB.Delete(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff record deleted"})
}
