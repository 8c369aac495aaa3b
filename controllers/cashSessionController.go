package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tablerunner-api/config"
	"tablerunner-api/models"
	"tablerunner-api/utils"
)

func OpenCashSession(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var input struct {
		OpeningCash float64 `json:"opening_cash" binding:"required,gte=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.CashSession
	if err := config.DB.Where("owner_id = ? AND status = 'open'", *ownerID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A cash session is already open"})
		return
	}

	session := models.CashSession{
		OwnerID:     *ownerID,
		OpeningCash: input.OpeningCash,
		Status:      "open",
		OpenedAt:    time.Now(),
	}
	if err := config.DB.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

func GetCurrentCashSession(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var session models.CashSession
	if err := config.DB.Where("owner_id = ? AND status = 'open'", *ownerID).
		First(&session).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No open cash session"})
		return
	}

	c.JSON(http.StatusOK, session)
}

// CloseCashSession reconciles the drawer: expected cash is the opening
// float plus every cash order taken while the session was open.
func CloseCashSession(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var input struct {
		ClosingCash float64 `json:"closing_cash" binding:"required,gte=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var session models.CashSession
	if err := config.DB.Where("owner_id = ? AND status = 'open'", *ownerID).
		First(&session).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No open cash session"})
		return
	}

	var totalCashIn float64
	config.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("owner_id = ? AND payment_method = 'cash' AND created_at BETWEEN ? AND ?",
			*ownerID, session.OpenedAt, time.Now()).
		Scan(&totalCashIn)

	expected := session.OpeningCash + totalCashIn
	diff := input.ClosingCash - expected

	now := time.Now()
	session.TotalCashIn = totalCashIn
	session.ExpectedCash = expected
	session.ClosingCash = &input.ClosingCash
	session.Difference = &diff
	session.Status = "closed"
	session.ClosedAt = &now

	if err := config.DB.Save(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}
