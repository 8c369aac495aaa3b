package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tablerunner-api/config"
	"tablerunner-api/models"
	"tablerunner-api/utils"
)

type TopItem struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Sales    float64 `json:"sales"`
}

type DayTrend struct {
	Date   string  `json:"date"`
	Orders int64   `json:"orders"`
	Sales  float64 `json:"sales"`
}

// GetDashboard summarizes the signed-in owner's sales.
func GetDashboard(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var totalSales float64
	var totalOrders int64

	config.DB.Model(&models.Order{}).
		Where("owner_id = ?", *ownerID).
		Count(&totalOrders)

	config.DB.Model(&models.Order{}).
		Where("owner_id = ?", *ownerID).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalSales)

	todayStart := time.Now().UTC().Truncate(24 * time.Hour)

	var todaySales float64
	var todayOrders int64

	config.DB.Model(&models.Order{}).
		Where("owner_id = ? AND created_at >= ?", *ownerID, todayStart).
		Count(&todayOrders)

	config.DB.Model(&models.Order{}).
		Where("owner_id = ? AND created_at >= ?", *ownerID, todayStart).
		Select("COALESCE(SUM(total), 0)").
		Scan(&todaySales)

	avgOrderValue := 0.0
	if totalOrders > 0 {
		avgOrderValue = totalSales / float64(totalOrders)
	}

	// Top selling items, one-off lines grouped under their snapshot name
	var topItems []TopItem
	config.DB.Model(&models.OrderItem{}).
		Select("COALESCE(menu_items.name, order_items.name) as name, SUM(order_items.quantity) as quantity, SUM(order_items.total) as sales").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("LEFT JOIN menu_items ON menu_items.id = order_items.item_id").
		Where("orders.owner_id = ? AND orders.deleted_at IS NULL", *ownerID).
		Group("COALESCE(menu_items.name, order_items.name)").
		Order("quantity DESC").
		Limit(5).
		Scan(&topItems)

	// 7-day order/sales trend, oldest day first
	trends := make([]DayTrend, 0, 7)
	for i := 6; i >= 0; i-- {
		dayStart := todayStart.AddDate(0, 0, -i)
		dayEnd := dayStart.Add(24 * time.Hour)

		var dayOrders int64
		var daySales float64

		config.DB.Model(&models.Order{}).
			Where("owner_id = ? AND created_at >= ? AND created_at < ?", *ownerID, dayStart, dayEnd).
			Count(&dayOrders)

		config.DB.Model(&models.Order{}).
			Where("owner_id = ? AND created_at >= ? AND created_at < ?", *ownerID, dayStart, dayEnd).
			Select("COALESCE(SUM(total), 0)").
			Scan(&daySales)

		trends = append(trends, DayTrend{
			Date:   dayStart.Format("Jan 02"),
			Orders: dayOrders,
			Sales:  daySales,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total_sales":       totalSales,
		"total_orders":      totalOrders,
		"today_sales":       todaySales,
		"today_orders":      todayOrders,
		"avg_order_value":   avgOrderValue,
		"top_selling_items": topItems,
		"order_trends":      trends,
	})
}
