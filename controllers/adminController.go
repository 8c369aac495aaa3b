package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tablerunner-api/config"
	"tablerunner-api/models"
	"tablerunner-api/utils"
)

// GetOwners lists restaurant owners for the approval panel.
// ?status=pending|approved|rejected filters; ?search matches email, name,
// contact, hotel name or location.
func GetOwners(c *gin.Context) {
	query := config.DB.Model(&models.User{}).Where("role = ?", "owner")

	status := c.DefaultQuery("status", "approved")
	query = query.Where("approval_status = ?", status)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(email) LIKE ? OR LOWER(full_name) LIKE ? OR contact_no LIKE ? OR LOWER(hotel_name) LIKE ? OR LOWER(hotel_location) LIKE ?",
			like, like, like, like, like,
		)
	}

	var owners []models.User
	if err := query.Order("created_at DESC").Find(&owners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": owners, "count": len(owners)})
}

func ApproveOwner(c *gin.Context) {
	setApprovalStatus(c, "approved", "Restaurant owner approved")
}

func RejectOwner(c *gin.Context) {
	setApprovalStatus(c, "rejected", "Restaurant owner rejected")
}

func setApprovalStatus(c *gin.Context, status, message string) {
	adminID := utils.GetUserID(c)

	var owner models.User
	if err := config.DB.Where("id = ? AND role = ?", c.Param("id"), "owner").First(&owner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Owner not found"})
		return
	}

	now := time.Now()
	owner.ApprovalStatus = status
	owner.ApprovedAt = &now
	owner.ApprovedBy = adminID

	if err := config.DB.Save(&owner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "owner": owner})
}

// GetAdminAnalytics reports platform activity: order and owner counts,
// a 7-day trend, and the most ordered items across all owners.
func GetAdminAnalytics(c *gin.Context) {
	var totalOrders int64
	config.DB.Model(&models.Order{}).Count(&totalOrders)

	todayStart := time.Now().UTC().Truncate(24 * time.Hour)

	var ordersToday int64
	config.DB.Model(&models.Order{}).
		Where("created_at >= ?", todayStart).
		Count(&ordersToday)

	// owners with at least one order
	var activeOwners int64
	config.DB.Model(&models.Order{}).
		Distinct("owner_id").
		Count(&activeOwners)

	var activeOwnersToday int64
	config.DB.Model(&models.Order{}).
		Where("created_at >= ?", todayStart).
		Distinct("owner_id").
		Count(&activeOwnersToday)

	var pendingOwners int64
	config.DB.Model(&models.User{}).
		Where("role = ? AND approval_status = ?", "owner", "pending").
		Count(&pendingOwners)

	trends := make([]DayTrend, 0, 7)
	for i := 6; i >= 0; i-- {
		dayStart := todayStart.AddDate(0, 0, -i)
		dayEnd := dayStart.Add(24 * time.Hour)

		var dayOrders int64
		config.DB.Model(&models.Order{}).
			Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
			Count(&dayOrders)

		trends = append(trends, DayTrend{Date: dayStart.Format("Jan 02"), Orders: dayOrders})
	}

	var popularItems []TopItem
	config.DB.Model(&models.OrderItem{}).
		Select("COALESCE(menu_items.name, order_items.name) as name, SUM(order_items.quantity) as quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("LEFT JOIN menu_items ON menu_items.id = order_items.item_id").
		Where("orders.deleted_at IS NULL").
		Group("COALESCE(menu_items.name, order_items.name)").
		Order("quantity DESC").
		Limit(10).
		Scan(&popularItems)

	c.JSON(http.StatusOK, gin.H{
		"total_orders":        totalOrders,
		"orders_today":        ordersToday,
		"active_owners":       activeOwners,
		"active_owners_today": activeOwnersToday,
		"pending_owners":      pendingOwners,
		"order_trends":        trends,
		"popular_items":       popularItems,
	})
}
