package utils

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tablerunner-api/models"
)

func toJSONString(v interface{}) *string {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

// CreateOrderAuditLog records an order mutation inside the caller's
// transaction so the audit row commits or rolls back with the change.
func CreateOrderAuditLog(
	db *gorm.DB,
	action string,
	entityID uuid.UUID,
	oldOrder, newOrder *models.Order,
	userID *uuid.UUID,
	ipAddress string,
	description string,
) error {
	auditLog := models.AuditLog{
		EntityType:  "order",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		Changes:     calculateOrderChanges(action, oldOrder, newOrder),
		IPAddress:   &ipAddress,
		Description: description,
	}
	if oldOrder != nil {
		auditLog.OldValue = toJSONString(oldOrder)
	}
	if newOrder != nil {
		auditLog.NewValue = toJSONString(newOrder)
	}
	return db.Create(&auditLog).Error
}

func calculateOrderChanges(action string, oldOrder, newOrder *models.Order) *string {
	if action != "update" || oldOrder == nil || newOrder == nil {
		return nil
	}

	changes := make(map[string]interface{})

	if oldOrder.Subtotal != newOrder.Subtotal {
		changes["subtotal"] = map[string]float64{"old": oldOrder.Subtotal, "new": newOrder.Subtotal}
	}
	if oldOrder.Discount != newOrder.Discount {
		changes["discount"] = map[string]float64{"old": oldOrder.Discount, "new": newOrder.Discount}
	}
	if oldOrder.Total != newOrder.Total {
		changes["total"] = map[string]float64{"old": oldOrder.Total, "new": newOrder.Total}
	}
	if oldOrder.Closed != newOrder.Closed {
		changes["closed"] = map[string]bool{"old": oldOrder.Closed, "new": newOrder.Closed}
	}
	if GetStringValue(oldOrder.TableNumber) != GetStringValue(newOrder.TableNumber) {
		changes["table_number"] = map[string]string{
			"old": GetStringValue(oldOrder.TableNumber),
			"new": GetStringValue(newOrder.TableNumber),
		}
	}
	if GetStringValue(oldOrder.CustomerName) != GetStringValue(newOrder.CustomerName) {
		changes["customer_name"] = map[string]string{
			"old": GetStringValue(oldOrder.CustomerName),
			"new": GetStringValue(newOrder.CustomerName),
		}
	}

	if len(changes) == 0 {
		return nil
	}
	return toJSONString(changes)
}

// CreateMenuItemAuditLog records a menu mutation in the caller's transaction.
func CreateMenuItemAuditLog(
	db *gorm.DB,
	action string,
	entityID uuid.UUID,
	oldItem, newItem *models.MenuItem,
	userID *uuid.UUID,
	ipAddress string,
	description string,
) error {
	auditLog := models.AuditLog{
		EntityType:  "menu_item",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		IPAddress:   &ipAddress,
		Description: description,
	}
	if oldItem != nil {
		auditLog.OldValue = toJSONString(oldItem)
	}
	if newItem != nil {
		auditLog.NewValue = toJSONString(newItem)
	}
	return db.Create(&auditLog).Error
}
