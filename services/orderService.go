package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tablerunner-api/models"
	"tablerunner-api/pos"
	"tablerunner-api/utils"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderClosed       = errors.New("order has been closed because a new order was created for the same table")
	ErrEditWindowExpired = errors.New("orders older than 12 hours cannot be edited")
	ErrEmptyOrder        = errors.New("order has no items")
)

type OrderService interface {
	Create(ownerID uuid.UUID, cart *pos.Cart, actor *uuid.UUID, ip string) (*models.Order, error)
	Update(orderID, ownerID uuid.UUID, cart *pos.Cart, actor *uuid.UUID, ip string) (*models.Order, error)
	NextOrderNumber(ownerID uuid.UUID) (int, error)
}

type orderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

// NextOrderNumber previews the number the next save would assign. The
// authoritative assignment happens inside Create's transaction; this value
// is display-only and may be stale by the time the order is saved.
func (s *orderService) NextOrderNumber(ownerID uuid.UUID) (int, error) {
	var max int
	err := s.db.Model(&models.Order{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(MAX(order_number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read max order number: %w", err)
	}
	return max + 1, nil
}

// Create converts a built cart into a durable order with its lines. The
// whole sequence runs in one transaction: closing any open order on the
// same table, assigning order_number from a locked MAX read, and inserting
// the order plus its lines either all commit or all roll back.
func (s *orderService) Create(ownerID uuid.UUID, cart *pos.Cart, actor *uuid.UUID, ip string) (*models.Order, error) {
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyOrder
	}

	order := models.Order{
		OwnerID:       ownerID,
		Subtotal:      cart.Subtotal(),
		Discount:      cart.DiscountAmount(),
		Total:         cart.Total(),
		CustomerName:  cart.CustomerName,
		TableGroup:    cart.TableGroup,
		TableNumber:   cart.TableNumber,
		PaymentMethod: cart.PaymentMethod,
		Closed:        false,
	}

	items, err := buildOrderItems(cart.Lines)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// At most one open order per (owner, table): supersede the old one.
		if cart.TableNumber != nil && *cart.TableNumber != "" {
			if err := tx.Model(&models.Order{}).
				Where("owner_id = ? AND table_number = ? AND closed = ?", ownerID, *cart.TableNumber, false).
				Update("closed", true).Error; err != nil {
				return fmt.Errorf("failed to close prior table orders: %w", err)
			}
		}

		var max int
		if err := tx.Model(&models.Order{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ?", ownerID).
			Select("COALESCE(MAX(order_number), 0)").
			Scan(&max).Error; err != nil {
			return fmt.Errorf("failed to assign order number: %w", err)
		}
		order.OrderNumber = max + 1
		order.Items = items

		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		description := fmt.Sprintf("Order #%d created", order.OrderNumber)
		return utils.CreateOrderAuditLog(tx, "create", order.ID, nil, &order, actor, ip, description)
	})
	if err != nil {
		return nil, err
	}

	return s.reload(order.ID)
}

// Update replaces an order's lines wholesale and recomputes totals. The
// edit window policy is enforced here, not just in the UI: a closed order
// or one past the window is rejected before any row is touched.
func (s *orderService) Update(orderID, ownerID uuid.UUID, cart *pos.Cart, actor *uuid.UUID, ip string) (*models.Order, error) {
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyOrder
	}

	var existing models.Order
	if err := s.db.Where("id = ? AND owner_id = ?", orderID, ownerID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if existing.Closed {
		return nil, ErrOrderClosed
	}
	if !pos.CanEdit(existing.Closed, existing.CreatedAt, time.Now()) {
		return nil, ErrEditWindowExpired
	}

	items, err := buildOrderItems(cart.Lines)
	if err != nil {
		return nil, err
	}

	oldCopy := existing

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}

		for i := range items {
			items[i].OrderID = orderID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to insert order items: %w", err)
		}

		existing.Subtotal = cart.Subtotal()
		existing.Discount = cart.DiscountAmount()
		existing.Total = cart.Total()
		existing.CustomerName = cart.CustomerName
		existing.TableGroup = cart.TableGroup
		existing.TableNumber = cart.TableNumber
		existing.PaymentMethod = cart.PaymentMethod

		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}

		description := fmt.Sprintf("Order #%d updated", existing.OrderNumber)
		return utils.CreateOrderAuditLog(tx, "update", existing.ID, &oldCopy, &existing, actor, ip, description)
	})
	if err != nil {
		return nil, err
	}

	return s.reload(orderID)
}

func (s *orderService) reload(orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items.MenuItem").First(&order, "id = ?", orderID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}
	return &order, nil
}

// buildOrderItems maps cart lines to order item rows. One-off lines store
// a NULL item_id and the inline name; catalog lines store the menu item id
// and leave the name to be resolved by join.
func buildOrderItems(lines []pos.CartLine) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		item := models.OrderItem{
			Quantity: line.Quantity,
			Price:    line.UnitPrice,
			Total:    line.Total,
		}
		if pos.IsOneOff(line.ID) {
			name := line.Name
			item.Name = &name
		} else {
			id, err := uuid.Parse(line.ID)
			if err != nil {
				return nil, fmt.Errorf("invalid menu item id %q", line.ID)
			}
			item.ItemID = &id
		}
		items = append(items, item)
	}
	return items, nil
}
