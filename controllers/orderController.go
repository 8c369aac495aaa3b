package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tablerunner-api/config"
	"tablerunner-api/models"
	"tablerunner-api/pos"
	"tablerunner-api/services"
	"tablerunner-api/utils"
)

type orderLineInput struct {
	ItemID      *string  `json:"item_id"`
	Name        *string  `json:"name"`
	Quantity    int      `json:"quantity" binding:"required,gt=0"`
	CustomPrice *float64 `json:"custom_price"`
}

type orderInput struct {
	CustomerName  *string          `json:"customer_name"`
	TableGroup    *string          `json:"table_group"`
	TableNumber   *string          `json:"table_number"`
	PaymentMethod *string          `json:"payment_method" binding:"omitempty,oneof=cash online"`
	DiscountType  string           `json:"discount_type" binding:"omitempty,oneof=fixed percentage"`
	DiscountValue float64          `json:"discount_value" binding:"omitempty,gte=0"`
	Items         []orderLineInput `json:"items" binding:"required,min=1"`
}

// buildCart turns the request payload into cart state. Catalog lines take
// their price and name from the owner's menu so a tampered client price
// never reaches the order; one-off lines are validated by the cart itself.
func buildCart(ownerID uuid.UUID, input orderInput) (*pos.Cart, error) {
	cart := pos.NewCart()

	for _, line := range input.Items {
		if line.ItemID != nil && *line.ItemID != "" {
			var item models.MenuItem
			if err := config.DB.Where("id = ? AND owner_id = ?", *line.ItemID, ownerID).First(&item).Error; err != nil {
				return nil, errors.New("Menu item " + *line.ItemID + " not found")
			}
			price := item.Price
			if line.CustomPrice != nil && *line.CustomPrice >= 0 {
				price = *line.CustomPrice
			}
			cart.AddCatalogItem(item.ID.String(), item.Name, price)
			if line.Quantity > 1 {
				cart.AdjustQuantity(item.ID.String(), line.Quantity-1)
			}
			continue
		}

		if line.Name == nil || line.CustomPrice == nil {
			return nil, errors.New("One-off items need a name and a price")
		}
		added, err := cart.AddOneOffItem(*line.Name, *line.CustomPrice)
		if err != nil {
			return nil, err
		}
		if line.Quantity > 1 {
			cart.AdjustQuantity(added.ID, line.Quantity-1)
		}
	}

	cart.CustomerName = input.CustomerName
	cart.TableGroup = input.TableGroup
	cart.TableNumber = input.TableNumber
	cart.PaymentMethod = input.PaymentMethod

	if input.DiscountType != "" {
		cart.SetDiscountType(input.DiscountType)
	}
	cart.SetDiscountValue(input.DiscountValue)

	return cart, nil
}

func receiptFromOrder(order *models.Order, discountType string, discountValue float64) pos.Receipt {
	lines := make([]pos.ReceiptLine, 0, len(order.Items))
	for _, it := range order.Items {
		lines = append(lines, pos.ReceiptLine{
			Name:      it.DisplayName(),
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
			Total:     it.Total,
		})
	}

	table := utils.GetStringValue(order.TableNumber)
	return pos.Receipt{
		Merchant:      pos.MerchantFromEnv(),
		OrderNumber:   order.OrderNumber,
		CreatedAt:     order.CreatedAt,
		CustomerName:  utils.GetStringValue(order.CustomerName),
		Table:         table,
		PaymentMethod: utils.GetStringValue(order.PaymentMethod),
		Lines:         lines,
		Subtotal:      order.Subtotal,
		Discount:      order.Discount,
		DiscountType:  discountType,
		DiscountValue: discountValue,
		Total:         order.Total,
	}
}

// Create a new order; ?print=true also returns the rendered receipt built
// from the order number the save assigned.
func CreateOrder(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var input orderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := buildCart(*ownerID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.NewOrderService(config.DB).Create(*ownerID, cart, ownerID, c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{
		"message": "Order #" + strconv.Itoa(order.OrderNumber) + " has been saved successfully.",
		"order":   order,
	}

	if c.Query("print") == "true" {
		receipt := receiptFromOrder(order, cart.DiscountType(), cart.DiscountValue())
		html, err := receipt.RenderHTML()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		response["receipt_html"] = html
	}

	c.JSON(http.StatusCreated, response)
}

type orderWithPolicy struct {
	models.Order
	CanEdit bool `json:"can_edit"`
}

// Get all orders for the signed-in owner, newest order number first.
func GetOrders(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	p := utils.NewPagination(page, pageSize)

	query := config.DB.Model(&models.Order{}).Where("owner_id = ?", *ownerID)

	if filterDate := c.Query("date"); filterDate != "" {
		start, err := time.Parse("2006-01-02", filterDate)
		if err == nil {
			query = query.Where("created_at >= ? AND created_at < ?", start, start.Add(24*time.Hour))
		}
	}
	if number := c.Query("order_number"); number != "" {
		query = query.Where("order_number = ?", number)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var orders []models.Order
	if err := query.Preload("Items.MenuItem").
		Order("order_number DESC").
		Offset(p.Offset).
		Limit(p.PageSize).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	data := make([]orderWithPolicy, 0, len(orders))
	for _, o := range orders {
		data = append(data, orderWithPolicy{
			Order:   o,
			CanEdit: pos.CanEdit(o.Closed, o.CreatedAt, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data": data,
		"meta": utils.BuildPageMeta(p.Page, p.PageSize, total),
	})
}

func GetOrderByID(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var order models.Order
	if err := config.DB.Preload("Items.MenuItem").
		Where("id = ? AND owner_id = ?", c.Param("id"), *ownerID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, orderWithPolicy{
		Order:   order,
		CanEdit: pos.CanEdit(order.Closed, order.CreatedAt, time.Now()),
	})
}

// Update replaces the order's items wholesale and recomputes totals.
func UpdateOrder(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var input orderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := buildCart(*ownerID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.NewOrderService(config.DB).Update(orderID, *ownerID, cart, ownerID, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrOrderClosed), errors.Is(err, services.ErrEditWindowExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order #" + strconv.Itoa(order.OrderNumber) + " updated successfully.",
		"order":   order,
	})
}

// GetOrderReceipt renders the printable receipt for a persisted order.
func GetOrderReceipt(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var order models.Order
	if err := config.DB.Preload("Items.MenuItem").
		Where("id = ? AND owner_id = ?", c.Param("id"), *ownerID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	// persisted rows only keep the absolute discount, so the label is currency
	receipt := receiptFromOrder(&order, pos.DiscountFixed, order.Discount)
	html, err := receipt.RenderHTML()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// GetNextOrderNumber previews the next number for display on the order
// panel. The save itself re-derives the number transactionally.
func GetNextOrderNumber(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	next, err := services.NewOrderService(config.DB).NextOrderNumber(*ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"next_order_number": next})
}
