package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/inkwell/internal/middleware"
	"github.com/example/inkwell/internal/models"
	"github.com/example/inkwell/internal/services"
	"github.com/example/inkwell/internal/utils"
)

// OrderHandler manages retail order endpoints.
type OrderHandler struct {
	db       *gorm.DB
	telegram *services.TelegramService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, telegram *services.TelegramService) *OrderHandler {
	return &OrderHandler{db: db, telegram: telegram}
}

type orderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type createOrderRequest struct {
	CollectionMethod string             `json:"collection_method"`
	Tax              float64            `json:"tax"`
	Notes            string             `json:"notes"`
	Items            []orderItemRequest `json:"items"`
}

// CreateOrder places an order at checkout for the authenticated user. Totals
// are computed server side so total always equals subtotal plus tax, and the
// order number is allocated from an atomic counter inside the insert
// transaction.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid session")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if len(req.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "order must contain at least one item")
	}
	if !models.ValidCollectionMethod(req.CollectionMethod) {
		return fiber.NewError(fiber.StatusBadRequest, "collection_method must be pickup or delivery")
	}
	if req.Tax < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "tax must not be negative")
	}

	order := models.Order{
		UserID:           userID,
		Status:           models.OrderStatusPending,
		PaymentStatus:    models.PaymentStatusPending,
		CollectionMethod: req.CollectionMethod,
		PlacedAt:         time.Now(),
		Tax:              req.Tax,
		Notes:            req.Notes,
	}

	var subtotal float64
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "item quantity must be at least 1")
		}

		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid product_id")
		}

		var product models.Product
		if err := h.db.First(&product, "id = ?", productID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusBadRequest, "unknown product in order")
			}
			return err
		}

		line := snapshotOrderItem(product, item.Quantity)
		subtotal += line.LineTotal
		order.Items = append(order.Items, line)
	}

	order.Subtotal = subtotal
	order.Total = subtotal + order.Tax

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		number, err := allocateOrderNumber(tx)
		if err != nil {
			return err
		}
		order.OrderNumber = number
		return tx.Create(&order).Error
	}); err != nil {
		return err
	}

	go h.notifyNewOrder(order, claims.Name, claims.Email)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

// snapshotOrderItem freezes a line item from the catalog record. The unit
// price always comes from the catalog; nothing client-supplied can change it,
// and later catalog edits must not rewrite history.
func snapshotOrderItem(product models.Product, quantity int) models.OrderItem {
	return models.OrderItem{
		ProductID:   &product.ID,
		ProductName: product.Name,
		SKU:         product.SKU,
		Quantity:    quantity,
		UnitPrice:   product.Price,
		LineTotal:   product.Price * float64(quantity),
	}
}

// allocateOrderNumber reserves the next sequence value within tx and formats
// it as ORD-NNN (zero padded to at least three digits).
func allocateOrderNumber(tx *gorm.DB) (string, error) {
	var seq models.OrderSequence
	err := tx.Raw(
		"UPDATE order_sequences SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1 AS next_val",
	).Scan(&seq).Error
	if err != nil {
		return "", err
	}
	if seq.NextVal == 0 {
		return "", fmt.Errorf("order sequence row missing")
	}
	return FormatOrderNumber(seq.NextVal), nil
}

// FormatOrderNumber renders a sequence value as a human-readable order number.
func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("ORD-%03d", n)
}

func (h *OrderHandler) notifyNewOrder(order models.Order, customerName, customerEmail string) {
	if h.telegram == nil {
		return
	}

	items := make([]services.OrderItemNotification, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, services.OrderItemNotification{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Price:    item.UnitPrice,
		})
	}

	err := h.telegram.NotifyNewOrder(services.OrderNotification{
		OrderNumber:      order.OrderNumber,
		Items:            items,
		Subtotal:         order.Subtotal,
		Tax:              order.Tax,
		Total:            order.Total,
		CustomerName:     customerName,
		CustomerEmail:    customerEmail,
		CollectionMethod: order.CollectionMethod,
	})
	if err != nil {
		log.Printf("[Order] Telegram notification failed for %s: %v", order.OrderNumber, err)
	}
}

// ListOrders returns orders for the authenticated user.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Order{}).Where("user_id = ?", claims.UserID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("placed_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       orders,
		"pagination": pg.Meta(total),
	})
}

// GetOrder returns a single order belonging to the authenticated user.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.Preload("Items").
		First(&order, "id = ? AND user_id = ?", id, claims.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// ListAllOrders returns every order with pagination, search, status and date
// filters. Admin only.
func (h *OrderHandler) ListAllOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Order{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if payment := c.Query("payment_status"); payment != "" {
		query = query.Where("payment_status = ?", payment)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("order_number ILIKE ?", "%"+search+"%")
	}
	if from := c.Query("from"); from != "" {
		if ts, err := time.Parse(time.RFC3339, from); err == nil {
			query = query.Where("placed_at >= ?", ts)
		}
	}
	if to := c.Query("to"); to != "" {
		if ts, err := time.Parse(time.RFC3339, to); err == nil {
			query = query.Where("placed_at <= ?", ts)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("Items").Preload("User").
		Order("placed_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       orders,
		"pagination": pg.Meta(total),
	})
}

type updateOrderRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// UpdateOrder transitions order status or payment status. Admin only.
func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Status == "" && req.PaymentStatus == "" {
		return fiber.NewError(fiber.StatusBadRequest, "nothing to update")
	}
	if req.Status != "" && !models.ValidOrderStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown order status")
	}
	if req.PaymentStatus != "" && !models.ValidPaymentStatus(req.PaymentStatus) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown payment status")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	updates := map[string]any{}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.PaymentStatus != "" {
		updates["payment_status"] = req.PaymentStatus
	}

	if err := h.db.Model(&order).Updates(updates).Error; err != nil {
		return err
	}

	if err := h.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// DeleteOrder removes an order. Admin only.
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, "id = ?", id).Error
	}); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
