package models

import (
	"time"

	"github.com/google/uuid"
)

// Retail order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Collection methods.
const (
	CollectionPickup   = "pickup"
	CollectionDelivery = "delivery"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// ValidCollectionMethod reports whether s is a known collection method.
func ValidCollectionMethod(s string) bool {
	return s == CollectionPickup || s == CollectionDelivery
}

// Order is a retail order placed at checkout.
type Order struct {
	BaseModel
	UserID           uuid.UUID   `gorm:"type:uuid;index" json:"user_id"`
	User             *User       `json:"user,omitempty"`
	OrderNumber      string      `gorm:"uniqueIndex" json:"order_number"`
	Status           string      `gorm:"default:pending" json:"status"`
	PaymentStatus    string      `gorm:"default:pending" json:"payment_status"`
	CollectionMethod string      `json:"collection_method"`
	PlacedAt         time.Time   `json:"placed_at"`
	Subtotal         float64     `json:"subtotal"`
	Tax              float64     `json:"tax"`
	Total            float64     `json:"total"`
	Notes            string      `json:"notes"`
	Items            []OrderItem `json:"items,omitempty"`
}

// OrderItem is a line item with a snapshot of the product at purchase time.
type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID  `gorm:"type:uuid;index" json:"order_id"`
	ProductID   *uuid.UUID `gorm:"type:uuid" json:"product_id"`
	ProductName string     `json:"product_name"`
	SKU         string     `json:"sku"`
	Quantity    int        `json:"quantity"`
	UnitPrice   float64    `json:"unit_price"`
	LineTotal   float64    `json:"line_total"`
}

// OrderSequence is a single-row counter used to allocate order numbers
// atomically. Allocation runs inside the order-create transaction so
// concurrent checkouts can never be handed the same number.
type OrderSequence struct {
	ID      int   `gorm:"primaryKey" json:"id"`
	NextVal int64 `json:"next_val"`
}
