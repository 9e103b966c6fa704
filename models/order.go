package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment status constants
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Payment method constants
const (
	PaymentMethodCOD      = "cod"
	PaymentMethodUPI      = "upi"
	PaymentMethodRazorpay = "razorpay"
)

type Order struct {
	ID                uint    `json:"id" gorm:"primaryKey"`
	CustomerID        uint    `json:"customer_id"`
	Customer          Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Subtotal          float64 `json:"subtotal"`
	Tax               float64 `json:"tax"`
	ShippingCost      float64 `json:"shipping_cost"`
	Total             float64 `json:"total"`
	Status            string  `json:"status"`
	PaymentStatus     string  `json:"payment_status"`
	PaymentMethod     string  `json:"payment_method"`
	UPIID             string  `json:"upi_id,omitempty"`
	RazorpayOrderID   string  `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string  `json:"razorpay_payment_id,omitempty"`
	ShippingAddressID uint    `json:"shipping_address_id"`
	ShippingAddress   Address `json:"shipping_address,omitempty" gorm:"foreignKey:ShippingAddressID"`
	BillingAddressID  uint    `json:"billing_address_id"`
	BillingAddress    Address `json:"billing_address,omitempty" gorm:"foreignKey:BillingAddressID"`
	TrackingNumber    *string `json:"tracking_number,omitempty"`
	// Client-supplied key used to collapse duplicate submissions of the
	// same checkout into one order. Nullable so old rows stay valid.
	IdempotencyKey *string     `json:"idempotency_key,omitempty" gorm:"uniqueIndex"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	Items          []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem snapshots price, size and color at purchase time so later
// product edits do not alter historical orders. ProductID is a weak
// reference into the catalog.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}
