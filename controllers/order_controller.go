package controllers

import (
	"strings"

	"github.com/Meera-417/VastraKart/config"
	"github.com/Meera-417/VastraKart/models"
	"github.com/Meera-417/VastraKart/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderCustomerInput carries the contact fields from the checkout form.
type OrderCustomerInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

// OrderAddressInput carries a structured shipping address. The storefront
// collects these as separate fields; no freeform address parsing happens
// server side.
type OrderAddressInput struct {
	Line1   string `json:"line1" binding:"required"`
	Line2   string `json:"line2"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zip_code" binding:"required"`
}

// OrderItemInput is one cart line. Price, size and color are snapshotted
// onto the order item as submitted.
type OrderItemInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}

// OrderPricingInput is the pricing breakdown computed at checkout.
type OrderPricingInput struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total" binding:"required"`
}

// PlaceOrderRequest is the body of POST /orders (COD/UPI checkout).
type PlaceOrderRequest struct {
	Customer       OrderCustomerInput `json:"customer" binding:"required"`
	Address        OrderAddressInput  `json:"address" binding:"required"`
	Items          []OrderItemInput   `json:"items" binding:"required,min=1,dive"`
	Pricing        OrderPricingInput  `json:"pricing" binding:"required"`
	PaymentMethod  string             `json:"payment_method"`
	UPIID          string             `json:"upi_id"`
	IdempotencyKey string             `json:"idempotency_key"`
}

// PlaceOrder handles the pre-payment checkout path: the order is created in
// status pending before any payment capture. Customer, address, order and
// items are written in one transaction.
func PlaceOrder(c *gin.Context) {
	utils.LogInfo("PlaceOrder called")

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order request: %v", err)
		utils.BadRequest(c, "Missing required fields: customer, address, or items", err.Error())
		return
	}

	if !utils.ValidateEmail(req.Customer.Email) {
		utils.BadRequest(c, "Invalid email address", nil)
		return
	}
	if !utils.ValidateZipCode(req.Address.ZipCode) {
		utils.BadRequest(c, "Invalid zip code", nil)
		return
	}

	paymentMethod := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCOD
	}

	idempotencyKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
	if idempotencyKey == "" {
		idempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	}

	db := config.DB

	// A replayed checkout returns the original order instead of creating a
	// duplicate.
	if idempotencyKey != "" {
		var existing models.Order
		if err := db.Where("idempotency_key = ?", idempotencyKey).First(&existing).Error; err == nil {
			utils.LogInfo("Duplicate submission for idempotency key %s, returning order %d", idempotencyKey, existing.ID)
			utils.Success(c, "Order placed successfully", gin.H{"order_id": existing.ID})
			return
		}
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		email := req.Customer.Email
		customer, err := resolveCustomer(tx, req.Customer.Name, &email, req.Customer.Phone)
		if err != nil {
			return err
		}

		address := models.Address{
			CustomerID: customer.ID,
			FirstName:  req.Customer.Name,
			Line1:      req.Address.Line1,
			Line2:      req.Address.Line2,
			City:       req.Address.City,
			State:      req.Address.State,
			ZipCode:    req.Address.ZipCode,
			Phone:      req.Customer.Phone,
		}
		if err := tx.Create(&address).Error; err != nil {
			return err
		}

		order = models.Order{
			CustomerID:        customer.ID,
			Subtotal:          req.Pricing.Subtotal,
			Tax:               req.Pricing.Tax,
			ShippingCost:      req.Pricing.Shipping,
			Total:             req.Pricing.Total,
			Status:            models.OrderStatusPending,
			PaymentStatus:     models.PaymentStatusPending,
			PaymentMethod:     paymentMethod,
			UPIID:             req.UPIID,
			ShippingAddressID: address.ID,
			BillingAddressID:  address.ID,
			Items:             buildOrderItems(req.Items),
		}
		if idempotencyKey != "" {
			order.IdempotencyKey = &idempotencyKey
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		// A concurrent replay may have taken the key between the lookup and
		// the insert; surface the winner's order id.
		if idempotencyKey != "" {
			var existing models.Order
			if lookupErr := db.Where("idempotency_key = ?", idempotencyKey).First(&existing).Error; lookupErr == nil {
				utils.Success(c, "Order placed successfully", gin.H{"order_id": existing.ID})
				return
			}
		}
		utils.LogError("Failed to place order: %v", err)
		utils.InternalServerError(c, "Failed to place order", nil)
		return
	}

	utils.LogInfo("Order %d placed for customer %d with %d items", order.ID, order.CustomerID, len(order.Items))
	utils.Success(c, "Order placed successfully", gin.H{"order_id": order.ID})
}

// ListUserOrders returns a customer's orders, newest first, with an
// optional status filter and limit/offset pagination.
func ListUserOrders(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		utils.BadRequest(c, "Email parameter is required", nil)
		return
	}

	db := config.DB
	var customer models.Customer
	if err := db.Where("email = ?", email).First(&customer).Error; err != nil {
		utils.NotFound(c, "Customer not found")
		return
	}

	query := db.Model(&models.Order{}).Where("customer_id = ?", customer.ID)
	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders for customer %d: %v", customer.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	page := utils.NewLimitOffset(c)
	var orders []models.Order
	if err := query.
		Preload("Items").
		Preload("ShippingAddress").
		Preload("BillingAddress").
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for customer %d: %v", customer.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	utils.Success(c, "Orders retrieved successfully", gin.H{
		"orders":     orders,
		"pagination": page.Envelope(total),
	})
}

// resolveCustomer finds the customer for an email or creates one. A nil
// email means guest checkout: a fresh row with a NULL email is always
// created and never merged with existing customers.
func resolveCustomer(tx *gorm.DB, name string, email *string, phone string) (*models.Customer, error) {
	if email != nil && *email != "" {
		var customer models.Customer
		err := tx.Where("email = ?", *email).First(&customer).Error
		if err == nil {
			return &customer, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		customer = models.Customer{
			FullName:    name,
			DisplayName: firstName(name),
			Email:       email,
			Phone:       phone,
			IsActive:    true,
		}
		if err := tx.Create(&customer).Error; err != nil {
			return nil, err
		}
		return &customer, nil
	}

	guest := models.Customer{
		FullName:    name,
		DisplayName: firstName(name),
		Phone:       phone,
		IsActive:    true,
	}
	if err := tx.Create(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func buildOrderItems(items []OrderItemInput) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Size:      item.Size,
			Color:     item.Color,
		})
	}
	return out
}

func firstName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return fullName
	}
	return parts[0]
}
