package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/Meera-417/VastraKart/config"
	"github.com/Meera-417/VastraKart/models"
	"github.com/Meera-417/VastraKart/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	"gorm.io/gorm"
)

// InitiateRazorpayPayment creates a gateway order for the checkout total so
// the hosted widget can collect the payment.
func InitiateRazorpayPayment(c *gin.Context) {
	utils.LogInfo("InitiateRazorpayPayment called")

	var req struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment initiation request: %v", err)
		utils.BadRequest(c, "Invalid request. amount is required", err.Error())
		return
	}

	amountPaise := utils.ToPaise(req.Amount)
	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	orderData := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         "rcpt_" + uuid.New().String(),
		"payment_capture": 1,
	}
	rzOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order: %v", err)
		utils.InternalServerError(c, "Failed to create Razorpay order", nil)
		return
	}
	utils.LogInfo("Created Razorpay order %v for %d paise", rzOrder["id"], amountPaise)

	utils.Success(c, "Payment initiated successfully", gin.H{
		"razorpay_order_id": fmt.Sprintf("%v", rzOrder["id"]),
		"amount":            amountPaise,
		"currency":          "INR",
		"key":               os.Getenv("RAZORPAY_KEY"),
	})
}

// VerifyCustomerInput is the customer block echoed back by the checkout
// page after the gateway widget completes. Email is optional: guest
// checkout submits without one.
type VerifyCustomerInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
}

// VerifyOrderData is the full order payload accompanying the gateway
// callback fields.
type VerifyOrderData struct {
	Customer VerifyCustomerInput `json:"customer"`
	Items    []OrderItemInput    `json:"items"`
	Pricing  OrderPricingInput   `json:"pricing"`
}

// VerifyPaymentRequest is the body of POST /payment/verify.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string          `json:"razorpay_order_id"`
	RazorpayPaymentID string          `json:"razorpay_payment_id"`
	RazorpaySignature string          `json:"razorpay_signature"`
	OrderData         VerifyOrderData `json:"order_data"`
}

// VerifyRazorpayPayment checks the gateway signature and, only on a match,
// persists the paid order and its audit transaction. Nothing is written
// before the signature check passes.
func VerifyRazorpayPayment(c *gin.Context) {
	utils.LogInfo("VerifyRazorpayPayment called")

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid verification request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		utils.LogError("Missing payment verification parameters")
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing payment verification parameters",
		})
		return
	}

	if len(req.OrderData.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Order must contain at least one item",
		})
		return
	}

	secret := os.Getenv("RAZORPAY_SECRET")
	if !utils.VerifyRazorpaySignature(secret, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		utils.LogError("Payment signature verification failed for gateway order %s", req.RazorpayOrderID)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Payment signature verification failed",
		})
		return
	}
	utils.LogInfo("Payment signature verified for gateway order %s", req.RazorpayOrderID)

	db := config.DB
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		cust := req.OrderData.Customer
		fullName := joinName(cust.FirstName, cust.LastName)

		var emailPtr *string
		if cust.Email != "" {
			email := cust.Email
			emailPtr = &email
		}
		customer, err := resolveCustomer(tx, fullName, emailPtr, cust.Phone)
		if err != nil {
			return err
		}

		// Shipping and billing are stored as independent rows even when
		// populated from the same input, so either can change shape later
		// without touching the other.
		shipping := addressFromVerifyInput(customer.ID, cust)
		if err := tx.Create(&shipping).Error; err != nil {
			return err
		}
		billing := addressFromVerifyInput(customer.ID, cust)
		if err := tx.Create(&billing).Error; err != nil {
			return err
		}

		order = models.Order{
			CustomerID:        customer.ID,
			Subtotal:          req.OrderData.Pricing.Subtotal,
			Tax:               req.OrderData.Pricing.Tax,
			ShippingCost:      req.OrderData.Pricing.Shipping,
			Total:             req.OrderData.Pricing.Total,
			Status:            models.OrderStatusProcessing,
			PaymentStatus:     models.PaymentStatusPaid,
			PaymentMethod:     models.PaymentMethodRazorpay,
			RazorpayOrderID:   req.RazorpayOrderID,
			RazorpayPaymentID: req.RazorpayPaymentID,
			ShippingAddressID: shipping.ID,
			BillingAddressID:  billing.ID,
			Items:             buildOrderItems(req.OrderData.Items),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		txn := models.PaymentTransaction{
			PaymentID:  req.RazorpayPaymentID,
			CustomerID: customer.ID,
			Amount:     utils.ToPaise(req.OrderData.Pricing.Total),
			Status:     "completed",
		}
		return tx.Create(&txn).Error
	})
	if err != nil {
		utils.LogError("Failed to create order record after verified payment %s: %v", req.RazorpayPaymentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Payment verified but failed to create order record",
		})
		return
	}
	utils.LogInfo("Order %d created for verified payment %s", order.ID, req.RazorpayPaymentID)

	// Confirmation mail is best effort; the order stands either way.
	if req.OrderData.Customer.Email != "" {
		if mailErr := utils.SendOrderConfirmation(req.OrderData.Customer.Email, req.OrderData.Customer.FirstName, order.ID, order.Total); mailErr != nil {
			utils.LogError("Failed to send confirmation email for order %d: %v", order.ID, mailErr)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified and order created successfully",
		"order": gin.H{
			"id":             order.ID,
			"status":         order.Status,
			"payment_status": order.PaymentStatus,
			"total":          order.Total,
		},
		"payment_id": req.RazorpayPaymentID,
	})
}

func addressFromVerifyInput(customerID uint, in VerifyCustomerInput) models.Address {
	return models.Address{
		CustomerID: customerID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Line1:      in.Address1,
		Line2:      in.Address2,
		City:       in.City,
		State:      in.State,
		ZipCode:    in.ZipCode,
		Phone:      in.Phone,
	}
}

func joinName(first, last string) string {
	if last == "" {
		return first
	}
	return first + " " + last
}
