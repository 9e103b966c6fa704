package controllers

import (
	"strconv"

	"github.com/Meera-417/VastraKart/config"
	"github.com/Meera-417/VastraKart/models"
	"github.com/Meera-417/VastraKart/utils"
	"github.com/gin-gonic/gin"
)

// ListOrders returns all orders for the back office, newest first, with
// optional status/payment filters.
func ListOrders(c *gin.Context) {
	db := config.DB
	query := db.Model(&models.Order{})

	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	page := utils.NewLimitOffset(c)
	var orders []models.Order
	if err := query.
		Preload("Customer").
		Preload("Items").
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	utils.Success(c, "Orders retrieved successfully", gin.H{
		"orders":     orders,
		"pagination": page.Envelope(total),
	})
}

// GetOrder returns one order with customer, items and addresses
func GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.
		Preload("Customer").
		Preload("Items.Product").
		Preload("ShippingAddress").
		Preload("BillingAddress").
		First(&order, id).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}
	utils.Success(c, "Order retrieved successfully", gin.H{"order": order})
}

var validOrderStatuses = map[string]bool{
	models.OrderStatusPending:    true,
	models.OrderStatusProcessing: true,
	models.OrderStatusShipped:    true,
	models.OrderStatusDelivered:  true,
	models.OrderStatusCancelled:  true,
}

// UpdateOrderStatus moves an order through its fulfilment lifecycle. Only
// the order row changes; addresses and items stay as written at purchase.
func UpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdateOrderStatus called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var req struct {
		Status         string `json:"status" binding:"required"`
		TrackingNumber string `json:"tracking_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Status is required", err.Error())
		return
	}
	if !validOrderStatuses[req.Status] {
		utils.BadRequest(c, "Invalid order status", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	if order.Status == models.OrderStatusDelivered || order.Status == models.OrderStatusCancelled {
		utils.BadRequest(c, "Order is already "+order.Status, nil)
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.TrackingNumber != "" {
		updates["tracking_number"] = req.TrackingNumber
	}
	if err := config.DB.Model(&order).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update order %d status: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order status", nil)
		return
	}

	utils.LogInfo("Order %d moved to status %s", order.ID, req.Status)
	utils.Success(c, "Order status updated successfully", gin.H{
		"order": gin.H{
			"id":     order.ID,
			"status": req.Status,
		},
	})
}
