package controllers

import (
	"github.com/Meera-417/VastraKart/config"
	"github.com/Meera-417/VastraKart/models"
	"github.com/Meera-417/VastraKart/utils"
	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the counters and revenue figure shown on the
// back office landing page.
func GetDashboardStats(c *gin.Context) {
	db := config.DB

	var productCount, orderCount, customerCount, pendingOrders int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard stats", nil)
		return
	}
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.Customer{}).Count(&customerCount)
	db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&pendingOrders)

	var revenue float64
	db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue)

	var recentOrders []models.Order
	db.Preload("Customer").Order("created_at DESC").Limit(5).Find(&recentOrders)

	utils.Success(c, "Dashboard stats retrieved successfully", gin.H{
		"products":       productCount,
		"orders":         orderCount,
		"customers":      customerCount,
		"pending_orders": pendingOrders,
		"revenue":        revenue,
		"recent_orders":  recentOrders,
	})
}
