package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Meera-417/VastraKart/config"
	"github.com/Meera-417/VastraKart/models"
	"github.com/Meera-417/VastraKart/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportOrders writes an xlsx report of orders for the requested period
// (daily, weekly, monthly; defaults to monthly).
func ExportOrders(c *gin.Context) {
	utils.LogInfo("ExportOrders called")

	period := c.DefaultQuery("period", "monthly")
	var since time.Time
	now := time.Now()
	switch period {
	case "daily":
		since = now.AddDate(0, 0, -1)
	case "weekly":
		since = now.AddDate(0, 0, -7)
	case "monthly":
		since = now.AddDate(0, -1, 0)
	default:
		utils.BadRequest(c, "Invalid period. Use daily, weekly or monthly", nil)
		return
	}

	var orders []models.Order
	if err := config.DB.
		Preload("Customer").
		Preload("Items").
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}

	headers := []string{"Order ID", "Date", "Customer", "Email", "Items", "Status", "Payment Status", "Payment Method", "Subtotal", "Tax", "Shipping", "Total"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	var revenue float64
	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(strconv.Itoa(int(order.ID)))
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetString(order.Customer.FullName)
		if order.Customer.Email != nil {
			row.AddCell().SetString(*order.Customer.Email)
		} else {
			row.AddCell().SetString("guest")
		}
		row.AddCell().SetString(strconv.Itoa(len(order.Items)))
		row.AddCell().SetString(order.Status)
		row.AddCell().SetString(order.PaymentStatus)
		row.AddCell().SetString(order.PaymentMethod)
		row.AddCell().SetFloat(order.Subtotal)
		row.AddCell().SetFloat(order.Tax)
		row.AddCell().SetFloat(order.ShippingCost)
		row.AddCell().SetFloat(order.Total)
		if order.PaymentStatus == models.PaymentStatusPaid {
			revenue += order.Total
		}
	}

	sheet.AddRow()
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	totalRow := sheet.AddRow()
	totalRow.AddCell().SetString("Total orders")
	totalRow.AddCell().SetString(strconv.Itoa(len(orders)))
	revenueRow := sheet.AddRow()
	revenueRow.AddCell().SetString("Paid revenue")
	revenueRow.AddCell().SetFloat(revenue)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", nil)
		return
	}
}
