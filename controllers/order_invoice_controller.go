package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Meera-417/VastraKart/config"
	"github.com/Meera-417/VastraKart/models"
	"github.com/Meera-417/VastraKart/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadInvoice generates and returns a PDF invoice for the order
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.
		Preload("Customer").
		Preload("Items.Product").
		Preload("ShippingAddress").
		First(&order, orderID).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Store info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "VastraKart")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "14 Weavers Lane, Jaipur, India")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@vastrakart.in | Phone: +91-98765-43210")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(50, 8, "Order ID: "+strconv.Itoa(int(order.ID)))
	pdf.Cell(60, 8, "Order Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(50, 8, "Payment Method: "+order.PaymentMethod)
	pdf.Cell(60, 8, "Status: "+order.Status)
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, order.Customer.FullName)
	pdf.Ln(6)
	if order.Customer.Email != nil {
		pdf.Cell(100, 8, *order.Customer.Email)
		pdf.Ln(6)
	}
	pdf.Cell(100, 8, "Phone: "+order.Customer.Phone)
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Shipping Address:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, order.ShippingAddress.Line1)
	pdf.Ln(6)
	if order.ShippingAddress.Line2 != "" {
		pdf.Cell(100, 8, order.ShippingAddress.Line2)
		pdf.Ln(6)
	}
	pdf.Cell(100, 8, order.ShippingAddress.City+", "+order.ShippingAddress.State+", "+order.ShippingAddress.Country+" - "+order.ShippingAddress.ZipCode)
	pdf.Ln(10)

	// Items table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(60, 8, "Item", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Size", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		name := item.Product.Name
		if name == "" {
			name = fmt.Sprintf("Product #%d", item.ProductID)
		}
		pdf.CellFormat(60, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, item.Size, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Price*float64(item.Quantity)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Totals
	pdf.Ln(4)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(130, 8, "Subtotal", "0", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.Subtotal), "0", 0, "R", false, 0, "")
	pdf.Ln(6)
	pdf.CellFormat(130, 8, "Shipping", "0", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.ShippingCost), "0", 0, "R", false, 0, "")
	pdf.Ln(6)
	pdf.CellFormat(130, 8, "Tax", "0", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.Tax), "0", 0, "R", false, 0, "")
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(130, 8, "Total", "0", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.Total), "0", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate invoice PDF for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate invoice", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%d.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
