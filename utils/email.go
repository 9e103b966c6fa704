package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendEmail sends an HTML email using the SMTP settings from the
// environment. Callers treat failures as non-fatal; confirmation mail must
// never block an order.
func SendEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("smtp host not configured")
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = username
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendOrderConfirmation emails a short confirmation for a paid order.
func SendOrderConfirmation(to, customerName string, orderID uint, total float64) error {
	subject := fmt.Sprintf("VastraKart - Order #%d confirmed", orderID)
	body := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Thank you for shopping with VastraKart. Your payment has been received and order <b>#%d</b> is being processed.</p>"+
			"<p>Order total: <b>Rs. %.2f</b></p>"+
			"<p>We will email you again when your order ships.</p>",
		customerName, orderID, total)
	return SendEmail(to, subject, body)
}
