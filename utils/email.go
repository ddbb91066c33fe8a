// utils/email.go
package utils

import (
	"fmt"
	"log"
	"os"
	"restaurant-api/models"

	"github.com/keighl/postmark"
)

// EmailService handles sending transactional emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance.
// When POSTMARK_API_TOKEN is unset the service is disabled and sends become
// no-ops, so local development does not need a mail account.
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		log.Println("POSTMARK_API_TOKEN not set; email notifications disabled")
		return &EmailService{}
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es.client == nil {
		return nil
	}
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation to the customer
func (es *EmailService) SendOrderConfirmationEmail(toEmail, name string, order *models.Order) error {
	subject := "Order Confirmation - Majid's Kitchen"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your order! Order <strong>%s</strong> has been placed and should arrive by <strong>%s</strong>.<br><br>Total Amount: <strong>$%.2f</strong><br>Payment: cash on delivery<br><br>Majid's Kitchen",
		name,
		order.OrderNumber(),
		order.EstimatedDeliveryTime.Format("15:04"),
		order.TotalAmount,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendOrderStatusEmail notifies the customer that an order changed status
func (es *EmailService) SendOrderStatusEmail(toEmail, name string, order *models.Order) error {
	subject := "Order Update - Majid's Kitchen"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your order <strong>%s</strong> is now <strong>%s</strong>.<br><br>Majid's Kitchen",
		name,
		order.OrderNumber(),
		order.Status,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
