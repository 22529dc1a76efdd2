package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendOrderConfirmation(toEmail string, order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order #%d confirmed - Sweet Paradise", order.ID))

	var rows strings.Builder
	for _, item := range order.OrderItems {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td>
			<td style="padding: 8px; border-bottom: 1px solid #eee; text-align: center;">%d</td>
			<td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">%.2f</td></tr>`,
			item.Name, item.Qty, item.Price))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #fff7ed; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .logo { font-size: 24px; font-weight: bold; color: #b45309; text-align: center; }
        .total { font-size: 20px; font-weight: bold; color: #b45309; text-align: right; margin-top: 16px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Sweet Paradise</div>
        <h2 style="color: #333;">Thank you for your order!</h2>
        <p>Your order <strong>#%d</strong> is confirmed and on its way.</p>
        <p>Expected delivery: <strong>%s</strong></p>

        <table style="width: 100%%; border-collapse: collapse; margin-top: 20px;">
            <tr>
                <th style="text-align: left; padding: 8px;">Sweet</th>
                <th style="padding: 8px;">Qty</th>
                <th style="text-align: right; padding: 8px;">Price</th>
            </tr>
            %s
        </table>
        <div class="total">Total: %.2f</div>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>`,
		order.ID,
		order.ExpectedDeliveryAt.Format(time.RFC1123),
		rows.String(),
		order.TotalPrice,
	)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
