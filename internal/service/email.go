package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, email, name, bookingCode string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour booking %s is confirmed. Present this code at the station to pick up your vehicle.\n\nSafe travels,\nThe EV Rental Team", name, bookingCode)
	return s.send(email, name, fmt.Sprintf("Booking %s confirmed", bookingCode), body)
}

func (s *emailService) SendRefundProcessed(ctx context.Context, email, name, bookingCode string, amountCents int64) error {
	body := fmt.Sprintf("Hello %s,\n\nYour deposit refund of %d for booking %s has been processed.\n\nThank you for riding with us,\nThe EV Rental Team", name, amountCents, bookingCode)
	return s.send(email, name, fmt.Sprintf("Refund processed for booking %s", bookingCode), body)
}

func (s *emailService) SendPaymentRequest(ctx context.Context, email, name, bookingCode string, amountCents int64) error {
	body := fmt.Sprintf("Hello %s,\n\nBooking %s closed with an additional payment of %d collected at the station.\n\nThe EV Rental Team", name, bookingCode, amountCents)
	return s.send(email, name, fmt.Sprintf("Payment receipt for booking %s", bookingCode), body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, email, name, bookingCode, endDate string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental %s is due back on %s. Late returns accrue a daily late fee against your deposit.\n\nThe EV Rental Team", name, bookingCode, endDate)
	return s.send(email, name, fmt.Sprintf("Return reminder for booking %s", bookingCode), body)
}
