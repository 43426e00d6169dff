package email

import (
	"context"
	"fmt"

	"adornia-be/internal/logger"

	"go.uber.org/zap"
)

// Sender composes and delivers the storefront's transactional emails.
type Sender struct {
	mailer        Mailer
	businessEmail string
	storeURL      string
}

func NewSender(mailer Mailer, businessEmail, storeURL string) *Sender {
	return &Sender{
		mailer:        mailer,
		businessEmail: businessEmail,
		storeURL:      storeURL,
	}
}

// SendBusinessOrderNotification notifies the shop about a new order.
func (s *Sender) SendBusinessOrderNotification(ctx context.Context, data OrderEmailData) error {
	html, err := render(businessOrderTmpl, data)
	if err != nil {
		return fmt.Errorf("render business order email: %w", err)
	}
	subject := fmt.Sprintf("[Adornia] %s - Order #%s", data.PaymentStatus, data.OrderNumber)
	return s.mailer.Send(ctx, s.businessEmail, subject, html)
}

// SendCustomerOrderConfirmation sends the buyer their confirmation. When
// BankDetails is set the email carries transfer instructions instead of a
// paid receipt.
func (s *Sender) SendCustomerOrderConfirmation(ctx context.Context, data OrderEmailData) error {
	html, err := render(customerOrderTmpl, data)
	if err != nil {
		return fmt.Errorf("render customer order email: %w", err)
	}
	subject := fmt.Sprintf("Order Confirmed - #%s | Adornia", data.OrderNumber)
	if data.BankDetails != nil {
		subject = fmt.Sprintf("Complete Your Payment - Order #%s | Adornia", data.OrderNumber)
	}
	return s.mailer.Send(ctx, data.CustomerEmail, subject, html)
}

// SendConsultationRequest forwards a made-to-order consultation to the shop
// and acknowledges the customer. The acknowledgement is best-effort; the
// business copy is the one that must land.
func (s *Sender) SendConsultationRequest(ctx context.Context, data ConsultationData) error {
	html, err := render(consultationRequestTmpl, data)
	if err != nil {
		return fmt.Errorf("render consultation request: %w", err)
	}
	subject := fmt.Sprintf("Custom Order Request - %s", data.ProductName)
	if err := s.mailer.Send(ctx, s.businessEmail, subject, html); err != nil {
		return err
	}

	confirmation, err := render(consultationConfirmationTmpl, data)
	if err != nil {
		return fmt.Errorf("render consultation confirmation: %w", err)
	}
	subject = fmt.Sprintf("Consultation Request Received - %s", data.ProductName)
	if err := s.mailer.Send(ctx, data.CustomerEmail, subject, confirmation); err != nil {
		logger.FromCtx(ctx).Warn("failed to send consultation confirmation",
			zap.String("customer_email", data.CustomerEmail),
			zap.Error(err),
		)
	}
	return nil
}

// SendWelcome greets a new newsletter subscriber.
func (s *Sender) SendWelcome(ctx context.Context, subscriberEmail string) error {
	html, err := render(welcomeTmpl, struct{ StoreURL string }{s.storeURL})
	if err != nil {
		return fmt.Errorf("render welcome email: %w", err)
	}
	return s.mailer.Send(ctx, subscriberEmail, "Welcome to Adornia ✨", html)
}

// SendSubscriptionNotice tells the shop a subscriber signed up.
func (s *Sender) SendSubscriptionNotice(ctx context.Context, data SubscriptionData) error {
	html, err := render(subscriptionNoticeTmpl, data)
	if err != nil {
		return fmt.Errorf("render subscription notice: %w", err)
	}
	return s.mailer.Send(ctx, s.businessEmail, "New newsletter subscriber", html)
}
