package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"adornia-be/internal/alert"
	"adornia-be/internal/cart"
	"adornia-be/internal/email"
	"adornia-be/internal/inventory"
	"adornia-be/internal/logger"
	"adornia-be/internal/order"
	"adornia-be/internal/payment"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Service sequences the checkout: draft assembly, payment verification,
// inventory reconciliation, order persistence and notification emails.
type Service interface {
	SaveDraft(ctx context.Context, sessionID string, items []cart.LineItem, info CustomerInfo, deliveryID string) (*Draft, error)
	GetDraft(ctx context.Context, sessionID string) (*Draft, error)
	ValidateStock(ctx context.Context, sessionID string) (inventory.Result, error)
	CompleteCardPayment(ctx context.Context, sessionID, reference string) (*CompletedOrder, error)
	CompleteBankTransfer(ctx context.Context, sessionID string) (*CompletedOrder, error)
	GetCompleted(ctx context.Context, sessionID string) (*CompletedOrder, error)
}

type service struct {
	drafts     Drafts
	validate   *validator.Validate
	stock      *inventory.Validator
	reconciler *inventory.Reconciler
	gateway    payment.Gateway
	orders     order.Repository
	emails     *email.Sender
	alerts     alert.Publisher
	bank       email.BankDetails
}

func NewService(
	drafts Drafts,
	stock *inventory.Validator,
	reconciler *inventory.Reconciler,
	gateway payment.Gateway,
	orders order.Repository,
	emails *email.Sender,
	alerts alert.Publisher,
	bank email.BankDetails,
) Service {
	return &service{
		drafts:     drafts,
		validate:   validator.New(),
		stock:      stock,
		reconciler: reconciler,
		gateway:    gateway,
		orders:     orders,
		emails:     emails,
		alerts:     alerts,
		bank:       bank,
	}
}

// SaveDraft validates the address step and persists the draft that carries
// the order through the payment step. Totals are computed server-side from
// the submitted lines, never taken from the client.
func (s *service) SaveDraft(ctx context.Context, sessionID string, items []cart.LineItem, info CustomerInfo, deliveryID string) (*Draft, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := s.validate.Struct(info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCustomerInfo, err)
	}
	if info.Country == "" {
		info.Country = "Nigeria"
	}

	delivery, ok := DeliveryOptionByID(deliveryID)
	if !ok {
		return nil, ErrUnknownDeliveryOption
	}

	subtotal := cart.Load(items).TotalPrice
	draft := &Draft{
		OrderNumber: NewOrderNumber(time.Now()),
		Items:       items,
		Customer:    info,
		Delivery:    delivery,
		Totals: Totals{
			Subtotal: subtotal,
			Delivery: delivery.Price,
			Total:    subtotal + delivery.Price,
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.drafts.SaveDraft(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *service) GetDraft(ctx context.Context, sessionID string) (*Draft, error) {
	return s.drafts.GetDraft(ctx, sessionID)
}

// ValidateStock is the advisory pre-payment gate. Nothing is reserved on a
// pass; a concurrent buyer can still win the last unit.
func (s *service) ValidateStock(ctx context.Context, sessionID string) (inventory.Result, error) {
	draft, err := s.drafts.GetDraft(ctx, sessionID)
	if err != nil {
		return inventory.Result{}, err
	}
	return s.stock.Validate(ctx, draft.Items)
}

// CompleteCardPayment runs the post-gateway half of checkout. Once the
// charge is verified, every remaining step is best-effort: the money has
// moved, so side-effect failures are logged and alerted, never surfaced as
// a payment failure.
func (s *service) CompleteCardPayment(ctx context.Context, sessionID, reference string) (*CompletedOrder, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("session_id", sessionID),
		zap.String("reference", reference),
	)

	draft, err := s.drafts.GetDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	verification, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !verification.Succeeded() {
		log.Warn("charge not successful", zap.String("status", verification.Status))
		return nil, fmt.Errorf("%w: status %s", payment.ErrNotSuccessful, verification.Status)
	}

	// The gateway reports kobo; totals are naira.
	expectedKobo := draft.Totals.Total * 100
	if verification.Amount != expectedKobo {
		log.Error("amount mismatch",
			zap.Int64("expected", expectedKobo),
			zap.Int64("received", verification.Amount),
		)
		return nil, fmt.Errorf("%w: expected %d, received %d",
			payment.ErrAmountMismatch, expectedKobo, verification.Amount)
	}

	report := s.reconciler.Decrement(ctx, draft.OrderNumber, draft.Items)
	if report.Status != inventory.ReportFull {
		if err := s.alerts.PublishReconciliationAlert(ctx, report); err != nil {
			log.Error("failed to publish reconciliation alert", zap.Error(err))
		}
	}

	completed := &CompletedOrder{
		OrderNumber:      draft.OrderNumber,
		PaymentReference: verification.Reference,
		TransactionID:    verification.TransactionID,
		PaymentMethod:    "Card Payment (Paystack)",
		PaymentStatus:    "Paid",
		Channel:          verification.Channel,
		Amount:           verification.Amount / 100,
		PaidAt:           verification.PaidAt,
		Items:            draft.Items,
		Customer:         draft.Customer,
		Totals:           draft.Totals,
		Delivery:         draft.Delivery,
		Reconciliation:   report.Status,
	}

	if err := s.persistOrder(ctx, draft, order.StatusPaid, verification); err != nil {
		log.Error("failed to persist order record", zap.Error(err))
	}

	s.sendOrderEmails(ctx, draft, completed, nil)

	if err := s.drafts.DeleteDraft(ctx, sessionID); err != nil {
		log.Warn("failed to delete checkout draft", zap.Error(err))
	}
	if err := s.drafts.SaveCompleted(ctx, sessionID, completed); err != nil {
		log.Warn("failed to save completed order snapshot", zap.Error(err))
	}

	log.Info("order completed",
		zap.String("order_number", draft.OrderNumber),
		zap.Int64("amount", completed.Amount),
		zap.String("reconciliation", string(report.Status)),
	)
	return completed, nil
}

// CompleteBankTransfer records an order awaiting a manual transfer. No
// verification and no inventory decrement happen until the transfer is
// confirmed out of band.
func (s *service) CompleteBankTransfer(ctx context.Context, sessionID string) (*CompletedOrder, error) {
	log := logger.FromCtx(ctx).With(zap.String("session_id", sessionID))

	draft, err := s.drafts.GetDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	completed := &CompletedOrder{
		OrderNumber:   draft.OrderNumber,
		PaymentMethod: "Direct bank transfer",
		PaymentStatus: "Awaiting Payment",
		Amount:        draft.Totals.Total,
		Items:         draft.Items,
		Customer:      draft.Customer,
		Totals:        draft.Totals,
		Delivery:      draft.Delivery,
	}

	if err := s.persistOrder(ctx, draft, order.StatusAwaitingTransfer, nil); err != nil {
		log.Error("failed to persist order record", zap.Error(err))
	}

	s.sendOrderEmails(ctx, draft, completed, &s.bank)

	if err := s.drafts.DeleteDraft(ctx, sessionID); err != nil {
		log.Warn("failed to delete checkout draft", zap.Error(err))
	}
	if err := s.drafts.SaveCompleted(ctx, sessionID, completed); err != nil {
		log.Warn("failed to save completed order snapshot", zap.Error(err))
	}

	log.Info("bank transfer order recorded", zap.String("order_number", draft.OrderNumber))
	return completed, nil
}

func (s *service) GetCompleted(ctx context.Context, sessionID string) (*CompletedOrder, error) {
	return s.drafts.GetCompleted(ctx, sessionID)
}

func (s *service) persistOrder(ctx context.Context, draft *Draft, status order.Status, verification *payment.Verification) error {
	customerJSON, err := json.Marshal(draft.Customer)
	if err != nil {
		return err
	}
	itemsJSON, err := json.Marshal(draft.Items)
	if err != nil {
		return err
	}

	rec := &order.Record{
		OrderNumber:    draft.OrderNumber,
		Status:         status,
		Customer:       customerJSON,
		Items:          itemsJSON,
		Subtotal:       draft.Totals.Subtotal,
		DeliveryFee:    draft.Totals.Delivery,
		Total:          draft.Totals.Total,
		DeliveryMethod: draft.Delivery.Name,
	}
	if verification != nil {
		rec.PaymentReference = verification.Reference
		rec.Channel = verification.Channel
		rec.PaidAt = verification.PaidAt
	}

	_, err = s.orders.Save(ctx, rec)
	return err
}

// sendOrderEmails delivers both notifications. Email failures must not fail
// the order: the charge already settled (or the transfer is pending), so
// failures are logged and the outcome stands.
func (s *service) sendOrderEmails(ctx context.Context, draft *Draft, completed *CompletedOrder, bank *email.BankDetails) {
	data := email.OrderEmailData{
		OrderNumber:   draft.OrderNumber,
		CustomerName:  draft.Customer.FullName(),
		CustomerEmail: draft.Customer.Email,
		CustomerPhone: draft.Customer.Phone,
		ShippingAddress: email.ShippingAddress{
			Address:    draft.Customer.Address,
			Apartment:  draft.Customer.Apartment,
			City:       draft.Customer.City,
			State:      draft.Customer.State,
			PostalCode: draft.Customer.PostalCode,
			Country:    draft.Customer.Country,
		},
		Items: draft.Items,
		Totals: email.Totals{
			Subtotal: draft.Totals.Subtotal,
			Delivery: draft.Totals.Delivery,
			Total:    draft.Totals.Total,
		},
		DeliveryMethod:   draft.Delivery.Name,
		DeliveryEstimate: draft.Delivery.EstimatedDays,
		OrderDate:        time.Now().Format("2 January 2006"),
		PaymentReference: completed.PaymentReference,
		PaymentMethod:    completed.PaymentMethod,
		PaymentStatus:    completed.PaymentStatus,
		BankDetails:      bank,
	}

	if err := s.emails.SendBusinessOrderNotification(ctx, data); err != nil {
		logger.FromCtx(ctx).Error("failed to send business order notification",
			zap.String("order_number", draft.OrderNumber),
			zap.Error(err),
		)
	}
	if err := s.emails.SendCustomerOrderConfirmation(ctx, data); err != nil {
		logger.FromCtx(ctx).Error("failed to send customer order confirmation",
			zap.String("order_number", draft.OrderNumber),
			zap.Error(err),
		)
	}
}
