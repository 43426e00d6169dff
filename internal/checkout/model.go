package checkout

import (
	"fmt"
	"time"

	"adornia-be/internal/cart"
	"adornia-be/internal/inventory"
)

// CustomerInfo is the address-collection step's output. Postal code and
// apartment stay optional; everything else is required before a draft is
// accepted.
type CustomerInfo struct {
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Address    string `json:"address" validate:"required"`
	Apartment  string `json:"apartment,omitempty"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode,omitempty"`
	Phone      string `json:"phone" validate:"required"`
	Country    string `json:"country"`
}

func (c CustomerInfo) FullName() string {
	return c.FirstName + " " + c.LastName
}

type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Delivery int64 `json:"delivery"`
	Total    int64 `json:"total"`
}

// Draft is the handoff between checkout steps: assembled when the address
// step completes, consumed when payment settles. It lives in the
// larger-capacity draft store, not in a cookie.
type Draft struct {
	OrderNumber string          `json:"orderNumber"`
	Items       []cart.LineItem `json:"items"`
	Customer    CustomerInfo    `json:"customer"`
	Delivery    DeliveryOption  `json:"delivery"`
	Totals      Totals          `json:"totals"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CompletedOrder is what the confirmation page renders.
type CompletedOrder struct {
	OrderNumber      string                 `json:"orderNumber"`
	PaymentReference string                 `json:"paymentReference,omitempty"`
	TransactionID    int64                  `json:"transactionId,omitempty"`
	PaymentMethod    string                 `json:"paymentMethod"`
	PaymentStatus    string                 `json:"paymentStatus"`
	Channel          string                 `json:"channel,omitempty"`
	Amount           int64                  `json:"amount"`
	PaidAt           *time.Time             `json:"paidAt,omitempty"`
	Items            []cart.LineItem        `json:"items"`
	Customer         CustomerInfo           `json:"customer"`
	Totals           Totals                 `json:"totals"`
	Delivery         DeliveryOption         `json:"delivery"`
	Reconciliation   inventory.ReportStatus `json:"reconciliation,omitempty"`
}

// NewOrderNumber derives the buyer-facing order number from the wall clock,
// matching the AS-prefixed format printed on emails and receipts.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("AS%08d", now.UnixMilli()%100_000_000)
}
