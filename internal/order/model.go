package order

import (
	"encoding/json"
	"time"
)

type Status string

const (
	// StatusPaid means the card charge was verified with the gateway.
	StatusPaid Status = "PAID"
	// StatusAwaitingTransfer means the buyer chose bank transfer and the
	// payment has not been confirmed yet.
	StatusAwaitingTransfer Status = "AWAITING_TRANSFER"
	// StatusTransferConfirmed is set manually once the transfer arrives.
	StatusTransferConfirmed Status = "TRANSFER_CONFIRMED"
)

// Record is the persisted snapshot of a completed (or awaiting-transfer)
// order. Customer and Items are stored as JSON documents: the storefront
// never queries into them, it only replays them for emails and support.
type Record struct {
	ID               int64
	OrderNumber      string
	PaymentReference string
	Status           Status
	Channel          string
	Customer         json.RawMessage
	Items            json.RawMessage
	Subtotal         int64
	DeliveryFee      int64
	Total            int64
	DeliveryMethod   string
	PaidAt           *time.Time
	CreatedAt        time.Time
}
