package payment

import "time"

// Verification is the gateway's answer for one transaction reference.
// Amount is in the smallest currency unit (kobo).
type Verification struct {
	Status          string     `json:"status"`
	Reference       string     `json:"reference"`
	TransactionID   int64      `json:"transactionId"`
	Amount          int64      `json:"amount"`
	Currency        string     `json:"currency"`
	Channel         string     `json:"channel"`
	PaidAt          *time.Time `json:"paidAt,omitempty"`
	CustomerEmail   string     `json:"customerEmail,omitempty"`
	GatewayResponse string     `json:"gatewayResponse,omitempty"`
}

// Succeeded reports whether the gateway considers the charge complete.
func (v *Verification) Succeeded() bool {
	return v.Status == "success"
}
