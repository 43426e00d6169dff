package checkout

import "errors"

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrDraftNotFound         = errors.New("checkout draft not found")
	ErrUnknownDeliveryOption = errors.New("unknown delivery option")
	ErrInvalidCustomerInfo   = errors.New("invalid customer information")
)
