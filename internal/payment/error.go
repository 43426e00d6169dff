package payment

import "errors"

var (
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrNotSuccessful      = errors.New("payment was not successful")
	ErrAmountMismatch     = errors.New("payment amount mismatch")
)
