package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment type not found")
	ErrPaymentInUse    = errors.New("payment type is attached to an order")
	ErrForbidden       = errors.New("payment type belongs to another customer")
	ErrInvalidExpiry   = errors.New("expiration date is required")
)
