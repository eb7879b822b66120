package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrNoOpenOrder      = errors.New("customer has no open order")
	ErrLineItemNotFound = errors.New("line item not found")
	ErrOrderClosed      = errors.New("order is already closed")
	ErrOpenOrderExists  = errors.New("customer already has an open order")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPaymentNotFound  = errors.New("payment type not found")
	ErrForbidden        = errors.New("order belongs to another customer")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)
