package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrForbidden        = errors.New("cannot modify another customer")
	ErrInactive         = errors.New("customer account is inactive")
)
