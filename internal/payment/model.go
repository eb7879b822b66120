package payment

import "time"

// Payment is a stored payment type a customer closes orders with.
type Payment struct {
	ID             int64
	MerchantName   string
	AccountNumber  string
	ExpirationDate time.Time
	CreateDate     time.Time
	CustomerID     int64
}

type CreatePaymentParams struct {
	CustomerID     int64
	MerchantName   string
	AccountNumber  string
	ExpirationDate time.Time
}
