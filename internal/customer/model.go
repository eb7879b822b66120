package customer

import "bangazon-be/internal/payment"

// User is the identity-service account a customer is linked to. Only
// is_active is ever written from here.
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
	IsActive  bool
}

type Customer struct {
	ID          int64
	UserID      int64
	PhoneNumber string
	Address     string
	User        User
}

// FullName joins first and last name, falling back to the username.
func (c Customer) FullName() string {
	switch {
	case c.User.FirstName != "" && c.User.LastName != "":
		return c.User.FirstName + " " + c.User.LastName
	case c.User.FirstName != "":
		return c.User.FirstName
	case c.User.LastName != "":
		return c.User.LastName
	default:
		return c.User.Username
	}
}

type Profile struct {
	Customer     Customer
	PaymentTypes []payment.Payment
}
