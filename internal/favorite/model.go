package favorite

import "bangazon-be/internal/customer"

type Favorite struct {
	ID         int64
	CustomerID int64
	SellerID   int64
	Seller     customer.Customer
}
