package order

import (
	"time"

	"bangazon-be/internal/product"
)

// Order is closed once a payment type is attached. An order without one is
// the customer's cart; each customer has at most one.
type Order struct {
	ID            int64
	CustomerID    int64
	CreatedDate   time.Time
	PaymentTypeID *int64
}

func (o Order) IsOpen() bool {
	return o.PaymentTypeID == nil
}

type LineItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
}

// Cart is the open order with one product entry per line item.
type Cart struct {
	Order    Order
	Products []product.Product
}

func (c Cart) Size() int {
	return len(c.Products)
}

// ListFilter narrows List. A CustomerID without a PaymentTypeID selects only
// that customer's open order.
type ListFilter struct {
	CustomerID    *int64
	PaymentTypeID *int64
}
