package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64
	Name         string
	SellerID     int64
	Price        decimal.Decimal
	Description  string
	Quantity     int
	CreatedDate  time.Time
	Location     string
	ImagePath    *string
	CategoryID   int64
	CategoryName string

	// Derived on read.
	NumberSold  int
	RatingSum   int
	RatingCount int
}

func (p Product) AverageRating() float64 {
	return AverageRating(p.RatingSum, p.RatingCount)
}

// AverageRating is the mean rating, or 0 for an unrated product.
func AverageRating(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// CanBeRated reports whether customerID may rate p: they bought it in a
// closed order and are not its seller. purchased comes from
// Repository.PurchasedProductIDs.
func (p Product) CanBeRated(customerID int64, purchased map[int64]bool) bool {
	if customerID == 0 || customerID == p.SellerID {
		return false
	}
	return purchased[p.ID]
}

type CreateProductParams struct {
	SellerID    int64
	Name        string
	Price       decimal.Decimal
	Description string
	Quantity    int
	CreatedDate time.Time
	Location    string
	ImagePath   *string
	CategoryID  int64
}

type UpdateProductParams struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Quantity    int
	CreatedDate time.Time
	Location    string
	ImagePath   *string
	CategoryID  int64
}

type Rating struct {
	ID         int64
	ProductID  int64
	CustomerID int64
	Rating     int
}
