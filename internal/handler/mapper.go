package handler

import (
	"fmt"
	"net/http"
	"time"

	"bangazon-be/internal/category"
	"bangazon-be/internal/customer"
	"bangazon-be/internal/favorite"
	"bangazon-be/internal/order"
	"bangazon-be/internal/payment"
	"bangazon-be/internal/product"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// linker builds absolute resource URLs from the scheme and host the request
// arrived on.
type linker struct {
	base string
}

func newLinker(r *http.Request) linker {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return linker{base: scheme + "://" + r.Host}
}

func (l linker) to(resource string, id int64) string {
	return fmt.Sprintf("%s/%s/%d", l.base, resource, id)
}

type categoryJSON struct {
	ID   int64  `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

func (l linker) category(c category.Category) categoryJSON {
	return categoryJSON{ID: c.ID, URL: l.to("productcategories", c.ID), Name: c.Name}
}

type productJSON struct {
	ID            int64           `json:"id"`
	URL           string          `json:"url"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	NumberSold    int             `json:"number_sold"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity"`
	CreatedDate   string          `json:"created_date"`
	Location      string          `json:"location"`
	ImagePath     *string         `json:"image_path"`
	AverageRating float64         `json:"average_rating"`
	CanBeRated    bool            `json:"can_be_rated"`
	Category      categoryJSON    `json:"category"`
}

// product renders p for viewerID; purchased feeds can_be_rated.
func (l linker) product(p product.Product, viewerID int64, purchased map[int64]bool) productJSON {
	return productJSON{
		ID:            p.ID,
		URL:           l.to("products", p.ID),
		Name:          p.Name,
		Price:         p.Price,
		NumberSold:    p.NumberSold,
		Description:   p.Description,
		Quantity:      p.Quantity,
		CreatedDate:   p.CreatedDate.Format(dateLayout),
		Location:      p.Location,
		ImagePath:     p.ImagePath,
		AverageRating: p.AverageRating(),
		CanBeRated:    p.CanBeRated(viewerID, purchased),
		Category:      l.category(category.Category{ID: p.CategoryID, Name: p.CategoryName}),
	}
}

func (l linker) products(ps []product.Product, viewerID int64, purchased map[int64]bool) []productJSON {
	out := make([]productJSON, 0, len(ps))
	for _, p := range ps {
		out = append(out, l.product(p, viewerID, purchased))
	}
	return out
}

// cartProductJSON is the slimmer product shape used on the profile cart.
type cartProductJSON struct {
	ID          int64           `json:"id"`
	URL         string          `json:"url"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Category    categoryJSON    `json:"category"`
}

func (l linker) cartProducts(ps []product.Product) []cartProductJSON {
	out := make([]cartProductJSON, 0, len(ps))
	for _, p := range ps {
		out = append(out, cartProductJSON{
			ID:          p.ID,
			URL:         l.to("products", p.ID),
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			Location:    p.Location,
			Category:    l.category(category.Category{ID: p.CategoryID, Name: p.CategoryName}),
		})
	}
	return out
}

type ratingJSON struct {
	ID       int64  `json:"id"`
	Product  string `json:"product"`
	Customer string `json:"customer"`
	Rating   int    `json:"rating"`
}

func (l linker) rating(rt product.Rating) ratingJSON {
	return ratingJSON{
		ID:       rt.ID,
		Product:  l.to("products", rt.ProductID),
		Customer: l.to("customers", rt.CustomerID),
		Rating:   rt.Rating,
	}
}

type orderJSON struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	CreatedDate time.Time `json:"created_date"`
	PaymentType *string   `json:"payment_type"`
	Customer    string    `json:"customer"`
}

func (l linker) order(o order.Order) orderJSON {
	out := orderJSON{
		ID:          o.ID,
		URL:         l.to("orders", o.ID),
		CreatedDate: o.CreatedDate,
		Customer:    l.to("customers", o.CustomerID),
	}
	if o.PaymentTypeID != nil {
		link := l.to("paymenttypes", *o.PaymentTypeID)
		out.PaymentType = &link
	}
	return out
}

func (l linker) orders(list []order.Order) []orderJSON {
	out := make([]orderJSON, 0, len(list))
	for _, o := range list {
		out = append(out, l.order(o))
	}
	return out
}

type orderWithProductsJSON struct {
	orderJSON
	Products []productJSON `json:"products"`
}

type cartJSON struct {
	orderJSON
	Products []productJSON `json:"products"`
	Size     int           `json:"size"`
}

type profileCartJSON struct {
	orderJSON
	Products []cartProductJSON `json:"products"`
	Size     int               `json:"size"`
}

type lineItemJSON struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	Order    string `json:"order"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

func (l linker) lineItem(li order.LineItem) lineItemJSON {
	return lineItemJSON{
		ID:       li.ID,
		URL:      l.to("lineitems", li.ID),
		Order:    l.to("orders", li.OrderID),
		Product:  l.to("products", li.ProductID),
		Quantity: li.Quantity,
	}
}

type paymentJSON struct {
	ID             int64  `json:"id"`
	URL            string `json:"url"`
	MerchantName   string `json:"merchant_name"`
	AccountNumber  string `json:"account_number"`
	ExpirationDate string `json:"expiration_date"`
	CreateDate     string `json:"create_date"`
	Customer       string `json:"customer"`
}

func (l linker) payment(p payment.Payment) paymentJSON {
	return paymentJSON{
		ID:             p.ID,
		URL:            l.to("paymenttypes", p.ID),
		MerchantName:   p.MerchantName,
		AccountNumber:  p.AccountNumber,
		ExpirationDate: p.ExpirationDate.Format(dateLayout),
		CreateDate:     p.CreateDate.Format(dateLayout),
		Customer:       l.to("customers", p.CustomerID),
	}
}

func (l linker) payments(ps []payment.Payment) []paymentJSON {
	out := make([]paymentJSON, 0, len(ps))
	for _, p := range ps {
		out = append(out, l.payment(p))
	}
	return out
}

type userJSON struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type customerJSON struct {
	ID          int64    `json:"id"`
	URL         string   `json:"url"`
	Name        string   `json:"name"`
	User        userJSON `json:"user"`
	PhoneNumber string   `json:"phone_number"`
	Address     string   `json:"address"`
}

func (l linker) customer(c customer.Customer) customerJSON {
	return customerJSON{
		ID:   c.ID,
		URL:  l.to("customers", c.ID),
		Name: c.FullName(),
		User: userJSON{
			FirstName: c.User.FirstName,
			LastName:  c.User.LastName,
			Email:     c.User.Email,
		},
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
	}
}

type profileJSON struct {
	customerJSON
	PaymentTypes []paymentJSON `json:"payment_types"`
}

type favoriteJSON struct {
	ID       int64        `json:"id"`
	Customer string       `json:"customer"`
	Seller   customerJSON `json:"seller"`
}

func (l linker) favorite(f favorite.Favorite) favoriteJSON {
	return favoriteJSON{
		ID:       f.ID,
		Customer: l.to("customers", f.CustomerID),
		Seller:   l.customer(f.Seller),
	}
}
