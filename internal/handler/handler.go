package handler

import (
	"net/http"
	"reflect"
	"strings"

	"bangazon-be/internal/category"
	"bangazon-be/internal/customer"
	"bangazon-be/internal/favorite"
	"bangazon-be/internal/middleware"
	"bangazon-be/internal/order"
	"bangazon-be/internal/payment"
	"bangazon-be/internal/product"
	"bangazon-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Services is everything the REST surface talks to.
type Services struct {
	Products   product.Service
	Categories category.Service
	Orders     order.Service
	Payments   payment.Service
	Customers  customer.Service
	Favorites  favorite.Service
}

type Handler struct {
	products   product.Service
	categories category.Service
	orders     order.Service
	payments   payment.Service
	customers  customer.Service
	favorites  favorite.Service
	validate   *validator.Validate
}

func New(s Services) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		products:   s.Products,
		categories: s.Categories,
		orders:     s.Orders,
		payments:   s.Payments,
		customers:  s.Customers,
		favorites:  s.Favorites,
		validate:   v,
	}
}

// Routes mounts every resource on r. Auth must already have run so the
// caller's user id, if any, is in the request context.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.Health)

	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
	r.Get("/productcategories", h.ListCategories)
	r.Get("/productcategories/{id}", h.GetCategory)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(h.withCustomer)

		r.Post("/products", h.CreateProduct)
		r.Put("/products/{id}", h.UpdateProduct)
		r.Delete("/products/{id}", h.DeleteProduct)
		r.Post("/products/{id}/rate", h.RateProduct)

		r.Post("/productcategories", h.CreateCategory)

		r.Get("/orders", h.ListOrders)
		r.Post("/orders", h.CreateOrder)
		r.Get("/orders/cart", h.GetOrderCart)
		r.Put("/orders/cart", h.AddToCart)
		r.Get("/orders/{id}", h.GetOrder)
		r.Put("/orders/{id}", h.CloseOrder)
		r.Delete("/orders/{id}", h.DeleteOrder)

		r.Get("/cart", h.GetCart)
		r.Post("/cart", h.AddToCart)
		r.Delete("/cart", h.RemoveFromCart)

		r.Get("/profile", h.GetProfile)
		r.Get("/profile/cart", h.GetProfileCart)
		r.Post("/profile/cart", h.AddToCart)
		r.Delete("/profile/cart", h.ClearCart)
		r.Get("/profile/favoritesellers", h.ListFavoriteSellers)
		r.Post("/profile/favoritesellers", h.AddFavoriteSeller)

		r.Get("/lineitems/{id}", h.GetLineItem)
		r.Delete("/lineitems/{id}", h.DeleteLineItem)

		r.Get("/paymenttypes", h.ListPaymentTypes)
		r.Post("/paymenttypes", h.CreatePaymentType)
		r.Get("/paymenttypes/{id}", h.GetPaymentType)
		r.Delete("/paymenttypes/{id}", h.DeletePaymentType)

		r.Get("/customers/{id}", h.GetCustomer)
		r.Put("/customers/{id}", h.DeactivateCustomer)
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathID reads the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		return 0, badRequest("id must be a positive integer")
	}
	return id, nil
}
