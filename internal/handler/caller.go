package handler

import (
	"context"
	"errors"
	"net/http"

	"bangazon-be/internal/auth"
	"bangazon-be/internal/customer"
	"bangazon-be/internal/logger"
)

type contextKey string

const customerKey contextKey = "customer"

// withCustomer resolves the authenticated user to their active customer
// record and tags the request logger with it.
func (h *Handler) withCustomer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.UserIDFrom(r.Context())

		c, err := h.customers.GetByUserID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, customer.ErrCustomerNotFound) {
				err = errNoCustomer
			}
			writeError(w, r, err)
			return
		}
		if !c.User.IsActive {
			writeError(w, r, customer.ErrInactive)
			return
		}

		ctx := context.WithValue(r.Context(), customerKey, c)
		ctx = logger.WithCustomerID(ctx, c.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func customerFrom(ctx context.Context) *customer.Customer {
	c, _ := ctx.Value(customerKey).(*customer.Customer)
	return c
}

// viewerID is the customer id behind an optionally authenticated request,
// or 0 for anonymous callers, users without a customer record and
// deactivated customers.
func (h *Handler) viewerID(r *http.Request) int64 {
	if c := customerFrom(r.Context()); c != nil {
		return c.ID
	}
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		return 0
	}
	c, err := h.customers.GetByUserID(r.Context(), userID)
	if err != nil || !c.User.IsActive {
		return 0
	}
	return c.ID
}
