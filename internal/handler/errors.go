package handler

import (
	"errors"
	"fmt"
	"net/http"

	"bangazon-be/internal/category"
	"bangazon-be/internal/customer"
	"bangazon-be/internal/favorite"
	"bangazon-be/internal/logger"
	"bangazon-be/internal/order"
	"bangazon-be/internal/payment"
	"bangazon-be/internal/product"
	"bangazon-be/internal/utils"

	"go.uber.org/zap"
)

var (
	errBadRequest = errors.New("invalid request")
	errNoCustomer = errors.New("no customer profile for this account")
)

func badRequest(detail string) error {
	return fmt.Errorf("%w: %s", errBadRequest, detail)
}

var statusByError = []struct {
	status int
	errs   []error
}{
	{http.StatusNotFound, []error{
		order.ErrOrderNotFound,
		order.ErrNoOpenOrder,
		order.ErrLineItemNotFound,
		order.ErrCustomerNotFound,
		order.ErrPaymentNotFound,
		product.ErrProductNotFound,
		category.ErrCategoryNotFound,
		payment.ErrPaymentNotFound,
		customer.ErrCustomerNotFound,
		favorite.ErrSellerNotFound,
	}},
	{http.StatusBadRequest, []error{
		errBadRequest,
		product.ErrInvalidQuery,
		product.ErrInvalidProduct,
		product.ErrInvalidCategory,
		product.ErrInvalidRating,
		category.ErrInvalidName,
		payment.ErrInvalidExpiry,
		order.ErrInvalidQuantity,
		favorite.ErrSelfFavorite,
	}},
	{http.StatusForbidden, []error{
		errNoCustomer,
		product.ErrForbidden,
		product.ErrNotRatable,
		order.ErrForbidden,
		payment.ErrForbidden,
		customer.ErrForbidden,
		customer.ErrInactive,
	}},
	{http.StatusConflict, []error{
		order.ErrOrderClosed,
		order.ErrOpenOrderExists,
		category.ErrCategoryExists,
		payment.ErrPaymentInUse,
	}},
}

func statusFor(err error) int {
	for _, group := range statusByError {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return group.status
			}
		}
	}
	return http.StatusInternalServerError
}

// writeError maps domain errors onto status codes. Anything unrecognised is
// logged and reported as a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("layer", "handler"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		utils.WriteJSONError(w, "internal server error", code)
		return
	}
	utils.WriteJSONError(w, err.Error(), code)
}
