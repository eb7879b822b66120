package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type productRequest struct {
	Name        string           `json:"name" validate:"required,max=50"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Description string           `json:"description" validate:"required,max=255"`
	Quantity    *int             `json:"quantity" validate:"required,min=0"`
	CreatedDate string           `json:"created_date" validate:"omitempty,datetime=2006-01-02"`
	Location    string           `json:"location" validate:"required,max=50"`
	ImagePath   *string          `json:"image_path" validate:"omitempty,max=255"`
	CategoryID  int64            `json:"category_id" validate:"required,gt=0"`
}

type rateRequest struct {
	Rating int `json:"rating" validate:"required"`
}

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=55"`
}

type cartRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"min=0"`
}

type createOrderRequest struct {
	CustomerID  int64      `json:"customer_id" validate:"required,gt=0"`
	CreatedDate *time.Time `json:"created_date"`
}

type closeOrderRequest struct {
	PaymentType int64 `json:"payment_type" validate:"required,gt=0"`
}

type paymentRequest struct {
	MerchantName   string `json:"merchant_name" validate:"required,max=25"`
	AccountNumber  string `json:"account_number" validate:"required,max=25"`
	ExpirationDate string `json:"expiration_date" validate:"required,datetime=2006-01-02"`
}

type favoriteRequest struct {
	SellerID int64 `json:"seller_id" validate:"required,gt=0"`
}

// decode reads a JSON body into dst and runs its validate tags.
func (h *Handler) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return badRequest("malformed JSON body")
	}
	if err := h.validate.Struct(dst); err != nil {
		return badRequest(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}

// parseDate parses an optional YYYY-MM-DD field already checked by the
// validator.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(dateLayout, s)
	return t
}
