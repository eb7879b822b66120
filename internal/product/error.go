package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrForbidden       = errors.New("product belongs to another seller")
	ErrNotRatable      = errors.New("product can only be rated by a customer who bought it")

	ErrInvalidQuery    = errors.New("invalid product query")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidCategory = errors.New("product category does not exist")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

const (
	MinRating = 1
	MaxRating = 5
)
