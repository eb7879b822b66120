package favorite

import "errors"

var (
	ErrSellerNotFound = errors.New("seller not found")
	ErrSelfFavorite   = errors.New("customers cannot favorite themselves")
)
