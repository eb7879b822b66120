package favorite

import (
	"context"
	"errors"

	"bangazon-be/internal/customer"
)

type Service interface {
	ListFavoriteSellers(ctx context.Context, customerID int64) ([]Favorite, error)
	AddFavoriteSeller(ctx context.Context, customerID, sellerID int64) (*Favorite, error)
}

type service struct {
	repo         Repository
	customerRepo customer.Repository
}

func NewService(repo Repository, customerRepo customer.Repository) Service {
	return &service{repo: repo, customerRepo: customerRepo}
}

func (s *service) ListFavoriteSellers(ctx context.Context, customerID int64) ([]Favorite, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// AddFavoriteSeller bookmarks another customer as a seller and returns the
// favorite with the seller resolved.
func (s *service) AddFavoriteSeller(ctx context.Context, customerID, sellerID int64) (*Favorite, error) {
	if customerID == sellerID {
		return nil, ErrSelfFavorite
	}

	seller, err := s.customerRepo.GetByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return nil, ErrSellerNotFound
		}
		return nil, err
	}

	f, err := s.repo.Add(ctx, customerID, sellerID)
	if err != nil {
		return nil, err
	}
	f.Seller = *seller
	return f, nil
}
