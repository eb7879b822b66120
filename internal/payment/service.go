package payment

import (
	"context"
	"strings"

	"bangazon-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, customerID int64) ([]Payment, error)
	Get(ctx context.Context, id int64) (*Payment, error)
	Create(ctx context.Context, params CreatePaymentParams) (*Payment, error)
	Delete(ctx context.Context, customerID, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, customerID int64) ([]Payment, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *service) Get(ctx context.Context, id int64) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, params CreatePaymentParams) (*Payment, error) {
	if params.ExpirationDate.IsZero() {
		return nil, ErrInvalidExpiry
	}
	params.MerchantName = strings.TrimSpace(params.MerchantName)
	params.AccountNumber = strings.TrimSpace(params.AccountNumber)

	p, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("payment type created",
		zap.String("layer", "service"),
		zap.Int64("payment_id", p.ID),
	)
	return p, nil
}

// Delete removes one of the caller's own payment types.
func (s *service) Delete(ctx context.Context, customerID, id int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.CustomerID != customerID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
