package customer

import (
	"context"

	"bangazon-be/internal/logger"
	"bangazon-be/internal/payment"

	"go.uber.org/zap"
)

type Service interface {
	GetByUserID(ctx context.Context, userID int64) (*Customer, error)
	GetByID(ctx context.Context, id int64) (*Customer, error)
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	Deactivate(ctx context.Context, callerID, customerID int64) error
}

type service struct {
	repo        Repository
	paymentRepo payment.Repository
}

func NewService(repo Repository, paymentRepo payment.Repository) Service {
	return &service{repo: repo, paymentRepo: paymentRepo}
}

func (s *service) GetByUserID(ctx context.Context, userID int64) (*Customer, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// GetProfile composes the customer, their account and their payment types.
func (s *service) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	c, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByCustomer(ctx, c.ID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load payment types",
			zap.String("layer", "service"),
			zap.String("method", "GetProfile"),
			zap.Error(err),
		)
		return nil, err
	}

	return &Profile{Customer: *c, PaymentTypes: payments}, nil
}

// Deactivate marks the caller's own account inactive.
func (s *service) Deactivate(ctx context.Context, callerID, customerID int64) error {
	if callerID != customerID {
		return ErrForbidden
	}
	return s.repo.SetActive(ctx, customerID, false)
}
