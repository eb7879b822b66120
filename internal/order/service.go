package order

import (
	"context"
	"errors"
	"time"

	"bangazon-be/internal/logger"
	"bangazon-be/internal/payment"
	"bangazon-be/internal/product"

	"go.uber.org/zap"
)

// Service manages the cart lifecycle: the open order is created on the first
// add, mutated by line-item changes and closed by attaching a payment type.
type Service interface {
	GetOrCreateOpenOrder(ctx context.Context, customerID int64) (*Order, error)
	AddToCart(ctx context.Context, customerID, productID int64, quantity int) (*LineItem, error)
	RemoveFromCart(ctx context.Context, customerID, productID int64) error
	ClearCart(ctx context.Context, customerID int64) error
	GetCart(ctx context.Context, customerID int64) (*Cart, error)
	CloseOrder(ctx context.Context, customerID, orderID, paymentTypeID int64) error

	List(ctx context.Context, filter ListFilter) ([]Order, error)
	Get(ctx context.Context, id int64) (*Order, error)
	Create(ctx context.Context, customerID int64, createdDate time.Time) (*Order, error)
	Delete(ctx context.Context, customerID, id int64) error

	GetLineItem(ctx context.Context, id int64) (*LineItem, error)
	DeleteLineItem(ctx context.Context, customerID, id int64) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
	paymentRepo payment.Repository
}

func NewService(repo Repository, productRepo product.Repository, paymentRepo payment.Repository) Service {
	return &service{repo: repo, productRepo: productRepo, paymentRepo: paymentRepo}
}

func (s *service) GetOrCreateOpenOrder(ctx context.Context, customerID int64) (*Order, error) {
	o, _, err := s.repo.FindOrCreateOpen(ctx, customerID)
	return o, err
}

// AddToCart puts one line item on the customer's open order, opening one if
// needed. Stock is not checked.
func (s *service) AddToCart(ctx context.Context, customerID, productID int64, quantity int) (*LineItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
		zap.Int64("product_id", productID),
	)

	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	o, created, err := s.repo.FindOrCreateOpen(ctx, customerID)
	if err != nil {
		log.Error("failed to resolve open order", zap.Error(err))
		return nil, err
	}

	li, err := s.repo.AddLineItem(ctx, o.ID, productID, quantity)
	if err != nil {
		log.Error("failed to add line item", zap.Int64("order_id", o.ID), zap.Error(err))
		return nil, err
	}

	log.Info("added to cart",
		zap.Int64("order_id", o.ID),
		zap.Bool("order_created", created),
		zap.Int64("line_item_id", li.ID),
	)
	return li, nil
}

func (s *service) RemoveFromCart(ctx context.Context, customerID, productID int64) error {
	o, err := s.repo.GetOpen(ctx, customerID)
	if err != nil {
		return err
	}
	return s.repo.RemoveLineItem(ctx, o.ID, productID)
}

func (s *service) ClearCart(ctx context.Context, customerID int64) error {
	return s.repo.ClearOpen(ctx, customerID)
}

func (s *service) GetCart(ctx context.Context, customerID int64) (*Cart, error) {
	o, err := s.repo.GetOpen(ctx, customerID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListByOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}

	return &Cart{Order: *o, Products: products}, nil
}

// CloseOrder attaches one of the customer's payment types to their order.
func (s *service) CloseOrder(ctx context.Context, customerID, orderID, paymentTypeID int64) error {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.CustomerID != customerID {
		return ErrForbidden
	}
	if !o.IsOpen() {
		return ErrOrderClosed
	}

	p, err := s.paymentRepo.GetByID(ctx, paymentTypeID)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			return ErrPaymentNotFound
		}
		return err
	}
	if p.CustomerID != customerID {
		return payment.ErrForbidden
	}

	return s.repo.SetPaymentType(ctx, orderID, paymentTypeID)
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Order, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Get(ctx context.Context, id int64) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, customerID int64, createdDate time.Time) (*Order, error) {
	if createdDate.IsZero() {
		createdDate = time.Now().UTC()
	}
	return s.repo.Create(ctx, customerID, createdDate)
}

func (s *service) Delete(ctx context.Context, customerID, id int64) error {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.CustomerID != customerID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) GetLineItem(ctx context.Context, id int64) (*LineItem, error) {
	return s.repo.GetLineItem(ctx, id)
}

// DeleteLineItem removes a line item from one of the customer's orders.
func (s *service) DeleteLineItem(ctx context.Context, customerID, id int64) error {
	li, err := s.repo.GetLineItem(ctx, id)
	if err != nil {
		return err
	}

	o, err := s.repo.GetByID(ctx, li.OrderID)
	if err != nil {
		return err
	}
	if o.CustomerID != customerID {
		return ErrForbidden
	}

	return s.repo.DeleteLineItem(ctx, id)
}
