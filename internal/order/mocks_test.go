package order

import (
	"context"
	"time"

	"bangazon-be/internal/payment"
	"bangazon-be/internal/product"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindOrCreateOpen(ctx context.Context, customerID int64) (*Order, bool, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*Order), args.Bool(1), args.Error(2)
}

func (m *MockRepository) GetOpen(ctx context.Context, customerID int64) (*Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) ClearOpen(ctx context.Context, customerID int64) error {
	return m.Called(ctx, customerID).Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter ListFilter) ([]Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, customerID int64, createdDate time.Time) (*Order, error) {
	args := m.Called(ctx, customerID, createdDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) SetPaymentType(ctx context.Context, id, paymentTypeID int64) error {
	return m.Called(ctx, id, paymentTypeID).Error(0)
}

func (m *MockRepository) AddLineItem(ctx context.Context, orderID, productID int64, quantity int) (*LineItem, error) {
	args := m.Called(ctx, orderID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LineItem), args.Error(1)
}

func (m *MockRepository) RemoveLineItem(ctx context.Context, orderID, productID int64) error {
	return m.Called(ctx, orderID, productID).Error(0)
}

func (m *MockRepository) GetLineItem(ctx context.Context, id int64) (*LineItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LineItem), args.Error(1)
}

func (m *MockRepository) DeleteLineItem(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockProductRepository covers the product lookups the cart needs.
type MockProductRepository struct {
	mock.Mock
	product.Repository
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) ListByOrder(ctx context.Context, orderID int64) ([]product.Product, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
	payment.Repository
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
