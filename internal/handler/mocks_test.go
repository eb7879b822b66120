package handler

import (
	"context"
	"time"

	"bangazon-be/internal/category"
	"bangazon-be/internal/customer"
	"bangazon-be/internal/favorite"
	"bangazon-be/internal/order"
	"bangazon-be/internal/payment"
	"bangazon-be/internal/product"

	"github.com/stretchr/testify/mock"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, q product.ListQuery) ([]product.Product, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, params product.CreateProductParams) (*product.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, sellerID, id int64, params product.UpdateProductParams) error {
	return m.Called(ctx, sellerID, id, params).Error(0)
}

func (m *MockProductService) Delete(ctx context.Context, sellerID, id int64) error {
	return m.Called(ctx, sellerID, id).Error(0)
}

func (m *MockProductService) Rate(ctx context.Context, customerID, productID int64, rating int) (*product.Rating, error) {
	args := m.Called(ctx, customerID, productID, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Rating), args.Error(1)
}

func (m *MockProductService) PurchasedProductIDs(ctx context.Context, customerID int64) (map[int64]bool, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context, nameFilter string) ([]category.Category, error) {
	args := m.Called(ctx, nameFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.Category), args.Error(1)
}

func (m *MockCategoryService) Get(ctx context.Context, id int64) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, name string) (*category.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) GetOrCreateOpenOrder(ctx context.Context, customerID int64) (*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) AddToCart(ctx context.Context, customerID, productID int64, quantity int) (*order.LineItem, error) {
	args := m.Called(ctx, customerID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.LineItem), args.Error(1)
}

func (m *MockOrderService) RemoveFromCart(ctx context.Context, customerID, productID int64) error {
	return m.Called(ctx, customerID, productID).Error(0)
}

func (m *MockOrderService) ClearCart(ctx context.Context, customerID int64) error {
	return m.Called(ctx, customerID).Error(0)
}

func (m *MockOrderService) GetCart(ctx context.Context, customerID int64) (*order.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Cart), args.Error(1)
}

func (m *MockOrderService) CloseOrder(ctx context.Context, customerID, orderID, paymentTypeID int64) error {
	return m.Called(ctx, customerID, orderID, paymentTypeID).Error(0)
}

func (m *MockOrderService) List(ctx context.Context, filter order.ListFilter) ([]order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) Create(ctx context.Context, customerID int64, createdDate time.Time) (*order.Order, error) {
	args := m.Called(ctx, customerID, createdDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, customerID, id int64) error {
	return m.Called(ctx, customerID, id).Error(0)
}

func (m *MockOrderService) GetLineItem(ctx context.Context, id int64) (*order.LineItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.LineItem), args.Error(1)
}

func (m *MockOrderService) DeleteLineItem(ctx context.Context, customerID, id int64) error {
	return m.Called(ctx, customerID, id).Error(0)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) List(ctx context.Context, customerID int64) ([]payment.Payment, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPaymentService) Get(ctx context.Context, id int64) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentService) Create(ctx context.Context, params payment.CreatePaymentParams) (*payment.Payment, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentService) Delete(ctx context.Context, customerID, id int64) error {
	return m.Called(ctx, customerID, id).Error(0)
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) GetByUserID(ctx context.Context, userID int64) (*customer.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerService) GetByID(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerService) GetProfile(ctx context.Context, userID int64) (*customer.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Profile), args.Error(1)
}

func (m *MockCustomerService) Deactivate(ctx context.Context, callerID, customerID int64) error {
	return m.Called(ctx, callerID, customerID).Error(0)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) ListFavoriteSellers(ctx context.Context, customerID int64) ([]favorite.Favorite, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]favorite.Favorite), args.Error(1)
}

func (m *MockFavoriteService) AddFavoriteSeller(ctx context.Context, customerID, sellerID int64) (*favorite.Favorite, error) {
	args := m.Called(ctx, customerID, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*favorite.Favorite), args.Error(1)
}
