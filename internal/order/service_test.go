package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"bangazon-be/internal/payment"
	"bangazon-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo     *MockRepository
	products *MockProductRepository
	payments *MockPaymentRepository
	svc      Service
}

func newFixture() fixture {
	f := fixture{
		repo:     new(MockRepository),
		products: new(MockProductRepository),
		payments: new(MockPaymentRepository),
	}
	f.svc = NewService(f.repo, f.products, f.payments)
	return f
}

func paid(id int64) *int64 { return &id }

func TestService_AddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Opens an order on first add", func(t *testing.T) {
		f := newFixture()
		f.products.On("GetByID", ctx, int64(1)).Return(&product.Product{ID: 1}, nil)
		f.repo.On("FindOrCreateOpen", ctx, int64(3)).Return(&Order{ID: 10, CustomerID: 3}, true, nil)
		f.repo.On("AddLineItem", ctx, int64(10), int64(1), 1).Return(&LineItem{ID: 5, OrderID: 10, ProductID: 1, Quantity: 1}, nil)

		li, err := f.svc.AddToCart(ctx, 3, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(10), li.OrderID)
		f.repo.AssertExpectations(t)
	})

	t.Run("Reuses the open order", func(t *testing.T) {
		f := newFixture()
		f.products.On("GetByID", ctx, mock.Anything).Return(&product.Product{}, nil)
		f.repo.On("FindOrCreateOpen", ctx, int64(3)).Return(&Order{ID: 10, CustomerID: 3}, false, nil)
		f.repo.On("AddLineItem", ctx, int64(10), mock.Anything, 2).Return(&LineItem{OrderID: 10}, nil)

		for _, productID := range []int64{1, 2} {
			li, err := f.svc.AddToCart(ctx, 3, productID, 2)
			require.NoError(t, err)
			assert.Equal(t, int64(10), li.OrderID)
		}
		f.repo.AssertNumberOfCalls(t, "FindOrCreateOpen", 2)
	})

	t.Run("Unknown product", func(t *testing.T) {
		f := newFixture()
		f.products.On("GetByID", ctx, int64(1)).Return(nil, product.ErrProductNotFound)

		_, err := f.svc.AddToCart(ctx, 3, 1, 1)
		assert.ErrorIs(t, err, product.ErrProductNotFound)
		f.repo.AssertNotCalled(t, "FindOrCreateOpen", ctx, int64(3))
	})

	t.Run("Negative quantity", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.AddToCart(ctx, 3, 1, -2)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestService_RemoveFromCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes from open order", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetOpen", ctx, int64(3)).Return(&Order{ID: 10}, nil)
		f.repo.On("RemoveLineItem", ctx, int64(10), int64(1)).Return(nil)

		assert.NoError(t, f.svc.RemoveFromCart(ctx, 3, 1))
	})

	t.Run("No open order", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetOpen", ctx, int64(3)).Return(nil, ErrNoOpenOrder)

		assert.ErrorIs(t, f.svc.RemoveFromCart(ctx, 3, 1), ErrNoOpenOrder)
	})

	t.Run("Product not in cart", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetOpen", ctx, int64(3)).Return(&Order{ID: 10}, nil)
		f.repo.On("RemoveLineItem", ctx, int64(10), int64(1)).Return(ErrLineItemNotFound)

		assert.ErrorIs(t, f.svc.RemoveFromCart(ctx, 3, 1), ErrLineItemNotFound)
	})
}

func TestService_GetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Products per line item", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetOpen", ctx, int64(3)).Return(&Order{ID: 10, CustomerID: 3}, nil)
		f.products.On("ListByOrder", ctx, int64(10)).Return([]product.Product{{ID: 1}, {ID: 1}, {ID: 2}}, nil)

		cart, err := f.svc.GetCart(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, cart.Size())
		assert.Equal(t, int64(10), cart.Order.ID)
	})

	t.Run("Empty cart is not found", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetOpen", ctx, int64(3)).Return(nil, ErrNoOpenOrder)

		_, err := f.svc.GetCart(ctx, 3)
		assert.ErrorIs(t, err, ErrNoOpenOrder)
	})
}

func TestService_CloseOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Attaches payment type", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(10)).Return(&Order{ID: 10, CustomerID: 3}, nil)
		f.payments.On("GetByID", ctx, int64(2)).Return(&payment.Payment{ID: 2, CustomerID: 3}, nil)
		f.repo.On("SetPaymentType", ctx, int64(10), int64(2)).Return(nil)

		assert.NoError(t, f.svc.CloseOrder(ctx, 3, 10, 2))
		f.repo.AssertExpectations(t)
	})

	t.Run("Already closed", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(10)).Return(&Order{ID: 10, CustomerID: 3, PaymentTypeID: paid(1)}, nil)

		assert.ErrorIs(t, f.svc.CloseOrder(ctx, 3, 10, 2), ErrOrderClosed)
	})

	t.Run("Another customer's order", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(10)).Return(&Order{ID: 10, CustomerID: 4}, nil)

		assert.ErrorIs(t, f.svc.CloseOrder(ctx, 3, 10, 2), ErrForbidden)
	})

	t.Run("Unknown payment type", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(10)).Return(&Order{ID: 10, CustomerID: 3}, nil)
		f.payments.On("GetByID", ctx, int64(2)).Return(nil, payment.ErrPaymentNotFound)

		assert.ErrorIs(t, f.svc.CloseOrder(ctx, 3, 10, 2), ErrPaymentNotFound)
	})

	t.Run("Someone else's payment type", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(10)).Return(&Order{ID: 10, CustomerID: 3}, nil)
		f.payments.On("GetByID", ctx, int64(2)).Return(&payment.Payment{ID: 2, CustomerID: 8}, nil)

		assert.ErrorIs(t, f.svc.CloseOrder(ctx, 3, 10, 2), payment.ErrForbidden)
		f.repo.AssertNotCalled(t, "SetPaymentType", ctx, int64(10), int64(2))
	})

	t.Run("Unknown order", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(10)).Return(nil, ErrOrderNotFound)

		assert.ErrorIs(t, f.svc.CloseOrder(ctx, 3, 10, 2), ErrOrderNotFound)
	})
}

func TestService_ClearCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.repo.On("ClearOpen", ctx, int64(3)).Return(nil).Once()
	f.repo.On("ClearOpen", ctx, int64(3)).Return(ErrNoOpenOrder)

	assert.NoError(t, f.svc.ClearCart(ctx, 3))
	assert.ErrorIs(t, f.svc.ClearCart(ctx, 3), ErrNoOpenOrder)
}

func TestService_Orders(t *testing.T) {
	ctx := context.Background()

	t.Run("Create defaults created date", func(t *testing.T) {
		f := newFixture()
		f.repo.On("Create", ctx, int64(3), mock.MatchedBy(func(d time.Time) bool {
			return !d.IsZero()
		})).Return(&Order{ID: 1}, nil)

		o, err := f.svc.Create(ctx, 3, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), o.ID)
	})

	t.Run("Delete own order", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(1)).Return(&Order{ID: 1, CustomerID: 3}, nil)
		f.repo.On("Delete", ctx, int64(1)).Return(nil)

		assert.NoError(t, f.svc.Delete(ctx, 3, 1))
	})

	t.Run("Delete other's order", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(1)).Return(&Order{ID: 1, CustomerID: 4}, nil)

		assert.ErrorIs(t, f.svc.Delete(ctx, 3, 1), ErrForbidden)
	})

	t.Run("List passes filter", func(t *testing.T) {
		f := newFixture()
		customer := int64(3)
		filter := ListFilter{CustomerID: &customer}
		f.repo.On("List", ctx, filter).Return([]Order{{ID: 1}}, nil)

		orders, err := f.svc.List(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("Get error", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(1)).Return(nil, errors.New("db error"))

		_, err := f.svc.Get(ctx, 1)
		assert.Error(t, err)
	})
}

func TestService_LineItems(t *testing.T) {
	ctx := context.Background()

	t.Run("Delete own line item", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetLineItem", ctx, int64(5)).Return(&LineItem{ID: 5, OrderID: 10}, nil)
		f.repo.On("GetByID", ctx, int64(10)).Return(&Order{ID: 10, CustomerID: 3}, nil)
		f.repo.On("DeleteLineItem", ctx, int64(5)).Return(nil)

		assert.NoError(t, f.svc.DeleteLineItem(ctx, 3, 5))
	})

	t.Run("Delete other's line item", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetLineItem", ctx, int64(5)).Return(&LineItem{ID: 5, OrderID: 10}, nil)
		f.repo.On("GetByID", ctx, int64(10)).Return(&Order{ID: 10, CustomerID: 4}, nil)

		assert.ErrorIs(t, f.svc.DeleteLineItem(ctx, 3, 5), ErrForbidden)
	})

	t.Run("Get missing", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetLineItem", ctx, int64(5)).Return(nil, ErrLineItemNotFound)

		_, err := f.svc.GetLineItem(ctx, 5)
		assert.ErrorIs(t, err, ErrLineItemNotFound)
	})
}
