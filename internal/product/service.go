package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bangazon-be/internal/logger"
	"bangazon-be/internal/metrics"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var maxPrice = decimal.NewFromInt(10000)

type Service interface {
	List(ctx context.Context, q ListQuery) ([]Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	Update(ctx context.Context, sellerID, id int64, params UpdateProductParams) error
	Delete(ctx context.Context, sellerID, id int64) error
	Rate(ctx context.Context, customerID, productID int64, rating int) (*Rating, error)
	PurchasedProductIDs(ctx context.Context, customerID int64) (map[int64]bool, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// List loads the live catalog and runs the query engine over it.
func (s *service) List(ctx context.Context, q ListQuery) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "List"),
	)
	timer := metrics.StartTimer()

	products, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to load products", zap.Error(err))
		return nil, err
	}

	result := Apply(products, q)

	log.Debug("product list served",
		zap.Int("candidates", len(products)),
		zap.Int("count", len(result)),
		zap.String("order_by", q.OrderBy),
		zap.Duration("duration", timer.Duration()),
	)
	return result, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	if err := validatePrice(params.Price); err != nil {
		return nil, err
	}
	if params.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidProduct)
	}
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if params.CreatedDate.IsZero() {
		params.CreatedDate = s.today()
	}

	return s.repo.Create(ctx, params)
}

// Update replaces a product's fields. Only its seller may do so.
func (s *service) Update(ctx context.Context, sellerID, id int64, params UpdateProductParams) error {
	if err := validatePrice(params.Price); err != nil {
		return err
	}
	if params.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrInvalidProduct)
	}

	existing, err := s.owned(ctx, sellerID, id)
	if err != nil {
		return err
	}
	if params.CreatedDate.IsZero() {
		params.CreatedDate = existing.CreatedDate
	}

	if err := s.repo.Update(ctx, id, params); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("product updated",
		zap.String("layer", "service"),
		zap.Int64("product_id", id),
	)
	return nil
}

// Delete soft deletes a product; line items referencing it are kept.
func (s *service) Delete(ctx context.Context, sellerID, id int64) error {
	if _, err := s.owned(ctx, sellerID, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *service) Rate(ctx context.Context, customerID, productID int64, rating int) (*Rating, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}

	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	purchased, err := s.repo.PurchasedProductIDs(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !p.CanBeRated(customerID, purchased) {
		return nil, ErrNotRatable
	}

	return s.repo.AddRating(ctx, productID, customerID, rating)
}

func (s *service) PurchasedProductIDs(ctx context.Context, customerID int64) (map[int64]bool, error) {
	return s.repo.PurchasedProductIDs(ctx, customerID)
}

func (s *service) owned(ctx context.Context, sellerID, id int64) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.SellerID != sellerID {
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *service) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() || price.GreaterThan(maxPrice) {
		return fmt.Errorf("%w: price must be between 0 and 10000", ErrInvalidProduct)
	}
	return nil
}
