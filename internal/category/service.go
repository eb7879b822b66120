package category

import (
	"context"
	"strings"

	"bangazon-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, nameFilter string) ([]Category, error)
	Get(ctx context.Context, id int64) (*Category, error)
	Create(ctx context.Context, name string) (*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, nameFilter string) ([]Category, error) {
	return s.repo.List(ctx, strings.TrimSpace(nameFilter))
}

func (s *service) Get(ctx context.Context, id int64) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a category; names are unique case-insensitively.
func (s *service) Create(ctx context.Context, name string) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
	)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		log.Error("failed to check category name", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrCategoryExists
	}

	c, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	log.Info("category created", zap.Int64("category_id", c.ID))
	return c, nil
}
