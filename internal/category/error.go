package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("product category not found")
	ErrCategoryExists   = errors.New("product category already exists")
	ErrInvalidName      = errors.New("category name is required")
)
