package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bangazon-be/internal/db"
	"bangazon-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	ListByOrder(ctx context.Context, orderID int64) ([]Product, error)
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	Update(ctx context.Context, id int64, params UpdateProductParams) error
	SoftDelete(ctx context.Context, id int64) error
	AddRating(ctx context.Context, productID, customerID int64, rating int) (*Rating, error)
	PurchasedProductIDs(ctx context.Context, customerID int64) (map[int64]bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// selectProduct loads products with their category name, paid line-item
// count and rating totals.
const selectProduct = `
	SELECT
		p.id, p.name, p.customer_id, p.price, p.description, p.quantity,
		p.created_date, p.location, p.image_path, p.category_id, c.name,
		(SELECT COUNT(*) FROM order_products op
			INNER JOIN orders o ON o.id = op.order_id
			WHERE op.product_id = p.id AND o.payment_type_id IS NOT NULL) AS number_sold,
		(SELECT COALESCE(SUM(r.rating), 0) FROM product_ratings r WHERE r.product_id = p.id) AS rating_sum,
		(SELECT COUNT(*) FROM product_ratings r WHERE r.product_id = p.id) AS rating_count
	FROM products p
	INNER JOIN product_categories c ON c.id = p.category_id
`

func scanProduct(row interface{ Scan(...interface{}) error }) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.SellerID, &p.Price, &p.Description, &p.Quantity,
		&p.CreatedDate, &p.Location, &p.ImagePath, &p.CategoryID, &p.CategoryName,
		&p.NumberSold, &p.RatingSum, &p.RatingCount,
	)
	return p, err
}

func (r *repository) queryProducts(ctx context.Context, method, query string, args ...interface{}) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", method),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("failed to scan product", zap.Error(err))
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	log.Debug("products loaded", zap.Int("count", len(products)))
	return products, nil
}

// List returns every product that has not been soft deleted, by id.
func (r *repository) List(ctx context.Context) ([]Product, error) {
	return r.queryProducts(ctx, "List", selectProduct+` WHERE p.deleted_at IS NULL ORDER BY p.id`)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx,
		selectProduct+` WHERE p.id = $1 AND p.deleted_at IS NULL`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get product",
			zap.String("layer", "repository"),
			zap.Int64("product_id", id),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByOrder returns one product per line item of the order, soft deleted
// products included, in line-item order.
func (r *repository) ListByOrder(ctx context.Context, orderID int64) ([]Product, error) {
	return r.queryProducts(ctx, "ListByOrder",
		selectProduct+` INNER JOIN order_products li ON li.product_id = p.id WHERE li.order_id = $1 ORDER BY li.id`,
		orderID,
	)
}

func (r *repository) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Int64("seller_id", params.SellerID),
	)

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products
			(name, customer_id, price, description, quantity, created_date, location, image_path, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		params.Name, params.SellerID, params.Price, params.Description, params.Quantity,
		params.CreatedDate, params.Location, params.ImagePath, params.CategoryID,
	).Scan(&id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, ErrInvalidCategory
		}
		if db.IsCheckViolation(err) {
			return nil, ErrInvalidProduct
		}
		log.Error("failed to insert product", zap.Error(err))
		return nil, fmt.Errorf("create product: %w", err)
	}

	log.Info("product created", zap.Int64("product_id", id))
	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, id int64, params UpdateProductParams) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $1, price = $2, description = $3, quantity = $4, created_date = $5,
			location = $6, image_path = $7, category_id = $8
		WHERE id = $9 AND deleted_at IS NULL`,
		params.Name, params.Price, params.Description, params.Quantity, params.CreatedDate,
		params.Location, params.ImagePath, params.CategoryID, id,
	)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrInvalidCategory
		}
		if db.IsCheckViolation(err) {
			return ErrInvalidProduct
		}
		logger.FromCtx(ctx).Error("failed to update product",
			zap.String("layer", "repository"),
			zap.Int64("product_id", id),
			zap.Error(err),
		)
		return fmt.Errorf("update product: %w", err)
	}
	return expectOneRow(res)
}

func (r *repository) SoftDelete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id,
	)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return expectOneRow(res)
}

func (r *repository) AddRating(ctx context.Context, productID, customerID int64, rating int) (*Rating, error) {
	rt := Rating{ProductID: productID, CustomerID: customerID, Rating: rating}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO product_ratings (product_id, customer_id, rating) VALUES ($1, $2, $3) RETURNING id`,
		productID, customerID, rating,
	).Scan(&rt.ID)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("add rating: %w", err)
	}
	return &rt, nil
}

// PurchasedProductIDs returns the products on the customer's closed orders.
func (r *repository) PurchasedProductIDs(ctx context.Context, customerID int64) (map[int64]bool, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT op.product_id
		FROM order_products op
		INNER JOIN orders o ON o.id = op.order_id
		WHERE o.customer_id = $1 AND o.payment_type_id IS NOT NULL`,
		customerID,
	)
	if err != nil {
		return nil, fmt.Errorf("purchased products: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan purchased product: %w", err)
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}
