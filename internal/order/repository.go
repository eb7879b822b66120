package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"bangazon-be/internal/db"
	"bangazon-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindOrCreateOpen(ctx context.Context, customerID int64) (*Order, bool, error)
	GetOpen(ctx context.Context, customerID int64) (*Order, error)
	ClearOpen(ctx context.Context, customerID int64) error

	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]Order, error)
	Create(ctx context.Context, customerID int64, createdDate time.Time) (*Order, error)
	Delete(ctx context.Context, id int64) error
	SetPaymentType(ctx context.Context, id, paymentTypeID int64) error

	AddLineItem(ctx context.Context, orderID, productID int64, quantity int) (*LineItem, error)
	RemoveLineItem(ctx context.Context, orderID, productID int64) error
	GetLineItem(ctx context.Context, id int64) (*LineItem, error)
	DeleteLineItem(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, customer_id, created_date, payment_type_id`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row scanner) (Order, error) {
	var (
		o         Order
		paymentID sql.NullInt64
	)
	if err := row.Scan(&o.ID, &o.CustomerID, &o.CreatedDate, &paymentID); err != nil {
		return o, err
	}
	if paymentID.Valid {
		o.PaymentTypeID = &paymentID.Int64
	}
	return o, nil
}

// FindOrCreateOpen returns the customer's open order, creating it when there
// is none. The insert yields to orders_one_open_per_customer, so concurrent
// callers end up with the same row. created reports whether this call made it.
func (r *repository) FindOrCreateOpen(ctx context.Context, customerID int64) (*Order, bool, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "FindOrCreateOpen"),
		zap.Int64("customer_id", customerID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, false, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	created := true
	o, err := scanOrder(tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, created_date)
		VALUES ($1, NOW())
		ON CONFLICT (customer_id) WHERE payment_type_id IS NULL DO NOTHING
		RETURNING `+orderColumns,
		customerID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		created = false
		o, err = scanOrder(tx.QueryRowContext(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 AND payment_type_id IS NULL`,
			customerID,
		))
	}
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, false, ErrCustomerNotFound
		}
		log.Error("failed to resolve open order", zap.Error(err))
		return nil, false, fmt.Errorf("find or create open order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", zap.Error(err))
		return nil, false, err
	}
	committed = true

	if created {
		log.Info("open order created", zap.Int64("order_id", o.ID))
	}
	return &o, created, nil
}

func (r *repository) GetOpen(ctx context.Context, customerID int64) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 AND payment_type_id IS NULL`,
		customerID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoOpenOrder
	}
	if err != nil {
		return nil, fmt.Errorf("get open order: %w", err)
	}
	return &o, nil
}

// ClearOpen deletes the open order and all of its line items.
func (r *repository) ClearOpen(ctx context.Context, customerID int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ClearOpen"),
		zap.Int64("customer_id", customerID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	var orderID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM orders WHERE customer_id = $1 AND payment_type_id IS NULL FOR UPDATE`,
		customerID,
	).Scan(&orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoOpenOrder
	}
	if err != nil {
		return fmt.Errorf("lock open order: %w", err)
	}

	if err := deleteOrderTx(ctx, tx, orderID); err != nil {
		log.Error("failed to clear open order", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	log.Info("open order cleared", zap.Int64("order_id", orderID))
	return nil
}

func deleteOrderTx(ctx context.Context, tx *sql.Tx, orderID int64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM order_products WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete line items: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	query := `SELECT ` + orderColumns + ` FROM orders`
	where := []string{}
	args := []interface{}{}

	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		where = append(where, fmt.Sprintf("customer_id = $%d", len(args)))
		if filter.PaymentTypeID == nil {
			where = append(where, "payment_type_id IS NULL")
		}
	}
	if filter.PaymentTypeID != nil {
		args = append(args, *filter.PaymentTypeID)
		where = append(where, fmt.Sprintf("payment_type_id = $%d", len(args)))
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("failed to scan order", zap.Error(err))
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Create inserts an open order. It fails with ErrOpenOrderExists when the
// customer already has one.
func (r *repository) Create(ctx context.Context, customerID int64, createdDate time.Time) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`INSERT INTO orders (customer_id, created_date) VALUES ($1, $2) RETURNING `+orderColumns,
		customerID, createdDate,
	))
	if err != nil {
		switch {
		case db.IsUniqueViolation(err):
			return nil, ErrOpenOrderExists
		case db.IsForeignKeyViolation(err):
			return nil, ErrCustomerNotFound
		}
		logger.FromCtx(ctx).Error("failed to insert order",
			zap.String("layer", "repository"),
			zap.Int64("customer_id", customerID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &o, nil
}

// Delete removes an order together with its line items.
func (r *repository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := deleteOrderTx(ctx, tx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// SetPaymentType closes an open order. A closed or missing order yields
// ErrOrderClosed; callers check existence first.
func (r *repository) SetPaymentType(ctx context.Context, id, paymentTypeID int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET payment_type_id = $1 WHERE id = $2 AND payment_type_id IS NULL`,
		paymentTypeID, id,
	)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("close order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderClosed
	}

	logger.FromCtx(ctx).Info("order closed",
		zap.String("layer", "repository"),
		zap.Int64("order_id", id),
		zap.Int64("payment_type_id", paymentTypeID),
	)
	return nil
}

func (r *repository) AddLineItem(ctx context.Context, orderID, productID int64, quantity int) (*LineItem, error) {
	li := LineItem{OrderID: orderID, ProductID: productID, Quantity: quantity}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO order_products (order_id, product_id, quantity) VALUES ($1, $2, $3) RETURNING id`,
		orderID, productID, quantity,
	).Scan(&li.ID)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("add line item: %w", err)
	}
	return &li, nil
}

// RemoveLineItem deletes the oldest line item for productID on the order.
func (r *repository) RemoveLineItem(ctx context.Context, orderID, productID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM order_products
		WHERE id = (
			SELECT id FROM order_products
			WHERE order_id = $1 AND product_id = $2
			ORDER BY id
			LIMIT 1
		)`,
		orderID, productID,
	)
	if err != nil {
		return fmt.Errorf("remove line item: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLineItemNotFound
	}
	return nil
}

func (r *repository) GetLineItem(ctx context.Context, id int64) (*LineItem, error) {
	var li LineItem
	err := r.db.QueryRowContext(ctx,
		`SELECT id, order_id, product_id, quantity FROM order_products WHERE id = $1`, id,
	).Scan(&li.ID, &li.OrderID, &li.ProductID, &li.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLineItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get line item: %w", err)
	}
	return &li, nil
}

func (r *repository) DeleteLineItem(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM order_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete line item: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLineItemNotFound
	}
	return nil
}
