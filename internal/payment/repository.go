package payment

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
	ListByCustomer(ctx context.Context, customerID int64) ([]Payment, error)
	GetByID(ctx context.Context, id int64) (*Payment, error)
	Create(ctx context.Context, params CreatePaymentParams) (*Payment, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const paymentColumns = `id, merchant_name, account_number, expiration_date, create_date, customer_id`

func scanPayment(row interface{ Scan(...interface{}) error }) (Payment, error) {
	var p Payment
	err := row.Scan(&p.ID, &p.MerchantName, &p.AccountNumber, &p.ExpirationDate, &p.CreateDate, &p.CustomerID)
	return p, err
}

func (r *repository) ListByCustomer(ctx context.Context, customerID int64) ([]Payment, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListByCustomer"),
	)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE customer_id = $1 ORDER BY id`,
		customerID,
	)
	if err != nil {
		log.Error("failed to query payments", zap.Error(err))
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	payments := []Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			log.Error("failed to scan payment", zap.Error(err))
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Payment, error) {
	p, err := scanPayment(r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get payment",
			zap.String("layer", "repository"),
			zap.Int64("payment_id", id),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, params CreatePaymentParams) (*Payment, error) {
	p, err := scanPayment(r.db.QueryRowContext(ctx,
		`INSERT INTO payments (merchant_name, account_number, expiration_date, customer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+paymentColumns,
		params.MerchantName, params.AccountNumber, params.ExpirationDate, params.CustomerID,
	))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert payment",
			zap.String("layer", "repository"),
			zap.Int64("customer_id", params.CustomerID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrPaymentInUse
		}
		return fmt.Errorf("delete payment: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if n == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
