package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bangazon-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID int64) (*Customer, error)
	GetByID(ctx context.Context, id int64) (*Customer, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectCustomer = `
	SELECT c.id, c.user_id, c.phone_number, c.address,
		u.id, u.username, u.first_name, u.last_name, u.email, u.is_active
	FROM customers c
	INNER JOIN users u ON u.id = c.user_id
`

func (r *repository) getOne(ctx context.Context, method, where string, arg int64) (*Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", method),
		zap.Int64("arg", arg),
	)

	var c Customer
	err := r.db.QueryRowContext(ctx, selectCustomer+where, arg).Scan(
		&c.ID, &c.UserID, &c.PhoneNumber, &c.Address,
		&c.User.ID, &c.User.Username, &c.User.FirstName, &c.User.LastName, &c.User.Email, &c.User.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("customer not found")
			return nil, ErrCustomerNotFound
		}
		log.Error("failed to scan customer", zap.Error(err))
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return &c, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID int64) (*Customer, error) {
	return r.getOne(ctx, "GetByUserID", "WHERE c.user_id = $1", userID)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Customer, error) {
	return r.getOne(ctx, "GetByID", "WHERE c.id = $1", id)
}

// SetActive flips the linked user account's is_active flag.
func (r *repository) SetActive(ctx context.Context, id int64, active bool) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SetActive"),
		zap.Int64("customer_id", id),
	)

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_active = $1 WHERE id = (SELECT user_id FROM customers WHERE id = $2)`,
		active, id,
	)
	if err != nil {
		log.Error("failed to update user", zap.Error(err))
		return fmt.Errorf("set active: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	if n == 0 {
		return ErrCustomerNotFound
	}

	log.Info("customer active flag updated", zap.Bool("active", active))
	return nil
}
