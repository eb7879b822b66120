package favorite

import (
	"context"
	"database/sql"
	"fmt"

	"bangazon-be/internal/db"
	"bangazon-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]Favorite, error)
	Add(ctx context.Context, customerID, sellerID int64) (*Favorite, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// ListByCustomer resolves each favorite to the seller's customer and user
// rows. Duplicate favorites are returned as stored.
func (r *repository) ListByCustomer(ctx context.Context, customerID int64) ([]Favorite, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListByCustomer"),
		zap.Int64("customer_id", customerID),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT f.id, f.customer_id, f.seller_id,
			s.id, s.user_id, s.phone_number, s.address,
			u.id, u.username, u.first_name, u.last_name, u.email, u.is_active
		FROM favorites f
		INNER JOIN customers s ON s.id = f.seller_id
		INNER JOIN users u ON u.id = s.user_id
		WHERE f.customer_id = $1
		ORDER BY f.id`,
		customerID,
	)
	if err != nil {
		log.Error("failed to query favorites", zap.Error(err))
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []Favorite{}
	for rows.Next() {
		var f Favorite
		s := &f.Seller
		if err := rows.Scan(
			&f.ID, &f.CustomerID, &f.SellerID,
			&s.ID, &s.UserID, &s.PhoneNumber, &s.Address,
			&s.User.ID, &s.User.Username, &s.User.FirstName, &s.User.LastName, &s.User.Email, &s.User.IsActive,
		); err != nil {
			log.Error("failed to scan favorite", zap.Error(err))
			return nil, fmt.Errorf("list favorites: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return favorites, nil
}

func (r *repository) Add(ctx context.Context, customerID, sellerID int64) (*Favorite, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Add"),
		zap.Int64("customer_id", customerID),
		zap.Int64("seller_id", sellerID),
	)

	f := Favorite{CustomerID: customerID, SellerID: sellerID}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO favorites (customer_id, seller_id) VALUES ($1, $2) RETURNING id`,
		customerID, sellerID,
	).Scan(&f.ID)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, ErrSellerNotFound
		}
		log.Error("failed to insert favorite", zap.Error(err))
		return nil, fmt.Errorf("add favorite: %w", err)
	}

	log.Info("favorite added", zap.Int64("favorite_id", f.ID))
	return &f, nil
}
