package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/internal/pg"
)

const userColumns = `id, username, balance, bonus_amount, banned, verified,
		payout_method, payout_address, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Balance, &u.BonusAmount, &u.Banned, &u.Verified,
		&u.PayoutMethod, &u.PayoutAddress, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Upsert creates the user on first contact and refreshes the username after.
func (r *Repository) Upsert(ctx context.Context, id int64, username string) (*domain.User, error) {
	query := `
		INSERT INTO users (id, username)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, id, username))
	if err != nil {
		zap.L().Error("can't upsert user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// AddBalance applies a signed delta as a single atomic increment.
func (r *Repository) AddBalance(ctx context.Context, userID int64, delta decimal.Decimal) (*domain.User, error) {
	query := `
		UPDATE users
		SET balance = balance + $1
		WHERE id = $2
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, delta, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update user balance", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// AddBonus credits the balance and records the cumulative grant together.
func (r *Repository) AddBonus(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error) {
	query := `
		UPDATE users
		SET balance = balance + $1, bonus_amount = bonus_amount + $1
		WHERE id = $2
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, amount, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't grant bonus", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ReserveBalance deducts amount only when the balance covers it. The guard in
// the WHERE clause is what makes two concurrent payout requests safe: the
// second one sees the already-reduced balance. Returns nil when the user is
// absent or the balance is insufficient.
func (r *Repository) ReserveBalance(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error) {
	query := `
		UPDATE users
		SET balance = balance - $1
		WHERE id = $2 AND balance >= $1
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, amount, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't reserve balance", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) SetBanned(ctx context.Context, userID int64, banned bool) error {
	query := `UPDATE users SET banned = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, banned, userID)
	if err != nil {
		zap.L().Error("can't update banned flag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetVerified(ctx context.Context, userID int64, verified bool) error {
	query := `UPDATE users SET verified = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, verified, userID)
	if err != nil {
		zap.L().Error("can't update verified flag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetPayoutInfo(ctx context.Context, userID int64, method, address string) error {
	query := `UPDATE users SET payout_method = $1, payout_address = $2 WHERE id = $3`
	_, err := r.db.Exec(ctx, query, method, address, userID)
	if err != nil {
		zap.L().Error("can't update payout info", zap.Error(err))
		return err
	}
	return nil
}
