package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

var userRowColumns = []string{
	"id", "username", "balance", "bonus_amount", "banned", "verified",
	"payout_method", "payout_address", "created_at",
}

func userRow(mock pgxmock.PgxPoolIface, balance string) *pgxmock.Rows {
	return mock.NewRows(userRowColumns).AddRow(
		int64(7), "creator", decimal.RequireFromString(balance), decimal.Zero,
		false, false, "paypal", "creator@example.com", time.Now(),
	)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "user found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
					WithArgs(int64(7)).
					WillReturnRows(userRow(mock, "50"))
			},
			found: true,
		},
		{
			name: "user not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
					WithArgs(int64(7)).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "query error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
					WithArgs(int64(7)).
					WillReturnError(errors.New("connection refused"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.GetByID(ctx, 7)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, "creator", user.Username)
			} else {
				assert.Nil(t, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username`)).
		WithArgs(int64(7), "creator").
		WillReturnRows(userRow(mock, "0"))

	user, err := repo.Upsert(ctx, 7, "creator")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddBalance(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()
	delta := decimal.RequireFromString("12.50")

	t.Run("credits the balance", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance + $1`)).
			WithArgs(delta, int64(7)).
			WillReturnRows(userRow(mock, "62.50"))

		user, err := repo.AddBalance(ctx, 7, delta)
		assert.NoError(t, err)
		assert.True(t, user.Balance.Equal(decimal.RequireFromString("62.50")))
	})

	t.Run("absent user", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance + $1`)).
			WithArgs(delta, int64(404)).
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.AddBalance(ctx, 404, delta)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_ReserveBalance(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()
	amount := decimal.RequireFromString("30")

	t.Run("deducts when covered", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $2 AND balance >= $1`)).
			WithArgs(amount, int64(7)).
			WillReturnRows(userRow(mock, "20"))

		user, err := repo.ReserveBalance(ctx, 7, amount)
		assert.NoError(t, err)
		assert.True(t, user.Balance.Equal(decimal.RequireFromString("20")))
	})

	t.Run("insufficient balance", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $2 AND balance >= $1`)).
			WithArgs(amount, int64(7)).
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.ReserveBalance(ctx, 7, amount)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_AddBonus(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()
	amount := decimal.RequireFromString("10")

	mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance + $1, bonus_amount = bonus_amount + $1`)).
		WithArgs(amount, int64(7)).
		WillReturnRows(userRow(mock, "60"))

	user, err := repo.AddBonus(ctx, 7, amount)
	assert.NoError(t, err)
	assert.True(t, user.Balance.Equal(decimal.RequireFromString("60")))
}

func TestRepository_Flags(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("set banned", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET banned = $1 WHERE id = $2`)).
			WithArgs(true, int64(7)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.SetBanned(ctx, 7, true))
	})

	t.Run("set verified", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET verified = $1 WHERE id = $2`)).
			WithArgs(true, int64(7)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.SetVerified(ctx, 7, true))
	})

	t.Run("set payout info", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET payout_method = $1, payout_address = $2 WHERE id = $3`)).
			WithArgs("card", "4561261212345467", int64(7)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.SetPayoutInfo(ctx, 7, "card", "4561261212345467"))
	})
}
