package payoutrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cliphub/cliphub/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

var payoutRowColumns = []string{
	"id", "user_id", "campaign_id", "amount", "payout_method", "payout_address",
	"analytics_proof", "status", "ticket_id", "rejection_reason", "requested_at", "processed_at",
}

func payoutRow(mock pgxmock.PgxPoolIface, status string) *pgxmock.Rows {
	return mock.NewRows(payoutRowColumns).AddRow(
		int64(1), int64(7), int64(2), decimal.RequireFromString("30"), "paypal", "creator@example.com",
		"", status, nil, "", time.Now(), nil,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()
	amount := decimal.RequireFromString("30")

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payouts`)).
		WithArgs(int64(7), int64(2), amount, "paypal", "creator@example.com", "").
		WillReturnRows(payoutRow(mock, "pending"))

	created, err := repo.Create(ctx, &domain.Payout{
		UserID:        7,
		CampaignID:    2,
		Amount:        amount,
		PayoutMethod:  "paypal",
		PayoutAddress: "creator@example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("payout found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM payouts WHERE id = $1`)).
			WithArgs(int64(1)).
			WillReturnRows(payoutRow(mock, "pending"))

		payout, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), payout.UserID)
	})

	t.Run("payout not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM payouts WHERE id = $1`)).
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		payout, err := repo.GetByID(ctx, 404)
		assert.NoError(t, err)
		assert.Nil(t, payout)
	})
}

func TestRepository_Approve(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("pending payout approved", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'approved', processed_at = now()`)).
			WithArgs(int64(1)).
			WillReturnRows(payoutRow(mock, "approved"))

		payout, err := repo.Approve(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "approved", payout.Status)
	})

	t.Run("guard misses on second approval", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'approved', processed_at = now()`)).
			WithArgs(int64(1)).
			WillReturnError(pgx.ErrNoRows)

		payout, err := repo.Approve(ctx, 1)
		assert.NoError(t, err)
		assert.Nil(t, payout)
	})
}

func TestRepository_Reject(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("pending payout rejected", func(t *testing.T) {
		rows := mock.NewRows(payoutRowColumns).AddRow(
			int64(1), int64(7), int64(2), decimal.RequireFromString("30"), "paypal", "creator@example.com",
			"", "rejected", nil, "missing analytics", time.Now(), nil,
		)
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'rejected', rejection_reason = $1`)).
			WithArgs("missing analytics", int64(1)).
			WillReturnRows(rows)

		payout, err := repo.Reject(ctx, 1, "missing analytics")
		assert.NoError(t, err)
		assert.Equal(t, "missing analytics", payout.RejectionReason)
	})

	t.Run("guard misses on processed payout", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'rejected', rejection_reason = $1`)).
			WithArgs("missing analytics", int64(1)).
			WillReturnError(pgx.ErrNoRows)

		payout, err := repo.Reject(ctx, 1, "missing analytics")
		assert.NoError(t, err)
		assert.Nil(t, payout)
	})
}

func TestRepository_SetTicket(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE payouts SET ticket_id = $1 WHERE id = $2`)).
		WithArgs(int64(55), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.SetTicket(ctx, 1, 55))
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	rows := mock.NewRows(payoutRowColumns).
		AddRow(int64(2), int64(7), int64(2), decimal.RequireFromString("10"), "paypal", "creator@example.com",
			"", "pending", nil, "", time.Now(), nil).
		AddRow(int64(1), int64(7), int64(2), decimal.RequireFromString("30"), "paypal", "creator@example.com",
			"", "approved", nil, "", time.Now(), nil)
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY requested_at DESC`)).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	payouts, err := repo.ListByUser(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, payouts, 2)
	assert.Equal(t, int64(2), payouts[0].ID)
}
