package ticketrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	rows := mock.NewRows([]string{"id", "user_id", "type", "related_id", "reference", "status", "created_at"}).
		AddRow(int64(55), int64(7), "payout", int64(1), "a3f0c1d2", "open", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO tickets (user_id, type, related_id, reference)`)).
		WithArgs(int64(7), "payout", int64(1), "a3f0c1d2").
		WillReturnRows(rows)

	created, err := repo.Create(ctx, &domain.Ticket{
		UserID:    7,
		Type:      "payout",
		RelatedID: 1,
		Reference: "a3f0c1d2",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(55), created.ID)
	assert.Equal(t, "open", created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Close(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE tickets SET status = 'closed' WHERE id = $1`)).
		WithArgs(int64(55)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Close(ctx, 55))
}
