package campaignrepo

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

var campaignRowColumns = []string{
	"id", "name", "description", "type", "platforms", "content_source",
	"rate_per_1k", "total_budget", "budget_spent", "status", "announce_chat_id",
	"milestone_25", "milestone_50", "milestone_75", "milestone_100", "created_at", "ended_at",
}

func campaignRow(mock pgxmock.PgxPoolIface, spent string) *pgxmock.Rows {
	return mock.NewRows(campaignRowColumns).AddRow(
		int64(1), "spring-push", "clip this", "clipping", []string{"youtube", "tiktok"}, "https://drive.example.com/folder",
		decimal.RequireFromString("5"), decimal.RequireFromString("1000"), decimal.RequireFromString(spent),
		"active", int64(-42), false, false, false, false, time.Now(), nil,
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
			name: "campaign found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM campaigns WHERE id = $1`)).
					WithArgs(int64(1)).
					WillReturnRows(campaignRow(mock, "0"))
			},
			found: true,
		},
		{
			name: "campaign not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM campaigns WHERE id = $1`)).
					WithArgs(int64(1)).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "query error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM campaigns WHERE id = $1`)).
					WithArgs(int64(1)).
					WillReturnError(errors.New("connection refused"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			campaign, err := repo.GetByID(ctx, 1)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, "spring-push", campaign.Name)
				assert.Equal(t, []string{"youtube", "tiktok"}, campaign.Platforms)
			} else {
				assert.Nil(t, campaign)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AddBudgetSpent(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()
	delta := decimal.RequireFromString("5")

	t.Run("increments and returns the row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET budget_spent = budget_spent + $1`)).
			WithArgs(delta, int64(1)).
			WillReturnRows(campaignRow(mock, "5"))

		campaign, err := repo.AddBudgetSpent(ctx, 1, delta)
		assert.NoError(t, err)
		assert.True(t, campaign.BudgetSpent.Equal(delta))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent campaign", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET budget_spent = budget_spent + $1`)).
			WithArgs(delta, int64(404)).
			WillReturnError(pgx.ErrNoRows)

		campaign, err := repo.AddBudgetSpent(ctx, 404, delta)
		assert.NoError(t, err)
		assert.Nil(t, campaign)
	})
}

func TestRepository_SetMilestone(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("claims an unset latch", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET milestone_50 = TRUE WHERE id = $1 AND milestone_50 = FALSE`)).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		claimed, err := repo.SetMilestone(ctx, 1, 50)
		assert.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("already latched", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET milestone_50 = TRUE WHERE id = $1 AND milestone_50 = FALSE`)).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		claimed, err := repo.SetMilestone(ctx, 1, 50)
		assert.NoError(t, err)
		assert.False(t, claimed)
	})

	t.Run("unknown percent", func(t *testing.T) {
		_, err := repo.SetMilestone(ctx, 1, 33)
		assert.Error(t, err)
	})
}

func TestRepository_SetEnded(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("first end wins", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status <> 'ended'`)).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ended, err := repo.SetEnded(ctx, 1)
		assert.NoError(t, err)
		assert.True(t, ended)
	})

	t.Run("second end is a no-op", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status <> 'ended'`)).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ended, err := repo.SetEnded(ctx, 1)
		assert.NoError(t, err)
		assert.False(t, ended)
	})
}

func TestRepository_AddMember(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("new member", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO campaign_members`)).
			WithArgs(int64(1), int64(7)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		added, err := repo.AddMember(ctx, 1, 7)
		assert.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("duplicate join", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO campaign_members`)).
			WithArgs(int64(1), int64(7)).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		added, err := repo.AddMember(ctx, 1, 7)
		assert.NoError(t, err)
		assert.False(t, added)
	})
}

func TestRepository_Stats(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(views), 0), COUNT(*)`)).
		WithArgs(int64(1)).
		WillReturnRows(mock.NewRows([]string{"sum", "count"}).AddRow(int64(120000), int64(14)))

	stats, err := repo.Stats(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(120000), stats.TotalViews)
	assert.Equal(t, int64(14), stats.TotalSubmissions)
}

func TestRepository_Leaderboard(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	rows := mock.NewRows([]string{"user_id", "username", "views", "count"}).
		AddRow(int64(7), "creator", int64(9000), int64(3)).
		AddRow(int64(8), "other", int64(4000), int64(2))
	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY s.user_id, u.username`)).
		WithArgs(int64(1), 10).
		WillReturnRows(rows)

	entries, err := repo.Leaderboard(ctx, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "creator", entries[0].Username)
}
