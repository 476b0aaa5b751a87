package submissionrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

var submissionRowColumns = []string{
	"id", "campaign_id", "user_id", "video_link", "platform", "views",
	"analytics_proof", "status", "flagged", "flag_reason", "submitted_at", "updated_at", "reviewed_at",
}

func submissionRow(mock pgxmock.PgxPoolIface, status string, views int64) *pgxmock.Rows {
	return mock.NewRows(submissionRowColumns).AddRow(
		int64(1), int64(2), int64(7), "https://youtu.be/abc123", "youtube", views,
		"", status, false, "", time.Now(), time.Now(), nil,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO submissions`)).
		WithArgs(int64(2), int64(7), "https://youtu.be/abc123", "youtube", int64(0), "", false, "").
		WillReturnRows(submissionRow(mock, "pending", 0))

	created, err := repo.Create(ctx, &domain.Submission{
		CampaignID: 2,
		UserID:     7,
		VideoLink:  "https://youtu.be/abc123",
		Platform:   "youtube",
	})
	assert.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActiveByLink(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("live submission found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE video_link = $1 AND status <> 'rejected'`)).
			WithArgs("https://youtu.be/abc123").
			WillReturnRows(submissionRow(mock, "pending", 0))

		submission, err := repo.GetActiveByLink(ctx, "https://youtu.be/abc123")
		assert.NoError(t, err)
		assert.NotNil(t, submission)
	})

	t.Run("link free", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE video_link = $1 AND status <> 'rejected'`)).
			WithArgs("https://youtu.be/other").
			WillReturnError(pgx.ErrNoRows)

		submission, err := repo.GetActiveByLink(ctx, "https://youtu.be/other")
		assert.NoError(t, err)
		assert.Nil(t, submission)
	})
}

func TestRepository_HasRejectedByOtherUser(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`user_id <> $2 AND status = 'rejected'`)).
		WithArgs("https://youtu.be/abc123", int64(7)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(true))

	reused, err := repo.HasRejectedByOtherUser(ctx, "https://youtu.be/abc123", 7)
	assert.NoError(t, err)
	assert.True(t, reused)
}

func TestRepository_Approve(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("pending submission approved", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'approved', views = $1`)).
			WithArgs(int64(1000), int64(1)).
			WillReturnRows(submissionRow(mock, "approved", 1000))

		submission, err := repo.Approve(ctx, 1, 1000)
		assert.NoError(t, err)
		assert.Equal(t, "approved", submission.Status)
		assert.Equal(t, int64(1000), submission.Views)
	})

	t.Run("guard misses on second approval", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'approved', views = $1`)).
			WithArgs(int64(1000), int64(1)).
			WillReturnError(pgx.ErrNoRows)

		submission, err := repo.Approve(ctx, 1, 1000)
		assert.NoError(t, err)
		assert.Nil(t, submission)
	})
}

func TestRepository_SetViews(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("approved submission updated", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $2 AND status = 'approved'`)).
			WithArgs(int64(2500), int64(1)).
			WillReturnRows(submissionRow(mock, "approved", 2500))

		submission, err := repo.SetViews(ctx, 1, 2500)
		assert.NoError(t, err)
		assert.Equal(t, int64(2500), submission.Views)
	})

	t.Run("pending submission untouched", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $2 AND status = 'approved'`)).
			WithArgs(int64(2500), int64(1)).
			WillReturnError(pgx.ErrNoRows)

		submission, err := repo.SetViews(ctx, 1, 2500)
		assert.NoError(t, err)
		assert.Nil(t, submission)
	})
}

func TestRepository_Reject(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'rejected'`)).
		WithArgs(int64(1)).
		WillReturnRows(submissionRow(mock, "rejected", 0))

	submission, err := repo.Reject(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "rejected", submission.Status)
}

func TestRepository_SetFlag(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	rows := mock.NewRows(submissionRowColumns).AddRow(
		int64(1), int64(2), int64(7), "https://youtu.be/abc123", "youtube", int64(0),
		"", "pending", true, "Suspicious view spike detected", time.Now(), time.Now(), nil,
	)
	mock.ExpectQuery(regexp.QuoteMeta(`SET flagged = TRUE, flag_reason = $1`)).
		WithArgs("Suspicious view spike detected", int64(1)).
		WillReturnRows(rows)

	submission, err := repo.SetFlag(ctx, 1, "Suspicious view spike detected")
	assert.NoError(t, err)
	assert.True(t, submission.Flagged)
	assert.Equal(t, "Suspicious view spike detected", submission.FlagReason)
}

func TestRepository_ListApproved(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	rows := mock.NewRows(submissionRowColumns).
		AddRow(int64(1), int64(2), int64(7), "https://youtu.be/abc123", "youtube", int64(1000),
			"", "approved", false, "", time.Now(), time.Now(), nil).
		AddRow(int64(2), int64(2), int64(8), "https://youtu.be/def456", "youtube", int64(400),
			"", "approved", false, "", time.Now(), time.Now(), nil)
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY updated_at ASC`)).
		WithArgs(1000).
		WillReturnRows(rows)

	submissions, err := repo.ListApproved(ctx, 1000)
	assert.NoError(t, err)
	assert.Len(t, submissions, 2)
}

func TestRepository_InsertViewLog(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO view_logs`)).
		WithArgs(int64(1), int64(1000), "youtube").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.InsertViewLog(ctx, 1, 1000, "youtube"))
}
