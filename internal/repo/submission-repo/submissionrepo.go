package submissionrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/internal/pg"
)

const submissionColumns = `id, campaign_id, user_id, video_link, platform, views,
		analytics_proof, status, flagged, flag_reason, submitted_at, updated_at, reviewed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	var s domain.Submission
	err := row.Scan(
		&s.ID, &s.CampaignID, &s.UserID, &s.VideoLink, &s.Platform, &s.Views,
		&s.AnalyticsProof, &s.Status, &s.Flagged, &s.FlagReason,
		&s.SubmittedAt, &s.UpdatedAt, &s.ReviewedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, submission *domain.Submission) (*domain.Submission, error) {
	query := `
		INSERT INTO submissions (campaign_id, user_id, video_link, platform, views,
			analytics_proof, flagged, flag_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + submissionColumns
	row := r.db.QueryRow(ctx, query,
		submission.CampaignID, submission.UserID, submission.VideoLink, submission.Platform,
		submission.Views, submission.AnalyticsProof, submission.Flagged, submission.FlagReason,
	)
	created, err := scanSubmission(row)
	if err != nil {
		zap.L().Error("can't create submission", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`
	submission, err := scanSubmission(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find submission", zap.Error(err))
		return nil, err
	}
	return submission, nil
}

// GetActiveByLink finds any non-rejected submission carrying the link.
// Links are globally unique among live submissions.
func (r *Repository) GetActiveByLink(ctx context.Context, link string) (*domain.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE video_link = $1 AND status <> 'rejected'
		LIMIT 1
	`
	submission, err := scanSubmission(r.db.QueryRow(ctx, query, link))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find submission by link", zap.Error(err))
		return nil, err
	}
	return submission, nil
}

// HasRejectedByOtherUser reports whether the link was previously submitted
// and rejected under a different user, the reused-link flag signal.
func (r *Repository) HasRejectedByOtherUser(ctx context.Context, link string, userID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM submissions
			WHERE video_link = $1 AND user_id <> $2 AND status = 'rejected'
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, link, userID).Scan(&exists); err != nil {
		zap.L().Error("can't check reused link", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Approve finalizes a pending submission. The status guard makes the
// transition safe against double approval: only one caller gets a row back.
func (r *Repository) Approve(ctx context.Context, id, views int64) (*domain.Submission, error) {
	query := `
		UPDATE submissions
		SET status = 'approved', views = $1, reviewed_at = now(), updated_at = now()
		WHERE id = $2 AND status = 'pending'
		RETURNING ` + submissionColumns
	submission, err := scanSubmission(r.db.QueryRow(ctx, query, views, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't approve submission", zap.Error(err))
		return nil, err
	}
	return submission, nil
}

// SetViews records a corrected view count on an approved submission.
func (r *Repository) SetViews(ctx context.Context, id, views int64) (*domain.Submission, error) {
	query := `
		UPDATE submissions
		SET views = $1, updated_at = now()
		WHERE id = $2 AND status = 'approved'
		RETURNING ` + submissionColumns
	submission, err := scanSubmission(r.db.QueryRow(ctx, query, views, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update submission views", zap.Error(err))
		return nil, err
	}
	return submission, nil
}

func (r *Repository) Reject(ctx context.Context, id int64) (*domain.Submission, error) {
	query := `
		UPDATE submissions
		SET status = 'rejected', reviewed_at = now(), updated_at = now()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + submissionColumns
	submission, err := scanSubmission(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't reject submission", zap.Error(err))
		return nil, err
	}
	return submission, nil
}

func (r *Repository) SetFlag(ctx context.Context, id int64, reason string) (*domain.Submission, error) {
	query := `
		UPDATE submissions
		SET flagged = TRUE, flag_reason = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + submissionColumns
	submission, err := scanSubmission(r.db.QueryRow(ctx, query, reason, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't flag submission", zap.Error(err))
		return nil, err
	}
	return submission, nil
}

func (r *Repository) ListApproved(ctx context.Context, limit uint32) ([]domain.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE status = 'approved'
		ORDER BY updated_at ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't list approved submissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			zap.L().Error("can't scan submission row", zap.Error(err))
			return nil, err
		}
		submissions = append(submissions, *submission)
	}
	return submissions, rows.Err()
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]domain.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE user_id = $1
		ORDER BY submitted_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list submissions by user", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			zap.L().Error("can't scan submission row", zap.Error(err))
			return nil, err
		}
		submissions = append(submissions, *submission)
	}
	return submissions, rows.Err()
}

// InsertViewLog appends to the view audit trail. The table is append-only
// and never read back for computing state.
func (r *Repository) InsertViewLog(ctx context.Context, submissionID, views int64, platform string) error {
	query := `
		INSERT INTO view_logs (submission_id, views, platform)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, submissionID, views, platform)
	if err != nil {
		zap.L().Error("can't insert view log", zap.Error(err))
		return err
	}
	return nil
}
