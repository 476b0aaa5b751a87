package payoutrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/internal/pg"
)

const payoutColumns = `id, user_id, campaign_id, amount, payout_method, payout_address,
		analytics_proof, status, ticket_id, rejection_reason, requested_at, processed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanPayout(row pgx.Row) (*domain.Payout, error) {
	var p domain.Payout
	err := row.Scan(
		&p.ID, &p.UserID, &p.CampaignID, &p.Amount, &p.PayoutMethod, &p.PayoutAddress,
		&p.AnalyticsProof, &p.Status, &p.TicketID, &p.RejectionReason,
		&p.RequestedAt, &p.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error) {
	query := `
		INSERT INTO payouts (user_id, campaign_id, amount, payout_method, payout_address, analytics_proof)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + payoutColumns
	row := r.db.QueryRow(ctx, query,
		payout.UserID, payout.CampaignID, payout.Amount,
		payout.PayoutMethod, payout.PayoutAddress, payout.AnalyticsProof,
	)
	created, err := scanPayout(row)
	if err != nil {
		zap.L().Error("can't create payout", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE id = $1`
	payout, err := scanPayout(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

func (r *Repository) SetTicket(ctx context.Context, payoutID, ticketID int64) error {
	query := `UPDATE payouts SET ticket_id = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, ticketID, payoutID)
	if err != nil {
		zap.L().Error("can't link payout ticket", zap.Error(err))
		return err
	}
	return nil
}

// Approve finalizes a pending payout. The status guard means only one caller
// observes the transition; nil reports "not pending or absent".
func (r *Repository) Approve(ctx context.Context, id int64) (*domain.Payout, error) {
	query := `
		UPDATE payouts
		SET status = 'approved', processed_at = now()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + payoutColumns
	payout, err := scanPayout(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't approve payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

func (r *Repository) Reject(ctx context.Context, id int64, reason string) (*domain.Payout, error) {
	query := `
		UPDATE payouts
		SET status = 'rejected', rejection_reason = $1, processed_at = now()
		WHERE id = $2 AND status = 'pending'
		RETURNING ` + payoutColumns
	payout, err := scanPayout(r.db.QueryRow(ctx, query, reason, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't reject payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]domain.Payout, error) {
	query := `
		SELECT ` + payoutColumns + `
		FROM payouts
		WHERE user_id = $1
		ORDER BY requested_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		payout, err := scanPayout(rows)
		if err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, *payout)
	}
	return payouts, rows.Err()
}
