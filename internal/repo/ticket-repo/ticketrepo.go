package ticketrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	query := `
		INSERT INTO tickets (user_id, type, related_id, reference)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, type, related_id, reference, status, created_at
	`
	row := r.db.QueryRow(ctx, query, ticket.UserID, ticket.Type, ticket.RelatedID, ticket.Reference)
	var created domain.Ticket
	err := row.Scan(&created.ID, &created.UserID, &created.Type, &created.RelatedID,
		&created.Reference, &created.Status, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create ticket", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) Close(ctx context.Context, id int64) error {
	query := `UPDATE tickets SET status = 'closed' WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't close ticket", zap.Error(err))
		return err
	}
	return nil
}
