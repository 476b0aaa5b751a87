package campaignrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/internal/pg"
)

const campaignColumns = `id, name, description, type, platforms, content_source,
		rate_per_1k, total_budget, budget_spent, status, announce_chat_id,
		milestone_25, milestone_50, milestone_75, milestone_100, created_at, ended_at`

var milestoneColumns = map[int]string{
	25:  "milestone_25",
	50:  "milestone_50",
	75:  "milestone_75",
	100: "milestone_100",
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Type, &c.Platforms, &c.ContentSource,
		&c.RatePer1K, &c.TotalBudget, &c.BudgetSpent, &c.Status, &c.AnnounceChatID,
		&c.Milestone25, &c.Milestone50, &c.Milestone75, &c.Milestone100,
		&c.CreatedAt, &c.EndedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	query := `
		INSERT INTO campaigns (name, description, type, platforms, content_source,
			rate_per_1k, total_budget, announce_chat_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + campaignColumns
	row := r.db.QueryRow(ctx, query,
		campaign.Name, campaign.Description, campaign.Type, campaign.Platforms,
		campaign.ContentSource, campaign.RatePer1K, campaign.TotalBudget, campaign.AnnounceChatID,
	)
	created, err := scanCampaign(row)
	if err != nil {
		zap.L().Error("can't create campaign", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`
	campaign, err := scanCampaign(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find campaign", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE name = $1`
	campaign, err := scanCampaign(r.db.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find campaign by name", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

func (r *Repository) Update(ctx context.Context, campaign *domain.Campaign) error {
	query := `
		UPDATE campaigns
		SET description = $1, type = $2, platforms = $3, content_source = $4,
			rate_per_1k = $5, total_budget = $6, announce_chat_id = $7
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query,
		campaign.Description, campaign.Type, campaign.Platforms, campaign.ContentSource,
		campaign.RatePer1K, campaign.TotalBudget, campaign.AnnounceChatID, campaign.ID,
	)
	if err != nil {
		zap.L().Error("can't update campaign", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE campaigns SET status = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update campaign status", zap.Error(err))
		return err
	}
	return nil
}

// SetEnded marks the campaign terminal. Ending an already-ended campaign is
// a no-op and reports false.
func (r *Repository) SetEnded(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE campaigns
		SET status = 'ended', ended_at = now()
		WHERE id = $1 AND status <> 'ended'
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't end campaign", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AddBudgetSpent increments budget_spent in a single statement so concurrent
// approvals never lose an update. Returns nil when the campaign is absent.
func (r *Repository) AddBudgetSpent(ctx context.Context, id int64, delta decimal.Decimal) (*domain.Campaign, error) {
	query := `
		UPDATE campaigns
		SET budget_spent = budget_spent + $1
		WHERE id = $2
		RETURNING ` + campaignColumns
	campaign, err := scanCampaign(r.db.QueryRow(ctx, query, delta, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't add budget spent", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

// SetMilestone claims a milestone latch. The WHERE clause makes the latch a
// one-way compare-and-set: only the caller that flips it gets true back.
func (r *Repository) SetMilestone(ctx context.Context, id int64, percent int) (bool, error) {
	column, ok := milestoneColumns[percent]
	if !ok {
		return false, fmt.Errorf("unknown milestone percent: %d", percent)
	}
	query := fmt.Sprintf(`UPDATE campaigns SET %s = TRUE WHERE id = $1 AND %s = FALSE`, column, column)
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't set milestone", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListActiveWithBudget(ctx context.Context) ([]domain.Campaign, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE status = 'active' AND total_budget > 0
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list campaigns with budget", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			zap.L().Error("can't scan campaign row", zap.Error(err))
			return nil, err
		}
		campaigns = append(campaigns, *campaign)
	}
	return campaigns, rows.Err()
}

// AddMember reports false when the user already joined.
func (r *Repository) AddMember(ctx context.Context, campaignID, userID int64) (bool, error) {
	query := `
		INSERT INTO campaign_members (campaign_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (campaign_id, user_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, campaignID, userID)
	if err != nil {
		zap.L().Error("can't add campaign member", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) IsMember(ctx context.Context, campaignID, userID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM campaign_members WHERE campaign_id = $1 AND user_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, campaignID, userID).Scan(&exists); err != nil {
		zap.L().Error("can't check campaign membership", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) ListMemberIDs(ctx context.Context, campaignID int64) ([]int64, error) {
	query := `SELECT user_id FROM campaign_members WHERE campaign_id = $1 ORDER BY joined_at ASC`
	rows, err := r.db.Query(ctx, query, campaignID)
	if err != nil {
		zap.L().Error("can't list campaign members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repository) Stats(ctx context.Context, campaignID int64) (*domain.CampaignStats, error) {
	query := `
		SELECT COALESCE(SUM(views), 0), COUNT(*)
		FROM submissions
		WHERE campaign_id = $1 AND status = 'approved'
	`
	var stats domain.CampaignStats
	if err := r.db.QueryRow(ctx, query, campaignID).Scan(&stats.TotalViews, &stats.TotalSubmissions); err != nil {
		zap.L().Error("can't get campaign stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

func (r *Repository) MemberStats(ctx context.Context, campaignID, userID int64) (*domain.MemberStats, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'approved' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'approved' THEN views ELSE 0 END), 0)
		FROM submissions
		WHERE campaign_id = $1 AND user_id = $2
	`
	var stats domain.MemberStats
	if err := r.db.QueryRow(ctx, query, campaignID, userID).Scan(&stats.Submissions, &stats.Approved, &stats.Views); err != nil {
		zap.L().Error("can't get member stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

func (r *Repository) Leaderboard(ctx context.Context, campaignID int64, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT s.user_id, u.username, COALESCE(SUM(s.views), 0), COUNT(*)
		FROM submissions s
		JOIN users u ON u.id = s.user_id
		WHERE s.campaign_id = $1 AND s.status = 'approved'
		GROUP BY s.user_id, u.username
		ORDER BY COALESCE(SUM(s.views), 0) DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, campaignID, limit)
	if err != nil {
		zap.L().Error("can't get leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.Views, &e.Submissions); err != nil {
			zap.L().Error("can't scan leaderboard row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
