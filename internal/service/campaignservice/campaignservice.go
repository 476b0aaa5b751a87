package campaignservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/internal/service/budgetservice"
	"github.com/cliphub/cliphub/internal/service/earnings"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrCampaignExists   = errors.New("campaign name already taken")
	ErrInvalidRate      = errors.New("rate per 1k views must be positive")
	ErrNotActive        = errors.New("campaign is not active")
	ErrNotPaused        = errors.New("campaign is not paused")
	ErrAlreadyEnded     = errors.New("campaign already ended")
	ErrAlreadyMember    = errors.New("user already joined the campaign")
)

type CampaignRepo interface {
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	GetByName(ctx context.Context, name string) (*domain.Campaign, error)
	Update(ctx context.Context, campaign *domain.Campaign) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	SetEnded(ctx context.Context, id int64) (bool, error)
	AddMember(ctx context.Context, campaignID, userID int64) (bool, error)
	ListActiveWithBudget(ctx context.Context) ([]domain.Campaign, error)
	Stats(ctx context.Context, campaignID int64) (*domain.CampaignStats, error)
	MemberStats(ctx context.Context, campaignID, userID int64) (*domain.MemberStats, error)
	ListMemberIDs(ctx context.Context, campaignID int64) ([]int64, error)
	Leaderboard(ctx context.Context, campaignID int64, limit int) ([]domain.LeaderboardEntry, error)
}

type Notifier interface {
	CampaignStarted(ctx context.Context, campaign *domain.Campaign) error
	CampaignEnded(ctx context.Context, campaign *domain.Campaign, stats *domain.CampaignStats) error
	MemberSummary(ctx context.Context, userID int64, campaign *domain.Campaign, stats *domain.MemberStats, earned decimal.Decimal) error
}

type Service struct {
	campaignRepo CampaignRepo
	notifier     Notifier
}

func New(campaignRepo CampaignRepo, notifier Notifier) *Service {
	return &Service{
		campaignRepo: campaignRepo,
		notifier:     notifier,
	}
}

// Create registers a new campaign. Names are unique so submission commands
// can reference campaigns by name.
func (s *Service) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if !campaign.RatePer1K.IsPositive() {
		return nil, ErrInvalidRate
	}

	existing, err := s.campaignRepo.GetByName(ctx, campaign.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCampaignExists
	}

	campaign.Status = domain.CampaignStatusActive
	created, err := s.campaignRepo.Create(ctx, campaign)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.CampaignStarted(ctx, created); err != nil {
		zap.L().Warn("campaign announcement failed", zap.Int64("campaignID", created.ID), zap.Error(err))
	}
	return created, nil
}

// Edit updates mutable campaign fields. Spend counters and milestone latches
// are never written here; those move only through settlement.
func (s *Service) Edit(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	current, err := s.campaignRepo.GetByID(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrCampaignNotFound
	}
	if current.Status == domain.CampaignStatusEnded {
		return nil, ErrAlreadyEnded
	}
	if !campaign.RatePer1K.IsPositive() {
		return nil, ErrInvalidRate
	}
	if campaign.Name != current.Name {
		other, err := s.campaignRepo.GetByName(ctx, campaign.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != campaign.ID {
			return nil, ErrCampaignExists
		}
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return s.campaignRepo.GetByID(ctx, campaign.ID)
}

// Pause stops a campaign from accepting submissions. Approved submissions
// keep earning through view updates.
func (s *Service) Pause(ctx context.Context, id int64) error {
	campaign, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if campaign.Status != domain.CampaignStatusActive {
		return ErrNotActive
	}
	return s.campaignRepo.UpdateStatus(ctx, id, domain.CampaignStatusPaused)
}

func (s *Service) Resume(ctx context.Context, id int64) error {
	campaign, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if campaign.Status != domain.CampaignStatusPaused {
		return ErrNotPaused
	}
	return s.campaignRepo.UpdateStatus(ctx, id, domain.CampaignStatusActive)
}

// End closes the campaign permanently. The store-level guard makes a
// concurrent double-end settle once; ended campaigns stay readable for stats
// and payouts.
func (s *Service) End(ctx context.Context, id int64) (*domain.Campaign, error) {
	ended, err := s.campaignRepo.SetEnded(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ended {
		campaign, err := s.campaignRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if campaign == nil {
			return nil, ErrCampaignNotFound
		}
		return nil, ErrAlreadyEnded
	}

	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.campaignRepo.Stats(ctx, id)
	if err != nil {
		zap.L().Error("can't load stats for campaign wrap-up", zap.Int64("campaignID", id), zap.Error(err))
		stats = &domain.CampaignStats{}
	}
	if err := s.notifier.CampaignEnded(ctx, campaign, stats); err != nil {
		zap.L().Warn("campaign wrap-up announcement failed", zap.Int64("campaignID", id), zap.Error(err))
	}
	s.sendMemberSummaries(ctx, campaign)
	return campaign, nil
}

// sendMemberSummaries DMs each member their final numbers. Delivery is
// best-effort, the campaign is already ended either way.
func (s *Service) sendMemberSummaries(ctx context.Context, campaign *domain.Campaign) {
	memberIDs, err := s.campaignRepo.ListMemberIDs(ctx, campaign.ID)
	if err != nil {
		zap.L().Error("can't list members for campaign wrap-up", zap.Int64("campaignID", campaign.ID), zap.Error(err))
		return
	}
	for _, userID := range memberIDs {
		stats, err := s.campaignRepo.MemberStats(ctx, campaign.ID, userID)
		if err != nil {
			zap.L().Error("can't load member stats for campaign wrap-up",
				zap.Int64("campaignID", campaign.ID), zap.Int64("userID", userID), zap.Error(err))
			continue
		}
		earned := earnings.Calculate(stats.Views, campaign.RatePer1K)
		if err := s.notifier.MemberSummary(ctx, userID, campaign, stats, earned); err != nil {
			zap.L().Warn("member wrap-up message failed",
				zap.Int64("campaignID", campaign.ID), zap.Int64("userID", userID), zap.Error(err))
		}
	}
}

// Join enrolls a user; duplicate joins are idempotent at the store level and
// surfaced as ErrAlreadyMember.
func (s *Service) Join(ctx context.Context, campaignID, userID int64) error {
	campaign, err := s.get(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign.Status != domain.CampaignStatusActive {
		return ErrNotActive
	}

	added, err := s.campaignRepo.AddMember(ctx, campaignID, userID)
	if err != nil {
		return err
	}
	if !added {
		return ErrAlreadyMember
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	return s.get(ctx, id)
}

func (s *Service) GetByName(ctx context.Context, name string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Campaign, error) {
	return s.campaignRepo.ListActiveWithBudget(ctx)
}

// Stats returns campaign aggregates together with the budget snapshot.
func (s *Service) Stats(ctx context.Context, id int64) (*domain.CampaignStats, *domain.BudgetSnapshot, error) {
	campaign, err := s.get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	stats, err := s.campaignRepo.Stats(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return stats, budgetservice.Snapshot(campaign), nil
}

func (s *Service) MemberStats(ctx context.Context, campaignID, userID int64) (*domain.MemberStats, error) {
	if _, err := s.get(ctx, campaignID); err != nil {
		return nil, err
	}
	return s.campaignRepo.MemberStats(ctx, campaignID, userID)
}

func (s *Service) Leaderboard(ctx context.Context, campaignID int64, limit int) ([]domain.LeaderboardEntry, error) {
	if _, err := s.get(ctx, campaignID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.campaignRepo.Leaderboard(ctx, campaignID, limit)
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}
