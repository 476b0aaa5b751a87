package budgetservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/internal/service/earnings"
)

type CampaignRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	AddBudgetSpent(ctx context.Context, id int64, delta decimal.Decimal) (*domain.Campaign, error)
	SetMilestone(ctx context.Context, id int64, percent int) (bool, error)
	Stats(ctx context.Context, campaignID int64) (*domain.CampaignStats, error)
}

type Notifier interface {
	MilestoneReached(ctx context.Context, campaign *domain.Campaign, percent int, stats *domain.CampaignStats, snapshot *domain.BudgetSnapshot) error
}

// Milestones are the fixed spend thresholds, checked in ascending order so a
// single large approval fires every intervening one.
var Milestones = []int{25, 50, 75, 100}

var (
	oneHundred = decimal.NewFromInt(100)
	one        = decimal.NewFromInt(1)
)

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

// Snapshot derives the budget state of a campaign. TotalBudget of zero means
// the campaign is untracked; the percentage then uses denominator 1 and is
// ignored by the milestone logic.
func Snapshot(campaign *domain.Campaign) *domain.BudgetSnapshot {
	denominator := campaign.TotalBudget
	if denominator.IsZero() {
		denominator = one
	}
	var reached []int
	latches := []struct {
		percent int
		latched bool
	}{
		{25, campaign.Milestone25},
		{50, campaign.Milestone50},
		{75, campaign.Milestone75},
		{100, campaign.Milestone100},
	}
	for _, l := range latches {
		if l.latched {
			reached = append(reached, l.percent)
		}
	}
	return &domain.BudgetSnapshot{
		CampaignID:        campaign.ID,
		TotalBudget:       campaign.TotalBudget,
		BudgetSpent:       campaign.BudgetSpent,
		BudgetLeft:        campaign.TotalBudget.Sub(campaign.BudgetSpent),
		PercentageUsed:    campaign.BudgetSpent.Div(denominator).Mul(oneHundred),
		MilestonesReached: reached,
	}
}

// AddSpend attributes the earnings for finalizedViews to the campaign budget.
// Callers updating an already-counted submission must pass a view delta, not
// the cumulative count. Returns (nil, nil) when the campaign does not exist;
// callers treat that as a no-op.
func (s *Service) AddSpend(ctx context.Context, campaignID, finalizedViews int64) (*domain.BudgetSnapshot, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, nil
	}

	amount := earnings.Calculate(finalizedViews, campaign.RatePer1K)
	updated, err := s.campaignRepo.AddBudgetSpent(ctx, campaignID, amount)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	return Snapshot(updated), nil
}

// ApplySpendDelta adds an already-computed earnings delta to the budget. The
// view-update path uses this with signed amounts.
func (s *Service) ApplySpendDelta(ctx context.Context, campaignID int64, delta decimal.Decimal) (*domain.BudgetSnapshot, error) {
	updated, err := s.campaignRepo.AddBudgetSpent(ctx, campaignID, delta)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	return Snapshot(updated), nil
}

// CheckMilestones latches and announces every threshold the campaign spend
// has crossed. Each latch is claimed with an atomic compare-and-set, so a
// threshold is announced exactly once over the campaign's lifetime no matter
// how many processes run the check concurrently. A failed notification does
// not unset the latch: accounting is authoritative, delivery is best-effort.
func (s *Service) CheckMilestones(ctx context.Context, campaignID int64) error {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign == nil || campaign.TotalBudget.IsZero() {
		return nil
	}

	percentage := campaign.BudgetSpent.Div(campaign.TotalBudget).Mul(oneHundred)

	for _, percent := range Milestones {
		if percentage.LessThan(decimal.NewFromInt(int64(percent))) {
			continue
		}
		claimed, err := s.campaignRepo.SetMilestone(ctx, campaignID, percent)
		if err != nil {
			return err
		}
		if !claimed {
			continue
		}

		stats, err := s.campaignRepo.Stats(ctx, campaignID)
		if err != nil {
			zap.L().Error("can't load stats for milestone notification",
				zap.Int64("campaignID", campaignID), zap.Error(err))
			stats = &domain.CampaignStats{}
		}
		if err := s.notifier.MilestoneReached(ctx, campaign, percent, stats, Snapshot(campaign)); err != nil {
			zap.L().Warn("milestone notification failed",
				zap.Int64("campaignID", campaignID), zap.Int("percent", percent), zap.Error(err))
		}
	}
	return nil
}
