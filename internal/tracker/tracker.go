package tracker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cliphub/cliphub/internal/domain"
)

type SubmissionService interface {
	ListApproved(ctx context.Context, limit uint32) ([]domain.Submission, error)
	UpdateViews(ctx context.Context, id, newViews int64) (*domain.Submission, error)
	Flag(ctx context.Context, id int64, reason string) (*domain.Submission, error)
}

type CampaignService interface {
	ListActive(ctx context.Context) ([]domain.Campaign, error)
}

type Budget interface {
	CheckMilestones(ctx context.Context, campaignID int64) error
}

type ViewProvider interface {
	Views(ctx context.Context, platform, link string) (int64, error)
}

type Notifier interface {
	ViewSpikeDetected(ctx context.Context, submission *domain.Submission, previous, current int64) error
}

// Tracker runs the background reconciliation loops: a periodic view refresh
// over approved submissions and a slower budget rescan that re-checks
// milestone latches. The latches are one-shot in the store, so the rescan is
// safe to overlap with approval-time checks.
type Tracker struct {
	submissions SubmissionService
	campaigns   CampaignService
	budget      Budget
	provider    ViewProvider
	notifier    Notifier
	workerPool  WorkerPoolI

	trackInterval       time.Duration
	budgetCheckInterval time.Duration
	batchLimit          uint32
	spikeThreshold      int64

	inFlight sync.Map
}

func New(
	submissions SubmissionService,
	campaigns CampaignService,
	budget Budget,
	provider ViewProvider,
	notifier Notifier,
	trackInterval, budgetCheckInterval time.Duration,
	spikeThreshold int64,
) *Tracker {
	return &Tracker{
		submissions:         submissions,
		campaigns:           campaigns,
		budget:              budget,
		provider:            provider,
		notifier:            notifier,
		workerPool:          NewWorkerPool(10),
		trackInterval:       trackInterval,
		budgetCheckInterval: budgetCheckInterval,
		batchLimit:          1000,
		spikeThreshold:      spikeThreshold,
	}
}

func (t *Tracker) Start(ctx context.Context) {
	zap.L().Info("view tracker started",
		zap.Duration("trackInterval", t.trackInterval),
		zap.Duration("budgetCheckInterval", t.budgetCheckInterval))
	go t.runViewRefresh(ctx)
	go t.runBudgetRescan(ctx)
}

func (t *Tracker) runViewRefresh(ctx context.Context) {
	ticker := time.NewTicker(t.trackInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("view tracker stopped")
			t.workerPool.Close()
			return
		case <-ticker.C:
			t.refreshViews(ctx)
		}
	}
}

func (t *Tracker) refreshViews(ctx context.Context) {
	submissions, err := t.submissions.ListApproved(ctx, t.batchLimit)
	if err != nil {
		zap.L().Error("can't list submissions for tracking", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, submission := range submissions {
		submission := submission

		if _, loaded := t.inFlight.LoadOrStore(submission.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := t.workerPool.AddTask(ctx, func() error {
				defer t.inFlight.Delete(submission.ID)
				return t.refreshOne(ctx, submission)
			})
			if err != nil {
				t.inFlight.Delete(submission.ID)
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("view refresh batch failed", zap.Error(err))
	}
}

func (t *Tracker) refreshOne(ctx context.Context, submission domain.Submission) error {
	current, err := t.provider.Views(ctx, submission.Platform, submission.VideoLink)
	if err != nil {
		zap.L().Debug("view lookup failed",
			zap.Int64("submissionID", submission.ID),
			zap.String("platform", submission.Platform),
			zap.Error(err))
		return nil
	}
	if current == submission.Views {
		return nil
	}

	if delta := current - submission.Views; delta > t.spikeThreshold {
		zap.L().Warn("suspicious view spike",
			zap.Int64("submissionID", submission.ID),
			zap.Int64("previous", submission.Views),
			zap.Int64("current", current))
		if _, err := t.submissions.Flag(ctx, submission.ID, "Suspicious view spike detected"); err != nil {
			zap.L().Error("can't flag submission", zap.Int64("submissionID", submission.ID), zap.Error(err))
		}
		if err := t.notifier.ViewSpikeDetected(ctx, &submission, submission.Views, current); err != nil {
			zap.L().Warn("spike notification failed", zap.Int64("submissionID", submission.ID), zap.Error(err))
		}
	}

	if _, err := t.submissions.UpdateViews(ctx, submission.ID, current); err != nil {
		zap.L().Error("can't update tracked views",
			zap.Int64("submissionID", submission.ID), zap.Error(err))
	}
	return nil
}

func (t *Tracker) runBudgetRescan(ctx context.Context) {
	ticker := time.NewTicker(t.budgetCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("budget rescan stopped")
			return
		case <-ticker.C:
			t.rescanBudgets(ctx)
		}
	}
}

func (t *Tracker) rescanBudgets(ctx context.Context) {
	campaigns, err := t.campaigns.ListActive(ctx)
	if err != nil {
		zap.L().Error("can't list campaigns for budget rescan", zap.Error(err))
		return
	}
	for _, campaign := range campaigns {
		if err := t.budget.CheckMilestones(ctx, campaign.ID); err != nil {
			zap.L().Error("budget rescan failed",
				zap.Int64("campaignID", campaign.ID), zap.Error(err))
		}
	}
}
