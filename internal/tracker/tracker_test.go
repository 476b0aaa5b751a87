package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/cliphub/cliphub/internal/domain"
)

type fixture struct {
	tracker     *Tracker
	submissions *MockSubmissionService
	campaigns   *MockCampaignService
	budget      *MockBudget
	provider    *MockViewProvider
	notifier    *MockNotifier
}

func setup(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		submissions: NewMockSubmissionService(ctrl),
		campaigns:   NewMockCampaignService(ctrl),
		budget:      NewMockBudget(ctrl),
		provider:    NewMockViewProvider(ctrl),
		notifier:    NewMockNotifier(ctrl),
	}
	f.tracker = New(
		f.submissions, f.campaigns, f.budget, f.provider, f.notifier,
		time.Hour, 30*time.Minute, 10000,
	)
	return f
}

func approvedSubmission(id, views int64) domain.Submission {
	return domain.Submission{
		ID:         id,
		CampaignID: 1,
		UserID:     7,
		Platform:   "youtube",
		VideoLink:  "https://youtu.be/abc",
		Views:      views,
		Status:     domain.SubmissionStatusApproved,
	}
}

func TestTracker_RefreshViews(t *testing.T) {
	ctx := context.Background()

	t.Run("updates changed counts", func(t *testing.T) {
		f := setup(t)
		f.submissions.EXPECT().ListApproved(ctx, uint32(1000)).
			Return([]domain.Submission{approvedSubmission(5, 1000)}, nil)
		f.provider.EXPECT().Views(ctx, "youtube", "https://youtu.be/abc").Return(int64(1500), nil)
		f.submissions.EXPECT().UpdateViews(ctx, int64(5), int64(1500)).
			Return(&domain.Submission{ID: 5, Views: 1500}, nil)

		f.tracker.refreshViews(ctx)
		f.tracker.workerPool.Close()
		waitIdle(t, f.tracker)
	})

	t.Run("unchanged counts are skipped", func(t *testing.T) {
		f := setup(t)
		f.submissions.EXPECT().ListApproved(ctx, uint32(1000)).
			Return([]domain.Submission{approvedSubmission(5, 1000)}, nil)
		f.provider.EXPECT().Views(ctx, "youtube", "https://youtu.be/abc").Return(int64(1000), nil)

		f.tracker.refreshViews(ctx)
		f.tracker.workerPool.Close()
		waitIdle(t, f.tracker)
	})

	t.Run("provider failure leaves the submission untouched", func(t *testing.T) {
		f := setup(t)
		f.submissions.EXPECT().ListApproved(ctx, uint32(1000)).
			Return([]domain.Submission{approvedSubmission(5, 1000)}, nil)
		f.provider.EXPECT().Views(ctx, "youtube", "https://youtu.be/abc").
			Return(int64(0), errors.New("quota exceeded"))

		f.tracker.refreshViews(ctx)
		f.tracker.workerPool.Close()
		waitIdle(t, f.tracker)
	})

	t.Run("spike flags the submission and alerts", func(t *testing.T) {
		f := setup(t)
		submission := approvedSubmission(5, 1000)
		f.submissions.EXPECT().ListApproved(ctx, uint32(1000)).
			Return([]domain.Submission{submission}, nil)
		f.provider.EXPECT().Views(ctx, "youtube", "https://youtu.be/abc").Return(int64(50000), nil)
		f.submissions.EXPECT().Flag(ctx, int64(5), "Suspicious view spike detected").
			Return(&domain.Submission{ID: 5, Flagged: true}, nil)
		f.notifier.EXPECT().ViewSpikeDetected(ctx, gomock.Any(), int64(1000), int64(50000)).Return(nil)
		f.submissions.EXPECT().UpdateViews(ctx, int64(5), int64(50000)).
			Return(&domain.Submission{ID: 5, Views: 50000}, nil)

		f.tracker.refreshViews(ctx)
		f.tracker.workerPool.Close()
		waitIdle(t, f.tracker)
	})
}

func TestTracker_RescanBudgets(t *testing.T) {
	ctx := context.Background()

	t.Run("checks every active campaign", func(t *testing.T) {
		f := setup(t)
		f.campaigns.EXPECT().ListActive(ctx).
			Return([]domain.Campaign{{ID: 1}, {ID: 2}}, nil)
		f.budget.EXPECT().CheckMilestones(ctx, int64(1)).Return(nil)
		f.budget.EXPECT().CheckMilestones(ctx, int64(2)).Return(nil)

		f.tracker.rescanBudgets(ctx)
	})

	t.Run("one failure does not stop the sweep", func(t *testing.T) {
		f := setup(t)
		f.campaigns.EXPECT().ListActive(ctx).
			Return([]domain.Campaign{{ID: 1}, {ID: 2}}, nil)
		f.budget.EXPECT().CheckMilestones(ctx, int64(1)).Return(errors.New("db down"))
		f.budget.EXPECT().CheckMilestones(ctx, int64(2)).Return(nil)

		f.tracker.rescanBudgets(ctx)
	})
}

// waitIdle blocks until all in-flight submissions have been released by the
// worker goroutines.
func waitIdle(t *testing.T, tr *Tracker) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		busy := false
		tr.inFlight.Range(func(_, _ any) bool {
			busy = true
			return false
		})
		if !busy {
			return
		}
		select {
		case <-deadline:
			t.Fatal("tracker workers did not drain")
		case <-time.After(5 * time.Millisecond):
		}
	}
}
