package submissionservice

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/internal/pg"
	"github.com/cliphub/cliphub/internal/service/earnings"
	"github.com/cliphub/cliphub/pkg/validate"
)

var (
	ErrUserBanned         = errors.New("user is banned")
	ErrRateLimited        = errors.New("too many submissions, slow down")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrCampaignNotActive  = errors.New("campaign is not accepting submissions")
	ErrNotMember          = errors.New("user has not joined the campaign")
	ErrPlatformNotAllowed = errors.New("platform not allowed for this campaign")
	ErrProofRequired      = errors.New("analytics proof required for this platform")
	ErrDuplicateLink      = errors.New("link already submitted")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrNotPending         = errors.New("submission already reviewed")
	ErrNotApproved        = errors.New("submission is not approved")
	ErrUnreasonableViews  = errors.New("view count failed sanity check")
)

// proofPlatforms have no public view API worth trusting, so a screenshot of
// creator analytics is required at submit time.
var proofPlatforms = []string{"instagram", "twitter"}

type SubmissionRepo interface {
	Create(ctx context.Context, submission *domain.Submission) (*domain.Submission, error)
	GetByID(ctx context.Context, id int64) (*domain.Submission, error)
	GetActiveByLink(ctx context.Context, link string) (*domain.Submission, error)
	HasRejectedByOtherUser(ctx context.Context, link string, userID int64) (bool, error)
	Approve(ctx context.Context, id, views int64) (*domain.Submission, error)
	SetViews(ctx context.Context, id, views int64) (*domain.Submission, error)
	Reject(ctx context.Context, id int64) (*domain.Submission, error)
	SetFlag(ctx context.Context, id int64, reason string) (*domain.Submission, error)
	ListApproved(ctx context.Context, limit uint32) ([]domain.Submission, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Submission, error)
	InsertViewLog(ctx context.Context, submissionID, views int64, platform string) error
}

type CampaignRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	IsMember(ctx context.Context, campaignID, userID int64) (bool, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	AddBalance(ctx context.Context, userID int64, delta decimal.Decimal) (*domain.User, error)
}

type Budget interface {
	AddSpend(ctx context.Context, campaignID, finalizedViews int64) (*domain.BudgetSnapshot, error)
	ApplySpendDelta(ctx context.Context, campaignID int64, delta decimal.Decimal) (*domain.BudgetSnapshot, error)
	CheckMilestones(ctx context.Context, campaignID int64) error
}

type TicketRepo interface {
	Create(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error)
}

type ViewProvider interface {
	Views(ctx context.Context, platform, link string) (int64, error)
}

type RateLimiter interface {
	Allow(userID int64) bool
}

type Notifier interface {
	SubmissionApproved(ctx context.Context, userID int64, campaign *domain.Campaign, submission *domain.Submission, amount decimal.Decimal) error
	SubmissionRejected(ctx context.Context, userID int64, campaign *domain.Campaign, submission *domain.Submission, reason string) error
	SubmissionFlagged(ctx context.Context, userID int64, submission *domain.Submission, reason string) error
}

type Service struct {
	submissionRepo SubmissionRepo
	campaignRepo   CampaignRepo
	userRepo       UserRepo
	ticketRepo     TicketRepo
	budget         Budget
	provider       ViewProvider
	limiter        RateLimiter
	notifier       Notifier
	txManager      pg.TXManager

	maxReasonableViews int64
}

func New(
	submissionRepo SubmissionRepo,
	campaignRepo CampaignRepo,
	userRepo UserRepo,
	ticketRepo TicketRepo,
	budget Budget,
	provider ViewProvider,
	limiter RateLimiter,
	notifier Notifier,
	txManager pg.TXManager,
	maxReasonableViews int64,
) *Service {
	return &Service{
		submissionRepo:     submissionRepo,
		campaignRepo:       campaignRepo,
		userRepo:           userRepo,
		ticketRepo:         ticketRepo,
		budget:             budget,
		provider:           provider,
		limiter:            limiter,
		notifier:           notifier,
		txManager:          txManager,
		maxReasonableViews: maxReasonableViews,
	}
}

// Submit validates and records a new clip submission. The link's platform is
// detected from the URL itself; a link already living on any non-rejected
// submission is a hard duplicate, while a link seen only on other users'
// rejected submissions is accepted but flagged for the reviewer.
func (s *Service) Submit(ctx context.Context, campaignID, userID int64, link, analyticsProof string) (*domain.Submission, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user != nil && user.Banned {
		return nil, ErrUserBanned
	}
	if !s.limiter.Allow(userID) {
		return nil, ErrRateLimited
	}

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	if campaign.Status != domain.CampaignStatusActive {
		return nil, ErrCampaignNotActive
	}

	isMember, err := s.campaignRepo.IsMember(ctx, campaignID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotMember
	}

	platform, err := validate.DetectPlatform(link)
	if err != nil {
		return nil, err
	}
	if len(campaign.Platforms) > 0 && !slices.Contains(campaign.Platforms, platform) {
		return nil, ErrPlatformNotAllowed
	}
	if slices.Contains(proofPlatforms, platform) && analyticsProof == "" {
		return nil, ErrProofRequired
	}

	existing, err := s.submissionRepo.GetActiveByLink(ctx, link)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateLink
	}

	reused, err := s.submissionRepo.HasRejectedByOtherUser(ctx, link, userID)
	if err != nil {
		return nil, err
	}

	views := s.scrapeViews(ctx, platform, link)

	submission := &domain.Submission{
		CampaignID:     campaignID,
		UserID:         userID,
		VideoLink:      link,
		Platform:       platform,
		Views:          views,
		AnalyticsProof: analyticsProof,
		Status:         domain.SubmissionStatusPending,
	}
	if reused {
		submission.Flagged = true
		submission.FlagReason = "link reused across multiple users"
	}
	created, err := s.submissionRepo.Create(ctx, submission)
	if err != nil {
		return nil, err
	}
	if created.Flagged {
		s.openReviewTicket(ctx, created)
	}
	return created, nil
}

// openReviewTicket files a flagged submission for manual review and tells the
// creator. Neither step may fail the submission itself.
func (s *Service) openReviewTicket(ctx context.Context, submission *domain.Submission) {
	if _, err := s.ticketRepo.Create(ctx, &domain.Ticket{
		UserID:    submission.UserID,
		Type:      "flag_review",
		RelatedID: submission.ID,
		Reference: uuid.NewString(),
		Status:    "open",
	}); err != nil {
		zap.L().Error("can't open review ticket", zap.Int64("submissionID", submission.ID), zap.Error(err))
	}
	if err := s.notifier.SubmissionFlagged(ctx, submission.UserID, submission, submission.FlagReason); err != nil {
		zap.L().Warn("flag notification failed", zap.Int64("submissionID", submission.ID), zap.Error(err))
	}
}

// scrapeViews is best-effort. Providers fail constantly (quota, geo blocks,
// private videos); a zero count just means the reviewer enters it manually.
func (s *Service) scrapeViews(ctx context.Context, platform, link string) int64 {
	views, err := s.provider.Views(ctx, platform, link)
	if err != nil {
		zap.L().Debug("view scrape failed",
			zap.String("platform", platform), zap.String("link", link), zap.Error(err))
		return 0
	}
	return views
}

// Approve finalizes a pending submission at the given view count, credits the
// creator and attributes the spend to the campaign budget in one transaction.
// The status guard inside the repo makes concurrent approvals of the same
// submission settle exactly once. Counts above the sanity ceiling need force.
func (s *Service) Approve(ctx context.Context, id, views int64, force bool) (*domain.Submission, error) {
	current, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrSubmissionNotFound
	}
	if current.Status != domain.SubmissionStatusPending {
		return nil, ErrNotPending
	}
	if s.maxReasonableViews > 0 && views > s.maxReasonableViews && !force {
		return nil, ErrUnreasonableViews
	}

	campaign, err := s.campaignRepo.GetByID(ctx, current.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	amount := earnings.Calculate(views, campaign.RatePer1K)

	var approved *domain.Submission
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		approved, err = s.submissionRepo.Approve(ctx, id, views)
		if err != nil {
			return err
		}
		if approved == nil {
			return ErrNotPending
		}
		if _, err = s.userRepo.AddBalance(ctx, approved.UserID, amount); err != nil {
			return err
		}
		if _, err = s.budget.AddSpend(ctx, approved.CampaignID, views); err != nil {
			return err
		}
		return s.submissionRepo.InsertViewLog(ctx, id, views, approved.Platform)
	})
	if err != nil {
		return nil, err
	}

	if err := s.budget.CheckMilestones(ctx, approved.CampaignID); err != nil {
		zap.L().Error("milestone check after approval failed",
			zap.Int64("campaignID", approved.CampaignID), zap.Error(err))
	}
	if err := s.notifier.SubmissionApproved(ctx, approved.UserID, campaign, approved, amount); err != nil {
		zap.L().Warn("approval notification failed",
			zap.Int64("userID", approved.UserID), zap.Error(err))
	}
	return approved, nil
}

// UpdateViews moves an approved submission to a new cumulative view count and
// settles the signed delta against the creator balance and campaign budget.
// Counts may go down; the delta then claws earnings back. The whole
// settlement runs in one transaction keyed on the status guard in SetViews.
func (s *Service) UpdateViews(ctx context.Context, id, newViews int64) (*domain.Submission, error) {
	var (
		updated   *domain.Submission
		viewDelta int64
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.submissionRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrSubmissionNotFound
		}
		if current.Status != domain.SubmissionStatusApproved {
			return ErrNotApproved
		}

		viewDelta = newViews - current.Views
		if viewDelta == 0 {
			updated = current
			return nil
		}

		campaign, err := s.campaignRepo.GetByID(ctx, current.CampaignID)
		if err != nil {
			return err
		}
		if campaign == nil {
			return ErrCampaignNotFound
		}

		updated, err = s.submissionRepo.SetViews(ctx, id, newViews)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrNotApproved
		}

		amountDelta := earnings.Calculate(viewDelta, campaign.RatePer1K)
		if _, err = s.userRepo.AddBalance(ctx, updated.UserID, amountDelta); err != nil {
			return err
		}
		if _, err = s.budget.ApplySpendDelta(ctx, updated.CampaignID, amountDelta); err != nil {
			return err
		}
		return s.submissionRepo.InsertViewLog(ctx, id, newViews, updated.Platform)
	})
	if err != nil {
		return nil, err
	}

	if viewDelta > 0 {
		if err := s.budget.CheckMilestones(ctx, updated.CampaignID); err != nil {
			zap.L().Error("milestone check after view update failed",
				zap.Int64("campaignID", updated.CampaignID), zap.Error(err))
		}
	}
	return updated, nil
}

// Reject declines a pending submission. No money moves: earnings only exist
// once a submission is approved.
func (s *Service) Reject(ctx context.Context, id int64, reason string) (*domain.Submission, error) {
	rejected, err := s.submissionRepo.Reject(ctx, id)
	if err != nil {
		return nil, err
	}
	if rejected == nil {
		current, err := s.submissionRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, ErrSubmissionNotFound
		}
		return nil, ErrNotPending
	}

	if reason != "" {
		if flagged, err := s.submissionRepo.SetFlag(ctx, id, reason); err == nil && flagged != nil {
			rejected = flagged
		}
	}

	campaign, err := s.campaignRepo.GetByID(ctx, rejected.CampaignID)
	if err == nil && campaign != nil {
		if err := s.notifier.SubmissionRejected(ctx, rejected.UserID, campaign, rejected, reason); err != nil {
			zap.L().Warn("rejection notification failed",
				zap.Int64("userID", rejected.UserID), zap.Error(err))
		}
	}
	return rejected, nil
}

// Flag marks a submission for manual review without changing its lifecycle.
func (s *Service) Flag(ctx context.Context, id int64, reason string) (*domain.Submission, error) {
	flagged, err := s.submissionRepo.SetFlag(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	if flagged == nil {
		return nil, ErrSubmissionNotFound
	}
	s.openReviewTicket(ctx, flagged)
	return flagged, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Submission, error) {
	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, ErrSubmissionNotFound
	}
	return submission, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Submission, error) {
	return s.submissionRepo.ListByUser(ctx, userID)
}

func (s *Service) ListApproved(ctx context.Context, limit uint32) ([]domain.Submission, error) {
	return s.submissionRepo.ListApproved(ctx, limit)
}
