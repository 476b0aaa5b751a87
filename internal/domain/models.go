package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CampaignStatusActive = "active"
	CampaignStatusPaused = "paused"
	CampaignStatusEnded  = "ended"
)

const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

const (
	PayoutStatusPending  = "pending"
	PayoutStatusApproved = "approved"
	PayoutStatusRejected = "rejected"
)

type Campaign struct {
	ID             int64           `db:"id"`
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	Type           string          `db:"type"`
	Platforms      []string        `db:"platforms"`
	ContentSource  string          `db:"content_source"`
	RatePer1K      decimal.Decimal `db:"rate_per_1k"`
	TotalBudget    decimal.Decimal `db:"total_budget"`
	BudgetSpent    decimal.Decimal `db:"budget_spent"`
	Status         string          `db:"status"`
	AnnounceChatID int64           `db:"announce_chat_id"`
	Milestone25    bool            `db:"milestone_25"`
	Milestone50    bool            `db:"milestone_50"`
	Milestone75    bool            `db:"milestone_75"`
	Milestone100   bool            `db:"milestone_100"`
	CreatedAt      time.Time       `db:"created_at"`
	EndedAt        *time.Time      `db:"ended_at"`
}

type User struct {
	ID            int64           `db:"id"`
	Username      string          `db:"username"`
	Balance       decimal.Decimal `db:"balance"`
	BonusAmount   decimal.Decimal `db:"bonus_amount"`
	Banned        bool            `db:"banned"`
	Verified      bool            `db:"verified"`
	PayoutMethod  string          `db:"payout_method"`
	PayoutAddress string          `db:"payout_address"`
	CreatedAt     time.Time       `db:"created_at"`
}

type CampaignMember struct {
	ID         int64     `db:"id"`
	CampaignID int64     `db:"campaign_id"`
	UserID     int64     `db:"user_id"`
	JoinedAt   time.Time `db:"joined_at"`
}

type Submission struct {
	ID             int64      `db:"id"`
	CampaignID     int64      `db:"campaign_id"`
	UserID         int64      `db:"user_id"`
	VideoLink      string     `db:"video_link"`
	Platform       string     `db:"platform"`
	Views          int64      `db:"views"`
	AnalyticsProof string     `db:"analytics_proof"`
	Status         string     `db:"status"`
	Flagged        bool       `db:"flagged"`
	FlagReason     string     `db:"flag_reason"`
	SubmittedAt    time.Time  `db:"submitted_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	ReviewedAt     *time.Time `db:"reviewed_at"`
}

type Payout struct {
	ID              int64           `db:"id"`
	UserID          int64           `db:"user_id"`
	CampaignID      int64           `db:"campaign_id"`
	Amount          decimal.Decimal `db:"amount"`
	PayoutMethod    string          `db:"payout_method"`
	PayoutAddress   string          `db:"payout_address"`
	AnalyticsProof  string          `db:"analytics_proof"`
	Status          string          `db:"status"`
	TicketID        *int64          `db:"ticket_id"`
	RejectionReason string          `db:"rejection_reason"`
	RequestedAt     time.Time       `db:"requested_at"`
	ProcessedAt     *time.Time      `db:"processed_at"`
}

type Ticket struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Type      string    `db:"type"`
	RelatedID int64     `db:"related_id"`
	Reference string    `db:"reference"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type ViewLog struct {
	ID           int64     `db:"id"`
	SubmissionID int64     `db:"submission_id"`
	Views        int64     `db:"views"`
	Platform     string    `db:"platform"`
	CheckedAt    time.Time `db:"checked_at"`
}

// BudgetSnapshot is the budget state of a campaign after a spend mutation.
// PercentageUsed is computed against a denominator of 1 when TotalBudget is
// zero, so untracked campaigns report a harmless percentage.
type BudgetSnapshot struct {
	CampaignID        int64
	TotalBudget       decimal.Decimal
	BudgetSpent       decimal.Decimal
	BudgetLeft        decimal.Decimal
	PercentageUsed    decimal.Decimal
	MilestonesReached []int
}

// CampaignStats aggregates approved submissions for a campaign.
type CampaignStats struct {
	TotalViews       int64
	TotalSubmissions int64
}

// MemberStats summarizes one member's activity inside a campaign.
type MemberStats struct {
	Submissions int64
	Approved    int64
	Views       int64
}

type LeaderboardEntry struct {
	UserID      int64
	Username    string
	Views       int64
	Submissions int64
}
