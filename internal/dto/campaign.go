package dto

import "time"

type CreateCampaignRequestDTO struct {
	Name           string   `json:"name" validate:"required" example:"spring-push"`
	Description    string   `json:"description" example:"Clip the new drop"`
	Type           string   `json:"type" example:"clipping"`
	Platforms      []string `json:"platforms" example:"youtube,tiktok"`
	ContentSource  string   `json:"content_source" example:"https://drive.example.com/folder"`
	RatePer1K      float64  `json:"rate_per_1k" example:"5"`
	TotalBudget    float64  `json:"total_budget" example:"1000"`
	AnnounceChatID int64    `json:"announce_chat_id" example:"-1001234567890"`
}

type EditCampaignRequestDTO struct {
	Name           string   `json:"name" example:"spring-push"`
	Description    string   `json:"description" example:"Clip the new drop"`
	Type           string   `json:"type" example:"clipping"`
	Platforms      []string `json:"platforms" example:"youtube,tiktok"`
	ContentSource  string   `json:"content_source" example:"https://drive.example.com/folder"`
	RatePer1K      float64  `json:"rate_per_1k" example:"5"`
	TotalBudget    float64  `json:"total_budget" example:"1000"`
	AnnounceChatID int64    `json:"announce_chat_id" example:"-1001234567890"`
}

type CampaignResponseDTO struct {
	ID             int64      `json:"id" example:"1"`
	Name           string     `json:"name" example:"spring-push"`
	Description    string     `json:"description" example:"Clip the new drop"`
	Type           string     `json:"type" example:"clipping"`
	Platforms      []string   `json:"platforms" example:"youtube,tiktok"`
	ContentSource  string     `json:"content_source" example:"https://drive.example.com/folder"`
	RatePer1K      float64    `json:"rate_per_1k" example:"5"`
	TotalBudget    float64    `json:"total_budget" example:"1000"`
	BudgetSpent    float64    `json:"budget_spent" example:"250"`
	Status         string     `json:"status" example:"active"`
	AnnounceChatID int64      `json:"announce_chat_id" example:"-1001234567890"`
	CreatedAt      time.Time  `json:"created_at"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`
}

type JoinCampaignRequestDTO struct {
	UserID int64 `json:"user_id" validate:"required" example:"42"`
}

type CampaignStatsResponseDTO struct {
	TotalViews        int64   `json:"total_views" example:"120000"`
	TotalSubmissions  int64   `json:"total_submissions" example:"14"`
	TotalBudget       float64 `json:"total_budget" example:"1000"`
	BudgetSpent       float64 `json:"budget_spent" example:"250"`
	BudgetLeft        float64 `json:"budget_left" example:"750"`
	PercentageUsed    float64 `json:"percentage_used" example:"25"`
	MilestonesReached []int   `json:"milestones_reached" example:"25,50"`
}

type MemberStatsResponseDTO struct {
	Submissions int64 `json:"submissions" example:"5"`
	Approved    int64 `json:"approved" example:"3"`
	Views       int64 `json:"views" example:"9000"`
}

type LeaderboardEntryDTO struct {
	UserID      int64  `json:"user_id" example:"42"`
	Username    string `json:"username" example:"creator"`
	Views       int64  `json:"views" example:"9000"`
	Submissions int64  `json:"submissions" example:"3"`
}
