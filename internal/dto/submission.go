package dto

import "time"

type SubmitRequestDTO struct {
	CampaignID     int64  `json:"campaign_id" validate:"required" example:"1"`
	UserID         int64  `json:"user_id" validate:"required" example:"42"`
	VideoLink      string `json:"video_link" validate:"required" example:"https://youtu.be/abc123"`
	AnalyticsProof string `json:"analytics_proof,omitempty" example:"https://cdn.example.com/proofs/2026/08/a3f0.png"`
}

type SubmissionResponseDTO struct {
	ID             int64      `json:"id" example:"1"`
	CampaignID     int64      `json:"campaign_id" example:"1"`
	UserID         int64      `json:"user_id" example:"42"`
	VideoLink      string     `json:"video_link" example:"https://youtu.be/abc123"`
	Platform       string     `json:"platform" example:"youtube"`
	Views          int64      `json:"views" example:"1000"`
	AnalyticsProof string     `json:"analytics_proof,omitempty"`
	Status         string     `json:"status" example:"pending"`
	Flagged        bool       `json:"flagged" example:"false"`
	FlagReason     string     `json:"flag_reason,omitempty"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
}

type ApproveSubmissionRequestDTO struct {
	Views int64 `json:"views" validate:"required" example:"1000"`
	Force bool  `json:"force,omitempty" example:"false"`
}

type RejectSubmissionRequestDTO struct {
	Reason string `json:"reason" validate:"required" example:"reuploaded content"`
}

type UpdateViewsRequestDTO struct {
	Views int64 `json:"views" validate:"required" example:"2500"`
}

type FlagSubmissionRequestDTO struct {
	Reason string `json:"reason" validate:"required" example:"manual review requested"`
}
