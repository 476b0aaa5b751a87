package dto

import "time"

type PayoutRequestDTO struct {
	UserID         int64   `json:"user_id" validate:"required" example:"42"`
	CampaignID     int64   `json:"campaign_id" validate:"required" example:"1"`
	Amount         float64 `json:"amount" validate:"required" example:"30"`
	AnalyticsProof string  `json:"analytics_proof,omitempty" example:"https://cdn.example.com/proofs/2026/08/a3f0.png"`
}

type PayoutResponseDTO struct {
	ID              int64      `json:"id" example:"1"`
	UserID          int64      `json:"user_id" example:"42"`
	CampaignID      int64      `json:"campaign_id" example:"1"`
	Amount          float64    `json:"amount" example:"30"`
	PayoutMethod    string     `json:"payout_method" example:"paypal"`
	PayoutAddress   string     `json:"payout_address" example:"creator@example.com"`
	Status          string     `json:"status" example:"pending"`
	TicketID        *int64     `json:"ticket_id,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	RequestedAt     time.Time  `json:"requested_at"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
}

type RejectPayoutRequestDTO struct {
	Reason string `json:"reason" validate:"required" example:"missing analytics"`
}
