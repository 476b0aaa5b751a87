package dto

type EnsureUserRequestDTO struct {
	ID       int64  `json:"id" validate:"required" example:"42"`
	Username string `json:"username" validate:"required" example:"creator"`
}

type UserResponseDTO struct {
	ID            int64   `json:"id" example:"42"`
	Username      string  `json:"username" example:"creator"`
	Balance       float64 `json:"balance" example:"50.5"`
	BonusAmount   float64 `json:"bonus_amount" example:"10"`
	Banned        bool    `json:"banned" example:"false"`
	Verified      bool    `json:"verified" example:"true"`
	PayoutMethod  string  `json:"payout_method,omitempty" example:"paypal"`
	PayoutAddress string  `json:"payout_address,omitempty" example:"creator@example.com"`
}

type BonusRequestDTO struct {
	Amount float64 `json:"amount" validate:"required" example:"10"`
	Reason string  `json:"reason" example:"contest winner"`
}

type PayoutMethodRequestDTO struct {
	Method  string `json:"method" validate:"required" example:"paypal"`
	Address string `json:"address" validate:"required" example:"creator@example.com"`
}
