package dto

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required" example:"admin"`
	Password string `json:"password" validate:"required" example:"secret"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
}
