package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cliphub/cliphub/internal/dto"
	authservice "github.com/cliphub/cliphub/internal/service/authservice"
	"github.com/cliphub/cliphub/pkg/utils"
)

type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Admin login
//	@Description	Exchange admin credentials for a bearer token used on review routes.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO		true	"Admin credentials"
//	@Success		200		{object}	dto.LoginResponseDTO	"Bearer token"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Invalid credentials"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{Token: token})
}
