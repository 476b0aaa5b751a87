package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/internal/dto"
	userservice "github.com/cliphub/cliphub/internal/service/userservice"
	"github.com/cliphub/cliphub/pkg/utils"
)

type Service interface {
	Ensure(ctx context.Context, id int64, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Bonus(ctx context.Context, userID int64, amount decimal.Decimal, reason string) (*domain.User, error)
	Ban(ctx context.Context, userID int64) error
	Unban(ctx context.Context, userID int64) error
	Verify(ctx context.Context, userID int64) error
	Unverify(ctx context.Context, userID int64) error
	SetPayoutMethod(ctx context.Context, userID int64, method, address string) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func toUserDTO(u *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:            u.ID,
		Username:      u.Username,
		Balance:       u.Balance.InexactFloat64(),
		BonusAmount:   u.BonusAmount.InexactFloat64(),
		Banned:        u.Banned,
		Verified:      u.Verified,
		PayoutMethod:  u.PayoutMethod,
		PayoutAddress: u.PayoutAddress,
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func (h *UserHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, userservice.ErrInvalidMethod),
		errors.Is(err, userservice.ErrInvalidCard),
		errors.Is(err, userservice.ErrInvalidAmount),
		errors.Is(err, userservice.ErrEmptyAddress):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Ensure godoc
//
//	@Summary		Ensure a user exists
//	@Description	Create the user on first contact, refresh the username after.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EnsureUserRequestDTO	true	"User identity"
//	@Success		200		{object}	dto.UserResponseDTO			"User profile"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/bot/users [post]
func (h *UserHandler) Ensure(w http.ResponseWriter, r *http.Request) {
	var req dto.EnsureUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := h.userService.Ensure(r.Context(), req.ID, req.Username)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(user))
}

// Get godoc
//
//	@Summary	Get a user profile
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		int					true	"User ID"
//	@Success	200	{object}	dto.UserResponseDTO	"User profile"
//	@Failure	404	{object}	utils.Response		"User not found"
//	@Failure	500	{object}	utils.Response		"Internal server error"
//	@Router		/api/bot/users/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(user))
}

// SetPayoutMethod godoc
//
//	@Summary		Set the payout method
//	@Description	Record where the user's money goes. Card numbers are checksum-validated.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		dto.PayoutMethodRequestDTO	true	"Method and address"
//	@Success		200		{object}	utils.Response				"Payout method saved"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		422		{object}	utils.Response				"Unknown method or invalid address"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/bot/users/{id}/payout-method [post]
func (h *UserHandler) SetPayoutMethod(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req dto.PayoutMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.userService.SetPayoutMethod(r.Context(), id, req.Method, req.Address); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "payout method saved"})
}

// Bonus godoc
//
//	@Summary		Grant a bonus
//	@Description	Credit the user's balance outside the earnings formula and notify them.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"User ID"
//	@Param			request	body		dto.BonusRequestDTO	true	"Amount and reason"
//	@Success		200		{object}	dto.UserResponseDTO	"User with updated balance"
//	@Failure		404		{object}	utils.Response		"User not found"
//	@Failure		422		{object}	utils.Response		"Amount must be positive"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/users/{id}/bonus [post]
func (h *UserHandler) Bonus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req dto.BonusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := h.userService.Bonus(r.Context(), id, decimal.NewFromFloat(req.Amount), req.Reason)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(user))
}

// Ban godoc
//
//	@Summary	Ban a user
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int				true	"User ID"
//	@Success	200	{object}	utils.Response	"User banned"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/users/{id}/ban [post]
func (h *UserHandler) Ban(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, h.userService.Ban, "user banned")
}

// Unban godoc
//
//	@Summary	Unban a user
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int				true	"User ID"
//	@Success	200	{object}	utils.Response	"User unbanned"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/users/{id}/unban [post]
func (h *UserHandler) Unban(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, h.userService.Unban, "user unbanned")
}

// Verify godoc
//
//	@Summary	Mark a user verified
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int				true	"User ID"
//	@Success	200	{object}	utils.Response	"User verified"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/users/{id}/verify [post]
func (h *UserHandler) Verify(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, h.userService.Verify, "user verified")
}

// Unverify godoc
//
//	@Summary	Remove a user's verified mark
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int				true	"User ID"
//	@Success	200	{object}	utils.Response	"Verified mark removed"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/users/{id}/unverify [post]
func (h *UserHandler) Unverify(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, h.userService.Unverify, "verified mark removed")
}

func (h *UserHandler) setFlag(w http.ResponseWriter, r *http.Request, op func(context.Context, int64) error, message string) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := op(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}
