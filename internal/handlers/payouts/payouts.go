package payouts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/internal/dto"
	payoutservice "github.com/cliphub/cliphub/internal/service/payoutservice"
	"github.com/cliphub/cliphub/pkg/utils"
)

const maxProofSize = 10 << 20

type Service interface {
	Request(ctx context.Context, userID, campaignID int64, amount decimal.Decimal, analyticsProof string) (*domain.Payout, error)
	Approve(ctx context.Context, id int64) (*domain.Payout, error)
	Reject(ctx context.Context, id int64, reason string) (*domain.Payout, error)
	GetByID(ctx context.Context, id int64) (*domain.Payout, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Payout, error)
}

type ProofStore interface {
	Save(ctx context.Context, data []byte, contentType string) (string, error)
}

type PayoutHandler struct {
	payoutService Service
	proofStore    ProofStore
}

func New(payoutService Service, proofStore ProofStore) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
		proofStore:    proofStore,
	}
}

func toPayoutDTO(p *domain.Payout) dto.PayoutResponseDTO {
	return dto.PayoutResponseDTO{
		ID:              p.ID,
		UserID:          p.UserID,
		CampaignID:      p.CampaignID,
		Amount:          p.Amount.InexactFloat64(),
		PayoutMethod:    p.PayoutMethod,
		PayoutAddress:   p.PayoutAddress,
		Status:          p.Status,
		TicketID:        p.TicketID,
		RejectionReason: p.RejectionReason,
		RequestedAt:     p.RequestedAt,
		ProcessedAt:     p.ProcessedAt,
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func (h *PayoutHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payoutservice.ErrUserNotFound),
		errors.Is(err, payoutservice.ErrCampaignNotFound),
		errors.Is(err, payoutservice.ErrPayoutNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, payoutservice.ErrUserBanned):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, payoutservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, payoutservice.ErrNoPayoutMethod),
		errors.Is(err, payoutservice.ErrBelowMinimum):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, payoutservice.ErrNotPending):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *PayoutHandler) payoutRequest(r *http.Request) (*dto.PayoutRequestDTO, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		var req dto.PayoutRequestDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	if err := r.ParseMultipartForm(maxProofSize); err != nil {
		return nil, err
	}
	userID, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil {
		return nil, err
	}
	campaignID, err := strconv.ParseInt(r.FormValue("campaign_id"), 10, 64)
	if err != nil {
		return nil, err
	}
	amount, err := strconv.ParseFloat(r.FormValue("amount"), 64)
	if err != nil {
		return nil, err
	}
	req := &dto.PayoutRequestDTO{
		UserID:     userID,
		CampaignID: campaignID,
		Amount:     amount,
	}

	file, header, err := r.FormFile("proof")
	if err == http.ErrMissingFile {
		return req, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxProofSize))
	if err != nil {
		return nil, err
	}
	url, err := h.proofStore.Save(r.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	req.AnalyticsProof = url
	return req, nil
}

// Request godoc
//
//	@Summary		Request a payout
//	@Description	Reserve the amount from the user's balance and open a pending payout with a support ticket. Accepts JSON, or multipart form data with an optional "proof" screenshot.
//	@Tags			Payouts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayoutRequestDTO	true	"Payout request payload"
//	@Success		201		{object}	dto.PayoutResponseDTO	"Pending payout"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		403		{object}	utils.Response			"User banned"
//	@Failure		404		{object}	utils.Response			"User or campaign not found"
//	@Failure		422		{object}	utils.Response			"No payout method or below minimum"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/bot/payouts [post]
func (h *PayoutHandler) Request(w http.ResponseWriter, r *http.Request) {
	req, err := h.payoutRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payout, err := h.payoutService.Request(r.Context(), req.UserID, req.CampaignID,
		decimal.NewFromFloat(req.Amount), req.AnalyticsProof)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPayoutDTO(payout))
}

// Approve godoc
//
//	@Summary		Approve a payout
//	@Description	Mark a pending payout as paid. The money was already reserved at request time, so no balance moves.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Payout ID"
//	@Success		200	{object}	dto.PayoutResponseDTO	"Approved payout"
//	@Failure		404	{object}	utils.Response			"Payout not found"
//	@Failure		409	{object}	utils.Response			"Payout is not pending"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/payouts/{id}/approve [post]
func (h *PayoutHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payout id")
		return
	}
	payout, err := h.payoutService.Approve(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPayoutDTO(payout))
}

// Reject godoc
//
//	@Summary		Reject a payout
//	@Description	Reject a pending payout and restore the reserved amount to the user's balance.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Payout ID"
//	@Param			request	body		dto.RejectPayoutRequestDTO	true	"Rejection reason"
//	@Success		200		{object}	dto.PayoutResponseDTO		"Rejected payout"
//	@Failure		404		{object}	utils.Response				"Payout not found"
//	@Failure		409		{object}	utils.Response				"Payout is not pending"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/payouts/{id}/reject [post]
func (h *PayoutHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payout id")
		return
	}
	var req dto.RejectPayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	payout, err := h.payoutService.Reject(r.Context(), id, req.Reason)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPayoutDTO(payout))
}

// Get godoc
//
//	@Summary	Get a payout
//	@Tags		Payouts
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int						true	"Payout ID"
//	@Success	200	{object}	dto.PayoutResponseDTO	"Payout"
//	@Failure	404	{object}	utils.Response			"Payout not found"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/admin/payouts/{id} [get]
func (h *PayoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payout id")
		return
	}
	payout, err := h.payoutService.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPayoutDTO(payout))
}

// ListByUser godoc
//
//	@Summary	List a user's payouts
//	@Tags		Payouts
//	@Produce	json
//	@Param		user_id	query		int						true	"User ID"
//	@Success	200		{array}		dto.PayoutResponseDTO	"Payouts, newest first"
//	@Failure	400		{object}	utils.Response			"Invalid user id"
//	@Failure	500		{object}	utils.Response			"Internal server error"
//	@Router		/api/bot/payouts [get]
func (h *PayoutHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	payouts, err := h.payoutService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PayoutResponseDTO, len(payouts))
	for i := range payouts {
		response[i] = toPayoutDTO(&payouts[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
