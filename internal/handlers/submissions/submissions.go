package submissions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/internal/dto"
	submissionservice "github.com/cliphub/cliphub/internal/service/submissionservice"
	"github.com/cliphub/cliphub/pkg/utils"
)

const maxProofSize = 10 << 20

type Service interface {
	Submit(ctx context.Context, campaignID, userID int64, link, analyticsProof string) (*domain.Submission, error)
	Approve(ctx context.Context, id, views int64, force bool) (*domain.Submission, error)
	UpdateViews(ctx context.Context, id, newViews int64) (*domain.Submission, error)
	Reject(ctx context.Context, id int64, reason string) (*domain.Submission, error)
	Flag(ctx context.Context, id int64, reason string) (*domain.Submission, error)
	GetByID(ctx context.Context, id int64) (*domain.Submission, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Submission, error)
}

// ProofStore persists uploaded analytics screenshots and returns a public URL.
type ProofStore interface {
	Save(ctx context.Context, data []byte, contentType string) (string, error)
}

type SubmissionHandler struct {
	submissionService Service
	proofStore        ProofStore
}

func New(submissionService Service, proofStore ProofStore) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		proofStore:        proofStore,
	}
}

func toSubmissionDTO(s *domain.Submission) dto.SubmissionResponseDTO {
	return dto.SubmissionResponseDTO{
		ID:             s.ID,
		CampaignID:     s.CampaignID,
		UserID:         s.UserID,
		VideoLink:      s.VideoLink,
		Platform:       s.Platform,
		Views:          s.Views,
		AnalyticsProof: s.AnalyticsProof,
		Status:         s.Status,
		Flagged:        s.Flagged,
		FlagReason:     s.FlagReason,
		SubmittedAt:    s.SubmittedAt,
		ReviewedAt:     s.ReviewedAt,
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func (h *SubmissionHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, submissionservice.ErrUserBanned),
		errors.Is(err, submissionservice.ErrNotMember):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, submissionservice.ErrRateLimited):
		utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, submissionservice.ErrCampaignNotFound),
		errors.Is(err, submissionservice.ErrSubmissionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, submissionservice.ErrCampaignNotActive),
		errors.Is(err, submissionservice.ErrDuplicateLink),
		errors.Is(err, submissionservice.ErrNotPending),
		errors.Is(err, submissionservice.ErrNotApproved):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, submissionservice.ErrPlatformNotAllowed),
		errors.Is(err, submissionservice.ErrProofRequired),
		errors.Is(err, submissionservice.ErrUnreasonableViews):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// submitRequest decodes either a plain JSON body or a multipart form carrying
// an analytics screenshot. The uploaded file is stored first so the service
// only ever sees a proof URL.
func (h *SubmissionHandler) submitRequest(r *http.Request) (*dto.SubmitRequestDTO, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		var req dto.SubmitRequestDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	if err := r.ParseMultipartForm(maxProofSize); err != nil {
		return nil, err
	}
	campaignID, err := strconv.ParseInt(r.FormValue("campaign_id"), 10, 64)
	if err != nil {
		return nil, err
	}
	userID, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil {
		return nil, err
	}
	req := &dto.SubmitRequestDTO{
		CampaignID: campaignID,
		UserID:     userID,
		VideoLink:  r.FormValue("video_link"),
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

// Submit godoc
//
//	@Summary		Submit a clip
//	@Description	Submit a clip link for a campaign. Accepts JSON, or multipart form data with an optional "proof" screenshot that is uploaded to storage.
//	@Tags			Submissions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitRequestDTO		true	"Submission payload"
//	@Success		201		{object}	dto.SubmissionResponseDTO	"Created submission"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		403		{object}	utils.Response				"Banned or not a member"
//	@Failure		404		{object}	utils.Response				"Campaign not found"
//	@Failure		409		{object}	utils.Response				"Duplicate link or campaign inactive"
//	@Failure		422		{object}	utils.Response				"Platform not allowed or proof required"
//	@Failure		429		{object}	utils.Response				"Submitting too fast"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/bot/submissions [post]
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req, err := h.submitRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submission, err := h.submissionService.Submit(r.Context(), req.CampaignID, req.UserID, req.VideoLink, req.AnalyticsProof)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toSubmissionDTO(submission))
}

// Approve godoc
//
//	@Summary		Approve a submission
//	@Description	Finalize views, pay the creator and advance the campaign budget. Set force to accept a view count above the sanity ceiling.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Submission ID"
//	@Param			request	body		dto.ApproveSubmissionRequestDTO	true	"Final view count"
//	@Success		200		{object}	dto.SubmissionResponseDTO		"Approved submission"
//	@Failure		404		{object}	utils.Response					"Submission not found"
//	@Failure		409		{object}	utils.Response					"Submission is not pending"
//	@Failure		422		{object}	utils.Response					"View count above sanity ceiling"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/submissions/{id}/approve [post]
func (h *SubmissionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid submission id")
		return
	}
	var req dto.ApproveSubmissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submission, err := h.submissionService.Approve(r.Context(), id, req.Views, req.Force)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSubmissionDTO(submission))
}

// UpdateViews godoc
//
//	@Summary		Correct the view count
//	@Description	Set a new view count on an approved submission. The balance and budget move by the signed difference.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Submission ID"
//	@Param			request	body		dto.UpdateViewsRequestDTO	true	"New view count"
//	@Success		200		{object}	dto.SubmissionResponseDTO	"Updated submission"
//	@Failure		404		{object}	utils.Response				"Submission not found"
//	@Failure		409		{object}	utils.Response				"Submission is not approved"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/submissions/{id}/views [post]
func (h *SubmissionHandler) UpdateViews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid submission id")
		return
	}
	var req dto.UpdateViewsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submission, err := h.submissionService.UpdateViews(r.Context(), id, req.Views)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSubmissionDTO(submission))
}

// Reject godoc
//
//	@Summary	Reject a submission
//	@Tags		Submissions
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Submission ID"
//	@Param		request	body		dto.RejectSubmissionRequestDTO	true	"Rejection reason"
//	@Success	200		{object}	dto.SubmissionResponseDTO		"Rejected submission"
//	@Failure	404		{object}	utils.Response					"Submission not found"
//	@Failure	409		{object}	utils.Response					"Submission is not pending"
//	@Failure	500		{object}	utils.Response					"Internal server error"
//	@Router		/api/admin/submissions/{id}/reject [post]
func (h *SubmissionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid submission id")
		return
	}
	var req dto.RejectSubmissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submission, err := h.submissionService.Reject(r.Context(), id, req.Reason)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSubmissionDTO(submission))
}

// Flag godoc
//
//	@Summary	Flag a submission for review
//	@Tags		Submissions
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Submission ID"
//	@Param		request	body		dto.FlagSubmissionRequestDTO	true	"Flag reason"
//	@Success	200		{object}	dto.SubmissionResponseDTO		"Flagged submission"
//	@Failure	404		{object}	utils.Response					"Submission not found"
//	@Failure	500		{object}	utils.Response					"Internal server error"
//	@Router		/api/admin/submissions/{id}/flag [post]
func (h *SubmissionHandler) Flag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid submission id")
		return
	}
	var req dto.FlagSubmissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submission, err := h.submissionService.Flag(r.Context(), id, req.Reason)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSubmissionDTO(submission))
}

// Get godoc
//
//	@Summary	Get a submission
//	@Tags		Submissions
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int							true	"Submission ID"
//	@Success	200	{object}	dto.SubmissionResponseDTO	"Submission"
//	@Failure	404	{object}	utils.Response				"Submission not found"
//	@Failure	500	{object}	utils.Response				"Internal server error"
//	@Router		/api/admin/submissions/{id} [get]
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid submission id")
		return
	}
	submission, err := h.submissionService.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSubmissionDTO(submission))
}

// ListByUser godoc
//
//	@Summary	List a user's submissions
//	@Tags		Submissions
//	@Produce	json
//	@Param		user_id	query		int							true	"User ID"
//	@Success	200		{array}		dto.SubmissionResponseDTO	"Submissions, newest first"
//	@Failure	400		{object}	utils.Response				"Invalid user id"
//	@Failure	500		{object}	utils.Response				"Internal server error"
//	@Router		/api/bot/submissions [get]
func (h *SubmissionHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	submissions, err := h.submissionService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.SubmissionResponseDTO, len(submissions))
	for i := range submissions {
		response[i] = toSubmissionDTO(&submissions[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
