package campaigns

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
	campaignservice "github.com/cliphub/cliphub/internal/service/campaignservice"
	"github.com/cliphub/cliphub/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	Edit(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	Pause(ctx context.Context, id int64) error
	Resume(ctx context.Context, id int64) error
	End(ctx context.Context, id int64) (*domain.Campaign, error)
	Join(ctx context.Context, campaignID, userID int64) error
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	ListActive(ctx context.Context) ([]domain.Campaign, error)
	Stats(ctx context.Context, id int64) (*domain.CampaignStats, *domain.BudgetSnapshot, error)
	MemberStats(ctx context.Context, campaignID, userID int64) (*domain.MemberStats, error)
	Leaderboard(ctx context.Context, campaignID int64, limit int) ([]domain.LeaderboardEntry, error)
}

type CampaignHandler struct {
	campaignService Service
}

func New(campaignService Service) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

func toCampaignDTO(c *domain.Campaign) dto.CampaignResponseDTO {
	return dto.CampaignResponseDTO{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Type:           c.Type,
		Platforms:      c.Platforms,
		ContentSource:  c.ContentSource,
		RatePer1K:      c.RatePer1K.InexactFloat64(),
		TotalBudget:    c.TotalBudget.InexactFloat64(),
		BudgetSpent:    c.BudgetSpent.InexactFloat64(),
		Status:         c.Status,
		AnnounceChatID: c.AnnounceChatID,
		CreatedAt:      c.CreatedAt,
		EndedAt:        c.EndedAt,
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func (h *CampaignHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaignservice.ErrCampaignNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, campaignservice.ErrCampaignExists),
		errors.Is(err, campaignservice.ErrNotActive),
		errors.Is(err, campaignservice.ErrNotPaused),
		errors.Is(err, campaignservice.ErrAlreadyEnded),
		errors.Is(err, campaignservice.ErrAlreadyMember):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, campaignservice.ErrInvalidRate):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Create godoc
//
//	@Summary		Create a campaign
//	@Description	Create a new campaign; it starts active and is announced to its chat.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCampaignRequestDTO	true	"Campaign payload"
//	@Success		201		{object}	dto.CampaignResponseDTO			"Created campaign"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		409		{object}	utils.Response					"Name already taken"
//	@Failure		422		{object}	utils.Response					"Invalid rate"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/campaigns [post]
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name is required")
		return
	}

	campaign, err := h.campaignService.Create(r.Context(), &domain.Campaign{
		Name:           req.Name,
		Description:    req.Description,
		Type:           req.Type,
		Platforms:      req.Platforms,
		ContentSource:  req.ContentSource,
		RatePer1K:      decimal.NewFromFloat(req.RatePer1K),
		TotalBudget:    decimal.NewFromFloat(req.TotalBudget),
		AnnounceChatID: req.AnnounceChatID,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toCampaignDTO(campaign))
}

// Edit godoc
//
//	@Summary		Edit a campaign
//	@Description	Update campaign settings. Ended campaigns cannot be edited.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Campaign ID"
//	@Param			request	body		dto.EditCampaignRequestDTO	true	"Campaign payload"
//	@Success		200		{object}	dto.CampaignResponseDTO		"Updated campaign"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		404		{object}	utils.Response				"Campaign not found"
//	@Failure		409		{object}	utils.Response				"Campaign ended or name taken"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/campaigns/{id} [put]
func (h *CampaignHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	var req dto.EditCampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign, err := h.campaignService.Edit(r.Context(), &domain.Campaign{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		Type:           req.Type,
		Platforms:      req.Platforms,
		ContentSource:  req.ContentSource,
		RatePer1K:      decimal.NewFromFloat(req.RatePer1K),
		TotalBudget:    decimal.NewFromFloat(req.TotalBudget),
		AnnounceChatID: req.AnnounceChatID,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCampaignDTO(campaign))
}

// Pause godoc
//
//	@Summary		Pause a campaign
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Campaign ID"
//	@Success		200	{object}	utils.Response	"Campaign paused"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		409	{object}	utils.Response	"Campaign is not active"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/campaigns/{id}/pause [post]
func (h *CampaignHandler) Pause(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	if err := h.campaignService.Pause(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "campaign paused"})
}

// Resume godoc
//
//	@Summary		Resume a paused campaign
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Campaign ID"
//	@Success		200	{object}	utils.Response	"Campaign resumed"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		409	{object}	utils.Response	"Campaign is not paused"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/campaigns/{id}/resume [post]
func (h *CampaignHandler) Resume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	if err := h.campaignService.Resume(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "campaign resumed"})
}

// End godoc
//
//	@Summary		End a campaign
//	@Description	Permanently end a campaign and announce its final stats.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Campaign ID"
//	@Success		200	{object}	dto.CampaignResponseDTO	"Ended campaign"
//	@Failure		404	{object}	utils.Response			"Campaign not found"
//	@Failure		409	{object}	utils.Response			"Campaign already ended"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/campaigns/{id}/end [post]
func (h *CampaignHandler) End(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	campaign, err := h.campaignService.End(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCampaignDTO(campaign))
}

// Get godoc
//
//	@Summary	Get a campaign
//	@Tags		Campaigns
//	@Produce	json
//	@Param		id	path		int						true	"Campaign ID"
//	@Success	200	{object}	dto.CampaignResponseDTO	"Campaign"
//	@Failure	404	{object}	utils.Response			"Campaign not found"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/bot/campaigns/{id} [get]
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	campaign, err := h.campaignService.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if campaign == nil {
		utils.RespondWithError(w, http.StatusNotFound, "campaign not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCampaignDTO(campaign))
}

// ListActive godoc
//
//	@Summary	List active campaigns
//	@Tags		Campaigns
//	@Produce	json
//	@Success	200	{array}		dto.CampaignResponseDTO	"Active campaigns"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/bot/campaigns [get]
func (h *CampaignHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaignService.ListActive(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.CampaignResponseDTO, len(campaigns))
	for i := range campaigns {
		response[i] = toCampaignDTO(&campaigns[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Join godoc
//
//	@Summary		Join a campaign
//	@Description	Register a user as a campaign member. Joining twice is a conflict.
//	@Tags			Campaigns
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Campaign ID"
//	@Param			request	body		dto.JoinCampaignRequestDTO	true	"Joining user"
//	@Success		200		{object}	utils.Response				"Joined"
//	@Failure		404		{object}	utils.Response				"Campaign not found"
//	@Failure		409		{object}	utils.Response				"Already a member or campaign inactive"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/bot/campaigns/{id}/join [post]
func (h *CampaignHandler) Join(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	var req dto.JoinCampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.campaignService.Join(r.Context(), id, req.UserID); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "joined campaign"})
}

// Stats godoc
//
//	@Summary	Campaign stats
//	@Tags		Campaigns
//	@Produce	json
//	@Param		id	path		int								true	"Campaign ID"
//	@Success	200	{object}	dto.CampaignStatsResponseDTO	"Aggregated stats and budget state"
//	@Failure	404	{object}	utils.Response					"Campaign not found"
//	@Failure	500	{object}	utils.Response					"Internal server error"
//	@Router		/api/bot/campaigns/{id}/stats [get]
func (h *CampaignHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	stats, snapshot, err := h.campaignService.Stats(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CampaignStatsResponseDTO{
		TotalViews:        stats.TotalViews,
		TotalSubmissions:  stats.TotalSubmissions,
		TotalBudget:       snapshot.TotalBudget.InexactFloat64(),
		BudgetSpent:       snapshot.BudgetSpent.InexactFloat64(),
		BudgetLeft:        snapshot.BudgetLeft.InexactFloat64(),
		PercentageUsed:    snapshot.PercentageUsed.InexactFloat64(),
		MilestonesReached: snapshot.MilestonesReached,
	})
}

// MemberStats godoc
//
//	@Summary	Member stats within a campaign
//	@Tags		Campaigns
//	@Produce	json
//	@Param		id		path		int							true	"Campaign ID"
//	@Param		userID	path		int							true	"User ID"
//	@Success	200		{object}	dto.MemberStatsResponseDTO	"Member stats"
//	@Failure	404		{object}	utils.Response				"Campaign not found"
//	@Failure	500		{object}	utils.Response				"Internal server error"
//	@Router		/api/bot/campaigns/{id}/members/{userID}/stats [get]
func (h *CampaignHandler) MemberStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	stats, err := h.campaignService.MemberStats(r.Context(), id, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MemberStatsResponseDTO{
		Submissions: stats.Submissions,
		Approved:    stats.Approved,
		Views:       stats.Views,
	})
}

// Leaderboard godoc
//
//	@Summary	Campaign leaderboard
//	@Tags		Campaigns
//	@Produce	json
//	@Param		id		path		int							true	"Campaign ID"
//	@Param		limit	query		int							false	"Entries to return (default 10, max 50)"
//	@Success	200		{array}		dto.LeaderboardEntryDTO		"Top members by approved views"
//	@Failure	404		{object}	utils.Response				"Campaign not found"
//	@Failure	500		{object}	utils.Response				"Internal server error"
//	@Router		/api/bot/campaigns/{id}/leaderboard [get]
func (h *CampaignHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.campaignService.Leaderboard(r.Context(), id, limit)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response := make([]dto.LeaderboardEntryDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.LeaderboardEntryDTO{
			UserID:      e.UserID,
			Username:    e.Username,
			Views:       e.Views,
			Submissions: e.Submissions,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
