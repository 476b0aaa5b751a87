package campaigns

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/cliphub/cliphub/internal/domain"
	campaignservice "github.com/cliphub/cliphub/internal/service/campaignservice"
)

func withPathParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:            1,
		Name:          "summer-clips",
		Type:          "clipping",
		Platforms:     []string{"youtube", "tiktok"},
		ContentSource: "https://drive.example.com/folder",
		RatePer1K:     decimal.RequireFromString("2.5"),
		TotalBudget:   decimal.RequireFromString("1000"),
		BudgetSpent:   decimal.RequireFromString("120"),
		Status:        domain.CampaignStatusActive,
		CreatedAt:     time.Now(),
	}
}

func TestCreateCampaignHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockService(ctrl)
	handler := New(mockService)

	tests := []struct {
		name       string
		body       any
		mockSetup  func()
		wantStatus int
	}{
		{
			name: "campaign created",
			body: map[string]any{
				"name":         "summer-clips",
				"type":         "clipping",
				"platforms":    []string{"youtube", "tiktok"},
				"rate_per_1k":  2.5,
				"total_budget": 1000.0,
			},
			mockSetup: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(testCampaign(), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "name already taken",
			body: map[string]any{"name": "summer-clips", "rate_per_1k": 2.5},
			mockSetup: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, campaignservice.ErrCampaignExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "invalid rate",
			body: map[string]any{"name": "summer-clips", "rate_per_1k": -1.0},
			mockSetup: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, campaignservice.ErrInvalidRate)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "missing name",
			body:       map[string]any{"rate_per_1k": 2.5},
			mockSetup:  func() {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/admin/campaigns", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.Create(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				var resp map[string]any
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "summer-clips", resp["name"])
				assert.Equal(t, 2.5, resp["rate_per_1k"])
			}
		})
	}

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/campaigns", bytes.NewReader([]byte("{")))
		w := httptest.NewRecorder()
		handler.Create(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEndCampaignHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockService(ctrl)
	handler := New(mockService)

	tests := []struct {
		name       string
		id         string
		mockSetup  func()
		wantStatus int
	}{
		{
			name: "campaign ended",
			id:   "1",
			mockSetup: func() {
				ended := testCampaign()
				ended.Status = domain.CampaignStatusEnded
				mockService.EXPECT().End(gomock.Any(), int64(1)).Return(ended, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "already ended",
			id:   "1",
			mockSetup: func() {
				mockService.EXPECT().End(gomock.Any(), int64(1)).Return(nil, campaignservice.ErrAlreadyEnded)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "campaign not found",
			id:   "42",
			mockSetup: func() {
				mockService.EXPECT().End(gomock.Any(), int64(42)).Return(nil, campaignservice.ErrCampaignNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			id:         "abc",
			mockSetup:  func() {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodPost, "/api/admin/campaigns/"+tt.id+"/end", nil)
			req = withPathParams(req, map[string]string{"id": tt.id})
			w := httptest.NewRecorder()

			handler.End(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPauseResumeHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockService(ctrl)
	handler := New(mockService)

	t.Run("pause active campaign", func(t *testing.T) {
		mockService.EXPECT().Pause(gomock.Any(), int64(1)).Return(nil)
		req := withPathParams(httptest.NewRequest(http.MethodPost, "/api/admin/campaigns/1/pause", nil), map[string]string{"id": "1"})
		w := httptest.NewRecorder()
		handler.Pause(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("pause non-active campaign", func(t *testing.T) {
		mockService.EXPECT().Pause(gomock.Any(), int64(1)).Return(campaignservice.ErrNotActive)
		req := withPathParams(httptest.NewRequest(http.MethodPost, "/api/admin/campaigns/1/pause", nil), map[string]string{"id": "1"})
		w := httptest.NewRecorder()
		handler.Pause(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("resume paused campaign", func(t *testing.T) {
		mockService.EXPECT().Resume(gomock.Any(), int64(1)).Return(nil)
		req := withPathParams(httptest.NewRequest(http.MethodPost, "/api/admin/campaigns/1/resume", nil), map[string]string{"id": "1"})
		w := httptest.NewRecorder()
		handler.Resume(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("resume non-paused campaign", func(t *testing.T) {
		mockService.EXPECT().Resume(gomock.Any(), int64(1)).Return(campaignservice.ErrNotPaused)
		req := withPathParams(httptest.NewRequest(http.MethodPost, "/api/admin/campaigns/1/resume", nil), map[string]string{"id": "1"})
		w := httptest.NewRecorder()
		handler.Resume(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestJoinCampaignHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockService(ctrl)
	handler := New(mockService)

	tests := []struct {
		name       string
		mockSetup  func()
		wantStatus int
	}{
		{
			name: "joined",
			mockSetup: func() {
				mockService.EXPECT().Join(gomock.Any(), int64(1), int64(7)).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "already a member",
			mockSetup: func() {
				mockService.EXPECT().Join(gomock.Any(), int64(1), int64(7)).Return(campaignservice.ErrAlreadyMember)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "campaign not active",
			mockSetup: func() {
				mockService.EXPECT().Join(gomock.Any(), int64(1), int64(7)).Return(campaignservice.ErrNotActive)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			body, _ := json.Marshal(map[string]any{"user_id": 7})
			req := httptest.NewRequest(http.MethodPost, "/api/bot/campaigns/1/join", bytes.NewReader(body))
			req = withPathParams(req, map[string]string{"id": "1"})
			w := httptest.NewRecorder()

			handler.Join(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGetCampaignHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockService(ctrl)
	handler := New(mockService)

	t.Run("found", func(t *testing.T) {
		mockService.EXPECT().GetByID(gomock.Any(), int64(1)).Return(testCampaign(), nil)
		req := withPathParams(httptest.NewRequest(http.MethodGet, "/api/bot/campaigns/1", nil), map[string]string{"id": "1"})
		w := httptest.NewRecorder()
		handler.Get(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockService.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)
		req := withPathParams(httptest.NewRequest(http.MethodGet, "/api/bot/campaigns/42", nil), map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler.Get(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListActiveCampaignsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockService(ctrl)
	handler := New(mockService)

	mockService.EXPECT().ListActive(gomock.Any()).Return([]domain.Campaign{*testCampaign()}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/bot/campaigns", nil)
	w := httptest.NewRecorder()

	handler.ListActive(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "summer-clips", resp[0]["name"])
}

func TestCampaignStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockService(ctrl)
	handler := New(mockService)

	t.Run("stats with budget snapshot", func(t *testing.T) {
		mockService.EXPECT().Stats(gomock.Any(), int64(1)).Return(
			&domain.CampaignStats{TotalViews: 125000, TotalSubmissions: 14},
			&domain.BudgetSnapshot{
				CampaignID:        1,
				TotalBudget:       decimal.RequireFromString("1000"),
				BudgetSpent:       decimal.RequireFromString("312.5"),
				BudgetLeft:        decimal.RequireFromString("687.5"),
				PercentageUsed:    decimal.RequireFromString("31.25"),
				MilestonesReached: []int{25},
			},
			nil,
		)
		req := withPathParams(httptest.NewRequest(http.MethodGet, "/api/bot/campaigns/1/stats", nil), map[string]string{"id": "1"})
		w := httptest.NewRecorder()

		handler.Stats(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, float64(125000), resp["total_views"])
		assert.Equal(t, float64(14), resp["total_submissions"])
		assert.Equal(t, 312.5, resp["budget_spent"])
		assert.Equal(t, 31.25, resp["percentage_used"])
		assert.Equal(t, []any{float64(25)}, resp["milestones_reached"])
	})

	t.Run("campaign not found", func(t *testing.T) {
		mockService.EXPECT().Stats(gomock.Any(), int64(42)).Return(nil, nil, campaignservice.ErrCampaignNotFound)
		req := withPathParams(httptest.NewRequest(http.MethodGet, "/api/bot/campaigns/42/stats", nil), map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler.Stats(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMemberStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockService(ctrl)
	handler := New(mockService)

	mockService.EXPECT().MemberStats(gomock.Any(), int64(1), int64(7)).Return(
		&domain.MemberStats{Submissions: 5, Approved: 3, Views: 42000}, nil,
	)
	req := withPathParams(
		httptest.NewRequest(http.MethodGet, "/api/bot/campaigns/1/members/7/stats", nil),
		map[string]string{"id": "1", "userID": "7"},
	)
	w := httptest.NewRecorder()

	handler.MemberStats(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, float64(3), resp["approved"])
	assert.Equal(t, float64(42000), resp["views"])
}

func TestLeaderboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockService(ctrl)
	handler := New(mockService)

	mockService.EXPECT().Leaderboard(gomock.Any(), int64(1), 5).Return([]domain.LeaderboardEntry{
		{UserID: 7, Username: "clipper_one", Views: 90000, Submissions: 4},
		{UserID: 9, Username: "clipper_two", Views: 35000, Submissions: 2},
	}, nil)
	req := withPathParams(
		httptest.NewRequest(http.MethodGet, "/api/bot/campaigns/1/leaderboard?limit=5", nil),
		map[string]string{"id": "1"},
	)
	w := httptest.NewRecorder()

	handler.Leaderboard(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "clipper_one", resp[0]["username"])
}
