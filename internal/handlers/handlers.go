package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/cliphub/cliphub/docs"
	authhandlers "github.com/cliphub/cliphub/internal/handlers/auth"
	campaignhandlers "github.com/cliphub/cliphub/internal/handlers/campaigns"
	payouthandlers "github.com/cliphub/cliphub/internal/handlers/payouts"
	submissionhandlers "github.com/cliphub/cliphub/internal/handlers/submissions"
	userhandlers "github.com/cliphub/cliphub/internal/handlers/users"
	"github.com/cliphub/cliphub/internal/service"
	"github.com/cliphub/cliphub/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type CampaignHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Pause(w http.ResponseWriter, r *http.Request)
	Resume(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	MemberStats(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
}

type SubmissionHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	UpdateViews(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Flag(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByUser(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByUser(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Ensure(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	SetPayoutMethod(w http.ResponseWriter, r *http.Request)
	Bonus(w http.ResponseWriter, r *http.Request)
	Ban(w http.ResponseWriter, r *http.Request)
	Unban(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Unverify(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	CampaignHandler   CampaignHandler
	SubmissionHandler SubmissionHandler
	PayoutHandler     PayoutHandler
	UserHandler       UserHandler

	jwt        *auth.JWT
	serviceKey string
}

// ProofStore is the upload target shared by the submit and payout endpoints.
type ProofStore interface {
	Save(ctx context.Context, data []byte, contentType string) (string, error)
}

func New(s *service.Services, proofs ProofStore, jwt *auth.JWT, serviceKey string) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		CampaignHandler:   campaignhandlers.New(s.CampaignService),
		SubmissionHandler: submissionhandlers.New(s.SubmissionService, proofs),
		PayoutHandler:     payouthandlers.New(s.PayoutService, proofs),
		UserHandler:       userhandlers.New(s.UserService),
		jwt:               jwt,
		serviceKey:        serviceKey,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		// Review surface for humans with a bearer token.
		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.Middleware(h.jwt))
			r.Route("/campaigns", func(r chi.Router) {
				r.Post("/", h.CampaignHandler.Create)
				r.Put("/{id}", h.CampaignHandler.Edit)
				r.Post("/{id}/pause", h.CampaignHandler.Pause)
				r.Post("/{id}/resume", h.CampaignHandler.Resume)
				r.Post("/{id}/end", h.CampaignHandler.End)
			})
			r.Route("/submissions", func(r chi.Router) {
				r.Get("/{id}", h.SubmissionHandler.Get)
				r.Post("/{id}/approve", h.SubmissionHandler.Approve)
				r.Post("/{id}/reject", h.SubmissionHandler.Reject)
				r.Post("/{id}/flag", h.SubmissionHandler.Flag)
				r.Post("/{id}/views", h.SubmissionHandler.UpdateViews)
			})
			r.Route("/payouts", func(r chi.Router) {
				r.Get("/{id}", h.PayoutHandler.Get)
				r.Post("/{id}/approve", h.PayoutHandler.Approve)
				r.Post("/{id}/reject", h.PayoutHandler.Reject)
			})
			r.Route("/users", func(r chi.Router) {
				r.Post("/{id}/bonus", h.UserHandler.Bonus)
				r.Post("/{id}/ban", h.UserHandler.Ban)
				r.Post("/{id}/unban", h.UserHandler.Unban)
				r.Post("/{id}/verify", h.UserHandler.Verify)
				r.Post("/{id}/unverify", h.UserHandler.Unverify)
			})
		})

		// Bot-originated calls authenticate with a shared service key.
		r.Route("/bot", func(r chi.Router) {
			r.Use(auth.ServiceKeyMiddleware(h.serviceKey))
			r.Route("/campaigns", func(r chi.Router) {
				r.Get("/", h.CampaignHandler.ListActive)
				r.Get("/{id}", h.CampaignHandler.Get)
				r.Post("/{id}/join", h.CampaignHandler.Join)
				r.Get("/{id}/stats", h.CampaignHandler.Stats)
				r.Get("/{id}/leaderboard", h.CampaignHandler.Leaderboard)
				r.Get("/{id}/members/{userID}/stats", h.CampaignHandler.MemberStats)
			})
			r.Route("/submissions", func(r chi.Router) {
				r.Post("/", h.SubmissionHandler.Submit)
				r.Get("/", h.SubmissionHandler.ListByUser)
			})
			r.Route("/payouts", func(r chi.Router) {
				r.Post("/", h.PayoutHandler.Request)
				r.Get("/", h.PayoutHandler.ListByUser)
			})
			r.Route("/users", func(r chi.Router) {
				r.Post("/", h.UserHandler.Ensure)
				r.Get("/{id}", h.UserHandler.Get)
				r.Post("/{id}/payout-method", h.UserHandler.SetPayoutMethod)
			})
		})
	})

	return r
}
