package service

import (
	"github.com/shopspring/decimal"

	"github.com/cliphub/cliphub/internal/config"
	"github.com/cliphub/cliphub/internal/notifier"
	"github.com/cliphub/cliphub/internal/pg"
	"github.com/cliphub/cliphub/internal/providers"
	"github.com/cliphub/cliphub/internal/ratelimit"
	"github.com/cliphub/cliphub/internal/repo"
	authservice "github.com/cliphub/cliphub/internal/service/authservice"
	budgetservice "github.com/cliphub/cliphub/internal/service/budgetservice"
	campaignservice "github.com/cliphub/cliphub/internal/service/campaignservice"
	payoutservice "github.com/cliphub/cliphub/internal/service/payoutservice"
	submissionservice "github.com/cliphub/cliphub/internal/service/submissionservice"
	userservice "github.com/cliphub/cliphub/internal/service/userservice"
	"github.com/cliphub/cliphub/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	CampaignService   *campaignservice.Service
	SubmissionService *submissionservice.Service
	PayoutService     *payoutservice.Service
	UserService       *userservice.Service
	BudgetService     *budgetservice.Service
}

func New(
	cfg *config.Config,
	repo *repo.Repositories,
	txManager pg.TXManager,
	notif *notifier.Telegram,
	provider *providers.Registry,
	limiter *ratelimit.Limiter,
	jwt *auth.JWT,
) *Services {
	budgetService := budgetservice.New(repo.CampaignRepo, notif)
	campaignService := campaignservice.New(repo.CampaignRepo, notif)
	submissionService := submissionservice.New(
		repo.SubmissionRepo, repo.CampaignRepo, repo.UserRepo, repo.TicketRepo,
		budgetService, provider, limiter, notif, txManager,
		cfg.MaxReasonableViews,
	)
	payoutService := payoutservice.New(
		repo.PayoutRepo, repo.UserRepo, repo.CampaignRepo, repo.TicketRepo,
		notif, txManager, decimal.NewFromFloat(cfg.MinPayout),
	)
	userService := userservice.New(repo.UserRepo, notif)
	authService := authservice.New(jwt, cfg.AdminUsername, cfg.AdminPasswordHash)

	return &Services{
		AuthService:       authService,
		CampaignService:   campaignService,
		SubmissionService: submissionService,
		PayoutService:     payoutService,
		UserService:       userService,
		BudgetService:     budgetService,
	}
}
