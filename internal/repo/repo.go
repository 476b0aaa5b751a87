package repo

import (
	"github.com/cliphub/cliphub/internal/pg"
	campaignrepo "github.com/cliphub/cliphub/internal/repo/campaign-repo"
	payoutrepo "github.com/cliphub/cliphub/internal/repo/payout-repo"
	submissionrepo "github.com/cliphub/cliphub/internal/repo/submission-repo"
	ticketrepo "github.com/cliphub/cliphub/internal/repo/ticket-repo"
	userrepo "github.com/cliphub/cliphub/internal/repo/user-repo"
)

type Repositories struct {
	CampaignRepo   *campaignrepo.Repository
	UserRepo       *userrepo.Repository
	SubmissionRepo *submissionrepo.Repository
	PayoutRepo     *payoutrepo.Repository
	TicketRepo     *ticketrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		CampaignRepo:   campaignrepo.New(conn),
		UserRepo:       userrepo.New(conn),
		SubmissionRepo: submissionrepo.New(conn),
		PayoutRepo:     payoutrepo.New(conn),
		TicketRepo:     ticketrepo.New(conn),
	}
}
