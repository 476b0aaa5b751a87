package payoutservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/internal/pg"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserBanned          = errors.New("user is banned")
	ErrNoPayoutMethod      = errors.New("payout method not configured")
	ErrBelowMinimum        = errors.New("amount below minimum payout")
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrPayoutNotFound      = errors.New("payout not found")
	ErrNotPending          = errors.New("payout already processed")
)

type PayoutRepo interface {
	Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error)
	GetByID(ctx context.Context, id int64) (*domain.Payout, error)
	SetTicket(ctx context.Context, payoutID, ticketID int64) error
	Approve(ctx context.Context, id int64) (*domain.Payout, error)
	Reject(ctx context.Context, id int64, reason string) (*domain.Payout, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Payout, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ReserveBalance(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error)
	AddBalance(ctx context.Context, userID int64, delta decimal.Decimal) (*domain.User, error)
}

type CampaignRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
}

type TicketRepo interface {
	Create(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error)
	Close(ctx context.Context, id int64) error
}

type Notifier interface {
	PayoutRequested(ctx context.Context, user *domain.User, payout *domain.Payout, ticket *domain.Ticket) error
	PayoutApproved(ctx context.Context, userID int64, payout *domain.Payout) error
	PayoutRejected(ctx context.Context, userID int64, payout *domain.Payout, reason string) error
}

type Service struct {
	payoutRepo   PayoutRepo
	userRepo     UserRepo
	campaignRepo CampaignRepo
	ticketRepo   TicketRepo
	notifier     Notifier
	txManager    pg.TXManager

	minPayout decimal.Decimal
}

func New(
	payoutRepo PayoutRepo,
	userRepo UserRepo,
	campaignRepo CampaignRepo,
	ticketRepo TicketRepo,
	notifier Notifier,
	txManager pg.TXManager,
	minPayout decimal.Decimal,
) *Service {
	return &Service{
		payoutRepo:   payoutRepo,
		userRepo:     userRepo,
		campaignRepo: campaignRepo,
		ticketRepo:   ticketRepo,
		notifier:     notifier,
		txManager:    txManager,
		minPayout:    minPayout,
	}
}

// Request reserves the amount from the user's balance and opens a pending
// payout. The reservation is a conditional decrement in the store, so two
// concurrent requests can never overdraw; the money comes back only if the
// payout is later rejected. Method and address are snapshotted onto the
// payout so a later profile change cannot redirect money in flight.
func (s *Service) Request(ctx context.Context, userID, campaignID int64, amount decimal.Decimal, analyticsProof string) (*domain.Payout, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Banned {
		return nil, ErrUserBanned
	}
	if user.PayoutMethod == "" || user.PayoutAddress == "" {
		return nil, ErrNoPayoutMethod
	}
	if amount.LessThan(s.minPayout) {
		return nil, ErrBelowMinimum
	}

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	var payout *domain.Payout
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		reserved, err := s.userRepo.ReserveBalance(ctx, userID, amount)
		if err != nil {
			return err
		}
		if reserved == nil {
			return ErrInsufficientBalance
		}
		payout, err = s.payoutRepo.Create(ctx, &domain.Payout{
			UserID:         userID,
			CampaignID:     campaignID,
			Amount:         amount,
			PayoutMethod:   user.PayoutMethod,
			PayoutAddress:  user.PayoutAddress,
			AnalyticsProof: analyticsProof,
			Status:         domain.PayoutStatusPending,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	ticket, err := s.ticketRepo.Create(ctx, &domain.Ticket{
		UserID:    userID,
		Type:      "payout",
		RelatedID: payout.ID,
		Reference: uuid.NewString(),
		Status:    "open",
	})
	if err != nil {
		zap.L().Error("can't open payout ticket", zap.Int64("payoutID", payout.ID), zap.Error(err))
	} else {
		if err := s.payoutRepo.SetTicket(ctx, payout.ID, ticket.ID); err != nil {
			zap.L().Error("can't link payout ticket", zap.Int64("payoutID", payout.ID), zap.Error(err))
		} else {
			payout.TicketID = &ticket.ID
		}
	}

	if err := s.notifier.PayoutRequested(ctx, user, payout, ticket); err != nil {
		zap.L().Warn("payout request notification failed", zap.Int64("payoutID", payout.ID), zap.Error(err))
	}
	return payout, nil
}

// Approve marks a pending payout as paid. The money already left the balance
// at request time, so approval moves nothing.
func (s *Service) Approve(ctx context.Context, id int64) (*domain.Payout, error) {
	approved, err := s.payoutRepo.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	if approved == nil {
		return nil, s.classifyMissing(ctx, id)
	}

	s.closeTicket(ctx, approved)
	if err := s.notifier.PayoutApproved(ctx, approved.UserID, approved); err != nil {
		zap.L().Warn("payout approval notification failed", zap.Int64("payoutID", id), zap.Error(err))
	}
	return approved, nil
}

// Reject declines a pending payout and restores the reserved amount, both in
// one transaction. A payout that lost the status race restores nothing.
func (s *Service) Reject(ctx context.Context, id int64, reason string) (*domain.Payout, error) {
	var rejected *domain.Payout
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		rejected, err = s.payoutRepo.Reject(ctx, id, reason)
		if err != nil {
			return err
		}
		if rejected == nil {
			return nil
		}
		_, err = s.userRepo.AddBalance(ctx, rejected.UserID, rejected.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	if rejected == nil {
		return nil, s.classifyMissing(ctx, id)
	}

	s.closeTicket(ctx, rejected)
	if err := s.notifier.PayoutRejected(ctx, rejected.UserID, rejected, reason); err != nil {
		zap.L().Warn("payout rejection notification failed", zap.Int64("payoutID", id), zap.Error(err))
	}
	return rejected, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Payout, error) {
	payout, err := s.payoutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payout == nil {
		return nil, ErrPayoutNotFound
	}
	return payout, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Payout, error) {
	return s.payoutRepo.ListByUser(ctx, userID)
}

func (s *Service) classifyMissing(ctx context.Context, id int64) error {
	current, err := s.payoutRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrPayoutNotFound
	}
	return ErrNotPending
}

func (s *Service) closeTicket(ctx context.Context, payout *domain.Payout) {
	if payout.TicketID == nil {
		return
	}
	if err := s.ticketRepo.Close(ctx, *payout.TicketID); err != nil {
		zap.L().Error("can't close payout ticket",
			zap.Int64("ticketID", *payout.TicketID), zap.Error(err))
	}
}
