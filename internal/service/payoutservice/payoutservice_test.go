package payoutservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/internal/pg"
)

type fixture struct {
	svc          *Service
	payoutRepo   *MockPayoutRepo
	userRepo     *MockUserRepo
	campaignRepo *MockCampaignRepo
	ticketRepo   *MockTicketRepo
	notifier     *MockNotifier
	txManager    *pg.MockTXManager
}

func setup(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		payoutRepo:   NewMockPayoutRepo(ctrl),
		userRepo:     NewMockUserRepo(ctrl),
		campaignRepo: NewMockCampaignRepo(ctrl),
		ticketRepo:   NewMockTicketRepo(ctrl),
		notifier:     NewMockNotifier(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
	}
	f.svc = New(
		f.payoutRepo, f.userRepo, f.campaignRepo, f.ticketRepo,
		f.notifier, f.txManager, dec("5"),
	)
	return f
}

func (f *fixture) expectTx() {
	f.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func eqDec(want decimal.Decimal) gomock.Matcher {
	return gomock.Cond(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func payoutUser() *domain.User {
	return &domain.User{
		ID:            7,
		Balance:       dec("50"),
		PayoutMethod:  "paypal",
		PayoutAddress: "creator@example.com",
	}
}

func TestService_Request(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves balance and opens a ticket", func(t *testing.T) {
		f := setup(t)
		user := payoutUser()
		f.userRepo.EXPECT().GetByID(ctx, int64(7)).Return(user, nil)
		f.campaignRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Campaign{ID: 1}, nil)
		f.expectTx()
		f.userRepo.EXPECT().ReserveBalance(gomock.Any(), int64(7), eqDec(dec("30"))).
			Return(&domain.User{ID: 7, Balance: dec("20")}, nil)
		f.payoutRepo.EXPECT().Create(gomock.Any(), gomock.Cond(func(p *domain.Payout) bool {
			return p.Amount.Equal(dec("30")) &&
				p.PayoutMethod == "paypal" &&
				p.PayoutAddress == "creator@example.com" &&
				p.Status == domain.PayoutStatusPending
		})).DoAndReturn(func(_ context.Context, p *domain.Payout) (*domain.Payout, error) {
			p.ID = 3
			return p, nil
		})
		f.ticketRepo.EXPECT().Create(ctx, gomock.Cond(func(tk *domain.Ticket) bool {
			return tk.Type == "payout" && tk.RelatedID == 3 && tk.Reference != ""
		})).DoAndReturn(func(_ context.Context, tk *domain.Ticket) (*domain.Ticket, error) {
			tk.ID = 9
			return tk, nil
		})
		f.payoutRepo.EXPECT().SetTicket(ctx, int64(3), int64(9)).Return(nil)
		f.notifier.EXPECT().PayoutRequested(ctx, user, gomock.Any(), gomock.Any()).Return(nil)

		payout, err := f.svc.Request(ctx, 7, 1, dec("30"), "")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), payout.ID)
		assert.NotNil(t, payout.TicketID)
		assert.Equal(t, int64(9), *payout.TicketID)
	})

	t.Run("insufficient balance aborts the transaction", func(t *testing.T) {
		f := setup(t)
		f.userRepo.EXPECT().GetByID(ctx, int64(7)).Return(payoutUser(), nil)
		f.campaignRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Campaign{ID: 1}, nil)
		f.expectTx()
		f.userRepo.EXPECT().ReserveBalance(gomock.Any(), int64(7), eqDec(dec("100"))).Return(nil, nil)

		_, err := f.svc.Request(ctx, 7, 1, dec("100"), "")
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("amount below minimum", func(t *testing.T) {
		f := setup(t)
		f.userRepo.EXPECT().GetByID(ctx, int64(7)).Return(payoutUser(), nil)

		_, err := f.svc.Request(ctx, 7, 1, dec("4.99"), "")
		assert.ErrorIs(t, err, ErrBelowMinimum)
	})

	t.Run("exact minimum is accepted", func(t *testing.T) {
		f := setup(t)
		user := payoutUser()
		f.userRepo.EXPECT().GetByID(ctx, int64(7)).Return(user, nil)
		f.campaignRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Campaign{ID: 1}, nil)
		f.expectTx()
		f.userRepo.EXPECT().ReserveBalance(gomock.Any(), int64(7), eqDec(dec("5"))).
			Return(&domain.User{ID: 7, Balance: dec("45")}, nil)
		f.payoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Payout) (*domain.Payout, error) {
				p.ID = 4
				return p, nil
			})
		f.ticketRepo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tk *domain.Ticket) (*domain.Ticket, error) {
				tk.ID = 10
				return tk, nil
			})
		f.payoutRepo.EXPECT().SetTicket(ctx, int64(4), int64(10)).Return(nil)
		f.notifier.EXPECT().PayoutRequested(ctx, user, gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Request(ctx, 7, 1, dec("5"), "")
		assert.NoError(t, err)
	})

	t.Run("missing payout method", func(t *testing.T) {
		f := setup(t)
		f.userRepo.EXPECT().GetByID(ctx, int64(7)).Return(&domain.User{ID: 7, Balance: dec("50")}, nil)

		_, err := f.svc.Request(ctx, 7, 1, dec("30"), "")
		assert.ErrorIs(t, err, ErrNoPayoutMethod)
	})

	t.Run("banned user", func(t *testing.T) {
		f := setup(t)
		user := payoutUser()
		user.Banned = true
		f.userRepo.EXPECT().GetByID(ctx, int64(7)).Return(user, nil)

		_, err := f.svc.Request(ctx, 7, 1, dec("30"), "")
		assert.ErrorIs(t, err, ErrUserBanned)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		f := setup(t)
		f.userRepo.EXPECT().GetByID(ctx, int64(7)).Return(payoutUser(), nil)
		f.campaignRepo.EXPECT().GetByID(ctx, int64(404)).Return(nil, nil)

		_, err := f.svc.Request(ctx, 7, 404, dec("30"), "")
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})
}

func TestService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("approval moves no money", func(t *testing.T) {
		f := setup(t)
		ticketID := int64(9)
		approved := &domain.Payout{ID: 3, UserID: 7, Amount: dec("30"), Status: domain.PayoutStatusApproved, TicketID: &ticketID}
		f.payoutRepo.EXPECT().Approve(ctx, int64(3)).Return(approved, nil)
		f.ticketRepo.EXPECT().Close(ctx, int64(9)).Return(nil)
		f.notifier.EXPECT().PayoutApproved(ctx, int64(7), approved).Return(nil)

		got, err := f.svc.Approve(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, domain.PayoutStatusApproved, got.Status)
	})

	t.Run("already processed", func(t *testing.T) {
		f := setup(t)
		f.payoutRepo.EXPECT().Approve(ctx, int64(3)).Return(nil, nil)
		f.payoutRepo.EXPECT().GetByID(ctx, int64(3)).
			Return(&domain.Payout{ID: 3, Status: domain.PayoutStatusRejected}, nil)

		_, err := f.svc.Approve(ctx, 3)
		assert.ErrorIs(t, err, ErrNotPending)
	})

	t.Run("missing payout", func(t *testing.T) {
		f := setup(t)
		f.payoutRepo.EXPECT().Approve(ctx, int64(404)).Return(nil, nil)
		f.payoutRepo.EXPECT().GetByID(ctx, int64(404)).Return(nil, nil)

		_, err := f.svc.Approve(ctx, 404)
		assert.ErrorIs(t, err, ErrPayoutNotFound)
	})
}

func TestService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("restores the reserved amount", func(t *testing.T) {
		f := setup(t)
		rejected := &domain.Payout{ID: 3, UserID: 7, Amount: dec("30"), Status: domain.PayoutStatusRejected, RejectionReason: "proof mismatch"}
		f.expectTx()
		f.payoutRepo.EXPECT().Reject(gomock.Any(), int64(3), "proof mismatch").Return(rejected, nil)
		f.userRepo.EXPECT().AddBalance(gomock.Any(), int64(7), eqDec(dec("30"))).
			Return(&domain.User{ID: 7, Balance: dec("50")}, nil)
		f.notifier.EXPECT().PayoutRejected(ctx, int64(7), rejected, "proof mismatch").Return(nil)

		got, err := f.svc.Reject(ctx, 3, "proof mismatch")
		assert.NoError(t, err)
		assert.Equal(t, "proof mismatch", got.RejectionReason)
	})

	t.Run("double reject restores nothing", func(t *testing.T) {
		f := setup(t)
		f.expectTx()
		f.payoutRepo.EXPECT().Reject(gomock.Any(), int64(3), "dup").Return(nil, nil)
		f.payoutRepo.EXPECT().GetByID(ctx, int64(3)).
			Return(&domain.Payout{ID: 3, Status: domain.PayoutStatusRejected}, nil)

		_, err := f.svc.Reject(ctx, 3, "dup")
		assert.ErrorIs(t, err, ErrNotPending)
	})

	t.Run("balance restore failure rolls the rejection back", func(t *testing.T) {
		f := setup(t)
		rejected := &domain.Payout{ID: 3, UserID: 7, Amount: dec("30"), Status: domain.PayoutStatusRejected}
		f.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				if err := fn(ctx); err != nil {
					return err
				}
				return nil
			})
		f.payoutRepo.EXPECT().Reject(gomock.Any(), int64(3), "").Return(rejected, nil)
		f.userRepo.EXPECT().AddBalance(gomock.Any(), int64(7), gomock.Any()).
			Return(nil, errors.New("db down"))

		_, err := f.svc.Reject(ctx, 3, "")
		assert.Error(t, err)
	})
}
