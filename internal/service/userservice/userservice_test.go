package userservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/cliphub/cliphub/internal/domain"
)

func setup(t *testing.T) (*Service, *MockUserRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	userRepo := NewMockUserRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	return New(userRepo, notifier), userRepo, notifier
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestService_Bonus(t *testing.T) {
	ctx := context.Background()

	t.Run("credits balance and bonus total", func(t *testing.T) {
		svc, userRepo, notifier := setup(t)
		userRepo.EXPECT().AddBonus(ctx, int64(7), gomock.Cond(func(d decimal.Decimal) bool {
			return d.Equal(dec("10"))
		})).Return(&domain.User{ID: 7, Balance: dec("60"), BonusAmount: dec("10")}, nil)
		notifier.EXPECT().BonusGranted(ctx, int64(7), gomock.Any(), "great clip").Return(nil)

		user, err := svc.Bonus(ctx, 7, dec("10"), "great clip")
		assert.NoError(t, err)
		assert.True(t, user.BonusAmount.Equal(dec("10")))
	})

	t.Run("non-positive amount", func(t *testing.T) {
		svc, _, _ := setup(t)
		_, err := svc.Bonus(ctx, 7, decimal.Zero, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, userRepo, _ := setup(t)
		userRepo.EXPECT().AddBonus(ctx, int64(404), gomock.Any()).Return(nil, nil)

		_, err := svc.Bonus(ctx, 404, dec("10"), "")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_SetPayoutMethod(t *testing.T) {
	ctx := context.Background()

	t.Run("paypal address", func(t *testing.T) {
		svc, userRepo, _ := setup(t)
		userRepo.EXPECT().GetByID(ctx, int64(7)).Return(&domain.User{ID: 7}, nil)
		userRepo.EXPECT().SetPayoutInfo(ctx, int64(7), "paypal", "creator@example.com").Return(nil)

		assert.NoError(t, svc.SetPayoutMethod(ctx, 7, "paypal", "creator@example.com"))
	})

	t.Run("valid card number", func(t *testing.T) {
		svc, userRepo, _ := setup(t)
		userRepo.EXPECT().GetByID(ctx, int64(7)).Return(&domain.User{ID: 7}, nil)
		userRepo.EXPECT().SetPayoutInfo(ctx, int64(7), "card", "4561261212345467").Return(nil)

		assert.NoError(t, svc.SetPayoutMethod(ctx, 7, "card", "4561261212345467"))
	})

	t.Run("card failing luhn", func(t *testing.T) {
		svc, _, _ := setup(t)
		err := svc.SetPayoutMethod(ctx, 7, "card", "4561261212345464")
		assert.ErrorIs(t, err, ErrInvalidCard)
	})

	t.Run("unknown method", func(t *testing.T) {
		svc, _, _ := setup(t)
		err := svc.SetPayoutMethod(ctx, 7, "cheque", "somewhere")
		assert.ErrorIs(t, err, ErrInvalidMethod)
	})

	t.Run("empty address", func(t *testing.T) {
		svc, _, _ := setup(t)
		err := svc.SetPayoutMethod(ctx, 7, "paypal", "")
		assert.ErrorIs(t, err, ErrEmptyAddress)
	})
}

func TestService_BanVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("ban existing user", func(t *testing.T) {
		svc, userRepo, _ := setup(t)
		userRepo.EXPECT().GetByID(ctx, int64(7)).Return(&domain.User{ID: 7}, nil)
		userRepo.EXPECT().SetBanned(ctx, int64(7), true).Return(nil)

		assert.NoError(t, svc.Ban(ctx, 7))
	})

	t.Run("ban unknown user", func(t *testing.T) {
		svc, userRepo, _ := setup(t)
		userRepo.EXPECT().GetByID(ctx, int64(404)).Return(nil, nil)

		assert.ErrorIs(t, svc.Ban(ctx, 404), ErrUserNotFound)
	})

	t.Run("verify", func(t *testing.T) {
		svc, userRepo, _ := setup(t)
		userRepo.EXPECT().GetByID(ctx, int64(7)).Return(&domain.User{ID: 7}, nil)
		userRepo.EXPECT().SetVerified(ctx, int64(7), true).Return(nil)

		assert.NoError(t, svc.Verify(ctx, 7))
	})
}
