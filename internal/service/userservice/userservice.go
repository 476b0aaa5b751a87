package userservice

import (
	"context"
	"errors"
	"slices"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cliphub/cliphub/internal/domain"
	"github.com/cliphub/cliphub/pkg/validate"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidMethod = errors.New("unknown payout method")
	ErrInvalidCard   = errors.New("card number failed validation")
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrEmptyAddress  = errors.New("payout address is empty")
)

var payoutMethods = []string{"paypal", "card", "crypto"}

type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Upsert(ctx context.Context, id int64, username string) (*domain.User, error)
	AddBonus(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error)
	SetBanned(ctx context.Context, userID int64, banned bool) error
	SetVerified(ctx context.Context, userID int64, verified bool) error
	SetPayoutInfo(ctx context.Context, userID int64, method, address string) error
}

type Notifier interface {
	BonusGranted(ctx context.Context, userID int64, amount decimal.Decimal, reason string) error
}

type Service struct {
	userRepo UserRepo
	notifier Notifier
}

func New(userRepo UserRepo, notifier Notifier) *Service {
	return &Service{
		userRepo: userRepo,
		notifier: notifier,
	}
}

// Ensure registers the user on first contact and refreshes the username on
// every later one. Chat identities are external, so the ID is never minted
// here.
func (s *Service) Ensure(ctx context.Context, id int64, username string) (*domain.User, error) {
	return s.userRepo.Upsert(ctx, id, username)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Bonus credits a discretionary amount on top of earned balance. The bonus
// total is tracked separately so earned and granted money stay auditable.
func (s *Service) Bonus(ctx context.Context, userID int64, amount decimal.Decimal, reason string) (*domain.User, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	user, err := s.userRepo.AddBonus(ctx, userID, amount)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.notifier.BonusGranted(ctx, userID, amount, reason); err != nil {
		zap.L().Warn("bonus notification failed", zap.Int64("userID", userID), zap.Error(err))
	}
	return user, nil
}

func (s *Service) Ban(ctx context.Context, userID int64) error {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.SetBanned(ctx, userID, true)
}

func (s *Service) Unban(ctx context.Context, userID int64) error {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.SetBanned(ctx, userID, false)
}

func (s *Service) Verify(ctx context.Context, userID int64) error {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.SetVerified(ctx, userID, true)
}

func (s *Service) Unverify(ctx context.Context, userID int64) error {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.SetVerified(ctx, userID, false)
}

// SetPayoutMethod records where the user's money goes. Card numbers get a
// Luhn check so obvious typos bounce before a payout snapshots them.
func (s *Service) SetPayoutMethod(ctx context.Context, userID int64, method, address string) error {
	if !slices.Contains(payoutMethods, method) {
		return ErrInvalidMethod
	}
	if address == "" {
		return ErrEmptyAddress
	}
	if method == "card" && !validate.ValidCardNumber(address) {
		return ErrInvalidCard
	}
	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.SetPayoutInfo(ctx, userID, method, address)
}
