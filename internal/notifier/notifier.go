package notifier

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cliphub/cliphub/internal/domain"
)

// Sender is the slice of the Telegram bot API the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram delivers campaign, submission and payout events to creators and
// the operations chat. Creator DMs use the chat ID equal to the user ID;
// campaign-wide announcements go to the campaign's announce chat when set,
// otherwise to the admin chat.
type Telegram struct {
	api         Sender
	adminChatID int64
}

func New(api Sender, adminChatID int64) *Telegram {
	return &Telegram{
		api:         api,
		adminChatID: adminChatID,
	}
}

func (t *Telegram) send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send to chat %d: %w", chatID, err)
	}
	return nil
}

func (t *Telegram) announceChat(campaign *domain.Campaign) int64 {
	if campaign.AnnounceChatID != 0 {
		return campaign.AnnounceChatID
	}
	return t.adminChatID
}

func (t *Telegram) MilestoneReached(_ context.Context, campaign *domain.Campaign, percent int, stats *domain.CampaignStats, snapshot *domain.BudgetSnapshot) error {
	text := milestoneMessage(campaign, percent, stats, snapshot)
	if err := t.send(t.announceChat(campaign), text); err != nil {
		return err
	}
	// the 100% mark also pings operations: the campaign needs a decision
	if percent == 100 && t.announceChat(campaign) != t.adminChatID {
		if err := t.send(t.adminChatID, text); err != nil {
			zap.L().Warn("can't mirror budget alert to admin chat", zap.Error(err))
		}
	}
	return nil
}

func (t *Telegram) CampaignStarted(_ context.Context, campaign *domain.Campaign) error {
	return t.send(t.announceChat(campaign), campaignStartedMessage(campaign))
}

func (t *Telegram) CampaignEnded(_ context.Context, campaign *domain.Campaign, stats *domain.CampaignStats) error {
	return t.send(t.announceChat(campaign), campaignEndedMessage(campaign, stats))
}

func (t *Telegram) MemberSummary(_ context.Context, userID int64, campaign *domain.Campaign, stats *domain.MemberStats, earned decimal.Decimal) error {
	return t.send(userID, memberSummaryMessage(campaign, stats, earned))
}

func (t *Telegram) SubmissionApproved(_ context.Context, userID int64, campaign *domain.Campaign, submission *domain.Submission, amount decimal.Decimal) error {
	return t.send(userID, submissionApprovedMessage(campaign, submission, amount))
}

func (t *Telegram) SubmissionRejected(_ context.Context, userID int64, campaign *domain.Campaign, submission *domain.Submission, reason string) error {
	return t.send(userID, submissionRejectedMessage(campaign, reason))
}

func (t *Telegram) SubmissionFlagged(_ context.Context, userID int64, submission *domain.Submission, reason string) error {
	return t.send(userID, submissionFlaggedMessage(submission, reason))
}

func (t *Telegram) PayoutRequested(_ context.Context, user *domain.User, payout *domain.Payout, ticket *domain.Ticket) error {
	if err := t.send(t.adminChatID, payoutRequestedAdminMessage(user, payout, ticket)); err != nil {
		return err
	}
	if err := t.send(user.ID, payoutRequestedUserMessage(payout, ticket)); err != nil {
		zap.L().Warn("can't confirm payout request to user", zap.Int64("userID", user.ID), zap.Error(err))
	}
	return nil
}

func (t *Telegram) PayoutApproved(_ context.Context, userID int64, payout *domain.Payout) error {
	return t.send(userID, payoutApprovedMessage(payout))
}

func (t *Telegram) PayoutRejected(_ context.Context, userID int64, payout *domain.Payout, reason string) error {
	return t.send(userID, payoutRejectedMessage(payout, reason))
}

func (t *Telegram) BonusGranted(_ context.Context, userID int64, amount decimal.Decimal, reason string) error {
	return t.send(userID, bonusMessage(amount, reason))
}

func (t *Telegram) ViewSpikeDetected(_ context.Context, submission *domain.Submission, previous, current int64) error {
	return t.send(t.adminChatID, viewSpikeMessage(submission, previous, current))
}
