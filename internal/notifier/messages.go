package notifier

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cliphub/cliphub/internal/domain"
)

func milestoneBadge(percent int) string {
	switch percent {
	case 25:
		return "🟢"
	case 50:
		return "🟡"
	case 75:
		return "🟠"
	default:
		return "🔴"
	}
}

func milestoneMessage(campaign *domain.Campaign, percent int, stats *domain.CampaignStats, snapshot *domain.BudgetSnapshot) string {
	header := fmt.Sprintf("%s <b>%s</b> has used %d%% of its budget", milestoneBadge(percent), campaign.Name, percent)
	if percent == 100 {
		header = fmt.Sprintf("%s <b>%s</b> budget is fully spent", milestoneBadge(percent), campaign.Name)
	}
	return fmt.Sprintf(
		"%s\n\nSpent: $%s of $%s\nRemaining: $%s\nApproved clips: %d\nTotal views: %d",
		header,
		snapshot.BudgetSpent.StringFixed(2),
		snapshot.TotalBudget.StringFixed(2),
		snapshot.BudgetLeft.StringFixed(2),
		stats.TotalSubmissions,
		stats.TotalViews,
	)
}

func campaignStartedMessage(campaign *domain.Campaign) string {
	return fmt.Sprintf(
		"📣 New campaign: <b>%s</b>\n\n%s\n\nRate: $%s per 1k views\nBudget: $%s",
		campaign.Name,
		campaign.Description,
		campaign.RatePer1K.StringFixed(2),
		campaign.TotalBudget.StringFixed(2),
	)
}

func campaignEndedMessage(campaign *domain.Campaign, stats *domain.CampaignStats) string {
	return fmt.Sprintf(
		"🏁 Campaign <b>%s</b> has ended\n\nApproved clips: %d\nTotal views: %d\nTotal paid out: $%s",
		campaign.Name,
		stats.TotalSubmissions,
		stats.TotalViews,
		campaign.BudgetSpent.StringFixed(2),
	)
}

func memberSummaryMessage(campaign *domain.Campaign, stats *domain.MemberStats, earned decimal.Decimal) string {
	return fmt.Sprintf(
		"🏁 <b>%s</b> has ended. Your results:\n\nSubmitted: %d\nApproved: %d\nViews: %d\nEarned: $%s",
		campaign.Name,
		stats.Submissions,
		stats.Approved,
		stats.Views,
		earned.StringFixed(2),
	)
}

func submissionApprovedMessage(campaign *domain.Campaign, submission *domain.Submission, amount decimal.Decimal) string {
	return fmt.Sprintf(
		"✅ Your clip for <b>%s</b> was approved!\n\nViews: %d\nEarned: $%s",
		campaign.Name,
		submission.Views,
		amount.StringFixed(2),
	)
}

func submissionRejectedMessage(campaign *domain.Campaign, reason string) string {
	text := fmt.Sprintf("❌ Your clip for <b>%s</b> was rejected.", campaign.Name)
	if reason != "" {
		text += "\nReason: " + reason
	}
	return text
}

func submissionFlaggedMessage(submission *domain.Submission, reason string) string {
	text := fmt.Sprintf("🚩 Your submission %d was flagged for manual review.", submission.ID)
	if reason != "" {
		text += "\nReason: " + reason
	}
	return text
}

func payoutRequestedAdminMessage(user *domain.User, payout *domain.Payout, ticket *domain.Ticket) string {
	ref := "n/a"
	if ticket != nil {
		ref = ticket.Reference
	}
	return fmt.Sprintf(
		"💸 Payout request from <b>%s</b> (ID %d)\n\nAmount: $%s\nMethod: %s\nAddress: %s\nTicket: %s",
		user.Username,
		user.ID,
		payout.Amount.StringFixed(2),
		payout.PayoutMethod,
		payout.PayoutAddress,
		ref,
	)
}

func payoutRequestedUserMessage(payout *domain.Payout, ticket *domain.Ticket) string {
	text := fmt.Sprintf("💸 Payout request for $%s received. The amount is reserved from your balance.", payout.Amount.StringFixed(2))
	if ticket != nil {
		text += "\nTicket: " + ticket.Reference
	}
	return text
}

func payoutApprovedMessage(payout *domain.Payout) string {
	return fmt.Sprintf("✅ Your payout of $%s was sent via %s.", payout.Amount.StringFixed(2), payout.PayoutMethod)
}

func payoutRejectedMessage(payout *domain.Payout, reason string) string {
	text := fmt.Sprintf("❌ Your payout of $%s was rejected. The amount is back on your balance.", payout.Amount.StringFixed(2))
	if reason != "" {
		text += "\nReason: " + reason
	}
	return text
}

func bonusMessage(amount decimal.Decimal, reason string) string {
	text := fmt.Sprintf("🎁 You received a $%s bonus!", amount.StringFixed(2))
	if reason != "" {
		text += "\n" + reason
	}
	return text
}

func viewSpikeMessage(submission *domain.Submission, previous, current int64) string {
	return fmt.Sprintf(
		"⚠️ Suspicious view spike on submission %d (%s)\n\n%d → %d views since the last check\n%s",
		submission.ID,
		submission.Platform,
		previous,
		current,
		submission.VideoLink,
	)
}
