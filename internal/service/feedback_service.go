package service

import "math"

// Feedback tier thresholds, applied to |profitLoss| / entryPrice * 100.
// Note the denominator is the entry price alone, not entry*quantity — this
// intentionally differs from the P&L percentage and is preserved for parity
// with the original tiering.
const (
	FeedbackStrongMovePercent = 5.0
	FeedbackModerateMovePct   = 2.0
)

const (
	feedbackPending = "Trade executed successfully. Monitor the market for exit opportunities."

	feedbackProfitStrong   = "Excellent trade! You captured a significant price movement. Consider taking partial profits on such strong moves."
	feedbackProfitModerate = "Good trade execution. You successfully identified the market direction. Keep practicing risk management."
	feedbackProfitSmall    = "Profitable trade, though modest gains. Consider holding for larger moves or tightening your entry criteria."

	feedbackLossStrong   = "Significant loss. Review your entry criteria and consider using stop-losses to limit downside risk."
	feedbackLossModerate = "Small loss - part of trading. Analyze what went wrong and adjust your strategy accordingly."
	feedbackLossSmall    = "Minor loss. Good risk management if you used a stop-loss. Keep practicing your timing."
)

// FeedbackService maps a completed trade's outcome and magnitude to a tiered
// natural-language message. Pure: same inputs, same message.
type FeedbackService struct{}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService() *FeedbackService {
	return &FeedbackService{}
}

// Generate returns the feedback message for a trade. A nil profitLoss means
// the trade is still pending and yields the generic monitoring message
// regardless of tiers.
func (s *FeedbackService) Generate(entryPrice float64, side string, profitLoss *float64) string {
	if profitLoss == nil {
		return feedbackPending
	}

	percent := math.Abs(*profitLoss) / entryPrice * 100

	if *profitLoss > 0 {
		switch {
		case percent > FeedbackStrongMovePercent:
			return feedbackProfitStrong
		case percent > FeedbackModerateMovePct:
			return feedbackProfitModerate
		default:
			return feedbackProfitSmall
		}
	}

	switch {
	case percent > FeedbackStrongMovePercent:
		return feedbackLossStrong
	case percent > FeedbackModerateMovePct:
		return feedbackLossModerate
	default:
		return feedbackLossSmall
	}
}
