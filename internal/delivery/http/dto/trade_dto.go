package dto

import (
	"time"

	"flashtrade/internal/domain"
)

// SubmitTradeRequest is the trade-submission payload
type SubmitTradeRequest struct {
	Asset      string   `json:"asset"`
	Side       string   `json:"side"` // "buy" or "sell"
	Quantity   float64  `json:"quantity"`
	LimitPrice *float64 `json:"limit_price,omitempty"` // omit to use the current quote
}

// TradeOutput represents a trade in API responses
type TradeOutput struct {
	ID          string   `json:"id"`
	Asset       string   `json:"asset"`
	Side        string   `json:"side"`
	Quantity    float64  `json:"quantity"`
	EntryPrice  float64  `json:"entry_price"`
	ExitPrice   *float64 `json:"exit_price,omitempty"`
	ProfitLoss  *float64 `json:"profit_loss,omitempty"`
	Outcome     *string  `json:"outcome,omitempty"`
	Feedback    *string  `json:"feedback,omitempty"`
	Status      string   `json:"status"`
	RequestedAt string   `json:"requested_at"`
	SettledAt   *string  `json:"settled_at,omitempty"`
}

// NewTradeOutput maps a trade to its API shape
func NewTradeOutput(t domain.Trade) TradeOutput {
	out := TradeOutput{
		ID:          t.ID.String(),
		Asset:       t.Asset,
		Side:        t.Side,
		Quantity:    t.Quantity,
		EntryPrice:  t.EntryPrice,
		ExitPrice:   t.ExitPrice,
		ProfitLoss:  t.ProfitLoss,
		Outcome:     t.Outcome,
		Feedback:    t.Feedback,
		Status:      t.Status,
		RequestedAt: t.RequestedAt.Format(time.RFC3339),
	}
	if t.SettledAt != nil {
		settled := t.SettledAt.Format(time.RFC3339)
		out.SettledAt = &settled
	}
	return out
}
