package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trade represents a simulated trade owned by the lifecycle store.
// The settlement fields (ExitPrice, ProfitLoss, Outcome, Feedback) are
// pointers so they are either all set by one settlement event or all nil.
type Trade struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Asset       string     `json:"asset"`
	Side        string     `json:"side"`
	Quantity    float64    `json:"quantity"`
	EntryPrice  float64    `json:"entry_price"`
	ExitPrice   *float64   `json:"exit_price,omitempty"`
	ProfitLoss  *float64   `json:"profit_loss,omitempty"`
	Outcome     *string    `json:"outcome,omitempty"`
	Feedback    *string    `json:"feedback,omitempty"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	SettledAt   *time.Time `json:"settled_at,omitempty"`
}

// TradeSide constants
const (
	SideBuy  = "buy"
	SideSell = "sell"
)

// TradeStatus constants
const (
	StatusPending = "PENDING"
	StatusSettled = "SETTLED"
)

// TradeOutcome constants
const (
	OutcomeProfit    = "profit"
	OutcomeLoss      = "loss"
	OutcomeBreakEven = "break_even"
)

// IsBuy checks whether the trade is a long (buy) trade
func (t *Trade) IsBuy() bool {
	return t.Side == SideBuy
}

// IsSettled checks whether the trade has already been settled
func (t *Trade) IsSettled() bool {
	return t.Status == StatusSettled
}

// GrossPnL calculates the signed profit/loss against an exit price.
// Buy: (exit - entry) * quantity. Sell (short): (entry - exit) * quantity.
func (t *Trade) GrossPnL(exitPrice float64) float64 {
	if t.IsBuy() {
		return (exitPrice - t.EntryPrice) * t.Quantity
	}
	return (t.EntryPrice - exitPrice) * t.Quantity
}

// PnLPercent calculates the return as a percentage of the position value.
// Precondition: EntryPrice > 0 and Quantity > 0, guaranteed by order
// validation upstream.
func (t *Trade) PnLPercent(exitPrice float64) float64 {
	return t.GrossPnL(exitPrice) / (t.EntryPrice * t.Quantity) * 100
}

// ClassifyOutcome maps a signed profit/loss to its outcome bucket.
// Exact sign comparison on the float64 result, no epsilon.
func ClassifyOutcome(profitLoss float64) string {
	switch {
	case profitLoss > 0:
		return OutcomeProfit
	case profitLoss < 0:
		return OutcomeLoss
	default:
		return OutcomeBreakEven
	}
}
