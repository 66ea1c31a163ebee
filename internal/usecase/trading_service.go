package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"flashtrade/internal/domain"
	"flashtrade/internal/service"
)

// DefaultEntryPrice is the quote fallback used when an order names a symbol
// outside the quote table and carries no limit price
const DefaultEntryPrice = 43250.0

// TradingService owns the trade lifecycle: it validates orders, creates
// pending trades, settles them against the market simulator, and keeps the
// session balance and the key-value store in sync.
type TradingService struct {
	session   *Session
	userRepo  domain.UserRepository
	tradeRepo domain.TradeRepository
	prices    domain.PriceSource
	feedback  *service.FeedbackService
	delay     time.Duration
}

// NewTradingService creates a new TradingService. delay is how long a trade
// stays pending before the settlement sweep picks it up; zero settles on the
// next sweep.
func NewTradingService(
	session *Session,
	userRepo domain.UserRepository,
	tradeRepo domain.TradeRepository,
	prices domain.PriceSource,
	feedback *service.FeedbackService,
	delay time.Duration,
) *TradingService {
	return &TradingService{
		session:   session,
		userRepo:  userRepo,
		tradeRepo: tradeRepo,
		prices:    prices,
		feedback:  feedback,
		delay:     delay,
	}
}

// SubmitOrder validates a proposed order and, on success, creates a Pending
// trade, persists the collection, and leaves settlement to the sweep. On
// rejection no state is mutated and the reason is returned for verbatim
// display.
func (ts *TradingService) SubmitOrder(ctx context.Context, req domain.OrderRequest) (domain.Trade, *domain.Rejection) {
	ts.session.mu.Lock()
	defer ts.session.mu.Unlock()

	entryPrice := ts.prices.CurrentPrice(req.Asset, DefaultEntryPrice)
	if req.LimitPrice != nil {
		entryPrice = *req.LimitPrice
	}

	if rej := domain.ValidateOrder(entryPrice, req.Quantity, ts.session.user.Balance); rej != nil {
		return domain.Trade{}, rej
	}

	trade := &domain.Trade{
		ID:          uuid.New(),
		UserID:      ts.session.user.ID,
		Asset:       req.Asset,
		Side:        req.Side,
		Quantity:    req.Quantity,
		EntryPrice:  entryPrice,
		Status:      domain.StatusPending,
		RequestedAt: time.Now(),
	}
	ts.session.trades = append(ts.session.trades, trade)
	ts.persistTradesLocked(ctx)

	log.Printf("[INFO] Trade %s submitted: %s %s qty=%.4f entry=%.2f", trade.ID, trade.Side, trade.Asset, trade.Quantity, trade.EntryPrice)
	return *trade, nil
}

// Settle settles one trade by ID. Settling an already settled trade is a
// no-op; an unknown ID is an error.
func (ts *TradingService) Settle(ctx context.Context, id uuid.UUID) error {
	ts.session.mu.Lock()
	defer ts.session.mu.Unlock()

	trade := ts.session.findLocked(id)
	if trade == nil {
		return fmt.Errorf("trade %s not found", id)
	}
	if trade.IsSettled() {
		return nil
	}

	ts.settleLocked(ctx, trade)
	return nil
}

// SettleDue settles every pending trade whose settlement delay has elapsed
// and returns how many were settled. Called by the scheduler sweep.
func (ts *TradingService) SettleDue(ctx context.Context) int {
	ts.session.mu.Lock()
	defer ts.session.mu.Unlock()

	cutoff := time.Now().Add(-ts.delay)
	settled := 0
	for _, trade := range ts.session.trades {
		if trade.IsSettled() || trade.RequestedAt.After(cutoff) {
			continue
		}
		ts.settleLocked(ctx, trade)
		settled++
	}
	return settled
}

// settleLocked performs one settlement event: exit price, P&L, outcome and
// feedback land on the trade together, then the balance absorbs the P&L.
// Callers must hold the session lock and have checked the pending status.
func (ts *TradingService) settleLocked(ctx context.Context, trade *domain.Trade) {
	basePrice := ts.prices.CurrentPrice(trade.Asset, trade.EntryPrice)
	exitPrice := ts.prices.SimulateExit(basePrice)

	profitLoss := trade.GrossPnL(exitPrice)
	outcome := domain.ClassifyOutcome(profitLoss)
	feedback := ts.feedback.Generate(trade.EntryPrice, trade.Side, &profitLoss)
	now := time.Now()

	trade.ExitPrice = &exitPrice
	trade.ProfitLoss = &profitLoss
	trade.Outcome = &outcome
	trade.Feedback = &feedback
	trade.Status = domain.StatusSettled
	trade.SettledAt = &now

	ts.session.user.Balance += profitLoss
	ts.session.user.UpdatedAt = now

	ts.persistTradesLocked(ctx)
	ts.persistUserLocked(ctx)

	log.Printf("[OK] Trade %s settled: exit=%.2f pnl=%.2f outcome=%s balance=%.2f",
		trade.ID, exitPrice, profitLoss, outcome, ts.session.user.Balance)
}

// UnlockPremium flips the premium flag on the profile and persists it
func (ts *TradingService) UnlockPremium(ctx context.Context) domain.UserProfile {
	ts.session.mu.Lock()
	defer ts.session.mu.Unlock()

	if !ts.session.user.IsPremium {
		ts.session.user.IsPremium = true
		ts.session.user.UpdatedAt = time.Now()
		ts.persistUserLocked(ctx)
		log.Printf("[OK] Premium unlocked for user %s", ts.session.user.ID)
	}
	return ts.session.profileLocked()
}

// PortfolioStats summarizes the session for the practice view
type PortfolioStats struct {
	Balance          float64 `json:"balance"`
	TotalTrades      int     `json:"total_trades"`
	ProfitableTrades int     `json:"profitable_trades"`
}

// Stats returns balance and trade counters for the session
func (ts *TradingService) Stats() PortfolioStats {
	ts.session.mu.Lock()
	defer ts.session.mu.Unlock()

	stats := PortfolioStats{Balance: ts.session.user.Balance}
	for _, t := range ts.session.trades {
		stats.TotalTrades++
		if t.Outcome != nil && *t.Outcome == domain.OutcomeProfit {
			stats.ProfitableTrades++
		}
	}
	return stats
}

// persistTradesLocked writes the trade collection through to the store.
// Persistence failures are logged and swallowed: the in-memory state stays
// authoritative and the caller is never surfaced a storage error.
func (ts *TradingService) persistTradesLocked(ctx context.Context) {
	if err := ts.tradeRepo.Save(ctx, ts.session.trades); err != nil {
		log.Printf("[WARN] Failed to persist trades: %v", err)
	}
}

// persistUserLocked writes the profile through to the store, same silent
// degradation as persistTradesLocked
func (ts *TradingService) persistUserLocked(ctx context.Context) {
	if err := ts.userRepo.Save(ctx, ts.session.user); err != nil {
		log.Printf("[WARN] Failed to persist user profile: %v", err)
	}
}
