package domain

import "testing"

func TestGrossPnLBuy(t *testing.T) {
	trade := &Trade{Side: SideBuy, EntryPrice: 100, Quantity: 2}

	if pnl := trade.GrossPnL(110); pnl != 20 {
		t.Fatalf("expected buy pnl 20, got %v", pnl)
	}
	if pct := trade.PnLPercent(110); pct != 10.0 {
		t.Fatalf("expected buy pnl percent 10, got %v", pct)
	}
}

func TestGrossPnLSell(t *testing.T) {
	trade := &Trade{Side: SideSell, EntryPrice: 100, Quantity: 2}

	if pnl := trade.GrossPnL(110); pnl != -20 {
		t.Fatalf("expected sell pnl -20, got %v", pnl)
	}
	if pct := trade.PnLPercent(110); pct != -10.0 {
		t.Fatalf("expected sell pnl percent -10, got %v", pct)
	}
}

func TestGrossPnLBreakEven(t *testing.T) {
	trade := &Trade{Side: SideBuy, EntryPrice: 100, Quantity: 5}

	pnl := trade.GrossPnL(100)
	if pnl != 0 {
		t.Fatalf("expected zero pnl, got %v", pnl)
	}
	if pct := trade.PnLPercent(100); pct != 0 {
		t.Fatalf("expected zero percent, got %v", pct)
	}
	if outcome := ClassifyOutcome(pnl); outcome != OutcomeBreakEven {
		t.Fatalf("expected break_even, got %s", outcome)
	}
}

func TestClassifyOutcome(t *testing.T) {
	if got := ClassifyOutcome(0.0001); got != OutcomeProfit {
		t.Fatalf("expected profit for positive pnl, got %s", got)
	}
	if got := ClassifyOutcome(-0.0001); got != OutcomeLoss {
		t.Fatalf("expected loss for negative pnl, got %s", got)
	}
	if got := ClassifyOutcome(0); got != OutcomeBreakEven {
		t.Fatalf("expected break_even for zero pnl, got %s", got)
	}
}

func TestValidateOrderAccepts(t *testing.T) {
	cases := []struct {
		price, quantity, balance float64
	}{
		{100, 1, 100},
		{100, 2, 10000},
		{0.5, 3, 1.5},
	}
	for _, tc := range cases {
		if rej := ValidateOrder(tc.price, tc.quantity, tc.balance); rej != nil {
			t.Fatalf("expected order (%v, %v, %v) to be accepted, got %s", tc.price, tc.quantity, tc.balance, rej.Code)
		}
	}
}

func TestValidateOrderNonPositivePrice(t *testing.T) {
	for _, price := range []float64{0, -1, -43250} {
		rej := ValidateOrder(price, 1, 10000)
		if rej == nil || rej.Code != RejectNonPositivePrice {
			t.Fatalf("expected NON_POSITIVE_PRICE for price %v, got %+v", price, rej)
		}
		if rej.Message != "Price must be greater than 0" {
			t.Fatalf("unexpected rejection message: %s", rej.Message)
		}
	}
}

func TestValidateOrderNonPositiveQuantity(t *testing.T) {
	for _, quantity := range []float64{0, -3} {
		rej := ValidateOrder(100, quantity, 10000)
		if rej == nil || rej.Code != RejectNonPositiveQuantity {
			t.Fatalf("expected NON_POSITIVE_QUANTITY for quantity %v, got %+v", quantity, rej)
		}
	}
}

func TestValidateOrderInsufficientBalance(t *testing.T) {
	rej := ValidateOrder(100, 3, 250)
	if rej == nil || rej.Code != RejectInsufficientBalance {
		t.Fatalf("expected INSUFFICIENT_BALANCE, got %+v", rej)
	}
	if rej.Message != "Insufficient balance" {
		t.Fatalf("unexpected rejection message: %s", rej.Message)
	}

	// Spending the exact balance is allowed
	if rej := ValidateOrder(100, 3, 300); rej != nil {
		t.Fatalf("expected exact-balance order to pass, got %s", rej.Code)
	}
}

func TestValidateOrderFirstFailureWins(t *testing.T) {
	// Price is checked before quantity and balance
	rej := ValidateOrder(-1, -1, -1)
	if rej == nil || rej.Code != RejectNonPositivePrice {
		t.Fatalf("expected price check to win, got %+v", rej)
	}
}
