package service

import (
	"strings"
	"testing"

	"flashtrade/internal/domain"
)

func feedbackFor(t *testing.T, profitLoss float64) string {
	t.Helper()
	return NewFeedbackService().Generate(100, domain.SideBuy, &profitLoss)
}

func TestFeedbackPendingTrade(t *testing.T) {
	msg := NewFeedbackService().Generate(100, domain.SideBuy, nil)
	if !strings.Contains(msg, "Monitor the market") {
		t.Fatalf("expected the generic monitoring message for a pending trade, got %q", msg)
	}
}

func TestFeedbackProfitTiers(t *testing.T) {
	// entry=100 so pnl maps 1:1 onto the magnitude percent
	if msg := feedbackFor(t, 6); !strings.HasPrefix(msg, "Excellent trade!") {
		t.Fatalf("expected strong-profit tier for 6%%, got %q", msg)
	}
	if msg := feedbackFor(t, 3); !strings.HasPrefix(msg, "Good trade execution.") {
		t.Fatalf("expected moderate-profit tier for 3%%, got %q", msg)
	}
	if msg := feedbackFor(t, 1); !strings.Contains(msg, "modest gains") {
		t.Fatalf("expected small-profit tier for 1%%, got %q", msg)
	}
}

func TestFeedbackLossTiers(t *testing.T) {
	if msg := feedbackFor(t, -6); !strings.HasPrefix(msg, "Significant loss.") {
		t.Fatalf("expected strong-loss tier for -6%%, got %q", msg)
	}
	if msg := feedbackFor(t, -3); !strings.HasPrefix(msg, "Small loss") {
		t.Fatalf("expected moderate-loss tier for -3%%, got %q", msg)
	}
	if msg := feedbackFor(t, -1); !strings.HasPrefix(msg, "Minor loss.") {
		t.Fatalf("expected small-loss tier for -1%%, got %q", msg)
	}
}

func TestFeedbackTierBoundaries(t *testing.T) {
	// Tiers are strict greater-than comparisons: exactly 5% is moderate,
	// exactly 2% is small
	if msg := feedbackFor(t, 5); !strings.HasPrefix(msg, "Good trade execution.") {
		t.Fatalf("expected exactly 5%% to fall in the moderate tier, got %q", msg)
	}
	if msg := feedbackFor(t, 2); !strings.Contains(msg, "modest gains") {
		t.Fatalf("expected exactly 2%% to fall in the small tier, got %q", msg)
	}
}

func TestFeedbackMagnitudeIgnoresQuantity(t *testing.T) {
	// The magnitude metric divides by entry price alone; a 6-unit pnl on a
	// 100 entry lands in the strong tier regardless of position size
	pnl := 6.0
	big := NewFeedbackService().Generate(100, domain.SideBuy, &pnl)
	if !strings.HasPrefix(big, "Excellent trade!") {
		t.Fatalf("expected strong tier independent of quantity, got %q", big)
	}
}

func TestFeedbackBreakEvenFallsInSmallLossTier(t *testing.T) {
	if msg := feedbackFor(t, 0); !strings.HasPrefix(msg, "Minor loss.") {
		t.Fatalf("expected zero pnl to produce the small-loss message, got %q", msg)
	}
}
