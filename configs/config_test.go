package configs

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Store.Path != "flashtrade.db" {
		t.Fatalf("expected default store path, got %s", cfg.Store.Path)
	}
	if cfg.Simulation.StartingBalance != 10000 {
		t.Fatalf("expected starting balance 10000, got %v", cfg.Simulation.StartingBalance)
	}
	if cfg.Simulation.SettlementDelaySec != 2 {
		t.Fatalf("expected settlement delay 2s, got %d", cfg.Simulation.SettlementDelaySec)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STARTING_BALANCE", "500.5")
	t.Setenv("SETTLEMENT_DELAY_SECONDS", "0")

	cfg := Load()
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port override, got %s", cfg.Server.Port)
	}
	if cfg.Simulation.StartingBalance != 500.5 {
		t.Fatalf("expected balance override, got %v", cfg.Simulation.StartingBalance)
	}
	if cfg.Simulation.SettlementDelaySec != 0 {
		t.Fatalf("expected zero settlement delay, got %d", cfg.Simulation.SettlementDelaySec)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("STARTING_BALANCE", "not-a-number")
	t.Setenv("SETTLEMENT_DELAY_SECONDS", "2.5")

	cfg := Load()
	if cfg.Simulation.StartingBalance != 10000 {
		t.Fatalf("malformed float must fall back to the default, got %v", cfg.Simulation.StartingBalance)
	}
	if cfg.Simulation.SettlementDelaySec != 2 {
		t.Fatalf("malformed int must fall back to the default, got %d", cfg.Simulation.SettlementDelaySec)
	}
}
