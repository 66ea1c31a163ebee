package domain

import "context"

// Store defines the local key-value store contract. Implementations degrade
// silently: Get reports absence instead of failing and Set/Remove errors are
// diagnostic only — callers treat an absent value as "first run".
type Store interface {
	// Get retrieves the raw value for a key; ok is false when absent
	Get(key string) (value []byte, ok bool)

	// Set stores the raw value for a key
	Set(key string, value []byte) error

	// Remove deletes a key; removing an absent key is a no-op
	Remove(key string) error

	// Close releases the underlying store handle
	Close() error
}

// UserRepository defines persistence for the single user profile
type UserRepository interface {
	// Load retrieves the stored profile; ok is false on first run
	Load(ctx context.Context) (user *UserProfile, ok bool)

	// Save persists the profile
	Save(ctx context.Context, user *UserProfile) error
}

// TradeRepository defines persistence for the trade collection
type TradeRepository interface {
	// Load retrieves all stored trades, pending and settled
	Load(ctx context.Context) ([]*Trade, error)

	// Save persists the full trade collection
	Save(ctx context.Context, trades []*Trade) error
}

// ProgressRepository defines persistence for the completed-concepts list,
// stored separately from (and kept in sync with) the user profile
type ProgressRepository interface {
	// Load retrieves the ordered completed-concept IDs
	Load(ctx context.Context) ([]string, error)

	// Save persists the ordered completed-concept IDs
	Save(ctx context.Context, conceptIDs []string) error
}

// PriceSource supplies current prices and simulated exits for settlement
type PriceSource interface {
	// CurrentPrice returns the quoted price for a symbol, or fallback when
	// the symbol is unknown (degraded behavior, not an error)
	CurrentPrice(symbol string, fallback float64) float64

	// SimulateExit synthesizes an exit price around the given entry price
	SimulateExit(entryPrice float64) float64
}
