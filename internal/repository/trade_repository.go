package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"flashtrade/internal/domain"
)

// TradeRepositoryImpl implements the TradeRepository interface over the
// key-value store. The whole collection is stored as one JSON list under the
// trades key, pending and settled trades together.
type TradeRepositoryImpl struct {
	store domain.Store
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(store domain.Store) domain.TradeRepository {
	return &TradeRepositoryImpl{store: store}
}

// Load retrieves all stored trades. An absent key means no trades yet.
func (r *TradeRepositoryImpl) Load(ctx context.Context) ([]*domain.Trade, error) {
	data, ok := r.store.Get(keyTrades)
	if !ok {
		return nil, nil
	}

	var trades []*domain.Trade
	if err := json.Unmarshal(data, &trades); err != nil {
		return nil, fmt.Errorf("failed to decode stored trades: %w", err)
	}
	return trades, nil
}

// Save persists the full trade collection
func (r *TradeRepositoryImpl) Save(ctx context.Context, trades []*domain.Trade) error {
	data, err := json.Marshal(trades)
	if err != nil {
		return fmt.Errorf("failed to encode trades: %w", err)
	}
	if err := r.store.Set(keyTrades, data); err != nil {
		return fmt.Errorf("failed to persist trades: %w", err)
	}
	return nil
}
