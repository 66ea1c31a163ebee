package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"flashtrade/internal/domain"
)

// ProgressRepositoryImpl implements the ProgressRepository interface over the
// key-value store. The completed-concepts list is stored under its own key,
// duplicated from UserProfile.CompletedConcepts, and the two are kept in sync
// by the progress tracker.
type ProgressRepositoryImpl struct {
	store domain.Store
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(store domain.Store) domain.ProgressRepository {
	return &ProgressRepositoryImpl{store: store}
}

// Load retrieves the ordered completed-concept IDs
func (r *ProgressRepositoryImpl) Load(ctx context.Context) ([]string, error) {
	data, ok := r.store.Get(keyCompletedConcepts)
	if !ok {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode completed concepts: %w", err)
	}
	return ids, nil
}

// Save persists the ordered completed-concept IDs
func (r *ProgressRepositoryImpl) Save(ctx context.Context, conceptIDs []string) error {
	data, err := json.Marshal(conceptIDs)
	if err != nil {
		return fmt.Errorf("failed to encode completed concepts: %w", err)
	}
	if err := r.store.Set(keyCompletedConcepts, data); err != nil {
		return fmt.Errorf("failed to persist completed concepts: %w", err)
	}
	return nil
}
