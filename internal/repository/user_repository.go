package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"flashtrade/internal/domain"
)

// Storage keys. These names are part of the persisted format and must not
// change between versions.
const (
	keyUser              = "user"
	keyTrades            = "trades"
	keyCompletedConcepts = "completed_concepts"
)

// UserRepositoryImpl implements the UserRepository interface over the
// key-value store
type UserRepositoryImpl struct {
	store domain.Store
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store domain.Store) domain.UserRepository {
	return &UserRepositoryImpl{store: store}
}

// Load retrieves the stored profile. ok is false when no profile exists yet
// or the stored record cannot be decoded — both are treated as first run.
func (r *UserRepositoryImpl) Load(ctx context.Context) (*domain.UserProfile, bool) {
	data, ok := r.store.Get(keyUser)
	if !ok {
		return nil, false
	}

	user := &domain.UserProfile{}
	if err := json.Unmarshal(data, user); err != nil {
		log.Printf("[WARN] Stored user profile is unreadable, starting fresh: %v", err)
		return nil, false
	}
	return user, true
}

// Save persists the profile
func (r *UserRepositoryImpl) Save(ctx context.Context, user *domain.UserProfile) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}
	if err := r.store.Set(keyUser, data); err != nil {
		return fmt.Errorf("failed to persist user profile: %w", err)
	}
	return nil
}
