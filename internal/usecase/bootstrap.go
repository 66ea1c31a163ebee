package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"flashtrade/internal/domain"
)

// StartSession loads the persisted profile and trades into a fresh session,
// creating the profile on first run. Store absence is never an error: an
// empty store simply means a new trader with the starting balance.
func StartSession(
	ctx context.Context,
	userRepo domain.UserRepository,
	tradeRepo domain.TradeRepository,
	progressRepo domain.ProgressRepository,
	username string,
	startingBalance float64,
) *Session {
	user, ok := userRepo.Load(ctx)
	if !ok {
		now := time.Now()
		user = &domain.UserProfile{
			ID:        uuid.New(),
			Username:  username,
			Balance:   startingBalance,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := userRepo.Save(ctx, user); err != nil {
			log.Printf("[WARN] Failed to persist new user profile: %v", err)
		}
		log.Printf("[OK] Created trader profile %s with starting balance %.2f", user.ID, startingBalance)
	} else {
		log.Printf("[OK] Loaded trader profile %s (balance %.2f)", user.ID, user.Balance)
	}

	// The standalone completed-concepts key mirrors the profile list; prefer
	// it when the two have drifted (it is written last on every change).
	if completed, err := progressRepo.Load(ctx); err != nil {
		log.Printf("[WARN] Failed to load completed concepts: %v", err)
	} else if len(completed) > len(user.CompletedConcepts) {
		user.CompletedConcepts = completed
	}

	trades, err := tradeRepo.Load(ctx)
	if err != nil {
		log.Printf("[WARN] Failed to load stored trades, starting empty: %v", err)
		trades = nil
	}

	return NewSession(user, trades)
}
