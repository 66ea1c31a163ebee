package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"flashtrade/internal/infra"
	"flashtrade/internal/repository"
	"flashtrade/internal/usecase"
)

func newProgressFixture(t *testing.T) (*infra.MemoryStore, *usecase.Session, *usecase.ProgressService) {
	t.Helper()

	store := infra.NewMemoryStore()
	userRepo := repository.NewUserRepository(store)
	tradeRepo := repository.NewTradeRepository(store)
	progressRepo := repository.NewProgressRepository(store)

	session := usecase.StartSession(context.Background(), userRepo, tradeRepo, progressRepo, "Trader", 10000)
	progress := usecase.NewProgressService(session, userRepo, progressRepo)
	return store, session, progress
}

func TestMarkCompletedAppends(t *testing.T) {
	_, _, progress := newProgressFixture(t)
	ctx := context.Background()

	completed := progress.MarkCompleted(ctx, "candlestick-basics")
	if len(completed) != 1 || completed[0] != "candlestick-basics" {
		t.Fatalf("unexpected completed list: %v", completed)
	}

	completed = progress.MarkCompleted(ctx, "order-book")
	if len(completed) != 2 || completed[1] != "order-book" {
		t.Fatalf("expected append in completion order, got %v", completed)
	}
}

func TestMarkCompletedIdempotent(t *testing.T) {
	_, session, progress := newProgressFixture(t)
	ctx := context.Background()

	progress.MarkCompleted(ctx, "risk-management")
	completed := progress.MarkCompleted(ctx, "risk-management")
	if len(completed) != 1 {
		t.Fatalf("repeat completion must be a no-op, got %v", completed)
	}
	if got := session.Profile().CompletedConcepts; len(got) != 1 {
		t.Fatalf("profile list drifted: %v", got)
	}
}

func TestMarkCompletedPersistsBothKeys(t *testing.T) {
	store, _, progress := newProgressFixture(t)
	progress.MarkCompleted(context.Background(), "market-psychology")

	data, ok := store.Get("completed_concepts")
	if !ok {
		t.Fatal("completed_concepts key not persisted")
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		t.Fatalf("stored completed_concepts is not a JSON list: %v", err)
	}
	if len(ids) != 1 || ids[0] != "market-psychology" {
		t.Fatalf("unexpected stored list: %v", ids)
	}

	userData, ok := store.Get("user")
	if !ok {
		t.Fatal("user key not persisted")
	}
	var user struct {
		CompletedConcepts []string `json:"completed_concepts"`
	}
	if err := json.Unmarshal(userData, &user); err != nil {
		t.Fatalf("stored user is not valid JSON: %v", err)
	}
	if len(user.CompletedConcepts) != 1 || user.CompletedConcepts[0] != "market-psychology" {
		t.Fatalf("profile copy out of sync: %v", user.CompletedConcepts)
	}
}

func TestStartSessionPrefersLongerStoredList(t *testing.T) {
	store, _, progress := newProgressFixture(t)
	ctx := context.Background()

	progress.MarkCompleted(ctx, "candlestick-basics")
	progress.MarkCompleted(ctx, "order-book")

	// Simulate a profile that missed the last completion write
	userRepo := repository.NewUserRepository(store)
	user, ok := userRepo.Load(ctx)
	if !ok {
		t.Fatal("expected a stored profile")
	}
	user.CompletedConcepts = user.CompletedConcepts[:1]
	if err := userRepo.Save(ctx, user); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded := usecase.StartSession(ctx, userRepo,
		repository.NewTradeRepository(store), repository.NewProgressRepository(store), "Trader", 10000)
	if got := reloaded.Profile().CompletedConcepts; len(got) != 2 {
		t.Fatalf("expected the standalone list to win, got %v", got)
	}
}
