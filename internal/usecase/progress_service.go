package usecase

import (
	"context"
	"log"
	"time"

	"flashtrade/internal/domain"
)

// ProgressService records which educational concepts have been completed,
// independent of trading. The completed list lives on the profile and is
// duplicated under its own store key; both are written on every change.
type ProgressService struct {
	session      *Session
	userRepo     domain.UserRepository
	progressRepo domain.ProgressRepository
}

// NewProgressService creates a new ProgressService
func NewProgressService(session *Session, userRepo domain.UserRepository, progressRepo domain.ProgressRepository) *ProgressService {
	return &ProgressService{
		session:      session,
		userRepo:     userRepo,
		progressRepo: progressRepo,
	}
}

// MarkCompleted appends a concept to the completed set. Idempotent: marking
// an already completed concept changes nothing. Concept IDs are trusted,
// catalog-sourced values and are not validated here.
func (ps *ProgressService) MarkCompleted(ctx context.Context, conceptID string) []string {
	ps.session.mu.Lock()
	defer ps.session.mu.Unlock()

	user := ps.session.user
	if !user.HasCompleted(conceptID) {
		user.CompletedConcepts = append(user.CompletedConcepts, conceptID)
		user.UpdatedAt = time.Now()

		if err := ps.userRepo.Save(ctx, user); err != nil {
			log.Printf("[WARN] Failed to persist user profile: %v", err)
		}
		if err := ps.progressRepo.Save(ctx, user.CompletedConcepts); err != nil {
			log.Printf("[WARN] Failed to persist completed concepts: %v", err)
		}
		log.Printf("[INFO] Concept completed: %s (%d total)", conceptID, len(user.CompletedConcepts))
	}

	return append([]string(nil), user.CompletedConcepts...)
}

// Completed returns a copy of the completed-concept IDs in completion order
func (ps *ProgressService) Completed() []string {
	ps.session.mu.Lock()
	defer ps.session.mu.Unlock()
	return append([]string(nil), ps.session.user.CompletedConcepts...)
}
