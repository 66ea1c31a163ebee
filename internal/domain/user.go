package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile represents the single local trader profile
type UserProfile struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	Balance           float64   `json:"balance"` // mutated only by trade settlement
	CompletedConcepts []string  `json:"completed_concepts"`
	IsPremium         bool      `json:"is_premium"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HasCompleted reports whether a concept is already in the completed set
func (u *UserProfile) HasCompleted(conceptID string) bool {
	for _, id := range u.CompletedConcepts {
		if id == conceptID {
			return true
		}
	}
	return false
}
