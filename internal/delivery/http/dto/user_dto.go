package dto

import (
	"time"

	"flashtrade/internal/domain"
)

// UserOutput represents the trader profile in API responses
type UserOutput struct {
	ID                string   `json:"id"`
	Username          string   `json:"username"`
	Balance           float64  `json:"balance"`
	CompletedConcepts []string `json:"completed_concepts"`
	IsPremium         bool     `json:"is_premium"`
	CreatedAt         string   `json:"created_at"`
}

// NewUserOutput maps a profile to its API shape
func NewUserOutput(u domain.UserProfile) UserOutput {
	completed := u.CompletedConcepts
	if completed == nil {
		completed = []string{}
	}
	return UserOutput{
		ID:                u.ID.String(),
		Username:          u.Username,
		Balance:           u.Balance,
		CompletedConcepts: completed,
		IsPremium:         u.IsPremium,
		CreatedAt:         u.CreatedAt.Format(time.RFC3339),
	}
}
