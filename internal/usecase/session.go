package usecase

import (
	"sync"

	"github.com/google/uuid"

	"flashtrade/internal/domain"
)

// Session is the explicit engine state for one run: the user profile plus the
// owned trade collection. It replaces the original design's module-level
// current-user singleton: constructed at session start, torn down at session
// end, and handed to every engine service.
//
// The mutex serializes every mutation, which also guarantees that a given
// profile balance is only ever touched by one settlement at a time.
type Session struct {
	mu     sync.Mutex
	user   *domain.UserProfile
	trades []*domain.Trade
}

// NewSession creates a session around a loaded (or freshly created) profile
// and trade collection
func NewSession(user *domain.UserProfile, trades []*domain.Trade) *Session {
	return &Session{user: user, trades: trades}
}

// Profile returns a read-only copy of the user profile
func (s *Session) Profile() domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profileLocked()
}

// Trades returns read-only copies of every trade, oldest first
func (s *Session) Trades() []domain.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Trade, 0, len(s.trades))
	for _, t := range s.trades {
		out = append(out, *t)
	}
	return out
}

// TradeByID returns a read-only copy of one trade
func (s *Session) TradeByID(id uuid.UUID) (domain.Trade, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.trades {
		if t.ID == id {
			return *t, true
		}
	}
	return domain.Trade{}, false
}

// profileLocked copies the profile; callers must hold s.mu
func (s *Session) profileLocked() domain.UserProfile {
	u := *s.user
	u.CompletedConcepts = append([]string(nil), s.user.CompletedConcepts...)
	return u
}

// findLocked returns the owned trade for an ID; callers must hold s.mu
func (s *Session) findLocked(id uuid.UUID) *domain.Trade {
	for _, t := range s.trades {
		if t.ID == id {
			return t
		}
	}
	return nil
}
