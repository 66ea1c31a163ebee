package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"flashtrade/internal/domain"
)

var signalReasons = []string{
	"Momentum breakout above short-term resistance",
	"Oversold bounce forming on the hourly chart",
	"Volume spike confirming the current trend",
	"Price rejected at a key support level",
	"Bearish divergence against recent highs",
}

// SignalService synthesizes mocked trading signals for the premium signals
// view. Signals are advisory display data only; they never place trades.
type SignalService struct {
	mu     sync.Mutex
	rng    *rand.Rand
	market *MarketService
}

// NewSignalService creates a new SignalService. The service takes ownership
// of rng; callers must not share it with other goroutines.
func NewSignalService(rng *rand.Rand, market *MarketService) *SignalService {
	return &SignalService{rng: rng, market: market}
}

// GenerateSignals produces one mocked signal per quoted asset
func (s *SignalService) GenerateSignals() []domain.TradingSignal {
	quotes := s.market.Quotes()

	s.mu.Lock()
	defer s.mu.Unlock()

	signals := make([]domain.TradingSignal, 0, len(quotes))
	for _, q := range quotes {
		sigType := domain.SideBuy
		if s.rng.Float64() < 0.5 {
			sigType = domain.SideSell
		}

		signals = append(signals, domain.TradingSignal{
			ID:         uuid.New().String(),
			Asset:      q.Symbol,
			Type:       sigType,
			Price:      q.Price,
			Confidence: 60 + s.rng.Intn(36), // 60-95%
			Reason:     signalReasons[s.rng.Intn(len(signalReasons))],
			CreatedAt:  time.Now(),
		})
	}
	return signals
}
