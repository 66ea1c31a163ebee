package service

import (
	"iter"
	"math/rand"
	"sync"
	"time"

	"flashtrade/internal/domain"
)

const (
	// ExitVolatility is the span of the simulated exit movement: one uniform
	// draw in [-0.05, +0.05) applied to the entry price.
	ExitVolatility = 0.1

	// QuoteVolatility is the per-refresh random walk span for the quote table
	QuoteVolatility = 0.02

	// SeriesSeedPrice is the first open of every synthesized chart series
	SeriesSeedPrice = 43000.0

	seriesBarVolatility = 0.02
	seriesWickSpan      = 0.01
	seriesMaxVolume     = 1_000_000.0
)

// MarketService owns the in-memory quote table and is the single source of
// simulated randomness. The random source is injected so tests can pin
// outcomes; production wiring seeds it from the clock.
type MarketService struct {
	mu      sync.Mutex
	rng     *rand.Rand
	symbols []string
	quotes  map[string]*domain.MarketQuote
	opening map[string]float64 // session opening price per symbol, for change_24h
}

// NewMarketService creates a MarketService seeded with the mock quote table
func NewMarketService(rng *rand.Rand) *MarketService {
	seed := []domain.MarketQuote{
		{Symbol: "BTC/USD", Price: 43250.00, Change24h: 2.45, Volume: 28_500_000_000, High24h: 44100.00, Low24h: 42800.00},
		{Symbol: "ETH/USD", Price: 2650.00, Change24h: -1.23, Volume: 15_200_000_000, High24h: 2720.00, Low24h: 2580.00},
		{Symbol: "BASE/USD", Price: 1.85, Change24h: 5.67, Volume: 850_000_000, High24h: 1.92, Low24h: 1.74},
	}

	s := &MarketService{
		rng:     rng,
		quotes:  make(map[string]*domain.MarketQuote, len(seed)),
		opening: make(map[string]float64, len(seed)),
	}
	for i := range seed {
		q := seed[i]
		s.symbols = append(s.symbols, q.Symbol)
		s.quotes[q.Symbol] = &q
		s.opening[q.Symbol] = q.Price
	}
	return s
}

// CurrentPrice returns the quoted price for a symbol. Unknown symbols fall
// back to the caller-supplied default instead of failing.
func (s *MarketService) CurrentPrice(symbol string, fallback float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if q, ok := s.quotes[symbol]; ok {
		return q.Price
	}
	return fallback
}

// Quotes returns a snapshot of the quote table in stable symbol order
func (s *MarketService) Quotes() []domain.MarketQuote {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.MarketQuote, 0, len(s.symbols))
	for _, symbol := range s.symbols {
		out = append(out, *s.quotes[symbol])
	}
	return out
}

// SimulateExit synthesizes an exit price with bounded random movement around
// the entry price: entry * (1 + u) with u uniform in [-0.05, +0.05)
func (s *MarketService) SimulateExit(entryPrice float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	delta := (s.rng.Float64() - 0.5) * ExitVolatility
	return entryPrice * (1 + delta)
}

// RefreshQuotes applies one random walk step to every quote and maintains the
// 24h high/low envelope. Quotes are session-local and never persisted.
func (s *MarketService) RefreshQuotes() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, symbol := range s.symbols {
		q := s.quotes[symbol]
		change := (s.rng.Float64() - 0.5) * QuoteVolatility
		q.Price *= 1 + change
		if q.Price > q.High24h {
			q.High24h = q.Price
		}
		if q.Price < q.Low24h {
			q.Low24h = q.Price
		}
		q.Change24h = (q.Price/s.opening[symbol] - 1) * 100
	}
}

// ChartSeries produces a lazy, finite sequence of OHLCV bars by a random
// walk. Each bar's open equals the previous close; the first open is
// SeriesSeedPrice. The sequence is restartable: ranging over it again yields
// the identical bars. Display only, never an input to settlement.
func (s *MarketService) ChartSeries(points int) iter.Seq[domain.ChartBar] {
	s.mu.Lock()
	seed := s.rng.Int63()
	s.mu.Unlock()

	start := time.Now().Add(-time.Duration(points) * time.Hour).Truncate(time.Hour)

	return func(yield func(domain.ChartBar) bool) {
		r := rand.New(rand.NewSource(seed))
		base := SeriesSeedPrice
		for i := 0; i < points; i++ {
			u := (r.Float64() - 0.5) * seriesBarVolatility
			open := base
			close := open * (1 + u)
			high := maxPrice(open, close) * (1 + r.Float64()*seriesWickSpan)
			low := minPrice(open, close) * (1 - r.Float64()*seriesWickSpan)

			bar := domain.ChartBar{
				Time:   start.Add(time.Duration(i) * time.Hour),
				Open:   open,
				High:   high,
				Low:    low,
				Close:  close,
				Volume: r.Float64() * seriesMaxVolume,
			}
			if !yield(bar) {
				return
			}
			base = close
		}
	}
}

func maxPrice(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minPrice(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
