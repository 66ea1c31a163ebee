package domain

import "time"

// MarketQuote is a point-in-time price snapshot for an asset symbol.
// Quotes are regenerated per session and never persisted.
type MarketQuote struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
	Volume    float64 `json:"volume"`
	High24h   float64 `json:"high_24h"`
	Low24h    float64 `json:"low_24h"`
}

// ChartBar is one OHLCV bar of a synthesized price series, for display only
type ChartBar struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// TradingSignal is a mocked AI signal shown in the premium signals view
type TradingSignal struct {
	ID         string    `json:"id"`
	Asset      string    `json:"asset"`
	Type       string    `json:"type"` // buy or sell
	Price      float64   `json:"price"`
	Confidence int       `json:"confidence"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}
