package http

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"flashtrade/internal/domain"
	"flashtrade/internal/service"
)

const (
	defaultChartPoints = 168 // 7 days of hourly bars
	maxChartPoints     = 720
)

// MarketHandler serves quotes and the synthesized chart series
type MarketHandler struct {
	market *service.MarketService
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(market *service.MarketService) *MarketHandler {
	return &MarketHandler{market: market}
}

// Quotes returns the current quote table
// GET /api/market/quotes
func (h *MarketHandler) Quotes(c echo.Context) error {
	return SuccessResponse(c, h.market.Quotes())
}

// Chart returns a synthesized OHLCV series for display
// GET /api/market/chart?points=N
func (h *MarketHandler) Chart(c echo.Context) error {
	points := defaultChartPoints
	if raw := c.QueryParam("points"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxChartPoints {
			return BadRequestResponse(c, "points must be between 1 and 720")
		}
		points = n
	}

	bars := make([]domain.ChartBar, 0, points)
	for bar := range h.market.ChartSeries(points) {
		bars = append(bars, bar)
	}
	return SuccessResponse(c, bars)
}
