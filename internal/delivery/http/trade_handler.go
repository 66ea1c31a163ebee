package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"flashtrade/internal/delivery/http/dto"
	"flashtrade/internal/domain"
	"flashtrade/internal/usecase"
)

// TradeHandler handles trade submission and inspection
type TradeHandler struct {
	session        *usecase.Session
	tradingService *usecase.TradingService
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(session *usecase.Session, tradingService *usecase.TradingService) *TradeHandler {
	return &TradeHandler{session: session, tradingService: tradingService}
}

// Submit places a simulated trade
// POST /api/trades
func (h *TradeHandler) Submit(c echo.Context) error {
	var req dto.SubmitTradeRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if req.Side != domain.SideBuy && req.Side != domain.SideSell {
		return BadRequestResponse(c, "Side must be 'buy' or 'sell'")
	}
	if req.Asset == "" {
		return BadRequestResponse(c, "Asset is required")
	}

	trade, rejection := h.tradingService.SubmitOrder(c.Request().Context(), domain.OrderRequest{
		Asset:      req.Asset,
		Side:       req.Side,
		Quantity:   req.Quantity,
		LimitPrice: req.LimitPrice,
	})
	if rejection != nil {
		return RejectedResponse(c, rejection.Message, rejection)
	}

	return CreatedResponse(c, dto.NewTradeOutput(trade))
}

// List returns every trade of the session, oldest first
// GET /api/trades
func (h *TradeHandler) List(c echo.Context) error {
	trades := h.session.Trades()
	out := make([]dto.TradeOutput, 0, len(trades))
	for _, t := range trades {
		out = append(out, dto.NewTradeOutput(t))
	}
	return SuccessResponse(c, out)
}

// Get returns one trade by ID
// GET /api/trades/:id
func (h *TradeHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid trade ID")
	}

	trade, ok := h.session.TradeByID(id)
	if !ok {
		return NotFoundResponse(c, "Trade not found")
	}
	return SuccessResponse(c, dto.NewTradeOutput(trade))
}

// Stats returns balance and trade counters for the practice view
// GET /api/trades/stats
func (h *TradeHandler) Stats(c echo.Context) error {
	return SuccessResponse(c, h.tradingService.Stats())
}
