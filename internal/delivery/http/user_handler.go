package http

import (
	"github.com/labstack/echo/v4"

	"flashtrade/internal/delivery/http/dto"
	"flashtrade/internal/usecase"
)

// UserHandler handles profile requests
type UserHandler struct {
	session        *usecase.Session
	tradingService *usecase.TradingService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(session *usecase.Session, tradingService *usecase.TradingService) *UserHandler {
	return &UserHandler{session: session, tradingService: tradingService}
}

// GetMe returns the trader profile
// GET /api/user/me
func (h *UserHandler) GetMe(c echo.Context) error {
	return SuccessResponse(c, dto.NewUserOutput(h.session.Profile()))
}

// UnlockPremium flips the premium flag (the signals-view unlock)
// POST /api/user/premium
func (h *UserHandler) UnlockPremium(c echo.Context) error {
	profile := h.tradingService.UnlockPremium(c.Request().Context())
	return SuccessResponse(c, dto.NewUserOutput(profile))
}
