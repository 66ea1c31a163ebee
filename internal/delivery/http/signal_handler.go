package http

import (
	"github.com/labstack/echo/v4"

	"flashtrade/internal/catalog"
	"flashtrade/internal/service"
	"flashtrade/internal/usecase"
)

// SignalHandler serves the premium signals view
type SignalHandler struct {
	session       *usecase.Session
	signalService *service.SignalService
}

// NewSignalHandler creates a new SignalHandler
func NewSignalHandler(session *usecase.Session, signalService *service.SignalService) *SignalHandler {
	return &SignalHandler{session: session, signalService: signalService}
}

// Signals returns mocked trading signals; premium only
// GET /api/signals
func (h *SignalHandler) Signals(c echo.Context) error {
	if !h.session.Profile().IsPremium {
		return ForbiddenResponse(c, "Trading signals are a premium feature")
	}
	return SuccessResponse(c, h.signalService.GenerateSignals())
}

// Features returns the purchasable premium feature catalog
// GET /api/signals/features
func (h *SignalHandler) Features(c echo.Context) error {
	return SuccessResponse(c, catalog.PremiumFeatures())
}
