package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	UserHandler   *UserHandler
	TradeHandler  *TradeHandler
	MarketHandler *MarketHandler
	LearnHandler  *LearnHandler
	SignalHandler *SignalHandler
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Quotes and health are polled by the UI; keep them out of the log
			path := c.Request().URL.Path
			return path == "/health" || path == "/api/market/quotes"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return SuccessResponse(c, map[string]interface{}{
			"status":    "healthy",
			"service":   "flashtrade-engine",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	api := e.Group("/api")

	user := api.Group("/user")
	{
		user.GET("/me", config.UserHandler.GetMe)
		user.POST("/premium", config.UserHandler.UnlockPremium)
	}

	trades := api.Group("/trades")
	{
		trades.POST("", config.TradeHandler.Submit)
		trades.GET("", config.TradeHandler.List)
		trades.GET("/stats", config.TradeHandler.Stats)
		trades.GET("/:id", config.TradeHandler.Get)
	}

	market := api.Group("/market")
	{
		market.GET("/quotes", config.MarketHandler.Quotes)
		market.GET("/chart", config.MarketHandler.Chart)
	}

	concepts := api.Group("/concepts")
	{
		concepts.GET("", config.LearnHandler.Concepts)
		concepts.POST("/:id/complete", config.LearnHandler.Complete)
	}

	signals := api.Group("/signals")
	{
		signals.GET("", config.SignalHandler.Signals)
		signals.GET("/features", config.SignalHandler.Features)
	}
}
