package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"flashtrade/configs"
	delivery "flashtrade/internal/delivery/http"
	"flashtrade/internal/domain"
	"flashtrade/internal/infra"
	"flashtrade/internal/repository"
	"flashtrade/internal/service"
	"flashtrade/internal/usecase"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := configs.Load()

	ctx := context.Background()

	// Open the local key-value store; degrade to in-memory-only when the
	// data file is unavailable (first-run semantics, nothing is surfaced)
	store := openStore(cfg.Store.Path)
	defer store.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(store)
	tradeRepo := repository.NewTradeRepository(store)
	progressRepo := repository.NewProgressRepository(store)

	// Load or create the trader session
	session := usecase.StartSession(ctx, userRepo, tradeRepo, progressRepo,
		cfg.Simulation.Username, cfg.Simulation.StartingBalance)

	// Initialize services; each randomized service gets its own seeded
	// source, rand.Rand is not safe for concurrent use
	marketService := service.NewMarketService(rand.New(rand.NewSource(time.Now().UnixNano())))
	feedbackService := service.NewFeedbackService()
	signalService := service.NewSignalService(rand.New(rand.NewSource(time.Now().UnixNano()+1)), marketService)

	tradingService := usecase.NewTradingService(
		session,
		userRepo,
		tradeRepo,
		marketService,
		feedbackService,
		time.Duration(cfg.Simulation.SettlementDelaySec)*time.Second,
	)
	progressService := usecase.NewProgressService(session, userRepo, progressRepo)

	// Settle anything left pending by a previous run
	if n := tradingService.SettleDue(ctx); n > 0 {
		log.Printf("[OK] Settled %d trade(s) left pending by a previous session", n)
	}

	// Start the settlement sweep and quote refresh
	scheduler := infra.NewScheduler(tradingService, marketService, cfg.Simulation.QuoteRefreshSeconds)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Initialize HTTP server
	e := echo.New()
	e.HideBanner = true

	delivery.SetupRoutes(e, &delivery.RouterConfig{
		UserHandler:   delivery.NewUserHandler(session, tradingService),
		TradeHandler:  delivery.NewTradeHandler(session, tradingService),
		MarketHandler: delivery.NewMarketHandler(marketService),
		LearnHandler:  delivery.NewLearnHandler(progressService),
		SignalHandler: delivery.NewSignalHandler(session, signalService),
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("[OK] FlashTrade engine starting on %s", addr)
	log.Printf("[OK] Environment: %s", cfg.Server.Env)
	log.Printf("[OK] Starting balance: $%.2f | Settlement delay: %ds",
		cfg.Simulation.StartingBalance, cfg.Simulation.SettlementDelaySec)

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[OK] Server exited gracefully")
}

// openStore opens the bbolt store, falling back to the null store so the
// engine still runs when local persistence is unavailable
func openStore(path string) domain.Store {
	store, err := infra.NewBoltStore(path)
	if err != nil {
		log.Printf("[WARN] Store unavailable (%v), running without persistence", err)
		return infra.NewNullStore()
	}
	return store
}
