package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"placement-auction/internal/advisor"
	"placement-auction/internal/analytics"
	auction "placement-auction/internal/auctionService"
	"placement-auction/internal/auctionclock"
	"placement-auction/internal/config"
	model "placement-auction/internal/models"
	"placement-auction/internal/repository"
	"placement-auction/internal/server"
	"placement-auction/internal/settlement"
	"placement-auction/utils"
)

// settlementProvider builds the in-memory payment collaborator. Demo
// bidder budgets are registered so seeded placements can be bid on
// out of the box.
func settlementProvider(cfg config.Config) *settlement.MemoryProvider {
	provider := settlement.NewMemoryProvider(cfg.BidHoldTTL)
	if cfg.SeedPlacements {
		for bidder, budget := range map[string]float64{
			"demo-bidder-1": 5000,
			"demo-bidder-2": 3000,
			"demo-bidder-3": 1000,
		} {
			provider.SetBudget(bidder, budget)
		}
	}
	return provider
}

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	repo := repository.NewMemoryRepo()
	provider := settlementProvider(cfg)

	engine := auction.NewAuctionService(repo, provider, cfg.AntiSnipeWindow, cfg.BidHoldTTL)
	adv := advisor.NewAdvisor(repo)
	agg := analytics.NewAggregator(repo)

	if cfg.SeedPlacements {
		seedPlacements(engine)
	}

	router := server.SetupRouter(engine, adv, agg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := auctionclock.NewSweeper(engine, cfg.SweepInterval)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sweeper.Run(ctx)
	}()

	srv := &http.Server{Addr: cfg.ServerAddress, Handler: router}
	go func() {
		utils.Info("starting auction server", map[string]any{"address": cfg.ServerAddress})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}
	wg.Wait() // sweeper drains holds before the process exits
}

// seedPlacements adds sample placements for local runs
func seedPlacements(engine *auction.AuctionService) {
	seeds := []struct {
		id  string
		cfg model.PlacementConfig
	}{
		{"placement-electronics-featured", model.PlacementConfig{
			Type: model.PlacementFeaturedListing, Category: "electronics", Location: "nairobi",
			MinBid: 50, Duration: 2 * time.Hour,
		}},
		{"placement-fashion-top", model.PlacementConfig{
			Type: model.PlacementCategoryTop, Category: "fashion", Location: "lagos",
			MinBid: 30, Duration: 4 * time.Hour,
		}},
		{"placement-home-search", model.PlacementConfig{
			Type: model.PlacementSearchPriority, Category: "home-garden", Location: "accra",
			MinBid: 20, Duration: time.Hour,
		}},
	}

	for _, s := range seeds {
		if _, err := engine.InitializePlacement(s.id, s.cfg); err != nil {
			utils.Warn("failed to seed placement", map[string]any{"placement_id": s.id, "error": err.Error()})
		}
	}
}
