package auctionclock

import (
	"context"
	"time"

	"placement-auction/utils"
)

// AuctionEngine is the slice of the auction service the clock drives
type AuctionEngine interface {
	SweepExpiredBids(ctx context.Context) (int, error)
	FinalizeDuePlacements(ctx context.Context) (int, error)
}

// Sweeper periodically expires stale bid holds and finalizes placements
// whose deadline has passed. One Sweeper runs per process, started and
// stopped with the process lifecycle.
type Sweeper struct {
	engine   AuctionEngine
	interval time.Duration
}

// NewSweeper creates a sweeper ticking at the given interval
func NewSweeper(engine AuctionEngine, interval time.Duration) *Sweeper {
	return &Sweeper{engine: engine, interval: interval}
}

// Run blocks, sweeping on every tick until ctx is cancelled. On shutdown
// it performs one final sweep so holds past their expiry are not left
// behind by a stopped clock.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	utils.Info("auction clock started", map[string]any{"interval": s.interval.String()})

	for {
		select {
		case <-ctx.Done():
			s.sweep(context.Background())
			utils.Info("auction clock stopped", map[string]any{"reason": ctx.Err().Error()})
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs the two independent passes: bid-level expiry first, then
// placement-level finalize
func (s *Sweeper) sweep(ctx context.Context) {
	expired, err := s.engine.SweepExpiredBids(ctx)
	if err != nil {
		utils.Error("bid expiry pass failed", map[string]any{"error": err.Error()})
	}

	finalized, err := s.engine.FinalizeDuePlacements(ctx)
	if err != nil {
		utils.Error("finalize pass failed", map[string]any{"error": err.Error()})
	}

	if expired > 0 || finalized > 0 {
		utils.Info("sweep completed", map[string]any{
			"expired_bids":         expired,
			"finalized_placements": finalized,
		})
	}
}
