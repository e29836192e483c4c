package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	auction "placement-auction/internal/auctionService"
	model "placement-auction/internal/models"
	"placement-auction/internal/repository"
	"placement-auction/internal/settlement"
)

func newBenchStack(budget float64, bidders int) (*auction.AuctionService, *repository.MemoryRepo, *settlement.MemoryProvider) {
	repo := repository.NewMemoryRepo()
	provider := settlement.NewMemoryProvider(time.Hour)
	for i := 0; i < bidders; i++ {
		provider.SetBudget(fmt.Sprintf("bidder_%d", i), budget)
	}
	svc := auction.NewAuctionService(repo, provider, 30*time.Second, time.Hour)
	return svc, repo, provider
}

// Benchmark 1: SubmitBid - Isolated Placements (Low Contention)
func Benchmark_SubmitBid_Isolated(b *testing.B) {
	svc, _, provider := newBenchStack(0, 0)
	ctx := context.Background()

	for i := 0; i < b.N; i++ {
		provider.SetBudget(fmt.Sprintf("bidder_%d", i), 1e9)
		_, err := svc.InitializePlacement(fmt.Sprintf("placement_%d", i), model.PlacementConfig{
			Type: model.PlacementFeaturedListing, Category: "bench",
			MinBid: 10, Duration: time.Hour,
		})
		if err != nil {
			b.Fatalf("failed to initialize placement: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidderID := fmt.Sprintf("bidder_%d", i)
		placementID := fmt.Sprintf("placement_%d", i)
		if _, _, err := svc.SubmitBid(ctx, bidderID, placementID, float64(11+rand.Intn(100)), ""); err != nil {
			b.Fatalf("failed to submit bid: %v", err)
		}
	}
}

// Benchmark 2: SubmitBid - Shared Placement (High Contention)
func Benchmark_SubmitBid_ConcurrentSharedPlacement(b *testing.B) {
	svc, _, provider := newBenchStack(0, 0)
	ctx := context.Background()

	if _, err := svc.InitializePlacement("shared_placement", model.PlacementConfig{
		Type: model.PlacementFeaturedListing, Category: "bench",
		MinBid: 10, Duration: time.Hour,
	}); err != nil {
		b.Fatalf("failed to initialize placement: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 10

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidderID := fmt.Sprintf("bidder_parallel_%d", rnd.Int())
			provider.SetBudget(bidderID, 1e12)

			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _, _ = svc.SubmitBid(ctx, bidderID, "shared_placement", float64(nextBid), "")
		}
	})
}

// Benchmark 3: GetPlacementStatus - read path under a populated ledger
func Benchmark_GetPlacementStatus(b *testing.B) {
	svc, _, _ := newBenchStack(1e9, 1)
	ctx := context.Background()

	if _, err := svc.InitializePlacement("placement_1", model.PlacementConfig{
		Type: model.PlacementCategoryTop, Category: "bench",
		MinBid: 10, Duration: time.Hour,
	}); err != nil {
		b.Fatalf("failed to initialize placement: %v", err)
	}
	for i := 0; i < 100; i++ {
		if _, _, err := svc.SubmitBid(ctx, "bidder_0", "placement_1", float64(11+i), ""); err != nil {
			b.Fatalf("failed to submit bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.GetPlacementStatus("placement_1"); err != nil {
			b.Fatalf("failed to get status: %v", err)
		}
	}
}
