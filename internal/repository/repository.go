package repository

import (
	"fmt"
	"sync"
	"time"

	"placement-auction/internal/auctionerrors"
	model "placement-auction/internal/models"
)

// PlacementStore defines the storage interface for the auction engine.
// Implementations hand out copies; callers mutate a copy and write it
// back with SavePlacement under their own serialization discipline.
type PlacementStore interface {
	CreatePlacement(p model.Placement) error
	GetPlacement(placementID string) (model.Placement, error)
	SavePlacement(p model.Placement) error
	ListPlacements() ([]model.Placement, error)
	AppendHistory(rec model.BidHistoryRecord) error
	HistoryForBidder(bidderID string, since time.Time) ([]model.BidHistoryRecord, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of PlacementStore
type MemoryRepo struct {
	mu         sync.RWMutex
	placements map[string]model.Placement // key: placementID
	history    []model.BidHistoryRecord   // append-only, in arrival order
}

// NewMemoryRepo creates a new in-memory store instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		placements: make(map[string]model.Placement),
	}
}

// clonePlacement deep-copies a placement so callers never alias the stored bid slice
func clonePlacement(p model.Placement) model.Placement {
	cp := p
	cp.Bids = append([]model.Bid(nil), p.Bids...)
	return cp
}

// CreatePlacement stores a new placement auction
func (r *MemoryRepo) CreatePlacement(p model.Placement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.placements[p.PlacementID]; ok {
		return fmt.Errorf("create placement %s: %w", p.PlacementID, auctionerrors.ErrDuplicatePlacement)
	}
	r.placements[p.PlacementID] = clonePlacement(p)
	return nil
}

// GetPlacement returns a copy of the placement with the given id
func (r *MemoryRepo) GetPlacement(placementID string) (model.Placement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.placements[placementID]
	if !ok {
		return model.Placement{}, fmt.Errorf("get placement %s: %w", placementID, auctionerrors.ErrPlacementNotFound)
	}
	return clonePlacement(p), nil
}

// SavePlacement overwrites an existing placement
func (r *MemoryRepo) SavePlacement(p model.Placement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.placements[p.PlacementID]; !ok {
		return fmt.Errorf("save placement %s: %w", p.PlacementID, auctionerrors.ErrPlacementNotFound)
	}
	r.placements[p.PlacementID] = clonePlacement(p)
	return nil
}

// ListPlacements returns copies of all placements in no particular order
func (r *MemoryRepo) ListPlacements() ([]model.Placement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Placement, 0, len(r.placements))
	for _, p := range r.placements {
		out = append(out, clonePlacement(p))
	}
	return out, nil
}

// AppendHistory records an immutable bid event for analytics
func (r *MemoryRepo) AppendHistory(rec model.BidHistoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history = append(r.history, rec)
	return nil
}

// HistoryForBidder returns the bidder's history records at or after since,
// in arrival order
func (r *MemoryRepo) HistoryForBidder(bidderID string, since time.Time) ([]model.BidHistoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.BidHistoryRecord
	for _, rec := range r.history {
		if rec.BidderID == bidderID && !rec.RecordedAt.Before(since) {
			out = append(out, rec)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("history for bidder %s: %w", bidderID, auctionerrors.ErrNoHistory)
	}
	return out, nil
}
