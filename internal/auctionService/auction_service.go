package auction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"placement-auction/internal/auctionerrors"
	"placement-auction/internal/models"
	"placement-auction/internal/repository"
	"placement-auction/internal/settlement"
	"placement-auction/utils"
)

// AuctionService owns the placement registry and bid ledger logic.
// Every mutating operation on a placement runs under that placement's
// own mutex, held across the settlement hold call, so concurrent
// submissions can never act on a stale current bid.
type AuctionService struct {
	repo       repository.PlacementStore
	settlement settlement.Port

	antiSnipeWindow time.Duration
	bidHoldTTL      time.Duration

	mu    sync.Mutex // guards locks
	locks map[string]*sync.Mutex

	now func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.PlacementStore, port settlement.Port, antiSnipeWindow, bidHoldTTL time.Duration) *AuctionService {
	return &AuctionService{
		repo:            repo,
		settlement:      port,
		antiSnipeWindow: antiSnipeWindow,
		bidHoldTTL:      bidHoldTTL,
		locks:           make(map[string]*sync.Mutex),
		now:             time.Now,
	}
}

// placementLock returns the mutex that serializes mutations of one placement
func (s *AuctionService) placementLock(placementID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[placementID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[placementID] = l
	}
	return l
}

// StatusSnapshot is a read-only view of a placement auction
type StatusSnapshot struct {
	PlacementID    string                 `json:"placement_id"`
	CurrentBid     float64                `json:"current_bid"`
	MinBid         float64                `json:"min_bid"`
	BidCount       int                    `json:"bid_count"`
	TimeLeft       time.Duration          `json:"time_left"`
	Status         models.PlacementStatus `json:"status"`
	WinnerBidderID string                 `json:"winner_bidder_id,omitempty"`
	WinningAmount  float64                `json:"winning_amount,omitempty"`
}

// BidReceipt accompanies an accepted bid back to the caller
type BidReceipt struct {
	CurrentBid float64       `json:"current_bid"`
	IsWinning  bool          `json:"is_winning"`
	TimeLeft   time.Duration `json:"time_left"`
	BidCount   int           `json:"bid_count"`
}

// FinalizeSummary reports the outcome of a settled auction
type FinalizeSummary struct {
	PlacementID    string        `json:"placement_id"`
	WinnerBidderID string        `json:"winner_bidder_id,omitempty"`
	FinalBid       float64       `json:"final_bid"`
	TotalBids      int           `json:"total_bids"`
	Duration       time.Duration `json:"duration"`
}

// InitializePlacement creates a new active placement auction
func (s *AuctionService) InitializePlacement(placementID string, cfg models.PlacementConfig) (models.Placement, error) {
	if placementID == "" {
		return models.Placement{}, fmt.Errorf("service: %w - missing placement ID", auctionerrors.ErrInvalidPlacement)
	}
	if !models.ValidPlacementType(cfg.Type) {
		return models.Placement{}, fmt.Errorf("service: %w - unknown type %q", auctionerrors.ErrInvalidPlacement, cfg.Type)
	}
	if cfg.MinBid <= 0 {
		return models.Placement{}, fmt.Errorf("service: %w - non-positive min bid", auctionerrors.ErrInvalidPlacement)
	}
	if cfg.Duration <= 0 {
		return models.Placement{}, fmt.Errorf("service: %w - non-positive duration", auctionerrors.ErrInvalidPlacement)
	}

	now := s.now().UTC()
	p := models.Placement{
		PlacementID: placementID,
		Type:        cfg.Type,
		Category:    cfg.Category,
		Location:    cfg.Location,
		MinBid:      cfg.MinBid,
		CurrentBid:  cfg.MinBid,
		StartedAt:   now,
		ExpiresAt:   now.Add(cfg.Duration),
		Status:      models.PlacementActive,
	}

	if err := s.repo.CreatePlacement(p); err != nil {
		return models.Placement{}, fmt.Errorf("service: failed to initialize placement %s: %w", placementID, err)
	}

	utils.Info("placement initialized", map[string]any{
		"placement_id": placementID,
		"type":         string(cfg.Type),
		"category":     cfg.Category,
		"min_bid":      cfg.MinBid,
		"expires_at":   p.ExpiresAt,
	})
	return p, nil
}

// GetPlacementStatus returns a snapshot of the placement. It never calls
// into the settlement port and does not take the placement lock.
func (s *AuctionService) GetPlacementStatus(placementID string) (StatusSnapshot, error) {
	if placementID == "" {
		return StatusSnapshot{}, fmt.Errorf("service: %w - empty placement ID", auctionerrors.ErrInvalidPlacement)
	}

	p, err := s.repo.GetPlacement(placementID)
	if err != nil {
		return StatusSnapshot{}, fmt.Errorf("service: failed to get placement %s: %w", placementID, err)
	}

	snap := StatusSnapshot{
		PlacementID: p.PlacementID,
		CurrentBid:  p.CurrentBid,
		MinBid:      p.MinBid,
		BidCount:    p.BidCount,
		TimeLeft:    timeLeft(p.ExpiresAt, s.now()),
		Status:      p.Status,
	}
	if w := p.WinningBid(); w != nil {
		snap.WinnerBidderID = w.BidderID
		snap.WinningAmount = w.Amount
	}
	return snap, nil
}

// SubmitBid validates a bid, acquires a fund hold, and promotes the bid
// to current winner. The full validate-hold-mutate sequence runs under
// the placement lock so accepted bids are totally ordered.
func (s *AuctionService) SubmitBid(ctx context.Context, bidderID, placementID string, amount float64, productID string) (models.Bid, BidReceipt, error) {
	if bidderID == "" || placementID == "" {
		return models.Bid{}, BidReceipt{}, fmt.Errorf("service: %w - missing bidderID or placementID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return models.Bid{}, BidReceipt{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	lock := s.placementLock(placementID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.repo.GetPlacement(placementID)
	if err != nil {
		return models.Bid{}, BidReceipt{}, fmt.Errorf("service: failed to submit bid: %w", err)
	}

	now := s.now().UTC()
	if p.Status != models.PlacementActive || now.After(p.ExpiresAt) {
		return models.Bid{}, BidReceipt{}, fmt.Errorf("service: placement %s: %w", placementID, auctionerrors.ErrAuctionEnded)
	}
	if amount < p.MinBid {
		return models.Bid{}, BidReceipt{}, fmt.Errorf("service: %w - minimum is %.2f", auctionerrors.ErrMinBidNotMet, p.MinBid)
	}
	if amount <= p.CurrentBid {
		return models.Bid{}, BidReceipt{}, fmt.Errorf("service: %w - current bid is %.2f", auctionerrors.ErrBidTooLow, p.CurrentBid)
	}

	hold, err := s.settlement.RequestHold(ctx, bidderID, placementID, amount)
	if err != nil {
		return models.Bid{}, BidReceipt{}, fmt.Errorf("service: %w: %w", auctionerrors.ErrHoldFailed, err)
	}

	bidExpiry := now.Add(s.bidHoldTTL)
	if !hold.ExpiresAt.IsZero() && hold.ExpiresAt.Before(bidExpiry) {
		bidExpiry = hold.ExpiresAt
	}

	bid := models.Bid{
		BidID:       utils.GenerateID(),
		BidderID:    bidderID,
		PlacementID: placementID,
		ProductID:   productID,
		Amount:      amount,
		CreatedAt:   now,
		ExpiresAt:   bidExpiry,
		HoldID:      hold.HoldID,
		Status:      models.BidActive,
	}

	// outbid winner gets their funds back immediately; failure here must
	// not stall the auction
	if prev := p.WinningBid(); prev != nil {
		if relErr := s.settlement.ReleaseHold(ctx, prev.HoldID); relErr != nil {
			utils.Warn("failed to release outbid hold", map[string]any{
				"placement_id": placementID,
				"bid_id":       prev.BidID,
				"hold_id":      prev.HoldID,
				"error":        relErr.Error(),
			})
		}
	}

	p.Bids = append(p.Bids, bid)
	p.CurrentBid = amount
	p.WinningBidID = bid.BidID
	p.BidCount++

	// anti-snipe: a bid landing inside the window pushes the deadline out
	// so rival bidders get a chance to respond
	if p.ExpiresAt.Sub(now) < s.antiSnipeWindow {
		p.ExpiresAt = now.Add(s.antiSnipeWindow)
	}

	if err := s.repo.SavePlacement(p); err != nil {
		return models.Bid{}, BidReceipt{}, fmt.Errorf("service: failed to record bid on placement %s: %w", placementID, err)
	}
	s.appendHistory(bid, p.Category, models.ActionSubmitted, now)

	utils.Info("bid accepted", map[string]any{
		"placement_id": placementID,
		"bid_id":       bid.BidID,
		"bidder_id":    bidderID,
		"amount":       amount,
		"bid_count":    p.BidCount,
		"expires_at":   p.ExpiresAt,
	})

	receipt := BidReceipt{
		CurrentBid: p.CurrentBid,
		IsWinning:  true,
		TimeLeft:   timeLeft(p.ExpiresAt, now),
		BidCount:   p.BidCount,
	}
	return bid, receipt, nil
}

// FinalizeAuction settles a placement: the winner's hold is charged and
// every other hold is released. Completed placements are a no-op; a
// placement stuck in error state retries the charge on the next call.
func (s *AuctionService) FinalizeAuction(ctx context.Context, placementID string) (*FinalizeSummary, error) {
	if placementID == "" {
		return nil, fmt.Errorf("service: %w - empty placement ID", auctionerrors.ErrInvalidPlacement)
	}

	lock := s.placementLock(placementID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.repo.GetPlacement(placementID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to finalize placement %s: %w", placementID, err)
	}

	if p.Status == models.PlacementCompleted {
		return nil, nil
	}

	now := s.now().UTC()
	if p.Status == models.PlacementActive {
		p.EndedAt = now
	}

	winner := p.WinningBid()
	if winner != nil {
		if winner.Status != models.BidActive {
			// the winning hold expired before settlement could charge it;
			// this needs manual reconciliation
			p.Status = models.PlacementError
			if saveErr := s.repo.SavePlacement(p); saveErr != nil {
				return nil, fmt.Errorf("service: failed to save placement %s: %w", placementID, saveErr)
			}
			utils.Error("winning bid no longer active at finalize", map[string]any{
				"placement_id": placementID,
				"bid_id":       winner.BidID,
				"bid_status":   string(winner.Status),
			})
			return nil, fmt.Errorf("service: placement %s winning bid %s is %s: %w",
				placementID, winner.BidID, winner.Status, auctionerrors.ErrChargeFailed)
		}

		charge, chargeErr := s.settlement.ChargeHold(ctx, winner.HoldID, winner.Amount)
		if chargeErr != nil {
			p.Status = models.PlacementError
			if saveErr := s.repo.SavePlacement(p); saveErr != nil {
				return nil, fmt.Errorf("service: failed to save placement %s: %w", placementID, saveErr)
			}
			utils.Error("winner charge failed", map[string]any{
				"placement_id": placementID,
				"bid_id":       winner.BidID,
				"hold_id":      winner.HoldID,
				"amount":       winner.Amount,
				"error":        chargeErr.Error(),
			})
			return nil, fmt.Errorf("service: %w: %w", auctionerrors.ErrChargeFailed, chargeErr)
		}

		winner.Status = models.BidWon
		winner.ChargeID = charge.ChargeID
		s.appendHistory(*winner, p.Category, models.ActionWon, now)

		for i := range p.Bids {
			b := &p.Bids[i]
			if b.BidID == winner.BidID || b.Status != models.BidActive {
				continue
			}
			if relErr := s.settlement.ReleaseHold(ctx, b.HoldID); relErr != nil {
				utils.Warn("failed to release losing hold", map[string]any{
					"placement_id": placementID,
					"bid_id":       b.BidID,
					"hold_id":      b.HoldID,
					"error":        relErr.Error(),
				})
			}
			b.Status = models.BidLost
			s.appendHistory(*b, p.Category, models.ActionLost, now)
		}
	}

	p.Status = models.PlacementCompleted
	if err := s.repo.SavePlacement(p); err != nil {
		return nil, fmt.Errorf("service: failed to save placement %s: %w", placementID, err)
	}

	summary := &FinalizeSummary{
		PlacementID: placementID,
		FinalBid:    p.CurrentBid,
		TotalBids:   p.BidCount,
		Duration:    p.EndedAt.Sub(p.StartedAt),
	}
	if winner != nil {
		summary.WinnerBidderID = winner.BidderID
	}

	utils.Info("placement finalized", map[string]any{
		"placement_id": placementID,
		"winner":       summary.WinnerBidderID,
		"final_bid":    summary.FinalBid,
		"total_bids":   summary.TotalBids,
	})
	return summary, nil
}

// SweepExpiredBids expires every active bid whose hold expiry has passed,
// releasing its hold. Runs independently of placement outcomes; the
// auction clock calls this on every tick.
func (s *AuctionService) SweepExpiredBids(ctx context.Context) (int, error) {
	placements, err := s.repo.ListPlacements()
	if err != nil {
		return 0, fmt.Errorf("service: failed to list placements: %w", err)
	}

	expired := 0
	for _, snapshot := range placements {
		if !hasExpirableBids(snapshot, s.now()) {
			continue
		}

		lock := s.placementLock(snapshot.PlacementID)
		lock.Lock()
		p, err := s.repo.GetPlacement(snapshot.PlacementID)
		if err != nil {
			lock.Unlock()
			continue
		}

		now := s.now().UTC()
		changed := false
		for i := range p.Bids {
			b := &p.Bids[i]
			if b.Status != models.BidActive || !now.After(b.ExpiresAt) {
				continue
			}
			if relErr := s.settlement.ReleaseHold(ctx, b.HoldID); relErr != nil {
				utils.Warn("failed to release expired hold", map[string]any{
					"placement_id": p.PlacementID,
					"bid_id":       b.BidID,
					"hold_id":      b.HoldID,
					"error":        relErr.Error(),
				})
			}
			b.Status = models.BidExpired
			s.appendHistory(*b, p.Category, models.ActionExpired, now)
			changed = true
			expired++
		}
		if changed {
			if err := s.repo.SavePlacement(p); err != nil {
				utils.Error("failed to save placement after bid expiry", map[string]any{
					"placement_id": p.PlacementID,
					"error":        err.Error(),
				})
			}
		}
		lock.Unlock()
	}
	return expired, nil
}

// FinalizeDuePlacements finalizes every active placement whose deadline
// has passed and returns how many were settled
func (s *AuctionService) FinalizeDuePlacements(ctx context.Context) (int, error) {
	placements, err := s.repo.ListPlacements()
	if err != nil {
		return 0, fmt.Errorf("service: failed to list placements: %w", err)
	}

	finalized := 0
	for _, p := range placements {
		if p.Status != models.PlacementActive || !s.now().After(p.ExpiresAt) {
			continue
		}
		if _, err := s.FinalizeAuction(ctx, p.PlacementID); err != nil {
			if !errors.Is(err, auctionerrors.ErrChargeFailed) {
				utils.Error("sweep finalize failed", map[string]any{
					"placement_id": p.PlacementID,
					"error":        err.Error(),
				})
			}
			continue
		}
		finalized++
	}
	return finalized, nil
}

func (s *AuctionService) appendHistory(bid models.Bid, category string, action models.BidAction, at time.Time) {
	rec := models.BidHistoryRecord{
		RecordID:    utils.GenerateID(),
		BidID:       bid.BidID,
		BidderID:    bid.BidderID,
		PlacementID: bid.PlacementID,
		Category:    category,
		Amount:      bid.Amount,
		Action:      action,
		RecordedAt:  at,
	}
	if err := s.repo.AppendHistory(rec); err != nil {
		utils.Warn("failed to append history record", map[string]any{
			"bid_id": bid.BidID,
			"action": string(action),
			"error":  err.Error(),
		})
	}
}

func hasExpirableBids(p models.Placement, now time.Time) bool {
	for i := range p.Bids {
		if p.Bids[i].Status == models.BidActive && now.After(p.Bids[i].ExpiresAt) {
			return true
		}
	}
	return false
}

func timeLeft(expiresAt, now time.Time) time.Duration {
	left := expiresAt.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}
