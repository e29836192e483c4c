package settlement

import (
	"context"
	"fmt"
	"sync"
	"time"

	"placement-auction/utils"
)

type holdRecord struct {
	bidderID  string
	amount    float64
	expiresAt time.Time
	released  bool
	charged   bool
}

// MemoryProvider is an in-memory settlement provider with per-bidder
// budgets. It stands in for the mobile-money rails in local runs and
// integration tests.
type MemoryProvider struct {
	mu      sync.Mutex
	holdTTL time.Duration
	budgets map[string]float64     // key: bidderID -> available funds
	holds   map[string]*holdRecord // key: holdID
	charges map[string]float64     // key: chargeID -> captured amount
}

// NewMemoryProvider creates a provider whose holds expire after holdTTL
func NewMemoryProvider(holdTTL time.Duration) *MemoryProvider {
	return &MemoryProvider{
		holdTTL: holdTTL,
		budgets: make(map[string]float64),
		holds:   make(map[string]*holdRecord),
		charges: make(map[string]float64),
	}
}

// SetBudget registers a bidder account with the given available funds
func (p *MemoryProvider) SetBudget(bidderID string, amount float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.budgets[bidderID] = amount
}

// Budget returns the bidder's currently available funds
func (p *MemoryProvider) Budget(bidderID string) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.budgets[bidderID]
}

// RequestHold reserves amount from the bidder's budget until the hold
// is released, charged, or expires
func (p *MemoryProvider) RequestHold(ctx context.Context, bidderID, placementID string, amount float64) (Hold, error) {
	if err := ctx.Err(); err != nil {
		return Hold{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	available, ok := p.budgets[bidderID]
	if !ok {
		return Hold{}, fmt.Errorf("request hold for %s: %w", bidderID, ErrInvalidPayee)
	}
	if available < amount {
		return Hold{}, fmt.Errorf("request hold of %.2f for %s: %w", amount, bidderID, ErrInsufficientBudget)
	}

	holdID := utils.GenerateID()
	p.budgets[bidderID] = available - amount
	p.holds[holdID] = &holdRecord{
		bidderID:  bidderID,
		amount:    amount,
		expiresAt: time.Now().Add(p.holdTTL),
	}
	return Hold{HoldID: holdID, ExpiresAt: p.holds[holdID].expiresAt}, nil
}

// ReleaseHold refunds a hold back to the bidder's budget. Releasing an
// already-released hold is a no-op so retries stay safe.
func (p *MemoryProvider) ReleaseHold(ctx context.Context, holdID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	h, ok := p.holds[holdID]
	if !ok {
		return fmt.Errorf("release hold %s: %w", holdID, ErrHoldNotFound)
	}
	if h.released || h.charged {
		return nil
	}
	h.released = true
	p.budgets[h.bidderID] += h.amount
	return nil
}

// ChargeHold captures a live hold as an actual payment
func (p *MemoryProvider) ChargeHold(ctx context.Context, holdID string, amount float64) (Charge, error) {
	if err := ctx.Err(); err != nil {
		return Charge{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	h, ok := p.holds[holdID]
	if !ok {
		return Charge{}, fmt.Errorf("charge hold %s: %w", holdID, ErrHoldNotFound)
	}
	if h.released {
		return Charge{}, fmt.Errorf("charge hold %s: hold released: %w", holdID, ErrChargeFailed)
	}
	if h.charged {
		return Charge{}, fmt.Errorf("charge hold %s: hold already charged: %w", holdID, ErrChargeFailed)
	}
	if amount > h.amount {
		return Charge{}, fmt.Errorf("charge of %.2f exceeds held %.2f: %w", amount, h.amount, ErrChargeFailed)
	}

	h.charged = true
	// charging less than held refunds the difference
	if amount < h.amount {
		p.budgets[h.bidderID] += h.amount - amount
	}

	chargeID := utils.GenerateID()
	p.charges[chargeID] = amount
	return Charge{ChargeID: chargeID, Status: "captured"}, nil
}

// ExpireHolds releases every live hold whose expiry has passed and
// returns how many were released
func (p *MemoryProvider) ExpireHolds(now time.Time) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	expired := 0
	for _, h := range p.holds {
		if !h.released && !h.charged && now.After(h.expiresAt) {
			h.released = true
			p.budgets[h.bidderID] += h.amount
			expired++
		}
	}
	return expired
}
