package models

import "time"

// PlacementType identifies the kind of ad slot being auctioned
type PlacementType string

const (
	PlacementFeaturedListing PlacementType = "featured-listing"
	PlacementCategoryTop     PlacementType = "category-top"
	PlacementSearchPriority  PlacementType = "search-priority"
)

// ValidPlacementType reports whether t is a known placement type
func ValidPlacementType(t PlacementType) bool {
	switch t {
	case PlacementFeaturedListing, PlacementCategoryTop, PlacementSearchPriority:
		return true
	}
	return false
}

// PlacementStatus is the lifecycle state of a placement auction
type PlacementStatus string

const (
	PlacementActive    PlacementStatus = "active"
	PlacementCompleted PlacementStatus = "completed"
	PlacementError     PlacementStatus = "error"
)

// BidStatus is the lifecycle state of a single bid
type BidStatus string

const (
	BidActive  BidStatus = "active"
	BidWon     BidStatus = "won"
	BidLost    BidStatus = "lost"
	BidExpired BidStatus = "expired"
)

// BidAction tags a history record with what happened to the bid
type BidAction string

const (
	ActionSubmitted BidAction = "submitted"
	ActionWon       BidAction = "won"
	ActionLost      BidAction = "lost"
	ActionExpired   BidAction = "expired"
)

// PlacementConfig carries the caller-supplied parameters for a new placement
type PlacementConfig struct {
	Type     PlacementType `json:"type"`
	Category string        `json:"category"`
	Location string        `json:"location"`
	MinBid   float64       `json:"min_bid"`
	Duration time.Duration `json:"duration"`
}

// Placement represents a time-boxed ad slot under auction.
// CurrentBid starts at MinBid and never decreases; WinningBidID
// is empty until the first bid is accepted.
type Placement struct {
	PlacementID  string          `json:"placement_id"`
	Type         PlacementType   `json:"type"`
	Category     string          `json:"category"`
	Location     string          `json:"location"`
	MinBid       float64         `json:"min_bid"`
	CurrentBid   float64         `json:"current_bid"`
	WinningBidID string          `json:"winning_bid_id,omitempty"`
	BidCount     int             `json:"bid_count"`
	StartedAt    time.Time       `json:"started_at"`
	ExpiresAt    time.Time       `json:"expires_at"`
	EndedAt      time.Time       `json:"ended_at"`
	Status       PlacementStatus `json:"status"`
	Bids         []Bid           `json:"bids,omitempty"`
}

// WinningBid returns a pointer into p.Bids for the current winner, or nil
func (p *Placement) WinningBid() *Bid {
	if p.WinningBidID == "" {
		return nil
	}
	for i := range p.Bids {
		if p.Bids[i].BidID == p.WinningBidID {
			return &p.Bids[i]
		}
	}
	return nil
}

// Bid represents a bidder's offer on a placement, backed by a fund hold.
// ExpiresAt is the hold expiry and is independent of the placement deadline.
type Bid struct {
	BidID       string    `json:"bid_id"`
	BidderID    string    `json:"bidder_id"`
	PlacementID string    `json:"placement_id"`
	ProductID   string    `json:"product_id,omitempty"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	HoldID      string    `json:"hold_id,omitempty"`
	ChargeID    string    `json:"charge_id,omitempty"`
	Status      BidStatus `json:"status"`
}

// BidHistoryRecord is an immutable append-only snapshot of a bid event,
// consumed by the analytics aggregator. Never mutated after creation.
type BidHistoryRecord struct {
	RecordID    string    `json:"record_id"`
	BidID       string    `json:"bid_id"`
	BidderID    string    `json:"bidder_id"`
	PlacementID string    `json:"placement_id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Action      BidAction `json:"action"`
	RecordedAt  time.Time `json:"recorded_at"`
}
