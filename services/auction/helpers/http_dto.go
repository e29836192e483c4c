package helpers

// Request/Response DTOs
type InitializePlacementRequest struct {
	PlacementID     string  `json:"placement_id" binding:"required"`
	Type            string  `json:"type" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	Location        string  `json:"location"`
	MinBid          float64 `json:"min_bid" binding:"required,gt=0"`
	DurationSeconds int64   `json:"duration_seconds" binding:"required,gt=0"`
}

type PlacementResponse struct {
	PlacementID string  `json:"placement_id"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Location    string  `json:"location,omitempty"`
	MinBid      float64 `json:"min_bid"`
	CurrentBid  float64 `json:"current_bid"`
	BidCount    int     `json:"bid_count"`
	Status      string  `json:"status"`
	StartedAt   string  `json:"started_at"`
	ExpiresAt   string  `json:"expires_at"`
}

type SubmitBidRequest struct {
	PlacementID string  `json:"placement_id" binding:"required"`
	BidderID    string  `json:"bidder_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	ProductID   string  `json:"product_id"`
}

type SubmitBidResponse struct {
	BidID           string  `json:"bid_id"`
	PlacementID     string  `json:"placement_id"`
	BidderID        string  `json:"bidder_id"`
	Amount          float64 `json:"amount"`
	CreatedAt       string  `json:"created_at"`
	CurrentBid      float64 `json:"current_bid"`
	IsWinning       bool    `json:"is_winning"`
	TimeLeftSeconds int64   `json:"time_left_seconds"`
	BidCount        int     `json:"bid_count"`
}

type PlacementStatusResponse struct {
	PlacementID     string  `json:"placement_id"`
	CurrentBid      float64 `json:"current_bid"`
	MinBid          float64 `json:"min_bid"`
	BidCount        int     `json:"bid_count"`
	TimeLeftSeconds int64   `json:"time_left_seconds"`
	Status          string  `json:"status"`
	WinnerBidderID  string  `json:"winner_bidder_id,omitempty"`
	WinningAmount   float64 `json:"winning_amount,omitempty"`
}

type FinalizeResponse struct {
	PlacementID      string  `json:"placement_id"`
	WinnerBidderID   string  `json:"winner_bidder_id,omitempty"`
	FinalBid         float64 `json:"final_bid"`
	TotalBids        int     `json:"total_bids"`
	DurationSeconds  int64   `json:"duration_seconds"`
	AlreadyFinalized bool    `json:"already_finalized,omitempty"`
}
