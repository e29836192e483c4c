package auctionerrors

import "errors"

// Registry-level errors
var (
	ErrPlacementNotFound  = errors.New("placement not found")
	ErrDuplicatePlacement = errors.New("placement already exists")
	ErrNoHistory          = errors.New("bidder has no bid history")
)

// business logic errors
var (
	ErrInvalidPlacement = errors.New("invalid placement configuration")
	ErrInvalidBid       = errors.New("invalid bid")
	ErrAuctionEnded     = errors.New("auction has ended")
	ErrBidTooLow        = errors.New("bid does not exceed current bid")
	ErrMinBidNotMet     = errors.New("bid below minimum bid")
)

// settlement coordination errors
var (
	ErrHoldFailed   = errors.New("fund hold failed")
	ErrChargeFailed = errors.New("winner charge failed")
)
