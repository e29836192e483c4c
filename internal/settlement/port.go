package settlement

import (
	"context"
	"errors"
	"time"
)

// Errors surfaced by settlement providers
var (
	ErrInsufficientBudget = errors.New("bidder budget insufficient for hold")
	ErrInvalidPayee       = errors.New("unknown or invalid payee account")
	ErrHoldNotFound       = errors.New("hold not found")
	ErrChargeFailed       = errors.New("charge was rejected")
)

// Hold is a provisional reservation of funds against a bidder's account
type Hold struct {
	HoldID    string    `json:"hold_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Charge is the result of converting a hold into an actual payment
type Charge struct {
	ChargeID string `json:"charge_id"`
	Status   string `json:"status"`
}

// Port abstracts the external payment service the auction engine
// coordinates with. RequestHold and ChargeHold failures are authoritative;
// ReleaseHold is best-effort and callers only log its errors.
type Port interface {
	RequestHold(ctx context.Context, bidderID, placementID string, amount float64) (Hold, error)
	ReleaseHold(ctx context.Context, holdID string) error
	ChargeHold(ctx context.Context, holdID string, amount float64) (Charge, error)
}
