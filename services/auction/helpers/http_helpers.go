package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"placement-auction/internal/auctionerrors"
	"placement-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrPlacementNotFound):
		return http.StatusNotFound, "placement not found"
	case errors.Is(err, auctionerrors.ErrDuplicatePlacement):
		return http.StatusConflict, "placement already exists"
	case errors.Is(err, auctionerrors.ErrInvalidPlacement):
		return http.StatusBadRequest, "invalid placement details"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusGone, "auction has ended"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid does not exceed current bid"
	case errors.Is(err, auctionerrors.ErrMinBidNotMet):
		return http.StatusConflict, "bid below minimum bid"
	case errors.Is(err, auctionerrors.ErrHoldFailed):
		return http.StatusPaymentRequired, "fund hold failed"
	case errors.Is(err, auctionerrors.ErrChargeFailed):
		return http.StatusBadGateway, "settlement charge failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
