package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"placement-auction/internal/advisor"
	"placement-auction/internal/analytics"
	auction "placement-auction/internal/auctionService"
	model "placement-auction/internal/models"
	"placement-auction/services/auction/helpers"
	"placement-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionEngineInterface interface {
	InitializePlacement(placementID string, cfg model.PlacementConfig) (model.Placement, error)
	SubmitBid(ctx context.Context, bidderID, placementID string, amount float64, productID string) (model.Bid, auction.BidReceipt, error)
	GetPlacementStatus(placementID string) (auction.StatusSnapshot, error)
	FinalizeAuction(ctx context.Context, placementID string) (*auction.FinalizeSummary, error)
}

type AdvisorInterface interface {
	GetBiddingRecommendations(placementID, bidderID string) (advisor.Recommendation, error)
}

type AnalyticsInterface interface {
	GetActivePlacements(f analytics.Filters) ([]model.Placement, error)
	GetBiddingAnalytics(bidderID string, period time.Duration) (analytics.BidderReport, error)
}

type AuctionHandler struct {
	engine    AuctionEngineInterface
	advisor   AdvisorInterface
	analytics AnalyticsInterface
}

func NewAuctionHandler(engine AuctionEngineInterface, adv AdvisorInterface, agg AnalyticsInterface) *AuctionHandler {
	return &AuctionHandler{engine: engine, advisor: adv, analytics: agg}
}

// InitializePlacementHandler handles POST /placements
func (h *AuctionHandler) InitializePlacementHandler(c *gin.Context) {
	var req helpers.InitializePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "InitializePlacementHandler", err)
		return
	}

	cfg := model.PlacementConfig{
		Type:     model.PlacementType(req.Type),
		Category: req.Category,
		Location: req.Location,
		MinBid:   req.MinBid,
		Duration: time.Duration(req.DurationSeconds) * time.Second,
	}

	p, err := h.engine.InitializePlacement(req.PlacementID, cfg)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("InitializePlacementHandler: failed to initialize placement", map[string]any{
			"placement_id": req.PlacementID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, placementResponse(p), "placement initialized successfully")
	helpers.LogSuccess("InitializePlacementHandler", "placement initialized successfully", map[string]any{
		"placement_id": p.PlacementID,
		"type":         string(p.Type),
		"min_bid":      p.MinBid,
	})
}

// SubmitBidHandler handles POST /bids
func (h *AuctionHandler) SubmitBidHandler(c *gin.Context) {
	var req helpers.SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	bid, receipt, err := h.engine.SubmitBid(c.Request.Context(), req.BidderID, req.PlacementID, req.Amount, req.ProductID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SubmitBidHandler: failed to submit bid", map[string]any{
			"placement_id": req.PlacementID,
			"bidder_id":    req.BidderID,
			"amount":       req.Amount,
			"error":        err.Error(),
		})
		return
	}

	resp := helpers.SubmitBidResponse{
		BidID:           bid.BidID,
		PlacementID:     bid.PlacementID,
		BidderID:        bid.BidderID,
		Amount:          bid.Amount,
		CreatedAt:       bid.CreatedAt.UTC().Format(time.RFC3339),
		CurrentBid:      receipt.CurrentBid,
		IsWinning:       receipt.IsWinning,
		TimeLeftSeconds: int64(receipt.TimeLeft.Seconds()),
		BidCount:        receipt.BidCount,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid accepted")
	helpers.LogSuccess("SubmitBidHandler", "bid accepted", map[string]any{
		"bid_id":       bid.BidID,
		"placement_id": bid.PlacementID,
		"bidder_id":    bid.BidderID,
		"amount":       bid.Amount,
	})
}

// GetPlacementStatusHandler handles GET /placements/:placement_id/status
func (h *AuctionHandler) GetPlacementStatusHandler(c *gin.Context) {
	placementID := c.Param("placement_id")
	snap, err := h.engine.GetPlacementStatus(placementID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetPlacementStatusHandler: status error", map[string]any{"placement_id": placementID, "error": err.Error()})
		return
	}

	resp := helpers.PlacementStatusResponse{
		PlacementID:     snap.PlacementID,
		CurrentBid:      snap.CurrentBid,
		MinBid:          snap.MinBid,
		BidCount:        snap.BidCount,
		TimeLeftSeconds: int64(snap.TimeLeft.Seconds()),
		Status:          string(snap.Status),
		WinnerBidderID:  snap.WinnerBidderID,
		WinningAmount:   snap.WinningAmount,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "placement status retrieved successfully")
}

// ListActivePlacementsHandler handles GET /placements
func (h *AuctionHandler) ListActivePlacementsHandler(c *gin.Context) {
	filters := analytics.Filters{
		Category: c.Query("category"),
		Type:     model.PlacementType(c.Query("type")),
	}

	placements, err := h.analytics.GetActivePlacements(filters)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListActivePlacementsHandler: listing error", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.PlacementResponse, 0, len(placements))
	for _, p := range placements {
		resp = append(resp, placementResponse(p))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "active placements retrieved successfully")
	helpers.LogSuccess("ListActivePlacementsHandler", "active placements retrieved successfully", map[string]any{
		"count": len(resp),
	})
}

// GetRecommendationsHandler handles GET /placements/:placement_id/recommendations
func (h *AuctionHandler) GetRecommendationsHandler(c *gin.Context) {
	placementID := c.Param("placement_id")
	bidderID := c.Query("bidder_id")

	rec, err := h.advisor.GetBiddingRecommendations(placementID, bidderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetRecommendationsHandler: advisor error", map[string]any{"placement_id": placementID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, rec, "bidding recommendations retrieved successfully")
}

// FinalizePlacementHandler handles POST /placements/:placement_id/finalize
func (h *AuctionHandler) FinalizePlacementHandler(c *gin.Context) {
	placementID := c.Param("placement_id")

	summary, err := h.engine.FinalizeAuction(c.Request.Context(), placementID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("FinalizePlacementHandler: finalize failed", map[string]any{"placement_id": placementID, "error": err.Error()})
		return
	}

	if summary == nil {
		resp := helpers.FinalizeResponse{PlacementID: placementID, AlreadyFinalized: true}
		utils.JSONResponse(c, http.StatusOK, resp, "placement already finalized")
		return
	}

	resp := helpers.FinalizeResponse{
		PlacementID:     summary.PlacementID,
		WinnerBidderID:  summary.WinnerBidderID,
		FinalBid:        summary.FinalBid,
		TotalBids:       summary.TotalBids,
		DurationSeconds: int64(summary.Duration.Seconds()),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "placement finalized successfully")
	helpers.LogSuccess("FinalizePlacementHandler", "placement finalized successfully", map[string]any{
		"placement_id": summary.PlacementID,
		"winner":       summary.WinnerBidderID,
		"final_bid":    summary.FinalBid,
	})
}

// GetBidderAnalyticsHandler handles GET /bidders/:bidder_id/analytics
func (h *AuctionHandler) GetBidderAnalyticsHandler(c *gin.Context) {
	bidderID := c.Param("bidder_id")

	period := 24 * time.Hour
	if raw := c.Query("period"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid period %q", raw), "invalid period")
			return
		}
		period = parsed
	}

	report, err := h.analytics.GetBiddingAnalytics(bidderID, period)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidderAnalyticsHandler: analytics error", map[string]any{"bidder_id": bidderID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, report, "bidding analytics retrieved successfully")
}

func placementResponse(p model.Placement) helpers.PlacementResponse {
	return helpers.PlacementResponse{
		PlacementID: p.PlacementID,
		Type:        string(p.Type),
		Category:    p.Category,
		Location:    p.Location,
		MinBid:      p.MinBid,
		CurrentBid:  p.CurrentBid,
		BidCount:    p.BidCount,
		Status:      string(p.Status),
		StartedAt:   p.StartedAt.UTC().Format(time.RFC3339),
		ExpiresAt:   p.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
