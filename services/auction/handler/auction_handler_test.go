package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"placement-auction/internal/advisor"
	"placement-auction/internal/analytics"
	"placement-auction/internal/auctionerrors"
	auction "placement-auction/internal/auctionService"
	model "placement-auction/internal/models"
	"placement-auction/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*MockAuctionEngineInterface, *MockAdvisorInterface, *MockAnalyticsInterface, *gin.Engine) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockEngine := NewMockAuctionEngineInterface(ctrl)
	mockAdvisor := NewMockAdvisorInterface(ctrl)
	mockAnalytics := NewMockAnalyticsInterface(ctrl)
	h := NewAuctionHandler(mockEngine, mockAdvisor, mockAnalytics)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/placements", h.InitializePlacementHandler)
	router.GET("/placements", h.ListActivePlacementsHandler)
	router.GET("/placements/:placement_id/status", h.GetPlacementStatusHandler)
	router.GET("/placements/:placement_id/recommendations", h.GetRecommendationsHandler)
	router.POST("/placements/:placement_id/finalize", h.FinalizePlacementHandler)
	router.POST("/bids", h.SubmitBidHandler)
	router.GET("/bidders/:bidder_id/analytics", h.GetBidderAnalyticsHandler)

	return mockEngine, mockAdvisor, mockAnalytics, router
}

func performJSON(t *testing.T, router *gin.Engine, method, url string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// Test InitializePlacementHandler
func TestInitializePlacementHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(engine *MockAuctionEngineInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			requestBody: helpers.InitializePlacementRequest{
				PlacementID: "p1", Type: "featured-listing", Category: "electronics",
				MinBid: 10, DurationSeconds: 600,
			},
			mockSetup: func(engine *MockAuctionEngineInterface) {
				engine.EXPECT().
					InitializePlacement("p1", model.PlacementConfig{
						Type: model.PlacementFeaturedListing, Category: "electronics",
						MinBid: 10, Duration: 10 * time.Minute,
					}).
					Return(model.Placement{
						PlacementID: "p1", Type: model.PlacementFeaturedListing,
						Category: "electronics", MinBid: 10, CurrentBid: 10,
						StartedAt: now, ExpiresAt: now.Add(10 * time.Minute),
						Status: model.PlacementActive,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "placement initialized successfully",
		},
		{
			name:           "invalid_json",
			requestBody:    `{not json}`,
			mockSetup:      func(engine *MockAuctionEngineInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_min_bid",
			requestBody: helpers.InitializePlacementRequest{
				PlacementID: "p1", Type: "featured-listing", Category: "electronics",
				DurationSeconds: 600,
			},
			mockSetup:      func(engine *MockAuctionEngineInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "duplicate_placement",
			requestBody: helpers.InitializePlacementRequest{
				PlacementID: "p1", Type: "featured-listing", Category: "electronics",
				MinBid: 10, DurationSeconds: 600,
			},
			mockSetup: func(engine *MockAuctionEngineInterface) {
				engine.EXPECT().
					InitializePlacement("p1", gomock.Any()).
					Return(model.Placement{}, fmt.Errorf("service: %w", auctionerrors.ErrDuplicatePlacement))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "placement already exists",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			engine, _, _, router := setupHandlerTest(t)
			tc.mockSetup(engine)

			w, resp := performJSON(t, router, http.MethodPost, "/placements", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp["message"])
		})
	}
}

// Test SubmitBidHandler
func TestSubmitBidHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(engine *MockAuctionEngineInterface)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_bid",
			requestBody: helpers.SubmitBidRequest{
				PlacementID: "p1", BidderID: "bidderA", Amount: 15,
			},
			mockSetup: func(engine *MockAuctionEngineInterface) {
				engine.EXPECT().
					SubmitBid(gomock.Any(), "bidderA", "p1", 15.0, "").
					Return(model.Bid{
						BidID: uuid.NewString(), BidderID: "bidderA", PlacementID: "p1",
						Amount: 15, CreatedAt: now, Status: model.BidActive,
					}, auction.BidReceipt{
						CurrentBid: 15, IsWinning: true, TimeLeft: 90 * time.Second, BidCount: 1,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid accepted",
			validateData: func(t *testing.T, data map[string]any) {
				_, parseErr := uuid.Parse(data["bid_id"].(string))
				require.NoError(t, parseErr)
				require.Equal(t, "p1", data["placement_id"])
				require.Equal(t, 15.0, data["current_bid"])
				require.Equal(t, true, data["is_winning"])
				require.Equal(t, 90.0, data["time_left_seconds"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{broken`,
			mockSetup:      func(engine *MockAuctionEngineInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "bid_too_low",
			requestBody: helpers.SubmitBidRequest{
				PlacementID: "p1", BidderID: "bidderB", Amount: 12,
			},
			mockSetup: func(engine *MockAuctionEngineInterface) {
				engine.EXPECT().
					SubmitBid(gomock.Any(), "bidderB", "p1", 12.0, "").
					Return(model.Bid{}, auction.BidReceipt{}, fmt.Errorf("service: %w", auctionerrors.ErrBidTooLow))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid does not exceed current bid",
		},
		{
			name: "auction_ended",
			requestBody: helpers.SubmitBidRequest{
				PlacementID: "p1", BidderID: "bidderB", Amount: 50,
			},
			mockSetup: func(engine *MockAuctionEngineInterface) {
				engine.EXPECT().
					SubmitBid(gomock.Any(), "bidderB", "p1", 50.0, "").
					Return(model.Bid{}, auction.BidReceipt{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionEnded))
			},
			expectedStatus: http.StatusGone,
			expectedMsg:    "auction has ended",
		},
		{
			name: "hold_failed",
			requestBody: helpers.SubmitBidRequest{
				PlacementID: "p1", BidderID: "broke", Amount: 50,
			},
			mockSetup: func(engine *MockAuctionEngineInterface) {
				engine.EXPECT().
					SubmitBid(gomock.Any(), "broke", "p1", 50.0, "").
					Return(model.Bid{}, auction.BidReceipt{}, fmt.Errorf("service: %w", auctionerrors.ErrHoldFailed))
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedMsg:    "fund hold failed",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			engine, _, _, router := setupHandlerTest(t)
			tc.mockSetup(engine)

			w, resp := performJSON(t, router, http.MethodPost, "/bids", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp["message"])

			if tc.validateData != nil {
				data, ok := resp["data"].(map[string]any)
				require.True(t, ok)
				tc.validateData(t, data)
			}
		})
	}
}

// Test GetPlacementStatusHandler
func TestGetPlacementStatusHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		engine, _, _, router := setupHandlerTest(t)
		engine.EXPECT().
			GetPlacementStatus("p1").
			Return(auction.StatusSnapshot{
				PlacementID: "p1", CurrentBid: 20, MinBid: 10, BidCount: 3,
				TimeLeft: 45 * time.Second, Status: model.PlacementActive,
				WinnerBidderID: "bidderB", WinningAmount: 20,
			}, nil)

		w, resp := performJSON(t, router, http.MethodGet, "/placements/p1/status", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, 20.0, data["current_bid"])
		require.Equal(t, 45.0, data["time_left_seconds"])
		require.Equal(t, "bidderB", data["winner_bidder_id"])
		require.Equal(t, "active", data["status"])
	})

	t.Run("not_found", func(t *testing.T) {
		engine, _, _, router := setupHandlerTest(t)
		engine.EXPECT().
			GetPlacementStatus("missing").
			Return(auction.StatusSnapshot{}, fmt.Errorf("service: %w", auctionerrors.ErrPlacementNotFound))

		w, resp := performJSON(t, router, http.MethodGet, "/placements/missing/status", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "placement not found", resp["message"])
	})
}

// Test FinalizePlacementHandler
func TestFinalizePlacementHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		engine, _, _, router := setupHandlerTest(t)
		engine.EXPECT().
			FinalizeAuction(gomock.Any(), "p1").
			Return(&auction.FinalizeSummary{
				PlacementID: "p1", WinnerBidderID: "bidderB",
				FinalBid: 20, TotalBids: 2, Duration: 10 * time.Minute,
			}, nil)

		w, resp := performJSON(t, router, http.MethodPost, "/placements/p1/finalize", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "bidderB", data["winner_bidder_id"])
		require.Equal(t, 20.0, data["final_bid"])
		require.Equal(t, 600.0, data["duration_seconds"])
	})

	t.Run("already_finalized", func(t *testing.T) {
		engine, _, _, router := setupHandlerTest(t)
		engine.EXPECT().FinalizeAuction(gomock.Any(), "p1").Return(nil, nil)

		w, resp := performJSON(t, router, http.MethodPost, "/placements/p1/finalize", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "placement already finalized", resp["message"])

		data := resp["data"].(map[string]any)
		require.Equal(t, true, data["already_finalized"])
	})

	t.Run("charge_failed", func(t *testing.T) {
		engine, _, _, router := setupHandlerTest(t)
		engine.EXPECT().
			FinalizeAuction(gomock.Any(), "p1").
			Return(nil, fmt.Errorf("service: %w", auctionerrors.ErrChargeFailed))

		w, resp := performJSON(t, router, http.MethodPost, "/placements/p1/finalize", nil)
		require.Equal(t, http.StatusBadGateway, w.Code)
		require.Equal(t, "settlement charge failed", resp["message"])
	})
}

// Test ListActivePlacementsHandler
func TestListActivePlacementsHandler(t *testing.T) {
	_, _, mockAnalytics, router := setupHandlerTest(t)

	now := time.Now().UTC()
	mockAnalytics.EXPECT().
		GetActivePlacements(analytics.Filters{Category: "electronics", Type: model.PlacementFeaturedListing}).
		Return([]model.Placement{{
			PlacementID: "p1", Type: model.PlacementFeaturedListing, Category: "electronics",
			MinBid: 10, CurrentBid: 15, BidCount: 1,
			StartedAt: now, ExpiresAt: now.Add(time.Hour), Status: model.PlacementActive,
		}}, nil)

	w, resp := performJSON(t, router, http.MethodGet, "/placements?category=electronics&type=featured-listing", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].([]any)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	require.Equal(t, "p1", first["placement_id"])
	require.Equal(t, 15.0, first["current_bid"])
}

// Test GetRecommendationsHandler
func TestGetRecommendationsHandler(t *testing.T) {
	_, mockAdvisor, _, router := setupHandlerTest(t)

	mockAdvisor.EXPECT().
		GetBiddingRecommendations("p1", "bidderA").
		Return(advisor.Recommendation{
			PlacementID: "p1", CurrentBid: 20,
			Suggested:   advisor.SuggestedBids{Conservative: 25, Competitive: 27.5, Aggressive: 32.5},
			Competition: advisor.CompetitionMedium, TimeStrategy: advisor.StrategySteady,
		}, nil)

	w, resp := performJSON(t, router, http.MethodGet, "/placements/p1/recommendations?bidder_id=bidderA", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, "medium", data["competition"])
	suggested := data["suggested"].(map[string]any)
	require.Equal(t, 25.0, suggested["conservative"])
}

// Test GetBidderAnalyticsHandler
func TestGetBidderAnalyticsHandler(t *testing.T) {
	t.Run("success_with_period", func(t *testing.T) {
		_, _, mockAnalytics, router := setupHandlerTest(t)
		mockAnalytics.EXPECT().
			GetBiddingAnalytics("bidderA", 48*time.Hour).
			Return(analytics.BidderReport{BidderID: "bidderA", TotalBids: 4, Wins: 2, WinRate: 0.5}, nil)

		w, resp := performJSON(t, router, http.MethodGet, "/bidders/bidderA/analytics?period=48h", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, 0.5, data["win_rate"])
	})

	t.Run("default_period", func(t *testing.T) {
		_, _, mockAnalytics, router := setupHandlerTest(t)
		mockAnalytics.EXPECT().
			GetBiddingAnalytics("bidderA", 24*time.Hour).
			Return(analytics.BidderReport{BidderID: "bidderA"}, nil)

		w, _ := performJSON(t, router, http.MethodGet, "/bidders/bidderA/analytics", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid_period", func(t *testing.T) {
		_, _, _, router := setupHandlerTest(t)

		w, resp := performJSON(t, router, http.MethodGet, "/bidders/bidderA/analytics?period=tomorrow", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "invalid period", resp["message"])
	})
}
