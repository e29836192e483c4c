package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"placement-auction/internal/advisor"
	"placement-auction/internal/analytics"
	auction "placement-auction/internal/auctionService"
	"placement-auction/internal/repository"
	"placement-auction/internal/server"
	"placement-auction/internal/settlement"

	"github.com/gin-gonic/gin"
)

// TestStack bundles the fully wired engine for end-to-end tests
type TestStack struct {
	Router   *gin.Engine
	Repo     *repository.MemoryRepo
	Provider *settlement.MemoryProvider
	Engine   *auction.AuctionService
}

// SetupTestStack wires the engine against the in-memory settlement
// provider, mirroring main's composition
func SetupTestStack(t *testing.T, antiSnipe, holdTTL time.Duration, budgets map[string]float64) *TestStack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	provider := settlement.NewMemoryProvider(holdTTL)
	for bidder, budget := range budgets {
		provider.SetBudget(bidder, budget)
	}

	engine := auction.NewAuctionService(repo, provider, antiSnipe, holdTTL)
	adv := advisor.NewAdvisor(repo)
	agg := analytics.NewAggregator(repo)

	return &TestStack{
		Router:   server.SetupRouter(engine, adv, agg),
		Repo:     repo,
		Provider: provider,
		Engine:   engine,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the stack's router
// and parses the JSON envelope
func (s *TestStack) ExecuteRequestAndParse(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Data extracts the data payload from a response envelope
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}
