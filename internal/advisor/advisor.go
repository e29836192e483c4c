package advisor

import (
	"fmt"
	"math"
	"time"

	"placement-auction/internal/auctionerrors"
	"placement-auction/internal/models"
	"placement-auction/internal/repository"
)

// Competition levels derived from bid arrival rate
const (
	CompetitionHigh   = "high"
	CompetitionMedium = "medium"
	CompetitionLow    = "low"
)

// Time strategies derived from the elapsed fraction of the auction window
const (
	StrategyEarly      = "early"
	StrategySteady     = "steady"
	StrategyFinalPush  = "final-push"
	StrategyLastChance = "last-chance"
)

// recentBidWindow is how many trailing bids feed the average increment
const recentBidWindow = 10

// SuggestedBids holds the three suggested bid amounts
type SuggestedBids struct {
	Conservative float64 `json:"conservative"`
	Competitive  float64 `json:"competitive"`
	Aggressive   float64 `json:"aggressive"`
}

// Projection is an illustrative traffic/ROI estimate for the placement.
// The numbers are heuristic, not a pricing contract.
type Projection struct {
	EstimatedImpressions int     `json:"estimated_impressions"`
	EstimatedClicks      int     `json:"estimated_clicks"`
	ProjectedROI         float64 `json:"projected_roi"`
	Confidence           string  `json:"confidence"`
}

// Recommendation is the advisor's read-only analysis for one bidder
type Recommendation struct {
	PlacementID      string        `json:"placement_id"`
	CurrentBid       float64       `json:"current_bid"`
	MinBid           float64       `json:"min_bid"`
	AverageIncrement float64       `json:"average_increment"`
	Suggested        SuggestedBids `json:"suggested"`
	Competition      string        `json:"competition"`
	TimeStrategy     string        `json:"time_strategy"`
	TimeLeft         time.Duration `json:"time_left"`
	IsWinning        bool          `json:"is_winning"`
	Projection       Projection    `json:"projection"`
}

// Advisor produces bidding recommendations from ledger history.
// It never mutates auction state.
type Advisor struct {
	repo repository.PlacementStore
	now  func() time.Time
}

// NewAdvisor creates a new Advisor instance
func NewAdvisor(repo repository.PlacementStore) *Advisor {
	return &Advisor{repo: repo, now: time.Now}
}

// GetBiddingRecommendations analyzes the placement's ledger and returns
// suggested bid amounts plus competition and timing context for bidderID
func (a *Advisor) GetBiddingRecommendations(placementID, bidderID string) (Recommendation, error) {
	if placementID == "" {
		return Recommendation{}, fmt.Errorf("advisor: %w - empty placement ID", auctionerrors.ErrInvalidPlacement)
	}

	p, err := a.repo.GetPlacement(placementID)
	if err != nil {
		return Recommendation{}, fmt.Errorf("advisor: failed to analyze placement %s: %w", placementID, err)
	}

	now := a.now().UTC()
	increment := averageIncrement(p)
	elapsed := now.Sub(p.StartedAt)

	rec := Recommendation{
		PlacementID:      p.PlacementID,
		CurrentBid:       p.CurrentBid,
		MinBid:           p.MinBid,
		AverageIncrement: increment,
		Suggested: SuggestedBids{
			Conservative: round2(p.CurrentBid + increment),
			Competitive:  round2(p.CurrentBid + 1.5*increment),
			Aggressive:   round2(p.CurrentBid + 2.5*increment),
		},
		Competition:  classifyCompetition(p.BidCount, elapsed),
		TimeStrategy: classifyTimeStrategy(elapsed, p.ExpiresAt.Sub(p.StartedAt)),
	}
	if left := p.ExpiresAt.Sub(now); left > 0 {
		rec.TimeLeft = left
	}
	if w := p.WinningBid(); w != nil && w.BidderID == bidderID {
		rec.IsWinning = true
	}
	rec.Projection = project(p.Type, rec.Competition, rec.Suggested.Competitive)

	return rec, nil
}

// averageIncrement computes the mean price step over the last bids.
// A placement with no bids falls back to 10% of the current bid.
func averageIncrement(p models.Placement) float64 {
	amounts := make([]float64, 0, len(p.Bids)+1)
	amounts = append(amounts, p.MinBid)
	for _, b := range p.Bids {
		amounts = append(amounts, b.Amount)
	}
	if len(amounts) > recentBidWindow+1 {
		amounts = amounts[len(amounts)-recentBidWindow-1:]
	}

	var total float64
	steps := 0
	for i := 1; i < len(amounts); i++ {
		if d := amounts[i] - amounts[i-1]; d > 0 {
			total += d
			steps++
		}
	}
	if steps == 0 {
		return math.Max(1, round2(p.CurrentBid*0.10))
	}
	return round2(total / float64(steps))
}

// classifyCompetition buckets the bid arrival rate into pressure levels
func classifyCompetition(bidCount int, elapsed time.Duration) string {
	minutes := elapsed.Minutes()
	if minutes < 1 {
		minutes = 1
	}
	perMinute := float64(bidCount) / minutes
	switch {
	case perMinute > 2:
		return CompetitionHigh
	case perMinute > 0.5:
		return CompetitionMedium
	default:
		return CompetitionLow
	}
}

// classifyTimeStrategy buckets the elapsed fraction of the auction window
func classifyTimeStrategy(elapsed, window time.Duration) string {
	if window <= 0 {
		return StrategyLastChance
	}
	frac := elapsed.Seconds() / window.Seconds()
	switch {
	case frac < 0.3:
		return StrategyEarly
	case frac < 0.7:
		return StrategySteady
	case frac < 0.9:
		return StrategyFinalPush
	default:
		return StrategyLastChance
	}
}

// project builds the illustrative traffic estimate for a placement type
func project(t models.PlacementType, competition string, competitiveBid float64) Projection {
	var impressions int
	var ctr float64
	switch t {
	case models.PlacementFeaturedListing:
		impressions, ctr = 12000, 0.020
	case models.PlacementCategoryTop:
		impressions, ctr = 8000, 0.030
	case models.PlacementSearchPriority:
		impressions, ctr = 5000, 0.045
	default:
		impressions, ctr = 4000, 0.015
	}

	clicks := int(float64(impressions) * ctr)
	const valuePerClick = 1.5

	proj := Projection{
		EstimatedImpressions: impressions,
		EstimatedClicks:      clicks,
	}
	if competitiveBid > 0 {
		proj.ProjectedROI = round2(float64(clicks) * valuePerClick / competitiveBid)
	}
	switch competition {
	case CompetitionHigh:
		proj.Confidence = "low"
	case CompetitionMedium:
		proj.Confidence = "medium"
	default:
		proj.Confidence = "high"
	}
	return proj
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
