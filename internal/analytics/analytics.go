package analytics

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"placement-auction/internal/auctionerrors"
	"placement-auction/internal/models"
	"placement-auction/internal/repository"
)

// Filters narrows the active-placement listing; empty fields match all
type Filters struct {
	Category string
	Type     models.PlacementType
}

// CategoryCount pairs a category with how many bids the bidder placed in it
type CategoryCount struct {
	Category string `json:"category"`
	Bids     int    `json:"bids"`
}

// BidderReport aggregates a bidder's history over a trailing window
type BidderReport struct {
	BidderID          string          `json:"bidder_id"`
	WindowStart       time.Time       `json:"window_start"`
	TotalBids         int             `json:"total_bids"`
	Wins              int             `json:"wins"`
	Losses            int             `json:"losses"`
	Expired           int             `json:"expired"`
	WinRate           float64         `json:"win_rate"`
	TotalSpend        float64         `json:"total_spend"`
	AverageWinningBid float64         `json:"average_winning_bid"`
	TopCategories     []CategoryCount `json:"top_categories"`
	BidsByHour        map[int]int     `json:"bids_by_hour"`
}

// Aggregator derives read-only analytics from placement snapshots and
// the append-only bid history. No side effects.
type Aggregator struct {
	repo repository.PlacementStore
	now  func() time.Time
}

// NewAggregator creates a new Aggregator instance
func NewAggregator(repo repository.PlacementStore) *Aggregator {
	return &Aggregator{repo: repo, now: time.Now}
}

// GetActivePlacements returns a snapshot of active placements matching
// the filters
func (g *Aggregator) GetActivePlacements(f Filters) ([]models.Placement, error) {
	placements, err := g.repo.ListPlacements()
	if err != nil {
		return nil, fmt.Errorf("analytics: failed to list placements: %w", err)
	}

	out := make([]models.Placement, 0, len(placements))
	for _, p := range placements {
		if p.Status != models.PlacementActive {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ExpiresAt.Before(out[j].ExpiresAt) })
	return out, nil
}

// GetBiddingAnalytics aggregates the bidder's history over the trailing
// period into win rate, spend, and behavioral summaries. A bidder with
// no history gets a zero-valued report, not an error.
func (g *Aggregator) GetBiddingAnalytics(bidderID string, period time.Duration) (BidderReport, error) {
	if bidderID == "" {
		return BidderReport{}, fmt.Errorf("analytics: %w - empty bidder ID", auctionerrors.ErrInvalidBid)
	}
	if period <= 0 {
		period = 24 * time.Hour
	}

	since := g.now().UTC().Add(-period)
	report := BidderReport{
		BidderID:    bidderID,
		WindowStart: since,
		BidsByHour:  make(map[int]int),
	}

	records, err := g.repo.HistoryForBidder(bidderID, since)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoHistory) {
			return report, nil
		}
		return BidderReport{}, fmt.Errorf("analytics: failed to load history for %s: %w", bidderID, err)
	}

	byCategory := make(map[string]int)
	for _, rec := range records {
		switch rec.Action {
		case models.ActionSubmitted:
			report.TotalBids++
			report.BidsByHour[rec.RecordedAt.UTC().Hour()]++
			byCategory[rec.Category]++
		case models.ActionWon:
			report.Wins++
			report.TotalSpend += rec.Amount
		case models.ActionLost:
			report.Losses++
		case models.ActionExpired:
			report.Expired++
		}
	}

	if report.TotalBids > 0 {
		report.WinRate = round2(float64(report.Wins) / float64(report.TotalBids))
	}
	if report.Wins > 0 {
		report.AverageWinningBid = round2(report.TotalSpend / float64(report.Wins))
	}

	report.TopCategories = make([]CategoryCount, 0, len(byCategory))
	for cat, n := range byCategory {
		report.TopCategories = append(report.TopCategories, CategoryCount{Category: cat, Bids: n})
	}
	sort.Slice(report.TopCategories, func(i, j int) bool {
		if report.TopCategories[i].Bids != report.TopCategories[j].Bids {
			return report.TopCategories[i].Bids > report.TopCategories[j].Bids
		}
		return report.TopCategories[i].Category < report.TopCategories[j].Category
	})

	return report, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
