package calculator

import (
	"math"
	"strings"

	"github.com/iwantdrugsxd/evea-sub002/internal/models"
)

// Sub-score weights. Components sum to a nominal "out of 100" score,
// though the actual ceiling is 95; the total is never normalized or
// clamped upward.
const (
	ratingWeight    = 30.0
	priceWeight     = 25.0
	locationExact   = 20.0
	locationPartial = 15.0
	reviewsWeight   = 10.0

	// AvailabilityScore is a flat award pending real calendar data.
	AvailabilityScore = 10.0

	maxRating       = 5.0
	reviewsPerPoint = 10
)

// Score computes the match score for a candidate card against the
// user's event and filters. Bounded below by 0; a half-filled event
// (zero budget, empty location) degrades sub-scores to 0 rather than
// erroring.
func Score(card models.VendorCard, details models.EventDetails, filters models.RecommendationFilters) int {
	total := ratingScore(card) +
		priceScore(card, details) +
		locationScore(card, details, filters) +
		AvailabilityScore +
		reviewsScore(card)

	score := int(math.Round(total))
	if score < 0 {
		return 0
	}
	return score
}

// ratingScore scales the 0-5 average rating onto 0-30. Unrated cards
// contribute nothing.
func ratingScore(card models.VendorCard) float64 {
	if card.AvgRating <= 0 {
		return 0
	}
	return card.AvgRating / maxRating * ratingWeight
}

// priceScore compares the card's price to the budget slice allocated to
// its category: an exact match earns the full 25, and the score decays
// linearly to 0 at 100% deviation. Zero allocation (no budget set yet)
// contributes 0 instead of dividing by zero.
func priceScore(card models.VendorCard, details models.EventDetails) float64 {
	allocated := float64(AllocatedBudget(card.CategoryID, details.Budget))
	if allocated <= 0 {
		return 0
	}
	deviation := math.Abs(float64(card.BasePrice)-allocated) / allocated
	return math.Max(0, priceWeight-deviation*priceWeight)
}

// locationScore awards 20 for an exact service-area match, 15 for a
// case-insensitive substring match, 0 otherwise. A location filter, when
// set, takes precedence over the event's location.
func locationScore(card models.VendorCard, details models.EventDetails, filters models.RecommendationFilters) float64 {
	target := details.Location
	if filters.Location != "" {
		target = filters.Location
	}
	if target == "" {
		return 0
	}

	lowered := strings.ToLower(target)
	partial := false
	for _, area := range card.ServiceAreas {
		if area == target {
			return locationExact
		}
		la := strings.ToLower(area)
		if strings.Contains(la, lowered) || strings.Contains(lowered, la) {
			partial = true
		}
	}
	if partial {
		return locationPartial
	}
	return 0
}

// reviewsScore awards one point per 10 reviews, capped at 10.
func reviewsScore(card models.VendorCard) float64 {
	return math.Min(reviewsWeight, float64(card.TotalReviews)/reviewsPerPoint)
}
