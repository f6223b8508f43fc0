package calculator

import (
	"testing"

	"github.com/iwantdrugsxd/evea-sub002/internal/models"
)

func weddingDetails() models.EventDetails {
	return models.EventDetails{
		Location:   "Mumbai",
		GuestCount: 200,
		Budget:     200000,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		card    models.VendorCard
		details models.EventDetails
		filters models.RecommendationFilters
		want    int
	}{
		{
			name: "perfect candidate hits the 95 ceiling",
			card: models.VendorCard{
				CategoryID:   "photography",
				BasePrice:    24000, // exactly the 12% slice of 200k
				AvgRating:    5.0,
				TotalReviews: 150,
				ServiceAreas: []string{"Mumbai"},
			},
			details: weddingDetails(),
			// 30 rating + 25 price + 20 location + 10 availability + 10 reviews
			want: 95,
		},
		{
			name:    "empty event still scores availability only",
			card:    models.VendorCard{CategoryID: "photography", BasePrice: 24000},
			details: models.EventDetails{},
			want:    10,
		},
		{
			name: "price double the allocation zeroes the price component",
			card: models.VendorCard{
				CategoryID: "photography",
				BasePrice:  48000,
			},
			details: models.EventDetails{Budget: 200000},
			want:    10, // availability only
		},
		{
			name: "price far beyond allocation clamps at zero, not negative",
			card: models.VendorCard{
				CategoryID: "photography",
				BasePrice:  500000,
			},
			details: models.EventDetails{Budget: 200000},
			want:    10,
		},
		{
			name: "substring service area scores the partial tier",
			card: models.VendorCard{
				CategoryID:   "decoration",
				ServiceAreas: []string{"Navi Mumbai"},
			},
			details: models.EventDetails{Location: "Mumbai"},
			want:    25, // 15 location + 10 availability
		},
		{
			name: "location filter overrides event location",
			card: models.VendorCard{
				CategoryID:   "decoration",
				ServiceAreas: []string{"Pune"},
			},
			details: models.EventDetails{Location: "Mumbai"},
			filters: models.RecommendationFilters{Location: "Pune"},
			want:    30, // 20 location + 10 availability
		},
		{
			name: "reviews cap at ten points",
			card: models.VendorCard{
				CategoryID:   "music",
				TotalReviews: 5000,
			},
			want: 20, // 10 reviews + 10 availability
		},
		{
			name: "partial review volume counts fractionally",
			card: models.VendorCard{
				CategoryID:   "music",
				TotalReviews: 25, // 2.5 points, rounds with the rest
			},
			want: 13, // round(2.5 + 10)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.card, tt.details, tt.filters)
			if got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
			if got < 0 {
				t.Errorf("Score() = %d, must never be negative", got)
			}
		})
	}
}

// Exact area match must beat substring match, which must beat no match,
// with every other input held constant.
func TestScoreLocationOrdering(t *testing.T) {
	details := weddingDetails()
	base := models.VendorCard{
		CategoryID:   "photography",
		BasePrice:    24000,
		AvgRating:    4.0,
		TotalReviews: 40,
	}

	exact := base
	exact.ServiceAreas = []string{"Mumbai"}
	partial := base
	partial.ServiceAreas = []string{"Mumbai Suburban"}
	none := base
	none.ServiceAreas = []string{"Delhi"}

	var filters models.RecommendationFilters
	se := Score(exact, details, filters)
	sp := Score(partial, details, filters)
	sn := Score(none, details, filters)

	if !(se > sp) {
		t.Errorf("exact match %d should beat substring match %d", se, sp)
	}
	if !(sp > sn) {
		t.Errorf("substring match %d should beat no match %d", sp, sn)
	}
}

// Each component respects its cap regardless of input extremes.
func TestScoreComponentCaps(t *testing.T) {
	card := models.VendorCard{
		CategoryID:   "photography",
		BasePrice:    24000,
		AvgRating:    5.0,
		TotalReviews: 1000000,
		ServiceAreas: []string{"Mumbai"},
	}
	details := weddingDetails()

	if got := ratingScore(card); got > 30 {
		t.Errorf("rating component = %v, cap is 30", got)
	}
	if got := priceScore(card, details); got > 25 {
		t.Errorf("price component = %v, cap is 25", got)
	}
	if got := locationScore(card, details, models.RecommendationFilters{}); got > 20 {
		t.Errorf("location component = %v, cap is 20", got)
	}
	if got := reviewsScore(card); got > 10 {
		t.Errorf("reviews component = %v, cap is 10", got)
	}
}
