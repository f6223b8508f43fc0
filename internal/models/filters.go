package models

// RecommendationFilters are the user-adjustable knobs read by the
// recommendation scorer. Zero values mean "no constraint".
type RecommendationFilters struct {
	// PriceMin/PriceMax bound candidate card prices in rupees.
	// PriceMax == 0 disables the upper bound.
	PriceMin int64 `json:"priceMin"`
	PriceMax int64 `json:"priceMax"`

	// Location overrides the event location for matching when set.
	Location string `json:"location"`

	// MinRating drops cards rated below this floor (0-5 scale).
	MinRating float64 `json:"minRating"`

	// VerifiedOnly restricts candidates to verified vendors.
	VerifiedOnly bool `json:"verifiedOnly"`
}

// FiltersPatch is a partial update to RecommendationFilters; nil fields
// are left untouched (shallow merge, same contract as EventDetailsPatch).
type FiltersPatch struct {
	PriceMin     *int64   `json:"priceMin,omitempty"`
	PriceMax     *int64   `json:"priceMax,omitempty"`
	Location     *string  `json:"location,omitempty"`
	MinRating    *float64 `json:"minRating,omitempty"`
	VerifiedOnly *bool    `json:"verifiedOnly,omitempty"`
}

// Apply merges the patch into f.
func (p FiltersPatch) Apply(f *RecommendationFilters) {
	if p.PriceMin != nil {
		f.PriceMin = *p.PriceMin
	}
	if p.PriceMax != nil {
		f.PriceMax = *p.PriceMax
	}
	if p.Location != nil {
		f.Location = *p.Location
	}
	if p.MinRating != nil {
		f.MinRating = *p.MinRating
	}
	if p.VerifiedOnly != nil {
		f.VerifiedOnly = *p.VerifiedOnly
	}
}

// DefaultFilters is the fixed baseline restored by ResetFilters.
func DefaultFilters() RecommendationFilters {
	return RecommendationFilters{}
}
