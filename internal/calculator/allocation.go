package calculator

// categoryAllocations maps a service category to the fraction of the
// total event budget notionally earmarked for it. Fractions are a fixed
// planning heuristic and intentionally sum past 1.0 (users rarely book
// every category).
var categoryAllocations = map[string]float64{
	"venue":       0.25,
	"catering":    0.35,
	"photography": 0.12,
	"decoration":  0.15,
	"music":       0.08,
	"makeup":      0.05,
	"invitations": 0.03,
	"transport":   0.05,
}

// DefaultAllocation applies to categories missing from the table.
const DefaultAllocation = 0.10

// AllocationFor returns the budget fraction for a category.
func AllocationFor(categoryID string) float64 {
	if f, ok := categoryAllocations[categoryID]; ok {
		return f
	}
	return DefaultAllocation
}

// AllocatedBudget returns the rupee amount earmarked for a category out
// of the given total budget.
func AllocatedBudget(categoryID string, totalBudget int64) int64 {
	return int64(AllocationFor(categoryID) * float64(totalBudget))
}
