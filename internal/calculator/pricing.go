// Package calculator holds the pure computation at the heart of the
// planning engine: package pricing, budget allocation, and vendor match
// scoring. Nothing here touches storage or session state.
package calculator

import "github.com/iwantdrugsxd/evea-sub002/internal/models"

// Pricing policy, in percent of the package subtotal. Savings is a flat
// package-deal heuristic, not derived from actual a-la-carte prices;
// replace the constant when real comparison pricing lands.
const (
	PlatformFeePercent = 10
	TaxPercent         = 18
	SavingsPercent     = 15
)

// CalculatePackage derives the full pricing breakdown from the given
// items. Totals are always recomputed from scratch; callers must not
// patch individual fields after item mutations.
//
// All amounts are int64 rupees, so percent-of-subtotal values floor
// exactly via integer division.
func CalculatePackage(items []models.PackageItem) models.EventPackage {
	var subtotal int64
	for _, item := range items {
		subtotal += item.TotalPrice
	}

	fee := subtotal * PlatformFeePercent / 100
	tax := subtotal * TaxPercent / 100
	savings := subtotal * SavingsPercent / 100

	return models.EventPackage{
		Items:            items,
		Subtotal:         subtotal,
		PlatformFee:      fee,
		TaxAmount:        tax,
		TotalAmount:      subtotal + fee + tax,
		Savings:          savings,
		EstimatedSavings: savings,
	}
}
