package models

// PackageItem is one chosen vendor card in the user's package, bound to
// a service category.
//
// Uniqueness invariant: at most one item per CategoryID. Adding a card
// for an already-represented category replaces the existing item; the
// planner enforces this, the struct just carries the data.
type PackageItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	CategoryID string `json:"categoryId"`
	CardID     string `json:"cardId"`
	VendorID   string `json:"vendorId"`

	// VendorName and Title are denormalized for display, so the cart
	// renders without re-fetching catalog rows.
	VendorName string `json:"vendorName"`
	Title      string `json:"title"`

	// UnitPrice is the card's price in rupees at the time it was added.
	UnitPrice int64 `json:"unitPrice"`

	Quantity int `json:"quantity"`

	// TotalPrice is Quantity x UnitPrice, maintained by the planner.
	TotalPrice int64 `json:"totalPrice"`
}

// EventPackage is the current cart: chosen items plus the derived
// pricing breakdown.
//
// Every total here is fully re-derived from Items by the calculator
// whenever the item list changes. Incremental patching of the totals is
// not allowed; it drifts.
type EventPackage struct {
	Items []PackageItem `json:"items"`

	// Subtotal is the sum of item TotalPrice values.
	Subtotal int64 `json:"subtotal"`

	// PlatformFee is the marketplace surcharge on the subtotal.
	PlatformFee int64 `json:"platformFee"`

	// TaxAmount is GST on the subtotal.
	TaxAmount int64 `json:"taxAmount"`

	// TotalAmount = Subtotal + PlatformFee + TaxAmount.
	TotalAmount int64 `json:"totalAmount"`

	// Savings and EstimatedSavings both hold the package-deal savings
	// heuristic. They are computed identically today; kept as two
	// fields so "realized" and "estimated" savings can diverge later
	// without a schema change.
	Savings          int64 `json:"savings"`
	EstimatedSavings int64 `json:"estimatedSavings"`
}

// VendorRecommendation pairs a vendor card with its computed match
// score for the current event. Ephemeral: regenerated on demand and
// excluded from session snapshots.
type VendorRecommendation struct {
	Card   VendorCard `json:"card"`
	Vendor Vendor     `json:"vendor"`
	Score  int        `json:"score"`
}
