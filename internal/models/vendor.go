package models

// Vendor is the business identity behind one or more vendor cards.
// Read-only catalog data; the engine never mutates vendors.
type Vendor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Verified bool   `json:"verified"`
}

// VendorCard is a single bookable service offering published by a
// vendor: one card per (vendor, category, package tier). Rating fields
// are aggregates maintained by the review pipeline, denormalized here
// so scoring needs no join.
type VendorCard struct {
	ID         string `json:"id"`
	VendorID   string `json:"vendorId"`
	CategoryID string `json:"categoryId"`
	Title      string `json:"title"`
	Description string `json:"description"`

	// BasePrice is the card's starting price in rupees.
	BasePrice int64 `json:"basePrice"`

	// AvgRating is the mean review rating on a 0-5 scale; 0 means
	// the card has never been rated.
	AvgRating    float64 `json:"avgRating"`
	TotalReviews int     `json:"totalReviews"`

	// ServiceAreas lists the locations this card serves.
	ServiceAreas []string `json:"serviceAreas"`

	Inclusions []string `json:"inclusions"`
	Exclusions []string `json:"exclusions"`
}

// Review is one customer rating backing a card's aggregates.
type Review struct {
	ID        string `json:"id"`
	CardID    string `json:"cardId"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"createdAt"`
}
