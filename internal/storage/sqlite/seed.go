package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iwantdrugsxd/evea-sub002/internal/models"
)

// Seed populates an empty catalog with the built-in categories and a
// small set of demo vendors/cards/reviews. No-op when categories
// already exist, so it is safe to run on every startup.
func (s *SQLiteStore) Seed(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&n); err != nil {
		return fmt.Errorf("failed to check catalog: %w", err)
	}
	if n > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range models.DefaultCategories() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO categories (id, name, icon, essential) VALUES (?, ?, ?, ?)",
			c.ID, c.Name, c.Icon, c.Essential,
		); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.ID, err)
		}
	}

	for _, v := range seedVendors {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO vendors (id, name, location, email, phone, verified) VALUES (?, ?, ?, ?, ?, ?)",
			v.ID, v.Name, v.Location, v.Email, v.Phone, v.Verified,
		); err != nil {
			return fmt.Errorf("failed to seed vendor %s: %w", v.ID, err)
		}
	}

	for _, c := range seedCards {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO vendor_cards (id, vendor_id, category_id, title, description,
			 base_price, avg_rating, total_reviews, service_areas, inclusions, exclusions)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.VendorID, c.CategoryID, c.Title, c.Description,
			c.BasePrice, c.AvgRating, c.TotalReviews,
			joinList(c.ServiceAreas), joinList(c.Inclusions), joinList(c.Exclusions),
		); err != nil {
			return fmt.Errorf("failed to seed card %s: %w", c.ID, err)
		}
	}

	now := time.Now().Unix()
	for i, r := range seedReviews {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO reviews (id, card_id, author, rating, comment, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			r.ID, r.CardID, r.Author, r.Rating, r.Comment, now-int64(i)*86400,
		); err != nil {
			return fmt.Errorf("failed to seed review %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

var seedVendors = []models.Vendor{
	{ID: "v-lenslight", Name: "Lens & Light Studios", Location: "Mumbai", Email: "hello@lenslight.in", Phone: "+91 98100 11111", Verified: true},
	{ID: "v-shuttersaga", Name: "Shutter Saga", Location: "Pune", Email: "book@shuttersaga.in", Phone: "+91 98100 22222", Verified: false},
	{ID: "v-royalfeast", Name: "Royal Feast Caterers", Location: "Mumbai", Email: "orders@royalfeast.in", Phone: "+91 98100 33333", Verified: true},
	{ID: "v-bloomdecor", Name: "Bloom Decor Co", Location: "Navi Mumbai", Email: "events@bloomdecor.in", Phone: "+91 98100 44444", Verified: true},
	{ID: "v-grandpalms", Name: "Grand Palms Banquets", Location: "Mumbai", Email: "venue@grandpalms.in", Phone: "+91 98100 55555", Verified: true},
	{ID: "v-beatbox", Name: "BeatBox Entertainment", Location: "Thane", Email: "gigs@beatbox.in", Phone: "+91 98100 66666", Verified: false},
}

var seedCards = []models.VendorCard{
	{
		ID: "c-photo-premium", VendorID: "v-lenslight", CategoryID: "photography",
		Title: "Premium Wedding Photography", Description: "Two photographers, full-day coverage, edited album.",
		BasePrice: 25000, AvgRating: 4.8, TotalReviews: 124,
		ServiceAreas: []string{"Mumbai", "Navi Mumbai", "Thane"},
		Inclusions:   []string{"2 photographers", "500 edited photos", "Premium album"},
		Exclusions:   []string{"Drone coverage", "Same-day edit"},
	},
	{
		ID: "c-photo-classic", VendorID: "v-shuttersaga", CategoryID: "photography",
		Title: "Classic Event Photography", Description: "Single photographer, half-day coverage.",
		BasePrice: 12000, AvgRating: 4.2, TotalReviews: 38,
		ServiceAreas: []string{"Pune", "Mumbai"},
		Inclusions:   []string{"1 photographer", "200 edited photos"},
		Exclusions:   []string{"Album printing"},
	},
	{
		ID: "c-catering-royal", VendorID: "v-royalfeast", CategoryID: "catering",
		Title: "Royal Multi-Cuisine Buffet", Description: "Per-plate buffet with live counters.",
		BasePrice: 70000, AvgRating: 4.6, TotalReviews: 210,
		ServiceAreas: []string{"Mumbai", "Navi Mumbai"},
		Inclusions:   []string{"Veg & non-veg menus", "Live counters", "Service staff"},
		Exclusions:   []string{"Alcohol"},
	},
	{
		ID: "c-decor-bloom", VendorID: "v-bloomdecor", CategoryID: "decoration",
		Title: "Floral Theme Decoration", Description: "Stage, entrance and table styling with fresh flowers.",
		BasePrice: 30000, AvgRating: 4.5, TotalReviews: 86,
		ServiceAreas: []string{"Navi Mumbai", "Mumbai"},
		Inclusions:   []string{"Stage decor", "Entrance arch", "Table centerpieces"},
	},
	{
		ID: "c-venue-palms", VendorID: "v-grandpalms", CategoryID: "venue",
		Title: "Grand Palms Banquet Hall", Description: "Air-conditioned hall for up to 400 guests.",
		BasePrice: 50000, AvgRating: 4.3, TotalReviews: 152,
		ServiceAreas: []string{"Mumbai"},
		Inclusions:   []string{"Hall for 8 hours", "Basic lighting", "Parking"},
		Exclusions:   []string{"Catering", "Decoration"},
	},
	{
		ID: "c-music-beatbox", VendorID: "v-beatbox", CategoryID: "music",
		Title: "DJ & Sound Package", Description: "DJ, sound rig and dance floor lighting.",
		BasePrice: 16000, AvgRating: 4.0, TotalReviews: 27,
		ServiceAreas: []string{"Thane", "Mumbai"},
		Inclusions:   []string{"4-hour DJ set", "Sound system", "Lighting"},
	},
}

var seedReviews = []models.Review{
	{ID: "r-1", CardID: "c-photo-premium", Author: "Priya S", Rating: 5, Comment: "Stunning album, very professional team."},
	{ID: "r-2", CardID: "c-photo-premium", Author: "Rohan M", Rating: 5, Comment: "Captured every moment of the wedding."},
	{ID: "r-3", CardID: "c-photo-classic", Author: "Anita K", Rating: 4, Comment: "Good value for a small event."},
	{ID: "r-4", CardID: "c-catering-royal", Author: "Vikram D", Rating: 5, Comment: "Guests loved the live counters."},
	{ID: "r-5", CardID: "c-decor-bloom", Author: "Sneha P", Rating: 4, Comment: "Beautiful stage setup."},
	{ID: "r-6", CardID: "c-venue-palms", Author: "Arjun T", Rating: 4, Comment: "Spacious hall, easy parking."},
}
