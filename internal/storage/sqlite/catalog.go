package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/iwantdrugsxd/evea-sub002/internal/models"
	"github.com/iwantdrugsxd/evea-sub002/internal/storage"
)

// String lists (service areas, inclusions, exclusions) are stored as a
// single pipe-joined TEXT column; none of the values contain pipes.
const listSep = "|"

func joinList(vals []string) string {
	return strings.Join(vals, listSep)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSep)
}

// ListCategories returns every service category.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, icon, essential FROM categories ORDER BY essential DESC, name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var cats []models.ServiceCategory
	for rows.Next() {
		var c models.ServiceCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Essential); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return cats, nil
}

const cardColumns = `id, vendor_id, category_id, title, description,
	base_price, avg_rating, total_reviews, service_areas, inclusions, exclusions`

func scanCard(scan func(dest ...any) error) (models.VendorCard, error) {
	var card models.VendorCard
	var areas, incl, excl string
	err := scan(&card.ID, &card.VendorID, &card.CategoryID, &card.Title, &card.Description,
		&card.BasePrice, &card.AvgRating, &card.TotalReviews, &areas, &incl, &excl)
	if err != nil {
		return card, err
	}
	card.ServiceAreas = splitList(areas)
	card.Inclusions = splitList(incl)
	card.Exclusions = splitList(excl)
	return card, nil
}

// ListVendorCards returns the cards for a category, or all cards when
// categoryID is empty.
func (s *SQLiteStore) ListVendorCards(ctx context.Context, categoryID string) ([]models.VendorCard, error) {
	query := "SELECT " + cardColumns + " FROM vendor_cards"
	var args []any
	if categoryID != "" {
		query += " WHERE category_id = ?"
		args = append(args, categoryID)
	}
	query += " ORDER BY avg_rating DESC, total_reviews DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor cards: %w", err)
	}
	defer rows.Close()

	var cards []models.VendorCard
	for rows.Next() {
		card, err := scanCard(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor card: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vendor cards: %w", err)
	}
	return cards, nil
}

// GetVendorCard retrieves one card by id.
func (s *SQLiteStore) GetVendorCard(ctx context.Context, cardID string) (*models.VendorCard, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+cardColumns+" FROM vendor_cards WHERE id = ?", cardID,
	)
	card, err := scanCard(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vendor card %s: %w", cardID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor card: %w", err)
	}
	return &card, nil
}

// GetVendor retrieves a vendor by id.
func (s *SQLiteStore) GetVendor(ctx context.Context, vendorID string) (*models.Vendor, error) {
	var v models.Vendor
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, location, email, phone, verified FROM vendors WHERE id = ?",
		vendorID,
	).Scan(&v.ID, &v.Name, &v.Location, &v.Email, &v.Phone, &v.Verified)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vendor %s: %w", vendorID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return &v, nil
}

// ListReviews returns a card's reviews, newest first.
func (s *SQLiteStore) ListReviews(ctx context.Context, cardID string) ([]models.Review, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, card_id, author, rating, comment, created_at FROM reviews WHERE card_id = ? ORDER BY created_at DESC",
		cardID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.CardID, &r.Author, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}
	return reviews, nil
}
