package planner

import (
	"github.com/google/uuid"

	"github.com/iwantdrugsxd/evea-sub002/internal/calculator"
	"github.com/iwantdrugsxd/evea-sub002/internal/models"
)

// AddToPackage puts a chosen vendor card into the package. One slot per
// category: an item whose category is already represented replaces the
// existing item instead of stacking. The pricing breakdown is fully
// recomputed afterwards.
func (s *Session) AddToPackage(item models.PackageItem) {
	s.mutate(func() {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		item.TotalPrice = int64(item.Quantity) * item.UnitPrice

		replaced := false
		for i := range s.pkg.Items {
			if s.pkg.Items[i].CategoryID == item.CategoryID {
				s.pkg.Items[i] = item
				replaced = true
				break
			}
		}
		if !replaced {
			s.pkg.Items = append(s.pkg.Items, item)
		}
		s.recalculateLocked()
	})
}

// RemoveFromPackage removes the item with the given id, if present, and
// reprices the package.
func (s *Session) RemoveFromPackage(itemID string) {
	s.mutate(func() {
		for i := range s.pkg.Items {
			if s.pkg.Items[i].ID == itemID {
				s.pkg.Items = append(s.pkg.Items[:i], s.pkg.Items[i+1:]...)
				break
			}
		}
		s.recalculateLocked()
	})
}

// UpdateItemQuantity changes an item's quantity and reprices. Unknown
// ids and non-positive quantities are ignored.
func (s *Session) UpdateItemQuantity(itemID string, quantity int) {
	if quantity < 1 {
		return
	}
	s.mutate(func() {
		for i := range s.pkg.Items {
			if s.pkg.Items[i].ID == itemID {
				s.pkg.Items[i].Quantity = quantity
				s.pkg.Items[i].TotalPrice = int64(quantity) * s.pkg.Items[i].UnitPrice
				s.recalculateLocked()
				return
			}
		}
	})
}

// recalculateLocked re-derives the pricing breakdown from the item
// list. Must be called after every item mutation; partial updates to
// the totals are disallowed.
func (s *Session) recalculateLocked() {
	s.pkg = calculator.CalculatePackage(s.pkg.Items)
}

// recalculated rebuilds a package's totals from its items, used when
// hydrating snapshots so a stored breakdown is never trusted.
func recalculated(pkg models.EventPackage) models.EventPackage {
	return calculator.CalculatePackage(pkg.Items)
}
