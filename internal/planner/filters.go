package planner

import "github.com/iwantdrugsxd/evea-sub002/internal/models"

// SetFilters shallow-merges the patch into the current filters. Filters
// feed the recommendation scorer only; the package calculator never
// reads them.
func (s *Session) SetFilters(patch models.FiltersPatch) {
	s.mutate(func() {
		patch.Apply(&s.filters)
	})
}

// ResetFilters restores the fixed default baseline.
func (s *Session) ResetFilters() {
	s.mutate(func() {
		s.filters = models.DefaultFilters()
	})
}
