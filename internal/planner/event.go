package planner

import "github.com/iwantdrugsxd/evea-sub002/internal/models"

// SetEventType selects the event type and resets budget, guest count
// and duration to the type's defaults. Carrying a wedding budget into a
// birthday party produces nonsense, so switching types always reseeds
// those three fields; everything else the user entered survives.
func (s *Session) SetEventType(et models.EventType) {
	s.mutate(func() {
		cp := et
		s.eventType = &cp
		s.eventData.Budget = et.DefaultBudget
		s.eventData.GuestCount = et.DefaultGuests
		s.eventData.Duration = et.DefaultDuration
	})
}

// UpdateEventData shallow-merges the patch into the event details. No
// validation happens here; call ValidateEventDetails separately before
// completing the details step.
func (s *Session) UpdateEventData(patch models.EventDetailsPatch) {
	s.mutate(func() {
		patch.Apply(&s.eventData)
	})
}

// SelectCategory adds a service category to the event. Selecting an
// already-selected category is a no-op.
func (s *Session) SelectCategory(cat models.ServiceCategory) {
	s.mutate(func() {
		for _, c := range s.selectedCategories {
			if c.ID == cat.ID {
				return
			}
		}
		s.selectedCategories = append(s.selectedCategories, cat)
	})
}

// DeselectCategory removes a category from the event. Essential
// categories can be removed too, but only through this explicit call.
func (s *Session) DeselectCategory(categoryID string) {
	s.mutate(func() {
		for i, c := range s.selectedCategories {
			if c.ID == categoryID {
				s.selectedCategories = append(s.selectedCategories[:i], s.selectedCategories[i+1:]...)
				return
			}
		}
	})
}
