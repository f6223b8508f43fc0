package planner

import (
	"encoding/json"

	"github.com/iwantdrugsxd/evea-sub002/internal/models"
)

// Snapshot is the persisted subset of a session: enough to resume the
// wizard after a reload. Recommendations, the loading flag and the
// error message are cheap to regenerate and deliberately excluded.
type Snapshot struct {
	CurrentStep        int                          `json:"currentStep"`
	Steps              []models.WizardStep          `json:"steps"`
	EventType          *models.EventType            `json:"eventType,omitempty"`
	EventData          models.EventDetails          `json:"eventData"`
	SelectedCategories []models.ServiceCategory     `json:"selectedCategories"`
	Package            models.EventPackage          `json:"package"`
	Filters            models.RecommendationFilters `json:"filters"`
}

// snapshotLocked copies the persisted subset. Caller holds s.mu.
func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		CurrentStep:        s.currentStep,
		Steps:              append([]models.WizardStep(nil), s.steps...),
		EventData:          s.eventData,
		SelectedCategories: append([]models.ServiceCategory(nil), s.selectedCategories...),
		Package:            s.pkg,
		Filters:            s.filters,
	}
	snap.Package.Items = append([]models.PackageItem(nil), s.pkg.Items...)
	if s.eventType != nil {
		et := *s.eventType
		snap.EventType = &et
	}
	return snap
}

// Snapshot returns the current persisted subset.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// FromSnapshot builds a session from a stored snapshot. An empty or
// structurally unusable snapshot yields a fresh default session; a
// malformed blob must never leak inconsistent state into memory.
func FromSnapshot(snap Snapshot) *Session {
	if len(snap.Steps) == 0 || snap.CurrentStep < 0 || snap.CurrentStep >= len(snap.Steps) {
		return New()
	}

	s := New()
	s.steps = snap.Steps
	s.currentStep = snap.CurrentStep
	s.eventType = snap.EventType
	s.eventData = snap.EventData
	if snap.SelectedCategories != nil {
		s.selectedCategories = snap.SelectedCategories
	}
	s.filters = snap.Filters
	// Re-derive totals rather than trusting the stored breakdown.
	s.pkg = recalculated(snap.Package)
	s.setCurrentStepLocked(snap.CurrentStep)
	return s
}

// FromJSON decodes a stored snapshot payload, falling back to a default
// session on any decode failure.
func FromJSON(data []byte) *Session {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return New()
	}
	return FromSnapshot(snap)
}

// Marshal encodes a snapshot into the canonical wire form used by the
// snapshot store; FromJSON is its inverse.
func Marshal(snap Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}
