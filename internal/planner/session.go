// Package planner implements the event-planning wizard: a session
// aggregate owning the step flow, event data, package cart, filters and
// recommendations, with every mutation going through its methods.
//
// A Session is safe for concurrent use; one mutex serializes access to
// the whole snapshot since operations like package recalculation
// read-then-write the same structure. Persistence is a side effect: on
// every change the session hands a snapshot copy to an optional hook,
// and whatever the hook does (or fails to do) never affects in-memory
// state.
package planner

import (
	"sync"

	"github.com/iwantdrugsxd/evea-sub002/internal/models"
)

// Session is the single mutable aggregate for one planning session.
type Session struct {
	mu sync.Mutex

	steps       []models.WizardStep
	currentStep int

	eventType          *models.EventType
	eventData          models.EventDetails
	selectedCategories []models.ServiceCategory

	pkg             models.EventPackage
	recommendations []models.VendorRecommendation
	filters         models.RecommendationFilters

	loading bool
	errMsg  string

	// onChange receives a snapshot copy after every mutation. Set once
	// before the session is shared; the planner never blocks on it.
	onChange func(Snapshot)
}

// New creates a session in its canonical initial state: step 0 active,
// nothing completed, essential categories pre-selected, empty package,
// default filters.
func New() *Session {
	return &Session{
		steps:              models.DefaultSteps(),
		selectedCategories: models.EssentialCategories(),
		filters:            models.DefaultFilters(),
	}
}

// OnChange registers the persistence hook. Call before the session is
// handed to concurrent users.
func (s *Session) OnChange(fn func(Snapshot)) {
	s.onChange = fn
}

// mutate runs fn under the session lock and then emits a snapshot to
// the persistence hook outside the lock.
func (s *Session) mutate(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	hook := s.onChange
	s.mu.Unlock()

	if hook != nil {
		hook(snap)
	}
}

// ResetEventPlanning restores the entire session to the initial state.
func (s *Session) ResetEventPlanning() {
	s.mutate(func() {
		s.steps = models.DefaultSteps()
		s.currentStep = 0
		s.eventType = nil
		s.eventData = models.EventDetails{}
		s.selectedCategories = models.EssentialCategories()
		s.pkg = models.EventPackage{}
		s.recommendations = nil
		s.filters = models.DefaultFilters()
		s.loading = false
		s.errMsg = ""
	})
}

// ClearEventData blanks the event data, package and recommendations
// while preserving step progress and filters.
func (s *Session) ClearEventData() {
	s.mutate(func() {
		s.eventType = nil
		s.eventData = models.EventDetails{}
		s.selectedCategories = models.EssentialCategories()
		s.pkg = models.EventPackage{}
		s.recommendations = nil
		s.errMsg = ""
	})
}

// SetLoading flips the loading flag read by the UI while
// recommendations are being fetched.
func (s *Session) SetLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// SetError records a transient, non-fatal failure for the UI to
// surface. An empty string clears it.
func (s *Session) SetError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}

// SetRecommendations replaces the current recommendation list. The list
// is ephemeral state and does not trigger a snapshot write.
func (s *Session) SetRecommendations(recs []models.VendorRecommendation) {
	s.mu.Lock()
	s.recommendations = recs
	s.mu.Unlock()
}

// State is a consistent read-only copy of the full session for the API
// layer, including the ephemeral fields a snapshot leaves out.
type State struct {
	CurrentStep        int                           `json:"currentStep"`
	Steps              []models.WizardStep           `json:"steps"`
	EventType          *models.EventType             `json:"eventType"`
	EventData          models.EventDetails           `json:"eventData"`
	SelectedCategories []models.ServiceCategory      `json:"selectedCategories"`
	Package            models.EventPackage           `json:"package"`
	Recommendations    []models.VendorRecommendation `json:"recommendations"`
	Filters            models.RecommendationFilters  `json:"filters"`
	Loading            bool                          `json:"loading"`
	Error              string                        `json:"error,omitempty"`
}

// State returns a copy of the entire session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		CurrentStep:        s.currentStep,
		Steps:              append([]models.WizardStep(nil), s.steps...),
		EventData:          s.eventData,
		SelectedCategories: append([]models.ServiceCategory(nil), s.selectedCategories...),
		Package:            s.pkg,
		Recommendations:    append([]models.VendorRecommendation(nil), s.recommendations...),
		Filters:            s.filters,
		Loading:            s.loading,
		Error:              s.errMsg,
	}
	st.Package.Items = append([]models.PackageItem(nil), s.pkg.Items...)
	if s.eventType != nil {
		et := *s.eventType
		st.EventType = &et
	}
	return st
}

// EventData returns a copy of the current event details.
func (s *Session) EventData() models.EventDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eventData
}

// Filters returns the current recommendation filters.
func (s *Session) Filters() models.RecommendationFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SelectedCategories returns a copy of the chosen service categories.
func (s *Session) SelectedCategories() []models.ServiceCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ServiceCategory(nil), s.selectedCategories...)
}

// Package returns a copy of the current package.
func (s *Session) Package() models.EventPackage {
	s.mu.Lock()
	defer s.mu.Unlock()
	pkg := s.pkg
	pkg.Items = append([]models.PackageItem(nil), s.pkg.Items...)
	return pkg
}

// PackageTotal returns the current package total.
func (s *Session) PackageTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pkg.TotalAmount
}

// Recommendations returns a copy of the current recommendation list.
func (s *Session) Recommendations() []models.VendorRecommendation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.VendorRecommendation(nil), s.recommendations...)
}
