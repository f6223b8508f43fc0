package planner

// Step flow: one step is active at a time, completion is monotonic.
// The controller does not gate advancement on completion; the caller
// (the wizard's Continue button) completes a step before moving on.

// SetCurrentStep activates the step at index i, deactivating all
// others. It is the unguarded primitive: callers are expected to pass a
// valid index. Use GoToStep for a bounds-checked jump.
func (s *Session) SetCurrentStep(i int) {
	s.mutate(func() { s.setCurrentStepLocked(i) })
}

func (s *Session) setCurrentStepLocked(i int) {
	s.currentStep = i
	for j := range s.steps {
		s.steps[j].IsActive = j == i
	}
}

// NextStep advances by one, clamped at the last step.
func (s *Session) NextStep() {
	s.mutate(func() {
		if s.currentStep < len(s.steps)-1 {
			s.setCurrentStepLocked(s.currentStep + 1)
		}
	})
}

// PreviousStep moves back by one, clamped at the first step.
func (s *Session) PreviousStep() {
	s.mutate(func() {
		if s.currentStep > 0 {
			s.setCurrentStepLocked(s.currentStep - 1)
		}
	})
}

// GoToStep jumps to step i; out-of-range requests are silently ignored.
func (s *Session) GoToStep(i int) {
	s.mutate(func() {
		if i >= 0 && i < len(s.steps) {
			s.setCurrentStepLocked(i)
		}
	})
}

// CompleteStep marks the step with the given id completed. Unknown ids
// are ignored; there is no operation to un-complete a step.
func (s *Session) CompleteStep(id string) {
	s.mutate(func() {
		for i := range s.steps {
			if s.steps[i].ID == id {
				s.steps[i].IsCompleted = true
				return
			}
		}
	})
}

// CurrentStep returns the active step index.
func (s *Session) CurrentStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStep
}

// IsStepCompleted reports whether the step with the given id has been
// completed.
func (s *Session) IsStepCompleted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.steps {
		if st.ID == id {
			return st.IsCompleted
		}
	}
	return false
}

// CanProceed reports whether the wizard may advance: the active step is
// completed and a next step exists.
func (s *Session) CanProceed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStep < len(s.steps)-1 && s.steps[s.currentStep].IsCompleted
}
