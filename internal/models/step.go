package models

// WizardStep is one ordered step of the planning wizard. Exactly one
// step is active at a time; completion is monotonic (no defined
// operation reverts IsCompleted to false).
type WizardStep struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	IsCompleted bool   `json:"isCompleted"`
	IsActive    bool   `json:"isActive"`
}

// Step ids, in wizard order.
const (
	StepEventType    = "event-type"
	StepEventDetails = "event-details"
	StepServices     = "services"
	StepVendors      = "vendors"
	StepReview       = "review"
)

// DefaultSteps returns the wizard's step list in its initial state:
// step 0 active, nothing completed.
func DefaultSteps() []WizardStep {
	return []WizardStep{
		{ID: StepEventType, Label: "Event Type", IsActive: true},
		{ID: StepEventDetails, Label: "Event Details"},
		{ID: StepServices, Label: "Services"},
		{ID: StepVendors, Label: "Vendors"},
		{ID: StepReview, Label: "Review & Book"},
	}
}
