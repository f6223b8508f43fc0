package planner

import "github.com/iwantdrugsxd/evea-sub002/internal/models"

// MinBudget is the smallest budget (rupees) the wizard accepts.
const MinBudget = 1000

// ValidateEventDetails checks the details the wizard collected and
// returns human-readable problems, empty when valid. Pure check with no
// side effects: it never blocks a mutation, callers decide whether an
// incomplete form stops the details step from completing.
func ValidateEventDetails(d models.EventDetails) []string {
	var errs []string
	if d.Date == "" {
		errs = append(errs, "event date is required")
	}
	if d.Time == "" {
		errs = append(errs, "event time is required")
	}
	if d.Location == "" {
		errs = append(errs, "location is required")
	}
	if d.Address == "" {
		errs = append(errs, "address is required")
	}
	if d.GuestCount < 1 {
		errs = append(errs, "guest count must be at least 1")
	}
	if d.Budget < MinBudget {
		errs = append(errs, "budget must be at least ₹1,000")
	}
	if d.Duration < 1 {
		errs = append(errs, "duration must be at least 1 hour")
	}
	return errs
}
