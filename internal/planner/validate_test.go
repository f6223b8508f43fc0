package planner

import (
	"testing"

	"github.com/iwantdrugsxd/evea-sub002/internal/models"
)

func validDetails() models.EventDetails {
	return models.EventDetails{
		Date:       "2026-11-20",
		Time:       "18:00",
		Duration:   6,
		Location:   "Mumbai",
		Address:    "Grand Ballroom, Marine Drive",
		GuestCount: 150,
		Budget:     200000,
	}
}

func TestValidateEventDetails(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.EventDetails)
		wantErrs int
	}{
		{
			name:     "fully populated details pass",
			mutate:   func(d *models.EventDetails) {},
			wantErrs: 0,
		},
		{
			name:     "zero guests",
			mutate:   func(d *models.EventDetails) { d.GuestCount = 0 },
			wantErrs: 1,
		},
		{
			name:     "budget below the floor",
			mutate:   func(d *models.EventDetails) { d.Budget = 500 },
			wantErrs: 1,
		},
		{
			name:     "missing date",
			mutate:   func(d *models.EventDetails) { d.Date = "" },
			wantErrs: 1,
		},
		{
			name:     "missing time",
			mutate:   func(d *models.EventDetails) { d.Time = "" },
			wantErrs: 1,
		},
		{
			name:     "missing location and address accumulate",
			mutate:   func(d *models.EventDetails) { d.Location = ""; d.Address = "" },
			wantErrs: 2,
		},
		{
			name:     "zero duration",
			mutate:   func(d *models.EventDetails) { d.Duration = 0 },
			wantErrs: 1,
		},
		{
			name:     "empty details accumulate every error",
			mutate:   func(d *models.EventDetails) { *d = models.EventDetails{} },
			wantErrs: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)
			errs := ValidateEventDetails(d)
			if len(errs) != tt.wantErrs {
				t.Errorf("got %d errors %v, want %d", len(errs), errs, tt.wantErrs)
			}
		})
	}
}

func TestValidateBudgetBoundary(t *testing.T) {
	d := validDetails()
	d.Budget = MinBudget
	if errs := ValidateEventDetails(d); len(errs) != 0 {
		t.Errorf("budget exactly at the floor should pass, got %v", errs)
	}
	d.Budget = MinBudget - 1
	if errs := ValidateEventDetails(d); len(errs) != 1 {
		t.Errorf("budget below the floor should fail, got %v", errs)
	}
}
