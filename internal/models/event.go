package models

// EventType describes one kind of occasion the marketplace can plan.
// Selecting a type seeds EventDetails with its defaults; the records
// themselves are immutable reference data.
type EventType struct {
	// ID is the stable identifier (e.g. "wedding").
	ID string `json:"id"`

	// Name is the display name shown in the wizard.
	Name string `json:"name"`

	// DefaultBudget is the budget (rupees) applied when this type is
	// selected. BudgetMin/BudgetMax bound the slider in the UI.
	DefaultBudget int64 `json:"defaultBudget"`
	BudgetMin     int64 `json:"budgetMin"`
	BudgetMax     int64 `json:"budgetMax"`

	// DefaultGuests is the guest count applied on selection.
	DefaultGuests int `json:"defaultGuests"`
	GuestMin      int `json:"guestMin"`
	GuestMax      int `json:"guestMax"`

	// DefaultDuration is the typical event length in hours.
	DefaultDuration int `json:"defaultDuration"`
}

// EventDetails is the user's description of their event, filled in
// incrementally as the wizard progresses. A half-empty value is a
// normal state, not an error; validation is a separate explicit call.
type EventDetails struct {
	// Date in YYYY-MM-DD form, as entered by the user.
	Date string `json:"date"`

	// Time in HH:MM form.
	Time string `json:"time"`

	// Duration of the event in hours.
	Duration int `json:"duration"`

	// Location is the city or area used for vendor matching.
	Location string `json:"location"`

	// Address is the full venue address.
	Address string `json:"address"`

	// GuestCount is the expected headcount.
	GuestCount int `json:"guestCount"`

	// Budget is the total event budget in rupees.
	Budget int64 `json:"budget"`

	// SpecialRequirements is free-text notes for vendors.
	SpecialRequirements string `json:"specialRequirements"`
}

// EventDetailsPatch is a partial update to EventDetails. Nil fields are
// left untouched; set fields overwrite. This is the shallow-merge
// contract of UpdateEventData.
type EventDetailsPatch struct {
	Date                *string `json:"date,omitempty"`
	Time                *string `json:"time,omitempty"`
	Duration            *int    `json:"duration,omitempty"`
	Location            *string `json:"location,omitempty"`
	Address             *string `json:"address,omitempty"`
	GuestCount          *int    `json:"guestCount,omitempty"`
	Budget              *int64  `json:"budget,omitempty"`
	SpecialRequirements *string `json:"specialRequirements,omitempty"`
}

// Apply merges the patch into d.
func (p EventDetailsPatch) Apply(d *EventDetails) {
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.Time != nil {
		d.Time = *p.Time
	}
	if p.Duration != nil {
		d.Duration = *p.Duration
	}
	if p.Location != nil {
		d.Location = *p.Location
	}
	if p.Address != nil {
		d.Address = *p.Address
	}
	if p.GuestCount != nil {
		d.GuestCount = *p.GuestCount
	}
	if p.Budget != nil {
		d.Budget = *p.Budget
	}
	if p.SpecialRequirements != nil {
		d.SpecialRequirements = *p.SpecialRequirements
	}
}

// EventTypes returns the built-in event type catalog, in display order.
func EventTypes() []EventType {
	return []EventType{
		{
			ID: "wedding", Name: "Wedding",
			DefaultBudget: 200000, BudgetMin: 100000, BudgetMax: 1000000,
			DefaultGuests: 200, GuestMin: 50, GuestMax: 1000,
			DefaultDuration: 8,
		},
		{
			ID: "birthday", Name: "Birthday Party",
			DefaultBudget: 50000, BudgetMin: 10000, BudgetMax: 200000,
			DefaultGuests: 50, GuestMin: 10, GuestMax: 200,
			DefaultDuration: 4,
		},
		{
			ID: "corporate", Name: "Corporate Event",
			DefaultBudget: 150000, BudgetMin: 50000, BudgetMax: 500000,
			DefaultGuests: 100, GuestMin: 20, GuestMax: 500,
			DefaultDuration: 6,
		},
		{
			ID: "anniversary", Name: "Anniversary",
			DefaultBudget: 75000, BudgetMin: 20000, BudgetMax: 300000,
			DefaultGuests: 75, GuestMin: 10, GuestMax: 300,
			DefaultDuration: 5,
		},
		{
			ID: "baby-shower", Name: "Baby Shower",
			DefaultBudget: 40000, BudgetMin: 10000, BudgetMax: 150000,
			DefaultGuests: 40, GuestMin: 10, GuestMax: 150,
			DefaultDuration: 3,
		},
	}
}

// EventTypeByID looks up a built-in event type. Returns nil if the id
// is unknown.
func EventTypeByID(id string) *EventType {
	for _, et := range EventTypes() {
		if et.ID == id {
			return &et
		}
	}
	return nil
}
