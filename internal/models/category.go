package models

// ServiceCategory is one service vertical a vendor can offer
// (photography, catering, ...). Essential categories are pre-selected
// for new sessions; the user may still remove them explicitly.
type ServiceCategory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Essential bool   `json:"essential"`
}

// DefaultCategories returns the built-in category catalog. Storage
// seeds from this list; the planner uses it to pre-select essentials.
func DefaultCategories() []ServiceCategory {
	return []ServiceCategory{
		{ID: "venue", Name: "Venue", Icon: "building", Essential: true},
		{ID: "catering", Name: "Catering", Icon: "utensils", Essential: true},
		{ID: "photography", Name: "Photography", Icon: "camera", Essential: true},
		{ID: "decoration", Name: "Decoration", Icon: "sparkles", Essential: true},
		{ID: "music", Name: "Music & DJ", Icon: "music", Essential: false},
		{ID: "makeup", Name: "Makeup & Styling", Icon: "brush", Essential: false},
		{ID: "invitations", Name: "Invitations", Icon: "mail", Essential: false},
		{ID: "transport", Name: "Transport", Icon: "car", Essential: false},
	}
}

// EssentialCategories returns only the categories pre-selected for a
// fresh session.
func EssentialCategories() []ServiceCategory {
	var out []ServiceCategory
	for _, c := range DefaultCategories() {
		if c.Essential {
			out = append(out, c)
		}
	}
	return out
}
