package planner

import (
	"testing"

	"github.com/iwantdrugsxd/evea-sub002/internal/models"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := New()
	s.SetEventType(*models.EventTypeByID("wedding"))
	s.UpdateEventData(models.EventDetailsPatch{Location: ptrString("Mumbai")})
	s.CompleteStep(models.StepEventType)
	s.NextStep()
	s.AddToPackage(photographyItem(25000))
	s.SetFilters(models.FiltersPatch{MinRating: ptrFloat(4.0)})
	s.SetRecommendations([]models.VendorRecommendation{{Score: 88}})

	data, err := Marshal(s.Snapshot())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	restored := FromJSON(data)
	st := restored.State()

	if st.CurrentStep != 1 {
		t.Errorf("currentStep = %d, want 1", st.CurrentStep)
	}
	if !restored.IsStepCompleted(models.StepEventType) {
		t.Error("completed step lost in round trip")
	}
	if st.EventType == nil || st.EventType.ID != "wedding" {
		t.Errorf("eventType = %+v, want wedding", st.EventType)
	}
	if st.EventData.Location != "Mumbai" {
		t.Errorf("location = %q, want Mumbai", st.EventData.Location)
	}
	if len(st.Package.Items) != 1 || st.Package.TotalAmount != 32000 {
		t.Errorf("package = %+v, want repriced single item", st.Package)
	}
	if st.Filters.MinRating != 4.0 {
		t.Errorf("filters = %+v, want restored", st.Filters)
	}
	// Recommendations are excluded from persistence.
	if len(st.Recommendations) != 0 {
		t.Error("recommendations must not survive the round trip")
	}
}

func TestFromJSONFallsBackOnGarbage(t *testing.T) {
	for _, payload := range []string{
		"",
		"not json at all",
		`{"currentStep": 42, "steps": []}`,
		`{"currentStep": -3, "steps": [{"id":"event-type"}]}`,
		`[1,2,3]`,
	} {
		s := FromJSON([]byte(payload))
		st := s.State()
		if st.CurrentStep != 0 || !st.Steps[0].IsActive {
			t.Errorf("payload %q: want canonical defaults, got step %d", payload, st.CurrentStep)
		}
	}
}

func TestSnapshotRederivesTotals(t *testing.T) {
	// A tampered breakdown in storage must not survive hydration.
	tampered := []byte(`{
		"currentStep": 0,
		"steps": [
			{"id": "event-type", "label": "Event Type", "isActive": true},
			{"id": "review", "label": "Review"}
		],
		"eventData": {},
		"package": {
			"items": [{"id": "i1", "categoryId": "photography", "unitPrice": 10000, "quantity": 1, "totalPrice": 10000}],
			"subtotal": 1,
			"totalAmount": 2
		},
		"filters": {}
	}`)

	pkg := FromJSON(tampered).Package()
	if pkg.Subtotal != 10000 {
		t.Errorf("subtotal = %d, want re-derived 10000", pkg.Subtotal)
	}
	if pkg.TotalAmount != 12800 {
		t.Errorf("totalAmount = %d, want re-derived 12800", pkg.TotalAmount)
	}
}
