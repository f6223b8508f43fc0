package service

import (
	"context"
	"os"
	"testing"

	"github.com/iwantdrugsxd/evea-sub002/internal/models"
	"github.com/iwantdrugsxd/evea-sub002/internal/storage/sqlite"
)

// setupService creates a planner service over a seeded temp database.
func setupService(t *testing.T) (*PlannerService, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}
	if err := store.Seed(context.Background()); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	svc := NewPlannerService(store)
	cleanup := func() {
		svc.FlushSnapshots()
		store.Close()
		os.Remove(tmpFile.Name())
	}
	return svc, cleanup
}

func TestOpenSessionAssignsID(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	id, sess := svc.OpenSession(context.Background(), "")
	if id == "" {
		t.Fatal("expected a generated session id")
	}
	if sess.CurrentStep() != 0 {
		t.Errorf("fresh session at step %d, want 0", sess.CurrentStep())
	}

	// Same id returns the same live session.
	id2, sess2 := svc.OpenSession(context.Background(), id)
	if id2 != id || sess2 != sess {
		t.Error("reopening an id should return the registered session")
	}
}

func TestSessionSurvivesRestartViaSnapshot(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	id, sess := svc.OpenSession(ctx, "")
	sess.SetEventType(*models.EventTypeByID("wedding"))
	sess.CompleteStep(models.StepEventType)
	sess.NextStep()
	if err := svc.AddCardToPackage(ctx, sess, "c-photo-premium", 1); err != nil {
		t.Fatalf("AddCardToPackage failed: %v", err)
	}
	svc.FlushSnapshots()

	// A second service over the same store simulates a process restart.
	svc2 := NewPlannerService(svc.store)
	_, restored := svc2.OpenSession(ctx, id)
	st := restored.State()

	if st.CurrentStep != 1 {
		t.Errorf("restored currentStep = %d, want 1", st.CurrentStep)
	}
	if len(st.Package.Items) != 1 || st.Package.TotalAmount != 32000 {
		t.Errorf("restored package = %+v, want repriced photography item", st.Package)
	}
	if st.EventType == nil || st.EventType.ID != "wedding" {
		t.Errorf("restored eventType = %+v", st.EventType)
	}
}

func TestOpenSessionFallsBackOnCorruptSnapshot(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	if err := svc.store.SaveSnapshot(ctx, "corrupt", []byte("}{ not json")); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	_, sess := svc.OpenSession(ctx, "corrupt")
	st := sess.State()
	if st.CurrentStep != 0 || !st.Steps[0].IsActive {
		t.Errorf("corrupt snapshot should hydrate to defaults, got step %d", st.CurrentStep)
	}
}

func TestAddCardToPackage(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	_, sess := svc.OpenSession(ctx, "")
	if err := svc.AddCardToPackage(ctx, sess, "c-photo-premium", 1); err != nil {
		t.Fatalf("AddCardToPackage failed: %v", err)
	}

	pkg := sess.Package()
	if len(pkg.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(pkg.Items))
	}
	item := pkg.Items[0]
	if item.VendorName != "Lens & Light Studios" {
		t.Errorf("vendorName = %q, want denormalized name", item.VendorName)
	}
	if item.UnitPrice != 25000 || pkg.Subtotal != 25000 {
		t.Errorf("unitPrice = %d, subtotal = %d, want 25000", item.UnitPrice, pkg.Subtotal)
	}

	// A second photography card replaces the first.
	if err := svc.AddCardToPackage(ctx, sess, "c-photo-classic", 1); err != nil {
		t.Fatalf("AddCardToPackage failed: %v", err)
	}
	pkg = sess.Package()
	if len(pkg.Items) != 1 || pkg.Items[0].CardID != "c-photo-classic" {
		t.Errorf("same-category add should replace, got %+v", pkg.Items)
	}

	if err := svc.AddCardToPackage(ctx, sess, "no-such-card", 1); err == nil {
		t.Error("unknown card should error")
	}
}

func TestRefreshRecommendations(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	_, sess := svc.OpenSession(ctx, "")
	sess.SetEventType(*models.EventTypeByID("wedding"))
	sess.UpdateEventData(models.EventDetailsPatch{Location: strPtr("Mumbai")})

	if err := svc.RefreshRecommendations(ctx, sess); err != nil {
		t.Fatalf("RefreshRecommendations failed: %v", err)
	}

	recs := sess.Recommendations()
	if len(recs) == 0 {
		t.Fatal("expected recommendations for essential categories")
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Score < recs[i].Score {
			t.Errorf("recommendations not sorted: %d before %d", recs[i-1].Score, recs[i].Score)
		}
	}
	for _, r := range recs {
		if r.Score < 0 {
			t.Errorf("negative score for card %s", r.Card.ID)
		}
		if r.Vendor.ID == "" {
			t.Errorf("recommendation %s missing vendor", r.Card.ID)
		}
	}
	if st := sess.State(); st.Loading || st.Error != "" {
		t.Errorf("loading=%v error=%q after successful refresh", st.Loading, st.Error)
	}
}

func TestRefreshRecommendationsRespectsFilters(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	_, sess := svc.OpenSession(ctx, "")
	sess.SetEventType(*models.EventTypeByID("wedding"))
	sess.SetFilters(models.FiltersPatch{
		MinRating:    floatPtr(4.5),
		VerifiedOnly: boolPtr(true),
	})

	if err := svc.RefreshRecommendations(ctx, sess); err != nil {
		t.Fatalf("RefreshRecommendations failed: %v", err)
	}

	for _, r := range sess.Recommendations() {
		if r.Card.AvgRating < 4.5 {
			t.Errorf("card %s rated %.1f below the 4.5 floor", r.Card.ID, r.Card.AvgRating)
		}
		if !r.Vendor.Verified {
			t.Errorf("unverified vendor %s passed VerifiedOnly", r.Vendor.ID)
		}
	}
}

func strPtr(v string) *string { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool { return &v }
