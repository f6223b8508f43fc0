package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iwantdrugsxd/evea-sub002/internal/auth"
	"github.com/iwantdrugsxd/evea-sub002/internal/service"
	"github.com/iwantdrugsxd/evea-sub002/internal/storage/sqlite"
)

// setupTestServer starts the full stack over a seeded temp database and
// returns an authenticated request helper.
func setupTestServer(t *testing.T) (*httptest.Server, func(method, path string, body any) *http.Response, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	svc := service.NewPlannerService(store)
	authn := auth.NewAuthenticator(store)
	jwt := auth.NewJWTManager("test-secret", time.Hour)
	ts := httptest.NewServer(New(svc, store, authn, jwt).Router())

	// Register a user and capture their token.
	resp, err := http.Post(ts.URL+"/api/v1/auth/register", "application/json",
		bytes.NewBufferString(`{"name":"Asha","email":"asha@example.com","password":"supersecret"}`))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	var reg struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reg); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}
	resp.Body.Close()
	if reg.Token == "" {
		t.Fatal("register returned no token")
	}

	do := func(method, path string, body any) *http.Response {
		t.Helper()
		var buf bytes.Buffer
		if body != nil {
			if err := json.NewEncoder(&buf).Encode(body); err != nil {
				t.Fatalf("failed to encode body: %v", err)
			}
		}
		req, err := http.NewRequest(method, ts.URL+path, &buf)
		if err != nil {
			t.Fatalf("failed to build request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+reg.Token)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("%s %s failed: %v", method, path, err)
		}
		return resp
	}

	cleanup := func() {
		ts.Close()
		svc.FlushSnapshots()
		store.Close()
		os.Remove(tmpFile.Name())
	}
	return ts, do, cleanup
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestAuthRequired(t *testing.T) {
	ts, _, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := http.Post(ts.URL+"/api/v1/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without a token", resp.StatusCode)
	}
}

func TestWizardFlow(t *testing.T) {
	_, do, cleanup := setupTestServer(t)
	defer cleanup()

	// Open a session.
	var opened struct {
		SessionID string `json:"sessionId"`
	}
	decode(t, do("POST", "/api/v1/sessions", nil), &opened)
	if opened.SessionID == "" {
		t.Fatal("no session id returned")
	}
	base := "/api/v1/sessions/" + opened.SessionID

	// Pick the wedding event type; defaults should land in eventData.
	var st struct {
		CurrentStep int `json:"currentStep"`
		EventData   struct {
			Budget     int64 `json:"budget"`
			GuestCount int   `json:"guestCount"`
		} `json:"eventData"`
		Package struct {
			Items       []struct{ TotalPrice int64 } `json:"items"`
			Subtotal    int64                        `json:"subtotal"`
			TotalAmount int64                        `json:"totalAmount"`
		} `json:"package"`
	}
	decode(t, do("PUT", base+"/event-type", map[string]string{"eventTypeId": "wedding"}), &st)
	if st.EventData.Budget != 200000 {
		t.Errorf("budget = %d, want wedding default 200000", st.EventData.Budget)
	}

	// Fill in details, validate, complete the step, advance.
	decode(t, do("PATCH", base+"/event-details", map[string]any{
		"date": "2026-11-20", "time": "18:00",
		"location": "Mumbai", "address": "Marine Drive",
	}), &st)

	var validation struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	decode(t, do("POST", base+"/event-details/validate", nil), &validation)
	if !validation.Valid {
		t.Fatalf("details should validate, got %v", validation.Errors)
	}

	do("POST", base+"/steps/complete", map[string]string{"stepId": "event-type"}).Body.Close()
	decode(t, do("POST", base+"/steps/next", nil), &st)
	if st.CurrentStep != 1 {
		t.Errorf("currentStep = %d, want 1", st.CurrentStep)
	}

	// Add the premium photography card and check the pricing.
	decode(t, do("POST", base+"/package/items", map[string]any{"cardId": "c-photo-premium"}), &st)
	if len(st.Package.Items) != 1 || st.Package.Subtotal != 25000 || st.Package.TotalAmount != 32000 {
		t.Errorf("package = %+v, want priced photography item", st.Package)
	}

	// Same category replaces.
	decode(t, do("POST", base+"/package/items", map[string]any{"cardId": "c-photo-classic"}), &st)
	if len(st.Package.Items) != 1 || st.Package.Subtotal != 12000 {
		t.Errorf("package = %+v, want replaced item at 12000", st.Package)
	}

	// Recommendations come back sorted and scored.
	var recsResp struct {
		Recommendations []struct {
			Score int `json:"score"`
		} `json:"recommendations"`
	}
	decode(t, do("GET", base+"/recommendations", nil), &recsResp)
	if len(recsResp.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
	for i := 1; i < len(recsResp.Recommendations); i++ {
		if recsResp.Recommendations[i-1].Score < recsResp.Recommendations[i].Score {
			t.Error("recommendations not sorted best-first")
			break
		}
	}

	// Formatted package view.
	var pkgResp struct {
		Formatted map[string]string `json:"formatted"`
	}
	decode(t, do("GET", base+"/package", nil), &pkgResp)
	if got := pkgResp.Formatted["subtotal"]; got != "₹12,000" {
		t.Errorf("formatted subtotal = %q, want ₹12,000", got)
	}

	// Reset returns everything to the initial state.
	decode(t, do("POST", base+"/reset", nil), &st)
	if st.CurrentStep != 0 || len(st.Package.Items) != 0 {
		t.Errorf("after reset: step %d, items %d", st.CurrentStep, len(st.Package.Items))
	}
}

func TestUnknownEventType(t *testing.T) {
	_, do, cleanup := setupTestServer(t)
	defer cleanup()

	var opened struct {
		SessionID string `json:"sessionId"`
	}
	decode(t, do("POST", "/api/v1/sessions", nil), &opened)

	resp := do("PUT", "/api/v1/sessions/"+opened.SessionID+"/event-type",
		map[string]string{"eventTypeId": "rocket-launch"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for unknown event type", resp.StatusCode)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	_, do, cleanup := setupTestServer(t)
	defer cleanup()

	var types struct {
		EventTypes []struct{ ID string } `json:"eventTypes"`
	}
	decode(t, do("GET", "/api/v1/event-types", nil), &types)
	if len(types.EventTypes) != 5 {
		t.Errorf("event types = %d, want 5", len(types.EventTypes))
	}

	var cards struct {
		Cards []struct {
			CategoryID string `json:"categoryId"`
		} `json:"cards"`
	}
	decode(t, do("GET", "/api/v1/cards?category=photography", nil), &cards)
	if len(cards.Cards) != 2 {
		t.Fatalf("photography cards = %d, want 2", len(cards.Cards))
	}
	for _, card := range cards.Cards {
		if card.CategoryID != "photography" {
			t.Errorf("card category = %q", card.CategoryID)
		}
	}

	var reviews struct {
		Reviews []struct{ Rating int } `json:"reviews"`
	}
	decode(t, do("GET", fmt.Sprintf("/api/v1/cards/%s/reviews", "c-photo-premium"), nil), &reviews)
	if len(reviews.Reviews) == 0 {
		t.Error("expected seeded reviews")
	}
}
