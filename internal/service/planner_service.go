// Package service orchestrates planner sessions against storage: it
// owns the session registry, hydrates sessions from stored snapshots,
// schedules best-effort snapshot writes, and turns catalog rows into
// scored recommendations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iwantdrugsxd/evea-sub002/internal/calculator"
	"github.com/iwantdrugsxd/evea-sub002/internal/models"
	"github.com/iwantdrugsxd/evea-sub002/internal/planner"
	"github.com/iwantdrugsxd/evea-sub002/internal/storage"
)

const snapshotWriteTimeout = 5 * time.Second

// PlannerService manages live planning sessions.
type PlannerService struct {
	store storage.Store

	mu       sync.Mutex
	sessions map[string]*planner.Session

	writes sync.WaitGroup
}

// NewPlannerService creates a service with the given storage backend.
func NewPlannerService(store storage.Store) *PlannerService {
	return &PlannerService{
		store:    store,
		sessions: make(map[string]*planner.Session),
	}
}

// OpenSession returns the session for the given id, hydrating it from a
// stored snapshot when possible and falling back to defaults on any
// failure. An empty id starts a fresh session under a new id.
func (s *PlannerService) OpenSession(ctx context.Context, sessionID string) (string, *planner.Session) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	s.mu.Lock()
	if sess, ok := s.sessions[sessionID]; ok {
		s.mu.Unlock()
		return sessionID, sess
	}
	s.mu.Unlock()

	sess := s.hydrate(ctx, sessionID)
	id := sessionID
	sess.OnChange(func(snap planner.Snapshot) { s.persistAsync(id, snap) })

	s.mu.Lock()
	// Another request may have raced us; keep the registered one.
	if existing, ok := s.sessions[sessionID]; ok {
		sess = existing
	} else {
		s.sessions[sessionID] = sess
	}
	s.mu.Unlock()

	sessionsOpened.Inc()
	return sessionID, sess
}

// Session returns an already-open session.
func (s *PlannerService) Session(sessionID string) (*planner.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	return sess, ok
}

// hydrate loads a snapshot from storage. Missing or unreadable
// snapshots degrade to a default session, never to an error.
func (s *PlannerService) hydrate(ctx context.Context, sessionID string) *planner.Session {
	data, err := s.store.LoadSnapshot(ctx, sessionID)
	if err != nil {
		return planner.New()
	}
	sess := planner.FromJSON(data)
	sessionsHydrated.Inc()
	slog.Debug("session hydrated from snapshot", "session_id", sessionID)
	return sess
}

// persistAsync writes a snapshot without blocking the mutating caller.
// A failed write degrades to "state is lost on reload", not an error.
func (s *PlannerService) persistAsync(sessionID string, snap planner.Snapshot) {
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()

		data, err := planner.Marshal(snap)
		if err != nil {
			snapshotWriteFailures.Inc()
			slog.Warn("snapshot marshal failed", "session_id", sessionID, "error", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), snapshotWriteTimeout)
		defer cancel()
		if err := s.store.SaveSnapshot(ctx, sessionID, data); err != nil {
			snapshotWriteFailures.Inc()
			slog.Warn("snapshot write failed, state will not survive reload",
				"session_id", sessionID, "error", err)
		}
	}()
}

// FlushSnapshots waits for in-flight snapshot writes; called on
// graceful shutdown (and by tests).
func (s *PlannerService) FlushSnapshots() {
	s.writes.Wait()
}

// AddCardToPackage resolves a vendor card and its vendor from the
// catalog and places it in the session's package.
func (s *PlannerService) AddCardToPackage(ctx context.Context, sess *planner.Session, cardID string, quantity int) error {
	card, err := s.store.GetVendorCard(ctx, cardID)
	if err != nil {
		return fmt.Errorf("resolve card: %w", err)
	}
	vendor, err := s.store.GetVendor(ctx, card.VendorID)
	if err != nil {
		return fmt.Errorf("resolve vendor: %w", err)
	}

	sess.AddToPackage(models.PackageItem{
		CategoryID: card.CategoryID,
		CardID:     card.ID,
		VendorID:   vendor.ID,
		VendorName: vendor.Name,
		Title:      card.Title,
		UnitPrice:  card.BasePrice,
		Quantity:   quantity,
	})
	packagesPriced.Inc()
	return nil
}

// RefreshRecommendations scores catalog cards for the session's selected
// categories and replaces its recommendation list, best match first. A
// catalog failure is recorded on the session's error field and returned;
// the wizard itself keeps running.
func (s *PlannerService) RefreshRecommendations(ctx context.Context, sess *planner.Session) error {
	start := time.Now()
	sess.SetLoading(true)
	defer func() {
		sess.SetLoading(false)
		recommendationRefresh.Observe(time.Since(start).Seconds())
	}()

	details := sess.EventData()
	filters := sess.Filters()

	var recs []models.VendorRecommendation
	for _, cat := range sess.SelectedCategories() {
		cards, err := s.store.ListVendorCards(ctx, cat.ID)
		if err != nil {
			sess.SetError("could not load vendor recommendations")
			return fmt.Errorf("list cards for %s: %w", cat.ID, err)
		}

		for _, card := range cards {
			if !passesFilters(card, filters) {
				continue
			}
			vendor, err := s.store.GetVendor(ctx, card.VendorID)
			if err != nil {
				slog.Warn("skipping card with unresolvable vendor",
					"card_id", card.ID, "vendor_id", card.VendorID, "error", err)
				continue
			}
			if filters.VerifiedOnly && !vendor.Verified {
				continue
			}
			recs = append(recs, models.VendorRecommendation{
				Card:   card,
				Vendor: *vendor,
				Score:  calculator.Score(card, details, filters),
			})
		}
	}

	// Stable keeps catalog order for ties.
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })

	sess.SetRecommendations(recs)
	sess.SetError("")
	return nil
}

// passesFilters applies the hard filters that exclude a card outright;
// soft preferences are the scorer's job.
func passesFilters(card models.VendorCard, f models.RecommendationFilters) bool {
	if f.PriceMin > 0 && card.BasePrice < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && card.BasePrice > f.PriceMax {
		return false
	}
	if f.MinRating > 0 && card.AvgRating < f.MinRating {
		return false
	}
	return true
}
