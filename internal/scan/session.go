package scan

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/vpricescan/vpricego/internal/models"
)

// HistoryLimit is how many recent scans a session keeps cached.
const HistoryLimit = 12

// ErrValuationUnavailable is returned by Submit when no valuation engine was
// configured at startup.
var ErrValuationUnavailable = errors.New("valuation service is not configured")

// State names the session's position in the scan lifecycle.
type State string

const (
	StateIdle           State = "idle"
	StateRequesting     State = "requesting"
	StateNormalizing    State = "normalizing"
	StatePersisting     State = "persisting"
	StateRefreshing     State = "refreshing"
	StateReconstructing State = "reconstructing"
)

// Valuer is the upstream valuation engine boundary.
type Valuer interface {
	Evaluate(ctx context.Context, rawText string, manualPrice *float64) (*models.Result, error)
}

// Store is the record persistence boundary a session consumes. Every
// operation reports a flat outcome; the session never sees the underlying
// error types.
type Store interface {
	Create(ctx context.Context, rec *models.Scan) (string, bool)
	ListRecent(ctx context.Context, limit int) []models.Scan
	DeleteOne(ctx context.Context, id string) bool
	DeleteAll(ctx context.Context) bool
}

// Session drives one user's scan lifecycle: request, normalize, persist,
// refresh, plus history selection and deletion. It owns the displayed result
// and the cached recent list. A mutex serializes overlapping HTTP requests
// onto one logical thread of control, so each call still runs the sequence
// request, normalize, persist, refresh without interleaving.
type Session struct {
	valuer Valuer
	store  Store

	mu      sync.Mutex
	state   State
	current *models.Result
	history []models.Scan
	lastErr error
}

// NewSession creates an idle session. valuer may be nil; Submit then reports
// ErrValuationUnavailable while history operations keep working.
func NewSession(valuer Valuer, store Store) *Session {
	return &Session{
		valuer:  valuer,
		store:   store,
		state:   StateIdle,
		history: []models.Scan{},
	}
}

// State reports the session's current lifecycle position.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the displayed result, nil when nothing was scanned yet.
func (s *Session) Current() *models.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// History returns the cached recent list from the last refresh.
func (s *Session) History() []models.Scan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history
}

// Err returns the error flag from the last Submit, nil after a success.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Submit runs a full scan: valuation, normalization, best-effort persistence
// and a history refresh. A valuation failure surfaces as the session error
// and persists nothing. A persistence failure is logged and the fresh result
// is still displayed.
func (s *Session) Submit(ctx context.Context, rawText string, manualPrice *float64) (*models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = nil

	if s.valuer == nil {
		s.lastErr = ErrValuationUnavailable
		return nil, ErrValuationUnavailable
	}

	s.state = StateRequesting
	res, err := s.valuer.Evaluate(ctx, rawText, manualPrice)
	if err != nil {
		s.state = StateIdle
		s.lastErr = err
		return nil, err
	}

	s.state = StateNormalizing
	rec := Normalize(res, rawText)

	s.state = StatePersisting
	if _, ok := s.store.Create(ctx, &rec); !ok {
		log.Printf("⚠️ Scan was not saved, showing result without a history entry")
	}

	s.refresh(ctx)

	s.current = res
	s.state = StateIdle
	return res, nil
}

// Select replaces the displayed result with a reconstruction of a history
// entry. No network or store call happens.
func (s *Session) Select(rec *models.Scan) *models.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateReconstructing
	res := Reconstruct(rec)
	s.current = res
	s.state = StateIdle
	return res
}

// DeleteOne removes a single record, then refreshes unconditionally so the
// cached list matches whatever the store now reports.
func (s *Session) DeleteOne(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.store.DeleteOne(ctx, id)
	if !ok {
		log.Printf("⚠️ Delete of scan %s failed", id)
	}
	s.refresh(ctx)
	s.state = StateIdle
	return ok
}

// DeleteAll wipes the history, then refreshes regardless of the outcome.
func (s *Session) DeleteAll(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.store.DeleteAll(ctx)
	if !ok {
		log.Printf("⚠️ Clearing scan history failed")
	}
	s.refresh(ctx)
	s.state = StateIdle
	return ok
}

func (s *Session) refresh(ctx context.Context) {
	s.state = StateRefreshing
	s.history = s.store.ListRecent(ctx, HistoryLimit)
}
