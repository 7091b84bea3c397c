package scan

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/vpricescan/vpricego/internal/models"
)

type fakeValuer struct {
	result *models.Result
	err    error
	calls  int
}

func (f *fakeValuer) Evaluate(ctx context.Context, rawText string, manualPrice *float64) (*models.Result, error) {
	f.calls++
	return f.result, f.err
}

type fakeStore struct {
	createOK  bool
	deleteOK  bool
	records   []models.Scan
	callOrder []string
	created   []models.Scan
}

func (f *fakeStore) Create(ctx context.Context, rec *models.Scan) (string, bool) {
	f.callOrder = append(f.callOrder, "create")
	if !f.createOK {
		return "", false
	}
	rec.ID = "generated-id"
	f.created = append(f.created, *rec)
	f.records = append([]models.Scan{*rec}, f.records...)
	return rec.ID, true
}

func (f *fakeStore) ListRecent(ctx context.Context, limit int) []models.Scan {
	f.callOrder = append(f.callOrder, "list")
	if len(f.records) > limit {
		return f.records[:limit]
	}
	return f.records
}

func (f *fakeStore) DeleteOne(ctx context.Context, id string) bool {
	f.callOrder = append(f.callOrder, "deleteOne")
	return f.deleteOK
}

func (f *fakeStore) DeleteAll(ctx context.Context) bool {
	f.callOrder = append(f.callOrder, "deleteAll")
	if f.deleteOK {
		f.records = nil
	}
	return f.deleteOK
}

func TestSession_SubmitHappyPath(t *testing.T) {
	valuer := &fakeValuer{result: &models.Result{
		Category:            "Desktop",
		CPU:                 "i7-9700",
		GPU:                 "RTX 2060",
		CalculatedFairPrice: 540,
		Verdict:             "COMPENSA COMPRAR ✅",
	}}
	st := &fakeStore{createOK: true, deleteOK: true}
	s := NewSession(valuer, st)

	res, err := s.Submit(context.Background(), "texto do anúncio", nil)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if res != s.Current() {
		t.Error("Current() should hold the submitted result")
	}
	if s.State() != StateIdle {
		t.Errorf("State: got %q, want idle", s.State())
	}
	if s.Err() != nil {
		t.Errorf("Err: got %v, want nil", s.Err())
	}
	if len(s.History()) != 1 {
		t.Fatalf("History: got %d entries, want 1", len(s.History()))
	}
	if s.History()[0].Title != "i7-9700 + RTX 2060" {
		t.Errorf("persisted title: got %q", s.History()[0].Title)
	}

	// Persistence strictly before the refresh.
	want := []string{"create", "list"}
	if len(st.callOrder) != 2 || st.callOrder[0] != want[0] || st.callOrder[1] != want[1] {
		t.Errorf("store call order: got %v, want %v", st.callOrder, want)
	}
}

func TestSession_SubmitValuationFailurePersistsNothing(t *testing.T) {
	valuer := &fakeValuer{err: errors.New("network down")}
	st := &fakeStore{createOK: true}
	s := NewSession(valuer, st)

	_, err := s.Submit(context.Background(), "texto", nil)
	if err == nil {
		t.Fatal("expected an error")
	}

	if s.Err() == nil {
		t.Error("error flag should be set")
	}
	if len(st.callOrder) != 0 {
		t.Errorf("store should be untouched, saw calls: %v", st.callOrder)
	}
	if s.State() != StateIdle {
		t.Errorf("State: got %q, want idle", s.State())
	}
}

func TestSession_SubmitPersistFailureStillShowsResult(t *testing.T) {
	valuer := &fakeValuer{result: &models.Result{Category: "Laptop"}}
	st := &fakeStore{createOK: false}
	s := NewSession(valuer, st)

	res, err := s.Submit(context.Background(), "portátil usado", nil)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if res == nil {
		t.Fatal("result should be displayed despite the failed save")
	}

	// The refresh still runs after the failed create.
	want := []string{"create", "list"}
	if len(st.callOrder) != 2 || st.callOrder[1] != want[1] {
		t.Errorf("store call order: got %v, want %v", st.callOrder, want)
	}
}

func TestSession_SubmitWithoutValuer(t *testing.T) {
	st := &fakeStore{}
	s := NewSession(nil, st)

	_, err := s.Submit(context.Background(), "texto", nil)
	if !errors.Is(err, ErrValuationUnavailable) {
		t.Errorf("got %v, want ErrValuationUnavailable", err)
	}
	if len(st.callOrder) != 0 {
		t.Errorf("store should be untouched, saw calls: %v", st.callOrder)
	}
}

func TestSession_SelectTouchesNothing(t *testing.T) {
	st := &fakeStore{}
	s := NewSession(nil, st)

	rec := Normalize(&models.Result{Category: "Smartphone", CalculatedFairPrice: 180}, "iPhone 12 usado")
	res := s.Select(&rec)

	if res.TotalPartsValueUsed != 200 {
		t.Errorf("reconstructed used total: got %v, want 200", res.TotalPartsValueUsed)
	}
	if s.Current() != res {
		t.Error("Current() should hold the reconstruction")
	}
	if len(st.callOrder) != 0 {
		t.Errorf("selection must not call the store, saw: %v", st.callOrder)
	}
}

func TestSession_DeleteOneAlwaysRefreshes(t *testing.T) {
	st := &fakeStore{deleteOK: false}
	s := NewSession(nil, st)

	if ok := s.DeleteOne(context.Background(), "missing-id"); ok {
		t.Error("delete of a missing id should report failure")
	}

	want := []string{"deleteOne", "list"}
	if len(st.callOrder) != 2 || st.callOrder[1] != "list" {
		t.Errorf("store call order: got %v, want %v", st.callOrder, want)
	}
}

func TestSession_OverlappingRequestsAreSerialized(t *testing.T) {
	// One session is shared by every HTTP handler goroutine; overlapping
	// submissions and selections must not interleave. Run with -race.
	valuer := &fakeValuer{result: &models.Result{
		CPU:                 "i7-9700",
		GPU:                 "RTX 2060",
		CalculatedFairPrice: 180,
	}}
	st := &fakeStore{createOK: true, deleteOK: true}
	s := NewSession(valuer, st)

	rec := Normalize(valuer.result, "anúncio partilhado")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Submit(context.Background(), "anúncio partilhado", nil); err != nil {
				t.Errorf("Submit failed: %v", err)
			}
			s.Select(&rec)
			_ = s.Current()
			_ = s.History()
			_ = s.State()
			_ = s.Err()
		}()
	}
	wg.Wait()

	if s.State() != StateIdle {
		t.Errorf("State: got %q, want idle", s.State())
	}
	if valuer.calls != 8 {
		t.Errorf("valuer calls: got %d, want 8", valuer.calls)
	}
	// Each Submit holds the session for its whole create+list sequence, so
	// the store call order is strictly alternating.
	if len(st.callOrder) != 16 {
		t.Fatalf("store calls: got %d, want 16", len(st.callOrder))
	}
	for i, call := range st.callOrder {
		want := "create"
		if i%2 == 1 {
			want = "list"
		}
		if call != want {
			t.Errorf("store call %d: got %q, want %q", i, call, want)
		}
	}
}

func TestSession_DeleteAllEmptiesHistory(t *testing.T) {
	st := &fakeStore{createOK: true, deleteOK: true}
	for i := 0; i < 5; i++ {
		rec := Normalize(nil, "anúncio")
		st.Create(context.Background(), &rec)
	}
	st.callOrder = nil
	s := NewSession(nil, st)

	if ok := s.DeleteAll(context.Background()); !ok {
		t.Fatal("DeleteAll should succeed")
	}
	if len(s.History()) != 0 {
		t.Errorf("History: got %d entries, want 0", len(s.History()))
	}
	if len(st.callOrder) != 2 || st.callOrder[0] != "deleteAll" || st.callOrder[1] != "list" {
		t.Errorf("store call order: got %v", st.callOrder)
	}
}
