package ordmap

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var tinyWords = []string{"word", "sad", "happy", "people", "hard", "strong", "haha"}

func newWordMap(t *testing.T) *OrderedMap[string, int] {
	t.Helper()
	m := NewOrdered[string, int]()
	for i, w := range tinyWords {
		if err := m.Put(w, i); err != nil {
			t.Fatalf("Put(%q) failed: %v", w, err)
		}
	}
	return m
}

func TestNewRejectsMissingCompare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	_, err := New[string, int](Config[string]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewRejectsUnknownDeletionStrategy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	cfg := OrderedConfig[int]()
	cfg.Deletion = DeletionStrategy(7)
	_, err := New[int, int](cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "DeletionStrategy(7)") {
		t.Errorf("expected strategy to be named in error, got %q", err.Error())
	}
}

func TestNewRandomizedDeletionGetsCoin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	cfg := OrderedConfig[int]()
	cfg.Deletion = RandomizedDeletion
	m, err := New[int, string](cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Config().Rand == nil {
		t.Fatalf("expected normalized config to carry a random source")
	}
}

func TestEmptyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := NewOrdered[int, int]()
	if !m.IsEmpty() || m.Size() != 0 || m.Height() != -1 {
		t.Fatalf("unexpected empty map state: empty=%v size=%d height=%d", m.IsEmpty(), m.Size(), m.Height())
	}
	if err := m.Check(); err != nil {
		t.Fatalf("empty map should be valid, got %v", err)
	}
	var nilMap *OrderedMap[int, int]
	if !nilMap.IsEmpty() || nilMap.Size() != 0 || nilMap.Height() != -1 {
		t.Fatalf("nil map should behave like an empty map")
	}
}

func TestWordScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := newWordMap(t)
	if m.Size() != 7 {
		t.Fatalf("expected size 7, got %d", m.Size())
	}
	if k, _ := m.Min(); k != "haha" {
		t.Errorf("expected min 'haha', got %q", k)
	}
	if k, _ := m.Max(); k != "word" {
		t.Errorf("expected max 'word', got %q", k)
	}
	if r, _ := m.Rank("people"); r != 3 {
		t.Errorf("expected rank('people') = 3, got %d", r)
	}
	if k, _ := m.Select(3); k != "people" {
		t.Errorf("expected select(3) = 'people', got %q", k)
	}
	if k, _ := m.Select(4); k != "sad" {
		t.Errorf("expected select(4) = 'sad', got %q", k)
	}
	if k, ok, _ := m.Floor("hardy"); !ok || k != "hard" {
		t.Errorf("expected floor('hardy') = 'hard', got %q (%v)", k, ok)
	}
	if k, ok, _ := m.Ceiling("hardy"); !ok || k != "people" {
		t.Errorf("expected ceiling('hardy') = 'people', got %q (%v)", k, ok)
	}
	keys, err := m.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	want := []string{"haha", "happy", "hard", "people", "sad", "strong", "word"}
	if !slices.Equal(keys, want) {
		t.Errorf("expected keys %v, got %v", want, keys)
	}
	if h := m.Height(); h != 4 {
		t.Errorf("expected height 4, got %d", h)
	}
	level := m.LevelOrder()
	wantLevel := []string{"word", "sad", "happy", "strong", "haha", "people", "hard"}
	if !slices.Equal(level, wantLevel) {
		t.Errorf("expected level order %v, got %v", wantLevel, level)
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestHeightOfDegenerateTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	const n = 5000
	m := NewOrdered[int, struct{}]()
	for i := 0; i < n; i++ {
		_ = m.Put(i, struct{}{})
	}
	if m.Height() != n-1 {
		t.Fatalf("expected height %d for ascending inserts, got %d", n-1, m.Height())
	}
	if r, _ := m.Rank(n - 1); r != n-1 {
		t.Errorf("expected rank %d, got %d", n-1, r)
	}
	if k, _ := m.Select(n / 2); k != n/2 {
		t.Errorf("expected select(%d) = %d, got %d", n/2, n/2, k)
	}
	if c, _ := m.SizeBetween(100, 199); c != 100 {
		t.Errorf("expected 100 keys in [100,199], got %d", c)
	}
	if err := m.Delete(0); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if m.Height() != n-2 || m.Size() != n-1 {
		t.Errorf("unexpected shape after deleting root: height=%d size=%d", m.Height(), m.Size())
	}
}

func TestClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := newWordMap(t)
	m.Clear()
	if !m.IsEmpty() {
		t.Fatalf("expected empty map after Clear")
	}
	if _, err := m.Min(); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("expected ErrEmptyTable after Clear, got %v", err)
	}
}

type account struct {
	id int
}

func TestNilKeysAreRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m, err := New[*account, string](Config[*account]{
		Compare: func(a, b *account) int { return a.id - b.id },
		NilKey:  func(a *account) bool { return a == nil },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, b := &account{1}, &account{2}
	_ = m.Put(b, "b")
	_ = m.Put(a, "a")
	checks := map[string]error{
		"Put":    m.Put(nil, "x"),
		"Delete": m.Delete(nil),
	}
	_, _, checks["Get"] = m.Get(nil)
	_, checks["Contains"] = m.Contains(nil)
	_, _, checks["Floor"] = m.Floor(nil)
	_, _, checks["Ceiling"] = m.Ceiling(nil)
	_, checks["Rank"] = m.Rank(nil)
	_, checks["KeysBetween"] = m.KeysBetween(a, nil)
	_, checks["SizeBetween"] = m.SizeBetween(nil, b)
	_, checks["Ascend"] = m.Ascend(nil, nil)
	for op, err := range checks {
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", op, err)
		}
	}
	if m.Size() != 2 {
		t.Fatalf("rejected operations must not change the map, size is %d", m.Size())
	}
	if v, ok, _ := m.Get(&account{1}); !ok || v != "a" {
		t.Errorf("expected lookup by equal key to succeed, got %q (%v)", v, ok)
	}
}
