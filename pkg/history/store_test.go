package history

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SaveAndGetQuery(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveQuery("recent-names", "SELECT ?name WHERE { ?id name ?name }"); err != nil {
		t.Fatalf("SaveQuery() error: %v", err)
	}

	got, found, err := s.GetQuery("recent-names")
	if err != nil {
		t.Fatalf("GetQuery() error: %v", err)
	}
	if !found {
		t.Fatal("expected query to be found")
	}
	if got.Text != "SELECT ?name WHERE { ?id name ?name }" {
		t.Errorf("Text = %q", got.Text)
	}
}

func TestStore_GetQuery_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, found, err := s.GetQuery("missing")
	if err != nil {
		t.Fatalf("GetQuery() error: %v", err)
	}
	if found {
		t.Error("expected not found")
	}
}

func TestStore_ListQueries(t *testing.T) {
	s := newTestStore(t)
	s.SaveQuery("a", "SELECT ?x WHERE { ?x name ?n }")
	s.SaveQuery("b", "SELECT ?y WHERE { ?y weight ?w }")

	all, err := s.ListQueries()
	if err != nil {
		t.Fatalf("ListQueries() error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d queries, want 2", len(all))
	}
}

func TestStore_DeleteQuery(t *testing.T) {
	s := newTestStore(t)
	s.SaveQuery("temp", "SELECT ?x WHERE { ?x name ?n }")
	if err := s.DeleteQuery("temp"); err != nil {
		t.Fatalf("DeleteQuery() error: %v", err)
	}
	_, found, _ := s.GetQuery("temp")
	if found {
		t.Error("expected query to be gone after delete")
	}
}

func TestStore_RecentQueries_TrimsToMax(t *testing.T) {
	s := newTestStore(t)
	s.maxRecent = 3
	for _, q := range []string{"q1", "q2", "q3", "q4"} {
		if err := s.AddRecent(q); err != nil {
			t.Fatalf("AddRecent() error: %v", err)
		}
	}

	recent, err := s.RecentQueries()
	if err != nil {
		t.Fatalf("RecentQueries() error: %v", err)
	}
	want := []string{"q2", "q3", "q4"}
	if len(recent) != len(want) {
		t.Fatalf("got %v, want %v", recent, want)
	}
	for i, q := range want {
		if recent[i] != q {
			t.Errorf("recent[%d] = %q, want %q", i, recent[i], q)
		}
	}
}
