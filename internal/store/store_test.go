package store

import (
	"testing"

	"github.com/lilspikey/mini-sparql/pkg/algebra"
	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

func id(s string) rdf.Term { return rdf.Identifier(s) }

func TestTripleStore_Add(t *testing.T) {
	s := NewTripleStore()

	s.Add(id("subject1"), id("predicate1"), id("object1"))
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}

	// Adding the same triple again is not deduplicated.
	s.Add(id("subject1"), id("predicate1"), id("object1"))
	if s.Count() != 2 {
		t.Errorf("Count() after duplicate add = %d, want 2", s.Count())
	}
}

func TestTripleStore_AddTriple(t *testing.T) {
	s := NewTripleStore()

	s.AddTriple(NewTriple(id("subject1"), id("predicate1"), id("object1")))
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
}

func TestTripleStore_BulkAdd(t *testing.T) {
	s := NewTripleStore()

	triples := []Triple{
		NewTriple(id("s1"), id("p1"), id("o1")),
		NewTriple(id("s1"), id("p2"), id("o2")),
		NewTriple(id("s2"), id("p1"), id("o3")),
	}
	s.BulkAdd(triples)

	if s.Count() != 3 {
		t.Errorf("Count() = %d, want 3", s.Count())
	}
}

func TestTripleStore_Clear(t *testing.T) {
	s := NewTripleStore()
	s.Add(id("s"), id("p"), id("o"))
	before := s.Generation()
	s.Clear()
	if s.Count() != 0 {
		t.Errorf("Count() after Clear() = %d, want 0", s.Count())
	}
	if s.Generation() == before {
		t.Errorf("Generation() did not advance across Clear()")
	}
}

func TestTripleStore_MatchTriples(t *testing.T) {
	s := NewTripleStore()
	s.Add(id("a"), id("name"), rdf.String("name-a"))
	s.Add(id("b"), id("name"), rdf.String("name-b"))
	s.Add(id("a"), id("weight"), rdf.String("weight-a"))
	s.Add(id("b"), id("size"), rdf.String("size-b"))
	s.Add(id("a"), id("height"), rdf.Integer(100))

	tests := []struct {
		name      string
		pattern   algebra.TriplePattern
		wantCount int
	}{
		{
			name:      "find all",
			pattern:   algebra.TriplePattern{algebra.Var("s"), algebra.Var("p"), algebra.Var("o")},
			wantCount: 5,
		},
		{
			name:      "bound predicate",
			pattern:   algebra.TriplePattern{algebra.Var("id"), algebra.Lit(id("name")), algebra.Var("name")},
			wantCount: 2,
		},
		{
			name:      "bound subject and predicate",
			pattern:   algebra.TriplePattern{algebra.Lit(id("a")), algebra.Lit(id("name")), algebra.Var("name")},
			wantCount: 1,
		},
		{
			name:      "no match",
			pattern:   algebra.TriplePattern{algebra.Var("id"), algebra.Lit(id("missing")), algebra.Var("v")},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rdf.Collect(s.MatchTriples(tt.pattern, rdf.Solution{}))
			if len(got) != tt.wantCount {
				t.Errorf("MatchTriples() returned %d solutions, want %d", len(got), tt.wantCount)
			}
		})
	}
}

func TestTripleStore_MatchTriples_BoundVariableConstrainsMatch(t *testing.T) {
	s := NewTripleStore()
	s.Add(id("a"), id("name"), rdf.String("name-a"))
	pattern := algebra.TriplePattern{algebra.Var("id"), algebra.Lit(id("name")), algebra.Var("name")}

	// A variable bound by the incoming solution is matched as its value,
	// so a triple disagreeing with it is rejected rather than rebinding it.
	conflicting := rdf.Solution{"name": rdf.String("already-bound")}
	if got := rdf.Collect(s.MatchTriples(pattern, conflicting)); len(got) != 0 {
		t.Fatalf("expected 0 solutions for a conflicting binding, got %d", len(got))
	}

	incoming := rdf.Solution{"name": rdf.String("name-a")}
	got := rdf.Collect(s.MatchTriples(pattern, incoming))

	if len(got) != 1 {
		t.Fatalf("expected 1 solution, got %d", len(got))
	}
	if v, _ := got[0].Get("name"); !v.Equal(rdf.String("name-a")) {
		t.Errorf("incoming binding was overwritten: got %v", v)
	}
	if bound, ok := got[0].Get("id"); !ok || !bound.Equal(id("a")) {
		t.Errorf("expected id bound to 'a', got %v ok=%v", bound, ok)
	}
}

func TestTripleStore_DistinctTerms(t *testing.T) {
	s := NewTripleStore()
	s.Add(id("a"), id("name"), rdf.String("name-a"))
	s.Add(id("b"), id("name"), rdf.String("name-b"))
	s.Add(id("a"), id("weight"), rdf.String("weight-a"))

	if got := len(s.Subjects()); got != 2 {
		t.Errorf("Subjects() returned %d, want 2", got)
	}
	if got := len(s.Predicates()); got != 2 {
		t.Errorf("Predicates() returned %d, want 2", got)
	}
	if got := len(s.Objects()); got != 3 {
		t.Errorf("Objects() returned %d, want 3", got)
	}
}
