package index_test

import (
	"testing"

	"github.com/lilspikey/mini-sparql/internal/index"
	"github.com/lilspikey/mini-sparql/internal/store"
	"github.com/lilspikey/mini-sparql/pkg/algebra"
	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

func id(s string) rdf.Term { return rdf.Identifier(s) }

func terms(tr store.Triple) [3]rdf.Term {
	return [3]rdf.Term{tr.Subject, tr.Predicate, tr.Object}
}

func TestIndex_InsertThenMatchExactTriple(t *testing.T) {
	for _, perm := range []index.Permutation{index.SPO, index.POS, index.OSP} {
		idx := index.NewIndex[store.Triple](perm)
		tr := store.NewTriple(id("a"), id("name"), rdf.String("name-a"))
		idx.Insert(terms(tr), tr)

		got, err := idx.Match(algebra.TriplePattern{
			algebra.Lit(tr.Subject), algebra.Lit(tr.Predicate), algebra.Lit(tr.Object),
		})
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if len(got) != 1 || !got[0].Equals(tr) {
			t.Errorf("Match() = %v, want [%v]", got, tr)
		}
	}
}

func TestIndex_PrefixBoundSubset(t *testing.T) {
	idx := index.NewIndex[store.Triple](index.SPO)
	a1 := store.NewTriple(id("a"), id("name"), rdf.String("name-a"))
	a2 := store.NewTriple(id("a"), id("weight"), rdf.String("weight-a"))
	b1 := store.NewTriple(id("b"), id("name"), rdf.String("name-b"))
	idx.Insert(terms(a1), a1)
	idx.Insert(terms(a2), a2)
	idx.Insert(terms(b1), b1)

	got, err := idx.Match(algebra.TriplePattern{algebra.Lit(id("a")), algebra.Var("p"), algebra.Var("o")})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Match() returned %d triples, want 2", len(got))
	}
}

func TestIndex_UnusableIndexWhenNonPrefixBound(t *testing.T) {
	idx := index.NewIndex[store.Triple](index.SPO)
	tr := store.NewTriple(id("a"), id("name"), rdf.String("name-a"))
	idx.Insert(terms(tr), tr)

	// Subject (perm position 0) unbound, predicate (position 1) bound:
	// not a prefix-bound lookup for SPO.
	_, err := idx.Match(algebra.TriplePattern{algebra.Var("s"), algebra.Lit(id("name")), algebra.Var("o")})
	if err != index.ErrUnusableIndex {
		t.Errorf("Match() error = %v, want ErrUnusableIndex", err)
	}
}

func TestIndex_AllUnboundEnumeratesEverything(t *testing.T) {
	idx := index.NewIndex[store.Triple](index.POS)
	a := store.NewTriple(id("a"), id("name"), rdf.String("name-a"))
	b := store.NewTriple(id("b"), id("weight"), rdf.String("weight-b"))
	idx.Insert(terms(a), a)
	idx.Insert(terms(b), b)

	got, err := idx.Match(algebra.TriplePattern{algebra.Var("s"), algebra.Var("p"), algebra.Var("o")})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Match() returned %d triples, want 2", len(got))
	}
}
