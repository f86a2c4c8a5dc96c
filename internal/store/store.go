/*
# Module: internal/store/store.go
In-memory triple store backed by SPO/POS/OSP indexes.

TripleStore holds an insertion-ordered, append-only sequence of triples
for snapshotting and schema introspection, and maintains three
internal/index.Index instances (SPO, POS, OSP) that MatchTriples
consults to resolve a pattern's bound prefix without a full scan.
MatchTriples tries each index in turn and uses the first that accepts
the pattern's bound/unbound shape — one of the three cyclic
permutations always does, since any subset of up to three positions is
cyclically contiguous.

## Linked Modules
- [triple](./triple.go) - triple and pattern types
- [../index/index](../index/index.go) - permutation-keyed index

## Tags
store, rdf, data-structure, matching, index

## Exports
TripleStore, NewTripleStore

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#store.go> a code:Module ;
    code:name "internal/store/store.go" ;
    code:description "In-memory triple store backed by SPO/POS/OSP indexes" ;
    code:language "go" ;
    code:layer "storage" ;
    code:linksTo <./triple.go>, <../index/index.go> ;
    code:exports <#TripleStore>, <#NewTripleStore> ;
    code:tags "store", "rdf", "data-structure", "matching", "index" .
<!-- End LinkedDoc RDF -->
*/

package store

import (
	"fmt"
	"sync"

	"github.com/lilspikey/mini-sparql/internal/index"
	"github.com/lilspikey/mini-sparql/pkg/algebra"
	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

// TripleStore is an append-only, insertion-ordered collection of triples,
// indexed three ways for pattern lookup. Safe for concurrent use between
// queries; mutation during iteration of a result stream produced before
// the mutation is undefined, per the core contract (triples are read
// lazily off a snapshot taken at match time).
type TripleStore struct {
	mu         sync.RWMutex
	triples    []Triple
	generation uint64

	spo *index.Index[Triple]
	pos *index.Index[Triple]
	osp *index.Index[Triple]
}

// NewTripleStore creates an empty store.
func NewTripleStore() *TripleStore {
	return &TripleStore{
		spo: index.NewIndex[Triple](index.SPO),
		pos: index.NewIndex[Triple](index.POS),
		osp: index.NewIndex[Triple](index.OSP),
	}
}

// indexOne inserts t into all three indexes. Callers must hold s.mu.
func (s *TripleStore) indexOne(t Triple) {
	terms := [3]rdf.Term{t.Subject, t.Predicate, t.Object}
	s.spo.Insert(terms, t)
	s.pos.Insert(terms, t)
	s.osp.Insert(terms, t)
}

// AddTriple appends a single triple.
func (s *TripleStore) AddTriple(t Triple) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triples = append(s.triples, t)
	s.indexOne(t)
	s.generation++
}

// Add appends a triple built from the given terms.
func (s *TripleStore) Add(subject, predicate, object rdf.Term) {
	s.AddTriple(NewTriple(subject, predicate, object))
}

// BulkAdd appends many triples at once.
func (s *TripleStore) BulkAdd(triples []Triple) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triples = append(s.triples, triples...)
	for _, t := range triples {
		s.indexOne(t)
	}
	s.generation++
}

// Clear truncates the store, removing every triple.
func (s *TripleStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triples = nil
	s.spo = index.NewIndex[Triple](index.SPO)
	s.pos = index.NewIndex[Triple](index.POS)
	s.osp = index.NewIndex[Triple](index.OSP)
	s.generation++
}

// Count returns the number of stored triples.
func (s *TripleStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.triples)
}

// Generation returns a counter incremented on every mutation, used by
// cache layers to invalidate derived results without tracking diffs.
func (s *TripleStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// All returns a snapshot copy of the stored triples in insertion order.
func (s *TripleStore) All() []Triple {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Triple, len(s.triples))
	copy(out, s.triples)
	return out
}

// MatchTriples implements the store's contract required by the
// evaluator: resolve pattern elements against the incoming solution,
// narrow candidates through whichever of the SPO/POS/OSP indexes
// accepts the resulting bound prefix, and yield, for every passing
// triple, the incoming solution extended with the pattern's variable
// bindings (incoming keys win on conflict).
func (s *TripleStore) MatchTriples(pattern algebra.TriplePattern, solution rdf.Solution) rdf.Solutions {
	candidates := s.candidatesFor(pattern, solution)
	pos := 0
	return rdf.FuncSolutions(func() (rdf.Solution, bool) {
		for pos < len(candidates) {
			t := candidates[pos]
			pos++
			bindings, ok := matchOne(pattern, t, solution)
			if ok {
				return solution.Merge(bindings), true
			}
		}
		return nil, false
	})
}

// candidatesFor resolves the pattern's variables already bound by the
// incoming solution into literal constraints, then asks each index in
// turn for triples consistent with that bound prefix. The first index
// that accepts the shape (doesn't return index.ErrUnusableIndex) wins;
// one always does, since every subset of up to three cyclically-ordered
// positions is a contiguous prefix under some rotation of SPO/POS/OSP.
func (s *TripleStore) candidatesFor(pattern algebra.TriplePattern, solution rdf.Solution) []Triple {
	resolved := resolveAgainstSolution(pattern, solution)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, idx := range [3]*index.Index[Triple]{s.spo, s.pos, s.osp} {
		if triples, err := idx.Match(resolved); err == nil {
			// The index holds each distinct triple once, in map order;
			// re-walk the store so candidates keep insertion order and
			// duplicate triples.
			hit := make(map[Triple]bool, len(triples))
			for _, t := range triples {
				hit[t] = true
			}
			out := make([]Triple, 0, len(triples))
			for _, t := range s.triples {
				if hit[t] {
					out = append(out, t)
				}
			}
			return out
		}
	}

	// Unreachable in practice (see doc comment above); kept as a safe
	// fallback rather than a panic.
	out := make([]Triple, len(s.triples))
	copy(out, s.triples)
	return out
}

// resolveAgainstSolution replaces pattern variables already bound in
// solution with literal elements, so the index sees them as constraints
// rather than wildcards. Variables still unbound by solution pass
// through unchanged; the index then enumerates them.
func resolveAgainstSolution(pattern algebra.TriplePattern, solution rdf.Solution) algebra.TriplePattern {
	var resolved algebra.TriplePattern
	for i, elem := range pattern {
		if elem.IsVar {
			if bound, ok := solution.Get(elem.Name); ok {
				resolved[i] = algebra.Lit(bound)
				continue
			}
		}
		resolved[i] = elem
	}
	return resolved
}

// matchOne compares a single stored triple against the pattern resolved
// through the incoming solution, returning the bindings a match would
// contribute (not yet merged with the incoming solution).
func matchOne(pattern algebra.TriplePattern, t Triple, solution rdf.Solution) (rdf.Solution, bool) {
	bindings := rdf.Solution{}
	for i, elem := range pattern {
		candidate := t.At(i)
		if elem.IsVar {
			if bound, ok := solution.Get(elem.Name); ok {
				if !bound.Equal(candidate) {
					return nil, false
				}
			} else {
				bindings[elem.Name] = candidate
			}
			continue
		}
		if !elem.Term.Equal(candidate) {
			return nil, false
		}
	}
	return bindings, true
}

// Subjects returns the distinct subject terms seen across all triples, in
// first-occurrence order. Used by the REPL/CLI for schema introspection.
func (s *TripleStore) Subjects() []rdf.Term { return s.distinctAt(0) }

// Predicates returns the distinct predicate terms seen across all triples.
func (s *TripleStore) Predicates() []rdf.Term { return s.distinctAt(1) }

// Objects returns the distinct object terms seen across all triples.
func (s *TripleStore) Objects() []rdf.Term { return s.distinctAt(2) }

func (s *TripleStore) distinctAt(pos int) []rdf.Term {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []rdf.Term
	for _, t := range s.triples {
		term := t.At(pos)
		key := fmt.Sprintf("%d:%s", term.Kind(), term.String())
		if !seen[key] {
			seen[key] = true
			out = append(out, term)
		}
	}
	return out
}

// String renders the store as one triple per line, for debugging.
func (s *TripleStore) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := fmt.Sprintf("TripleStore(%d triples)\n", len(s.triples))
	for _, t := range s.triples {
		out += "  " + t.String() + "\n"
	}
	return out
}
