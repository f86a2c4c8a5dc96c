/*
# Module: internal/index/index.go
Permutation-keyed triple index.

Index stores arbitrary per-triple payloads under a three-level nested map
keyed by a permutation of (subject, predicate, object). It supports
prefix-bound lookups in permutation order: the classical SPO/POS/OSP
trick for picking an index that matches a pattern's bound-prefix shape.
internal/store wires SPO, POS, and OSP instances of this index into
TripleStore.MatchTriples so ground or partially-bound patterns skip the
full linear scan; patterns with no usable prefix still enumerate a level.

## Linked Modules
- [../../pkg/algebra/pattern](../../pkg/algebra/pattern.go) - TriplePattern the index matches against

## Tags
index, rdf, permutation

## Exports
Index, NewIndex, ErrUnusableIndex

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#index.go> a code:Module ;
    code:name "internal/index/index.go" ;
    code:description "Permutation-keyed triple index" ;
    code:language "go" ;
    code:layer "storage" ;
    code:linksTo <../../pkg/algebra/pattern.go> ;
    code:exports <#Index>, <#NewIndex>, <#ErrUnusableIndex> ;
    code:tags "index", "rdf", "permutation" .
<!-- End LinkedDoc RDF -->
*/

package index

import (
	"errors"
	"fmt"

	"github.com/lilspikey/mini-sparql/pkg/algebra"
	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

// ErrUnusableIndex is returned by Match when the pattern binds a
// position later in the permutation order while an earlier position is
// unbound — the index only supports prefix-bound lookups.
var ErrUnusableIndex = errors.New("index: pattern is not prefix-bound for this permutation")

// Permutation names the three classical triple-index orderings, plus any
// custom ordering of [0,1,2] a caller constructs directly.
type Permutation [3]int

var (
	SPO = Permutation{0, 1, 2}
	POS = Permutation{1, 2, 0}
	OSP = Permutation{2, 0, 1}
)

// Index is a three-level nested map keyed by a permutation of a triple's
// (subject, predicate, object) term positions. The payload type T is the
// caller's choice — internal/store indexes store.Triple values.
type Index[T any] struct {
	perm Permutation
	root map[string]map[string]map[string]T
}

// NewIndex creates an empty index keyed by the given permutation.
func NewIndex[T any](perm Permutation) *Index[T] {
	return &Index[T]{
		perm: perm,
		root: make(map[string]map[string]map[string]T),
	}
}

func termKey(t rdf.Term) string {
	return fmt.Sprintf("%d:%s", t.Kind(), t.String())
}

// Insert stores value under the key (terms[perm[0]], terms[perm[1]], terms[perm[2]]).
func (idx *Index[T]) Insert(terms [3]rdf.Term, value T) {
	k0 := termKey(terms[idx.perm[0]])
	k1 := termKey(terms[idx.perm[1]])
	k2 := termKey(terms[idx.perm[2]])

	level1, ok := idx.root[k0]
	if !ok {
		level1 = make(map[string]map[string]T)
		idx.root[k0] = level1
	}
	level2, ok := level1[k1]
	if !ok {
		level2 = make(map[string]T)
		level1[k1] = level2
	}
	level2[k2] = value
}

// patternKey resolves a pattern element to either a bound term key (ok)
// or reports the position is a variable.
func patternKey(p algebra.TriplePattern, pos int) (string, bool) {
	e := p[pos]
	if e.IsVar {
		return "", false
	}
	return termKey(e.Term), true
}

// Match walks the nested map in permutation order, returning every
// stored value consistent with the pattern. It fails with
// ErrUnusableIndex when a later permutation position is bound while an
// earlier one is unbound — enumerating the earlier level makes a later
// exact-key lookup impossible to apply uniformly.
func (idx *Index[T]) Match(p algebra.TriplePattern) ([]T, error) {
	var out []T

	key0, bound0 := patternKey(p, idx.perm[0])
	key1, bound1 := patternKey(p, idx.perm[1])
	key2, bound2 := patternKey(p, idx.perm[2])

	if !bound0 && (bound1 || bound2) {
		return nil, ErrUnusableIndex
	}
	if !bound1 && bound2 {
		return nil, ErrUnusableIndex
	}

	level0 := idx.root
	level0Keys := []string{key0}
	if !bound0 {
		level0Keys = level0Keys[:0]
		for k := range level0 {
			level0Keys = append(level0Keys, k)
		}
	}

	for _, k0 := range level0Keys {
		level1, ok := level0[k0]
		if !ok {
			continue
		}
		level1Keys := []string{key1}
		if !bound1 {
			level1Keys = level1Keys[:0]
			for k := range level1 {
				level1Keys = append(level1Keys, k)
			}
		}
		for _, k1 := range level1Keys {
			level2, ok := level1[k1]
			if !ok {
				continue
			}
			level2Keys := []string{key2}
			if !bound2 {
				level2Keys = level2Keys[:0]
				for k := range level2 {
					level2Keys = append(level2Keys, k)
				}
			}
			for _, k2 := range level2Keys {
				if v, ok := level2[k2]; ok {
					out = append(out, v)
				}
			}
		}
	}

	return out, nil
}

// Count returns the number of stored values.
func (idx *Index[T]) Count() int {
	n := 0
	for _, l1 := range idx.root {
		for _, l2 := range l1 {
			n += len(l2)
		}
	}
	return n
}
