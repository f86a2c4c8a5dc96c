/*
# Module: pkg/rdf/solution.go
Variable bindings and the lazy solution stream contract.

A Solution maps variable name to bound Term. Solutions are immutable at
use sites: Merge always returns a new map. Solutions is the pull-based,
single-pass stream type every algebra node and the triple store produce —
no goroutines or channels, a plain Next() generator.

## Linked Modules
- [term](./term.go) - the Term value type solutions bind to

## Tags
rdf, solution, streaming

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#solution.go> a code:Module ;
    code:name "pkg/rdf/solution.go" ;
    code:description "Variable bindings and lazy solution stream" ;
    code:language "go" ;
    code:layer "rdf" ;
    code:linksTo <./term.go> ;
    code:exports <#Solution>, <#Solutions> ;
    code:tags "rdf", "solution", "streaming" .
<!-- End LinkedDoc RDF -->
*/

package rdf

// Solution maps a variable name (without the leading '?') to its bound
// Term. A missing key means the variable is unbound in this solution.
type Solution map[string]Term

// Get looks up a variable's binding. ok is false when unbound.
func (s Solution) Get(name string) (Term, bool) {
	t, ok := s[name]
	return t, ok
}

// Merge returns a new Solution containing every entry of extra plus every
// entry of s; where both define the same key, s's value wins. This is the
// "incoming solution wins on conflict" rule match_triples and the
// algebra's join semantics both depend on.
func (s Solution) Merge(extra Solution) Solution {
	merged := make(Solution, len(s)+len(extra))
	for k, v := range extra {
		merged[k] = v
	}
	for k, v := range s {
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy, useful when a caller needs to hand out a
// Solution it will not mutate further but the original map might change.
func (s Solution) Clone() Solution {
	c := make(Solution, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Solutions is a single-pass, pull-based stream of solutions. Next
// advances the stream and reports whether a solution is available; once
// it returns false it must keep returning false.
type Solutions interface {
	Next() (Solution, bool)
}

// sliceSolutions adapts a pre-built slice to the Solutions interface.
type sliceSolutions struct {
	items []Solution
	pos   int
}

func (s *sliceSolutions) Next() (Solution, bool) {
	if s.pos >= len(s.items) {
		return nil, false
	}
	item := s.items[s.pos]
	s.pos++
	return item, true
}

// FromSlice returns a Solutions stream that yields each item in order.
func FromSlice(items []Solution) Solutions {
	return &sliceSolutions{items: items}
}

// Single returns a Solutions stream yielding exactly one solution.
func Single(s Solution) Solutions {
	return &sliceSolutions{items: []Solution{s}}
}

// Empty returns a Solutions stream yielding nothing.
func Empty() Solutions {
	return &sliceSolutions{}
}

// Collect drains a Solutions stream into a slice. Intended for the
// modifier stage (ORDER BY, DISTINCT) and test helpers, not for the core
// evaluator's internal plumbing.
func Collect(s Solutions) []Solution {
	var out []Solution
	for {
		sol, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, sol)
	}
}

// FuncSolutions adapts a plain function to the Solutions interface —
// useful for nodes that compute each next solution lazily.
type FuncSolutions func() (Solution, bool)

func (f FuncSolutions) Next() (Solution, bool) { return f() }
