/*
# Module: pkg/algebra/optional.go
OptionalGroup — left-outer-join over a single child node.

If the child yields at least one solution for the incoming solution,
those are the only solutions yielded. If the child yields none, the
incoming solution itself is yielded unchanged — the one documented
exception to "every yielded solution strictly extends the input".

## Linked Modules
- [node](./node.go) - shared node contract

## Tags
algebra, outer-join, optional

## Exports
OptionalGroup, NewOptionalGroup

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#optional.go> a code:Module ;
    code:name "pkg/algebra/optional.go" ;
    code:description "Left-outer-join algebra node" ;
    code:language "go" ;
    code:layer "algebra" ;
    code:linksTo <./node.go> ;
    code:exports <#OptionalGroup>, <#NewOptionalGroup> ;
    code:tags "algebra", "outer-join", "optional" .
<!-- End LinkedDoc RDF -->
*/

package algebra

import "github.com/lilspikey/mini-sparql/pkg/rdf"

// OptionalGroup wraps a single child node with left-outer-join semantics.
type OptionalGroup struct {
	child Node
}

// NewOptionalGroup builds an OptionalGroup wrapping child.
func NewOptionalGroup(child Node) *OptionalGroup {
	return &OptionalGroup{child: child}
}

// Match drives the child; if it never yields, the fallback is the
// incoming solution, emitted exactly once.
func (o *OptionalGroup) Match(solution rdf.Solution) rdf.Solutions {
	child := o.child.Match(solution)
	matched := false
	done := false

	return rdf.FuncSolutions(func() (rdf.Solution, bool) {
		if done {
			return nil, false
		}
		sol, ok := child.Next()
		if ok {
			matched = true
			return sol, true
		}
		done = true
		if !matched {
			return solution, true
		}
		return nil, false
	})
}

// Variables returns the child's variables.
func (o *OptionalGroup) Variables() []string { return o.child.Variables() }
