/*
# Module: pkg/algebra/group.go
PatternGroup — left-deep nested-loop join over an ordered list of
children.

The first child is driven by the incoming solution; each of its
solutions drives the next child, and so on; the stream yields the
fully-joined solutions in nested-loop order (outer = first child, inner =
last child). A group with no children is the join identity: it yields the
incoming solution once, unchanged.

## Linked Modules
- [node](./node.go) - shared node contract

## Tags
algebra, join, group

## Exports
PatternGroup, NewPatternGroup

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#group.go> a code:Module ;
    code:name "pkg/algebra/group.go" ;
    code:description "Left-deep nested-loop join algebra node" ;
    code:language "go" ;
    code:layer "algebra" ;
    code:linksTo <./node.go> ;
    code:exports <#PatternGroup>, <#NewPatternGroup> ;
    code:tags "algebra", "join", "group" .
<!-- End LinkedDoc RDF -->
*/

package algebra

import "github.com/lilspikey/mini-sparql/pkg/rdf"

// PatternGroup is an ordered sequence of child nodes evaluated as a
// left-deep inner join.
type PatternGroup struct {
	children []Node
}

// NewPatternGroup builds a PatternGroup over the given children, in order.
func NewPatternGroup(children ...Node) *PatternGroup {
	return &PatternGroup{children: children}
}

// Match drives the join as a stack of per-level streams, descending into
// a fresh child stream whenever the current level produces a solution,
// and backtracking to the parent level once a stream is exhausted.
func (g *PatternGroup) Match(solution rdf.Solution) rdf.Solutions {
	if len(g.children) == 0 {
		return rdf.Single(solution)
	}

	streams := make([]rdf.Solutions, len(g.children))
	streams[0] = g.children[0].Match(solution)
	depth := 0

	return rdf.FuncSolutions(func() (rdf.Solution, bool) {
		for {
			sol, ok := streams[depth].Next()
			if !ok {
				if depth == 0 {
					return nil, false
				}
				streams[depth] = nil
				depth--
				continue
			}
			if depth == len(g.children)-1 {
				return sol, true
			}
			depth++
			streams[depth] = g.children[depth].Match(sol)
		}
	})
}

// Variables returns the concatenation of every child's variables, in
// child order, duplicates included.
func (g *PatternGroup) Variables() []string {
	var vars []string
	for _, c := range g.children {
		vars = append(vars, c.Variables()...)
	}
	return vars
}
