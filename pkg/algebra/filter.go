/*
# Module: pkg/algebra/filter.go
Filter — evaluates a boolean expression once against the incoming
solution.

Passes the incoming solution through unchanged iff the expression
evaluates truthy; yields nothing otherwise, including when evaluation
fails with a type mismatch (swallowed, not propagated). Filter sits
alongside Pattern as a peer member of a PatternGroup's children, so the
group's join machinery treats it like any other child: a pass-through
contributes one row per driving solution, a drop contributes none.

## Linked Modules
- [expression](./expression.go) - the BooleanExpression Filter evaluates
- [node](./node.go) - shared node contract

## Tags
algebra, filter

## Exports
Filter, NewFilter

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#filter.go> a code:Module ;
    code:name "pkg/algebra/filter.go" ;
    code:description "Boolean-guard algebra node" ;
    code:language "go" ;
    code:layer "algebra" ;
    code:linksTo <./expression.go>, <./node.go> ;
    code:exports <#Filter>, <#NewFilter> ;
    code:tags "algebra", "filter" .
<!-- End LinkedDoc RDF -->
*/

package algebra

import "github.com/lilspikey/mini-sparql/pkg/rdf"

// Filter wraps a boolean expression as an algebra node.
type Filter struct {
	expr BooleanExpression
}

// NewFilter builds a Filter node over expr.
func NewFilter(expr BooleanExpression) *Filter {
	return &Filter{expr: expr}
}

// Match evaluates the expression once; a type mismatch is swallowed.
func (f *Filter) Match(solution rdf.Solution) rdf.Solutions {
	ok, err := f.expr.Matches(solution)
	if err != nil || !ok {
		return rdf.Empty()
	}
	return rdf.Single(solution)
}

// Variables is empty: a Filter binds nothing.
func (f *Filter) Variables() []string { return nil }
