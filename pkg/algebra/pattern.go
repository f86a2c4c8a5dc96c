/*
# Module: pkg/algebra/pattern.go
Pattern — the leaf algebra node matching a triple pattern against a
triple source.

Pattern is the only node that touches storage; it delegates to a
TripleSource, decoupling the algebra from any concrete store
implementation (internal/store.TripleStore implements TripleSource).

## Linked Modules
- [node](./node.go) - shared node contract

## Tags
algebra, pattern, triple-source

## Exports
Pattern, TriplePattern, Element, TripleSource, NewPattern

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#pattern.go> a code:Module ;
    code:name "pkg/algebra/pattern.go" ;
    code:description "Leaf algebra node matching a triple pattern" ;
    code:language "go" ;
    code:layer "algebra" ;
    code:linksTo <./node.go> ;
    code:exports <#Pattern>, <#TriplePattern>, <#Element>, <#TripleSource>, <#NewPattern> ;
    code:tags "algebra", "pattern", "triple-source" .
<!-- End LinkedDoc RDF -->
*/

package algebra

import "github.com/lilspikey/mini-sparql/pkg/rdf"

// Element is one position of a TriplePattern: a variable or a literal term.
type Element struct {
	IsVar bool
	Name  string
	Term  rdf.Term
}

// Var builds a variable pattern element.
func Var(name string) Element { return Element{IsVar: true, Name: name} }

// Lit builds a literal pattern element.
func Lit(t rdf.Term) Element { return Element{Term: t} }

// TriplePattern is a triple of pattern elements.
type TriplePattern [3]Element

// Variables returns the variable names appearing in the pattern, in
// subject/predicate/object order, duplicates included.
func (p TriplePattern) Variables() []string {
	var vars []string
	for _, e := range p {
		if e.IsVar {
			vars = append(vars, e.Name)
		}
	}
	return vars
}

// TripleSource is the interface the core evaluator depends on for
// storage: a single match(pattern, solution) -> stream<solution>
// primitive, per the core's external-collaborator contract.
type TripleSource interface {
	MatchTriples(pattern TriplePattern, solution rdf.Solution) rdf.Solutions
}

// Pattern is a triple pattern evaluated against a TripleSource.
type Pattern struct {
	pattern TriplePattern
	source  TripleSource
}

// NewPattern builds a Pattern node.
func NewPattern(p TriplePattern, source TripleSource) *Pattern {
	return &Pattern{pattern: p, source: source}
}

// Match delegates to the triple source.
func (p *Pattern) Match(solution rdf.Solution) rdf.Solutions {
	return p.source.MatchTriples(p.pattern, solution)
}

// Variables returns the pattern's variable names.
func (p *Pattern) Variables() []string { return p.pattern.Variables() }
