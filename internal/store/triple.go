/*
# Module: internal/store/triple.go
Triple data structure for RDF storage.

Represents a Subject-Predicate-Object triple of rdf.Term values. Pattern
matching types live in pkg/algebra, which the store implements against as
a TripleSource — see store.go.

## Linked Modules
- [store](./store.go) - triple store built on this type

## Tags
store, rdf, data-structure

## Exports
Triple

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#triple.go> a code:Module ;
    code:name "internal/store/triple.go" ;
    code:description "Triple data structure for RDF storage" ;
    code:language "go" ;
    code:layer "storage" ;
    code:linksTo <./store.go> ;
    code:exports <#Triple> ;
    code:tags "store", "rdf", "data-structure" ;
    code:isLeaf true .

<#Triple> a code:Type ;
    code:name "Triple" ;
    code:kind "struct" ;
    code:description "Subject-Predicate-Object triple of terms" ;
    code:hasField <#Triple.Subject>, <#Triple.Predicate>, <#Triple.Object> .
<!-- End LinkedDoc RDF -->
*/

package store

import "github.com/lilspikey/mini-sparql/pkg/rdf"

// Triple is an RDF Subject-Predicate-Object triple of terms.
type Triple struct {
	Subject   rdf.Term
	Predicate rdf.Term
	Object    rdf.Term
}

// NewTriple creates a new triple.
func NewTriple(subject, predicate, object rdf.Term) Triple {
	return Triple{Subject: subject, Predicate: predicate, Object: object}
}

// Equals checks if two triples are equal.
func (t Triple) Equals(other Triple) bool {
	return t.Subject.Equal(other.Subject) &&
		t.Predicate.Equal(other.Predicate) &&
		t.Object.Equal(other.Object)
}

// String returns a string representation of the triple.
func (t Triple) String() string {
	return t.Subject.String() + " " + t.Predicate.String() + " " + t.Object.String()
}

// At returns the term at triple position i (0=subject, 1=predicate, 2=object).
func (t Triple) At(i int) rdf.Term {
	switch i {
	case 0:
		return t.Subject
	case 1:
		return t.Predicate
	default:
		return t.Object
	}
}
