/*
# Module: pkg/rdf/term.go
Uniform value representation for RDF terms.

Defines the Term type shared by the triple store, the permutation index,
and the algebra/expression evaluator. A Term is one of an IRI, a string
literal, an integer, a floating-point number, a boolean, or a bare
identifier. Equality is value equality; a Term carries no intrinsic
variable-ness — variable-ness lives in pattern elements and expressions,
not in the term itself.

## Linked Modules
- [solution](./solution.go) - variable bindings over terms

## Tags
rdf, value-model, terms

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#term.go> a code:Module ;
    code:name "pkg/rdf/term.go" ;
    code:description "Uniform value representation for RDF terms" ;
    code:language "go" ;
    code:layer "rdf" ;
    code:linksTo <./solution.go> ;
    code:exports <#Term>, <#Kind> ;
    code:tags "rdf", "value-model", "terms" .
<!-- End LinkedDoc RDF -->
*/

package rdf

import (
	"fmt"
	"strconv"
)

// Kind identifies which alternative of the Term sum type a value holds.
type Kind int

const (
	KindIRI Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindIdentifier
)

func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindIdentifier:
		return "identifier"
	default:
		return "unknown"
	}
}

// Term is an RDF term or a query-time literal. The zero Term is not a
// valid term; always construct via the constructors below.
type Term struct {
	kind Kind
	str  string
	i    int64
	f    float64
	b    bool
}

// IRI builds a Term wrapping an absolute or prefix-expanded IRI string.
func IRI(value string) Term { return Term{kind: KindIRI, str: value} }

// String builds a Term wrapping a quoted string literal's content.
func String(value string) Term { return Term{kind: KindString, str: value} }

// Integer builds a Term wrapping a whole number.
func Integer(value int64) Term { return Term{kind: KindInteger, i: value} }

// Float builds a Term wrapping a floating-point number.
func Float(value float64) Term { return Term{kind: KindFloat, f: value} }

// Boolean builds a Term wrapping true/false.
func Boolean(value bool) Term { return Term{kind: KindBoolean, b: value} }

// Identifier builds a Term wrapping a bare, unprefixed identifier (e.g. a
// shorthand subject/object name with no IRI or quoting).
func Identifier(value string) Term { return Term{kind: KindIdentifier, str: value} }

// Kind reports which alternative this term holds.
func (t Term) Kind() Kind { return t.kind }

// Str returns the textual payload for IRI, String, and Identifier terms.
func (t Term) Str() string { return t.str }

// Int returns the payload for Integer terms.
func (t Term) Int() int64 { return t.i }

// Float64 returns the payload for Float terms.
func (t Term) Float64() float64 { return t.f }

// Bool returns the payload for Boolean terms.
func (t Term) Bool() bool { return t.b }

// IsNumeric reports whether the term is an Integer or a Float.
func (t Term) IsNumeric() bool { return t.kind == KindInteger || t.kind == KindFloat }

// AsFloat64 returns the term's numeric value as a float64, for use by
// numeric comparisons and arithmetic. ok is false for non-numeric terms.
func (t Term) AsFloat64() (float64, bool) {
	switch t.kind {
	case KindInteger:
		return float64(t.i), true
	case KindFloat:
		return t.f, true
	default:
		return 0, false
	}
}

// Equal reports value equality between two terms. Terms of different
// kinds are never equal, except that an Integer and a Float comparing the
// same numeric value are equal (SPARQL numeric equality).
func (t Term) Equal(other Term) bool {
	if t.kind == other.kind {
		switch t.kind {
		case KindIRI, KindString, KindIdentifier:
			return t.str == other.str
		case KindInteger:
			return t.i == other.i
		case KindFloat:
			return t.f == other.f
		case KindBoolean:
			return t.b == other.b
		}
	}
	if t.IsNumeric() && other.IsNumeric() {
		lf, _ := t.AsFloat64()
		rf, _ := other.AsFloat64()
		return lf == rf
	}
	return false
}

// String renders a term in its textual surface form, the same form the
// parser would have accepted for a literal of this kind.
func (t Term) String() string {
	switch t.kind {
	case KindIRI:
		return "<" + t.str + ">"
	case KindString:
		return strconv.Quote(t.str)
	case KindInteger:
		return strconv.FormatInt(t.i, 10)
	case KindFloat:
		return strconv.FormatFloat(t.f, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(t.b)
	case KindIdentifier:
		return t.str
	default:
		return fmt.Sprintf("<invalid term kind %d>", t.kind)
	}
}
