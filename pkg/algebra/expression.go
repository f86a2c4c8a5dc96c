/*
# Module: pkg/algebra/expression.go
Expressions used by FILTER: variables, literals, binary comparisons, and
arithmetic.

Expression.Resolve evaluates an expression against a solution, returning
(term, bound). Comparison resolves through BooleanExpression.Matches,
which Filter consumes. '=' and '!=' compare any two bound terms by value
(rdf.Term.Equal). The ordering operators compare numeric-vs-numeric
numerically and string-vs-string lexicographically; other operand kinds,
and an unbound operand for any operator, produce ErrTypeMismatch, which
Filter swallows by dropping the solution rather than propagating.

Arithmetic (+ - * /) extends the expression grammar per the open question
in the design notes: '*' and '/' bind tighter than '+' and '-'.

## Linked Modules
- [filter](./filter.go) - the node that consumes BooleanExpression

## Tags
algebra, expression, filter

## Exports
Expression, BooleanExpression, VariableExpression, LiteralExpression,
BinaryExpression, ArithmeticExpression, CompareOp, ArithOp, ErrTypeMismatch

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#expression.go> a code:Module ;
    code:name "pkg/algebra/expression.go" ;
    code:description "Variable, literal, comparison, and arithmetic expressions" ;
    code:language "go" ;
    code:layer "algebra" ;
    code:linksTo <./filter.go> ;
    code:exports <#Expression>, <#BooleanExpression>, <#BinaryExpression>, <#ArithmeticExpression> ;
    code:tags "algebra", "expression", "filter" .
<!-- End LinkedDoc RDF -->
*/

package algebra

import (
	"errors"

	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

// ErrTypeMismatch is returned by BooleanExpression.Matches when operands
// are unbound or of incomparable kinds. Filter swallows it.
var ErrTypeMismatch = errors.New("algebra: type mismatch in expression")

// Expression resolves to a term given a solution. Unbound variables
// resolve with ok=false.
type Expression interface {
	Resolve(solution rdf.Solution) (rdf.Term, bool)
}

// BooleanExpression evaluates to a true/false verdict against a
// solution, or fails with ErrTypeMismatch.
type BooleanExpression interface {
	Matches(solution rdf.Solution) (bool, error)
}

// VariableExpression resolves a variable's binding.
type VariableExpression struct {
	Name string
}

func (v VariableExpression) Resolve(solution rdf.Solution) (rdf.Term, bool) {
	return solution.Get(v.Name)
}

// LiteralExpression always resolves to the same term.
type LiteralExpression struct {
	Value rdf.Term
}

func (l LiteralExpression) Resolve(rdf.Solution) (rdf.Term, bool) { return l.Value, true }

// CompareOp is one of the six binary comparison operators.
type CompareOp int

const (
	OpLT CompareOp = iota
	OpLE
	OpGT
	OpGE
	OpEQ
	OpNE
)

// BinaryExpression is a comparison between two operand expressions.
type BinaryExpression struct {
	Left  Expression
	Op    CompareOp
	Right Expression
}

// Matches resolves both operands and applies Op. OpEQ and OpNE use
// rdf.Term.Equal on any two bound terms. The ordering operators compare
// numeric-vs-numeric numerically and string-vs-string lexicographically;
// any other pair is a type mismatch. An unbound operand is a type
// mismatch for every operator.
func (b BinaryExpression) Matches(solution rdf.Solution) (bool, error) {
	lv, lok := b.Left.Resolve(solution)
	rv, rok := b.Right.Resolve(solution)
	if !lok || !rok {
		return false, ErrTypeMismatch
	}

	if b.Op == OpEQ {
		return lv.Equal(rv), nil
	}
	if b.Op == OpNE {
		return !lv.Equal(rv), nil
	}

	if lv.IsNumeric() && rv.IsNumeric() {
		lf, _ := lv.AsFloat64()
		rf, _ := rv.AsFloat64()
		return compareOrdered(lf, rf, b.Op), nil
	}
	if lv.Kind() == rdf.KindString && rv.Kind() == rdf.KindString {
		return compareOrdered(lv.Str(), rv.Str(), b.Op), nil
	}
	return false, ErrTypeMismatch
}

func compareOrdered[T int | float64 | string](l, r T, op CompareOp) bool {
	switch op {
	case OpLT:
		return l < r
	case OpLE:
		return l <= r
	case OpGT:
		return l > r
	case OpGE:
		return l >= r
	default:
		return false
	}
}

// ArithOp is one of the four arithmetic operators.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
)

// ArithmeticExpression combines two numeric-resolving operand
// expressions. It resolves to a Float term; an unbound or non-numeric
// operand resolves to (_, false).
type ArithmeticExpression struct {
	Left  Expression
	Op    ArithOp
	Right Expression
}

func (a ArithmeticExpression) Resolve(solution rdf.Solution) (rdf.Term, bool) {
	lv, lok := a.Left.Resolve(solution)
	rv, rok := a.Right.Resolve(solution)
	if !lok || !rok || !lv.IsNumeric() || !rv.IsNumeric() {
		return rdf.Term{}, false
	}
	lf, _ := lv.AsFloat64()
	rf, _ := rv.AsFloat64()

	switch a.Op {
	case OpAdd:
		return rdf.Float(lf + rf), true
	case OpSub:
		return rdf.Float(lf - rf), true
	case OpMul:
		return rdf.Float(lf * rf), true
	case OpDiv:
		if rf == 0 {
			return rdf.Term{}, false
		}
		return rdf.Float(lf / rf), true
	default:
		return rdf.Term{}, false
	}
}
