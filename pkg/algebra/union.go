/*
# Module: pkg/algebra/union.go
UnionGroup — pure concatenation of two children's solution streams.

No reshaping, no deduplication: UnionGroup(A, B).Match(S) yields every
solution of A.Match(S), then every solution of B.Match(S). A solution
from one branch that leaves a variable bound only on the other branch
simply omits that key — the modifier stage's projection fills the gap
with null, it is not UnionGroup's job to pad.

## Linked Modules
- [node](./node.go) - shared node contract

## Tags
algebra, union, concatenation

## Exports
UnionGroup, NewUnionGroup

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#union.go> a code:Module ;
    code:name "pkg/algebra/union.go" ;
    code:description "Concatenation algebra node" ;
    code:language "go" ;
    code:layer "algebra" ;
    code:linksTo <./node.go> ;
    code:exports <#UnionGroup>, <#NewUnionGroup> ;
    code:tags "algebra", "union", "concatenation" .
<!-- End LinkedDoc RDF -->
*/

package algebra

import "github.com/lilspikey/mini-sparql/pkg/rdf"

// UnionGroup concatenates two children's solution streams.
type UnionGroup struct {
	left, right Node
}

// NewUnionGroup builds a UnionGroup of left and right.
func NewUnionGroup(left, right Node) *UnionGroup {
	return &UnionGroup{left: left, right: right}
}

// Match drains left entirely before pulling from right.
func (u *UnionGroup) Match(solution rdf.Solution) rdf.Solutions {
	left := u.left.Match(solution)
	right := u.right.Match(solution)
	onLeft := true

	return rdf.FuncSolutions(func() (rdf.Solution, bool) {
		if onLeft {
			if sol, ok := left.Next(); ok {
				return sol, true
			}
			onLeft = false
		}
		return right.Next()
	})
}

// Variables returns the left child's variables followed by the right
// child's, duplicates included — consistent with Variables being a
// "can bind" superset used only for SELECT * expansion.
func (u *UnionGroup) Variables() []string {
	return append(append([]string{}, u.left.Variables()...), u.right.Variables()...)
}
