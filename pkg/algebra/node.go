/*
# Module: pkg/algebra/node.go
The algebra node contract.

The node set (Pattern | PatternGroup | OptionalGroup | UnionGroup |
Filter) is closed and finite: a sum type with a single shared operation,
Match. Dispatch is by concrete type, not a class hierarchy. Every node
must satisfy: for any node N and incoming solution S, every S' yielded by
N.Match(S) extends S (S's keys reappear in S' unchanged), except
OptionalGroup's documented zero-match pass-through.

## Linked Modules
- [pattern](./pattern.go) - leaf node against the triple source
- [group](./group.go) - left-deep join node
- [optional](./optional.go) - left-outer-join node
- [union](./union.go) - concatenation node
- [filter](./filter.go) - boolean-guard node

## Tags
algebra, evaluation, query

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#node.go> a code:Module ;
    code:name "pkg/algebra/node.go" ;
    code:description "The algebra node contract" ;
    code:language "go" ;
    code:layer "algebra" ;
    code:linksTo <./pattern.go>, <./group.go>, <./optional.go>, <./union.go>, <./filter.go> ;
    code:exports <#Node> ;
    code:tags "algebra", "evaluation", "query" .
<!-- End LinkedDoc RDF -->
*/

package algebra

import "github.com/lilspikey/mini-sparql/pkg/rdf"

// Node is an algebra evaluation node. Match drives the node with an
// incoming solution and returns a lazy, single-pass stream of extending
// solutions. Variables reports the (possibly duplicate) variable names
// this node can bind, in the order they were first encountered while
// building the tree — used for SELECT * expansion.
type Node interface {
	Match(solution rdf.Solution) rdf.Solutions
	Variables() []string
}
