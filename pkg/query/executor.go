/*
# Module: pkg/query/executor.go
Top-level façade: parse query text against a triple source and execute
it in one call.

## Linked Modules
- [parser](./parser.go) - Parse
- [query](./query.go) - SelectQuery.Execute

## Tags
query, sparql, facade

## Exports
Run

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .

<#executor.go> a code:Module ;
    code:name "pkg/query/executor.go" ;
    code:description "Parse-and-execute facade" ;
    code:language "go" ;
    code:layer "query" ;
    code:linksTo <./parser.go>, <./query.go> ;
    code:exports <#Run> ;
    code:tags "query", "sparql", "facade" .
<!-- End LinkedDoc RDF -->
*/

package query

import (
	"fmt"

	"github.com/lilspikey/mini-sparql/pkg/algebra"
)

// Run parses text against source and executes the resulting query.
func Run(text string, source algebra.TripleSource) (*QueryResult, error) {
	sq, err := Parse(text, source)
	if err != nil {
		return nil, fmt.Errorf("query: parse: %w", err)
	}
	result, err := sq.Execute()
	if err != nil {
		return nil, fmt.Errorf("query: execute: %w", err)
	}
	return result, nil
}
