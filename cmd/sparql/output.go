/*
# Module: cmd/sparql/output.go
Output formatting utilities for the query command.

Provides table formatting for query results using go-pretty.

## Linked Modules
- [cmd_query](./cmd_query.go) - Query command
- [../../pkg/query](../../pkg/query/query.go) - Query engine

## Tags
cli, output, formatting, table

## Exports
formatTable

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#output.go> a code:Module ;

	code:name "cmd/sparql/output.go" ;
	code:description "Output formatting utilities for the query command" ;
	code:language "go" ;
	code:layer "cli" ;
	code:linksTo <./cmd_query.go>, <../../pkg/query/query.go> ;
	code:exports <#formatTable> ;
	code:tags "cli", "output", "formatting", "table" .

<!-- End LinkedDoc RDF -->
*/
package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lilspikey/mini-sparql/pkg/query"
)

// formatTable formats query results as a pretty table
func formatTable(result *query.QueryResult) (string, error) {
	if len(result.Rows) == 0 {
		return "No results found.", nil
	}

	t := table.NewWriter()

	header := make(table.Row, len(result.Variables))
	for i, variable := range result.Variables {
		header[i] = variable
	}
	t.AppendHeader(header)

	for _, row := range result.Rows {
		tableRow := make(table.Row, len(result.Variables))
		for i, variable := range result.Variables {
			if term, ok := row.Get(variable); ok {
				tableRow[i] = term.String()
			} else {
				tableRow[i] = ""
			}
		}
		t.AppendRow(tableRow)
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false

	return t.Render(), nil
}
