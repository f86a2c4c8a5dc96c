/*
# Module: pkg/query/query.go
SelectQuery — a parsed query plus the solution-modifier pipeline that
turns its algebra tree into a result table.

Execute runs the pipeline in the fixed order: ORDER BY (materialize and
stable-sort) -> OFFSET/LIMIT (slice) -> projection (restrict to the
selected variables, SELECT * already expanded at parse time) ->
DISTINCT (dedup by the projected tuple). Re-running Execute on the same
SelectQuery re-walks the algebra tree from scratch, so it reflects
whatever the underlying store holds at call time.

## Linked Modules
- [parser](./parser.go) - builds SelectQuery values
- [../algebra](../algebra) - Root is an algebra.Node
- [../rdf](../rdf) - Term/Solution types

## Tags
query, sparql, modifiers

## Exports
SelectQuery, OrderByClause, QueryResult

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#query.go> a code:Module ;
    code:name "pkg/query/query.go" ;
    code:description "SelectQuery and the solution-modifier pipeline" ;
    code:language "go" ;
    code:layer "query" ;
    code:linksTo <./parser.go> ;
    code:exports <#SelectQuery>, <#OrderByClause>, <#QueryResult> ;
    code:tags "query", "sparql", "modifiers" .
<!-- End LinkedDoc RDF -->
*/

package query

import (
	"sort"

	"github.com/lilspikey/mini-sparql/pkg/algebra"
	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

// OrderByClause is one ORDER BY term.
type OrderByClause struct {
	Variable   string
	Descending bool
}

// SelectQuery is a fully parsed SELECT query: its projected variable
// list, its algebra tree, and its solution modifiers.
type SelectQuery struct {
	Distinct  bool
	Variables []string
	Root      algebra.Node
	OrderBy   []OrderByClause
	Limit     *int
	Offset    *int
	Prefixes  map[string]string
}

// QueryResult is the materialized output of a SelectQuery: an ordered
// column list and the rows projected onto it.
type QueryResult struct {
	Variables []string
	Rows      []rdf.Solution
}

// Execute runs the query's algebra tree and applies its solution
// modifiers in spec order.
func (q *SelectQuery) Execute() (*QueryResult, error) {
	rows := rdf.Collect(q.Root.Match(rdf.Solution{}))

	if len(q.OrderBy) > 0 {
		sort.SliceStable(rows, func(i, j int) bool {
			return lessByOrder(rows[i], rows[j], q.OrderBy)
		})
	}

	if q.Offset != nil {
		n := *q.Offset
		if n > len(rows) {
			n = len(rows)
		}
		if n > 0 {
			rows = rows[n:]
		}
	}
	if q.Limit != nil {
		n := *q.Limit
		if n < 0 {
			n = 0
		}
		if n < len(rows) {
			rows = rows[:n]
		}
	}

	projected := make([]rdf.Solution, len(rows))
	for i, row := range rows {
		proj := rdf.Solution{}
		for _, v := range q.Variables {
			if t, ok := row.Get(v); ok {
				proj[v] = t
			}
		}
		projected[i] = proj
	}

	if q.Distinct {
		projected = dedupeSolutions(projected, q.Variables)
	}

	return &QueryResult{Variables: q.Variables, Rows: projected}, nil
}

func lessByOrder(a, b rdf.Solution, clauses []OrderByClause) bool {
	for _, c := range clauses {
		av, _ := a.Get(c.Variable)
		bv, _ := b.Get(c.Variable)
		cmp := compareTerms(av, bv)
		if cmp == 0 {
			continue
		}
		if c.Descending {
			return cmp > 0
		}
		return cmp < 0
	}
	return false
}

// compareTerms orders two terms: numeric-vs-numeric compares
// numerically, otherwise falls back to comparing the textual surface
// form. An unbound term (the zero Term) sorts before any bound value.
func compareTerms(a, b rdf.Term) int {
	aZero, bZero := a == rdf.Term{}, b == rdf.Term{}
	if aZero && bZero {
		return 0
	}
	if aZero {
		return -1
	}
	if bZero {
		return 1
	}
	if a.IsNumeric() && b.IsNumeric() {
		af, _ := a.AsFloat64()
		bf, _ := b.AsFloat64()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	as, bs := a.String(), b.String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func dedupeSolutions(rows []rdf.Solution, vars []string) []rdf.Solution {
	seen := map[string]bool{}
	var out []rdf.Solution
	for _, row := range rows {
		key := rowKey(row, vars)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, row)
	}
	return out
}

func rowKey(row rdf.Solution, vars []string) string {
	key := ""
	for _, v := range vars {
		if t, ok := row.Get(v); ok {
			key += t.String() + "\x1f"
		} else {
			key += "\x00\x1f"
		}
	}
	return key
}
