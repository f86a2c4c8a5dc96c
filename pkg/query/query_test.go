package query

import (
	"testing"

	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

func TestSelectQuery_DistinctDedupes(t *testing.T) {
	s := corpusStore()
	sq := mustParse(t, "SELECT DISTINCT ?name WHERE { { ?id name ?name } UNION { ?id2 name ?name } }", s)
	result, err := sq.Execute()
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("got %d distinct rows, want 2", len(result.Rows))
	}
}

func TestSelectQuery_OrderByAscending(t *testing.T) {
	s := corpusStore()
	sq := mustParse(t, "SELECT ?id WHERE { ?id name ?name } ORDER BY ASC(?id)", s)
	result, _ := sq.Execute()
	first, _ := result.Rows[0].Get("id")
	if !first.Equal(rdf.Identifier("a")) {
		t.Errorf("first row id = %v, want a", first)
	}
}

func TestCompareTerms_UnboundSortsFirst(t *testing.T) {
	if compareTerms(rdf.Term{}, rdf.Integer(1)) >= 0 {
		t.Error("unbound term should sort before a bound term")
	}
	if compareTerms(rdf.Integer(1), rdf.Term{}) <= 0 {
		t.Error("bound term should sort after an unbound term")
	}
}

func TestCompareTerms_Numeric(t *testing.T) {
	if compareTerms(rdf.Integer(1), rdf.Float(2.5)) >= 0 {
		t.Error("1 should compare less than 2.5 numerically")
	}
}

func TestSelectQuery_ExecuteReflectsStoreMutation(t *testing.T) {
	s := corpusStore()
	sq := mustParse(t, "SELECT ?id WHERE { ?id name ?name }", s)

	first, _ := sq.Execute()
	if len(first.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(first.Rows))
	}

	s.Add(rdf.Identifier("c"), rdf.Identifier("name"), rdf.String("name-c"))

	second, _ := sq.Execute()
	if len(second.Rows) != 3 {
		t.Fatalf("after mutation got %d rows, want 3", len(second.Rows))
	}
}
