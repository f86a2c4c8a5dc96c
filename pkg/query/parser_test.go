package query

import (
	"testing"

	"github.com/lilspikey/mini-sparql/internal/store"
	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

// corpusStore builds the five-triple corpus used throughout the design
// notes: (a,name,name-a) (b,name,name-b) (a,weight,weight-a)
// (b,size,size-b) (a,height,100).
func corpusStore() *store.TripleStore {
	s := store.NewTripleStore()
	id := rdf.Identifier
	s.Add(id("a"), id("name"), rdf.String("name-a"))
	s.Add(id("b"), id("name"), rdf.String("name-b"))
	s.Add(id("a"), id("weight"), rdf.String("weight-a"))
	s.Add(id("b"), id("size"), rdf.String("size-b"))
	s.Add(id("a"), id("height"), rdf.Integer(100))
	return s
}

func mustParse(t *testing.T, text string, s *store.TripleStore) *SelectQuery {
	t.Helper()
	sq, err := Parse(text, s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}
	return sq
}

func TestParse_SimplePattern(t *testing.T) {
	s := corpusStore()
	sq := mustParse(t, "SELECT ?id ?name WHERE { ?id name ?name }", s)
	result, err := sq.Execute()
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(result.Rows))
	}
}

func TestParse_JoinedPatterns(t *testing.T) {
	s := corpusStore()
	sq := mustParse(t, "SELECT ?id WHERE { ?id name ?name . ?id weight ?weight }", s)
	result, err := sq.Execute()
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(result.Rows))
	}
	idVal, _ := result.Rows[0].Get("id")
	if !idVal.Equal(rdf.Identifier("a")) {
		t.Errorf("id = %v, want a", idVal)
	}
}

func TestParse_Union(t *testing.T) {
	s := corpusStore()
	sq := mustParse(t, "SELECT ?id WHERE { { ?id name ?name } UNION { ?id weight ?weight } }", s)
	result, err := sq.Execute()
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(result.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(result.Rows))
	}
}

func TestParse_ChainedOptional(t *testing.T) {
	s := corpusStore()
	sq := mustParse(t, "SELECT ?id ?weight ?size WHERE { ?id name ?value OPTIONAL { ?id weight ?weight } OPTIONAL { ?id size ?size } }", s)
	result, err := sq.Execute()
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(result.Rows))
	}
	for _, row := range result.Rows {
		idVal, _ := row.Get("id")
		if idVal.Equal(rdf.Identifier("a")) {
			if w, ok := row.Get("weight"); !ok || !w.Equal(rdf.String("weight-a")) {
				t.Errorf("a: expected weight bound to weight-a, got %v ok=%v", w, ok)
			}
			if _, ok := row.Get("size"); ok {
				t.Errorf("a: expected size unbound")
			}
		}
	}
}

func TestParse_Filter(t *testing.T) {
	s := corpusStore()
	over99 := mustParse(t, "SELECT ?id WHERE { ?id height ?height FILTER(?height > 99) }", s)
	result, _ := over99.Execute()
	if len(result.Rows) != 1 {
		t.Fatalf("height > 99: got %d rows, want 1", len(result.Rows))
	}

	over100 := mustParse(t, "SELECT ?id WHERE { ?id height ?height FILTER(?height > 100) }", s)
	result, _ = over100.Execute()
	if len(result.Rows) != 0 {
		t.Fatalf("height > 100: got %d rows, want 0", len(result.Rows))
	}
}

func TestParse_FilterArithmetic(t *testing.T) {
	s := corpusStore()
	sq := mustParse(t, "SELECT ?id WHERE { ?id height ?height FILTER(?height > 90 + 5) }", s)
	result, err := sq.Execute()
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(result.Rows))
	}
}

func TestParse_SelectStar(t *testing.T) {
	s := corpusStore()
	sq := mustParse(t, "SELECT * WHERE { ?id name ?name }", s)
	if len(sq.Variables) != 2 {
		t.Fatalf("SELECT * expanded to %v, want 2 variables", sq.Variables)
	}
}

func TestParse_PrefixExpansion(t *testing.T) {
	s := store.NewTripleStore()
	s.Add(rdf.IRI("http://example.org/alice"), rdf.IRI("http://example.org/knows"), rdf.IRI("http://example.org/bob"))

	sq := mustParse(t, "PREFIX ex: <http://example.org/> SELECT ?s ?o WHERE { ?s ex:knows ?o }", s)
	result, err := sq.Execute()
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(result.Rows))
	}
	sVal, _ := result.Rows[0].Get("s")
	if !sVal.Equal(rdf.IRI("http://example.org/alice")) {
		t.Errorf("s = %v, want ex:alice expanded", sVal)
	}
}

func TestParse_UndeclaredPrefixIsKeptVerbatim(t *testing.T) {
	s := corpusStore()
	sq := mustParse(t, "SELECT ?s WHERE { ?s ex:knows ?o }", s)
	result, err := sq.Execute()
	if err != nil {
		t.Fatalf("unexpected error executing query with undeclared prefix: %v", err)
	}
	if len(result.Rows) != 0 {
		t.Fatalf("expected no matches for the opaque literal ex:knows, got %d rows", len(result.Rows))
	}
}

func TestParse_MissingWhereIsAnError(t *testing.T) {
	s := corpusStore()
	_, err := Parse("SELECT ?id", s)
	if err == nil {
		t.Fatal("expected an error for a missing WHERE clause")
	}
}

func TestParse_DistinctKeyword(t *testing.T) {
	s := corpusStore()
	sq := mustParse(t, "SELECT DISTINCT ?name WHERE { ?id name ?name }", s)
	if !sq.Distinct {
		t.Error("expected Distinct to be true")
	}
}

func TestParse_LimitOffsetOrderBy(t *testing.T) {
	s := corpusStore()
	sq := mustParse(t, "SELECT ?id WHERE { ?id name ?name } ORDER BY DESC(?id) LIMIT 1 OFFSET 0", s)
	if sq.Limit == nil || *sq.Limit != 1 {
		t.Errorf("Limit = %v, want 1", sq.Limit)
	}
	if sq.Offset == nil || *sq.Offset != 0 {
		t.Errorf("Offset = %v, want 0", sq.Offset)
	}
	if len(sq.OrderBy) != 1 || sq.OrderBy[0].Variable != "id" || !sq.OrderBy[0].Descending {
		t.Fatalf("OrderBy = %+v", sq.OrderBy)
	}
	result, err := sq.Execute()
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(result.Rows))
	}
	idVal, _ := result.Rows[0].Get("id")
	if !idVal.Equal(rdf.Identifier("b")) {
		t.Errorf("id = %v, want b (ORDER BY DESC then LIMIT 1)", idVal)
	}
}

func TestParse_OffsetBeforeLimit(t *testing.T) {
	s := corpusStore()
	sq := mustParse(t, "SELECT ?id WHERE { ?id name ?name } ORDER BY DESC(?id) OFFSET 0 LIMIT 1", s)
	if sq.Offset == nil || *sq.Offset != 0 {
		t.Errorf("Offset = %v, want 0", sq.Offset)
	}
	if sq.Limit == nil || *sq.Limit != 1 {
		t.Errorf("Limit = %v, want 1", sq.Limit)
	}
	result, err := sq.Execute()
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(result.Rows))
	}
	idVal, _ := result.Rows[0].Get("id")
	if !idVal.Equal(rdf.Identifier("b")) {
		t.Errorf("id = %v, want b (ORDER BY DESC then OFFSET 0 LIMIT 1)", idVal)
	}
}
