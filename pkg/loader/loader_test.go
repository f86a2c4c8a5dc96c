package loader

import (
	"strings"
	"testing"

	"github.com/lilspikey/mini-sparql/internal/store"
	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

func TestLoad_BareIdentifiersAndLiterals(t *testing.T) {
	input := `
a name "name-a" .
b name "name-b" .
a height 100 .
`
	s := store.NewTripleStore()
	n, err := Load(strings.NewReader(input), s)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if n != 3 {
		t.Fatalf("Load() = %d, want 3", n)
	}
	if s.Count() != 3 {
		t.Fatalf("store has %d triples, want 3", s.Count())
	}
}

func TestLoad_PrefixExpansion(t *testing.T) {
	input := `
@prefix ex: <http://example.org/> .
ex:alice ex:knows ex:bob .
`
	s := store.NewTripleStore()
	n, err := Load(strings.NewReader(input), s)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if n != 1 {
		t.Fatalf("Load() = %d, want 1", n)
	}
	triples := s.All()
	if !triples[0].Subject.Equal(rdf.IRI("http://example.org/alice")) {
		t.Errorf("subject = %v, want expanded IRI", triples[0].Subject)
	}
}

func TestLoad_MixedTermKinds(t *testing.T) {
	input := `<http://example.org/a> <http://example.org/weight> 3.5 .
<http://example.org/a> <http://example.org/active> true .`
	s := store.NewTripleStore()
	n, err := Load(strings.NewReader(input), s)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if n != 2 {
		t.Fatalf("Load() = %d, want 2", n)
	}
	triples := s.All()
	if !triples[0].Object.Equal(rdf.Float(3.5)) {
		t.Errorf("object[0] = %v, want 3.5", triples[0].Object)
	}
	if !triples[1].Object.Equal(rdf.Boolean(true)) {
		t.Errorf("object[1] = %v, want true", triples[1].Object)
	}
}

func TestLoad_UndeclaredPrefixIsAnError(t *testing.T) {
	s := store.NewTripleStore()
	_, err := Load(strings.NewReader("ex:alice ex:knows ex:bob ."), s)
	if err == nil {
		t.Fatal("expected an error for an undeclared prefix")
	}
}

func TestLoad_MalformedStatementStopsButKeepsPriorTriples(t *testing.T) {
	input := `
a name "name-a" .
a weight
`
	s := store.NewTripleStore()
	n, err := Load(strings.NewReader(input), s)
	if err == nil {
		t.Fatal("expected an error for the truncated second statement")
	}
	if n != 1 {
		t.Fatalf("Load() = %d, want 1 (no partial-commit guarantee)", n)
	}
	if s.Count() != 1 {
		t.Fatalf("store has %d triples, want 1", s.Count())
	}
}
