/*
# Module: pkg/repl/completer_test.go
Tests for autocomplete functionality.

Tests the completer against a small in-memory triple store.

## Linked Modules
- [completer](./completer.go) - Completer

## Tags
repl, test, autocomplete

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#completer_test.go> a code:Module ;
    code:name "pkg/repl/completer_test.go" ;
    code:description "Tests for autocomplete functionality" ;
    code:language "go" ;
    code:layer "repl" ;
    code:linksTo <./completer.go> ;
    code:tags "repl", "test", "autocomplete" .
<!-- End LinkedDoc RDF -->
*/

package repl

import (
	"testing"

	"github.com/lilspikey/mini-sparql/internal/store"
	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

func TestNewCompleter(t *testing.T) {
	s := createTestStore(t)
	completer := NewCompleter(s)

	if completer == nil {
		t.Fatal("Expected non-nil completer")
	}

	if completer.store != s {
		t.Error("Completer store mismatch")
	}
}

func TestCompleterGetPredicates(t *testing.T) {
	s := createTestStore(t)
	completer := NewCompleter(s)

	predicates := completer.GetPredicates()
	if len(predicates) == 0 {
		t.Error("Expected predicates, got none")
	}

	foundName := false
	foundLayer := false
	for _, pred := range predicates {
		if pred == "name" {
			foundName = true
		}
		if pred == "layer" {
			foundLayer = true
		}
	}

	if !foundName {
		t.Error("Expected 'name' predicate")
	}
	if !foundLayer {
		t.Error("Expected 'layer' predicate")
	}
}

func TestCompleterGetKeywords(t *testing.T) {
	s := createTestStore(t)
	completer := NewCompleter(s)

	keywords := completer.GetKeywords()
	if len(keywords) == 0 {
		t.Error("Expected keywords, got none")
	}

	foundSelect := false
	foundWhere := false
	for _, kw := range keywords {
		if kw == "SELECT" {
			foundSelect = true
		}
		if kw == "WHERE" {
			foundWhere = true
		}
	}

	if !foundSelect {
		t.Error("Expected SELECT keyword")
	}
	if !foundWhere {
		t.Error("Expected WHERE keyword")
	}
}

func TestFilterSuggestions(t *testing.T) {
	suggestions := []string{
		"SELECT",
		"WHERE",
		"SELECT DISTINCT",
		"FILTER",
		"FORMAT",
	}

	tests := []struct {
		prefix   string
		expected int
	}{
		{"", 5},
		{"SEL", 2},
		{"WHERE", 1},
		{"FI", 1},
		{"FOR", 1},
		{"NONEXISTENT", 0},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			filtered := FilterSuggestions(suggestions, tt.prefix)
			if len(filtered) != tt.expected {
				t.Errorf("Expected %d suggestions for prefix '%s', got %d",
					tt.expected, tt.prefix, len(filtered))
			}
		})
	}
}

func TestGetSPARQLKeywords(t *testing.T) {
	keywords := getSPARQLKeywords()
	if len(keywords) == 0 {
		t.Error("Expected SPARQL keywords, got none")
	}

	essentialKeywords := []string{
		"SELECT", "WHERE", "FILTER", "OPTIONAL", "UNION", "LIMIT", "OFFSET",
	}

	keywordMap := make(map[string]bool)
	for _, kw := range keywords {
		keywordMap[kw] = true
	}

	for _, essential := range essentialKeywords {
		if !keywordMap[essential] {
			t.Errorf("Expected essential keyword '%s' not found", essential)
		}
	}
}

// createTestStore creates a small triple store for completer tests
func createTestStore(t *testing.T) *store.TripleStore {
	t.Helper()
	s := store.NewTripleStore()
	s.Add(rdf.Identifier("a"), rdf.Identifier("name"), rdf.String("alice"))
	s.Add(rdf.Identifier("b"), rdf.Identifier("layer"), rdf.String("api"))
	return s
}
