/*
# Module: pkg/repl/completer.go
Autocomplete functionality for REPL.

Provides intelligent autocomplete for SPARQL keywords, store predicates,
and REPL commands with context-aware suggestions.

## Linked Modules
- [repl](./repl.go) - REPL core
- [../../internal/store](../../internal/store) - Triple store

## Tags
repl, autocomplete, completion

## Exports
Completer, NewCompleter

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#completer.go> a code:Module ;
    code:name "pkg/repl/completer.go" ;
    code:description "Autocomplete functionality for REPL" ;
    code:language "go" ;
    code:layer "repl" ;
    code:linksTo <./repl.go>, <../../internal/store> ;
    code:exports <#Completer>, <#NewCompleter> ;
    code:tags "repl", "autocomplete", "completion" .
<!-- End LinkedDoc RDF -->
*/

package repl

import (
	"strings"
	"unicode"

	"github.com/chzyer/readline"

	"github.com/lilspikey/mini-sparql/internal/store"
)

// Completer provides autocomplete functionality
type Completer struct {
	store      *store.TripleStore
	commands   []readline.PrefixCompleterInterface
	keywords   []string
	predicates []string
}

// NewCompleter creates a new completer over the given triple store
func NewCompleter(s *store.TripleStore) *Completer {
	c := &Completer{
		store:    s,
		keywords: getSPARQLKeywords(),
	}

	c.buildPredicateList()
	c.buildCommandList()

	return c
}

// buildCommandList creates the command autocomplete tree
func (c *Completer) buildCommandList() {
	c.commands = []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".format",
			readline.PcItem("table"),
			readline.PcItem("json"),
			readline.PcItem("csv"),
		),
		readline.PcItem(".load"),
		readline.PcItem(".save"),
		readline.PcItem(".history"),
		readline.PcItem(".clear"),
		readline.PcItem(".schema"),
		readline.PcItem(".examples"),
		readline.PcItem(".stats"),
		readline.PcItem(".exit"),
		readline.PcItem(".quit"),

		readline.PcItem("SELECT"),
		readline.PcItem("SELECT DISTINCT"),
		readline.PcItem("WHERE"),
		readline.PcItem("PREFIX"),
		readline.PcItem("FILTER"),
		readline.PcItem("OPTIONAL"),
		readline.PcItem("UNION"),
		readline.PcItem("LIMIT"),
		readline.PcItem("OFFSET"),
		readline.PcItem("ORDER BY"),
		readline.PcItem("ORDER BY ASC"),
		readline.PcItem("ORDER BY DESC"),
		readline.PcItem("DISTINCT"),
	}

	for _, pred := range c.predicates {
		c.commands = append(c.commands, readline.PcItem(pred))
	}
}

// buildPredicateList extracts the distinct predicates currently in the store
func (c *Completer) buildPredicateList() {
	if c.store == nil {
		return
	}
	for _, p := range c.store.Predicates() {
		c.predicates = append(c.predicates, p.String())
	}
}

// GetCompleter returns a readline completer
func (c *Completer) GetCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(c.commands...)
}

// GetAutoCompleteFunc returns a custom autocomplete function for context-aware completion
func (c *Completer) GetAutoCompleteFunc() readline.AutoCompleter {
	return &contextCompleter{c}
}

// contextCompleter implements readline.AutoCompleter for context-aware completion
type contextCompleter struct {
	completer *Completer
}

// Do implements the readline.AutoCompleter interface
func (cc *contextCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line[:pos])

	words := strings.Fields(lineStr)
	if len(words) == 0 {
		return nil, 0
	}

	lastWord := ""
	if pos > 0 && !unicode.IsSpace(rune(line[pos-1])) {
		lastWord = words[len(words)-1]
	}

	var suggestions []string

	if strings.HasPrefix(lastWord, ".") {
		suggestions = []string{
			".help", ".format", ".load", ".save", ".history",
			".clear", ".schema", ".examples", ".stats",
			".exit", ".quit",
		}
	} else if strings.HasPrefix(lastWord, "<") {
		suggestions = append(suggestions, cc.completer.predicates...)
	} else {
		suggestions = cc.completer.keywords
		suggestions = append(suggestions, cc.completer.predicates...)
		suggestions = append(suggestions, ".help", ".format")
	}

	var matches []string
	lowerLast := strings.ToLower(lastWord)
	for _, suggestion := range suggestions {
		if strings.HasPrefix(strings.ToLower(suggestion), lowerLast) {
			matches = append(matches, suggestion)
		}
	}

	if len(matches) == 0 {
		return nil, 0
	}

	length = len(lastWord)

	newLine = make([][]rune, len(matches))
	for i, match := range matches {
		completion := match[len(lastWord):]
		newLine[i] = []rune(completion)
	}

	return newLine, length
}

// getSPARQLKeywords returns the SPARQL keywords this engine implements
func getSPARQLKeywords() []string {
	return []string{
		"SELECT", "WHERE", "PREFIX", "FILTER", "OPTIONAL", "UNION",
		"LIMIT", "OFFSET", "ORDER", "BY", "ASC", "DESC", "DISTINCT",
		"true", "false",
	}
}

// GetPredicates returns the list of predicates
func (c *Completer) GetPredicates() []string {
	return c.predicates
}

// GetKeywords returns SPARQL keywords
func (c *Completer) GetKeywords() []string {
	return c.keywords
}

// FilterSuggestions filters suggestions based on prefix
func FilterSuggestions(suggestions []string, prefix string) []string {
	if prefix == "" {
		return suggestions
	}

	prefix = strings.ToLower(prefix)
	filtered := make([]string, 0)

	for _, suggestion := range suggestions {
		if strings.HasPrefix(strings.ToLower(suggestion), prefix) {
			filtered = append(filtered, suggestion)
		}
	}

	return filtered
}
