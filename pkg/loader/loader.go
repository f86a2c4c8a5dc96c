/*
# Module: pkg/loader/loader.go
Bulk loader for a Turtle-like triple format: optional "@prefix name:
<iri> ." declarations followed by "term term term ." statements.

Grounded on the original implementation's import_file, which parsed a
dataset file as a flat sequence of (literal, literal, literal, '.')
groups using the same term grammar as its query language. This loader
keeps that shape but does not share a tokenizer with pkg/query: the
dataset format has no variables and a different prologue syntax
('@prefix' rather than 'PREFIX'), so duplicating the small term-scanning
logic here keeps the two parsers independent of each other.

Load has no partial-commit guarantee: a malformed statement after N
good ones leaves the first N already applied to the store.

## Linked Modules
- [../rdf](../rdf) - Term construction
- [../../internal/store](../../internal/store) - destination of loaded triples

## Tags
loader, turtle, ingest

## Exports
Load

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#loader.go> a code:Module ;
    code:name "pkg/loader/loader.go" ;
    code:description "Bulk Turtle-like triple loader" ;
    code:language "go" ;
    code:layer "loader" ;
    code:linksTo <../rdf>, <../../internal/store> ;
    code:exports <#Load> ;
    code:tags "loader", "turtle", "ingest" .
<!-- End LinkedDoc RDF -->
*/

package loader

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/lilspikey/mini-sparql/internal/store"
	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

// LoadError reports the rune offset of a malformed statement.
type LoadError struct {
	Pos int
	Msg string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loader: at position %d: %s", e.Pos, e.Msg)
}

// Load reads Turtle-like statements from r and adds every triple to s,
// returning the count of triples added.
func Load(r io.Reader, s *store.TripleStore) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("loader: read input: %w", err)
	}

	p := &parser{input: []rune(string(data)), prefixes: map[string]string{}}
	count := 0
	for {
		p.skipSpaceAndComments()
		if p.pos >= len(p.input) {
			return count, nil
		}
		if p.peekWord("@prefix") {
			if err := p.parsePrefixDecl(); err != nil {
				return count, err
			}
			continue
		}
		t, err := p.parseStatement()
		if err != nil {
			return count, err
		}
		s.AddTriple(t)
		count++
	}
}

type parser struct {
	input    []rune
	pos      int
	prefixes map[string]string
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) skipSpaceAndComments() {
	for {
		r, ok := p.peek()
		if !ok {
			return
		}
		if unicode.IsSpace(r) {
			p.pos++
			continue
		}
		if r == '#' {
			for {
				c, ok := p.peek()
				if !ok || c == '\n' {
					break
				}
				p.pos++
			}
			continue
		}
		return
	}
}

func (p *parser) peekWord(word string) bool {
	runes := []rune(word)
	if p.pos+len(runes) > len(p.input) {
		return false
	}
	for i, r := range runes {
		if p.input[p.pos+i] != r {
			return false
		}
	}
	return true
}

func (p *parser) parsePrefixDecl() error {
	p.pos += len("@prefix")
	p.skipSpaceAndComments()
	name := p.scanIdent()
	p.skipSpaceAndComments()
	if err := p.expectRune(':'); err != nil {
		return err
	}
	p.skipSpaceAndComments()
	iri, err := p.scanIRI()
	if err != nil {
		return err
	}
	p.skipSpaceAndComments()
	if err := p.expectRune('.'); err != nil {
		return err
	}
	p.prefixes[name] = iri
	return nil
}

func (p *parser) parseStatement() (store.Triple, error) {
	terms := [3]rdf.Term{}
	for i := 0; i < 3; i++ {
		p.skipSpaceAndComments()
		t, err := p.parseTerm()
		if err != nil {
			return store.Triple{}, err
		}
		terms[i] = t
	}
	p.skipSpaceAndComments()
	if err := p.expectRune('.'); err != nil {
		return store.Triple{}, err
	}
	return store.NewTriple(terms[0], terms[1], terms[2]), nil
}

func (p *parser) expectRune(want rune) error {
	r, ok := p.peek()
	if !ok || r != want {
		got := "end of input"
		if ok {
			got = strconv.QuoteRune(r)
		}
		return &LoadError{Pos: p.pos, Msg: fmt.Sprintf("expected %q, got %s", want, got)}
	}
	p.pos++
	return nil
}

func (p *parser) parseTerm() (rdf.Term, error) {
	r, ok := p.peek()
	if !ok {
		return rdf.Term{}, &LoadError{Pos: p.pos, Msg: "expected a term, got end of input"}
	}

	switch {
	case r == '<':
		iri, err := p.scanIRI()
		if err != nil {
			return rdf.Term{}, err
		}
		return rdf.IRI(iri), nil

	case r == '"' || r == '\'':
		s, err := p.scanString(r)
		if err != nil {
			return rdf.Term{}, err
		}
		return rdf.String(s), nil

	case r == '-' || r == '+' || unicode.IsDigit(r):
		return p.scanNumber()

	case isIdentStart(r):
		start := p.pos
		name := p.scanIdent()
		switch strings.ToLower(name) {
		case "true":
			return rdf.Boolean(true), nil
		case "false":
			return rdf.Boolean(false), nil
		}
		if r2, ok := p.peek(); ok && r2 == ':' {
			p.pos++
			local := p.scanIdent()
			base, ok := p.prefixes[name]
			if !ok {
				return rdf.Term{}, &LoadError{Pos: start, Msg: fmt.Sprintf("undeclared prefix %q", name)}
			}
			return rdf.IRI(base + local), nil
		}
		return rdf.Identifier(name), nil

	default:
		return rdf.Term{}, &LoadError{Pos: p.pos, Msg: fmt.Sprintf("unexpected character %q", r)}
	}
}

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

func (p *parser) scanIdent() string {
	start := p.pos
	for {
		r, ok := p.peek()
		if !ok || !isIdentPart(r) {
			break
		}
		p.pos++
	}
	return string(p.input[start:p.pos])
}

func (p *parser) scanIRI() (string, error) {
	if err := p.expectRune('<'); err != nil {
		return "", err
	}
	start := p.pos
	for {
		r, ok := p.peek()
		if !ok {
			return "", &LoadError{Pos: start, Msg: "unterminated IRI"}
		}
		if r == '>' {
			iri := string(p.input[start:p.pos])
			p.pos++
			return iri, nil
		}
		p.pos++
	}
}

func (p *parser) scanString(quote rune) (string, error) {
	p.pos++
	var b strings.Builder
	for {
		r, ok := p.peek()
		if !ok {
			return "", &LoadError{Pos: p.pos, Msg: "unterminated string"}
		}
		if r == quote {
			p.pos++
			return b.String(), nil
		}
		if r == '\\' {
			p.pos++
			esc, ok := p.peek()
			if !ok {
				return "", &LoadError{Pos: p.pos, Msg: "unterminated escape"}
			}
			p.pos++
			switch esc {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			default:
				b.WriteRune(esc)
			}
			continue
		}
		b.WriteRune(r)
		p.pos++
	}
}

func (p *parser) scanNumber() (rdf.Term, error) {
	start := p.pos
	if r, ok := p.peek(); ok && (r == '+' || r == '-') {
		p.pos++
	}
	isFloat := false
	for {
		r, ok := p.peek()
		if !ok || !unicode.IsDigit(r) {
			break
		}
		p.pos++
	}
	if r, ok := p.peek(); ok && r == '.' {
		if next := p.pos + 1; next < len(p.input) && unicode.IsDigit(p.input[next]) {
			isFloat = true
			p.pos++
			for {
				r, ok := p.peek()
				if !ok || !unicode.IsDigit(r) {
					break
				}
				p.pos++
			}
		}
	}
	lit := string(p.input[start:p.pos])
	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return rdf.Term{}, &LoadError{Pos: start, Msg: fmt.Sprintf("invalid float %q", lit)}
		}
		return rdf.Float(f), nil
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return rdf.Term{}, &LoadError{Pos: start, Msg: fmt.Sprintf("invalid integer %q", lit)}
	}
	return rdf.Integer(n), nil
}
