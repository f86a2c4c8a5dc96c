/*
# Module: pkg/query/lexer.go
Hand-written lexer for the SPARQL subset grammar.

Scans query text into a flat token stream: keywords (case-insensitive),
punctuation, comparison/arithmetic operators, variables, IRIs, strings,
numbers, booleans, and prefixed/bare identifiers. The parser consumes
this stream directly; there is no intermediate parser-combinator layer.

## Linked Modules
- [parser](./parser.go) - recursive-descent consumer of this token stream

## Tags
query, lexer, sparql

## Exports
Lexer, NewLexer, Token, TokenType

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#lexer.go> a code:Module ;
    code:name "pkg/query/lexer.go" ;
    code:description "Hand-written lexer for the SPARQL subset grammar" ;
    code:language "go" ;
    code:layer "query" ;
    code:linksTo <./parser.go> ;
    code:exports <#Lexer>, <#NewLexer>, <#Token>, <#TokenType> ;
    code:tags "query", "lexer", "sparql" .
<!-- End LinkedDoc RDF -->
*/

package query

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType identifies the lexical class of a Token.
type TokenType int

const (
	TokEOF TokenType = iota
	TokIllegal

	TokVar
	TokIdent
	TokIRI
	TokString
	TokInt
	TokFloat

	keywordBeg
	TokSelect
	TokDistinct
	TokWhere
	TokOptional
	TokUnion
	TokFilter
	TokPrefix
	TokOrder
	TokBy
	TokAsc
	TokDesc
	TokLimit
	TokOffset
	TokTrue
	TokFalse
	keywordEnd

	TokLBrace
	TokRBrace
	TokLParen
	TokRParen
	TokDot
	TokColon
	TokStar

	TokLE
	TokGE
	TokLT
	TokGT
	TokEQ
	TokNE

	TokPlus
	TokMinus
	TokSlash
)

var keywords = map[string]TokenType{
	"select":   TokSelect,
	"distinct": TokDistinct,
	"where":    TokWhere,
	"optional": TokOptional,
	"union":    TokUnion,
	"filter":   TokFilter,
	"prefix":   TokPrefix,
	"order":    TokOrder,
	"by":       TokBy,
	"asc":      TokAsc,
	"desc":     TokDesc,
	"limit":    TokLimit,
	"offset":   TokOffset,
	"true":     TokTrue,
	"false":    TokFalse,
}

var tokenNames = map[TokenType]string{
	TokEOF: "EOF", TokIllegal: "ILLEGAL",
	TokVar: "variable", TokIdent: "identifier", TokIRI: "IRI", TokString: "string",
	TokInt: "integer", TokFloat: "float",
	TokSelect: "SELECT", TokDistinct: "DISTINCT", TokWhere: "WHERE",
	TokOptional: "OPTIONAL", TokUnion: "UNION", TokFilter: "FILTER",
	TokPrefix: "PREFIX", TokOrder: "ORDER", TokBy: "BY", TokAsc: "ASC",
	TokDesc: "DESC", TokLimit: "LIMIT", TokOffset: "OFFSET",
	TokTrue: "true", TokFalse: "false",
	TokLBrace: "'{'", TokRBrace: "'}'", TokLParen: "'('", TokRParen: "')'",
	TokDot: "'.'", TokColon: "':'", TokStar: "'*'",
	TokLE: "'<='", TokGE: "'>='", TokLT: "'<'", TokGT: "'>'", TokEQ: "'='", TokNE: "'!='",
	TokPlus: "'+'", TokMinus: "'-'", TokSlash: "'/'",
}

// String renders a human-readable name for a token type, used in parse
// error messages' "expected" clause.
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", tt)
}

// Token is one lexical unit with its source position (rune offset).
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

// Lexer scans query text into tokens one at a time.
type Lexer struct {
	input []rune
	pos   int
}

// NewLexer creates a Lexer over the given query text.
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos], true
}

func (l *Lexer) peekAt(offset int) (rune, bool) {
	idx := l.pos + offset
	if idx >= len(l.input) {
		return 0, false
	}
	return l.input[idx], true
}

func (l *Lexer) advance() rune {
	r := l.input[l.pos]
	l.pos++
	return r
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		r, ok := l.peek()
		if !ok {
			return
		}
		if unicode.IsSpace(r) {
			l.pos++
			continue
		}
		if r == '#' {
			for {
				c, ok := l.peek()
				if !ok || c == '\n' {
					break
				}
				l.pos++
			}
			continue
		}
		return
	}
}

// Next scans and returns the next token.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespaceAndComments()

	start := l.pos
	r, ok := l.peek()
	if !ok {
		return Token{Type: TokEOF, Pos: start}, nil
	}

	switch {
	case r == '?':
		l.advance()
		name := l.scanIdentRunes()
		if name == "" {
			return Token{}, parseErrorAt(start, "variable name", "bare '?'")
		}
		return Token{Type: TokVar, Literal: name, Pos: start}, nil

	case r == '<':
		if next, ok := l.peekAt(1); ok && next != '=' && !unicode.IsSpace(next) {
			return l.scanIRI(start)
		}
		l.advance()
		if n, ok := l.peek(); ok && n == '=' {
			l.advance()
			return Token{Type: TokLE, Literal: "<=", Pos: start}, nil
		}
		return Token{Type: TokLT, Literal: "<", Pos: start}, nil

	case r == '>':
		l.advance()
		if n, ok := l.peek(); ok && n == '=' {
			l.advance()
			return Token{Type: TokGE, Literal: ">=", Pos: start}, nil
		}
		return Token{Type: TokGT, Literal: ">", Pos: start}, nil

	case r == '=':
		l.advance()
		return Token{Type: TokEQ, Literal: "=", Pos: start}, nil

	case r == '!':
		l.advance()
		if n, ok := l.peek(); ok && n == '=' {
			l.advance()
			return Token{Type: TokNE, Literal: "!=", Pos: start}, nil
		}
		return Token{}, parseErrorAt(start, "'!='", "'!'")

	case r == '{':
		l.advance()
		return Token{Type: TokLBrace, Literal: "{", Pos: start}, nil
	case r == '}':
		l.advance()
		return Token{Type: TokRBrace, Literal: "}", Pos: start}, nil
	case r == '(':
		l.advance()
		return Token{Type: TokLParen, Literal: "(", Pos: start}, nil
	case r == ')':
		l.advance()
		return Token{Type: TokRParen, Literal: ")", Pos: start}, nil
	case r == '.':
		if next, ok := l.peekAt(1); !ok || !unicode.IsDigit(next) {
			l.advance()
			return Token{Type: TokDot, Literal: ".", Pos: start}, nil
		}
		return l.scanNumber(start)
	case r == ':':
		l.advance()
		return Token{Type: TokColon, Literal: ":", Pos: start}, nil
	case r == '*':
		l.advance()
		return Token{Type: TokStar, Literal: "*", Pos: start}, nil
	case r == '/':
		l.advance()
		return Token{Type: TokSlash, Literal: "/", Pos: start}, nil

	case r == '+' || r == '-':
		if next, ok := l.peekAt(1); ok && (unicode.IsDigit(next) || next == '.') {
			return l.scanNumber(start)
		}
		l.advance()
		if r == '+' {
			return Token{Type: TokPlus, Literal: "+", Pos: start}, nil
		}
		return Token{Type: TokMinus, Literal: "-", Pos: start}, nil

	case r == '"' || r == '\'':
		if next1, ok1 := l.peekAt(1); ok1 && next1 == r {
			if next2, ok2 := l.peekAt(2); ok2 && next2 == r {
				return l.scanTripleQuotedString(start, r)
			}
		}
		return l.scanString(start, r)

	case unicode.IsDigit(r):
		return l.scanNumber(start)

	case isIdentStart(r):
		name := l.scanIdentRunes()
		if kw, ok := keywords[strings.ToLower(name)]; ok {
			return Token{Type: kw, Literal: name, Pos: start}, nil
		}
		return Token{Type: TokIdent, Literal: name, Pos: start}, nil

	default:
		l.advance()
		return Token{}, parseErrorAt(start, "a valid token", fmt.Sprintf("%q", r))
	}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

func (l *Lexer) scanIdentRunes() string {
	start := l.pos
	for {
		r, ok := l.peek()
		if !ok || !isIdentPart(r) {
			break
		}
		l.pos++
	}
	return string(l.input[start:l.pos])
}

func (l *Lexer) scanIRI(start int) (Token, error) {
	l.advance() // consume '<'
	contentStart := l.pos
	for {
		r, ok := l.peek()
		if !ok {
			return Token{}, parseErrorAt(start, "closing '>'", "end of input")
		}
		if r == '>' {
			content := string(l.input[contentStart:l.pos])
			l.advance()
			return Token{Type: TokIRI, Literal: content, Pos: start}, nil
		}
		l.pos++
	}
}

func (l *Lexer) scanString(start int, quote rune) (Token, error) {
	l.advance() // consume opening quote
	var b strings.Builder
	for {
		r, ok := l.peek()
		if !ok {
			return Token{}, parseErrorAt(start, "closing quote", "end of input")
		}
		if r == quote {
			l.advance()
			return Token{Type: TokString, Literal: b.String(), Pos: start}, nil
		}
		if r == '\\' {
			l.advance()
			esc, ok := l.peek()
			if !ok {
				return Token{}, parseErrorAt(start, "escape sequence", "end of input")
			}
			l.advance()
			switch esc {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case 'r':
				b.WriteRune('\r')
			default:
				b.WriteRune(esc)
			}
			continue
		}
		b.WriteRune(r)
		l.advance()
	}
}

// scanTripleQuotedString handles '''...''' and """...""" literals, which may
// span newlines and contain unescaped single quotes of the other kind.
func (l *Lexer) scanTripleQuotedString(start int, quote rune) (Token, error) {
	l.advance()
	l.advance()
	l.advance()
	var b strings.Builder
	for {
		r, ok := l.peek()
		if !ok {
			return Token{}, parseErrorAt(start, "closing triple quote", "end of input")
		}
		if r == quote {
			if next1, ok1 := l.peekAt(1); ok1 && next1 == quote {
				if next2, ok2 := l.peekAt(2); ok2 && next2 == quote {
					l.advance()
					l.advance()
					l.advance()
					return Token{Type: TokString, Literal: b.String(), Pos: start}, nil
				}
			}
			b.WriteRune(r)
			l.advance()
			continue
		}
		if r == '\\' {
			l.advance()
			esc, ok := l.peek()
			if !ok {
				return Token{}, parseErrorAt(start, "escape sequence", "end of input")
			}
			l.advance()
			switch esc {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case 'r':
				b.WriteRune('\r')
			default:
				b.WriteRune(esc)
			}
			continue
		}
		b.WriteRune(r)
		l.advance()
	}
}

func (l *Lexer) scanNumber(start int) (Token, error) {
	if r, ok := l.peek(); ok && (r == '+' || r == '-') {
		l.advance()
	}
	isFloat := false
	for {
		r, ok := l.peek()
		if !ok || !unicode.IsDigit(r) {
			break
		}
		l.advance()
	}
	if r, ok := l.peek(); ok && r == '.' {
		if next, nok := l.peekAt(1); nok && unicode.IsDigit(next) {
			isFloat = true
			l.advance()
			for {
				r, ok := l.peek()
				if !ok || !unicode.IsDigit(r) {
					break
				}
				l.advance()
			}
		}
	}
	if r, ok := l.peek(); ok && (r == 'e' || r == 'E') {
		isFloat = true
		l.advance()
		if r, ok := l.peek(); ok && (r == '+' || r == '-') {
			l.advance()
		}
		for {
			r, ok := l.peek()
			if !ok || !unicode.IsDigit(r) {
				break
			}
			l.advance()
		}
	}

	lit := string(l.input[start:l.pos])
	if isFloat {
		return Token{Type: TokFloat, Literal: lit, Pos: start}, nil
	}
	return Token{Type: TokInt, Literal: lit, Pos: start}, nil
}

// runeWidth returns the byte length of the first pos runes of input,
// converting a rune offset into a byte offset. ParseError positions are
// rune offsets; nothing in the package calls this conversion.
func runeWidth(input []rune, pos int) int {
	width := 0
	for i := 0; i < pos && i < len(input); i++ {
		width += utf8.RuneLen(input[i])
	}
	return width
}
