/*
# Module: pkg/query/parser.go
Recursive-descent parser over the Lexer's token stream.

Builds a pkg/algebra node tree plus a SelectQuery directly — there is no
separate untyped AST stage. PREFIX declarations are resolved to full
IRIs at parse time: a prefixed term like ex:Person is rewritten to an
IRI term before it ever reaches the algebra, never deferred to
evaluation.

Grammar (case-insensitive keywords):

	Query          := Prologue 'SELECT' 'DISTINCT'? (Var+ | '*') 'WHERE' Group Modifiers
	Prologue       := ('PREFIX' IDENT ':' IRI)*
	Group          := '{' GroupBody '}'
	GroupBody      := Member*
	Member         := TriplePattern '.'?
	                | 'OPTIONAL' Group
	                | Group ('UNION' Group)*
	                | 'FILTER' '(' BoolExpr ')'
	TriplePattern  := Term Term Term
	Term           := Var | IRI | String | Int | Float | 'true' | 'false' | IDENT (':' IDENT)?
	BoolExpr       := ArithExpr CompareOp ArithExpr
	ArithExpr      := Mul (('+'|'-') Mul)*
	Mul            := Primary (('*'|'/') Primary)*
	Primary        := Var | Int | Float | String | 'true' | 'false' | '(' ArithExpr ')'
	Modifiers      := ('ORDER' 'BY' OrderTerm+)? (('LIMIT' Int ('OFFSET' Int)?) | ('OFFSET' Int ('LIMIT' Int)?))?
	OrderTerm      := ('ASC' '(' Var ')' | 'DESC' '(' Var ')' | Var)

## Linked Modules
- [lexer](./lexer.go) - token source
- [query](./query.go) - SelectQuery / OrderByClause produced here
- [../algebra](../algebra) - node tree built here

## Tags
query, parser, sparql, recursive-descent

## Exports
Parse

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#parser.go> a code:Module ;
    code:name "pkg/query/parser.go" ;
    code:description "Recursive-descent SPARQL-subset parser" ;
    code:language "go" ;
    code:layer "query" ;
    code:linksTo <./lexer.go>, <./query.go> ;
    code:exports <#Parse> ;
    code:tags "query", "parser", "sparql", "recursive-descent" .
<!-- End LinkedDoc RDF -->
*/

package query

import (
	"strconv"

	"github.com/lilspikey/mini-sparql/pkg/algebra"
	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

type parser struct {
	lex      *Lexer
	cur      Token
	prefixes map[string]string
	source   algebra.TripleSource
}

// Parse parses SPARQL-subset query text into a SelectQuery, resolving
// triple patterns against source. source is typically a *store.TripleStore.
func Parse(text string, source algebra.TripleSource) (*SelectQuery, error) {
	p := &parser{lex: NewLexer(text), prefixes: map[string]string{}, source: source}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseQuery()
}

func (p *parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) expect(tt TokenType) (Token, error) {
	if p.cur.Type != tt {
		return Token{}, parseErrorAt(p.cur.Pos, tt.String(), describeToken(p.cur))
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func describeToken(t Token) string {
	if t.Type == TokEOF {
		return "end of query"
	}
	if t.Literal != "" {
		return strconv.Quote(t.Literal)
	}
	return t.Type.String()
}

func (p *parser) parseQuery() (*SelectQuery, error) {
	if err := p.parsePrologue(); err != nil {
		return nil, err
	}

	if _, err := p.expect(TokSelect); err != nil {
		return nil, err
	}
	distinct := false
	if p.cur.Type == TokDistinct {
		distinct = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	selectStar := false
	var explicitVars []string
	if p.cur.Type == TokStar {
		selectStar = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else {
		for p.cur.Type == TokVar {
			explicitVars = append(explicitVars, p.cur.Literal)
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if len(explicitVars) == 0 {
			return nil, parseErrorAt(p.cur.Pos, "a variable or '*'", describeToken(p.cur))
		}
	}

	if _, err := p.expect(TokWhere); err != nil {
		return nil, err
	}
	root, err := p.parseGroup()
	if err != nil {
		return nil, err
	}

	sq := &SelectQuery{
		Distinct: distinct,
		Root:     root,
		Prefixes: p.prefixes,
	}
	if selectStar {
		sq.Variables = dedupFirstOccurrence(root.Variables())
	} else {
		sq.Variables = explicitVars
	}

	if err := p.parseModifiers(sq); err != nil {
		return nil, err
	}
	if p.cur.Type != TokEOF {
		return nil, parseErrorAt(p.cur.Pos, "end of query", describeToken(p.cur))
	}
	return sq, nil
}

func (p *parser) parsePrologue() error {
	for p.cur.Type == TokPrefix {
		if err := p.advance(); err != nil {
			return err
		}
		name, err := p.expect(TokIdent)
		if err != nil {
			return err
		}
		if _, err := p.expect(TokColon); err != nil {
			return err
		}
		iri, err := p.expect(TokIRI)
		if err != nil {
			return err
		}
		p.prefixes[name.Literal] = iri.Literal
	}
	return nil
}

// parseGroup parses '{' GroupBody '}', folding every member into one
// PatternGroup: triple patterns, OPTIONAL, UNION-chained subgroups, and
// FILTER all become peer children, matching the algebra's existing
// left-join/pass-through semantics for those node kinds.
func (p *parser) parseGroup() (algebra.Node, error) {
	if _, err := p.expect(TokLBrace); err != nil {
		return nil, err
	}

	var members []algebra.Node
	for p.cur.Type != TokRBrace {
		switch p.cur.Type {
		case TokOptional:
			if err := p.advance(); err != nil {
				return nil, err
			}
			inner, err := p.parseGroup()
			if err != nil {
				return nil, err
			}
			members = append(members, algebra.NewOptionalGroup(inner))

		case TokFilter:
			if err := p.advance(); err != nil {
				return nil, err
			}
			if _, err := p.expect(TokLParen); err != nil {
				return nil, err
			}
			expr, err := p.parseBoolExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokRParen); err != nil {
				return nil, err
			}
			members = append(members, algebra.NewFilter(expr))

		case TokLBrace:
			node, err := p.parseGroupOrUnion()
			if err != nil {
				return nil, err
			}
			members = append(members, node)

		default:
			tp, err := p.parseTriplePattern()
			if err != nil {
				return nil, err
			}
			members = append(members, algebra.NewPattern(tp, p.source))
			if p.cur.Type == TokDot {
				if err := p.advance(); err != nil {
					return nil, err
				}
			}
		}
	}
	if _, err := p.expect(TokRBrace); err != nil {
		return nil, err
	}
	return algebra.NewPatternGroup(members...), nil
}

// parseGroupOrUnion parses a '{' Group '}' possibly chained with UNION.
func (p *parser) parseGroupOrUnion() (algebra.Node, error) {
	left, err := p.parseGroup()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokUnion {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseGroup()
		if err != nil {
			return nil, err
		}
		left = algebra.NewUnionGroup(left, right)
	}
	return left, nil
}

func (p *parser) parseTriplePattern() (algebra.TriplePattern, error) {
	var tp algebra.TriplePattern
	for i := 0; i < 3; i++ {
		el, err := p.parseElement()
		if err != nil {
			return tp, err
		}
		tp[i] = el
	}
	return tp, nil
}

func (p *parser) parseElement() (algebra.Element, error) {
	switch p.cur.Type {
	case TokVar:
		name := p.cur.Literal
		if err := p.advance(); err != nil {
			return algebra.Element{}, err
		}
		return algebra.Var(name), nil

	case TokIRI:
		iri := p.cur.Literal
		if err := p.advance(); err != nil {
			return algebra.Element{}, err
		}
		return algebra.Lit(rdf.IRI(iri)), nil

	case TokString:
		s := p.cur.Literal
		if err := p.advance(); err != nil {
			return algebra.Element{}, err
		}
		return algebra.Lit(rdf.String(s)), nil

	case TokInt:
		lit := p.cur.Literal
		if err := p.advance(); err != nil {
			return algebra.Element{}, err
		}
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return algebra.Element{}, parseErrorAt(p.cur.Pos, "integer", lit)
		}
		return algebra.Lit(rdf.Integer(n)), nil

	case TokFloat:
		lit := p.cur.Literal
		if err := p.advance(); err != nil {
			return algebra.Element{}, err
		}
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return algebra.Element{}, parseErrorAt(p.cur.Pos, "float", lit)
		}
		return algebra.Lit(rdf.Float(f)), nil

	case TokTrue:
		if err := p.advance(); err != nil {
			return algebra.Element{}, err
		}
		return algebra.Lit(rdf.Boolean(true)), nil

	case TokFalse:
		if err := p.advance(); err != nil {
			return algebra.Element{}, err
		}
		return algebra.Lit(rdf.Boolean(false)), nil

	case TokIdent:
		name := p.cur.Literal
		if err := p.advance(); err != nil {
			return algebra.Element{}, err
		}
		if p.cur.Type == TokColon {
			if err := p.advance(); err != nil {
				return algebra.Element{}, err
			}
			local, err := p.expect(TokIdent)
			if err != nil {
				return algebra.Element{}, err
			}
			base, ok := p.prefixes[name]
			if !ok {
				// Unknown prefix: kept verbatim as an opaque identifier rather
				// than an error, per the "Unknown prefix" resolution.
				return algebra.Lit(rdf.Identifier(name + ":" + local.Literal)), nil
			}
			return algebra.Lit(rdf.IRI(base + local.Literal)), nil
		}
		return algebra.Lit(rdf.Identifier(name)), nil

	default:
		return algebra.Element{}, parseErrorAt(p.cur.Pos, "a term", describeToken(p.cur))
	}
}

func (p *parser) parseBoolExpr() (algebra.BooleanExpression, error) {
	left, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	op, ok := compareOpFor(p.cur.Type)
	if !ok {
		return nil, parseErrorAt(p.cur.Pos, "a comparison operator", describeToken(p.cur))
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	return algebra.BinaryExpression{Left: left, Op: op, Right: right}, nil
}

func compareOpFor(tt TokenType) (algebra.CompareOp, bool) {
	switch tt {
	case TokLT:
		return algebra.OpLT, true
	case TokLE:
		return algebra.OpLE, true
	case TokGT:
		return algebra.OpGT, true
	case TokGE:
		return algebra.OpGE, true
	case TokEQ:
		return algebra.OpEQ, true
	case TokNE:
		return algebra.OpNE, true
	default:
		return 0, false
	}
}

func (p *parser) parseArith() (algebra.Expression, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokPlus || p.cur.Type == TokMinus {
		op := algebra.OpAdd
		if p.cur.Type == TokMinus {
			op = algebra.OpSub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = algebra.ArithmeticExpression{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *parser) parseMul() (algebra.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokStar || p.cur.Type == TokSlash {
		op := algebra.OpMul
		if p.cur.Type == TokSlash {
			op = algebra.OpDiv
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = algebra.ArithmeticExpression{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *parser) parsePrimary() (algebra.Expression, error) {
	switch p.cur.Type {
	case TokVar:
		name := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return algebra.VariableExpression{Name: name}, nil

	case TokInt:
		lit := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return nil, parseErrorAt(p.cur.Pos, "integer", lit)
		}
		return algebra.LiteralExpression{Value: rdf.Integer(n)}, nil

	case TokFloat:
		lit := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, parseErrorAt(p.cur.Pos, "float", lit)
		}
		return algebra.LiteralExpression{Value: rdf.Float(f)}, nil

	case TokString:
		s := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return algebra.LiteralExpression{Value: rdf.String(s)}, nil

	case TokTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return algebra.LiteralExpression{Value: rdf.Boolean(true)}, nil

	case TokFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return algebra.LiteralExpression{Value: rdf.Boolean(false)}, nil

	case TokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokRParen); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, parseErrorAt(p.cur.Pos, "a variable, literal, or '('", describeToken(p.cur))
	}
}

func (p *parser) parseModifiers(sq *SelectQuery) error {
	if p.cur.Type == TokOrder {
		if err := p.advance(); err != nil {
			return err
		}
		if _, err := p.expect(TokBy); err != nil {
			return err
		}
		for p.cur.Type == TokAsc || p.cur.Type == TokDesc || p.cur.Type == TokVar {
			desc := p.cur.Type == TokDesc
			wrapped := p.cur.Type == TokAsc || p.cur.Type == TokDesc
			if wrapped {
				if err := p.advance(); err != nil {
					return err
				}
				if _, err := p.expect(TokLParen); err != nil {
					return err
				}
			}
			v, err := p.expect(TokVar)
			if err != nil {
				return err
			}
			if wrapped {
				if _, err := p.expect(TokRParen); err != nil {
					return err
				}
			}
			sq.OrderBy = append(sq.OrderBy, OrderByClause{Variable: v.Literal, Descending: desc})
		}
		if len(sq.OrderBy) == 0 {
			return parseErrorAt(p.cur.Pos, "an ORDER BY term", describeToken(p.cur))
		}
	}

	// LIMIT and OFFSET may appear in either order.
	if p.cur.Type == TokLimit {
		if err := p.parseLimitClause(sq); err != nil {
			return err
		}
		if p.cur.Type == TokOffset {
			if err := p.parseOffsetClause(sq); err != nil {
				return err
			}
		}
	} else if p.cur.Type == TokOffset {
		if err := p.parseOffsetClause(sq); err != nil {
			return err
		}
		if p.cur.Type == TokLimit {
			if err := p.parseLimitClause(sq); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *parser) parseLimitClause(sq *SelectQuery) error {
	if err := p.advance(); err != nil {
		return err
	}
	tok, err := p.expect(TokInt)
	if err != nil {
		return err
	}
	n, convErr := strconv.Atoi(tok.Literal)
	if convErr != nil {
		return parseErrorAt(tok.Pos, "a non-negative integer", tok.Literal)
	}
	sq.Limit = &n
	return nil
}

func (p *parser) parseOffsetClause(sq *SelectQuery) error {
	if err := p.advance(); err != nil {
		return err
	}
	tok, err := p.expect(TokInt)
	if err != nil {
		return err
	}
	n, convErr := strconv.Atoi(tok.Literal)
	if convErr != nil {
		return parseErrorAt(tok.Pos, "a non-negative integer", tok.Literal)
	}
	sq.Offset = &n
	return nil
}

func dedupFirstOccurrence(vars []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range vars {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
