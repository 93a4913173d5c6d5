// Package condition parses and evaluates route "when" expressions such as
//
//	object.amount >= 100000 AND (object.currency == "usd" OR event.livemode == false)
package condition

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// -----------------------------------------------------------------------
// AST nodes
// -----------------------------------------------------------------------

// Expr is the common interface for all AST nodes.
type Expr interface {
	exprNode()
}

// BinaryExpr represents AND / OR.
type BinaryExpr struct {
	Op    string // "AND" | "OR"
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// NotExpr represents NOT <expr>.
type NotExpr struct {
	Expr Expr
}

func (*NotExpr) exprNode() {}

// ExistsExpr represents <field> exists.
type ExistsExpr struct {
	Field *FieldOperand
}

func (*ExistsExpr) exprNode() {}

// ComparisonExpr represents <operand> <operator> <operand>.
type ComparisonExpr struct {
	Left  Operand
	Op    Operator
	Right Operand
}

func (*ComparisonExpr) exprNode() {}

// -----------------------------------------------------------------------
// Operands
// -----------------------------------------------------------------------

// Operand is either a literal value or a field path.
type Operand interface {
	operandNode()
}

// LiteralOperand holds a pre-parsed constant.
type LiteralOperand struct {
	Value interface{}
}

func (*LiteralOperand) operandNode() {}

// FieldOperand holds a dotted path like "object.amount".
type FieldOperand struct {
	Path string
}

func (*FieldOperand) operandNode() {}

// -----------------------------------------------------------------------
// Tokenizer
// -----------------------------------------------------------------------

type tokenKind int

const (
	tokWord   tokenKind = iota // identifier or keyword
	tokOp                      // ==, !=, >=, <=, >, <
	tokString                  // "…" or '…'
	tokNumber                  // 42 | 3.14
	tokBool                    // true | false
	tokNull
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	val  string
	pos  int
}

func tokenize(expr string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(expr) {
		ch := expr[i]
		if unicode.IsSpace(rune(ch)) {
			i++
			continue
		}
		switch {
		case ch == '(':
			tokens = append(tokens, token{tokLParen, "(", i})
			i++
		case ch == ')':
			tokens = append(tokens, token{tokRParen, ")", i})
			i++
		case ch == '=' || ch == '!' || ch == '<' || ch == '>':
			n := 1
			if i+1 < len(expr) && expr[i+1] == '=' {
				n = 2
			}
			op := expr[i : i+n]
			if op == "=" || op == "!" {
				return nil, fmt.Errorf("unexpected operator %q at position %d", op, i)
			}
			tokens = append(tokens, token{tokOp, op, i})
			i += n
		case ch == '"' || ch == '\'':
			j := i + 1
			for j < len(expr) && expr[j] != ch {
				if expr[j] == '\\' {
					j++
				}
				j++
			}
			if j >= len(expr) {
				return nil, fmt.Errorf("unterminated string starting at position %d", i)
			}
			inner := expr[i+1 : j]
			inner = strings.ReplaceAll(inner, `\"`, `"`)
			inner = strings.ReplaceAll(inner, `\'`, `'`)
			inner = strings.ReplaceAll(inner, `\\`, `\`)
			tokens = append(tokens, token{tokString, inner, i})
			i = j + 1
		case unicode.IsDigit(rune(ch)) || (ch == '-' && i+1 < len(expr) && unicode.IsDigit(rune(expr[i+1]))):
			j := i + 1
			for j < len(expr) && (unicode.IsDigit(rune(expr[j])) || expr[j] == '.') {
				j++
			}
			tokens = append(tokens, token{tokNumber, expr[i:j], i})
			i = j
		case unicode.IsLetter(rune(ch)) || ch == '_':
			j := i
			for j < len(expr) && (unicode.IsLetter(rune(expr[j])) || unicode.IsDigit(rune(expr[j])) || expr[j] == '_' || expr[j] == '.') {
				j++
			}
			word := expr[i:j]
			switch strings.ToLower(word) {
			case "true", "false":
				tokens = append(tokens, token{tokBool, strings.ToLower(word), i})
			case "null":
				tokens = append(tokens, token{tokNull, word, i})
			default:
				tokens = append(tokens, token{tokWord, word, i})
			}
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", ch, i)
		}
	}
	tokens = append(tokens, token{tokEOF, "", len(expr)})
	return tokens, nil
}

// -----------------------------------------------------------------------
// Recursive-descent parser
// -----------------------------------------------------------------------

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) consume() token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) keyword(kw string) bool {
	t := p.peek()
	return t.kind == tokWord && strings.EqualFold(t.val, kw)
}

// Parse parses an expression string into an AST.
func Parse(expr string) (Expr, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, fmt.Errorf("unexpected token %q at position %d", t.val, t.pos)
	}
	return node, nil
}

// or_expr = and_expr ( "OR" and_expr )*
func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.keyword("OR") {
		p.consume()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: "OR", Left: left, Right: right}
	}
	return left, nil
}

// and_expr = not_expr ( "AND" not_expr )*
func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.keyword("AND") {
		p.consume()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: "AND", Left: left, Right: right}
	}
	return left, nil
}

// not_expr = "NOT" not_expr | "(" or_expr ")" | comparison
func (p *parser) parseNot() (Expr, error) {
	if p.keyword("NOT") {
		p.consume()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &NotExpr{Expr: inner}, nil
	}
	if p.peek().kind == tokLParen {
		p.consume()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if t := p.peek(); t.kind != tokRParen {
			return nil, fmt.Errorf("expected \")\" at position %d, got %q", t.pos, t.val)
		}
		p.consume()
		return inner, nil
	}
	return p.parseComparison()
}

// comparison = field "exists" | operand operator operand
func (p *parser) parseComparison() (Expr, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	t := p.peek()
	var op Operator
	switch {
	case t.kind == tokOp:
		op = Operator(t.val)
	case t.kind == tokWord && Valid(Operator(strings.ToLower(t.val))):
		op = Operator(strings.ToLower(t.val))
	default:
		return nil, fmt.Errorf("expected comparison operator at position %d, got %q", t.pos, t.val)
	}
	p.consume()

	if op == OpExists {
		f, ok := left.(*FieldOperand)
		if !ok {
			return nil, fmt.Errorf("exists requires a field at position %d", t.pos)
		}
		return &ExistsExpr{Field: f}, nil
	}

	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	if op == OpMatches {
		var (
			pattern  string
			isString bool
		)
		if lit, ok := right.(*LiteralOperand); ok {
			pattern, isString = lit.Value.(string)
		}
		if !isString {
			return nil, fmt.Errorf("matches requires a string pattern at position %d", t.pos)
		}
		if _, err := CompilePattern(pattern); err != nil {
			return nil, err
		}
	}
	return &ComparisonExpr{Left: left, Op: op, Right: right}, nil
}

// operand = field_path | literal
func (p *parser) parseOperand() (Operand, error) {
	t := p.peek()
	switch t.kind {
	case tokString:
		p.consume()
		return &LiteralOperand{Value: t.val}, nil
	case tokNumber:
		p.consume()
		f, err := strconv.ParseFloat(t.val, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at position %d", t.val, t.pos)
		}
		return &LiteralOperand{Value: f}, nil
	case tokBool:
		p.consume()
		return &LiteralOperand{Value: t.val == "true"}, nil
	case tokNull:
		p.consume()
		return &LiteralOperand{Value: nil}, nil
	case tokWord:
		p.consume()
		return &FieldOperand{Path: t.val}, nil
	default:
		return nil, fmt.Errorf("expected operand at position %d, got %q", t.pos, t.val)
	}
}

// Fields returns the field paths expr refers to, in order of appearance.
func Fields(expr Expr) []string {
	var out []string
	var walk func(Expr)
	operand := func(o Operand) {
		if f, ok := o.(*FieldOperand); ok {
			out = append(out, f.Path)
		}
	}
	walk = func(e Expr) {
		switch e := e.(type) {
		case *BinaryExpr:
			walk(e.Left)
			walk(e.Right)
		case *NotExpr:
			walk(e.Expr)
		case *ExistsExpr:
			out = append(out, e.Field.Path)
		case *ComparisonExpr:
			operand(e.Left)
			operand(e.Right)
		}
	}
	walk(expr)
	return out
}
