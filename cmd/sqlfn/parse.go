package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bawdo/sqlfn/nodes"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// tokenize splits input into tokens, respecting single-quoted strings
// and recognising the two-char operators (!=, <>, >=, <=, ||).
func tokenize(input string) []string {
	var tokens []string
	var cur strings.Builder
	inQuote := false

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(input); i++ {
		ch := input[i]

		if inQuote {
			cur.WriteByte(ch)
			if ch == '\'' {
				if i+1 < len(input) && input[i+1] == '\'' {
					cur.WriteByte('\'')
					i++
				} else {
					inQuote = false
					flush()
				}
			}
			continue
		}

		var next byte
		if i+1 < len(input) {
			next = input[i+1]
		}

		switch {
		case ch == '\'':
			flush()
			cur.WriteByte(ch)
			inQuote = true
		case ch == '(' || ch == ')' || ch == ',':
			flush()
			tokens = append(tokens, string(ch))
		case (ch == '!' && next == '=') || (ch == '<' && next == '>') ||
			(ch == '<' && next == '=') || (ch == '>' && next == '=') || (ch == '|' && next == '|'):
			flush()
			tokens = append(tokens, string([]byte{ch, next}))
			i++
		case ch == '=' || ch == '<' || ch == '>' || ch == '+' || ch == '-' || ch == '*' || ch == '/':
			flush()
			tokens = append(tokens, string(ch))
		case ch == ' ' || ch == '\t':
			flush()
		default:
			cur.WriteByte(ch)
		}
	}
	flush()
	return tokens
}

// splitTopLevelCommas splits a string on commas that are outside
// parentheses and quotes, so CONCAT(a, ', ', b) stays intact.
func splitTopLevelCommas(s string) []string {
	var parts []string
	var cur strings.Builder
	depth := 0
	inQuote := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '\'':
			inQuote = !inQuote
			cur.WriteByte(ch)
		case inQuote:
			cur.WriteByte(ch)
		case ch == '(':
			depth++
			cur.WriteByte(ch)
		case ch == ')':
			depth--
			cur.WriteByte(ch)
		case ch == ',' && depth == 0:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

var comparisonOps = map[string]nodes.ComparisonOp{
	"=":        nodes.OpEq,
	"!=":       nodes.OpNotEq,
	"<>":       nodes.OpNotEq,
	">":        nodes.OpGt,
	">=":       nodes.OpGtEq,
	"<":        nodes.OpLt,
	"<=":       nodes.OpLtEq,
	"like":     nodes.OpLike,
	"not like": nodes.OpNotLike,
}

var additiveOps = map[string]nodes.InfixOp{"+": nodes.OpPlus, "-": nodes.OpMinus, "||": nodes.OpConcat}
var multiplicativeOps = map[string]nodes.InfixOp{"*": nodes.OpMultiply, "/": nodes.OpDivide}

// columnResolver turns "table.col" or a bare "col" into an attribute.
type columnResolver func(table, column string) (*nodes.Attribute, error)

// parser is a small recursive-descent parser for shell expressions.
// Operands are either nodes or raw Go values; raw values are handed to
// function calls untouched so argument coercion decides what is accepted.
type parser struct {
	tokens  []string
	pos     int
	resolve columnResolver
}

func newParser(input string, resolve columnResolver) *parser {
	return &parser{tokens: tokenize(input), resolve: resolve}
}

func (p *parser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *parser) next() string {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *parser) done() bool { return p.pos >= len(p.tokens) }

func (p *parser) expect(tok string) error {
	if got := p.next(); got != tok {
		if got == "" {
			return fmt.Errorf("expected %q, got end of input", tok)
		}
		return fmt.Errorf("expected %q, got %q", tok, got)
	}
	return nil
}

// parseCondition parses expr [op expr].
func (p *parser) parseCondition() (nodes.Node, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	opTok := strings.ToLower(p.peek())
	if opTok == "not" && p.pos+1 < len(p.tokens) && strings.EqualFold(p.tokens[p.pos+1], "like") {
		p.pos++
		opTok = "not like"
	}
	op, ok := comparisonOps[opTok]
	if !ok {
		return asNode(left), nil
	}
	p.next()
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return nodes.NewComparisonNode(asNode(left), nodes.Literal(right), op), nil
}

func (p *parser) parseExpr() (any, error) {
	return p.parseInfix(additiveOps, p.parseTerm)
}

func (p *parser) parseTerm() (any, error) {
	return p.parseInfix(multiplicativeOps, p.parsePrimary)
}

func (p *parser) parseInfix(ops map[string]nodes.InfixOp, operand func() (any, error)) (any, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.peek()]
		if !ok {
			return left, nil
		}
		p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = nodes.NewInfixNode(asNode(left), nodes.Literal(right), op)
	}
}

func (p *parser) parsePrimary() (any, error) {
	tok := p.next()
	lower := strings.ToLower(tok)
	switch {
	case tok == "":
		return nil, errors.New("unexpected end of input")
	case tok == "(":
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return nodes.NewGrouping(asNode(inner)), nil
	case tok == "-":
		return p.parseNegative()
	case isQuoted(tok):
		return unquote(tok), nil
	case lower == "date" || lower == "timestamp" || lower == "interval":
		if isQuoted(p.peek()) {
			return parseTyped(lower, unquote(p.next()))
		}
	case lower == "true":
		return true, nil
	case lower == "false":
		return false, nil
	case lower == "null":
		return nil, nil
	case p.peek() == "(":
		return p.parseCall(tok)
	}
	if v, ok := parseNumber(tok); ok {
		return v, nil
	}
	return p.parseColumn(tok)
}

func (p *parser) parseNegative() (any, error) {
	v, ok := parseNumber(p.next())
	if !ok {
		return nil, errors.New("'-' must be followed by a number")
	}
	if n, isInt := v.(int64); isInt {
		return -n, nil
	}
	return v.(decimal.Decimal).Neg(), nil
}

func (p *parser) parseCall(name string) (any, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var args []any
	if p.peek() != ")" {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek() != "," {
				break
			}
			p.next()
		}
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	fn, err := nodes.NewFunction(strings.ToUpper(name), args...)
	if err != nil {
		return nil, err
	}
	return fn, nil
}

func (p *parser) parseColumn(tok string) (any, error) {
	if p.resolve == nil {
		return nil, fmt.Errorf("cannot parse %q", tok)
	}
	table, col, found := strings.Cut(tok, ".")
	if !found {
		table, col = "", tok
	}
	if col == "" {
		return nil, fmt.Errorf("invalid column reference %q", tok)
	}
	return p.resolve(table, col)
}

// parseAlias consumes a trailing "AS name".
func (p *parser) parseAlias() (string, error) {
	if !strings.EqualFold(p.peek(), "as") {
		return "", nil
	}
	p.next()
	name := p.next()
	if name == "" {
		return "", errors.New("expected alias name after AS")
	}
	return name, nil
}

func (p *parser) expectEnd() error {
	if !p.done() {
		return fmt.Errorf("unexpected token %q", p.peek())
	}
	return nil
}

func parseTyped(kind, text string) (any, error) {
	switch kind {
	case "date":
		t, err := time.Parse(dateLayout, text)
		if err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
		return nodes.DateOf(t), nil
	case "timestamp":
		t, err := time.Parse(timestampLayout, text)
		if err != nil {
			return nil, fmt.Errorf("timestamp: %w", err)
		}
		return t, nil
	default:
		d, err := time.ParseDuration(text)
		if err != nil {
			return nil, fmt.Errorf("interval: %w", err)
		}
		return d, nil
	}
}

// parseNumber returns an int64 for integer tokens and an exact
// decimal.Decimal for the rest, so 1.50 keeps its scale.
func parseNumber(tok string) (any, bool) {
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return i, true
	}
	if d, err := decimal.NewFromString(tok); err == nil {
		return d, true
	}
	return nil, false
}

func isQuoted(tok string) bool {
	return len(tok) >= 2 && strings.HasPrefix(tok, "'") && strings.HasSuffix(tok, "'")
}

func unquote(tok string) string {
	return strings.ReplaceAll(tok[1:len(tok)-1], "''", "'")
}

// asNode wraps raw values so they can sit on either side of an operator.
func asNode(v any) nodes.Node {
	return nodes.Literal(v)
}
