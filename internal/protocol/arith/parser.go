package arith

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// maxDepth bounds parenthesis and unary nesting.
const maxDepth = 256

// SyntaxError describes where parsing stopped.
type SyntaxError struct {
	Pos int // byte offset into the normalized expression
	Msg string
}

func (e *SyntaxError) Error() string { return fmt.Sprintf("at %d: %s", e.Pos, e.Msg) }

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	pos  int
	op   byte
	num  float64
	text string
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return fmt.Sprintf("number %s", t.text)
	default:
		return fmt.Sprintf("%q", t.text)
	}
}

// lexer splits a normalized, gated expression into tokens.
type lexer struct {
	input string
	pos   int
}

func (l *lexer) skipSpaces() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpaces()
	if l.pos >= len(l.input) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}
	start := l.pos
	ch := l.input[l.pos]
	switch {
	case ch >= '0' && ch <= '9', ch == '.':
		return l.number()
	case ch == '(':
		l.pos++
		return token{kind: tokLParen, pos: start, text: "("}, nil
	case ch == ')':
		l.pos++
		return token{kind: tokRParen, pos: start, text: ")"}, nil
	case ch == '+' || ch == '-':
		l.pos++
		if l.pos < len(l.input) && l.input[l.pos] == ch {
			return token{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("unexpected %q", l.input[start:l.pos+1])}
		}
		return token{kind: tokOp, pos: start, op: ch, text: string(ch)}, nil
	case ch == '*' || ch == '/' || ch == '%':
		l.pos++
		return token{kind: tokOp, pos: start, op: ch, text: string(ch)}, nil
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return token{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", r)}
}

func (l *lexer) number() (token, error) {
	start := l.pos
	intDigits := l.digits()
	if intDigits > 1 && l.input[start] == '0' {
		return token{}, &SyntaxError{Pos: start, Msg: "leading zero in number"}
	}
	fracDigits := 0
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		l.pos++
		fracDigits = l.digits()
	}
	if intDigits == 0 && fracDigits == 0 {
		return token{}, &SyntaxError{Pos: start, Msg: "expected number"}
	}
	text := l.input[start:l.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return token{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("invalid number %s", text)}
	}
	return token{kind: tokNumber, pos: start, num: v, text: text}, nil
}

func (l *lexer) digits() int {
	n := 0
	for l.pos < len(l.input) && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
		l.pos++
		n++
	}
	return n
}

// parser is a recursive-descent evaluator; it computes values while parsing.
type parser struct {
	lex   lexer
	tok   token
	depth int
}

// Parse evaluates a normalized expression. It does not apply the character
// gate or the finiteness check; see Eval.
func Parse(expr string) (float64, error) {
	p := &parser{lex: lexer{input: expr}}
	if err := p.advance(); err != nil {
		return 0, err
	}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.tok.kind != tokEOF {
		return 0, p.unexpected()
	}
	return v, nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) unexpected() error {
	return &SyntaxError{Pos: p.tok.pos, Msg: "unexpected " + p.tok.String()}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return &SyntaxError{Pos: p.tok.pos, Msg: "expression nested too deeply"}
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for p.tok.kind == tokOp && (p.tok.op == '+' || p.tok.op == '-') {
		op := p.tok.op
		if err := p.advance(); err != nil {
			return 0, err
		}
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
	return v, nil
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for p.tok.kind == tokOp && (p.tok.op == '*' || p.tok.op == '/' || p.tok.op == '%') {
		op := p.tok.op
		if err := p.advance(); err != nil {
			return 0, err
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		switch op {
		case '*':
			v *= rhs
		case '/':
			v /= rhs
		case '%':
			v = math.Mod(v, rhs)
		}
	}
	return v, nil
}

func (p *parser) parseUnary() (float64, error) {
	if p.tok.kind != tokOp || (p.tok.op != '+' && p.tok.op != '-') {
		return p.parsePrimary()
	}
	if err := p.enter(); err != nil {
		return 0, err
	}
	defer p.leave()

	neg := p.tok.op == '-'
	if err := p.advance(); err != nil {
		return 0, err
	}
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	if neg {
		return -v, nil
	}
	return v, nil
}

func (p *parser) parsePrimary() (float64, error) {
	switch p.tok.kind {
	case tokNumber:
		v := p.tok.num
		if err := p.advance(); err != nil {
			return 0, err
		}
		return v, nil
	case tokLParen:
		if err := p.enter(); err != nil {
			return 0, err
		}
		defer p.leave()

		open := p.tok.pos
		if err := p.advance(); err != nil {
			return 0, err
		}
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.tok.kind != tokRParen {
			if p.tok.kind == tokEOF {
				return 0, &SyntaxError{Pos: open, Msg: "missing closing parenthesis"}
			}
			return 0, p.unexpected()
		}
		if err := p.advance(); err != nil {
			return 0, err
		}
		return v, nil
	}
	return 0, p.unexpected()
}
