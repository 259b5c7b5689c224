// Package calc evaluates plain arithmetic expressions: decimal numbers and
// + - * / ( ) with the usual precedence. The grammar is closed on purpose:
// no identifiers, no function calls, so draft text typed by a learner can
// never reach anything resembling an interpreter.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("malformed expression")

// Evaluate parses and computes the expression. Empty or blank input is
// malformed. Division by zero is an evaluation error, not an Inf result.
func Evaluate(expr string) (float64, error) {
	p := &parser{input: expr}
	p.skipSpaces()
	if p.eof() {
		return 0, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if !p.eof() {
		return 0, fmt.Errorf("%w: unexpected %q at position %d", ErrMalformed, p.input[p.pos], p.pos)
	}
	return v, nil
}

// Format renders a result the way a calculator display would: no exponent
// for ordinary magnitudes, no trailing zeros.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

func (p *parser) skipSpaces() {
	for !p.eof() && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t' || p.input[p.pos] == '\n') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

// expr := term { ('+'|'-') term }
func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

// term := factor { ('*'|'/') factor }
func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, fmt.Errorf("%w: division by zero", ErrMalformed)
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

// factor := number | '(' expr ')' | ('+'|'-') factor
func (p *parser) parseFactor() (float64, error) {
	p.skipSpaces()
	switch {
	case p.eof():
		return 0, fmt.Errorf("%w: unexpected end of input", ErrMalformed)
	case p.peek() == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if p.peek() != ')' {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrMalformed)
		}
		p.pos++
		return v, nil
	case p.peek() == '+':
		p.pos++
		return p.parseFactor()
	case p.peek() == '-':
		p.pos++
		v, err := p.parseFactor()
		return -v, err
	default:
		return p.parseNumber()
	}
}

// number := digits ['.' digits] | '.' digits
func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for !p.eof() && isDigit(p.input[p.pos]) {
		p.pos++
	}
	if !p.eof() && p.input[p.pos] == '.' {
		p.pos++
		for !p.eof() && isDigit(p.input[p.pos]) {
			p.pos++
		}
	}
	tok := p.input[start:p.pos]
	if tok == "" || tok == "." || strings.Count(tok, ".") > 1 {
		return 0, fmt.Errorf("%w: expected number at position %d", ErrMalformed, start)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrMalformed, tok)
	}
	return v, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
