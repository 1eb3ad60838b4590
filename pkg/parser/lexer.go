// Package parser turns Lumen source text into evaluator value trees.
// The evaluation core never parses; it consumes the trees produced
// here.
package parser

import (
	"fmt"
	"strings"
)

type tokenType int

const (
	tokLParen tokenType = iota // (
	tokRParen                  // )
	tokLBrace                  // {
	tokRBrace                  // }
	tokInt
	tokDec
	tokStr
	tokBool
	tokSym
	tokEOF
)

type token struct {
	typ  tokenType
	text string
	line int
	col  int
}

// Error reports a scan or parse failure with its source position.
type Error struct {
	File string
	Line int
	Col  int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Msg)
}

// symbolChars are the characters allowed in a symbol beyond letters
// and digits.
const symbolChars = `_+-*/\=<>!&%^?~`

func isSymbolChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte(symbolChars, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

type scanner struct {
	source   string
	filename string
	pos      int
	line     int
	col      int
}

func newScanner(source, filename string) *scanner {
	return &scanner{source: source, filename: filename, line: 1, col: 1}
}

func (s *scanner) errorf(line, col int, format string, args ...any) *Error {
	return &Error{File: s.filename, Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.source) {
		return 0
	}
	return s.source[s.pos]
}

func (s *scanner) advance() byte {
	c := s.source[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

func (s *scanner) skipBlanksAndComments() {
	for s.pos < len(s.source) {
		c := s.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance()
		case c == ';':
			for s.pos < len(s.source) && s.peek() != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

// next scans the next token.
func (s *scanner) next() (token, *Error) {
	s.skipBlanksAndComments()
	line, col := s.line, s.col

	if s.pos >= len(s.source) {
		return token{typ: tokEOF, line: line, col: col}, nil
	}

	c := s.peek()
	switch c {
	case '(':
		s.advance()
		return token{typ: tokLParen, text: "(", line: line, col: col}, nil
	case ')':
		s.advance()
		return token{typ: tokRParen, text: ")", line: line, col: col}, nil
	case '{':
		s.advance()
		return token{typ: tokLBrace, text: "{", line: line, col: col}, nil
	case '}':
		s.advance()
		return token{typ: tokRBrace, text: "}", line: line, col: col}, nil
	case '"':
		return s.scanString(line, col)
	case '#':
		return s.scanBool(line, col)
	}

	// A '-' directly followed by a digit starts a number; otherwise
	// it is the subtraction symbol.
	if isDigit(c) || (c == '-' && s.pos+1 < len(s.source) && isDigit(s.source[s.pos+1])) {
		return s.scanNumber(line, col)
	}
	if isSymbolChar(c) {
		return s.scanSymbol(line, col)
	}

	return token{}, s.errorf(line, col, "unexpected character %q", c)
}

func (s *scanner) scanNumber(line, col int) (token, *Error) {
	start := s.pos
	if s.peek() == '-' {
		s.advance()
	}
	for s.pos < len(s.source) && isDigit(s.peek()) {
		s.advance()
	}
	typ := tokInt
	if s.pos < len(s.source) && s.peek() == '.' && s.pos+1 < len(s.source) && isDigit(s.source[s.pos+1]) {
		typ = tokDec
		s.advance()
		for s.pos < len(s.source) && isDigit(s.peek()) {
			s.advance()
		}
	}
	return token{typ: typ, text: s.source[start:s.pos], line: line, col: col}, nil
}

func (s *scanner) scanSymbol(line, col int) (token, *Error) {
	start := s.pos
	for s.pos < len(s.source) && isSymbolChar(s.peek()) {
		s.advance()
	}
	return token{typ: tokSym, text: s.source[start:s.pos], line: line, col: col}, nil
}

func (s *scanner) scanBool(line, col int) (token, *Error) {
	s.advance() // '#'
	if s.pos < len(s.source) {
		switch s.peek() {
		case 't':
			s.advance()
			return token{typ: tokBool, text: "#t", line: line, col: col}, nil
		case 'f':
			s.advance()
			return token{typ: tokBool, text: "#f", line: line, col: col}, nil
		}
	}
	return token{}, s.errorf(line, col, "expected #t or #f")
}

func (s *scanner) scanString(line, col int) (token, *Error) {
	s.advance() // opening quote
	var b strings.Builder
	for {
		if s.pos >= len(s.source) {
			return token{}, s.errorf(line, col, "unterminated string literal")
		}
		c := s.advance()
		if c == '"' {
			return token{typ: tokStr, text: b.String(), line: line, col: col}, nil
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if s.pos >= len(s.source) {
			return token{}, s.errorf(line, col, "unterminated string literal")
		}
		esc := s.advance()
		switch esc {
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\\', '"', '\'':
			b.WriteByte(esc)
		default:
			return token{}, s.errorf(s.line, s.col-2, "unknown escape '\\%c'", esc)
		}
	}
}
