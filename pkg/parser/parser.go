package parser

import (
	"strconv"

	"github.com/lumenlisp/lumen/pkg/evaluator"
)

type parser struct {
	scan *scanner
	tok  token
}

// Parse scans and reads source into a sequence of top-level value
// trees ready for evaluation.
func Parse(source, filename string) ([]evaluator.Value, error) {
	p := &parser{scan: newScanner(source, filename)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var forms []evaluator.Value
	for p.tok.typ != tokEOF {
		form, err := p.readForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

func (p *parser) advance() *Error {
	tok, err := p.scan.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) readForm() (evaluator.Value, *Error) {
	tok := p.tok
	switch tok.typ {
	case tokLParen:
		cells, err := p.readSequence(tokRParen, ")")
		if err != nil {
			return nil, err
		}
		return evaluator.NewSExpr(cells), nil

	case tokLBrace:
		cells, err := p.readSequence(tokRBrace, "}")
		if err != nil {
			return nil, err
		}
		return evaluator.NewQExpr(cells), nil

	case tokRParen, tokRBrace:
		return nil, p.scan.errorf(tok.line, tok.col, "unexpected '%s'", tok.text)

	case tokInt:
		n, convErr := strconv.ParseInt(tok.text, 10, 64)
		if convErr != nil {
			return nil, p.scan.errorf(tok.line, tok.col, "invalid integer literal %q", tok.text)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return evaluator.NewInt(n), nil

	case tokDec:
		f, convErr := strconv.ParseFloat(tok.text, 64)
		if convErr != nil {
			return nil, p.scan.errorf(tok.line, tok.col, "invalid decimal literal %q", tok.text)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return evaluator.NewDec(f), nil

	case tokStr:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return evaluator.NewStr(tok.text), nil

	case tokBool:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return evaluator.NewBool(tok.text == "#t"), nil

	case tokSym:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return evaluator.NewSym(tok.text), nil

	default:
		return nil, p.scan.errorf(tok.line, tok.col, "unexpected end of input")
	}
}

// readSequence reads forms until the given closing token.
func (p *parser) readSequence(closer tokenType, closeText string) ([]evaluator.Value, *Error) {
	open := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	var cells []evaluator.Value
	for {
		switch p.tok.typ {
		case closer:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return cells, nil
		case tokEOF:
			return nil, p.scan.errorf(open.line, open.col, "missing '%s'", closeText)
		}
		form, err := p.readForm()
		if err != nil {
			return nil, err
		}
		cells = append(cells, form)
	}
}
