package parser

import "errors"

// errRecover unwinds a failed production back to the recovery loop. The
// diagnostic itself is recorded before the sentinel is returned.
var errRecover = errors.New("parse: recovering")

type parser struct {
	toks  *Cursor[Token]
	src   string // kept only for diagnostic line text
	end   int    // len(src); offsets at or past it mark the terminator
	last  Token
	diags ErrorList
}

func newParser(src string, tokens []Token) *parser {
	last := Token{Type: tokenEOF, Pos: Position{Offset: len(src), Line: 1}}
	if len(tokens) > 0 {
		last = tokens[len(tokens)-1]
	}
	return &parser{
		toks: NewCursor(tokens),
		src:  src,
		end:  len(src),
		last: last,
	}
}

// parse consumes the token sequence and produces a single root expression,
// or every syntax diagnostic it can find, never both. After a failed
// production it synchronises to the next token that can start a primary
// and keeps going, so one call batches multiple errors the way the
// scanner does.
func (p *parser) parse() (Expr, ErrorList) {
	expr, err := p.parseExpression()
	if err == nil {
		// tokens past a complete expression are ignored
		return expr, nil
	}
	for !p.atTerminator() {
		p.synchronize()
		if p.atTerminator() {
			break
		}
		// the result is discarded; only further diagnostics matter now
		p.parseExpression()
	}
	return nil, p.diags
}

func (p *parser) parseExpression() (Expr, error) {
	return p.parseTernary()
}

func (p *parser) parseTernary() (Expr, error) {
	expr, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	if _, ok := p.toks.AdvanceIf(func(t Token) bool {
		return t.Type == tokenQuestion
	}); !ok {
		return expr, nil
	}
	cons, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, ok := p.toks.AdvanceIf(func(t Token) bool {
		return t.Type == tokenColon
	}); !ok {
		return nil, p.fail("expected ':' in conditional expression")
	}
	alt, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ConditionalExpr{Cond: expr, Consequent: cons, Alternative: alt}, nil
}

func (p *parser) parseEquality() (Expr, error) {
	expr, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.toks.AdvanceIf(func(t Token) bool {
			return t.Type == tokenBangEqual || t.Type == tokenEqualEqual
		})
		if !ok {
			return expr, nil
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
}

func (p *parser) parseComparison() (Expr, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.toks.AdvanceIf(func(t Token) bool {
			return t.Type == tokenGreater || t.Type == tokenGreaterEqual ||
				t.Type == tokenLess || t.Type == tokenLessEqual
		})
		if !ok {
			return expr, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
}

func (p *parser) parseTerm() (Expr, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.toks.AdvanceIf(func(t Token) bool {
			return t.Type == tokenPlus || t.Type == tokenMinus
		})
		if !ok {
			return expr, nil
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
}

func (p *parser) parseFactor() (Expr, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.toks.AdvanceIf(func(t Token) bool {
			return t.Type == tokenStar || t.Type == tokenSlash
		})
		if !ok {
			return expr, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	op, ok := p.toks.AdvanceIf(func(t Token) bool {
		return t.Type == tokenBang || t.Type == tokenMinus
	})
	if !ok {
		return p.parsePrimary()
	}
	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &UnaryExpr{Operator: op, Right: right}, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	tok, ok := p.toks.AdvanceIf(startsPrimary)
	if !ok {
		return nil, p.fail("invalid token to start an expression")
	}
	switch tok.Type {
	case tokenTrue:
		return &LiteralExpr{Value: BoolLiteral(true)}, nil
	case tokenFalse:
		return &LiteralExpr{Value: BoolLiteral(false)}, nil
	case tokenNil:
		return &LiteralExpr{}, nil
	case tokenNumber, tokenString:
		return &LiteralExpr{Value: tok.Literal}, nil
	default: // tokenLParen
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, ok := p.toks.AdvanceIf(func(t Token) bool {
			return t.Type == tokenRParen
		}); !ok {
			return nil, p.fail("expected ')' after expression")
		}
		return &GroupingExpr{Inner: inner}, nil
	}
}

// startsPrimary is also the parser's synchronisation set, minus the
// terminator.
func startsPrimary(t Token) bool {
	switch t.Type {
	case tokenNumber, tokenString, tokenTrue, tokenFalse, tokenNil, tokenLParen:
		return true
	}
	return false
}

// fail records a diagnostic at the next unconsumed token and returns the
// recovery sentinel. A failure at the terminator is marked incomplete:
// more input could still complete the expression.
func (p *parser) fail(message string) error {
	tok := p.next()
	p.diags = append(p.diags, Diagnostic{
		Message:    message,
		LineText:   lineAt(p.src, tok.Pos.Offset-tok.Pos.Column),
		Line:       tok.Pos.Line,
		Column:     tok.Pos.Column,
		Incomplete: p.isTerminator(tok),
	})
	return errRecover
}

// next returns the offending token for diagnostics: the next unconsumed
// token, or the terminator once the cursor has run past it.
func (p *parser) next() Token {
	if t, ok := p.toks.Peek(1); ok {
		return t
	}
	return p.last
}

// isTerminator distinguishes the appended end-of-input token from an
// Eof-kind token scanned out of the "eof" keyword mid-stream.
func (p *parser) isTerminator(t Token) bool {
	return t.Type == tokenEOF && t.Pos.Offset >= p.end
}

func (p *parser) atTerminator() bool {
	t, ok := p.toks.Peek(1)
	return !ok || p.isTerminator(t)
}

// synchronize steps past the offending token, then skips ahead until the
// next token could start a primary or the input ends.
func (p *parser) synchronize() {
	p.toks.Advance(1)
	p.toks.AdvanceUntil(func(t Token) bool {
		return startsPrimary(t) || t.Type == tokenEOF
	})
}
