package parser

import "strconv"

type lexer struct {
	src       string
	pos       int // next unconsumed byte
	line      int // one-based line of pos
	lineStart int // byte offset where the current line begins

	start     int // lexeme start offset
	startLine int
	startCol  int

	tokens []Token
	diags  ErrorList
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1}
}

// scan consumes the whole source in one pass and returns either the token
// sequence terminated by an EOF token, or every diagnostic found, never
// both.
func (lx *lexer) scan() ([]Token, ErrorList) {
	for !lx.atEnd() {
		lx.markStart()
		lx.scanLexeme()
	}
	lx.markStart()
	lx.addToken(tokenEOF)
	if len(lx.diags) > 0 {
		return nil, lx.diags
	}
	return lx.tokens, nil
}

func (lx *lexer) markStart() {
	lx.start = lx.pos
	lx.startLine = lx.line
	lx.startCol = lx.pos - lx.lineStart
}

func (lx *lexer) scanLexeme() {
	c := lx.advance()
	switch c {
	case '(':
		lx.addToken(tokenLParen)
	case ')':
		lx.addToken(tokenRParen)
	case '{':
		lx.addToken(tokenLBrace)
	case '}':
		lx.addToken(tokenRBrace)
	case ',':
		lx.addToken(tokenComma)
	case '.':
		lx.addToken(tokenDot)
	case '-':
		lx.addToken(tokenMinus)
	case '+':
		lx.addToken(tokenPlus)
	case ';':
		lx.addToken(tokenSemicolon)
	case '*':
		lx.addToken(tokenStar)
	case '?':
		lx.addToken(tokenQuestion)
	case ':':
		lx.addToken(tokenColon)
	case '!':
		if lx.match('=') {
			lx.addToken(tokenBangEqual)
		} else {
			lx.addToken(tokenBang)
		}
	case '=':
		if lx.match('=') {
			lx.addToken(tokenEqualEqual)
		} else {
			lx.addToken(tokenEqual)
		}
	case '<':
		if lx.match('=') {
			lx.addToken(tokenLessEqual)
		} else {
			lx.addToken(tokenLess)
		}
	case '>':
		if lx.match('=') {
			lx.addToken(tokenGreaterEqual)
		} else {
			lx.addToken(tokenGreater)
		}
	case '/':
		switch {
		case lx.match('/'):
			lx.scanLineComment()
		case lx.match('*'):
			lx.scanBlockComment()
		default:
			lx.addToken(tokenSlash)
		}
	case ' ', '\r', '\t', '\n':
		// whitespace emits nothing; advance already counted the newline
	case '"':
		lx.scanString()
	default:
		switch {
		case isDigit(c):
			lx.scanNumber()
		case isAlpha(c):
			lx.scanIdentifier()
		default:
			lx.errorAt("unexpected character", false)
		}
	}
}

// scanString consumes a string literal after its opening quote. Embedded
// newlines are legal and counted. When the input ends without a closing
// quote the diagnostic points at the position scanning stopped, and no
// token is emitted.
func (lx *lexer) scanString() {
	for {
		c, ok := lx.peek()
		if !ok {
			lx.errorAt("unterminated string", true)
			return
		}
		if c == '"' {
			lx.advance()
			value := lx.src[lx.start+1 : lx.pos-1]
			lx.addLiteralToken(tokenString, StringLiteral(value))
			return
		}
		if _, more := lx.peekNext(); !more {
			lx.errorAt("unterminated string", true)
			return
		}
		lx.advance()
	}
}

func (lx *lexer) scanLineComment() {
	// the newline stays for the main loop
	for {
		c, ok := lx.peek()
		if !ok || c == '\n' {
			return
		}
		lx.advance()
	}
}

// scanBlockComment consumes a block comment after its opening marker.
// Block comments nest; the unterminated diagnostic is emitted once, by
// the innermost open comment.
func (lx *lexer) scanBlockComment() bool {
	for {
		c, ok := lx.peek()
		if !ok {
			lx.errorAt("unterminated block comment", true)
			return false
		}
		next, hasNext := lx.peekNext()
		switch {
		case c == '*' && hasNext && next == '/':
			lx.advance()
			lx.advance()
			return true
		case c == '/' && hasNext && next == '*':
			lx.advance()
			lx.advance()
			if !lx.scanBlockComment() {
				return false
			}
		default:
			lx.advance()
		}
	}
}

// scanNumber consumes a digit run with at most one fractional part. The
// dot is only consumed when another digit follows it, so "12..3" scans
// as a number, two dots and a number.
func (lx *lexer) scanNumber() {
	lx.digits()
	if c, ok := lx.peek(); ok && c == '.' {
		if next, ok := lx.peekNext(); ok && isDigit(next) {
			lx.advance()
			lx.digits()
		}
	}
	text := lx.src[lx.start:lx.pos]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		lx.errorAt("invalid number literal", false)
		return
	}
	lx.addLiteralToken(tokenNumber, NumberLiteral(value))
}

func (lx *lexer) digits() {
	for {
		c, ok := lx.peek()
		if !ok || !isDigit(c) {
			return
		}
		lx.advance()
	}
}

func (lx *lexer) scanIdentifier() {
	for {
		c, ok := lx.peek()
		if !ok || !isAlphaNumeric(c) {
			break
		}
		lx.advance()
	}
	text := lx.src[lx.start:lx.pos]
	if kind, ok := keywords[text]; ok {
		lx.addToken(kind)
		return
	}
	lx.addLiteralToken(tokenIdentifier, IdentifierLiteral(text))
}

func (lx *lexer) atEnd() bool {
	return lx.pos >= len(lx.src)
}

func (lx *lexer) advance() byte {
	c := lx.src[lx.pos]
	lx.pos++
	if c == '\n' {
		lx.line++
		lx.lineStart = lx.pos
	}
	return c
}

func (lx *lexer) peek() (byte, bool) {
	if lx.pos >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.pos], true
}

func (lx *lexer) peekNext() (byte, bool) {
	if lx.pos+1 >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.pos+1], true
}

func (lx *lexer) match(expected byte) bool {
	c, ok := lx.peek()
	if !ok || c != expected {
		return false
	}
	lx.advance()
	return true
}

func (lx *lexer) addToken(tt TokenType) {
	lx.addLiteralToken(tt, nil)
}

func (lx *lexer) addLiteralToken(tt TokenType, lit Literal) {
	lx.tokens = append(lx.tokens, Token{
		Type:    tt,
		Lexeme:  lx.src[lx.start:lx.pos],
		Literal: lit,
		Pos: Position{
			Offset: lx.start,
			Line:   lx.startLine,
			Column: lx.startCol,
		},
	})
}

func (lx *lexer) errorAt(message string, incomplete bool) {
	lx.diags = append(lx.diags, Diagnostic{
		Message:    message,
		LineText:   lineAt(lx.src, lx.lineStart),
		Line:       lx.line,
		Column:     lx.pos - lx.lineStart,
		Incomplete: incomplete,
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
