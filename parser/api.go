package parser

import "io"

// ScanString tokenizes Lox source text in one pass. It returns the token
// sequence, terminated by an end-of-input token, or an ErrorList carrying
// every scan diagnostic, never both.
func ScanString(src string) ([]Token, error) {
	tokens, diags := newLexer(src).scan()
	if err := diags.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// ParseString scans and parses Lox source text into a single expression.
// Source with scan diagnostics is never parsed. A non-nil error is always
// an ErrorList.
func ParseString(src string) (Expr, error) {
	tokens, err := ScanString(src)
	if err != nil {
		return nil, err
	}
	expr, diags := newParser(src, tokens).parse()
	if err := diags.Err(); err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseReader consumes Lox source from an io.Reader and parses it like
// ParseString.
func ParseReader(r io.Reader) (Expr, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data))
}
