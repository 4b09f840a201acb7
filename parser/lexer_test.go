package parser

import (
	"strings"
	"testing"
)

func scanTokens(t *testing.T, src string) []Token {
	t.Helper()
	tokens, diags := newLexer(src).scan()
	if len(diags) > 0 {
		t.Fatalf("unexpected scan diagnostics for %q: %v", src, diags)
	}
	return tokens
}

func scanDiags(t *testing.T, src string) ErrorList {
	t.Helper()
	tokens, diags := newLexer(src).scan()
	if len(diags) == 0 {
		t.Fatalf("expected scan diagnostics for %q, got tokens %v", src, tokens)
	}
	if tokens != nil {
		t.Fatalf("expected no tokens alongside diagnostics, got %v", tokens)
	}
	return diags
}

func TestScanOperatorsAndPunctuation(t *testing.T) {
	src := "( ) { } , . - + ; / * ! != = == > >= < <= ? :"
	tokens := scanTokens(t, src)
	tokens = tokens[:len(tokens)-1] // drop EOF

	want := []TokenType{
		tokenLParen,
		tokenRParen,
		tokenLBrace,
		tokenRBrace,
		tokenComma,
		tokenDot,
		tokenMinus,
		tokenPlus,
		tokenSemicolon,
		tokenSlash,
		tokenStar,
		tokenBang,
		tokenBangEqual,
		tokenEqual,
		tokenEqualEqual,
		tokenGreater,
		tokenGreaterEqual,
		tokenLess,
		tokenLessEqual,
		tokenQuestion,
		tokenColon,
	}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}

	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("token %d: expected type %v, got %v", i, typ, tokens[i].Type)
		}
	}
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	src := "and class else false fun for if nil or print return super this true var while foo Bar a1 eof"
	tokens := scanTokens(t, src)
	tokens = tokens[:len(tokens)-1] // drop EOF

	want := []struct {
		typ    TokenType
		lexeme string
	}{
		{tokenAnd, "and"},
		{tokenClass, "class"},
		{tokenElse, "else"},
		{tokenFalse, "false"},
		{tokenFun, "fun"},
		{tokenFor, "for"},
		{tokenIf, "if"},
		{tokenNil, "nil"},
		{tokenOr, "or"},
		{tokenPrint, "print"},
		{tokenReturn, "return"},
		{tokenSuper, "super"},
		{tokenThis, "this"},
		{tokenTrue, "true"},
		{tokenVar, "var"},
		{tokenWhile, "while"},
		{tokenIdentifier, "foo"},
		{tokenIdentifier, "Bar"},
		{tokenIdentifier, "a1"},
		{tokenEOF, "eof"}, // "eof" is in the keyword table
	}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}

	for i, tt := range want {
		tok := tokens[i]
		if tok.Type != tt.typ {
			t.Errorf("token %d: expected type %v, got %v", i, tt.typ, tok.Type)
		}
		if tok.Lexeme != tt.lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, tt.lexeme, tok.Lexeme)
		}
	}
}

func TestScanKeywordsAreCaseSensitive(t *testing.T) {
	tokens := scanTokens(t, "True NIL Eof")
	tokens = tokens[:len(tokens)-1]

	for i, tok := range tokens {
		if tok.Type != tokenIdentifier {
			t.Errorf("token %d: expected identifier, got %v", i, tok.Type)
		}
	}
}

func TestScanNumberLiterals(t *testing.T) {
	src := "0 123 12.5 0.0001 55."
	tokens := scanTokens(t, src)
	tokens = tokens[:len(tokens)-1]

	want := []struct {
		typ    TokenType
		lexeme string
		value  float64
	}{
		{tokenNumber, "0", 0},
		{tokenNumber, "123", 123},
		{tokenNumber, "12.5", 12.5},
		{tokenNumber, "0.0001", 0.0001},
		{tokenNumber, "55", 55},
		{tokenDot, ".", 0}, // the dot is not consumed without a following digit
	}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}

	for i, tt := range want {
		tok := tokens[i]
		if tok.Type != tt.typ {
			t.Errorf("token %d: expected type %v, got %v", i, tt.typ, tok.Type)
			continue
		}
		if tok.Lexeme != tt.lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, tt.lexeme, tok.Lexeme)
		}
		if tt.typ != tokenNumber {
			continue
		}
		value, ok := tok.Literal.(NumberLiteral)
		if !ok {
			t.Fatalf("token %d: expected NumberLiteral, got %T", i, tok.Literal)
		}
		if float64(value) != tt.value {
			t.Errorf("token %d: expected value %v, got %v", i, tt.value, float64(value))
		}
	}
}

func TestScanNumberWithTwoDots(t *testing.T) {
	tokens := scanTokens(t, "12..3")
	tokens = tokens[:len(tokens)-1]

	want := []TokenType{tokenNumber, tokenDot, tokenDot, tokenNumber}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("token %d: expected type %v, got %v", i, typ, tokens[i].Type)
		}
	}
}

func TestScanNumberOutOfRange(t *testing.T) {
	diags := scanDiags(t, "1"+strings.Repeat("0", 400))
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Message != "invalid number literal" {
		t.Fatalf("unexpected message: %q", diags[0].Message)
	}
	if diags[0].Incomplete {
		t.Fatalf("out of range number must not be incomplete")
	}
}

func TestScanStringLiterals(t *testing.T) {
	src := "\"hello\" \"\" \"a\\nb\""
	tokens := scanTokens(t, src)
	tokens = tokens[:len(tokens)-1]

	want := []string{
		"hello",
		"",
		`a\nb`, // no escape processing, the backslash is a plain byte
	}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}

	for i, expected := range want {
		tok := tokens[i]
		if tok.Type != tokenString {
			t.Fatalf("token %d: expected string type, got %v", i, tok.Type)
		}
		value, ok := tok.Literal.(StringLiteral)
		if !ok {
			t.Fatalf("token %d: expected StringLiteral, got %T", i, tok.Literal)
		}
		if string(value) != expected {
			t.Errorf("token %d: expected value %q, got %q", i, expected, value)
		}
	}
}

func TestScanMultiLineString(t *testing.T) {
	src := "\"line1\nline2\" after"
	tokens := scanTokens(t, src)
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	value, ok := tokens[0].Literal.(StringLiteral)
	if !ok || string(value) != "line1\nline2" {
		t.Fatalf("expected embedded newline in value, got %v", tokens[0].Literal)
	}
	if tokens[0].Pos.Line != 1 || tokens[0].Pos.Column != 0 {
		t.Fatalf("string token position: expected 1:0, got %d:%d", tokens[0].Pos.Line, tokens[0].Pos.Column)
	}
	if tokens[1].Pos.Line != 2 || tokens[1].Pos.Column != 7 {
		t.Fatalf("following token position: expected 2:7, got %d:%d", tokens[1].Pos.Line, tokens[1].Pos.Column)
	}
}

func TestScanSkipsComments(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"line comment", "// nothing here\n1"},
		{"line comment at end", "1 // trailing"},
		{"block comment", "/* skip */ 1"},
		{"block comment with stars", "/** skip **/ 1"},
		{"nested block comment", "/* a /* b */ c */ 1"},
		{"multi line block comment", "/* a\nb\nc */ 1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := scanTokens(t, tc.src)
			tokens = tokens[:len(tokens)-1]
			if len(tokens) != 1 || tokens[0].Type != tokenNumber {
				t.Fatalf("expected single number token, got %v", tokens)
			}
		})
	}
}

func TestScanLineAndColumnTracking(t *testing.T) {
	src := "1\n  2\n"
	tokens := scanTokens(t, src)

	want := []struct {
		typ    TokenType
		offset int
		line   int
		column int
	}{
		{tokenNumber, 0, 1, 0},
		{tokenNumber, 4, 2, 2},
		{tokenEOF, 6, 3, 0},
	}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}

	for i, tt := range want {
		pos := tokens[i].Pos
		if pos.Offset != tt.offset || pos.Line != tt.line || pos.Column != tt.column {
			t.Errorf("token %d: expected position %d:%d offset %d, got %+v",
				i, tt.line, tt.column, tt.offset, pos)
		}
	}
}

func TestScanEmptySource(t *testing.T) {
	tokens := scanTokens(t, "")
	if len(tokens) != 1 {
		t.Fatalf("expected lone EOF token, got %d tokens", len(tokens))
	}
	tok := tokens[0]
	if tok.Type != tokenEOF {
		t.Fatalf("expected EOF, got %v", tok.Type)
	}
	if tok.Pos.Offset != 0 || tok.Pos.Line != 1 || tok.Pos.Column != 0 {
		t.Fatalf("unexpected position: %+v", tok.Pos)
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	diags := scanDiags(t, "~")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	d := diags[0]
	if d.Message != "unexpected character" {
		t.Errorf("unexpected message: %q", d.Message)
	}
	if d.Line != 1 || d.Column != 1 {
		t.Errorf("expected position 1:1, got %d:%d", d.Line, d.Column)
	}
	if d.LineText != "~" {
		t.Errorf("expected line text %q, got %q", "~", d.LineText)
	}
	if d.Incomplete {
		t.Errorf("unexpected character must not be incomplete")
	}
}

func TestScanBatchesDiagnostics(t *testing.T) {
	diags := scanDiags(t, "~ \"test ")
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %v", len(diags), diags)
	}
	if diags[0].Message != "unexpected character" || diags[0].Column != 1 {
		t.Errorf("first diagnostic: expected unexpected character at column 1, got %v", diags[0])
	}
	if diags[1].Message != "unterminated string" || diags[1].Column != 7 {
		t.Errorf("second diagnostic: expected unterminated string at column 7, got %v", diags[1])
	}
	if diags[0].Incomplete || !diags[1].Incomplete {
		t.Errorf("only the unterminated string is incomplete, got %v and %v",
			diags[0].Incomplete, diags[1].Incomplete)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	cases := []struct {
		name       string
		src        string
		wantLine   int
		wantColumn int
	}{
		{"lone quote", "\"", 1, 1},
		{"open string", "\"abc", 1, 3},
		{"open string after newline", "1\n\"abc", 2, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags := scanDiags(t, tc.src)
			if len(diags) != 1 {
				t.Fatalf("expected 1 diagnostic, got %d", len(diags))
			}
			d := diags[0]
			if d.Message != "unterminated string" {
				t.Errorf("unexpected message: %q", d.Message)
			}
			if d.Line != tc.wantLine || d.Column != tc.wantColumn {
				t.Errorf("expected position %d:%d, got %d:%d",
					tc.wantLine, tc.wantColumn, d.Line, d.Column)
			}
			if !d.Incomplete {
				t.Errorf("unterminated string must be incomplete")
			}
		})
	}
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"flat", "/* open"},
		{"nested", "/* a /* b"},
		{"closed inner", "/* a /* b */"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags := scanDiags(t, tc.src)
			if len(diags) != 1 {
				t.Fatalf("expected a single diagnostic, got %d: %v", len(diags), diags)
			}
			d := diags[0]
			if d.Message != "unterminated block comment" {
				t.Errorf("unexpected message: %q", d.Message)
			}
			if !d.Incomplete {
				t.Errorf("unterminated block comment must be incomplete")
			}
		})
	}
}
