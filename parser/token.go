package parser

import "strconv"

// TokenType enumerates lexical categories recognised by the scanner.
type TokenType int

const (
	tokenEOF TokenType = iota

	// Literals
	tokenIdentifier
	tokenNumber
	tokenString

	// Keywords
	tokenAnd
	tokenClass
	tokenElse
	tokenFalse
	tokenFun
	tokenFor
	tokenIf
	tokenNil
	tokenOr
	tokenPrint
	tokenReturn
	tokenSuper
	tokenThis
	tokenTrue
	tokenVar
	tokenWhile

	// Operators and punctuation
	tokenLParen       // (
	tokenRParen       // )
	tokenLBrace       // {
	tokenRBrace       // }
	tokenComma        // ,
	tokenDot          // .
	tokenMinus        // -
	tokenPlus         // +
	tokenSemicolon    // ;
	tokenSlash        // /
	tokenStar         // *
	tokenBang         // !
	tokenBangEqual    // !=
	tokenEqual        // =
	tokenEqualEqual   // ==
	tokenGreater      // >
	tokenGreaterEqual // >=
	tokenLess         // <
	tokenLessEqual    // <=
	tokenQuestion     // ?
	tokenColon        // :
)

func (tt TokenType) String() string {
	switch tt {
	case tokenEOF:
		return "EOF"
	case tokenIdentifier:
		return "identifier"
	case tokenNumber:
		return "number"
	case tokenString:
		return "string"
	case tokenAnd:
		return "and"
	case tokenClass:
		return "class"
	case tokenElse:
		return "else"
	case tokenFalse:
		return "false"
	case tokenFun:
		return "fun"
	case tokenFor:
		return "for"
	case tokenIf:
		return "if"
	case tokenNil:
		return "nil"
	case tokenOr:
		return "or"
	case tokenPrint:
		return "print"
	case tokenReturn:
		return "return"
	case tokenSuper:
		return "super"
	case tokenThis:
		return "this"
	case tokenTrue:
		return "true"
	case tokenVar:
		return "var"
	case tokenWhile:
		return "while"
	case tokenLParen:
		return "("
	case tokenRParen:
		return ")"
	case tokenLBrace:
		return "{"
	case tokenRBrace:
		return "}"
	case tokenComma:
		return ","
	case tokenDot:
		return "."
	case tokenMinus:
		return "-"
	case tokenPlus:
		return "+"
	case tokenSemicolon:
		return ";"
	case tokenSlash:
		return "/"
	case tokenStar:
		return "*"
	case tokenBang:
		return "!"
	case tokenBangEqual:
		return "!="
	case tokenEqual:
		return "="
	case tokenEqualEqual:
		return "=="
	case tokenGreater:
		return ">"
	case tokenGreaterEqual:
		return ">="
	case tokenLess:
		return "<"
	case tokenLessEqual:
		return "<="
	case tokenQuestion:
		return "?"
	case tokenColon:
		return ":"
	default:
		return "unknown"
	}
}

// keywords is the reserved-word table, shared read-only by all scans.
// Lookups are case sensitive. The table deliberately includes "eof",
// matching the language's historical keyword set.
var keywords = map[string]TokenType{
	"and":    tokenAnd,
	"class":  tokenClass,
	"else":   tokenElse,
	"false":  tokenFalse,
	"fun":    tokenFun,
	"for":    tokenFor,
	"if":     tokenIf,
	"nil":    tokenNil,
	"or":     tokenOr,
	"print":  tokenPrint,
	"return": tokenReturn,
	"super":  tokenSuper,
	"this":   tokenThis,
	"true":   tokenTrue,
	"var":    tokenVar,
	"while":  tokenWhile,
	"eof":    tokenEOF,
}

// Position tracks a source location. Column is a byte offset within the
// line, not a rune count; non-ASCII input is out of scope for column
// accounting.
type Position struct {
	Offset int // zero-based byte offset into the source
	Line   int // one-based line number
	Column int // zero-based byte offset within the line
}

// Token is a single lexical unit produced by the scanner. Tokens are
// immutable once created.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal Literal // decoded literal value, nil for non-literal tokens
	Pos     Position
}

// String returns the raw lexeme, so a token sequence can be rendered back
// into scannable text.
func (t Token) String() string {
	return t.Lexeme
}

// Is reports whether two tokens are equal. Tokens compare by type only;
// lexeme and position are metadata, not identity.
func (t Token) Is(other Token) bool {
	return t.Type == other.Type
}

// Literal is the decoded value carried by identifier, string, number and
// boolean tokens or literal expressions. The set of variants is closed.
type Literal interface {
	String() string
	literal()
}

// NumberLiteral is a numeric literal value.
type NumberLiteral float64

func (n NumberLiteral) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (NumberLiteral) literal() {}

// StringLiteral is the text between the quotes of a string literal.
type StringLiteral string

func (s StringLiteral) String() string { return string(s) }

func (StringLiteral) literal() {}

// IdentifierLiteral is the name carried by an identifier token.
type IdentifierLiteral string

func (i IdentifierLiteral) String() string { return string(i) }

func (IdentifierLiteral) literal() {}

// BoolLiteral is a boolean literal value. The scanner never emits it;
// the parser constructs it for the true and false keywords.
type BoolLiteral bool

func (b BoolLiteral) String() string { return strconv.FormatBool(bool(b)) }

func (BoolLiteral) literal() {}
