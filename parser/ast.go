package parser

import "fmt"

// Expr is an expression node. Every node renders itself as a fully
// parenthesised prefix form, which is what the driver prints and what the
// golden tests compare against. Nodes are immutable once built.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// BinaryExpr is an infix operator application.
type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, e.Left, e.Right)
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr is a prefix operator application.
type UnaryExpr struct {
	Operator Token
	Right    Expr
}

func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", e.Operator.Lexeme, e.Right)
}

func (*UnaryExpr) exprNode() {}

// GroupingExpr is a parenthesised expression.
type GroupingExpr struct {
	Inner Expr
}

func (e *GroupingExpr) String() string {
	return fmt.Sprintf("(grp %s)", e.Inner)
}

func (*GroupingExpr) exprNode() {}

// LiteralExpr is a literal value; a nil Value is the nil literal.
type LiteralExpr struct {
	Value Literal
}

func (e *LiteralExpr) String() string {
	if e.Value == nil {
		return "nil"
	}
	return e.Value.String()
}

func (*LiteralExpr) exprNode() {}

// ConditionalExpr is a ternary conditional.
type ConditionalExpr struct {
	Cond        Expr
	Consequent  Expr
	Alternative Expr
}

func (e *ConditionalExpr) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", e.Cond, e.Consequent, e.Alternative)
}

func (*ConditionalExpr) exprNode() {}
