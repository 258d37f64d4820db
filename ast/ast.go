/*
Package ast defines the GSM abstract syntax tree: the node types produced by
the parser and walked by the semantic analyzer and code generator.

GSM has three distinct sorts of node, kept as separate Go interfaces rather
than a single unified "expression is also a statement" interface: a Stmt
performs an action (declares, assigns, branches, loops), an Expr computes an
i32 value, and a Logic computes a one-bit condition. Conflating them would
let a condition appear where a value is expected or vice versa — exactly the
class of error GSM's own grammar is built to rule out.
*/
package ast

// Node is the marker interface every AST node implements.
type Node interface {
	// Accept dispatches to the matching Visitor method.
	Accept(v Visitor)
}

// Stmt is a node that performs an action: a declaration, an assignment, or
// a control-flow construct.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a node that computes an i32 value.
type Expr interface {
	Node
	exprNode()
}

// Logic is a node that computes a one-bit condition: a Comparison or a
// LogicalExpr combining two conditions with `and`/`or`.
type Logic interface {
	Node
	logicNode()
}

// Visitor is implemented by every AST consumer (semantic analyzer, code
// generator). One method per concrete node type.
type Visitor interface {
	VisitProgram(n *Program)
	VisitDeclaration(n *Declaration)
	VisitAssignment(n *Assignment)
	VisitIfStmt(n *IfStmt)
	VisitIterStmt(n *IterStmt)
	VisitBinaryOp(n *BinaryOp)
	VisitFinal(n *Final)
	VisitComparison(n *Comparison)
	VisitLogicalExpr(n *LogicalExpr)
}

// Program is the root node: an ordered sequence of top-level statements.
type Program struct {
	Stmts []Stmt
}

func (n *Program) Accept(v Visitor) { v.VisitProgram(n) }

// AssignKind identifies which compound-assignment operator an Assignment
// uses.
type AssignKind int

const (
	Assign AssignKind = iota
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	ModAssign
	ExpAssign
)

// Declaration declares one or more int variables, e.g. `int x, y = 1, 2;`.
// Vars and Values are aligned left-to-right: Values may be shorter than
// Vars, in which case the remaining variables default to 0.
type Declaration struct {
	Vars   []string
	Values []Expr
}

func (n *Declaration) Accept(v Visitor) { v.VisitDeclaration(n) }
func (n *Declaration) stmtNode()        {}

// Assignment assigns (or compound-assigns) Value to Target. Target is
// parsed as a Final rather than constrained to an identifier at parse time
// — GSM's grammar admits either an Ident or a Number there, and it is the
// semantic analyzer's job to reject a Number target with "Assignment
// destination must be an identifier."
type Assignment struct {
	Target *Final
	Kind   AssignKind
	Value  Expr
}

func (n *Assignment) Accept(v Visitor) { v.VisitAssignment(n) }
func (n *Assignment) stmtNode()        {}

// ElifClause is one `elif <logic> : begin ... end` clause of an IfStmt.
type ElifClause struct {
	Cond Logic
	Body []Stmt
}

// IfStmt is an `if ... elif* ... else? end`-shaped conditional. Else is nil
// when no else clause was present.
type IfStmt struct {
	Cond  Logic
	Body  []Stmt
	Elifs []ElifClause
	Else  []Stmt
}

func (n *IfStmt) Accept(v Visitor) { v.VisitIfStmt(n) }
func (n *IfStmt) stmtNode()        {}

// IterStmt is a `loopc <logic> : begin ... end` while-loop.
type IterStmt struct {
	Cond Logic
	Body []Stmt
}

func (n *IterStmt) Accept(v Visitor) { v.VisitIterStmt(n) }
func (n *IterStmt) stmtNode()        {}

// BinaryOperator identifies an arithmetic operator.
type BinaryOperator int

const (
	OpPlus BinaryOperator = iota
	OpMinus
	OpMul
	OpDiv
	OpMod
	OpExp
)

// BinaryOp is a binary arithmetic expression.
type BinaryOp struct {
	Op    BinaryOperator
	Left  Expr
	Right Expr
}

func (n *BinaryOp) Accept(v Visitor) { v.VisitBinaryOp(n) }
func (n *BinaryOp) exprNode()        {}

// FinalKind distinguishes a Final node's two leaf forms.
type FinalKind int

const (
	FinalIdent FinalKind = iota
	FinalNumber
)

// Final is a terminal expression: either an identifier reference or an
// integer literal.
type Final struct {
	Kind FinalKind
	Text string
}

func (n *Final) Accept(v Visitor) { v.VisitFinal(n) }
func (n *Final) exprNode()        {}

// CompareOperator identifies a relational operator.
type CompareOperator int

const (
	CmpEq CompareOperator = iota
	CmpNe
	CmpGt
	CmpLt
	CmpGe
	CmpLe
)

// Comparison compares two arithmetic expressions, producing a one-bit
// condition.
type Comparison struct {
	Op    CompareOperator
	Left  Expr
	Right Expr
}

func (n *Comparison) Accept(v Visitor) { v.VisitComparison(n) }
func (n *Comparison) logicNode()       {}

// LogicalOperator identifies `and`/`or`.
type LogicalOperator int

const (
	LogicAnd LogicalOperator = iota
	LogicOr
)

// LogicalExpr combines two conditions with `and`/`or`. GSM has one shared,
// left-associative precedence level for and/or and evaluates both sides
// eagerly, never short-circuiting.
type LogicalExpr struct {
	Op    LogicalOperator
	Left  Logic
	Right Logic
}

func (n *LogicalExpr) Accept(v Visitor) { v.VisitLogicalExpr(n) }
func (n *LogicalExpr) logicNode()       {}
