/*
Package sema implements GSM's semantic analyzer: a single AST walk that
collects diagnostics without aborting early, so a source file with several
independent mistakes reports all of them in one pass.
*/
package sema

import (
	"fmt"

	"github.com/kristoferhaugen/gsmc/ast"
	"github.com/kristoferhaugen/gsmc/scope"
)

// Diagnostic is one semantic error. GSM's diagnostics are plain messages
// with no source position attached — position tracking belongs to lexer
// and parser diagnostics only.
type Diagnostic struct {
	Message string
}

func (d Diagnostic) String() string { return d.Message }

// Analyzer walks a Program collecting Diagnostics. It never aborts on the
// first error — every check runs regardless of earlier failures.
type Analyzer struct {
	scope *scope.Scope
	diags []Diagnostic
}

// NewAnalyzer creates an Analyzer with a fresh, empty Scope.
func NewAnalyzer() *Analyzer {
	return &Analyzer{scope: scope.New()}
}

// Analyze runs every check over prog and returns the collected diagnostics
// (empty if the program is clean).
func (a *Analyzer) Analyze(prog *ast.Program) []Diagnostic {
	a.diags = nil
	prog.Accept(a)
	return a.diags
}

func (a *Analyzer) errorf(format string, args ...interface{}) {
	a.diags = append(a.diags, Diagnostic{Message: fmt.Sprintf(format, args...)})
}

func (a *Analyzer) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Stmts {
		stmt.Accept(a)
	}
}

// VisitDeclaration inserts each declared name into scope, reporting
// "Variable X is already declared" on redeclaration, then checks every
// initializer expression.
func (a *Analyzer) VisitDeclaration(n *ast.Declaration) {
	for _, name := range n.Vars {
		if a.scope.Declare(name) {
			a.errorf("Variable %s is already declared", name)
		}
	}
	for _, value := range n.Values {
		value.Accept(a)
	}
}

// VisitAssignment checks that Target is an identifier (reporting
// "Assignment destination must be an identifier." otherwise), that an
// identifier target is in scope, and checks Value.
func (a *Analyzer) VisitAssignment(n *ast.Assignment) {
	if n.Target.Kind != ast.FinalIdent {
		a.errorf("Assignment destination must be an identifier.")
	} else if !a.scope.IsDeclared(n.Target.Text) {
		a.errorf("Variable %s is not declared", n.Target.Text)
	}
	n.Value.Accept(a)
}

func (a *Analyzer) VisitIfStmt(n *ast.IfStmt) {
	n.Cond.Accept(a)
	for _, stmt := range n.Body {
		stmt.Accept(a)
	}
	for _, elif := range n.Elifs {
		elif.Cond.Accept(a)
		for _, stmt := range elif.Body {
			stmt.Accept(a)
		}
	}
	for _, stmt := range n.Else {
		stmt.Accept(a)
	}
}

func (a *Analyzer) VisitIterStmt(n *ast.IterStmt) {
	n.Cond.Accept(a)
	for _, stmt := range n.Body {
		stmt.Accept(a)
	}
}

// VisitBinaryOp checks both operands, then, for division only, flags a
// literal zero divisor. A non-literal divisor is never checked — it may be
// zero at runtime and GSM has no way to know.
func (a *Analyzer) VisitBinaryOp(n *ast.BinaryOp) {
	n.Left.Accept(a)
	n.Right.Accept(a)

	if n.Op == ast.OpDiv {
		if rhs, ok := n.Right.(*ast.Final); ok && rhs.Kind == ast.FinalNumber && rhs.Text == "0" {
			a.errorf("Division by zero is not allowed.")
		}
	}
}

// VisitFinal reports "Variable X is not declared" for an identifier not yet
// in scope. Numeric literals need no check.
func (a *Analyzer) VisitFinal(n *ast.Final) {
	if n.Kind == ast.FinalIdent && !a.scope.IsDeclared(n.Text) {
		a.errorf("Variable %s is not declared", n.Text)
	}
}

func (a *Analyzer) VisitComparison(n *ast.Comparison) {
	n.Left.Accept(a)
	n.Right.Accept(a)
}

func (a *Analyzer) VisitLogicalExpr(n *ast.LogicalExpr) {
	n.Left.Accept(a)
	n.Right.Accept(a)
}
