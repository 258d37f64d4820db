package parser

import (
	"testing"

	"github.com/kristoferhaugen/gsmc/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Declaration(t *testing.T) {
	p := NewParser(`int x, y = 1, 2;`)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, prog.Stmts, 1)

	decl, ok := prog.Stmts[0].(*ast.Declaration)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, decl.Vars)
	require.Len(t, decl.Values, 2)
}

func TestParser_Declaration_TooManyInitializers(t *testing.T) {
	p := NewParser(`int x = 1, 2;`)
	prog := p.Parse()
	assert.Nil(t, prog)
	require.Len(t, p.Errors, 1)
}

func TestParser_Assignment(t *testing.T) {
	p := NewParser(`x += 2 * 3;`)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, prog.Stmts, 1)

	assign, ok := prog.Stmts[0].(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, ast.PlusAssign, assign.Kind)
	assert.Equal(t, "x", assign.Target.Text)

	bin, ok := assign.Value.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, bin.Op)
}

func TestParser_ExpressionPrecedence(t *testing.T) {
	// 2 + 3 * 4 should parse as 2 + (3 * 4), not (2 + 3) * 4.
	p := NewParser(`x = 2 + 3 * 4;`)
	prog := p.Parse()
	require.Empty(t, p.Errors)

	assign := prog.Stmts[0].(*ast.Assignment)
	top, ok := assign.Value.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpPlus, top.Op)

	right, ok := top.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, right.Op)
}

func TestParser_ExponentRightAssociative(t *testing.T) {
	// 2 ^ 3 ^ 2 should parse as 2 ^ (3 ^ 2).
	p := NewParser(`x = 2 ^ 3 ^ 2;`)
	prog := p.Parse()
	require.Empty(t, p.Errors)

	assign := prog.Stmts[0].(*ast.Assignment)
	top, ok := assign.Value.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpExp, top.Op)

	_, leftIsFinal := top.Left.(*ast.Final)
	assert.True(t, leftIsFinal)

	right, ok := top.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpExp, right.Op)
}

func TestParser_IfElifElse(t *testing.T) {
	src := `
	if x > 0 : begin
		y = 1;
	end elif x < 0 : begin
		y = 2;
	end else: begin
		y = 0;
	end
	`
	p := NewParser(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, prog.Stmts, 1)

	ifStmt, ok := prog.Stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, ifStmt.Body, 1)
	require.Len(t, ifStmt.Elifs, 1)
	require.Len(t, ifStmt.Else, 1)
}

func TestParser_IfWithoutElse(t *testing.T) {
	src := `
	if x > 0 : begin
		y = 1;
	end
	int z = 9;
	`
	p := NewParser(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, prog.Stmts, 2)

	_, isIf := prog.Stmts[0].(*ast.IfStmt)
	assert.True(t, isIf)
	_, isDecl := prog.Stmts[1].(*ast.Declaration)
	assert.True(t, isDecl)
}

func TestParser_Loopc(t *testing.T) {
	src := `loopc (x < 10) and (y > 0) : begin x += 1; end`
	p := NewParser(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, prog.Stmts, 1)

	iter, ok := prog.Stmts[0].(*ast.IterStmt)
	require.True(t, ok)
	logic, ok := iter.Cond.(*ast.LogicalExpr)
	require.True(t, ok)
	assert.Equal(t, ast.LogicAnd, logic.Op)
}

func TestParser_NestedControlFlow(t *testing.T) {
	// if/loopc bodies accept arbitrary statements, so control flow nests.
	src := `
	loopc x < 10 : begin
		if x > 5 : begin
			x += 1;
		end
	end
	`
	p := NewParser(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)

	iter := prog.Stmts[0].(*ast.IterStmt)
	require.Len(t, iter.Body, 1)
	_, isIf := iter.Body[0].(*ast.IfStmt)
	assert.True(t, isIf)
}

func TestParser_PanicModeRecovery(t *testing.T) {
	p := NewParser(`int x = ; int y = 1;`)
	prog := p.Parse()
	assert.Nil(t, prog)
	require.Len(t, p.Errors, 1)
}

func TestParser_UnrecognizedStatement(t *testing.T) {
	p := NewParser(`@@@`)
	prog := p.Parse()
	assert.Nil(t, prog)
	require.Len(t, p.Errors, 1)
}
