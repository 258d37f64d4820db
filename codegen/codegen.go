/*
Package codegen lowers a clean GSM AST (one that has already passed sema)
into textual LLVM IR via the irbuilder.Builder contract.

Generator is a state-holding visitor: a struct carrying the builder plus a
"last computed value" register, rather than Accept returning a value
directly — every visit method is void.

The code generator assumes its input is semantically clean: it is only
ever invoked after sema.Analyze returns no diagnostics. The single error a
well-formed AST can still trigger here is an exponent that is not an
integer literal — see lowerExp.
*/
package codegen

import (
	"fmt"
	"strconv"

	"github.com/kristoferhaugen/gsmc/ast"
	"github.com/kristoferhaugen/gsmc/irbuilder"
)

// Generator walks a Program and emits IR through a Builder. val and cond
// are the "last computed value" registers an Expr visit and a Logic visit
// leave behind, respectively.
type Generator struct {
	b    irbuilder.Builder
	val  irbuilder.Value
	cond irbuilder.Value
	err  error
}

// NewGenerator creates a Generator backed by a fresh LLBuilder.
func NewGenerator() *Generator {
	return &Generator{b: irbuilder.NewLLBuilder()}
}

// Generate lowers prog to textual LLVM IR. prog must already be
// semantically clean. Generate returns an error only for a non-constant
// exponent — the sole codegen-internal check.
func (g *Generator) Generate(prog *ast.Program) (string, error) {
	g.b.DeclareWriteFunc()
	g.b.BeginMain()

	prog.Accept(g)
	if g.err != nil {
		return "", g.err
	}

	g.b.RetZero()
	return g.b.String(), nil
}

func (g *Generator) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Stmts {
		if g.err != nil {
			return
		}
		stmt.Accept(g)
	}
}

// VisitDeclaration allocates a stack slot per variable and stores its
// initializer (or 0, for a variable with no initializer). Declarations
// never call gsm_write — only Assignment does.
func (g *Generator) VisitDeclaration(n *ast.Declaration) {
	for i, name := range n.Vars {
		slot := g.b.Alloca(name)
		if i < len(n.Values) {
			n.Values[i].Accept(g)
			if g.err != nil {
				return
			}
			g.b.Store(g.val, slot)
		} else {
			g.b.Store(g.b.ConstInt("0"), slot)
		}
	}
}

var assignComputers = map[ast.AssignKind]func(b irbuilder.Builder, cur, rhs irbuilder.Value) irbuilder.Value{
	ast.PlusAssign:  func(b irbuilder.Builder, cur, rhs irbuilder.Value) irbuilder.Value { return b.Add(cur, rhs) },
	ast.MinusAssign: func(b irbuilder.Builder, cur, rhs irbuilder.Value) irbuilder.Value { return b.Sub(cur, rhs) },
	ast.StarAssign:  func(b irbuilder.Builder, cur, rhs irbuilder.Value) irbuilder.Value { return b.Mul(cur, rhs) },
	ast.SlashAssign: func(b irbuilder.Builder, cur, rhs irbuilder.Value) irbuilder.Value { return b.Div(cur, rhs) },
	ast.ModAssign:   func(b irbuilder.Builder, cur, rhs irbuilder.Value) irbuilder.Value { return b.Rem(cur, rhs) },
}

// VisitAssignment lowers one of =, +=, -=, *=, /=, %=, ^= and always calls
// gsm_write on the stored result — the one place GSM observes a program's
// behavior.
func (g *Generator) VisitAssignment(n *ast.Assignment) {
	slot, _ := g.b.Lookup(n.Target.Text)

	var result irbuilder.Value
	if n.Kind == ast.ExpAssign {
		cur := g.b.Load(slot)
		result = g.lowerExp(cur, n.Value)
		if g.err != nil {
			return
		}
	} else {
		n.Value.Accept(g)
		if g.err != nil {
			return
		}
		rhs := g.val
		if n.Kind == ast.Assign {
			result = rhs
		} else {
			cur := g.b.Load(slot)
			result = assignComputers[n.Kind](g.b, cur, rhs)
		}
	}

	g.b.Store(result, slot)
	g.b.CallWrite(result)
}

var binaryComputers = map[ast.BinaryOperator]func(b irbuilder.Builder, x, y irbuilder.Value) irbuilder.Value{
	ast.OpPlus:  func(b irbuilder.Builder, x, y irbuilder.Value) irbuilder.Value { return b.Add(x, y) },
	ast.OpMinus: func(b irbuilder.Builder, x, y irbuilder.Value) irbuilder.Value { return b.Sub(x, y) },
	ast.OpMul:   func(b irbuilder.Builder, x, y irbuilder.Value) irbuilder.Value { return b.Mul(x, y) },
	ast.OpDiv:   func(b irbuilder.Builder, x, y irbuilder.Value) irbuilder.Value { return b.Div(x, y) },
	ast.OpMod:   func(b irbuilder.Builder, x, y irbuilder.Value) irbuilder.Value { return b.Rem(x, y) },
}

// VisitBinaryOp lowers +, -, *, /, % directly and ^ via lowerExp, which
// needs the raw exponent AST node rather than a computed value.
func (g *Generator) VisitBinaryOp(n *ast.BinaryOp) {
	n.Left.Accept(g)
	if g.err != nil {
		return
	}
	left := g.val

	if n.Op == ast.OpExp {
		g.val = g.lowerExp(left, n.Right)
		return
	}

	n.Right.Accept(g)
	if g.err != nil {
		return
	}
	right := g.val
	g.val = binaryComputers[n.Op](g.b, left, right)
}

// lowerExp unrolls base^exponent into exponent multiplications by base,
// starting from the constant 1 (so an exponent of 0 yields 1). The
// exponent must be an integer literal — GSM has no way to emit a loop whose
// trip count isn't known at compile time for this operator. A non-constant
// exponent is a documented restriction of the language.
func (g *Generator) lowerExp(base irbuilder.Value, exponent ast.Expr) irbuilder.Value {
	lit, ok := exponent.(*ast.Final)
	if !ok || lit.Kind != ast.FinalNumber {
		g.err = fmt.Errorf("exponent must be an integer literal constant")
		return base
	}
	count, err := strconv.Atoi(lit.Text)
	if err != nil || count < 0 {
		g.err = fmt.Errorf("exponent must be a non-negative integer literal")
		return base
	}
	result := g.b.ConstInt("1")
	for i := 0; i < count; i++ {
		result = g.b.Mul(result, base)
	}
	return result
}

// VisitFinal loads an identifier's current value or materializes a
// numeric-literal constant.
func (g *Generator) VisitFinal(n *ast.Final) {
	if n.Kind == ast.FinalIdent {
		slot, _ := g.b.Lookup(n.Text)
		g.val = g.b.Load(slot)
		return
	}
	g.val = g.b.ConstInt(n.Text)
}

var cmpComputers = map[ast.CompareOperator]func(b irbuilder.Builder, x, y irbuilder.Value) irbuilder.Value{
	ast.CmpEq: func(b irbuilder.Builder, x, y irbuilder.Value) irbuilder.Value { return b.ICmpEQ(x, y) },
	ast.CmpNe: func(b irbuilder.Builder, x, y irbuilder.Value) irbuilder.Value { return b.ICmpNE(x, y) },
	ast.CmpGt: func(b irbuilder.Builder, x, y irbuilder.Value) irbuilder.Value { return b.ICmpSGT(x, y) },
	ast.CmpLt: func(b irbuilder.Builder, x, y irbuilder.Value) irbuilder.Value { return b.ICmpSLT(x, y) },
	ast.CmpGe: func(b irbuilder.Builder, x, y irbuilder.Value) irbuilder.Value { return b.ICmpSGE(x, y) },
	ast.CmpLe: func(b irbuilder.Builder, x, y irbuilder.Value) irbuilder.Value { return b.ICmpSLE(x, y) },
}

func (g *Generator) VisitComparison(n *ast.Comparison) {
	n.Left.Accept(g)
	if g.err != nil {
		return
	}
	left := g.val
	n.Right.Accept(g)
	if g.err != nil {
		return
	}
	right := g.val
	g.cond = cmpComputers[n.Op](g.b, left, right)
}

// VisitLogicalExpr evaluates both sides eagerly — GSM has no
// side-effecting expressions, so short-circuiting would only cost extra
// basic blocks for no observable difference — and combines them bitwise.
func (g *Generator) VisitLogicalExpr(n *ast.LogicalExpr) {
	n.Left.Accept(g)
	if g.err != nil {
		return
	}
	left := g.cond
	n.Right.Accept(g)
	if g.err != nil {
		return
	}
	right := g.cond
	if n.Op == ast.LogicAnd {
		g.cond = g.b.And(left, right)
	} else {
		g.cond = g.b.Or(left, right)
	}
}

// ifClause pairs one condition with the body it guards, flattening
// IfStmt.Body/Elifs into a uniform list so the cond-chain below is built by
// one loop instead of one first-clause-then-Nelifs special case.
type ifClause struct {
	cond ast.Logic
	body []ast.Stmt
}

// VisitIfStmt builds the if/elif*/else? block topology: "if.cond"/
// "if.body" for the first clause, "elif.cond"/"elif.body" per elif, an
// optional "else.body" block, and a shared "after.if" block every clause
// branches to once its body runs.
//
// Each cond block is wired to its immediate successor (the next elif,
// else, or after.if) as it is built, using its own condition value — so
// there is no stale "previous condition" to mistakenly reuse on the last
// cond block when there is no else clause.
func (g *Generator) VisitIfStmt(n *ast.IfStmt) {
	clauses := make([]ifClause, 0, 1+len(n.Elifs))
	clauses = append(clauses, ifClause{cond: n.Cond, body: n.Body})
	for _, elif := range n.Elifs {
		clauses = append(clauses, ifClause{cond: elif.Cond, body: elif.Body})
	}

	condBlocks := make([]*irbuilder.Block, len(clauses))
	bodyBlocks := make([]*irbuilder.Block, len(clauses))
	for i := range clauses {
		condPrefix, bodyPrefix := "elif.cond", "elif.body"
		if i == 0 {
			condPrefix, bodyPrefix = "if.cond", "if.body"
		}
		condBlocks[i] = g.b.NewBlock(condPrefix)
		bodyBlocks[i] = g.b.NewBlock(bodyPrefix)
	}

	afterBlock := g.b.NewBlock("after.if")
	var elseBlock *irbuilder.Block
	if n.Else != nil {
		elseBlock = g.b.NewBlock("else.body")
	}

	g.b.Br(condBlocks[0])

	for i, clause := range clauses {
		g.b.SetBlock(condBlocks[i])
		clause.cond.Accept(g)
		if g.err != nil {
			return
		}
		condVal := g.cond

		next := afterBlock
		if i+1 < len(clauses) {
			next = condBlocks[i+1]
		} else if elseBlock != nil {
			next = elseBlock
		}
		g.b.CondBr(condVal, bodyBlocks[i], next)

		g.b.SetBlock(bodyBlocks[i])
		for _, stmt := range clause.body {
			stmt.Accept(g)
			if g.err != nil {
				return
			}
		}
		g.b.Br(afterBlock)
	}

	if elseBlock != nil {
		g.b.SetBlock(elseBlock)
		for _, stmt := range n.Else {
			stmt.Accept(g)
			if g.err != nil {
				return
			}
		}
		g.b.Br(afterBlock)
	}

	g.b.SetBlock(afterBlock)
}

// VisitIterStmt builds loopc's three-block topology: unconditional branch
// into "loopc.cond", conditional branch to "loopc.body" or "after.loopc",
// body falls back through to "loopc.cond".
func (g *Generator) VisitIterStmt(n *ast.IterStmt) {
	condBlock := g.b.NewBlock("loopc.cond")
	bodyBlock := g.b.NewBlock("loopc.body")
	afterBlock := g.b.NewBlock("after.loopc")

	g.b.Br(condBlock)

	g.b.SetBlock(condBlock)
	n.Cond.Accept(g)
	if g.err != nil {
		return
	}
	g.b.CondBr(g.cond, bodyBlock, afterBlock)

	g.b.SetBlock(bodyBlock)
	for _, stmt := range n.Body {
		stmt.Accept(g)
		if g.err != nil {
			return
		}
	}
	g.b.Br(condBlock)

	g.b.SetBlock(afterBlock)
}
