package parser

import (
	"github.com/kristoferhaugen/gsmc/ast"
	"github.com/kristoferhaugen/gsmc/lexer"
)

var logicOps = map[lexer.TokenType]ast.LogicalOperator{
	lexer.KW_and: ast.LogicAnd,
	lexer.KW_or:  ast.LogicOr,
}

var cmpOps = map[lexer.TokenType]ast.CompareOperator{
	lexer.EQ_OP: ast.CmpEq,
	lexer.NE_OP: ast.CmpNe,
	lexer.GT_OP: ast.CmpGt,
	lexer.LT_OP: ast.CmpLt,
	lexer.GE_OP: ast.CmpGe,
	lexer.LE_OP: ast.CmpLe,
}

// parseLogic parses and/or-combined conditions, left-associative, one
// shared precedence level for both operators — no `or` < `and` split:
//
//	logic := comparison (('and' | 'or') comparison)*
func (p *Parser) parseLogic() ast.Logic {
	left := p.parseComparison()
	if p.aborted {
		return nil
	}
	for {
		op, ok := logicOps[p.Tok.Type]
		if !ok {
			break
		}
		p.advance()
		right := p.parseComparison()
		if p.aborted {
			return nil
		}
		left = &ast.LogicalExpr{Op: op, Left: left, Right: right}
	}
	return left
}

// parseComparison parses a single relational test or a parenthesized
// sub-condition:
//
//	comparison := '(' logic ')' | expr cmpOp expr
//	cmpOp := '==' | '!=' | '>' | '<' | '>=' | '<='
func (p *Parser) parseComparison() ast.Logic {
	if p.Tok.Is(lexer.LEFT_PAREN) {
		p.advance()
		inner := p.parseLogic()
		if p.aborted {
			return nil
		}
		if !p.consume(lexer.RIGHT_PAREN) {
			return nil
		}
		return inner
	}

	left := p.parseExpr()
	if p.aborted {
		return nil
	}
	op, ok := cmpOps[p.Tok.Type]
	if !ok {
		p.error("expected a comparison operator")
		return nil
	}
	p.advance()
	right := p.parseExpr()
	if p.aborted {
		return nil
	}
	return &ast.Comparison{Op: op, Left: left, Right: right}
}
