package parser

import (
	"github.com/kristoferhaugen/gsmc/ast"
	"github.com/kristoferhaugen/gsmc/lexer"
)

var assignKinds = map[lexer.TokenType]ast.AssignKind{
	lexer.ASSIGN_OP:    ast.Assign,
	lexer.PLUS_ASSIGN:  ast.PlusAssign,
	lexer.MINUS_ASSIGN: ast.MinusAssign,
	lexer.MUL_ASSIGN:   ast.StarAssign,
	lexer.DIV_ASSIGN:   ast.SlashAssign,
	lexer.MOD_ASSIGN:   ast.ModAssign,
	lexer.EXP_ASSIGN:   ast.ExpAssign,
}

// parseAssign parses an assignment:
//
//	assign := final assignOp expr
//	assignOp := '=' | '+=' | '-=' | '*=' | '/=' | '%=' | '^='
//
// The destination is parsed as a Final (not constrained to an identifier)
// so the semantic analyzer can report a Number destination with "Assignment
// destination must be an identifier." rather than the parser silently
// rejecting it as a syntax error.
func (p *Parser) parseAssign() *ast.Assignment {
	target := p.parseFinal()
	if p.aborted {
		return nil
	}

	kind, ok := assignKinds[p.Tok.Type]
	if !ok {
		p.error("expected an assignment operator")
		return nil
	}
	p.advance()

	value := p.parseExpr()
	if p.aborted {
		return nil
	}

	return &ast.Assignment{Target: target, Kind: kind, Value: value}
}
