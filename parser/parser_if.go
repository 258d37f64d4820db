package parser

import (
	"github.com/kristoferhaugen/gsmc/ast"
	"github.com/kristoferhaugen/gsmc/lexer"
)

// parseIf parses an if/elif*/else? chain:
//
//	ifStmt := 'if' logic block ('elif' logic block)* ('else' block)?
//
// Each block fully consumes its own trailing 'end', so nothing extra needs
// tracking here: parseStmt's caller simply resumes from whatever token
// follows the last 'end', whether or not an else was present.
func (p *Parser) parseIf() *ast.IfStmt {
	if !p.consume(lexer.KW_if) {
		return nil
	}

	cond := p.parseLogic()
	if p.aborted {
		return nil
	}
	body := p.parseBlock()
	if p.aborted {
		return nil
	}

	stmt := &ast.IfStmt{Cond: cond, Body: body}

	for p.Tok.Is(lexer.KW_elif) {
		p.advance()
		elifCond := p.parseLogic()
		if p.aborted {
			return nil
		}
		elifBody := p.parseBlock()
		if p.aborted {
			return nil
		}
		stmt.Elifs = append(stmt.Elifs, ast.ElifClause{Cond: elifCond, Body: elifBody})
	}

	if p.Tok.Is(lexer.KW_else) {
		p.advance()
		elseBody := p.parseBlock()
		if p.aborted {
			return nil
		}
		stmt.Else = elseBody
	}

	return stmt
}
