package parser

import (
	"github.com/kristoferhaugen/gsmc/ast"
	"github.com/kristoferhaugen/gsmc/lexer"
)

// parseIter parses a loopc while-loop:
//
//	iterStmt := 'loopc' logic block
func (p *Parser) parseIter() *ast.IterStmt {
	if !p.consume(lexer.KW_loopc) {
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
	return &ast.IterStmt{Cond: cond, Body: body}
}
