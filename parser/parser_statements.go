package parser

import (
	"github.com/kristoferhaugen/gsmc/ast"
	"github.com/kristoferhaugen/gsmc/lexer"
)

// parseProgram parses the top-level statement sequence:
//
//	program := stmt* EOI
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.Tok.Is(lexer.EOF_TYPE) && !p.aborted {
		stmt := p.parseStmt()
		if p.aborted {
			return nil
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog
}

// parseStmt dispatches on the first token of a statement:
//
//	stmt := decl | assign ';' | ifStmt | iterStmt
func (p *Parser) parseStmt() ast.Stmt {
	switch p.Tok.Type {
	case lexer.KW_int:
		return p.parseDecl()
	case lexer.IDENTIFIER_ID, lexer.NUMBER_ID:
		// A NUMBER_ID-led assignment is syntactically valid here too — sema
		// is what rejects a non-identifier target.
		assign := p.parseAssign()
		if p.aborted {
			return nil
		}
		p.consume(lexer.SEMICOLON_DELIM)
		return assign
	case lexer.KW_if:
		return p.parseIf()
	case lexer.KW_loopc:
		return p.parseIter()
	default:
		p.error("expected a declaration, assignment, if, or loopc statement")
		return nil
	}
}

// parseBlock parses the ": begin stmt* end" tail shared by if/elif/else/
// loopc clauses.
func (p *Parser) parseBlock() []ast.Stmt {
	if !p.consume(lexer.COLON_DELIM) {
		return nil
	}
	if !p.consume(lexer.KW_begin) {
		return nil
	}
	var body []ast.Stmt
	for !p.Tok.Is(lexer.KW_end) {
		if p.aborted || p.Tok.Is(lexer.EOF_TYPE) {
			p.error("expected 'end' to close block")
			return nil
		}
		body = append(body, p.parseStmt())
		if p.aborted {
			return nil
		}
	}
	p.advance() // consume 'end'
	return body
}
