package parser

import (
	"github.com/kristoferhaugen/gsmc/ast"
	"github.com/kristoferhaugen/gsmc/lexer"
)

// parseDecl parses an int declaration:
//
//	decl := 'int' ident (',' ident)* ('=' expr (',' expr)*)? ';'
//
// Values align to Vars left-to-right; there may never be more values than
// variables — any excess is a syntax error. Fewer values than variables is
// allowed; the remaining variables are zero-initialized by the code
// generator.
func (p *Parser) parseDecl() *ast.Declaration {
	if !p.consume(lexer.KW_int) {
		return nil
	}

	decl := &ast.Declaration{}

	if !p.expect(lexer.IDENTIFIER_ID) {
		return nil
	}
	decl.Vars = append(decl.Vars, p.Tok.Literal)
	p.advance()

	for p.Tok.Is(lexer.COMMA_DELIM) {
		p.advance()
		if !p.expect(lexer.IDENTIFIER_ID) {
			return nil
		}
		decl.Vars = append(decl.Vars, p.Tok.Literal)
		p.advance()
	}

	if p.Tok.Is(lexer.ASSIGN_OP) {
		p.advance()
		for {
			if len(decl.Values) >= len(decl.Vars) {
				p.error("too many initializers in declaration")
				return nil
			}
			value := p.parseExpr()
			if p.aborted {
				return nil
			}
			decl.Values = append(decl.Values, value)
			if !p.Tok.Is(lexer.COMMA_DELIM) {
				break
			}
			p.advance()
		}
	}

	if !p.consume(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return decl
}
