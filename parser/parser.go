/*
Package parser implements GSM's recursive-descent parser: one function per
grammar production, LL(1) with a single token of lookahead, panic-mode
error recovery, and one reported diagnostic per parse (the first error
drains the rest of the token stream rather than trying to resync and
report more). Files are split by grammar concern: declarations,
assignments, expressions, logical expressions, if/elif/else, and loopc.
*/
package parser

import (
	"fmt"

	"github.com/kristoferhaugen/gsmc/ast"
	"github.com/kristoferhaugen/gsmc/lexer"
)

// Parser holds the single-token-lookahead parsing state.
type Parser struct {
	lex     lexer.Lexer
	Tok     lexer.Token
	Errors  []string
	aborted bool
}

// NewParser creates a Parser over src and primes the lookahead token.
func NewParser(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src)}
	p.Tok = p.lex.NextToken()
	return p
}

// Parse parses the entire token stream and returns the resulting Program.
// On a syntax error, Parse returns nil and Errors holds exactly one message:
// panic mode discards the rest of the file rather than resynchronizing to
// find more.
func (p *Parser) Parse() *ast.Program {
	prog := p.parseProgram()
	if p.aborted {
		return nil
	}
	return prog
}

// advance consumes Tok and fetches the next token.
func (p *Parser) advance() {
	p.Tok = p.lex.NextToken()
}

// expect reports a syntax error if Tok does not have kind k. It does not
// consume Tok either way — callers combine expect with consume or advance.
func (p *Parser) expect(k lexer.TokenType) bool {
	if p.Tok.Is(k) {
		return true
	}
	p.error(fmt.Sprintf("expected %s, got %s (%q)", k, p.Tok.Type, p.Tok.Literal))
	return false
}

// consume checks Tok against k and advances past it on success.
func (p *Parser) consume(k lexer.TokenType) bool {
	if !p.expect(k) {
		return false
	}
	p.advance()
	return true
}

// error records a single diagnostic and enters panic mode: every remaining
// production bails out immediately once aborted is set, and parseProgram
// drains the remaining tokens up to end-of-input.
func (p *Parser) error(msg string) {
	if p.aborted {
		return
	}
	p.Errors = append(p.Errors, fmt.Sprintf("line %d: %s", p.Tok.Line, msg))
	p.aborted = true
	for !p.Tok.Is(lexer.EOF_TYPE) {
		p.advance()
	}
}
