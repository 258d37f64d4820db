/*
Package compiler drives GSM's full pipeline — lexer, parser, semantic
analyzer, code generator — and is shared by cmd/gsm's one-shot mode and the
repl package's line-at-a-time mode, so the phase sequence lives in one
place instead of being duplicated between them.
*/
package compiler

import (
	"github.com/kristoferhaugen/gsmc/codegen"
	"github.com/kristoferhaugen/gsmc/parser"
	"github.com/kristoferhaugen/gsmc/sema"
)

// Result is the outcome of compiling one GSM source string. Exactly one of
// IR or Errors is populated: a parse failure reports one error, a dirty
// semantic pass reports every diagnostic it collected, and a clean pass
// produces IR with no errors.
type Result struct {
	IR     string
	Errors []string
}

// Compile runs src through the lexer, parser, semantic analyzer, and code
// generator in sequence, stopping at the first phase that fails.
func Compile(src string) Result {
	p := parser.NewParser(src)
	prog := p.Parse()
	if prog == nil {
		return Result{Errors: p.Errors}
	}

	diags := sema.NewAnalyzer().Analyze(prog)
	if len(diags) > 0 {
		errs := make([]string, len(diags))
		for i, d := range diags {
			errs[i] = d.Message
		}
		return Result{Errors: errs}
	}

	ir, err := codegen.NewGenerator().Generate(prog)
	if err != nil {
		return Result{Errors: []string{err.Error()}}
	}
	return Result{IR: ir}
}
