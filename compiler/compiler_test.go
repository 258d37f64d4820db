package compiler_test

import (
	"testing"

	"github.com/kristoferhaugen/gsmc/compiler"
	"github.com/stretchr/testify/assert"
)

func TestCompile_CleanProgramProducesIR(t *testing.T) {
	res := compiler.Compile(`int x = 1; x += 2;`)
	assert.Empty(t, res.Errors)
	assert.Contains(t, res.IR, "@main")
}

func TestCompile_SyntaxErrorStopsBeforeSema(t *testing.T) {
	res := compiler.Compile(`int x = ;`)
	assert.Empty(t, res.IR)
	assert.Len(t, res.Errors, 1)
}

func TestCompile_SemanticErrorsAllReported(t *testing.T) {
	res := compiler.Compile(`int x = 1; int x = 2; y = 3;`)
	assert.Empty(t, res.IR)
	assert.Len(t, res.Errors, 2)
}

func TestCompile_NonLiteralExponentReportedAsError(t *testing.T) {
	res := compiler.Compile(`int x = 2; int y = 3; x = x ^ y;`)
	assert.Empty(t, res.IR)
	assert.Len(t, res.Errors, 1)
}
