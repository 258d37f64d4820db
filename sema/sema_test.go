package sema_test

import (
	"testing"

	"github.com/kristoferhaugen/gsmc/parser"
	"github.com/kristoferhaugen/gsmc/sema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, src string) []sema.Diagnostic {
	t.Helper()
	p := parser.NewParser(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	require.NotNil(t, prog)
	return sema.NewAnalyzer().Analyze(prog)
}

func TestSema_CleanProgramHasNoDiagnostics(t *testing.T) {
	diags := analyze(t, `int x = 1; x += 2;`)
	assert.Empty(t, diags)
}

func TestSema_Redeclaration(t *testing.T) {
	diags := analyze(t, `int x = 1; int x = 2;`)
	require.Len(t, diags, 1)
	assert.Equal(t, "Variable x is already declared", diags[0].Message)
}

func TestSema_UseBeforeDeclaration(t *testing.T) {
	diags := analyze(t, `x = 1;`)
	require.Len(t, diags, 1)
	assert.Equal(t, "Variable x is not declared", diags[0].Message)
}

func TestSema_AssignmentTargetMustBeIdentifier(t *testing.T) {
	// GSM's grammar parses any Final as an assignment target; sema rejects
	// a numeric-literal target.
	diags := analyze(t, `1 = 2;`)
	require.Len(t, diags, 1)
	assert.Equal(t, "Assignment destination must be an identifier.", diags[0].Message)
}

func TestSema_DivisionByLiteralZero(t *testing.T) {
	diags := analyze(t, `int x = 1; x = x / 0;`)
	require.Len(t, diags, 1)
	assert.Equal(t, "Division by zero is not allowed.", diags[0].Message)
}

func TestSema_DivisionByNonLiteralZeroIsNotChecked(t *testing.T) {
	diags := analyze(t, `int x = 1; int y = 0; x = x / y;`)
	assert.Empty(t, diags)
}

func TestSema_MultipleIndependentErrorsAllReported(t *testing.T) {
	diags := analyze(t, `int x = 1; int x = 2; y = 3;`)
	require.Len(t, diags, 2)
}

func TestSema_NestedScopesStillShareOneNamespace(t *testing.T) {
	// if/loopc bodies accept arbitrary statements, but GSM still has one
	// flat namespace: a declaration inside an if body is visible (and
	// redeclaration-checked) exactly like a top-level one.
	diags := analyze(t, `
	int x = 1;
	if x > 0 : begin
		int x = 2;
	end
	`)
	require.Len(t, diags, 1)
	assert.Equal(t, "Variable x is already declared", diags[0].Message)
}
