package codegen_test

import (
	"strings"
	"testing"

	"github.com/kristoferhaugen/gsmc/codegen"
	"github.com/kristoferhaugen/gsmc/parser"
	"github.com/kristoferhaugen/gsmc/sema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, src string) (string, error) {
	t.Helper()
	p := parser.NewParser(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	require.NotNil(t, prog)

	diags := sema.NewAnalyzer().Analyze(prog)
	require.Empty(t, diags)

	return codegen.NewGenerator().Generate(prog)
}

func TestCodegen_SimpleDeclarationAndAssignment(t *testing.T) {
	ir, err := compile(t, `int x = 1; x += 2;`)
	require.NoError(t, err)
	assert.Contains(t, ir, "@main")
	assert.Contains(t, ir, "gsm_write")
	assert.Contains(t, ir, "declare void @gsm_write(i32)")
}

func TestCodegen_UninitializedDeclarationDefaultsToZero(t *testing.T) {
	ir, err := compile(t, `int x, y = 1;`)
	require.NoError(t, err)
	assert.Contains(t, ir, "store i32 0")
}

func TestCodegen_LiteralExponent(t *testing.T) {
	_, err := compile(t, `int x = 2; x ^= 3;`)
	assert.NoError(t, err)
}

func TestCodegen_NonLiteralExponentErrors(t *testing.T) {
	p := parser.NewParser(`int x = 2; int y = 3; x = x ^ y;`)
	prog := p.Parse()
	require.Empty(t, p.Errors)

	diags := sema.NewAnalyzer().Analyze(prog)
	require.Empty(t, diags)

	_, err := codegen.NewGenerator().Generate(prog)
	assert.Error(t, err)
}

func TestCodegen_IfElifElseBlockTopology(t *testing.T) {
	ir, err := compile(t, `
	int x = 1;
	if x > 0 : begin
		x = 1;
	end elif x < 0 : begin
		x = 2;
	end else: begin
		x = 0;
	end
	`)
	require.NoError(t, err)
	for _, want := range []string{"if.cond", "if.body", "elif.cond", "elif.body", "else.body", "after.if"} {
		assert.True(t, strings.Contains(ir, want), "expected block %q in IR", want)
	}
}

func TestCodegen_IfWithoutElseStillReachesAfterIf(t *testing.T) {
	ir, err := compile(t, `
	int x = 1;
	if x > 0 : begin
		x = 1;
	end elif x < 0 : begin
		x = 2;
	end
	`)
	require.NoError(t, err)
	assert.Contains(t, ir, "after.if")
}

func TestCodegen_LoopcBlockTopology(t *testing.T) {
	ir, err := compile(t, `
	int x = 0;
	loopc x < 10 : begin
		x += 1;
	end
	`)
	require.NoError(t, err)
	for _, want := range []string{"loopc.cond", "loopc.body", "after.loopc"} {
		assert.True(t, strings.Contains(ir, want), "expected block %q in IR", want)
	}
}

func TestCodegen_AlwaysReturnsZero(t *testing.T) {
	ir, err := compile(t, `int x = 1;`)
	require.NoError(t, err)
	assert.Contains(t, ir, "ret i32 0")
}
