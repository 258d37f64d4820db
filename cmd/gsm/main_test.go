package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileToText_CleanSourceProducesIR(t *testing.T) {
	stdout, stderr := compileToText(`int x = 1; x += 2;`)
	assert.Empty(t, stderr)
	assert.True(t, strings.Contains(stdout, "@main"))
}

func TestCompileToText_BadSourceProducesDiagnosticsNotIR(t *testing.T) {
	stdout, stderr := compileToText(`x = 1;`)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Variable x is not declared")
}
