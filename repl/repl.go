/*
Package repl implements the `gsm repl` subcommand: an interactive loop
that compiles each entered line through the whole GSM pipeline and prints
the resulting IR, or its diagnostics, immediately. It complements the
single-shot `gsm "<source text>"` CLI form with an interactive one, built
on github.com/chzyer/readline and github.com/fatih/color.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/kristoferhaugen/gsmc/compiler"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the display configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given banner and metadata.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Each line you enter is compiled to LLVM IR and printed immediately.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-compile-print loop until the user exits or EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.compileAndPrint(writer, line)
	}
}

// compileAndPrint runs one line through compiler.Compile and prints either
// the resulting IR or its diagnostics. A bad line never ends the session:
// the REPL reports its diagnostics and reads the next line.
func (r *Repl) compileAndPrint(writer io.Writer, line string) {
	result := compiler.Compile(line)
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.IR)
}
