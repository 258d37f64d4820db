/*
Command gsm is the GSM compiler's CLI driver.

Primary contract: `gsm "<source text>"` compiles the given GSM source and
prints textual LLVM IR to stdout, or nothing on a diagnosed error
(diagnostics go to stderr instead); the process always exits 0. There are
no language flags.

On top of that contract sit a few ambient CLI conveniences: --help,
--version, and a `repl` subcommand, dispatched with an os.Args switch and
reported with github.com/fatih/color.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kristoferhaugen/gsmc/compiler"
	"github.com/kristoferhaugen/gsmc/repl"
)

const (
	version = "v1.0.0"
	author  = "kristoferhaugen"
	license = "MIT"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

const banner = `
  ▄████  ▄████▄   ███▄ ▄███▓
 ██▒ ▀█▒▒██▀ ▀█  ▓██▒▀█▀ ██▒
▒██░▄▄▄░▒▓█    ▄ ▓██    ▓██░
░▓█  ██▓▒▓▓▄ ▄██▒▒██    ▒██
░▒▓███▀▒▒ ▓███▀ ░▒██▒   ░██▒
 ░▒   ▒ ░ ░▒ ▒  ░░ ▒░   ░  ░
  ░   ░   ░  ▒   ░  ░      ░
░ ░   ░ ░              ░
      ░ ░ ░            ░
        ░
`

func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(0)
	}

	switch os.Args[1] {
	case "--help", "-h":
		showUsage()
	case "--version", "-v":
		showVersion()
	case "repl":
		startRepl()
	default:
		runSource(os.Args[1])
	}
}

// runSource compiles a single GSM source string and prints IR to stdout or
// diagnostics to stderr. The process always exits 0 — a diagnosed error is
// reported, not a crash.
func runSource(source string) {
	stdout, stderr := compileToText(source)
	if stderr != "" {
		redColor.Fprint(os.Stderr, stderr)
		return
	}
	fmt.Fprint(os.Stdout, stdout)
}

// compileToText runs the compiler pipeline and renders its Result as the
// text that would go to stdout (IR) or stderr (one diagnostic per line),
// split out from runSource so the CLI's framing logic is testable without
// touching the real os.Stdout/os.Stderr.
func compileToText(source string) (stdout, stderr string) {
	result := compiler.Compile(source)
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			stderr += e + "\n"
		}
		return "", stderr
	}
	return result.IR, ""
}

func startRepl() {
	r := repl.NewRepl(banner, version, author, "----------------------------------------------------------------", license, "gsm >>> ")
	r.Start(os.Stdin, os.Stdout)
}

func showUsage() {
	cyanColor.Println("gsm - a single-pass compiler for the GSM language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println(`  gsm "<source text>"   Compile GSM source and print LLVM IR to stdout`)
	cyanColor.Println("  gsm repl              Start an interactive compile-and-print session")
	cyanColor.Println("  gsm --help            Display this help message")
	cyanColor.Println("  gsm --version         Display version information")
}

func showVersion() {
	cyanColor.Printf("gsm version %s (%s license)\n", version, license)
}
