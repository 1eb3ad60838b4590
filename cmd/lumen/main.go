// Command lumen is the Lumen interpreter CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/lumenlisp/lumen/pkg/evaluator"
	"github.com/lumenlisp/lumen/pkg/runtime"
)

const historyFile = ".lumen_history"

const usage = `lumen

Usage:
  lumen [SCRIPT]
  lumen -c COMMAND
  lumen -h | --help
  lumen -v | --version

Arguments:
  SCRIPT  Path to a lumen script.

Options:
  -c, --command=COMMAND  Evaluate the given expression and exit.
  -h, --help             Display this help.
  -v, --version          Print lumen version.

With no script and a terminal on stdin, lumen starts an interactive
session. Otherwise forms are read from stdin.
`

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], runtime.Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	rt, err := runtime.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lumen: %s\n", err)
		os.Exit(2)
	}

	if command, _ := opts.String("--command"); command != "" {
		os.Exit(evalAndPrint(rt, command, "<command>"))
	}

	if script, _ := opts.String("SCRIPT"); script != "" {
		source, readErr := os.ReadFile(script)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "lumen: cannot read %s: %s\n", script, readErr)
			os.Exit(1)
		}
		os.Exit(evalScript(rt, string(source), script))
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		os.Exit(repl(rt))
	}

	source, readErr := io.ReadAll(os.Stdin)
	if readErr != nil {
		fmt.Fprintf(os.Stderr, "lumen: %s\n", readErr)
		os.Exit(1)
	}
	os.Exit(evalScript(rt, string(source), "<stdin>"))
}

func evalScript(rt *runtime.Runtime, source, filename string) int {
	v, err := rt.Eval(source, filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lumen: %s\n", err)
		return 1
	}
	if evaluator.IsErr(v) {
		fmt.Fprintln(os.Stderr, evaluator.Format(v))
		return 1
	}
	return 0
}

func evalAndPrint(rt *runtime.Runtime, source, filename string) int {
	v, err := rt.Eval(source, filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lumen: %s\n", err)
		return 1
	}
	fmt.Println(evaluator.Format(v))
	if evaluator.IsErr(v) {
		return 1
	}
	return 0
}

func repl(rt *runtime.Runtime) int {
	fmt.Printf("lumen %s\nCtrl+C cancels input, Ctrl+D exits.\n", runtime.Version)

	// History persists only when a home directory is available.
	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt("lumen> ")
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()
			return 0
		default:
			fmt.Fprintf(os.Stderr, "lumen: %s\n", err)
			return 1
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		v, evalErr := rt.Eval(line, "<repl>")
		if evalErr != nil {
			fmt.Fprintln(os.Stderr, evalErr)
			continue
		}
		fmt.Println(evaluator.Format(v))
		ln.AppendHistory(line)
	}
}
