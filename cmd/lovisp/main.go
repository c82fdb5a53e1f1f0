// Command lovisp is the top-level driver: it loads the bootstrap standard
// library through the evaluator, then either runs a REPL on stdin or loads
// a source file named on the command line, exposing any further arguments
// to the running program as *ARGV*.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/Looveh/lovisp/interp"
	"github.com/Looveh/lovisp/printer"
	"github.com/Looveh/lovisp/reader"
	"github.com/Looveh/lovisp/stdlib"
	"github.com/Looveh/lovisp/types"
)

const prompt = "user> "

func main() {
	argv := os.Args[1:]

	root, err := interp.NewRootEnv(argvAfterFile(argv))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Runtime error:", err)
		os.Exit(1)
	}

	if _, err := interp.LoadSource(root, stdlib.Source); err != nil {
		fmt.Fprintln(os.Stderr, "Runtime error loading standard library:", err)
		os.Exit(1)
	}

	if len(argv) == 0 {
		runREPL(root)
		return
	}

	if err := loadFile(root, argv[0]); err != nil {
		fmt.Fprintln(os.Stderr, "Runtime error:", err)
		os.Exit(1)
	}
}

// argvAfterFile returns the CLI arguments beyond the source file itself,
// the value the running program sees as *ARGV*.
func argvAfterFile(argv []string) []string {
	if len(argv) <= 1 {
		return nil
	}
	return argv[1:]
}

// loadFile runs the CLI's file argument through the language's own
// load-file, the same path a running program takes when it calls
// (load-file "...") itself.
func loadFile(root *types.Env, path string) error {
	fn, err := root.Get("load-file")
	if err != nil {
		return err
	}
	_, err = interp.Apply(fn, []*types.Value{types.NewStr(path)})
	return err
}

func rep(root *types.Env, input string) (string, error) {
	ast, err := reader.ReadStr(input)
	if err != nil {
		return "", err
	}
	val, err := interp.Eval(ast, root)
	if err != nil {
		return "", err
	}
	return printer.Print(val, true), nil
}

func runREPL(root *types.Env) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if err != nil { // io.EOF on Ctrl+D, or Ctrl+C with SetCtrlCAborts
			break
		}
		ln.AppendHistory(line)

		out, err := rep(root, line)
		if err != nil {
			fmt.Println("Runtime error:", err)
			continue
		}
		fmt.Println(out)
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		f.Close()
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lovisp_history"
	}
	return filepath.Join(home, ".lovisp_history")
}
