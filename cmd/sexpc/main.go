package main

import (
	"fmt"
	"io"
	"os"

	"typed_sexp_compiler/compiler"
)

const appName = "sexpc"

// sampleSource is what dump compiles when no file is supplied.
const sampleSource = "(class x (defn f:int (x:int y:int) (+ x y)))"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "dump":
		os.Exit(cmdDump(os.Args[2:]))
	case "build":
		os.Exit(cmdBuild(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "watch":
		os.Exit(cmdWatch(os.Args[2:]))
	case "version":
		fmt.Println(compiler.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`%s %s

Usage:
  %s dump [file]      Parse, lower and emit, printing every stage.
  %s build <path>     Compile a file or every .sexp file in a directory.
  %s repl             Start an interactive pipeline session.
  %s watch <dir>      Recompile a directory whenever a source file changes.
  %s version          Print the version.

`, appName, compiler.Version, appName, appName, appName, appName, appName)
}

func cmdDump(args []string) int {
	source := sampleSource
	if len(args) > 0 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
			return 1
		}
		source = string(content)
	}
	return dumpSource(os.Stdout, source)
}

// dumpSource is the plain driver surface: parse and print the raw tree, lower and
// print the intermediate tree, emit and print the text. The first error aborts.
func dumpSource(out io.Writer, source string) int {
	parser := &compiler.Parser{}
	raw, err := parser.Parse(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprintln(out, compiler.FormatRaw(raw))
	tree, err := compiler.Lower(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprintln(out, compiler.FormatIAst(tree))
	emitted, err := compiler.Emit(tree)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprint(out, emitted)
	return 0
}

func cmdBuild(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s build <path>\n", appName)
		return 2
	}
	if err := compiler.CompilePath(args[0]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
