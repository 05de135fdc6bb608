package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"typed_sexp_compiler/compiler"
)

const (
	historyFile = ".sexpc_history"
	promptMain  = "==> "
	promptCont  = "... "
)

func cmdRepl(_ []string) int {
	fmt.Printf("%s %s REPL\nCtrl+D exits. Type :quit to exit.\n", appName, compiler.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

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

	for {
		code, ok := readForm(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if trimmed == ":quit" {
				return 0
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}
		if rc := dumpSource(os.Stdout, code); rc == 0 {
			ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		}
	}
}

// readForm keeps prompting while the input so far is an incomplete form, so a
// multi-line class definition can be typed naturally.
func readForm(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" {
			return src, true
		}
		parser := &compiler.Parser{}
		if _, perr := parser.ParseProgram(src); compiler.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
