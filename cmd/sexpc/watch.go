package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"

	"typed_sexp_compiler/compiler"
)

// cmdWatch compiles dir once, then recompiles a source file whenever it is created
// or written. Compile failures are reported and watching continues.
func cmdWatch(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s watch <dir>\n", appName)
		return 2
	}
	dir := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := compiler.CompileDir(dir); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	fmt.Printf("watching %s\n", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return 0
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !compiler.IsSourceFile(event.Name) {
				continue
			}
			if err := compiler.CompileToSibling(event.Name); err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			fmt.Printf("compiled %s\n", event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return 0
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
