package compiler

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

const Version = "0.1.0"

const (
	sourceSuffix = ".sexp"
	outputSuffix = ".java"
)

// CompileSource runs the full pipeline on one source text: parse, lower, emit.
// The first error aborts the run; there is no recovery or partial output.
func CompileSource(source string) (string, error) {
	parser := &Parser{}
	raw, err := parser.Parse(source)
	if err != nil {
		return "", err
	}
	tree, err := Lower(raw)
	if err != nil {
		return "", err
	}
	return Emit(tree)
}

// CompileFile compiles fileName and writes the emitted text to out.
func CompileFile(fileName string, out io.Writer) error {
	content, err := ioutil.ReadFile(fileName)
	if err != nil {
		return err
	}
	emitted, err := CompileSource(string(content))
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, emitted)
	return err
}

// CompilePath compiles a single source file or every source file in a directory.
func CompilePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return CompileDir(path)
	}
	return CompileToSibling(path)
}

// CompileDir compiles every source file directly under path. The first failing file
// aborts the walk.
func CompileDir(path string) error {
	files, err := ioutil.ReadDir(path)
	if err != nil {
		return err
	}
	for _, file := range files {
		if file.IsDir() || !IsSourceFile(file.Name()) {
			continue
		}
		if err := CompileToSibling(filepath.Join(path, file.Name())); err != nil {
			return err
		}
	}
	return nil
}

func IsSourceFile(fileName string) bool {
	return strings.HasSuffix(fileName, sourceSuffix)
}

// CompileToSibling writes the emitted text next to the source file, swapping the suffix.
func CompileToSibling(fileName string) error {
	outFile, err := os.Create(strings.TrimSuffix(fileName, sourceSuffix) + outputSuffix)
	if err != nil {
		return err
	}
	compileErr := CompileFile(fileName, outFile)
	closeErr := outFile.Close()
	if compileErr != nil {
		return compileErr
	}
	return closeErr
}
