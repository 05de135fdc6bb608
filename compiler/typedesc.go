package compiler

import (
	"strconv"
	"strings"

	"typed_sexp_compiler/util"
)

// ResolveType parses a type-annotation string into a TypeDesc. The grammar is
// int | map<T> | array<T,N> with T a nested type and N a non-negative integer.
// The whole string must conform to one shape; no prefix match is accepted.
func ResolveType(text string) (TypeDesc, error) {
	reader := &typeReader{src: text}
	desc, err := reader.parseType()
	if err != nil {
		return nil, err
	}
	if reader.currentPos != len(reader.src) {
		return nil, &UnsupportedTypeError{Text: text}
	}
	return desc, nil
}

// typeReader is a one-shot recursive descent reader over the type text.
type typeReader struct {
	src        string
	currentPos int
}

func (reader *typeReader) parseType() (TypeDesc, error) {
	switch {
	case reader.consume("int"):
		return &IntType{}, nil
	case reader.consume("map<"):
		value, err := reader.parseType()
		if err != nil {
			return nil, err
		}
		if !reader.consume(">") {
			return nil, reader.fail()
		}
		return &MapType{Value: value}, nil
	case reader.consume("array<"):
		element, err := reader.parseType()
		if err != nil {
			return nil, err
		}
		if !reader.consume(",") {
			return nil, reader.fail()
		}
		dimension, ok := reader.parseDimension()
		if !ok {
			return nil, reader.fail()
		}
		if !reader.consume(">") {
			return nil, reader.fail()
		}
		return &ArrayType{Element: element, Dimension: dimension}, nil
	default:
		return nil, reader.fail()
	}
}

func (reader *typeReader) consume(prefix string) bool {
	if strings.HasPrefix(reader.src[reader.currentPos:], prefix) {
		reader.currentPos += len(prefix)
		return true
	}
	return false
}

// parseDimension scans a run of digits, so a negative or empty dimension never parses.
func (reader *typeReader) parseDimension() (int, bool) {
	startPos := reader.currentPos
	for reader.currentPos < len(reader.src) && util.IsNumber(reader.src[reader.currentPos]) {
		reader.currentPos++
	}
	if reader.currentPos == startPos {
		return 0, false
	}
	dimension, err := strconv.Atoi(reader.src[startPos:reader.currentPos])
	if err != nil {
		return 0, false
	}
	return dimension, true
}

// fail always names the full annotation, not the fragment the reader stopped on;
// the caller only ever saw the whole string.
func (reader *typeReader) fail() error {
	return &UnsupportedTypeError{Text: reader.src}
}
