package compiler

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"typed_sexp_compiler/util"
)

// A recursive descent parser for the surface syntax. The grammar is tiny:
//
//	node := INT | TYPED_ID | ID | '(' node* ')'
//
// Whitespace delimits atoms and is otherwise insignificant. The parser owns a cursor
// and an open-list counter for the duration of one call; the counter must never go
// negative and must be back at zero once the input is consumed.
type Parser struct {
	src        string
	currentPos int
	openLists  int
}

// Parse returns the first top-level form of source. Paren balance is still verified
// over the whole input, so a stray ) after the first form fails the call.
func (parser *Parser) Parse(source string) (RawNode, error) {
	nodes, err := parser.ParseProgram(source)
	if err != nil {
		return nil, err
	}
	return nodes[0], nil
}

// ParseProgram returns every top-level form of source in order.
func (parser *Parser) ParseProgram(source string) (nodes []RawNode, err error) {
	parser.reset(source)
	for {
		parser.trimSpace()
		if !parser.hasRemainCharacters() {
			break
		}
		node, err := parser.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if len(nodes) == 0 {
		return nil, &MalformedFormError{Expected: "at least one atom or list", Got: "empty source"}
	}
	return nodes, nil
}

func (parser *Parser) reset(source string) {
	parser.src, parser.currentPos, parser.openLists = source, 0, 0
}

func (parser *Parser) hasRemainCharacters() bool {
	return parser.currentPos < len(parser.src)
}

// trimSpace steps the cursor past all continuous whitespace, including multi-byte
// Unicode separators.
func (parser *Parser) trimSpace() {
	for parser.hasRemainCharacters() {
		b := parser.src[parser.currentPos]
		if b < utf8.RuneSelf {
			if !util.IsSpace(b) {
				return
			}
			parser.currentPos++
			continue
		}
		r, size := utf8.DecodeRuneInString(parser.src[parser.currentPos:])
		if !unicode.IsSpace(r) {
			return
		}
		parser.currentPos += size
	}
}

// parseNode is only called with the cursor on the first character of a node.
func (parser *Parser) parseNode() (RawNode, error) {
	switch parser.src[parser.currentPos] {
	case '(':
		return parser.parseList()
	case ')':
		// A closing paren here would take the open counter negative.
		return nil, &MismatchedParensError{Pos: parser.currentPos}
	default:
		return parser.parseAtom(), nil
	}
}

func (parser *Parser) parseList() (RawNode, error) {
	parser.openLists++
	parser.currentPos++
	children := []RawNode{}
	for {
		parser.trimSpace()
		if !parser.hasRemainCharacters() {
			return nil, &MismatchedParensError{Pos: parser.currentPos, Unclosed: true}
		}
		if parser.src[parser.currentPos] == ')' {
			parser.openLists--
			parser.currentPos++
			return &List{Children: children}, nil
		}
		child, err := parser.parseNode()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

// parseAtom consumes characters until whitespace or ) and classifies the token.
func (parser *Parser) parseAtom() RawNode {
	startPos := parser.currentPos
	for parser.hasRemainCharacters() {
		r, size := utf8.DecodeRuneInString(parser.src[parser.currentPos:])
		if r == ')' || unicode.IsSpace(r) {
			break
		}
		parser.currentPos += size
	}
	return classifyAtom(parser.src[startPos:parser.currentPos])
}

// classifyAtom turns a token into an integer literal, a typed identifier (exactly one
// ':' separator) or a plain identifier, in that order of preference.
func classifyAtom(token string) RawNode {
	if isIntegerToken(token) {
		value, err := strconv.Atoi(token)
		if err == nil {
			return &IntLiteral{Value: value}
		}
	}
	if strings.Count(token, ":") == 1 {
		sep := strings.IndexByte(token, ':')
		return &TypedIdentifier{Name: token[:sep], TypeText: token[sep+1:]}
	}
	return &Identifier{Name: token}
}

func isIntegerToken(token string) bool {
	digits := token
	if len(token) > 1 && util.IsSign(token[0]) {
		digits = token[1:]
	}
	if len(digits) == 0 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !util.IsNumber(digits[i]) {
			return false
		}
	}
	return true
}
