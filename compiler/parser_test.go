package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_TrimSpace(t *testing.T) {
	testData := []struct {
		content     string
		expectedPos int
	}{
		{content: "   \thello", expectedPos: 4},
		{content: "\n\n x", expectedPos: 3},
		{content: "x", expectedPos: 0},
		// No-break space is a Unicode space separator.
		{content: " x", expectedPos: 2},
		{content: "   ", expectedPos: 3},
	}
	parser := &Parser{}
	for _, testD := range testData {
		parser.reset(testD.content)
		parser.trimSpace()
		assert.Equal(t, testD.expectedPos, parser.currentPos, testD.content)
	}
}

func TestParser_ClassifyAtom(t *testing.T) {
	testData := []struct {
		token    string
		expected RawNode
	}{
		{token: "5", expected: &IntLiteral{Value: 5}},
		{token: "-3", expected: &IntLiteral{Value: -3}},
		{token: "007", expected: &IntLiteral{Value: 7}},
		{token: "x:int", expected: &TypedIdentifier{Name: "x", TypeText: "int"}},
		{token: "f:map<int>", expected: &TypedIdentifier{Name: "f", TypeText: "map<int>"}},
		{token: "a:b:c", expected: &Identifier{Name: "a:b:c"}},
		{token: "foo", expected: &Identifier{Name: "foo"}},
		{token: "+", expected: &Identifier{Name: "+"}},
		{token: "-", expected: &Identifier{Name: "-"}},
		{token: "12x", expected: &Identifier{Name: "12x"}},
	}
	for _, testD := range testData {
		assert.Equal(t, testD.expected, classifyAtom(testD.token), testD.token)
	}
}

func TestParser_ParseList(t *testing.T) {
	parser := &Parser{}
	node, err := parser.Parse("(defn f:int (x:int y:int) (+ x y))")
	assert.Nil(t, err)
	assert.Equal(t, &List{Children: []RawNode{
		&Identifier{Name: "defn"},
		&TypedIdentifier{Name: "f", TypeText: "int"},
		&List{Children: []RawNode{
			&TypedIdentifier{Name: "x", TypeText: "int"},
			&TypedIdentifier{Name: "y", TypeText: "int"},
		}},
		&List{Children: []RawNode{
			&Identifier{Name: "+"},
			&Identifier{Name: "x"},
			&Identifier{Name: "y"},
		}},
	}}, node)
}

func TestParser_EmptyList(t *testing.T) {
	parser := &Parser{}
	node, err := parser.Parse("()")
	assert.Nil(t, err)
	assert.Equal(t, &List{Children: []RawNode{}}, node)
}

func TestParser_MismatchedParens(t *testing.T) {
	testData := []struct {
		content          string
		expectedUnclosed bool
	}{
		{content: "a)", expectedUnclosed: false},
		{content: ")", expectedUnclosed: false},
		{content: "(a) )", expectedUnclosed: false},
		{content: "(a))", expectedUnclosed: false},
		{content: "(a", expectedUnclosed: true},
		{content: "((a)", expectedUnclosed: true},
		{content: "(", expectedUnclosed: true},
	}
	parser := &Parser{}
	for _, testD := range testData {
		_, err := parser.Parse(testD.content)
		assert.NotNil(t, err, testD.content)
		mismatched, ok := err.(*MismatchedParensError)
		assert.True(t, ok, testD.content)
		assert.Equal(t, testD.expectedUnclosed, mismatched.Unclosed, testD.content)
		assert.Equal(t, testD.expectedUnclosed, IsIncomplete(err), testD.content)
	}
}

func TestParser_BalancedGroups(t *testing.T) {
	testData := []struct {
		content       string
		expectedNodes int
	}{
		{content: "(a)", expectedNodes: 1},
		{content: "(a) (b c) (d (e))", expectedNodes: 3},
		{content: "x (y) 5", expectedNodes: 3},
		{content: "((()))", expectedNodes: 1},
	}
	parser := &Parser{}
	for _, testD := range testData {
		nodes, err := parser.ParseProgram(testD.content)
		assert.Nil(t, err, testD.content)
		assert.Equal(t, testD.expectedNodes, len(nodes), testD.content)
		// The open-list counter must be back at zero once the input is consumed.
		assert.Equal(t, 0, parser.openLists, testD.content)
	}
}

func TestParser_TrailingBalancedFormsTolerated(t *testing.T) {
	parser := &Parser{}
	node, err := parser.Parse("(a) (b)")
	assert.Nil(t, err)
	assert.Equal(t, &List{Children: []RawNode{&Identifier{Name: "a"}}}, node)
}

func TestParser_EmptySource(t *testing.T) {
	parser := &Parser{}
	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := parser.Parse(content)
		assert.NotNil(t, err, content)
		_, ok := err.(*MalformedFormError)
		assert.True(t, ok, content)
	}
}

func TestParser_UnicodeWhitespace(t *testing.T) {
	parser := &Parser{}
	node, err := parser.Parse("(a b c)")
	assert.Nil(t, err)
	assert.Equal(t, &List{Children: []RawNode{
		&Identifier{Name: "a"},
		&Identifier{Name: "b"},
		&Identifier{Name: "c"},
	}}, node)
}
