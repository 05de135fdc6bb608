package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmit_ClassSkeleton(t *testing.T) {
	tree := &ClassAst{Name: "X", Methods: []*FuncAst{
		{Name: "f", ReturnType: &IntType{}, Params: []*VarAst{}, Body: &LiteralInt{Value: 0}},
	}}
	emitted, err := Emit(tree)
	assert.Nil(t, err)
	assert.Equal(t, "public class X {\npublic static Integer f(){\n}\n}\n", emitted)
}

func TestEmit_Deterministic(t *testing.T) {
	build := func() IAst {
		return &ClassAst{Name: "Calc", Methods: []*FuncAst{
			{Name: "sum", ReturnType: &IntType{}, Params: []*VarAst{
				{Name: "a", Type: &IntType{}},
				{Name: "b", Type: &IntType{}},
			}, Body: &Arith{Op: PlusOp, Args: []Expression{&VarRef{Name: "a"}, &VarRef{Name: "b"}}}},
			{Name: "lookup", ReturnType: &MapType{Value: &IntType{}}, Params: []*VarAst{}, Body: &LiteralInt{Value: 0}},
		}}
	}
	first, err := Emit(build())
	assert.Nil(t, err)
	second, err := Emit(build())
	assert.Nil(t, err)
	assert.Equal(t, first, second)
}

func TestEmit_MethodsInOrder(t *testing.T) {
	tree := &ClassAst{Name: "Two", Methods: []*FuncAst{
		{Name: "a", ReturnType: &IntType{}, Body: &LiteralInt{Value: 1}},
		{Name: "b", ReturnType: &MapType{Value: &MapType{Value: &IntType{}}}, Body: &LiteralInt{Value: 2}},
	}}
	emitted, err := Emit(tree)
	assert.Nil(t, err)
	assert.Equal(t, "public class Two {\n"+
		"public static Integer a(){\n}\n"+
		"public static Map<String,Map<String,Integer>> b(){\n}\n"+
		"}\n", emitted)
}

func TestEmit_BareFunction(t *testing.T) {
	emitted, err := Emit(&FuncAst{Name: "f", ReturnType: &IntType{}, Body: &LiteralInt{Value: 0}})
	assert.Nil(t, err)
	assert.Equal(t, "public static Integer f(){\n}\n", emitted)
}

func TestEmit_UnsupportedRenderTargets(t *testing.T) {
	testData := []struct {
		tree IAst
	}{
		// Array types have no rendering rule; a placeholder string must never appear.
		{tree: &ClassAst{Name: "A", Methods: []*FuncAst{
			{Name: "f", ReturnType: &ArrayType{Element: &IntType{}, Dimension: 2}, Body: &LiteralInt{Value: 0}},
		}}},
		{tree: &FuncAst{Name: "g", ReturnType: &MapType{Value: &ArrayType{Element: &IntType{}, Dimension: 1}}, Body: &LiteralInt{Value: 0}}},
		// Only classes and functions can be emitted.
		{tree: &Arith{Op: PlusOp, Args: []Expression{&LiteralInt{Value: 1}}}},
		{tree: &VarRef{Name: "x"}},
		{tree: &EmptyBlock{}},
	}
	for _, testD := range testData {
		emitted, err := Emit(testD.tree)
		assert.NotNil(t, err)
		assert.Equal(t, "", emitted)
		_, ok := err.(*UnsupportedRenderTargetError)
		assert.True(t, ok)
	}
}

func TestRenderType(t *testing.T) {
	testData := []struct {
		desc     TypeDesc
		expected string
	}{
		{desc: &IntType{}, expected: "Integer"},
		{desc: &MapType{Value: &IntType{}}, expected: "Map<String,Integer>"},
		{desc: &MapType{Value: &MapType{Value: &IntType{}}}, expected: "Map<String,Map<String,Integer>>"},
	}
	for _, testD := range testData {
		rendered, err := renderType(testD.desc)
		assert.Nil(t, err)
		assert.Equal(t, testD.expected, rendered)
	}
}
