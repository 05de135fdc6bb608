package compiler

// In this file, we defined all trees the pipeline produces: the raw syntax tree built by
// the surface parser, the type descriptors built by the type resolver, and the intermediate
// ast built by the lowering step. Every tree is a closed set of variants carrying an
// unexported marker method, so each consumer can switch on the concrete type and reject
// anything it doesn't know instead of casting blindly.

// RawNode is one node of the untyped parse result. A source text is a sequence of atoms
// and parenthesized lists; nothing is resolved yet.
type RawNode interface {
	rawNode()
}

// IntLiteral is an atom that parses as an integer, like 5 or -3.
type IntLiteral struct {
	Value int
}

// Identifier is a plain atom, like foo or +.
type Identifier struct {
	Name string
}

// TypedIdentifier is an atom containing exactly one ':' separator, like x:int.
// TypeText is kept verbatim; it is resolved to a TypeDesc only during lowering.
type TypedIdentifier struct {
	Name     string
	TypeText string
}

// List is one matched (...) pair with its children in source order.
type List struct {
	Children []RawNode
}

func (*IntLiteral) rawNode()      {}
func (*Identifier) rawNode()      {}
func (*TypedIdentifier) rawNode() {}
func (*List) rawNode()            {}

// TypeDesc is a resolved type annotation. Grammar: int | map<T> | array<T,N>.
type TypeDesc interface {
	typeDesc()
}

type IntType struct{}

type MapType struct {
	Value TypeDesc
}

type ArrayType struct {
	Element   TypeDesc
	Dimension int
}

func (*IntType) typeDesc()   {}
func (*MapType) typeDesc()   {}
func (*ArrayType) typeDesc() {}

// IAst is one node of the typed intermediate tree produced by lowering.
type IAst interface {
	iastNode()
}

// ClassAst owns its methods in declaration order.
type ClassAst struct {
	Name    string
	Methods []*FuncAst
}

// FuncAst owns its params and a single expression body.
type FuncAst struct {
	Name       string
	ReturnType TypeDesc
	Params     []*VarAst
	Body       Expression
}

type VarAst struct {
	Name string
	Type TypeDesc
}

func (*ClassAst) iastNode() {}
func (*FuncAst) iastNode()  {}
func (*VarAst) iastNode()   {}

// Block is a statement block. Only the empty placeholder exists; statement lowering
// is not implemented.
type Block interface {
	IAst
	blockNode()
}

type EmptyBlock struct{}

func (*EmptyBlock) iastNode()  {}
func (*EmptyBlock) blockNode() {}

// Statement is reserved for future statement lowering. IfStatement is declared but
// never constructed by the current transform.
type Statement interface {
	IAst
	statementNode()
}

type IfStatement struct {
	Then Block
	Else Block
}

func (*IfStatement) iastNode()      {}
func (*IfStatement) statementNode() {}

type ArithOp int

const (
	PlusOp ArithOp = iota
	// MinusOp is declared but has no lowering rule; a minus form fails with
	// NotImplementedError instead.
	MinusOp
)

// Expression is the body tree of a function.
type Expression interface {
	IAst
	expressionNode()
}

type Arith struct {
	Op   ArithOp
	Args []Expression
}

type VarRef struct {
	Name string
}

type LiteralInt struct {
	Value int
}

func (*Arith) iastNode()       {}
func (*Arith) expressionNode() {}

func (*VarRef) iastNode()       {}
func (*VarRef) expressionNode() {}

func (*LiteralInt) iastNode()       {}
func (*LiteralInt) expressionNode() {}
