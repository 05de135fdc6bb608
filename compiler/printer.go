package compiler

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRaw renders a raw syntax tree back to surface syntax. The output is canonical
// (single spaces, no insignificant whitespace), so re-parsing it reproduces an equal tree.
func FormatRaw(node RawNode) string {
	switch n := node.(type) {
	case *IntLiteral:
		return strconv.Itoa(n.Value)
	case *Identifier:
		return n.Name
	case *TypedIdentifier:
		return n.Name + ":" + n.TypeText
	case *List:
		parts := make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			parts = append(parts, FormatRaw(child))
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return "?"
	}
}

// FormatType renders a type descriptor in annotation syntax.
func FormatType(desc TypeDesc) string {
	switch t := desc.(type) {
	case *IntType:
		return "int"
	case *MapType:
		return "map<" + FormatType(t.Value) + ">"
	case *ArrayType:
		return fmt.Sprintf("array<%s,%d>", FormatType(t.Element), t.Dimension)
	default:
		return "?"
	}
}

// FormatIAst renders the intermediate tree in a readable s-expression flavor. This is
// a debugging surface, not target-language output; Emit does that.
func FormatIAst(tree IAst) string {
	switch n := tree.(type) {
	case *ClassAst:
		parts := make([]string, 0, len(n.Methods)+2)
		parts = append(parts, "class", n.Name)
		for _, method := range n.Methods {
			parts = append(parts, FormatIAst(method))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *FuncAst:
		params := make([]string, 0, len(n.Params))
		for _, param := range n.Params {
			params = append(params, FormatIAst(param))
		}
		return fmt.Sprintf("(defn %s:%s (%s) %s)",
			n.Name, FormatType(n.ReturnType), strings.Join(params, " "), FormatIAst(n.Body))
	case *VarAst:
		return n.Name + ":" + FormatType(n.Type)
	case *Arith:
		parts := make([]string, 0, len(n.Args)+1)
		parts = append(parts, opSymbol(n.Op))
		for _, arg := range n.Args {
			parts = append(parts, FormatIAst(arg))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *VarRef:
		return n.Name
	case *LiteralInt:
		return strconv.Itoa(n.Value)
	case *EmptyBlock:
		return "(block)"
	case *IfStatement:
		return fmt.Sprintf("(if %s %s)", FormatIAst(n.Then), FormatIAst(n.Else))
	default:
		return "?"
	}
}

func opSymbol(op ArithOp) string {
	switch op {
	case PlusOp:
		return "+"
	case MinusOp:
		return "-"
	default:
		return "?"
	}
}
