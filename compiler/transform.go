package compiler

import "fmt"

// Lower walks a raw syntax tree and produces the typed intermediate tree. Dispatch is
// structural: list forms are recognized by their head symbol, bare atoms become
// expressions. Any shape the transform has no rule for fails explicitly; nothing is
// silently dropped.
func Lower(node RawNode) (IAst, error) {
	switch n := node.(type) {
	case *IntLiteral:
		return &LiteralInt{Value: n.Value}, nil
	case *Identifier:
		return &VarRef{Name: n.Name}, nil
	case *TypedIdentifier:
		return nil, &MalformedFormError{Expected: "an atom or a list form", Got: describeNode(n)}
	case *List:
		return lowerList(n)
	default:
		return nil, &MalformedFormError{Expected: "an atom or a list form", Got: describeNode(node)}
	}
}

func lowerList(list *List) (IAst, error) {
	if len(list.Children) == 0 {
		return nil, &MalformedFormError{Expected: "a list with a head symbol", Got: "an empty list"}
	}
	head, ok := list.Children[0].(*Identifier)
	if !ok {
		return nil, &MalformedFormError{Expected: "a head symbol", Got: describeNode(list.Children[0])}
	}
	switch head.Name {
	case "class":
		return lowerClass(list)
	case "defn":
		return lowerFunc(list)
	case "+":
		return lowerArith(PlusOp, list)
	case "-", "minus":
		// MinusOp exists in the intermediate tree but has no lowering rule yet.
		return nil, &NotImplementedError{Construct: "minus"}
	case "if":
		return nil, &NotImplementedError{Construct: "if"}
	case "block":
		return nil, &NotImplementedError{Construct: "block"}
	default:
		return nil, &MalformedFormError{Expected: "class, defn or + as head symbol", Got: fmt.Sprintf("identifier %s", head.Name)}
	}
}

// (class Name defns...)
func lowerClass(list *List) (IAst, error) {
	if len(list.Children) < 2 {
		return nil, &MalformedFormError{Expected: "(class name methods...)", Got: fmt.Sprintf("a class form with %d children", len(list.Children))}
	}
	nameNode, ok := list.Children[1].(*Identifier)
	if !ok {
		return nil, &MalformedFormError{Expected: "a plain identifier as class name", Got: describeNode(list.Children[1])}
	}
	methods := make([]*FuncAst, 0, len(list.Children)-2)
	for _, child := range list.Children[2:] {
		lowered, err := Lower(child)
		if err != nil {
			return nil, err
		}
		method, ok := lowered.(*FuncAst)
		if !ok {
			return nil, &MalformedFormError{Expected: "a defn form as class member", Got: describeNode(child)}
		}
		methods = append(methods, method)
	}
	return &ClassAst{Name: nameNode.Name, Methods: methods}, nil
}

// (defn name:returnType (param:type...) body)
func lowerFunc(list *List) (IAst, error) {
	if len(list.Children) != 4 {
		return nil, &MalformedFormError{Expected: "(defn name:type (params) body)", Got: fmt.Sprintf("a defn form with %d children", len(list.Children))}
	}
	nameNode, ok := list.Children[1].(*TypedIdentifier)
	if !ok {
		return nil, &MalformedFormError{Expected: "name:returnType as function name", Got: describeNode(list.Children[1])}
	}
	returnType, err := ResolveType(nameNode.TypeText)
	if err != nil {
		return nil, err
	}
	paramList, ok := list.Children[2].(*List)
	if !ok {
		return nil, &MalformedFormError{Expected: "a parameter list", Got: describeNode(list.Children[2])}
	}
	params := make([]*VarAst, 0, len(paramList.Children))
	for _, param := range paramList.Children {
		typedParam, ok := param.(*TypedIdentifier)
		if !ok {
			return nil, &MalformedFormError{Expected: "name:type as parameter", Got: describeNode(param)}
		}
		paramType, err := ResolveType(typedParam.TypeText)
		if err != nil {
			return nil, err
		}
		params = append(params, &VarAst{Name: typedParam.Name, Type: paramType})
	}
	body, err := lowerExpression(list.Children[3])
	if err != nil {
		return nil, err
	}
	return &FuncAst{
		Name:       nameNode.Name,
		ReturnType: returnType,
		Params:     params,
		Body:       body,
	}, nil
}

// (+ args...)
func lowerArith(op ArithOp, list *List) (IAst, error) {
	args := make([]Expression, 0, len(list.Children)-1)
	for _, child := range list.Children[1:] {
		arg, err := lowerExpression(child)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return &Arith{Op: op, Args: args}, nil
}

func lowerExpression(node RawNode) (Expression, error) {
	lowered, err := Lower(node)
	if err != nil {
		return nil, err
	}
	expr, ok := lowered.(Expression)
	if !ok {
		return nil, &MalformedFormError{Expected: "an expression", Got: describeNode(node)}
	}
	return expr, nil
}

// describeNode names a raw node for error messages.
func describeNode(node RawNode) string {
	switch n := node.(type) {
	case *IntLiteral:
		return fmt.Sprintf("integer literal %d", n.Value)
	case *Identifier:
		return fmt.Sprintf("identifier %s", n.Name)
	case *TypedIdentifier:
		return fmt.Sprintf("typed identifier %s:%s", n.Name, n.TypeText)
	case *List:
		return fmt.Sprintf("a list of %d nodes", len(n.Children))
	default:
		return "an unknown node"
	}
}
