package compiler

import "strings"

// Emit renders the intermediate tree as Java source text. It is a pure function of its
// input: structurally equal trees always yield byte-identical output. Only classes and
// functions have rendering rules; anything else fails with UnsupportedRenderTargetError.
func Emit(tree IAst) (string, error) {
	var buffer strings.Builder
	switch n := tree.(type) {
	case *ClassAst:
		if err := emitClass(&buffer, n); err != nil {
			return "", err
		}
	case *FuncAst:
		if err := emitFunc(&buffer, n); err != nil {
			return "", err
		}
	default:
		return "", &UnsupportedRenderTargetError{Target: FormatIAst(tree)}
	}
	return buffer.String(), nil
}

func emitClass(buffer *strings.Builder, class *ClassAst) error {
	buffer.WriteString("public class " + class.Name + " {\n")
	for _, method := range class.Methods {
		if err := emitFunc(buffer, method); err != nil {
			return err
		}
	}
	buffer.WriteString("}\n")
	return nil
}

// emitFunc renders the signature only. The parameter list and the body are the
// extension point for full code generation; neither is rendered yet.
func emitFunc(buffer *strings.Builder, function *FuncAst) error {
	returnType, err := renderType(function.ReturnType)
	if err != nil {
		return err
	}
	buffer.WriteString("public static " + returnType + " " + function.Name + "(){\n}\n")
	return nil
}

func renderType(desc TypeDesc) (string, error) {
	switch t := desc.(type) {
	case *IntType:
		return "Integer", nil
	case *MapType:
		value, err := renderType(t.Value)
		if err != nil {
			return "", err
		}
		return "Map<String," + value + ">", nil
	default:
		// Notably array types: no Java mapping exists yet, and a placeholder
		// string would poison the output.
		return "", &UnsupportedRenderTargetError{Target: FormatType(desc)}
	}
}
