package compiler

import (
	"errors"
	"fmt"
)

// Every stage fails fast with one of the typed errors below. They are all terminal for
// the Parse/Lower/Emit call that produced them: no partial result is returned alongside
// an error, and no stage retries. Callers pick kinds apart with errors.As.

// MismatchedParensError reports an unbalanced paren during parsing. Unclosed is set
// when the input ended while lists were still open, which interactive callers treat as
// "keep reading" rather than a hard failure.
type MismatchedParensError struct {
	Pos      int
	Unclosed bool
}

func (e *MismatchedParensError) Error() string {
	if e.Unclosed {
		return fmt.Sprintf("mismatched parens: input ended at position %d with unclosed lists", e.Pos)
	}
	return fmt.Sprintf("mismatched parens: unexpected ) at position %d", e.Pos)
}

// IsIncomplete reports whether err means the source so far is a prefix of a valid form.
func IsIncomplete(err error) bool {
	var mismatched *MismatchedParensError
	return errors.As(err, &mismatched) && mismatched.Unclosed
}

// UnsupportedTypeError reports a type-annotation string matching no rule of the
// type mini-grammar.
type UnsupportedTypeError struct {
	Text string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %q", e.Text)
}

// MalformedFormError reports a list form whose shape doesn't match the construct
// implied by its head symbol.
type MalformedFormError struct {
	Expected string
	Got      string
}

func (e *MalformedFormError) Error() string {
	return fmt.Sprintf("malformed form: expected %s, got %s", e.Expected, e.Got)
}

// NotImplementedError reports a construct the grammar recognizes but the transform
// has no lowering rule for.
type NotImplementedError struct {
	Construct string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("construct %s is not implemented", e.Construct)
}

// UnsupportedRenderTargetError reports a tree or type descriptor the emitter has no
// rendering rule for.
type UnsupportedRenderTargetError struct {
	Target string
}

func (e *UnsupportedRenderTargetError) Error() string {
	return fmt.Sprintf("emitter cannot render %s", e.Target)
}
