package ot

import "fmt"

// ToSequence renders the operation as a flat sequence: each Retain(n)
// becomes +n, each Delete(n) becomes -n, and each Insert(s) becomes s.
func (op *TextOperation) ToSequence() []any {
	seq := make([]any, len(op.ops))
	for i, o := range op.ops {
		switch v := o.(type) {
		case RetainOp:
			seq[i] = int(v)
		case InsertOp:
			seq[i] = string(v)
		case DeleteOp:
			seq[i] = -int(v)
		}
	}
	return seq
}

// FromSequence rebuilds a TextOperation from the form ToSequence produces.
// A positive int is a retain, a negative int is a delete of that magnitude,
// a zero int carries no information and is skipped, and a non-empty string
// is an insert. Any other element — an empty string, a non-string/non-int
// value, or nil — fails with a ParseError whose message embeds the
// offending element's rendered form.
//
// FromSequence(op.ToSequence()) always equals op.
func FromSequence(seq []any) (*TextOperation, error) {
	op := NewTextOperation()

	for _, elem := range seq {
		switch v := elem.(type) {
		case int:
			switch {
			case v > 0:
				op.Retain(v)
			case v < 0:
				op.Delete(-v)
			}
			// v == 0 carries no information; treated as a no-op.
		case string:
			if v == "" {
				return nil, newError(KindParse, "unknown operation: %v", elem)
			}
			op.Insert(v)
		default:
			return nil, newError(KindParse, "unknown operation: %v", renderElement(elem))
		}
	}

	return op, nil
}

func renderElement(elem any) string {
	if elem == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", elem)
}
