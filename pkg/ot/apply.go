package ot

import "strings"

// Apply applies the operation to s, returning the transformed string.
//
// s must have length equal to op.BaseLength(), in UTF-16 code units,
// else Apply fails with a LengthMismatch error.
func (op *TextOperation) Apply(s string) (string, error) {
	if codeUnitLen(s) != op.baseLength {
		return "", newError(KindLengthMismatch, "base length must equal string length")
	}

	index := codeUnitIndex(s)
	pos := 0 // current position, in UTF-16 code units

	var out strings.Builder
	out.Grow(len(s))

	for _, o := range op.ops {
		switch v := o.(type) {
		case RetainOp:
			n := int(v)
			if pos+n >= len(index) {
				return "", newError(KindLengthMismatch, "retain past end")
			}
			out.WriteString(s[index[pos]:index[pos+n]])
			pos += n

		case InsertOp:
			out.WriteString(string(v))

		case DeleteOp:
			n := int(v)
			if pos+n >= len(index) {
				return "", newError(KindLengthMismatch, "delete past end")
			}
			pos += n
		}
	}

	if pos != op.baseLength {
		return "", newError(KindLengthMismatch, "the operation didn't operate on the whole string")
	}

	return out.String(), nil
}

// Invert computes the operation that undoes op, given the string op would
// be applied to (the pre-image, not the result of Apply).
//
// invert(op, s).BaseLength() == op.TargetLength(), invert(op,
// s).TargetLength() == op.BaseLength(), and invert(op,
// s).Apply(op.Apply(s)) == s for every valid s.
func (op *TextOperation) Invert(s string) (*TextOperation, error) {
	if codeUnitLen(s) != op.baseLength {
		return nil, newError(KindLengthMismatch, "base length must equal string length")
	}

	index := codeUnitIndex(s)
	inverse := NewTextOperation()
	pos := 0

	for _, o := range op.ops {
		switch v := o.(type) {
		case RetainOp:
			inverse.Retain(int(v))
			pos += int(v)

		case InsertOp:
			inverse.Delete(codeUnitLen(string(v)))

		case DeleteOp:
			n := int(v)
			if pos+n >= len(index) {
				return nil, newError(KindLengthMismatch, "delete past end")
			}
			inverse.Insert(s[index[pos]:index[pos+n]])
			pos += n
		}
	}

	return inverse, nil
}
