package ot

import "strings"

// TextOperation is an ordered sequence of Ops plus the two cached counters
// ot.js calls baseLength and targetLength. It is built once via Retain /
// Insert / Delete, then treated as an immutable value — Apply, Invert,
// Compose and Transform never mutate their receivers or arguments.
type TextOperation struct {
	ops          []Op
	baseLength   int
	targetLength int

	// Meta is an opaque, caller-supplied payload. It is carried through
	// Compose (the composed operation inherits the first operand's Meta)
	// and ignored by Apply, Invert and Transform.
	Meta any
}

// NewTextOperation returns an empty operation, ready to be built with
// Retain/Insert/Delete.
func NewTextOperation() *TextOperation {
	return &TextOperation{ops: make([]Op, 0, 8)}
}

// BaseLength is the length, in UTF-16 code units, of any string this
// operation can be applied to.
func (op *TextOperation) BaseLength() int { return op.baseLength }

// TargetLength is the length, in UTF-16 code units, of the string Apply
// produces.
func (op *TextOperation) TargetLength() int { return op.targetLength }

// Ops exposes the normalised op sequence. Callers must not mutate the
// returned slice.
func (op *TextOperation) Ops() []Op { return op.ops }

// Retain appends n code units of "copy forward" to the operation. n must be
// non-negative; n == 0 is a no-op. Adjacent retains are merged.
func (op *TextOperation) Retain(n int) *TextOperation {
	if n < 0 {
		panic("ot: Retain requires a non-negative length")
	}
	if n == 0 {
		return op
	}
	op.baseLength += n
	op.targetLength += n

	if last, ok := op.lastOp().(RetainOp); ok {
		op.ops[len(op.ops)-1] = last + RetainOp(n)
		return op
	}
	op.ops = append(op.ops, RetainOp(n))
	return op
}

// Insert appends s to the operation's output. An Insert is never appended
// directly after a trailing Delete — instead it is merged into (or placed
// before) that Delete, preserving the invariant that an Insert/Delete
// adjacent pair always has the Insert first.
func (op *TextOperation) Insert(s string) *TextOperation {
	if s == "" {
		return op
	}
	op.targetLength += codeUnitLen(s)

	n := len(op.ops)
	if n == 0 {
		op.ops = append(op.ops, InsertOp(s))
		return op
	}

	last := op.ops[n-1]

	if lastInsert, ok := last.(InsertOp); ok {
		op.ops[n-1] = lastInsert + InsertOp(s)
		return op
	}

	if _, ok := last.(DeleteOp); ok {
		if n >= 2 {
			if prevInsert, ok := op.ops[n-2].(InsertOp); ok {
				op.ops[n-2] = prevInsert + InsertOp(s)
				return op
			}
		}
		// No preceding Insert to merge into: insert a new Insert before
		// the trailing Delete rather than after it.
		op.ops = append(op.ops, nil)
		op.ops[n] = op.ops[n-1]
		op.ops[n-1] = InsertOp(s)
		return op
	}

	op.ops = append(op.ops, InsertOp(s))
	return op
}

// Delete appends a deletion of n code units. n may be given as a negative
// count (its magnitude is used, accepting either sign); n == 0 is a no-op.
// Adjacent deletes are merged.
func (op *TextOperation) Delete(n int) *TextOperation {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return op
	}
	op.baseLength += n

	if last, ok := op.lastOp().(DeleteOp); ok {
		op.ops[len(op.ops)-1] = last + DeleteOp(n)
		return op
	}
	op.ops = append(op.ops, DeleteOp(n))
	return op
}

// DeleteString is Delete(len(s)) in code units, for callers that have the
// deleted text in hand rather than its length.
func (op *TextOperation) DeleteString(s string) *TextOperation {
	return op.Delete(codeUnitLen(s))
}

func (op *TextOperation) lastOp() Op {
	if len(op.ops) == 0 {
		return nil
	}
	return op.ops[len(op.ops)-1]
}

// IsNoop reports whether this operation has no observable effect: it is
// empty, or it is a single Retain.
func (op *TextOperation) IsNoop() bool {
	if len(op.ops) == 0 {
		return true
	}
	return len(op.ops) == 1 && IsRetain(op.ops[0])
}

// Equal reports whether op and other have the same effect: identical
// lengths and an identical, ops-wise equal sequence. Because of the
// insert-before-delete canonicalisation, two operations with the same
// effect on any valid input always have equal Ops.
func (op *TextOperation) Equal(other *TextOperation) bool {
	if other == nil {
		return false
	}
	if op.baseLength != other.baseLength || op.targetLength != other.targetLength {
		return false
	}
	if len(op.ops) != len(other.ops) {
		return false
	}
	for i := range op.ops {
		if op.ops[i] != other.ops[i] {
			return false
		}
	}
	return true
}

// String renders the operation for diagnostics, e.g.
// "retain 2, insert 'lorem', delete 5, retain 5".
func (op *TextOperation) String() string {
	parts := make([]string, len(op.ops))
	for i, o := range op.ops {
		parts[i] = o.String()
	}
	return strings.Join(parts, ", ")
}
