package ot

// ComposesWith reports whether op and other, produced in sequence by the
// same user, should be merged into a single undo step.
func (op *TextOperation) ComposesWith(other *TextOperation) bool {
	if op.IsNoop() || other.IsNoop() {
		return true
	}

	startA, simpleA := startAndSimple(op)
	startB, simpleB := startAndSimple(other)
	if simpleA == nil || simpleB == nil {
		return false
	}

	if IsInsert(simpleA) && IsInsert(simpleB) {
		// Contiguous forward typing: "ab" then "cd" at the position right
		// after "ab" ended.
		return startA+simpleA.Length() == startB
	}

	if IsDelete(simpleA) && IsDelete(simpleB) {
		// Holding backspace (cursor walks left, startB decreases) or
		// holding delete (cursor stays put, startA == startB).
		return startB-simpleB.Length() == startA || startA == startB
	}

	return false
}

// ComposesWithInverted mirrors ComposesWith for the inverted (undo) stack:
// ComposesWith(a, b) == ComposesWithInverted(b.Invert(...), a.Invert(...))
// for any valid pre-image string.
func (op *TextOperation) ComposesWithInverted(other *TextOperation) bool {
	if op.IsNoop() || other.IsNoop() {
		return true
	}

	startA, simpleA := startAndSimple(op)
	startB, simpleB := startAndSimple(other)
	if simpleA == nil || simpleB == nil {
		return false
	}

	if IsInsert(simpleA) && IsInsert(simpleB) {
		return startA+simpleA.Length() == startB || startA == startB
	}

	if IsDelete(simpleA) && IsDelete(simpleB) {
		return startB-simpleB.Length() == startA
	}

	return false
}

// startAndSimple returns the operation's starting code-unit position and its
// "simple op" — the single non-Retain op in a canonical leading-Retain /
// single-op / leading-and-trailing-Retain shape. simple is nil when the
// operation doesn't match that shape.
func startAndSimple(op *TextOperation) (int, Op) {
	start := 0
	if len(op.ops) > 0 {
		if r, ok := op.ops[0].(RetainOp); ok {
			start = int(r)
		}
	}

	switch len(op.ops) {
	case 1:
		return start, op.ops[0]
	case 2:
		if IsRetain(op.ops[0]) {
			return start, op.ops[1]
		}
		if IsRetain(op.ops[1]) {
			return start, op.ops[0]
		}
	case 3:
		if IsRetain(op.ops[0]) && IsRetain(op.ops[2]) {
			return start, op.ops[1]
		}
	}
	return start, nil
}
