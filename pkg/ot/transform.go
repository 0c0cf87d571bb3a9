package ot

// Transform resolves two operations that were produced concurrently from
// the same base document. It returns (a', b') such that for any valid
// string s:
//
//	b'.Apply(a.Apply(s)) == a'.Apply(b.Apply(s))
//
// and, by extension, a.Compose(b') and b.Compose(a') are equal operations.
//
// a.BaseLength() must equal b.BaseLength().
//
// Inserts are consumed first, with a's insert preferred when both sides
// insert at the same point, then retain/retain, delete/delete,
// delete/retain and retain/delete over whatever remains.
func Transform(a, b *TextOperation) (*TextOperation, *TextOperation, error) {
	if a.baseLength != b.baseLength {
		return nil, nil, newError(KindLengthMismatch, "both operations must have the same base length")
	}

	aPrime := NewTextOperation()
	bPrime := NewTextOperation()

	opsA, opsB := a.ops, b.ops
	iA, iB := 0, 0

	var oa, ob Op
	if iA < len(opsA) {
		oa = opsA[iA]
		iA++
	}
	if iB < len(opsB) {
		ob = opsB[iB]
		iB++
	}

	for oa != nil || ob != nil {
		if oa != nil && IsInsert(oa) {
			s := string(oa.(InsertOp))
			aPrime.Insert(s)
			bPrime.Retain(oa.Length())
			oa, iA = nextOp(opsA, iA)
			continue
		}

		if ob != nil && IsInsert(ob) {
			s := string(ob.(InsertOp))
			bPrime.Insert(s)
			aPrime.Retain(ob.Length())
			ob, iB = nextOp(opsB, iB)
			continue
		}

		if oa == nil {
			return nil, nil, newError(KindLengthMismatch, "first operation is too short")
		}
		if ob == nil {
			return nil, nil, newError(KindLengthMismatch, "second operation is too short")
		}

		switch {
		case IsRetain(oa) && IsRetain(ob):
			n := min(oa.Length(), ob.Length())
			aPrime.Retain(n)
			bPrime.Retain(n)
			oa, iA, ob, iB = shrink(opsA, iA, oa, opsB, iB, ob, n)

		case IsDelete(oa) && IsDelete(ob):
			n := min(oa.Length(), ob.Length())
			// the same source range is deleted by both sides: emit nothing
			oa, iA, ob, iB = shrink(opsA, iA, oa, opsB, iB, ob, n)

		case IsDelete(oa) && IsRetain(ob):
			n := min(oa.Length(), ob.Length())
			aPrime.Delete(n)
			oa, iA, ob, iB = shrink(opsA, iA, oa, opsB, iB, ob, n)

		case IsRetain(oa) && IsDelete(ob):
			n := min(oa.Length(), ob.Length())
			bPrime.Delete(n)
			oa, iA, ob, iB = shrink(opsA, iA, oa, opsB, iB, ob, n)

		default:
			return nil, nil, newError(KindInternal, "transform: operations not compatible")
		}
	}

	return aPrime, bPrime, nil
}
