package ot

// Compose combines two consecutive operations into one equivalent operation:
// for any valid string s, other.Apply(op.Apply(s)) == op.Compose(other).Apply(s).
//
// op.TargetLength() must equal other.BaseLength().
//
// The two op sequences are walked with a pair of cursors: pending deletes
// from op drain first, then pending inserts from other, then whichever of
// retain/insert/delete remains is matched against its counterpart a chunk
// at a time.
func (op *TextOperation) Compose(other *TextOperation) (*TextOperation, error) {
	if op.targetLength != other.baseLength {
		return nil, newError(KindLengthMismatch, "the base length of the second operation has to be the target length of the first operation")
	}

	result := NewTextOperation()
	result.Meta = op.Meta

	ops1, ops2 := op.ops, other.ops
	i1, i2 := 0, 0

	var o1, o2 Op
	if i1 < len(ops1) {
		o1 = ops1[i1]
		i1++
	}
	if i2 < len(ops2) {
		o2 = ops2[i2]
		i2++
	}

	for o1 != nil || o2 != nil {
		if o1 != nil && IsDelete(o1) {
			result.Delete(o1.Length())
			o1, i1 = nextOp(ops1, i1)
			continue
		}

		if o2 != nil && IsInsert(o2) {
			result.Insert(string(o2.(InsertOp)))
			o2, i2 = nextOp(ops2, i2)
			continue
		}

		if o1 == nil {
			return nil, newError(KindLengthMismatch, "first operation is too short")
		}
		if o2 == nil {
			return nil, newError(KindLengthMismatch, "first operation is too long")
		}

		switch {
		case IsRetain(o1) && IsRetain(o2):
			n := min(o1.Length(), o2.Length())
			result.Retain(n)
			o1, i1, o2, i2 = shrink(ops1, i1, o1, ops2, i2, o2, n)

		case IsInsert(o1) && IsDelete(o2):
			a, b := o1.Length(), o2.Length()
			switch {
			case a > b:
				s := string(o1.(InsertOp))
				o1 = InsertOp(s[codeUnitIndex(s)[b]:])
				o2, i2 = nextOp(ops2, i2)
			case a < b:
				o2 = DeleteOp(b - a)
				o1, i1 = nextOp(ops1, i1)
			default:
				o1, i1 = nextOp(ops1, i1)
				o2, i2 = nextOp(ops2, i2)
			}

		case IsInsert(o1) && IsRetain(o2):
			a, b := o1.Length(), o2.Length()
			s := string(o1.(InsertOp))
			switch {
			case a > b:
				idx := codeUnitIndex(s)
				result.Insert(s[:idx[b]])
				o1 = InsertOp(s[idx[b]:])
				o2, i2 = nextOp(ops2, i2)
			case a < b:
				result.Insert(s)
				o2 = RetainOp(b - a)
				o1, i1 = nextOp(ops1, i1)
			default:
				result.Insert(s)
				o1, i1 = nextOp(ops1, i1)
				o2, i2 = nextOp(ops2, i2)
			}

		case IsRetain(o1) && IsDelete(o2):
			n := min(o1.Length(), o2.Length())
			result.Delete(n)
			o1, i1, o2, i2 = shrink(ops1, i1, o1, ops2, i2, o2, n)

		default:
			return nil, newError(KindInternal, "compose: unreachable operation pairing")
		}
	}

	return result, nil
}

// nextOp returns the op at ops[i] (advancing i), or (nil, i) if i is past
// the end.
func nextOp(ops []Op, i int) (Op, int) {
	if i < len(ops) {
		return ops[i], i + 1
	}
	return nil, i
}

// shrink advances whichever of o1/o2 was the larger operand by n and pulls
// the next op for whichever was fully consumed.
func shrink(ops1 []Op, i1 int, o1 Op, ops2 []Op, i2 int, o2 Op, n int) (Op, int, Op, int) {
	switch {
	case o1.Length() > n:
		o2, i2 = nextOp(ops2, i2)
		return remainderOf(o1, n), i1, o2, i2
	case o2.Length() > n:
		o1, i1 = nextOp(ops1, i1)
		return o1, i1, remainderOf(o2, n), i2
	default:
		o1, i1 = nextOp(ops1, i1)
		o2, i2 = nextOp(ops2, i2)
		return o1, i1, o2, i2
	}
}

// remainderOf returns op with its length reduced by n, preserving its
// concrete type (Retain stays Retain, Delete stays Delete).
func remainderOf(op Op, n int) Op {
	switch v := op.(type) {
	case RetainOp:
		return RetainOp(int(v) - n)
	case DeleteOp:
		return DeleteOp(int(v) - n)
	default:
		panic("ot: remainderOf called on a non-shrinkable op")
	}
}
