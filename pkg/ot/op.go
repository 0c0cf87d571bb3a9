package ot

import "fmt"

// OperationType identifies which of the three op variants a value implements.
type OperationType int

const (
	// OpRetain advances the cursor without modifying the document.
	OpRetain OperationType = iota
	// OpInsert inserts new text at the current position.
	OpInsert
	// OpDelete removes text at the current position.
	OpDelete
)

// Op is a single element of a TextOperation: retain, insert or delete.
//
// A TextOperation never stores an empty op: its builders silently drop
// zero-magnitude arguments instead of appending them, and its op sequence
// is changed only through those builders. The three concrete types are
// plain exported conversions, so a value such as RetainOp(0), InsertOp("")
// or DeleteOp(0) can still be written directly; nothing rejects it.
type Op interface {
	// Type reports which variant this op is.
	Type() OperationType
	// Length reports the op's magnitude: characters retained, characters
	// inserted, or characters deleted.
	Length() int
	// String renders the op for diagnostics, e.g. "retain 5".
	String() string
}

// RetainOp advances the cursor by N code units, copying them to the output.
type RetainOp int

func (o RetainOp) Type() OperationType { return OpRetain }
func (o RetainOp) Length() int         { return int(o) }
func (o RetainOp) String() string      { return fmt.Sprintf("retain %d", int(o)) }

// InsertOp emits a non-empty string into the output at the cursor.
type InsertOp string

func (o InsertOp) Type() OperationType { return OpInsert }
func (o InsertOp) Length() int         { return codeUnitLen(string(o)) }
func (o InsertOp) String() string      { return fmt.Sprintf("insert '%s'", string(o)) }

// DeleteOp advances the cursor by N code units, discarding them. Unlike the
// JavaScript-origin reference implementation this stores the magnitude
// directly rather than a negative-signed count; see DESIGN.md.
type DeleteOp int

func (o DeleteOp) Type() OperationType { return OpDelete }
func (o DeleteOp) Length() int         { return int(o) }
func (o DeleteOp) String() string      { return fmt.Sprintf("delete %d", int(o)) }

// IsRetain reports whether op is a RetainOp.
func IsRetain(op Op) bool { return op.Type() == OpRetain }

// IsInsert reports whether op is an InsertOp.
func IsInsert(op Op) bool { return op.Type() == OpInsert }

// IsDelete reports whether op is a DeleteOp.
func IsDelete(op Op) bool { return op.Type() == OpDelete }
