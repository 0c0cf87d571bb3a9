package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposesWith_ContiguousInserts(t *testing.T) {
	a := NewTextOperation().Retain(5).Insert("ab")
	b := NewTextOperation().Retain(7).Insert("cd")
	assert.True(t, a.ComposesWith(b))
}

func TestComposesWith_NonContiguousInserts(t *testing.T) {
	a := NewTextOperation().Retain(5).Insert("ab")
	b := NewTextOperation().Retain(0).Insert("cd")
	assert.False(t, a.ComposesWith(b))
}

func TestComposesWith_BackspacingDeletes(t *testing.T) {
	// startB - len(simpleB) == startA: the second delete's start, backed up
	// by its own length, lands exactly on the first delete's start.
	a := NewTextOperation().Retain(3).Delete(1)
	b := NewTextOperation().Retain(5).Delete(2)
	assert.True(t, a.ComposesWith(b))
}

func TestComposesWith_ForwardDeletes(t *testing.T) {
	// holding the Delete key: cursor stays put, each delete starts where the
	// last one did.
	a := NewTextOperation().Retain(2).Delete(1).Retain(3)
	b := NewTextOperation().Retain(2).Delete(1).Retain(2)
	assert.True(t, a.ComposesWith(b))
}

func TestComposesWith_NoopAlwaysComposes(t *testing.T) {
	noop := NewTextOperation().Retain(5)
	other := NewTextOperation().Retain(2).Insert("x").Retain(3)
	assert.True(t, noop.ComposesWith(other))
	assert.True(t, other.ComposesWith(noop))
}

func TestComposesWith_NonSimpleShapeRejected(t *testing.T) {
	a := NewTextOperation().Insert("x").Delete(1).Retain(3)
	b := NewTextOperation().Retain(1).Insert("y")
	assert.False(t, a.ComposesWith(b))
}

func TestComposesWithInverted_MirrorsComposesWith(t *testing.T) {
	for i := 0; i < 50; i++ {
		str := randomString(20)
		a := randomOperation(str)
		applied, err := a.Apply(str)
		if err != nil {
			continue
		}
		b := randomOperation(applied)

		aInv, err := a.Invert(str)
		if err != nil {
			continue
		}
		bInv, err := b.Invert(applied)
		if err != nil {
			continue
		}

		assert.Equal(t, a.ComposesWith(b), bInv.ComposesWithInverted(aInv))
	}
}
