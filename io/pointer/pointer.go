// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer contains the pointer identifier types shared by the
// touch routing state.
package pointer

import (
	"math/bits"
	"strconv"
	"strings"
)

// ID identifies a pointer for the duration of a gesture, from the
// first down to the final up or cancel. IDs are assigned upstream and
// never exceed MaxID.
type ID uint16

// MaxID is the largest pointer ID representable in an IDSet.
const MaxID ID = 31

// IDSet is a fixed-capacity set of pointer IDs, one bit per ID.
// The zero value is the empty set. All operations are pure; an ID
// above MaxID is a caller error and panics.
type IDSet uint32

// Source is the input-source classification of the device a gesture
// originates from. It is carried and displayed by the routing state
// but never interpreted.
type Source uint32

const (
	// Unknown is the zero Source, used before classification.
	Unknown Source = iota
	// Touchscreen generated events.
	Touchscreen
	// Stylus generated events.
	Stylus
	// Mouse generated events.
	Mouse
	// TouchNavigation events from a touch-capable navigation surface.
	TouchNavigation
)

// NewIDSet returns the set containing ids.
func NewIDSet(ids ...ID) IDSet {
	var s IDSet
	for _, id := range ids {
		s = s.With(id)
	}
	return s
}

// With returns s with id added.
func (s IDSet) With(id ID) IDSet {
	if id > MaxID {
		panic("pointer: ID out of range")
	}
	return s | 1<<id
}

// Clear returns s with id removed.
func (s IDSet) Clear(id ID) IDSet {
	if id > MaxID {
		panic("pointer: ID out of range")
	}
	return s &^ (1 << id)
}

// Has reports whether s contains id.
func (s IDSet) Has(id ID) bool {
	if id > MaxID {
		panic("pointer: ID out of range")
	}
	return s&(1<<id) != 0
}

// Union returns the set of IDs present in s or o.
func (s IDSet) Union(o IDSet) IDSet {
	return s | o
}

// Subtract returns s with every ID present in o removed.
func (s IDSet) Subtract(o IDSet) IDSet {
	return s &^ o
}

// Any reports whether s is non-empty.
func (s IDSet) Any() bool {
	return s != 0
}

// None reports whether s is empty.
func (s IDSet) None() bool {
	return s == 0
}

// Count returns the number of IDs in s.
func (s IDSet) Count() int {
	return bits.OnesCount32(uint32(s))
}

// IDs returns the IDs in s in ascending order.
func (s IDSet) IDs() []ID {
	ids := make([]ID, 0, s.Count())
	for v := uint32(s); v != 0; v &= v - 1 {
		ids = append(ids, ID(bits.TrailingZeros32(v)))
	}
	return ids
}

func (s IDSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range s.IDs() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	b.WriteByte('}')
	return b.String()
}

func (s Source) String() string {
	switch s {
	case Unknown:
		return "Unknown"
	case Touchscreen:
		return "Touchscreen"
	case Stylus:
		return "Stylus"
	case Mouse:
		return "Mouse"
	case TouchNavigation:
		return "TouchNavigation"
	default:
		panic("unknown Source")
	}
}
