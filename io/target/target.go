// SPDX-License-Identifier: Unlicense OR MIT

// Package target defines the dispatch flags accumulated on a window
// while it receives a pointer stream.
package target

import "strings"

// Flags describes how events are dispatched to a touched window.
// The four dispatch modes covered by DispatchMask are mutually
// relevant; the remaining bits qualify the target independently.
type Flags uint32

const (
	// AsIs dispatches events to the window unchanged, as a direct
	// recipient of the gesture.
	AsIs Flags = 1 << iota
	// Outside dispatches an initial down to a window the gesture
	// started outside of.
	Outside
	// SlipperyEnter dispatches a synthesized down to a window the
	// gesture slid onto.
	SlipperyEnter
	// SlipperyExit dispatches a synthesized up to a window the
	// gesture slid off of.
	SlipperyExit
	// Foreground marks the window as a foreground recipient.
	Foreground
	// Split marks a target that accepts a subset of the pointers of
	// a multi-pointer gesture.
	Split
	// WindowIsObscured marks a target fully covered by another
	// window at the time of dispatch.
	WindowIsObscured
	// WindowIsPartiallyObscured marks a target partly covered by
	// another window at the time of dispatch.
	WindowIsPartiallyObscured
	// ZeroCoords dispatches events with their coordinates scrubbed.
	ZeroCoords
)

// DispatchMask covers the dispatch mode bits.
const DispatchMask = AsIs | Outside | SlipperyEnter | SlipperyExit

// Contain reports whether f contains all of flags.
func (f Flags) Contain(flags Flags) bool {
	return f&flags == flags
}

// Any reports whether f contains at least one of flags.
func (f Flags) Any(flags Flags) bool {
	return f&flags != 0
}

func (f Flags) String() string {
	if f == 0 {
		return ""
	}
	var b strings.Builder
	for ff := Flags(1); ff > 0; ff <<= 1 {
		if f&ff > 0 {
			if b.Len() > 0 {
				b.WriteByte('|')
			}
			b.WriteString((f & ff).string())
		}
	}
	return b.String()
}

func (f Flags) string() string {
	switch f {
	case AsIs:
		return "AsIs"
	case Outside:
		return "Outside"
	case SlipperyEnter:
		return "SlipperyEnter"
	case SlipperyExit:
		return "SlipperyExit"
	case Foreground:
		return "Foreground"
	case Split:
		return "Split"
	case WindowIsObscured:
		return "WindowIsObscured"
	case WindowIsPartiallyObscured:
		return "WindowIsPartiallyObscured"
	case ZeroCoords:
		return "ZeroCoords"
	default:
		panic("unknown Flags")
	}
}
