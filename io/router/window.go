// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/inputkit/touchstate/io/pointer"
	"github.com/inputkit/touchstate/io/target"
	"github.com/inputkit/touchstate/io/window"
)

// TouchedWindow records the pointers a single window is receiving:
// the IDs currently touching it, the hovering (device, pointer)
// pairs, the IDs it has pilfered, the dispatch flags accumulated over
// the gesture and the time of the first delivery to it.
//
// A TouchedWindow with no touching pointers and no hovering pointers
// is dead and is pruned by the owning TouchState.
type TouchedWindow struct {
	// Window is the shared handle this record refers to, compared by
	// identity.
	Window *window.Handle
	// Flags are the dispatch flags OR-accumulated over the gesture.
	Flags target.Flags
	// TouchingPointers are the IDs currently delivering touch events
	// to the window.
	TouchingPointers pointer.IDSet
	// PilferedPointers are the IDs the window has claimed
	// exclusively.
	PilferedPointers pointer.IDSet

	// hovering is insertion-ordered and holds no duplicates. Hover is
	// independent of touch; a pair may hover without touching.
	hovering []hoveringPointer

	firstDownTime time.Duration
	hasFirstDown  bool
}

// hoveringPointer is a (device, pointer) pair hovering over a window.
// Hovering devices need not be the device owning the TouchState.
type hoveringPointer struct {
	deviceID  int32
	pointerID pointer.ID
}

// RemoveTouchingPointer clears id from the touching set. Removing an
// absent id is a no-op.
func (w *TouchedWindow) RemoveTouchingPointer(id pointer.ID) {
	w.TouchingPointers = w.TouchingPointers.Clear(id)
}

// AddHoveringPointer records that the pair (deviceID, pointerID) is
// hovering over the window. Duplicate insertion is idempotent.
func (w *TouchedWindow) AddHoveringPointer(deviceID int32, pointerID pointer.ID) {
	p := hoveringPointer{deviceID: deviceID, pointerID: pointerID}
	if slices.Contains(w.hovering, p) {
		return
	}
	w.hovering = append(w.hovering, p)
}

// RemoveHoveringPointer removes the pair (deviceID, pointerID) if
// present.
func (w *TouchedWindow) RemoveHoveringPointer(deviceID int32, pointerID pointer.ID) {
	p := hoveringPointer{deviceID: deviceID, pointerID: pointerID}
	w.hovering = slices.DeleteFunc(w.hovering, func(h hoveringPointer) bool {
		return h == p
	})
}

// HasHoveringPointer reports whether the pair (deviceID, pointerID)
// is hovering over the window.
func (w TouchedWindow) HasHoveringPointer(deviceID int32, pointerID pointer.ID) bool {
	return slices.Contains(w.hovering, hoveringPointer{deviceID: deviceID, pointerID: pointerID})
}

// HasHoveringPointers reports whether any pointer is hovering over
// the window.
func (w TouchedWindow) HasHoveringPointers() bool {
	return len(w.hovering) > 0
}

// ClearHoveringPointers empties the hover set.
func (w *TouchedWindow) ClearHoveringPointers() {
	w.hovering = nil
}

// FirstDownTime returns the time of the first delivery to this window
// and whether it has been recorded. Once recorded it is never
// overwritten.
func (w TouchedWindow) FirstDownTime() (time.Duration, bool) {
	return w.firstDownTime, w.hasFirstDown
}

func (w TouchedWindow) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "name=%q, flags=%s, touching=%s, pilfered=%s",
		w.Window.Name(), w.Flags, w.TouchingPointers, w.PilferedPointers)
	if len(w.hovering) > 0 {
		pairs := lo.Map(w.hovering, func(h hoveringPointer, _ int) string {
			return fmt.Sprintf("%d:%d", h.deviceID, h.pointerID)
		})
		fmt.Fprintf(&b, ", hovering=[%s]", strings.Join(pairs, " "))
	}
	if w.hasFirstDown {
		fmt.Fprintf(&b, ", firstDownTime=%s", w.firstDownTime)
	}
	b.WriteByte('\n')
	return b.String()
}

// dead reports whether the record should be pruned: nothing touching
// and nothing hovering.
func (w TouchedWindow) dead() bool {
	return w.TouchingPointers.None() && !w.HasHoveringPointers()
}
