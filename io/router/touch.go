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

// TouchState is the touch routing state of one device+source pair.
// Windows is insertion-ordered; the order carries no meaning except
// that queries picking one entry among ties take the first match.
// No two entries refer to the same window identity.
//
// TouchState is not safe for concurrent use.
type TouchState struct {
	DeviceID int32
	Source   pointer.Source
	Windows  []TouchedWindow
}

// Reset restores s to its just-created empty state.
func (s *TouchState) Reset() {
	*s = TouchState{}
}

// RemoveTouchedPointer clears pointerID from the touching set of
// every window. Dead windows are not pruned; callers combine with
// ClearWindowsWithoutPointers where needed.
func (s *TouchState) RemoveTouchedPointer(pointerID pointer.ID) {
	for i := range s.Windows {
		s.Windows[i].RemoveTouchingPointer(pointerID)
	}
}

// RemoveTouchedPointerFromWindow clears pointerID from the window
// matching w by identity. It is a no-op if w has no entry.
func (s *TouchState) RemoveTouchedPointerFromWindow(pointerID pointer.ID, w *window.Handle) {
	for i := range s.Windows {
		if s.Windows[i].Window == w {
			s.Windows[i].RemoveTouchingPointer(pointerID)
			return
		}
	}
}

// ClearHoveringPointers empties the hover set of every window.
func (s *TouchState) ClearHoveringPointers() {
	for i := range s.Windows {
		s.Windows[i].ClearHoveringPointers()
	}
}

// ClearWindowsWithoutPointers removes every window with no touching
// and no hovering pointers, preserving the order of the survivors.
func (s *TouchState) ClearWindowsWithoutPointers() {
	s.Windows = slices.DeleteFunc(s.Windows, TouchedWindow.dead)
}

// AddOrUpdateWindow merges flags, pointerIDs and the first down time
// into the window matching w by identity, creating and appending a
// new entry if there is none.
//
// Flags are OR-accumulated. Incoming SlipperyExit clears AsIs, so a
// window a gesture is sliding off of is not also dispatched to as a
// direct recipient. The first down time is recorded only if the entry
// has none yet; pass haveDownTime=false when the delivery carries no
// down, such as hover or Outside targets.
func (s *TouchState) AddOrUpdateWindow(w *window.Handle, flags target.Flags, pointerIDs pointer.IDSet, downTime time.Duration, haveDownTime bool) {
	for i := range s.Windows {
		tw := &s.Windows[i]
		// Compare by identity, not token: two windows sharing a token
		// may have different transforms.
		if tw.Window != w {
			continue
		}
		tw.Flags |= flags
		if flags.Contain(target.SlipperyExit) {
			tw.Flags &^= target.AsIs
		}
		tw.TouchingPointers = tw.TouchingPointers.Union(pointerIDs)
		if !tw.hasFirstDown && haveDownTime {
			tw.firstDownTime = downTime
			tw.hasFirstDown = true
		}
		return
	}
	tw := TouchedWindow{
		Window:           w,
		Flags:            flags,
		TouchingPointers: pointerIDs,
	}
	if haveDownTime {
		tw.firstDownTime = downTime
		tw.hasFirstDown = true
	}
	s.Windows = append(s.Windows, tw)
}

// AddHoveringPointerToWindow records that the pair (deviceID,
// pointerID) is hovering over w, creating an entry for w if there is
// none.
func (s *TouchState) AddHoveringPointerToWindow(w *window.Handle, deviceID int32, pointerID pointer.ID) {
	for i := range s.Windows {
		if s.Windows[i].Window == w {
			s.Windows[i].AddHoveringPointer(deviceID, pointerID)
			return
		}
	}
	tw := TouchedWindow{Window: w}
	tw.AddHoveringPointer(deviceID, pointerID)
	s.Windows = append(s.Windows, tw)
}

// RemoveWindowByToken removes the first window whose token equals
// token. Distinct handles may share a token, so only one entry is
// removed. It is a no-op if none match.
func (s *TouchState) RemoveWindowByToken(token window.Token) {
	for i := range s.Windows {
		if s.Windows[i].Window.Token() == token {
			s.Windows = slices.Delete(s.Windows, i, i+1)
			return
		}
	}
}

// FilterNonAsIsTouchWindows is applied once a gesture has committed
// to direct dispatch. Windows dispatched AsIs or SlipperyEnter have
// their dispatch mode collapsed to exactly AsIs, leaving non-mode
// bits untouched; every other window is removed. The relative order
// of the survivors is preserved.
func (s *TouchState) FilterNonAsIsTouchWindows() {
	for i := 0; i < len(s.Windows); {
		w := &s.Windows[i]
		if w.Flags.Any(target.AsIs | target.SlipperyEnter) {
			w.Flags &^= target.DispatchMask
			w.Flags |= target.AsIs
			i++
		} else {
			s.Windows = slices.Delete(s.Windows, i, i+1)
		}
	}
}

// CancelPointersForWindowsExcept removes pointerIDs from the touching
// set of every window whose token is not token, then prunes dead
// windows. Used when the window identified by token claims pointers
// exclusively and all others must relinquish them. An empty
// pointerIDs is a no-op.
func (s *TouchState) CancelPointersForWindowsExcept(pointerIDs pointer.IDSet, token window.Token) {
	if pointerIDs.None() {
		return
	}
	for i := range s.Windows {
		w := &s.Windows[i]
		if w.Window.Token() != token {
			w.TouchingPointers = w.TouchingPointers.Subtract(pointerIDs)
		}
	}
	s.ClearWindowsWithoutPointers()
}

// CancelPointersForNonPilferingWindows removes every pilfered pointer
// from the windows that are not pilfering it. If pointer 1 goes to
// both window A and window B and A is pilfering it, pointer 1 must
// stop going to B. Dead windows are pruned afterwards.
func (s *TouchState) CancelPointersForNonPilferingWindows() {
	// Find all pointers being pilfered, across all windows.
	var allPilfered pointer.IDSet
	for _, w := range s.Windows {
		allPilfered = allPilfered.Union(w.PilferedPointers)
	}
	// Most of the time, pilfering does not occur.
	if allPilfered.None() {
		return
	}
	for i := range s.Windows {
		w := &s.Windows[i]
		// Pilfered sets are usually disjoint across windows, making
		// the symmetric difference exactly the pointers pilfered by
		// other windows. There is no reason to require disjointness
		// here, though.
		pilferedByOthers := w.PilferedPointers ^ allPilfered
		w.TouchingPointers = w.TouchingPointers.Subtract(pilferedByOthers)
	}
	s.ClearWindowsWithoutPointers()
}

// FirstForegroundWindow returns the first window with the Foreground
// flag, or nil.
func (s *TouchState) FirstForegroundWindow() *window.Handle {
	for _, w := range s.Windows {
		if w.Flags.Contain(target.Foreground) {
			return w.Window
		}
	}
	return nil
}

// IsSlippery reports whether the gesture can slide off its target:
// there is exactly one foreground window and that window is
// configured slippery.
func (s *TouchState) IsSlippery() bool {
	haveSlipperyForeground := false
	for _, w := range s.Windows {
		if !w.Flags.Contain(target.Foreground) {
			continue
		}
		if haveSlipperyForeground || !w.Window.Config().Contain(window.Slippery) {
			return false
		}
		haveSlipperyForeground = true
	}
	return haveSlipperyForeground
}

// WallpaperWindow returns the first window configured as wallpaper,
// or nil.
func (s *TouchState) WallpaperWindow() *window.Handle {
	for _, w := range s.Windows {
		if w.Window.Config().Contain(window.IsWallpaper) {
			return w.Window
		}
	}
	return nil
}

// TouchedWindowFor returns the record for w. The caller must have
// verified that w has an entry; TouchedWindowFor panics if it does
// not.
func (s *TouchState) TouchedWindowFor(w *window.Handle) *TouchedWindow {
	i := slices.IndexFunc(s.Windows, func(tw TouchedWindow) bool {
		return tw.Window == w
	})
	if i == -1 {
		panic("router: " + w.Name() + " is not a touched window")
	}
	return &s.Windows[i]
}

// IsDown reports whether any window has a touching pointer.
func (s *TouchState) IsDown() bool {
	return slices.ContainsFunc(s.Windows, func(w TouchedWindow) bool {
		return w.TouchingPointers.Any()
	})
}

// WindowsWithHoveringPointer returns the windows whose hover set
// contains the pair (deviceID, pointerID).
func (s *TouchState) WindowsWithHoveringPointer(deviceID int32, pointerID pointer.ID) []*window.Handle {
	return lo.Uniq(lo.FilterMap(s.Windows, func(w TouchedWindow, _ int) (*window.Handle, bool) {
		return w.Window, w.HasHoveringPointer(deviceID, pointerID)
	}))
}

// RemoveHoveringPointer removes the pair (deviceID, pointerID) from
// the hover set of every window, then prunes dead windows.
func (s *TouchState) RemoveHoveringPointer(deviceID int32, pointerID pointer.ID) {
	for i := range s.Windows {
		s.Windows[i].RemoveHoveringPointer(deviceID, pointerID)
	}
	s.ClearWindowsWithoutPointers()
}

func (s *TouchState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "deviceId=%d, source=%s\n", s.DeviceID, s.Source)
	if len(s.Windows) == 0 {
		b.WriteString("  Windows: <none>\n")
		return b.String()
	}
	b.WriteString("  Windows:\n")
	for i, w := range s.Windows {
		fmt.Fprintf(&b, "    %d : %s", i, w.String())
	}
	return b.String()
}
