// SPDX-License-Identifier: Unlicense OR MIT

// Package window declares the handle type the touch router uses to
// refer to windows. The router never creates, mutates or destroys a
// handle; it holds and compares references supplied by the caller.
package window

import "strings"

// Token is the stable external identity of a window. Several handles
// may share a token, for example the same logical window observed
// through two transforms. Tokens must be comparable.
type Token any

// Config is the set of input configuration bits of a window.
type Config uint32

const (
	// NotTouchable windows are excluded from touch entirely.
	NotTouchable Config = 1 << iota
	// PreventSplitting windows refuse gestures split across windows.
	PreventSplitting
	// DuplicateTouchToWallpaper windows mirror their touches to the
	// wallpaper behind them.
	DuplicateTouchToWallpaper
	// IsWallpaper marks the wallpaper window.
	IsWallpaper
	// Slippery windows let a gesture slide off onto the window below
	// instead of keeping it until the final up.
	Slippery
	// Spy windows observe gestures without consuming them.
	Spy
)

// Info describes a window to the touch router.
type Info struct {
	// Name is a human-readable identifier for diagnostics.
	Name string
	// Token is the window's external identity.
	Token Token
	// Config holds the window's input configuration bits.
	Config Config
}

// Handle is a shared reference to a window description. Handles are
// compared by identity: two *Handle values refer to the same window
// only if they are the same pointer, even when their Info is equal or
// they share a token.
type Handle struct {
	Info Info
}

// Name returns the window's diagnostic name.
func (h *Handle) Name() string {
	return h.Info.Name
}

// Token returns the window's external identity token.
func (h *Handle) Token() Token {
	return h.Info.Token
}

// Config returns the window's input configuration bits.
func (h *Handle) Config() Config {
	return h.Info.Config
}

// Contain reports whether c contains all of cfg.
func (c Config) Contain(cfg Config) bool {
	return c&cfg == cfg
}

func (c Config) String() string {
	if c == 0 {
		return ""
	}
	var b strings.Builder
	for cc := Config(1); cc > 0; cc <<= 1 {
		if c&cc > 0 {
			if b.Len() > 0 {
				b.WriteByte('|')
			}
			b.WriteString((c & cc).string())
		}
	}
	return b.String()
}

func (c Config) string() string {
	switch c {
	case NotTouchable:
		return "NotTouchable"
	case PreventSplitting:
		return "PreventSplitting"
	case DuplicateTouchToWallpaper:
		return "DuplicateTouchToWallpaper"
	case IsWallpaper:
		return "IsWallpaper"
	case Slippery:
		return "Slippery"
	case Spy:
		return "Spy"
	default:
		panic("unknown Config")
	}
}
