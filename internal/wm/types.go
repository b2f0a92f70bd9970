// Package wm implements the window matching and borderless-fullscreen
// transition engine on top of a platform backend.
package wm

import "fmt"

// Handle identifies a top-level window owned by the window manager. It is a
// borrowed reference: the window system creates and destroys the underlying
// window, and a Handle can go stale at any time.
type Handle uintptr

// Window describes a visible top-level window at enumeration time.
type Window struct {
	Handle Handle
	Title  string
	PID    uint32
}

// Rect is a rectangle in desktop coordinate space.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Monitor describes one physical display: its full pixel bounds and a
// device token identifying which display it is. Monitor values are resolved
// fresh for every transition and never cached.
type Monitor struct {
	Device string
	Bounds Rect
}

// MatchPolicy controls how many matching windows an enumeration returns.
type MatchPolicy int

const (
	// FirstMatch stops enumeration at the first matching window.
	FirstMatch MatchPolicy = iota
	// AllMatches exhausts enumeration and returns every match.
	AllMatches
)

func (p MatchPolicy) String() string {
	switch p {
	case FirstMatch:
		return "first"
	case AllMatches:
		return "all"
	default:
		return fmt.Sprintf("MatchPolicy(%d)", int(p))
	}
}
