package wm

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/wwb/internal/logger"
	"github.com/Norgate-AV/wwb/internal/pattern"
)

// Enumerator walks the visible top-level windows and matches their titles
// against a pattern set. It holds no state between calls; every Enumerate
// returns a freshly built slice.
type Enumerator struct {
	backend Backend
	log     logger.LoggerInterface
}

// NewEnumerator creates an Enumerator on the given backend.
func NewEnumerator(backend Backend, log logger.LoggerInterface) *Enumerator {
	return &Enumerator{backend: backend, log: log}
}

// Enumerate returns the visible top-level windows whose titles satisfy at
// least one pattern in the set. Under FirstMatch the walk stops at the first
// match; under AllMatches the result preserves window-manager enumeration
// order. Zero matches is a valid empty result, not an error. An empty
// pattern set matches nothing.
func (e *Enumerator) Enumerate(set *pattern.Set, policy MatchPolicy) ([]Window, error) {
	if set.Empty() {
		return nil, nil
	}

	var matches []Window

	err := e.backend.EnumWindows(func(w Window) bool {
		if !set.Match(w.Title) {
			return true
		}

		e.log.Trace("Window matched",
			slog.Uint64("hwnd", uint64(w.Handle)),
			slog.String("title", w.Title),
		)

		matches = append(matches, w)

		// FirstMatch short-circuits the walk instead of exhausting it.
		return policy != FirstMatch
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}

	e.log.Debug("Enumeration complete",
		slog.Int("matches", len(matches)),
		slog.String("policy", policy.String()),
	)

	return matches, nil
}
