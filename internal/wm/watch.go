package wm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Norgate-AV/wwb/internal/logger"
	"github.com/Norgate-AV/wwb/internal/pattern"
	"github.com/Norgate-AV/wwb/internal/timeouts"
)

// WatchOptions configures a polling watch run.
type WatchOptions struct {
	Set               *pattern.Set
	Policy            MatchPolicy
	RemoveDecorations bool

	// PID restricts matches to windows owned by one process. Zero means any
	// process.
	PID uint32

	// Interval between enumeration polls. Zero selects the default.
	Interval time.Duration
}

// Watcher polls enumeration until matching windows appear and transitions
// each new match exactly once. Handles already transitioned are remembered
// for the lifetime of the run so a window is not re-transitioned on every
// poll.
type Watcher struct {
	enum  *Enumerator
	trans *Transitioner
	log   logger.LoggerInterface
}

// NewWatcher creates a Watcher on the given backend.
func NewWatcher(backend Backend, log logger.LoggerInterface) *Watcher {
	return &Watcher{
		enum:  NewEnumerator(backend, log),
		trans: NewTransitioner(backend, log),
		log:   log,
	}
}

// Run polls until the context is cancelled. Under FirstMatch it returns nil
// as soon as one window has been transitioned successfully. Per-window
// transition failures are logged and do not stop the watch; an enumeration
// breakdown does.
func (w *Watcher) Run(ctx context.Context, opts WatchOptions) error {
	interval := opts.Interval
	if interval <= 0 {
		interval = timeouts.WatchPollInterval
	}

	seen := make(map[Handle]bool)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.log.Debug("Watch started",
		slog.String("interval", interval.String()),
		slog.String("policy", opts.Policy.String()),
	)

	for {
		done, err := w.poll(opts, seen)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			w.log.Debug("Watch stopped", slog.Any("cause", ctx.Err()))
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// poll runs one enumeration pass and transitions any new matches. It reports
// done=true when a FirstMatch run has satisfied its single transition.
func (w *Watcher) poll(opts WatchOptions, seen map[Handle]bool) (bool, error) {
	// Always enumerate exhaustively: FirstMatch semantics apply to the
	// windows actually transitioned, and an already-seen handle must not
	// mask a new arrival.
	matches, err := w.enum.Enumerate(opts.Set, AllMatches)
	if err != nil {
		return false, err
	}

	for _, win := range matches {
		if opts.PID != 0 && win.PID != opts.PID {
			continue
		}
		if seen[win.Handle] {
			continue
		}
		seen[win.Handle] = true

		if err := w.trans.Transition(win.Handle, opts.RemoveDecorations); err != nil {
			// Stale handles are expected while windows are still being
			// created and torn down; allow the next poll to retry a fresh
			// handle for the same window.
			if errors.Is(err, ErrWindowNotFound) {
				delete(seen, win.Handle)
			}

			w.log.Warn("Transition failed",
				slog.Uint64("hwnd", uint64(win.Handle)),
				slog.String("title", win.Title),
				slog.Any("error", err),
			)
			continue
		}

		if opts.Policy == FirstMatch {
			return true, nil
		}
	}

	return false, nil
}
