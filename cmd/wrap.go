package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/wwb/internal/config"
	"github.com/Norgate-AV/wwb/internal/logger"
	"github.com/Norgate-AV/wwb/internal/pattern"
	"github.com/Norgate-AV/wwb/internal/timeouts"
	"github.com/Norgate-AV/wwb/internal/wm"
)

// ExitError carries the wrapped program's exit status so main can propagate
// it instead of collapsing every failure to status 1.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// wrapCmd launches a program, waits for its window to appear, transitions it
// to borderless fullscreen, then stays attached until the program exits.
var wrapCmd = &cobra.Command{
	Use:   "wrap <program> [args...]",
	Short: "Launch a program and fullscreen its window once it appears",
	Long: `wrap starts the given program, polls for a window owned by the new
process (optionally filtered by --title), transitions that window to
borderless fullscreen, and then waits for the program to exit. The
program's exit status is propagated.`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         executeWrap,
	SilenceUsage: true,
}

func init() {
	wrapCmd.Flags().StringP("title", "t", ".*", "title pattern the program's window must match")

	// Everything after the program name belongs to the program.
	wrapCmd.Flags().SetInterspersed(false)

	RootCmd.AddCommand(wrapCmd)
}

func executeWrap(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.Load()
	if err != nil {
		return err
	}

	opts, err := NewOptionsFromFlags(cmd, fileCfg)
	if err != nil {
		return err
	}

	log, err := initializeLogger(opts)
	if err != nil {
		return err
	}

	defer log.Close()

	title, _ := cmd.Flags().GetString("title")

	set, err := pattern.Compile([]string{title}, opts.CaseInsensitive)
	if err != nil {
		return err
	}

	program := args[0]
	programArgs := args[1:]

	child := exec.Command(program, programArgs...)
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	child.Stdin = os.Stdin

	log.Debug("Launching program",
		slog.String("program", program),
		slog.Any("args", programArgs),
	)

	if err := child.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", program, err)
	}

	pid := uint32(child.Process.Pid)
	log.Info("Program started", slog.Uint64("pid", uint64(pid)))

	backend, cleanup, err := newBackend(log)
	if err != nil {
		return err
	}

	defer cleanup()

	if err := watchForChildWindow(backend, set, opts, pid, log); err != nil {
		// The window never showed up; the program may still be doing useful
		// work, so stay attached rather than killing it.
		log.Warn("Could not fullscreen a window for the program", slog.Any("error", err))
	}

	if err := child.Wait(); err != nil {
		return childExitError(program, err)
	}

	log.Debug("Program exited cleanly")

	return nil
}

// childExitError converts a Wait failure into an error carrying the
// program's own exit status where one exists.
func childExitError(program string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{
			Code: exitErr.ExitCode(),
			Err:  fmt.Errorf("%s exited with status %d", program, exitErr.ExitCode()),
		}
	}

	return fmt.Errorf("%s: %w", program, err)
}

// watchForChildWindow polls for the first matching window owned by the child
// process and transitions it.
func watchForChildWindow(backend wm.Backend, set *pattern.Set, opts *Options, pid uint32, log logger.LoggerInterface) error {
	timeout := opts.WatchTimeout
	if timeout <= 0 {
		timeout = timeouts.WrapWindowTimeout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Give the process a moment before the first poll; splash screens that
	// match the pattern tend to appear and vanish in the first seconds.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(timeouts.WrapSettleDelay):
	}

	watcher := wm.NewWatcher(backend, log)

	err := watcher.Run(ctx, wm.WatchOptions{
		Set:               set,
		Policy:            wm.FirstMatch,
		RemoveDecorations: opts.RemoveDecorations,
		PID:               pid,
		Interval:          opts.WatchInterval,
	})
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("no matching window appeared within %s", timeout)
	}

	return err
}
