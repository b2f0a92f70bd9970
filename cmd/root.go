package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Norgate-AV/wwb/internal/config"
	"github.com/Norgate-AV/wwb/internal/logger"
	"github.com/Norgate-AV/wwb/internal/pattern"
	"github.com/Norgate-AV/wwb/internal/version"
	"github.com/Norgate-AV/wwb/internal/wm"
)

// RootCmd is the root command for the wwb CLI application.
var RootCmd = &cobra.Command{
	Use:          "wwb <pattern>...",
	Short:        "wwb - Force windows into borderless fullscreen by title pattern",
	Long: `wwb matches visible top-level windows by title against one or more
regular expressions and forces each match into borderless fullscreen on
the monitor it currently occupies.`,
	Version:      version.GetVersion(),
	Args:         validateArgs,
	RunE:         Execute,
	SilenceUsage: true, // Don't show usage on runtime errors
}

func init() {
	// Set custom version template to show full version info
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// Add flags
	RootCmd.PersistentFlags().BoolP("all-matches", "a", false, "transition every matching window instead of just the first")
	RootCmd.PersistentFlags().BoolP("case-insensitive", "i", false, "match titles case-insensitively")
	RootCmd.PersistentFlags().BoolP("remove-decorations", "d", false, "also strip the window's menu bar")
	RootCmd.PersistentFlags().IntP("monitor", "m", 0, "target monitor index (reserved, not yet implemented)")
	RootCmd.PersistentFlags().Bool("list", false, "list matching windows without transitioning them")
	RootCmd.PersistentFlags().BoolP("watch", "w", false, "keep polling and transition matching windows as they appear")
	RootCmd.PersistentFlags().Duration("watch-interval", 0, "poll interval for watch mode")
	RootCmd.PersistentFlags().Duration("watch-timeout", 0, "give up watching after this duration (0 = forever)")
	RootCmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
}

// validateArgs requires at least one pattern unless --logs is handling the run
func validateArgs(cmd *cobra.Command, args []string) error {
	// Allow 0 args for --logs flag, which is handled in Execute
	if len(args) == 0 {
		return nil
	}

	return cobra.MinimumNArgs(1)(cmd, args)
}

// handleLogsFlag processes the --logs flag and exits if needed
func handleLogsFlag(opts *Options, exitFunc func(int)) error {
	if !opts.ShowLogs {
		return nil
	}

	if err := logger.PrintLogFile(nil, logger.LoggerOptions{}); err != nil {
		// PrintLogFile wraps the open error, so unwrap-aware matching is
		// required here.
		if errors.Is(err, fs.ErrNotExist) {
			logPath := logger.GetLogPath(logger.LoggerOptions{})
			fmt.Fprintf(os.Stderr, "Log file does not exist: %s\n", logPath)
			exitFunc(1)
		}

		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitFunc(1)
	}

	exitFunc(0)
	return nil // Won't actually reach here due to exitFunc
}

// initializeLogger creates a logger and logs startup information
func initializeLogger(opts *Options) (logger.LoggerInterface, error) {
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose:    opts.Verbose,
		MaxSize:    opts.Logging.MaxSize,
		MaxBackups: opts.Logging.MaxBackups,
		MaxAge:     opts.Logging.MaxAge,
		Compress:   opts.Logging.CompressEnabled(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// compilePatterns builds the match set from the positional arguments
func compilePatterns(args []string, opts *Options) (*pattern.Set, error) {
	set, err := pattern.Compile(args, opts.CaseInsensitive)
	if err != nil {
		return nil, err
	}

	return set, nil
}

// matchPolicy maps the --all-matches flag to an enumeration policy
func matchPolicy(opts *Options) wm.MatchPolicy {
	if opts.AllMatches {
		return wm.AllMatches
	}

	return wm.FirstMatch
}

// listWindows prints the matched windows without transitioning them
func listWindows(matches []wm.Window) {
	if len(matches) == 0 {
		fmt.Println("No matching windows found")
		return
	}

	for _, w := range matches {
		fmt.Printf("%s  pid %-6d  %s\n",
			color.CyanString("0x%08x", uintptr(w.Handle)),
			w.PID,
			w.Title,
		)
	}
}

// transitionMatches transitions each matched window, reporting per-window
// failures without aborting the rest.
func transitionMatches(trans *wm.Transitioner, matches []wm.Window, opts *Options, log logger.LoggerInterface) error {
	if len(matches) == 0 {
		log.Info("No matching windows found")
		return nil
	}

	failures := 0

	for _, w := range matches {
		if err := trans.Transition(w.Handle, opts.RemoveDecorations); err != nil {
			failures++

			switch {
			case errors.Is(err, wm.ErrWindowNotFound):
				log.Warn("Window disappeared before it could be transitioned",
					slog.Uint64("hwnd", uint64(w.Handle)),
					slog.String("title", w.Title),
				)
			default:
				log.Error("Failed to transition window",
					slog.Uint64("hwnd", uint64(w.Handle)),
					slog.String("title", w.Title),
					slog.Any("error", err),
				)
			}
			continue
		}

		fmt.Printf("%s  %s\n",
			color.GreenString("0x%08x", uintptr(w.Handle)),
			w.Title,
		)
	}

	// Partial success still exits zero; only a clean sweep of failures does
	// not.
	if failures == len(matches) {
		return fmt.Errorf("all %d matched window(s) failed to transition", failures)
	}

	return nil
}

// runWatch polls until matching windows appear, honoring Ctrl+C and the
// optional timeout.
func runWatch(backend wm.Backend, set *pattern.Set, opts *Options, log logger.LoggerInterface) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.WatchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.WatchTimeout)
		defer cancel()
	}

	watcher := wm.NewWatcher(backend, log)

	err := watcher.Run(ctx, wm.WatchOptions{
		Set:               set,
		Policy:            matchPolicy(opts),
		RemoveDecorations: opts.RemoveDecorations,
		Interval:          opts.WatchInterval,
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("no matching window appeared within %s", opts.WatchTimeout)
	case errors.Is(err, context.Canceled):
		log.Info("Watch interrupted")
		return nil
	default:
		return err
	}
}

// Execute runs the provided command with the given arguments.
func Execute(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.Load()
	if err != nil {
		return err
	}

	opts, err := NewOptionsFromFlags(cmd, fileCfg)
	if err != nil {
		return err
	}

	if err := handleLogsFlag(opts, os.Exit); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("at least one title pattern required")
	}

	log, err := initializeLogger(opts)
	if err != nil {
		return err
	}

	defer log.Close()

	log.Debug("Starting wwb", slog.Any("patterns", args))
	log.Debug("Flags set",
		slog.Bool("allMatches", opts.AllMatches),
		slog.Bool("caseInsensitive", opts.CaseInsensitive),
		slog.Bool("removeDecorations", opts.RemoveDecorations),
		slog.Bool("watch", opts.Watch),
	)

	// Recover from panics and log them
	defer func() {
		if r := recover(); r != nil {
			log.Error("PANIC RECOVERED",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)

			fmt.Fprintf(os.Stderr, "\n*** PANIC: %v ***\n", r)
			fmt.Fprintf(os.Stderr, "Check log file for details\n")
		}
	}()

	if opts.MonitorSet {
		log.Warn("The --monitor flag is reserved and has no effect yet; the window's current monitor is used")
	}

	set, err := compilePatterns(args, opts)
	if err != nil {
		return err
	}

	backend, cleanup, err := newBackend(log)
	if err != nil {
		return err
	}

	defer cleanup()

	if opts.Watch {
		return runWatch(backend, set, opts, log)
	}

	enum := wm.NewEnumerator(backend, log)

	matches, err := enum.Enumerate(set, matchPolicy(opts))
	if err != nil {
		return err
	}

	if opts.List {
		listWindows(matches)
		return nil
	}

	return transitionMatches(wm.NewTransitioner(backend, log), matches, opts, log)
}
