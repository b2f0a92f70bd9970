// Package cmd implements the command-line interface for wwb.
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/wwb/internal/config"
)

// Options holds the effective settings for a run: config-file defaults with
// any explicitly set flags layered on top.
type Options struct {
	AllMatches        bool
	CaseInsensitive   bool
	RemoveDecorations bool

	// Monitor is reserved; see the warning in Execute.
	Monitor    int
	MonitorSet bool

	List  bool
	Watch bool

	WatchInterval time.Duration
	WatchTimeout  time.Duration

	Verbose  bool
	ShowLogs bool

	Logging config.LoggingConfig
}

// NewOptionsFromFlags merges the config file with the command flags. A flag
// the user actually set wins over the file; otherwise the file value (or its
// default) applies.
func NewOptionsFromFlags(cmd *cobra.Command, fileCfg *config.Config) (*Options, error) {
	interval, err := fileCfg.WatchInterval()
	if err != nil {
		return nil, err
	}

	timeout, err := fileCfg.WatchTimeout()
	if err != nil {
		return nil, err
	}

	opts := &Options{
		AllMatches:        mergeBoolFlag(cmd, "all-matches", fileCfg.AllMatches),
		CaseInsensitive:   mergeBoolFlag(cmd, "case-insensitive", fileCfg.CaseInsensitive),
		RemoveDecorations: mergeBoolFlag(cmd, "remove-decorations", fileCfg.RemoveDecorations),
		List:              getBoolFlag(cmd, "list"),
		Watch:             getBoolFlag(cmd, "watch"),
		WatchInterval:     interval,
		WatchTimeout:      timeout,
		Verbose:           getBoolFlag(cmd, "verbose"),
		ShowLogs:          getBoolFlag(cmd, "logs"),
		Logging:           fileCfg.Logging,
	}

	if cmd.Flags().Changed("monitor") {
		opts.Monitor, _ = cmd.Flags().GetInt("monitor")
		opts.MonitorSet = true
	}

	if cmd.Flags().Changed("watch-interval") {
		opts.WatchInterval, _ = cmd.Flags().GetDuration("watch-interval")
	}

	if cmd.Flags().Changed("watch-timeout") {
		opts.WatchTimeout, _ = cmd.Flags().GetDuration("watch-timeout")
	}

	return opts, nil
}

// mergeBoolFlag prefers an explicitly set flag over the config file value.
func mergeBoolFlag(cmd *cobra.Command, name string, fileValue bool) bool {
	if cmd.Flags().Changed(name) {
		return getBoolFlag(cmd, name)
	}

	return fileValue
}

// getBoolFlag retrieves a boolean flag, checking both local and persistent flags
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		// Try persistent flags if not found in local flags
		val, _ = cmd.PersistentFlags().GetBool(name)
	}

	return val
}
