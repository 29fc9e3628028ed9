package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/rl/internal/collector"
	"github.com/harrison/rl/internal/config"
	"github.com/harrison/rl/internal/display"
	"github.com/harrison/rl/internal/fileutil"
	"github.com/harrison/rl/internal/format"
	"github.com/harrison/rl/internal/logger"
	"github.com/harrison/rl/internal/printer"
)

// runList implements the listing: config file, flag overrides, then the printer.
func runList(cmd *cobra.Command, args []string, matchers *format.Matchers) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	cfg.MergeWithFlags(flagOverrides(cmd))
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	stderr := cmd.ErrOrStderr()
	for _, w := range display.OptionWarnings(cfg) {
		w.Display(stderr)
	}

	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	log.LogDebug("listing %d path(s), width=%d recursive=%t", len(args), cfg.Width, cfg.Recursive)

	p := printer.New(cmd.OutOrStdout(), fileutil.NewOSFileSystem(), cfg, matchers, log)
	return p.Run(args)
}

// flagOverrides collects the flags that were set explicitly.
func flagOverrides(cmd *cobra.Command) config.Flags {
	return config.Flags{
		ShowAll:         boolFlag(cmd, "all"),
		ShowAlmostAll:   boolFlag(cmd, "almost-all"),
		DirectoryOnly:   boolFlag(cmd, "directory"),
		Recursive:       boolFlag(cmd, "recursive"),
		Classify:        boolFlag(cmd, "classify"),
		QuoteNames:      boolFlag(cmd, "quote-name"),
		Width:           intFlag(cmd, "width"),
		OnePerLine:      boolFlag(cmd, "one"),
		NullSeparated:   boolFlag(cmd, "zero"),
		Long:            boolFlag(cmd, "long"),
		NoOwner:         boolFlag(cmd, "long-no-owner"),
		NoGroup:         boolFlag(cmd, "long-no-group"),
		HumanReadable:   boolFlag(cmd, "human-readable"),
		ContinueOnError: boolFlag(cmd, "keep-going"),
		LogLevel:        stringFlag(cmd, "log-level"),
	}
}

func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// Execute runs cmd and returns the process exit code.
//
// A directory that could not be listed is printed as "<path>: <message>".
// printer.ErrIncomplete prints nothing more, since every skipped directory
// was already reported.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	stderr := cmd.ErrOrStderr()
	var listErr *collector.ListError
	switch {
	case errors.Is(err, printer.ErrIncomplete):
	case errors.As(err, &listErr):
		logger.NewConsoleLogger(stderr, "error").ReportPathError(listErr.Path, listErr.Err)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}
