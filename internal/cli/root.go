package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/slf/internal/clock"
	"github.com/roach88/slf/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json" | "yaml"
	File       string // log file override
	ConfigPath string // config file override

	// Clock allows overriding the time source (for testing).
	// If nil, defaults to clock.System.
	Clock clock.Clock

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the slf CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slf",
		Short: "slf - simple log file",
		Long: `A personal append-only text logger.

slf stamps messages with the current UTC time and keeps them in a plain-text
file, newest first. Tag entries inline with #words and find them again with
date, tag and recency filters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.File, "file", "f", "", "log file to use (overrides the config file)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/slf/slf.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Add subcommands
	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewLogCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newLogger builds the diagnostic logger: text on stderr, debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// Logger returns the diagnostic logger, building one when the command runs
// without the root's pre-run hook.
func (o *RootOptions) Logger(cmd *cobra.Command) *slog.Logger {
	if o.logger == nil {
		o.logger = newLogger(cmd.ErrOrStderr(), o.Verbose)
	}
	return o.logger
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format: o.Format,
		Writer: cmd.OutOrStdout(),
	}
}

func (o *RootOptions) now() clock.Clock {
	return clock.Or(o.Clock)
}

// configFile returns the config location: --config, or the platform default.
func (o *RootOptions) configFile() (string, error) {
	if o.ConfigPath != "" {
		return config.ExpandHome(o.ConfigPath), nil
	}
	return config.FilePath()
}

// loadConfig loads the config file, falling back to defaults on any error.
// It returns the config location it tried, which is empty when none could be
// determined.
func (o *RootOptions) loadConfig(cmd *cobra.Command) (config.Config, string) {
	logger := o.Logger(cmd)
	path, err := o.configFile()
	if err != nil {
		logger.Debug("cannot locate config file", "error", err)
		return config.Default(), ""
	}
	return config.LoadOrDefault(path, logger), path
}

// logFile resolves the log file for this invocation.
func (o *RootOptions) logFile(cmd *cobra.Command) string {
	cfg, _ := o.loadConfig(cmd)
	file := config.Resolve(cfg, o.File)
	o.Logger(cmd).Debug("log file resolved", "log_file", file)
	return file
}

// commandArgs wraps a positional-args validator so violations exit as
// command errors.
func commandArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "invalid arguments", err)
		}
		return nil
	}
}
