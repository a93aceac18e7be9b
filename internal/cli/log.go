package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/slf/internal/logfile"
	"github.com/roach88/slf/internal/logline"
)

// LogResult is the structured output of log.
type LogResult struct {
	File string `json:"file" yaml:"file"`
	Line string `json:"line" yaml:"line"`
}

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <message>...",
		Short: "Log a message to the log file",
		Long: `Log a message to the log file.

The message is stamped with the current UTC time and written at the top of
the file. Several arguments are joined with spaces. Use #words to tag it.

Example:
  slf log "standup moved to 10:30 #work"
  slf log shipped the release #work #milestone`,
		Args:          commandArgs(cobra.MinimumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(rootOpts, strings.Join(args, " "), cmd)
		},
	}

	return cmd
}

func runLog(opts *RootOptions, message string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	file := opts.logFile(cmd)

	line, err := logfile.Record(file, message, opts.now().Now())
	if errors.Is(err, logline.ErrMultiline) {
		return WrapExitError(ExitCommandError, "cannot log", err)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "cannot log", err)
	}
	opts.Logger(cmd).Debug("entry recorded", "log_file", file, "line", line)

	if formatter.Structured() {
		return formatter.Success(LogResult{File: file, Line: line})
	}
	return nil
}
