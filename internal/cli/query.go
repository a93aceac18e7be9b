package cli

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/roach88/slf/internal/query"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Begin  string
	End    string
	Tags   []string
	Recent int
	Limit  int
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the log file",
		Long: `Query the log file.

Prints matching lines in file order (newest first). Bounds are compared
against whole lines as plain strings, so any prefix of the timestamp layout
works: "2024", "2024-03", "2024-03-01 09:00". An empty bound (-e "") is the
same as leaving the flag out.

Tags match as substrings: -t work also matches #workshop.

Example:
  slf query -b 2024-03-01 -e 2024-04-01
  slf query -t work -t urgent -l 5
  slf query -r 7`,
		Args:          commandArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Begin, "begin", "b", "", "starting date/datetime (inclusive)")
	cmd.Flags().StringVarP(&opts.End, "end", "e", "", "ending date/datetime (non-inclusive)")
	cmd.Flags().StringArrayVarP(&opts.Tags, "tag", "t", nil, "tag to require (repeatable, all must be present)")
	cmd.Flags().IntVarP(&opts.Recent, "recent", "r", 0, "only the <num> most recent days")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", 0, "maximum number of results (0 = no limit)")

	return cmd
}

// params converts flags into query parameters.
func (o *QueryOptions) params(cmd *cobra.Command) (query.Params, error) {
	if o.Recent < 0 {
		return query.Params{}, NewExitError(ExitCommandError, "--recent must not be negative")
	}
	if o.Limit < 0 {
		return query.Params{}, NewExitError(ExitCommandError, "--limit must not be negative")
	}

	p := query.Params{
		Begin: o.Begin,
		End:   o.End,
		Tags:  o.Tags,
		Limit: o.Limit,
	}
	if cmd.Flags().Changed("recent") {
		recent := o.Recent
		p.Recent = &recent
	}
	return p, nil
}

func runQuery(opts *QueryOptions, cmd *cobra.Command) error {
	p, err := opts.params(cmd)
	if err != nil {
		return err
	}

	logger := opts.Logger(cmd)
	file := opts.logFile(cmd)
	filter := query.NewFilter(p, opts.now().Now())
	if bound := filter.RecentBound(); bound != "" {
		logger.Debug("recent bound computed", "bound", bound)
	}

	stream := opts.formatter(cmd).Stream()
	n, err := query.RunFile(file, filter, p.Limit, stream.Write)
	if closeErr := stream.Close(); err == nil {
		err = closeErr
	}
	if errors.Is(err, fs.ErrNotExist) {
		return WrapExitError(ExitCommandError, "cannot query", err)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "cannot query", err)
	}

	logger.Debug("query finished", "log_file", file, "matched", n)
	return nil
}
