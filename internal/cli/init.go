package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/slf/internal/config"
)

// InitResult is the structured output of init.
type InitResult struct {
	ConfigPath string `json:"config_path" yaml:"config_path"`
	Path       string `json:"path" yaml:"path"`
}

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Long: `Create a default config file.

Writes a config pointing at log.slf to ~/.config/slf/slf.toml (or the
platform config directory on Windows, or the --config path). An existing
config is never overwritten.

Example:
  slf init
  slf --config ./slf.toml init`,
		Args:          commandArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(rootOpts, cmd)
		},
	}

	return cmd
}

func runInit(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.Logger(cmd)

	path, err := opts.configFile()
	if err != nil {
		return WrapExitError(ExitFailure, "cannot locate config file", err)
	}

	cfg, err := config.Init(path)
	if errors.Is(err, config.ErrExists) {
		return WrapExitError(ExitCommandError, "cannot initialize", err)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "cannot initialize", err)
	}
	logger.Debug("config written", "config_path", path, "path", cfg.Path)

	if formatter.Structured() {
		return formatter.Success(InitResult{ConfigPath: path, Path: cfg.Path})
	}
	return formatter.Success(fmt.Sprintf("Wrote default config to %s", path))
}
