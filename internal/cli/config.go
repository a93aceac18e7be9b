package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/slf/internal/config"
)

// ConfigInfo describes how the log file was resolved.
type ConfigInfo struct {
	ConfigPath   string `json:"config_path" yaml:"config_path"`
	ConfigExists bool   `json:"config_exists" yaml:"config_exists"`
	Path         string `json:"path" yaml:"path"`
	LogFile      string `json:"log_file" yaml:"log_file"`
}

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the resolved configuration.

Prints the config file location, whether it exists, the configured log path
and the log file commands will actually use after --file and ~ expansion.`,
		Args:          commandArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(rootOpts, cmd)
		},
	}

	return cmd
}

func runConfig(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	cfg, path := opts.loadConfig(cmd)
	info := ConfigInfo{
		ConfigPath: path,
		Path:       cfg.Path,
		LogFile:    config.Resolve(cfg, opts.File),
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			info.ConfigExists = true
		}
	}

	if formatter.Structured() {
		return formatter.Success(info)
	}

	status := "missing, using defaults"
	if info.ConfigExists {
		status = "found"
	}
	w := formatter.Writer
	fmt.Fprintf(w, "config file: %s (%s)\n", info.ConfigPath, status)
	fmt.Fprintf(w, "path:        %s\n", info.Path)
	fmt.Fprintf(w, "log file:    %s\n", info.LogFile)
	return nil
}
