// Package cli implements the hjarta-config command tree.
package cli

import (
	"io"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/logging"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel  string
	logFormat string
}

// NewRootCommand builds the command tree. Command output goes to out; logs and errors go to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "hjarta-config",
		Short: "Read and check YAML or JSON configuration files",
		Long: `hjarta-config reads values from YAML or JSON configuration files and checks
them against declared assumptions, exiting non-zero on the first violation.

Keys use dot notation: application.releaseStage`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", logging.FormatText, "log format (text, json)")

	newStore := func() *config.Store {
		logger := logging.NewLogger(logging.LoggerConfig{Level: opts.logLevel, Format: opts.logFormat}, errOut)

		return config.NewStore(config.WithLogger(logger))
	}

	root.AddCommand(
		newGetCommand(newStore),
		newCheckCommand(newStore),
		newVersionCommand(),
	)

	return root
}
