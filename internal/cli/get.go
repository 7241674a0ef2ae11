package cli

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

func newGetCommand(newStore func() *config.Store) *cobra.Command {
	var (
		fallback string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Print the value at a key",
		Long: `Print the value at a key as YAML (default) or JSON.

A missing or null value prints the --fallback when given, and fails otherwise.`,
		Example: `  hjarta-config get config.yml application.releaseStage
  hjarta-config get config.yml application.region --fallback eu-west-1
  hjarta-config get config.yml application --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle, err := newStore().Open(args[0])
			if err != nil {
				return err //nolint:wrapcheck // config errors describe the file
			}

			value, found := handle.Lookup(args[1])
			if !found {
				if !cmd.Flags().Changed("fallback") {
					return fmt.Errorf("%w: %s", config.ErrKeyNotFound, args[1])
				}

				value = fallback
			}

			encoded, err := encode(value, output)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(encoded)

			return err //nolint:wrapcheck // write errors are reported as is
		},
	}

	cmd.Flags().StringVar(&fallback, "fallback", "", "value printed when the key is missing or null")
	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "output format (yaml, json)")

	return cmd
}

func encode(value any, output string) ([]byte, error) {
	switch output {
	case outputYAML:
		encoded, err := yaml.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}

		return encoded, nil
	case outputJSON:
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}

		return append(encoded, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", output)
	}
}
