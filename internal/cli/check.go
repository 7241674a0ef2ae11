package cli

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	required  bool
	valueType string
	oneOf     []string
}

func newCheckCommand(newStore func() *config.Store) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <file> <key>",
		Short: "Check a value against assertions",
		Long: `Check a value against assertions, in the order --required, --type, --one-of.
The first violation is printed and the command exits non-zero.

--one-of values are read as YAML scalars, so 6 matches a number and true a boolean.`,
		Example: `  hjarta-config check config.yml application.version --required --type number
  hjarta-config check config.yml application.releaseStage --one-of Production,Staging,Test`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			assert, err := opts.assertion()
			if err != nil {
				return err
			}

			handle, err := newStore().Open(args[0])
			if err != nil {
				return err //nolint:wrapcheck // config errors describe the file
			}

			err = assert(handle.Evaluate(args[1])).Err()
			if err != nil {
				return err //nolint:wrapcheck // violations name the key
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", args[1])

			return err //nolint:wrapcheck // write errors are reported as is
		},
	}

	cmd.Flags().BoolVar(&opts.required, "required", false, "fail when the value is missing or null")
	cmd.Flags().StringVar(&opts.valueType, "type", "", "expected type (string, number, boolean, mapping, sequence)")
	cmd.Flags().StringSliceVar(&opts.oneOf, "one-of", nil, "comma separated list of allowed values")

	return cmd
}

// assertion validates the flags up front and returns the chain they describe.
func (o *checkOptions) assertion() (func(*config.Evaluation) *config.Evaluation, error) {
	var typeCheck func(*config.Evaluation) *config.Evaluation

	switch o.valueType {
	case "":
	case "string":
		typeCheck = (*config.Evaluation).IsString
	case "number", "numeric":
		typeCheck = (*config.Evaluation).IsNumeric
	case "boolean", "bool":
		typeCheck = (*config.Evaluation).IsBoolean
	case "mapping", "map":
		typeCheck = (*config.Evaluation).IsMapping
	case "sequence", "list":
		typeCheck = (*config.Evaluation).IsSequence
	default:
		return nil, fmt.Errorf("unknown type %q", o.valueType)
	}

	allowed := make([]any, 0, len(o.oneOf))

	for _, raw := range o.oneOf {
		var value any

		err := yaml.Unmarshal([]byte(raw), &value)
		if err != nil {
			return nil, fmt.Errorf("one-of value %q: %w", raw, err)
		}

		allowed = append(allowed, value)
	}

	return func(session *config.Evaluation) *config.Evaluation {
		if o.required {
			session = session.IsRequired()
		}

		if typeCheck != nil {
			session = typeCheck(session)
		}

		if len(o.oneOf) > 0 {
			session = session.IsOneOf(allowed...)
		}

		return session
	}, nil
}
