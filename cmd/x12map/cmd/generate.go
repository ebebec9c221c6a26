package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"x12map/mapper"
)

type generateOpts struct {
	spec string
}

var exampleForGenerateCmd = `x12map generate --spec 944.yaml receipt.json
x12map generate --spec 990.yaml --line-terminator '~' responses.yaml
`

func newGenerateCmd(opts *rootOpts) *cobra.Command {
	generate := &generateOpts{}

	generateCmd := &cobra.Command{
		Use:     "generate DATA",
		Short:   "map JSON or YAML data to an X12 document",
		Example: exampleForGenerateCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadSpec(generate.spec)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to read data %s", args[0])
			}

			// YAML is a superset of JSON, one decoder reads both.
			var data map[string]any
			if err := yaml.Unmarshal(raw, &data); err != nil {
				return errors.Wrapf(err, "failed to decode data %s", args[0])
			}

			g := mapper.Generator{
				FieldTerminator: opts.cfg.FieldTerminator,
				LineTerminator:  opts.cfg.LineTerminator,
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), g.Generate(data, f.Map))

			return err
		},
	}

	generateCmd.Flags().StringVarP(&generate.spec, "spec", "s", "", "spec file to apply")
	_ = generateCmd.MarkFlagRequired("spec")

	return generateCmd
}
