package cmd

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"x12map/internal/config"
	"x12map/mapper"
)

type extractOpts struct {
	spec string
}

var exampleForExtractCmd = `x12map extract --spec 944.yaml 944.edi
x12map extract --spec 990.yaml -o yaml 990.edi
`

func newExtractCmd(opts *rootOpts) *cobra.Command {
	extract := &extractOpts{}

	extractCmd := &cobra.Command{
		Use:     "extract FILE",
		Short:   "map an X12 document to JSON or YAML data",
		Example: exampleForExtractCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadSpec(extract.spec)
			if err != nil {
				return err
			}

			tx, err := opts.readTransaction(args[0])
			if err != nil {
				return err
			}

			f.Apply(tx)

			return writeData(cmd.OutOrStdout(), opts.cfg.Output, mapper.Extract(tx, f.Map))
		},
	}

	flags := extractCmd.Flags()
	flags.StringVarP(&extract.spec, "spec", "s", "", "spec file to apply")
	flags.StringP("output", "o", config.OutputJSON, "output format, json or yaml")
	_ = extractCmd.MarkFlagRequired("spec")

	if err := opts.v.BindPFlag(config.KeyOutput, flags.Lookup("output")); err != nil {
		panic(err)
	}

	return extractCmd
}

func writeData(w io.Writer, format string, data any) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(data); err != nil {
			return errors.Wrap(err, "failed to encode YAML")
		}

		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(data), "failed to encode JSON")
	}
}
