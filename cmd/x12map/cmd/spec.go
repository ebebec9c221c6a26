package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"x12map/mapspec"
)

func newSpecCmd() *cobra.Command {
	specCmd := &cobra.Command{
		Use:   "spec",
		Short: "validate and normalize spec files",
	}

	specCmd.AddCommand(newSpecValidateCmd(), newSpecNormalizeCmd())

	return specCmd
}

func newSpecValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "validate SPEC",
		Short:   "report problems in a spec file",
		Example: "x12map spec validate 944.yaml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := mapspec.LoadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to load spec")
			}

			diags := f.Validate()

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"severity", "code", "path", "message"})
			table.SetAutoWrapText(false)

			for _, d := range diags.All() {
				table.Append([]string{d.Severity.String(), d.Code, d.Path, d.Message})
			}

			if len(diags.All()) > 0 {
				table.Render()
			}

			if !diags.IsValid() {
				return errors.Errorf("spec %s has %d error(s)", args[0], len(diags.Errors))
			}

			return nil
		},
	}
}

func newSpecNormalizeCmd() *cobra.Command {
	var format string

	normalizeCmd := &cobra.Command{
		Use:     "normalize SPEC",
		Short:   "print a spec file in canonical form",
		Example: "x12map spec normalize 944.toml > 944.yaml\nx12map spec normalize --format toml 944.yaml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadSpec(args[0])
			if err != nil {
				return err
			}

			var data []byte

			switch format {
			case "yaml":
				data, err = mapspec.Marshal(f)
			case "toml":
				data, err = mapspec.MarshalTOML(f)
			default:
				return errors.Errorf("invalid format %q, want yaml or toml", format)
			}

			if err != nil {
				return errors.Wrap(err, "failed to marshal spec")
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	normalizeCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format, yaml or toml")

	return normalizeCmd
}
