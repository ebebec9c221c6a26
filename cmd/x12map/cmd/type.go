package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTypeCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:     "type FILE",
		Short:   "print the transaction set identifier of an X12 document",
		Example: "x12map type 944.edi",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := opts.readTransaction(args[0])
			if err != nil {
				return err
			}

			field, err := tx.Type()
			if err != nil {
				return errors.Wrapf(err, "failed to read transaction type of %s", args[0])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), field.Content())

			return err
		},
	}
}
