package cmd

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var exampleForSegmentsCmd = `x12map segments 944.edi
x12map segments --field-terminator '|' --line-terminator '~' 944.edi
`

func newSegmentsCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:     "segments FILE",
		Short:   "list the segments of an X12 document",
		Example: exampleForSegmentsCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := opts.readTransaction(args[0])
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"index", "segment", "fields"})
			table.SetAutoWrapText(false)

			for i, seg := range tx.Segments() {
				table.Append([]string{
					strconv.Itoa(i),
					seg.Name,
					strings.Join(seg.Values(), opts.cfg.FieldTerminator),
				})
			}

			table.Render()

			return nil
		},
	}
}
