package cmd

import (
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type loopsOpts struct {
	spec  string
	infer bool
	dump  bool
}

var exampleForLoopsCmd = `x12map loops --spec 944.yaml 944.edi
x12map loops --infer --dump 944.edi
`

func newLoopsCmd(opts *rootOpts) *cobra.Command {
	loops := &loopsOpts{}

	loopsCmd := &cobra.Command{
		Use:     "loops FILE",
		Short:   "detect the loops of an X12 document",
		Example: exampleForLoopsCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if loops.spec == "" && !loops.infer {
				return errors.New("either --spec or --infer is required")
			}

			tx, err := opts.readTransaction(args[0])
			if err != nil {
				return err
			}

			inferred := false

			if loops.spec != "" {
				f, err := loadSpec(loops.spec)
				if err != nil {
					return err
				}

				f.Apply(tx)
				inferred = f.InferLoops
			}

			// A spec with infer_loops has already inferred its loop.
			if loops.infer && !inferred {
				tx.InferLoops()
			}

			out := cmd.OutOrStdout()

			if loops.dump {
				cfg := spew.ConfigState{
					Indent:                  "  ",
					DisablePointerAddresses: true,
					DisableCapacities:       true,
					DisableMethods:          true,
				}
				cfg.Fdump(out, tx.Loops())

				return nil
			}

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"index", "position", "matchers", "groups"})
			table.SetAutoWrapText(false)

			for i, l := range tx.Loops() {
				matchers := make([]string, 0, len(l.Matchers()))
				for _, m := range l.Matchers() {
					matchers = append(matchers, m.String())
				}

				table.Append([]string{
					strconv.Itoa(i),
					strconv.Itoa(l.Position),
					strings.Join(matchers, " "),
					strconv.Itoa(len(l.Contents())),
				})
			}

			table.Render()

			return nil
		},
	}

	flags := loopsCmd.Flags()
	flags.StringVarP(&loops.spec, "spec", "s", "", "spec file declaring the loops")
	flags.BoolVar(&loops.infer, "infer", false, "also infer a loop from repeated segment identifiers")
	flags.BoolVar(&loops.dump, "dump", false, "dump the loops and their groups instead of a table")

	return loopsCmd
}
