package cli

import (
	"github.com/sartorproj/qqt/internal/report"
	"github.com/spf13/cobra"
)

func newHeadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "head <source>",
		Short: "Print the first rows of a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return report.RenderRows(cmd.OutOrStdout(), a.cfg.Format, report.Head(ds, a.cfg.Rows))
		},
	}
	cmd.Flags().IntP("rows", "n", 10, "Number of rows to print")
	return cmd
}
