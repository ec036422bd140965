package cli

import (
	"github.com/sartorproj/qqt/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <source>...",
		Short: "Print column statistics for one or more sources",
		Long: `Load each source (file path or http(s) URL) into its own dataset and print
row, non-blank and numeric counts plus sum, mean, min, max, median and
population/sample variance for every column.

Sources are loaded concurrently; the first failure aborts the command.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([][]report.ColumnReport, len(args))

			g, ctx := errgroup.WithContext(cmd.Context())
			for i, source := range args {
				g.Go(func() error {
					ds, err := a.load(ctx, source)
					if err != nil {
						return err
					}
					results[i] = report.Describe(source, ds)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			var reports []report.ColumnReport
			for _, r := range results {
				reports = append(reports, r...)
			}
			return report.RenderSummaries(cmd.OutOrStdout(), a.cfg.Format, reports)
		},
	}
}
