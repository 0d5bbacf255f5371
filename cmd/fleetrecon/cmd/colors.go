package cmd

import (
	"github.com/spf13/cobra"

	"github.com/irisfleet/fleetrecon/internal/sheet"
	"github.com/irisfleet/fleetrecon/pkg/logging"
	"github.com/irisfleet/fleetrecon/pkg/reconcile"
)

func newColorsCommand() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Reconcile the vehicle color catalogs",
		Long: `Compares the Locavia color rows against the Salesforce color records,
joining on model code, model year and color ID. Besides divergences and
unmatched records, colors missing in Locavia yield product-option bundle
links flagged for removal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithFamily(cmd.Context(), "colors")

			report, err := reconcile.Colors(ctx, reconcile.Inputs{
				Locavia:        flags.locavia,
				Salesforce:     flags.salesforce,
				BaseIDs:        flags.baseIDs,
				ProductOptions: flags.productOptions,
			})
			if err != nil {
				return err
			}

			if flags.out != "" {
				if err := sheet.WriteColors(flags.out, report.Result, report.Removals, report.Lookups); err != nil {
					return err
				}
				logging.Ctx(ctx).Info().Str("path", flags.out).Msg("Report written")
			}
			if flags.summary {
				return printSummary(cmd.OutOrStdout(), runSummary{
					Family:              "colors",
					Divergences:         len(report.Result.Divergences),
					MissingInSalesforce: len(report.Result.MissingInSalesforce),
					MissingInLocavia:    len(report.Result.MissingInLocavia),
					Removals:            len(report.Removals),
					Report:              flags.out,
				})
			}
			return nil
		},
	}

	flags.register(cmd, true)
	return cmd
}
