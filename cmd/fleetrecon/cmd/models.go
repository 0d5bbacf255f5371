package cmd

import (
	"github.com/spf13/cobra"

	"github.com/irisfleet/fleetrecon/internal/sheet"
	"github.com/irisfleet/fleetrecon/pkg/logging"
	"github.com/irisfleet/fleetrecon/pkg/reconcile"
)

func newModelsCommand() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "models",
		Short: "Reconcile the vehicle model catalogs",
		Long: `Compares the Locavia light-vehicle models against the Salesforce
device records, joining on normalized model code plus fabrication and
model year, and reports field divergences and unmatched records.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithFamily(cmd.Context(), "models")

			report, err := reconcile.Models(ctx, reconcile.Inputs{
				Locavia:    flags.locavia,
				Salesforce: flags.salesforce,
			})
			if err != nil {
				return err
			}

			if flags.out != "" {
				if err := sheet.WriteModels(flags.out, report.Result); err != nil {
					return err
				}
				logging.Ctx(ctx).Info().Str("path", flags.out).Msg("Report written")
			}
			if flags.summary {
				return printSummary(cmd.OutOrStdout(), runSummary{
					Family:              "models",
					Divergences:         len(report.Result.Divergences),
					MissingInSalesforce: len(report.Result.MissingInSalesforce),
					MissingInLocavia:    len(report.Result.MissingInLocavia),
					Report:              flags.out,
				})
			}
			return nil
		},
	}

	flags.register(cmd, false)
	return cmd
}
