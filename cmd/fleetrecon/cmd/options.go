package cmd

import (
	"github.com/spf13/cobra"

	"github.com/irisfleet/fleetrecon/internal/sheet"
	"github.com/irisfleet/fleetrecon/pkg/logging"
	"github.com/irisfleet/fleetrecon/pkg/reconcile"
)

func newOptionsCommand() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Reconcile the product optional catalogs",
		Long: `Compares the Locavia optional rows against the Salesforce optional
records, joining on model code, model year and optional ID. Besides
divergences and unmatched records, optionals missing in Locavia yield
product-option bundle links flagged for removal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithFamily(cmd.Context(), "options")

			report, err := reconcile.Options(ctx, reconcile.Inputs{
				Locavia:        flags.locavia,
				Salesforce:     flags.salesforce,
				BaseIDs:        flags.baseIDs,
				ProductOptions: flags.productOptions,
			})
			if err != nil {
				return err
			}

			if flags.out != "" {
				if err := sheet.WriteOptions(flags.out, report.Result, report.Removals, report.Lookups); err != nil {
					return err
				}
				logging.Ctx(ctx).Info().Str("path", flags.out).Msg("Report written")
			}
			if flags.summary {
				return printSummary(cmd.OutOrStdout(), runSummary{
					Family:              "options",
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
