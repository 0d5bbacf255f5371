// Package cmd wires the fleetrecon CLI: one subcommand per entity family,
// each reading the exported workbooks and writing a divergence report.
package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/irisfleet/fleetrecon/pkg/logging"
)

// envPrefix scopes environment overrides, e.g. FLEETRECON_LOCAVIA.
const envPrefix = "FLEETRECON"

// Execute runs the CLI with the given context.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the fleetrecon command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fleetrecon",
		Short: "Reconcile Locavia fleet exports against Salesforce",
		Long: `fleetrecon compares the Locavia fleet catalog exports with their
Salesforce counterparts and reports, per entity family, the field-level
divergences, the records missing on either side and the product-option
bundle links that should be removed.

Inputs are .xlsx exports; each subcommand writes a multi-sheet report
workbook. Flags can also be set through FLEETRECON_* environment
variables or a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if viper.GetBool("verbose") {
				logging.SetVerbose()
			}
			if viper.GetBool("quiet") {
				logging.SetQuiet()
			}
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolP("quiet", "q", false, "only log errors")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetConfigName(".fleetrecon")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// A missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
	cobra.CheckErr(viper.BindPFlags(root.PersistentFlags()))

	root.AddCommand(
		newModelsCommand(),
		newColorsCommand(),
		newOptionsCommand(),
	)
	return root
}

// inputFlags are the workbook path flags shared by the family commands.
type inputFlags struct {
	locavia        string
	salesforce     string
	baseIDs        string
	productOptions string
	out            string
	summary        bool
}

// register adds the shared flags; withBaseIDs controls whether the
// base-ID and product-option inputs apply to the command. Flags bind into
// viper before the run so that FLEETRECON_* environment variables and the
// config file can supply any of them.
func (f *inputFlags) register(cmd *cobra.Command, withBaseIDs bool) {
	cmd.Flags().StringVar(&f.locavia, "locavia", "", "path to the Locavia export (.xlsx)")
	cmd.Flags().StringVar(&f.salesforce, "salesforce", "", "path to the Salesforce export (.xlsx)")
	if withBaseIDs {
		cmd.Flags().StringVar(&f.baseIDs, "base-ids", "", "path to the Salesforce base-ID export (.xlsx)")
		cmd.Flags().StringVar(&f.productOptions, "product-options", "", "path to the product-option link export (.xlsx)")
	}
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "path of the report workbook to write")
	cmd.Flags().BoolVar(&f.summary, "summary", false, "print a YAML summary of the run to stdout")

	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		f.locavia = viper.GetString("locavia")
		f.salesforce = viper.GetString("salesforce")
		if withBaseIDs {
			f.baseIDs = viper.GetString("base-ids")
			f.productOptions = viper.GetString("product-options")
		}
		f.out = viper.GetString("out")
		f.summary = viper.GetBool("summary")
		return nil
	}
}
