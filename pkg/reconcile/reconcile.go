// Package reconcile orchestrates one reconciliation run per entity family:
// it parses the input workbooks concurrently, hands the extracted record
// sets to the matching engine and derives the product-option removal
// candidates. Parsing is the only stage that can fail; once records are in
// memory the run is pure and always classifies every record.
package reconcile

import (
	"context"
	"sync"

	"github.com/irisfleet/fleetrecon/internal/sheet"
	"github.com/irisfleet/fleetrecon/pkg/baseids"
	"github.com/irisfleet/fleetrecon/pkg/compare"
	pkgerrors "github.com/irisfleet/fleetrecon/pkg/errors"
	"github.com/irisfleet/fleetrecon/pkg/extract"
	"github.com/irisfleet/fleetrecon/pkg/logging"
	"github.com/irisfleet/fleetrecon/pkg/records"
	"github.com/irisfleet/fleetrecon/pkg/removal"
)

// Logical input names used in validation and parse errors.
const (
	inputLocavia        = "locavia"
	inputSalesforce     = "salesforce"
	inputBaseIDs        = "base-ids"
	inputProductOptions = "product-options"
)

// Inputs holds the workbook paths for one reconciliation run. The model
// family only needs the two catalog exports; colors and options additionally
// require the base-ID registry and the product-option link export.
type Inputs struct {
	Locavia        string
	Salesforce     string
	BaseIDs        string
	ProductOptions string
}

// ModelsReport is the outcome of a model-family run.
type ModelsReport struct {
	Result records.ModelResult
}

// ColorsReport is the outcome of a color-family run.
type ColorsReport struct {
	Result   records.ColorResult
	Removals []records.ProductOptionLink
	Lookups  *baseids.Lookups
}

// OptionsReport is the outcome of an option-family run.
type OptionsReport struct {
	Result   records.OptionResult
	Removals []records.ProductOptionLink
	Lookups  *baseids.Lookups
}

// Models reconciles the model-family exports.
func Models(ctx context.Context, in Inputs) (*ModelsReport, error) {
	if err := require(map[string]string{
		inputLocavia:    in.Locavia,
		inputSalesforce: in.Salesforce,
	}); err != nil {
		return nil, err
	}

	var locavia []records.LocaviaModel
	var salesforce []records.SalesforceModel

	err := parseAll(ctx,
		parseTask{inputLocavia, in.Locavia, func(rows []extract.Row) {
			locavia = extract.LocaviaModels(rows)
		}},
		parseTask{inputSalesforce, in.Salesforce, func(rows []extract.Row) {
			salesforce = extract.SalesforceModels(rows)
		}},
	)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Int("locavia", len(locavia)).
		Int("salesforce", len(salesforce)).
		Msg("Extracted model records")

	report := &ModelsReport{Result: compare.Models(locavia, salesforce)}
	logResult(ctx, len(report.Result.Divergences), len(report.Result.MissingInSalesforce), len(report.Result.MissingInLocavia))
	return report, nil
}

// Colors reconciles the color-family exports and derives bundle-link
// removal candidates from the missing-in-Locavia set.
func Colors(ctx context.Context, in Inputs) (*ColorsReport, error) {
	if err := require(map[string]string{
		inputLocavia:        in.Locavia,
		inputSalesforce:     in.Salesforce,
		inputBaseIDs:        in.BaseIDs,
		inputProductOptions: in.ProductOptions,
	}); err != nil {
		return nil, err
	}

	var locavia []records.LocaviaColor
	var salesforce []records.SalesforceColor
	var base []records.BaseID
	var links []records.ProductOptionLink

	err := parseAll(ctx,
		parseTask{inputLocavia, in.Locavia, func(rows []extract.Row) {
			locavia = extract.LocaviaColors(rows)
		}},
		parseTask{inputSalesforce, in.Salesforce, func(rows []extract.Row) {
			salesforce = extract.SalesforceColors(rows)
		}},
		parseTask{inputBaseIDs, in.BaseIDs, func(rows []extract.Row) {
			base = extract.BaseIDs(rows)
		}},
		parseTask{inputProductOptions, in.ProductOptions, func(rows []extract.Row) {
			links = extract.ProductOptionLinks(rows)
		}},
	)
	if err != nil {
		return nil, err
	}

	report := &ColorsReport{
		Result:  compare.Colors(locavia, salesforce),
		Lookups: baseids.Build(base),
	}
	report.Removals = removal.Filter(removal.ColorPairs(report.Result.MissingInLocavia), links, removal.FeatureColors)

	logResult(ctx, len(report.Result.Divergences), len(report.Result.MissingInSalesforce), len(report.Result.MissingInLocavia))
	return report, nil
}

// Options reconciles the option-family exports and derives bundle-link
// removal candidates from the missing-in-Locavia set.
func Options(ctx context.Context, in Inputs) (*OptionsReport, error) {
	if err := require(map[string]string{
		inputLocavia:        in.Locavia,
		inputSalesforce:     in.Salesforce,
		inputBaseIDs:        in.BaseIDs,
		inputProductOptions: in.ProductOptions,
	}); err != nil {
		return nil, err
	}

	var locavia []records.LocaviaOption
	var salesforce []records.SalesforceOption
	var base []records.BaseID
	var links []records.ProductOptionLink

	err := parseAll(ctx,
		parseTask{inputLocavia, in.Locavia, func(rows []extract.Row) {
			locavia = extract.LocaviaOptions(rows)
		}},
		parseTask{inputSalesforce, in.Salesforce, func(rows []extract.Row) {
			salesforce = extract.SalesforceOptions(rows)
		}},
		parseTask{inputBaseIDs, in.BaseIDs, func(rows []extract.Row) {
			base = extract.BaseIDs(rows)
		}},
		parseTask{inputProductOptions, in.ProductOptions, func(rows []extract.Row) {
			links = extract.ProductOptionLinks(rows)
		}},
	)
	if err != nil {
		return nil, err
	}

	report := &OptionsReport{
		Result:  compare.Options(locavia, salesforce),
		Lookups: baseids.Build(base),
	}
	report.Removals = removal.Filter(removal.OptionPairs(report.Result.MissingInLocavia), links, removal.FeatureOptions)

	logResult(ctx, len(report.Result.Divergences), len(report.Result.MissingInSalesforce), len(report.Result.MissingInLocavia))
	return report, nil
}

// require rejects a run before any parsing begins when required inputs are
// absent, naming every missing one.
func require(paths map[string]string) error {
	var missing []string
	for _, name := range []string{inputLocavia, inputSalesforce, inputBaseIDs, inputProductOptions} {
		path, wanted := paths[name]
		if wanted && path == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return pkgerrors.NewMissingInputError(missing...)
	}
	return nil
}

// parseTask reads one workbook and hands its rows to a collector closure.
// Each closure writes to its own destination, so no locking is needed
// beyond the shared error slice.
type parseTask struct {
	name string
	path string
	run  func(rows []extract.Row)
}

// parseAll reads all input workbooks concurrently. Any failure aborts the
// run; all failures are reported together.
func parseAll(ctx context.Context, tasks ...parseTask) error {
	var wg sync.WaitGroup
	var errMutex sync.Mutex
	var errs []error

	for _, task := range tasks {
		wg.Add(1)
		go func(task parseTask) {
			defer wg.Done()
			ctx := logging.WithInput(ctx, task.name)

			rows, err := sheet.ReadRows(task.path)
			if err != nil {
				logging.Ctx(ctx).Warn().Err(err).Msg("Parse failed")
				errMutex.Lock()
				errs = append(errs, pkgerrors.NewParseError(task.name, task.path, err))
				errMutex.Unlock()
				return
			}

			logging.Ctx(ctx).Debug().Int("rows", len(rows)).Msg("Parsed workbook")
			task.run(rows)
		}(task)
	}

	wg.Wait()
	return pkgerrors.Join(errs...)
}

func logResult(ctx context.Context, divergences, missingSF, missingLocavia int) {
	logging.FromContext(ctx).Info().
		Int("divergences", divergences).
		Int("missing_in_salesforce", missingSF).
		Int("missing_in_locavia", missingLocavia).
		Msg("Comparison complete")
}
