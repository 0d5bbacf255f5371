// Package removal derives product-option removal candidates from a family's
// missing-in-Locavia result: when a color or accessory association no longer
// exists in the legacy system, the bundle links that reference it through a
// derived bundle product code should be removed from Salesforce.
package removal

import (
	"fmt"
	"strings"

	"github.com/irisfleet/fleetrecon/pkg/normalize"
	"github.com/irisfleet/fleetrecon/pkg/records"
)

// Feature tags carried by SBQQ__OptionalSKU__r.IRIS_ProductFeature__c.
// Matching against them is case-insensitive.
const (
	FeatureColors  = "Cores"
	FeatureOptions = "Opcionais"
)

// Pair identifies one missing-in-Locavia record by its derived bundle
// product code and the normalized sub-entity reference (color code or
// accessory legacy ID).
type Pair struct {
	BundleCode string
	RefID      string
}

// BundleCode derives the configured-bundle product code for a device:
// "BNDL-DIS-<code>-<fab2>-<modelYear>". The model year is taken as exported,
// not truncated. Any empty component makes the code underivable and yields
// "".
func BundleCode(integrationModelCode, fabricationYear, modelYear string) string {
	code := normalize.Key(integrationModelCode)
	fab := normalize.YearSuffix(fabricationYear)
	year := strings.TrimSpace(modelYear)
	if code == "" || fab == "" || year == "" {
		return ""
	}
	return fmt.Sprintf("BNDL-DIS-%s-%s-%s", code, fab, year)
}

// ColorPairs derives the removal pairs for a color-family result.
func ColorPairs(missing []records.SalesforceColor) []Pair {
	pairs := make([]Pair, 0, len(missing))
	for _, r := range missing {
		pairs = append(pairs, Pair{
			BundleCode: BundleCode(r.IntegrationModelCode, r.FabricationYear, r.ModelYear),
			RefID:      r.ColorID,
		})
	}
	return pairs
}

// OptionPairs derives the removal pairs for an option-family result.
func OptionPairs(missing []records.SalesforceOption) []Pair {
	pairs := make([]Pair, 0, len(missing))
	for _, r := range missing {
		pairs = append(pairs, Pair{
			BundleCode: BundleCode(r.IntegrationModelCode, r.FabricationYear, r.ModelYear),
			RefID:      r.OptionalID,
		})
	}
	return pairs
}

// Filter returns the product-option links that should be removed: links
// whose feature tag matches the requested family and whose
// (configured product code, optional legacy ID) pair, after normalization,
// matches one of the derived removal pairs. Pairs with an underivable
// bundle code or empty reference are discarded.
func Filter(pairs []Pair, links []records.ProductOptionLink, feature string) []records.ProductOptionLink {
	target := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		code := normalize.Key(p.BundleCode)
		ref := normalize.Key(p.RefID)
		if code == "" || ref == "" {
			continue
		}
		target[code+"__"+ref] = struct{}{}
	}

	out := []records.ProductOptionLink{}
	for _, link := range links {
		tag := normalize.Key(link.Feature)
		if tag == "" || !strings.EqualFold(tag, feature) {
			continue
		}

		code := normalize.Key(link.ConfiguredProductCode)
		ref := normalize.Key(link.OptionalLocaviaID)
		if code == "" || ref == "" {
			continue
		}
		if _, ok := target[code+"__"+ref]; ok {
			out = append(out, link)
		}
	}
	return out
}
