package records

import (
	"strings"

	"github.com/irisfleet/fleetrecon/pkg/normalize"
)

// Join keys are the only basis for matching records across the two sources.
// Every component passes through pkg/normalize so that "67" and "67.0" index
// the same bucket; year components keep only their last two digits because
// the sources disagree on two- versus four-digit years.
//
// Model keys anchor on both the fabrication and the model year; color and
// option keys anchor on the model year plus the sub-entity code.

// Key returns the model-family join key: code_fab2_mod2.
func (m LocaviaModel) Key() string {
	return joinKey(normalize.Key(m.ModelCode), normalize.YearSuffix(m.FabricationYear), normalize.YearSuffix(m.ModelYear))
}

// Key returns the model-family join key: code_fab2_mod2.
func (m SalesforceModel) Key() string {
	return joinKey(normalize.Key(m.IntegrationModelCode), normalize.YearSuffix(m.FabricationYear), normalize.YearSuffix(m.ModelYear))
}

// Key returns the color-family join key: code_mod2_colorID.
func (c LocaviaColor) Key() string {
	return joinKey(normalize.Key(c.ModelCode), normalize.YearSuffix(c.ModelYear), normalize.Key(c.ColorID))
}

// Key returns the color-family join key: code_mod2_colorID.
func (c SalesforceColor) Key() string {
	return joinKey(normalize.Key(c.IntegrationModelCode), normalize.YearSuffix(c.ModelYear), normalize.Key(c.ColorID))
}

// Key returns the option-family join key: code_mod2_optionalID.
func (o LocaviaOption) Key() string {
	return joinKey(normalize.Key(o.ModelCode), normalize.YearSuffix(o.ModelYear), normalize.Key(o.OptionalID))
}

// Key returns the option-family join key: code_mod2_optionalID.
func (o SalesforceOption) Key() string {
	return joinKey(normalize.Key(o.IntegrationModelCode), normalize.YearSuffix(o.ModelYear), normalize.Key(o.OptionalID))
}

func joinKey(parts ...string) string {
	return strings.Join(parts, "_")
}
