// Package records defines the typed record shapes flowing through the
// reconciliation pipeline: one legacy (Locavia) and one Salesforce record
// type per entity family, the shared reference-registry and product-option
// link rows, and the per-family comparison results.
//
// Records are immutable after extraction. Nullable numeric columns are
// represented as *float64: nil means the cell was empty, a NaN value means
// the cell held something that did not parse as a number.
package records

// FieldValue is a raw cell value carried into a divergence row. It holds a
// string, float64, bool or nil, matching what the exports contain.
type FieldValue = any
