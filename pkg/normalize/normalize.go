// Package normalize canonicalizes identifier and year values coming out of
// spreadsheet exports. Cells that hold numeric codes frequently arrive as
// "67.0" or " 67 " depending on how the export was generated; every join key
// in the reconciliation pipeline goes through this package first so that
// equivalent representations collapse to a single canonical string.
package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericLike matches unsigned integers and plain decimals ("67", "67.0").
// Signed values, exponents and thousand separators are intentionally not
// treated as numeric keys.
var numericLike = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Key canonicalizes an arbitrary scalar into a join-key string.
//
// nil normalizes to "". Strings are trimmed; numeric-like strings are parsed
// and re-stringified so that "67", "67.0" and " 67 " all normalize to "67".
// Non-numeric strings pass through trimmed with case preserved. Key is
// idempotent: Key(Key(v)) == Key(v) for any input.
func Key(v any) string {
	if v == nil {
		return ""
	}

	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return ""
	}

	if !numericLike.MatchString(s) {
		return s
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	// Whole values beyond int64 range go through FormatFloat; 'f' with
	// precision -1 never switches to exponent notation.
	if f == math.Trunc(f) && f < 1e18 {
		return strconv.FormatInt(int64(f), 10)
	}
	// FormatFloat with precision -1 already drops trailing zeros.
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// YearSuffix returns the last two characters of a year value ("2024" -> "24").
// Shorter strings pass through unchanged; no padding is applied.
func YearSuffix(year string) string {
	s := strings.TrimSpace(year)
	if len(s) <= 2 {
		return s
	}
	return s[len(s)-2:]
}

// stringify renders a scalar the way the upstream exports do: floats that
// hold whole numbers print without a decimal part.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
