// Package extract maps raw spreadsheet rows into the typed records of
// pkg/records. Each exported function covers one (entity family, source
// system) pair and is pure: coercion, dotted relationship-path fallback and
// legacy-side deduplication all happen here, so that the comparators only
// ever see clean, typed, key-normalized records.
package extract

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/utc"

	"github.com/irisfleet/fleetrecon/pkg/normalize"
)

// Row is one parsed spreadsheet row keyed by column header. Salesforce
// report exports name columns by relationship path ("IRIS_Cor__r.Name") or
// by flat alias depending on report configuration, so lookups take a list
// of candidate column names and the first non-empty value wins.
type Row map[string]any

// String returns the first non-empty candidate column, coerced to a trimmed
// string. Missing columns yield "".
func (r Row) String(columns ...string) string {
	v := r.first(columns...)
	if v == nil {
		return ""
	}
	return strings.TrimSpace(asString(v))
}

// Key returns the first non-empty candidate column as a normalized join key.
func (r Row) Key(columns ...string) string {
	return normalize.Key(r.first(columns...))
}

// Number returns the first non-empty candidate column as a number. Missing
// or empty cells yield nil. Cells that hold something non-numeric yield a
// NaN value, which compares unequal to everything downstream.
func (r Row) Number(columns ...string) *float64 {
	v := r.first(columns...)
	if v == nil {
		return nil
	}

	switch t := v.(type) {
	case float64:
		return &t
	case float32:
		f := float64(t)
		return &f
	case int:
		f := float64(t)
		return &f
	case int64:
		f := float64(t)
		return &f
	case bool:
		f := math.NaN()
		if t {
			f = 1
		}
		return &f
	}

	s := strings.TrimSpace(asString(v))
	if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "undefined") {
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f = math.NaN()
	}
	return &f
}

// Bool returns the first non-empty candidate column as a boolean. Native
// booleans pass through; the tokens "true", "t", "1" and "yes" (any case)
// and the number 1 read as true; everything else reads as false.
func (r Row) Bool(columns ...string) bool {
	v := r.first(columns...)
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t == 1
	case int:
		return t == 1
	}

	switch strings.ToLower(strings.TrimSpace(asString(v))) {
	case "true", "t", "1", "yes":
		return true
	}
	return false
}

// OptionalBool returns a tri-state boolean: nil when the cell is missing,
// empty or holds an unrecognized token. Used for flags where "absent" and
// "false" must not be conflated.
func (r Row) OptionalBool(columns ...string) *bool {
	v := r.first(columns...)
	if v == nil {
		return nil
	}
	if b, ok := v.(bool); ok {
		return &b
	}

	switch strings.ToLower(strings.TrimSpace(asString(v))) {
	case "true", "t", "1", "yes":
		b := true
		return &b
	case "false", "f", "0", "no":
		b := false
		return &b
	}
	return nil
}

// Time returns the first non-empty candidate column parsed as a Salesforce
// timestamp. Unparseable or missing values yield the zero time.
func (r Row) Time(columns ...string) utc.Time {
	s := r.String(columns...)
	if s == "" {
		return utc.Time{}
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05.000-0700",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return utc.Time{Time: t.UTC()}
		}
	}
	return utc.Time{}
}

// first returns the value of the first candidate column whose cell is
// present and non-empty after trimming.
func (r Row) first(columns ...string) any {
	for _, c := range columns {
		v, ok := r[c]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

func asString(v any) string {
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
		return ""
	}
}
