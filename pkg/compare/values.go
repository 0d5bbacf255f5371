// Package compare implements the matching engine: per-family joins of the
// Locavia and Salesforce record sets on composite business keys, with
// field-level divergence detection.
//
// Matching uses owned, per-invocation FIFO buckets: Salesforce records
// sharing a join key queue up in export order, each Locavia record consumes
// at most one of them, and whatever remains unconsumed is reported as
// missing on the Locavia side. A matched pair with no field mismatches
// produces no output at all.
package compare

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Equal reports whether two field values are equal under the reconciliation
// rules: empty-ish values on both sides are equal, an empty-ish value never
// equals a present one, numbers compare with a 0.01 tolerance, and
// everything else compares strictly after trimming.
//
// NaN (an unparseable numeric cell) fails the tolerance check against every
// value including itself, so it always diverges.
func Equal(a, b any) bool {
	av := normalizeValue(a)
	bv := normalizeValue(b)

	if av == nil && bv == nil {
		return true
	}
	if av == nil || bv == nil {
		return false
	}

	af, aNum := av.(float64)
	bf, bNum := bv.(float64)
	if aNum && bNum {
		return math.Abs(af-bf) < 0.01
	}

	return av == bv
}

// EqualFold compares two display names case-insensitively under the same
// empty-handling rules as Equal.
func EqualFold(a, b string) bool {
	return Equal(foldName(a), foldName(b))
}

// foldName lowercases a display name for comparison. The catalog data is
// Brazilian Portuguese. A Caser is stateful and must not be shared across
// goroutines, so one is built per call.
func foldName(s string) string {
	return cases.Lower(language.BrazilianPortuguese).String(strings.TrimSpace(s))
}

// normalizeValue collapses the representations of "no value" into nil and
// unwraps nullable numbers. The literal tokens "null" and "undefined" show
// up in exports that went through a JSON hop and count as empty.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case *float64:
		if t == nil {
			return nil
		}
		return *t
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "undefined") {
			return nil
		}
		return s
	default:
		return v
	}
}

// activeToken coerces a Locavia active-flag token to a boolean. The color
// and option exports use "1"/"true"/"TRUE"; anything else is inactive.
func activeToken(s string) bool {
	switch strings.TrimSpace(s) {
	case "1", "true", "TRUE":
		return true
	}
	return false
}

// fifoBuckets indexes Salesforce records by join key, preserving export
// order within each bucket. Indices refer back to the source slice so that
// unconsumed leftovers can be reported in their original order.
type fifoBuckets struct {
	byKey    map[string][]int
	consumed []bool
}

func newFIFOBuckets(n int) *fifoBuckets {
	return &fifoBuckets{
		byKey:    make(map[string][]int, n),
		consumed: make([]bool, n),
	}
}

func (b *fifoBuckets) add(key string, i int) {
	b.byKey[key] = append(b.byKey[key], i)
}

// take removes and returns the first unconsumed record index for key.
func (b *fifoBuckets) take(key string) (int, bool) {
	queue, ok := b.byKey[key]
	if !ok || len(queue) == 0 {
		return 0, false
	}
	i := queue[0]
	if len(queue) == 1 {
		delete(b.byKey, key)
	} else {
		b.byKey[key] = queue[1:]
	}
	b.consumed[i] = true
	return i, true
}

// leftovers returns the indices never consumed by a match, in source order.
func (b *fifoBuckets) leftovers() []int {
	var out []int
	for i, used := range b.consumed {
		if !used {
			out = append(out, i)
		}
	}
	return out
}
