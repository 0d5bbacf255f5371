package compare

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/irisfleet/fleetrecon/pkg/records"
)

func fptr(v float64) *float64 { return &v }

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs empty string", nil, "", true},
		{"nil vs whitespace", nil, "   ", true},
		{"nil vs null literal", nil, "null", true},
		{"nil vs undefined literal", nil, "undefined", true},
		{"nil vs NULL literal", nil, "NULL", true},
		{"nil pointer vs nil", (*float64)(nil), nil, true},
		{"nil vs zero", nil, 0.0, false},
		{"nil vs string", nil, "x", false},
		{"equal strings", "SUV", "SUV", true},
		{"trimmed strings", " SUV ", "SUV", true},
		{"case matters", "SUV", "suv", false},
		{"equal numbers", 100.0, 100.0, true},
		{"within tolerance", 100.0, 100.009, true},
		{"beyond tolerance", 100.0, 100.02, false},
		{"pointer vs value", fptr(1500.0), 1500.0, true},
		{"int vs float", 3, 3.0, true},
		{"number vs string", 100.0, "100", false},
		{"nan never equals", math.NaN(), 100.0, false},
		{"nan vs nan", math.NaN(), math.NaN(), false},
		{"nan pointer vs itself", fptr(math.NaN()), fptr(math.NaN()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold("Preto", "preto"))
	assert.True(t, EqualFold("AZUL", "Azul"))
	assert.True(t, EqualFold(" Branco ", "branco"))
	assert.True(t, EqualFold("", "   "))
	assert.False(t, EqualFold("Preto", "Prata"))
	assert.False(t, EqualFold("Preto", ""))
}

func TestActiveToken(t *testing.T) {
	assert.True(t, activeToken("1"))
	assert.True(t, activeToken("true"))
	assert.True(t, activeToken("TRUE"))
	assert.True(t, activeToken(" 1 "))
	assert.False(t, activeToken("True"))
	assert.False(t, activeToken("S"))
	assert.False(t, activeToken("0"))
	assert.False(t, activeToken(""))
}

func TestEqualFoldConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.True(t, EqualFold("AZUL", "azul"))
				assert.False(t, EqualFold("Preto", "Prata"))
			}
		}()
	}
	wg.Wait()
}

func TestComparatorsConcurrentFamilies(t *testing.T) {
	locColors := []records.LocaviaColor{{ModelCode: "55", ModelYear: "2024", ColorID: "3", Name: "PRETO"}}
	sfColors := []records.SalesforceColor{{IntegrationModelCode: "55", ModelYear: "24", ColorID: "3", ColorName: "preto"}}
	locOptions := []records.LocaviaOption{{ModelCode: "55", ModelYear: "2024", OptionalID: "9", Name: "Teto Solar", ActiveFlag: "1"}}
	sfOptions := []records.SalesforceOption{{IntegrationModelCode: "55", ModelYear: "24", OptionalID: "9", Name: "teto solar", Active: true}}

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			result := Colors(locColors, sfColors)
			assert.Empty(t, result.Divergences)
		}()
		go func() {
			defer wg.Done()
			result := Options(locOptions, sfOptions)
			assert.Empty(t, result.Divergences)
		}()
	}
	wg.Wait()
}

func TestFIFOBucketsConsumeOrderAndLeftovers(t *testing.T) {
	b := newFIFOBuckets(4)
	b.add("k", 0)
	b.add("other", 1)
	b.add("k", 2)
	b.add("k", 3)

	i, ok := b.take("k")
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = b.take("k")
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = b.take("missing")
	assert.False(t, ok)

	assert.Equal(t, []int{1, 3}, b.leftovers())
}
