package compare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irisfleet/fleetrecon/pkg/records"
)

func locaviaColor(modelCode, modelYear, colorID, name string, price *float64) records.LocaviaColor {
	return records.LocaviaColor{
		ModelCode:   modelCode,
		ModelYear:   modelYear,
		ColorID:     colorID,
		Name:        name,
		PublicPrice: price,
	}
}

func salesforceColor(id, modelCode, modelYear, colorID, name string, price *float64) records.SalesforceColor {
	return records.SalesforceColor{
		ID:                   id,
		IntegrationModelCode: modelCode,
		ModelYear:            modelYear,
		ColorID:              colorID,
		ColorName:            name,
		Price:                price,
	}
}

func TestColorsMatchedPairNoDivergence(t *testing.T) {
	loc := []records.LocaviaColor{locaviaColor("55", "2024", "3", "Preto", fptr(1000))}
	sf := []records.SalesforceColor{salesforceColor("a0x1", "55", "2024", "3", "preto", fptr(1000))}

	result := Colors(loc, sf)

	assert.Empty(t, result.Divergences)
	assert.Empty(t, result.MissingInSalesforce)
	assert.Empty(t, result.MissingInLocavia)
}

func TestColorsPriceDivergence(t *testing.T) {
	loc := []records.LocaviaColor{locaviaColor("55", "2024", "3", "Preto", fptr(1000))}
	sf := []records.SalesforceColor{salesforceColor("a0x1", "55", "2024", "3", "Preto", fptr(900))}

	result := Colors(loc, sf)

	require.Len(t, result.Divergences, 1)
	d := result.Divergences[0]
	assert.Equal(t, "a0x1", d.SalesforceID)
	assert.Equal(t, "Preco_Publico__c", d.LocaviaField)
	assert.Equal(t, fptr(1000.0), d.LocaviaValue)
	assert.Equal(t, "IRIS_Valor__c", d.SalesforceField)
	assert.Equal(t, fptr(900.0), d.SalesforceValue)
	assert.Empty(t, result.MissingInSalesforce)
	assert.Empty(t, result.MissingInLocavia)
}

func TestColorsNameComparedCaseInsensitively(t *testing.T) {
	loc := []records.LocaviaColor{locaviaColor("55", "2024", "3", "AZUL", fptr(500))}
	sf := []records.SalesforceColor{salesforceColor("a0x1", "55", "2024", "3", "Azul", fptr(500))}

	result := Colors(loc, sf)

	assert.Empty(t, result.Divergences)
}

func TestColorsNameDivergenceReportsRawValues(t *testing.T) {
	loc := []records.LocaviaColor{locaviaColor("55", "2024", "3", "Preto", fptr(500))}
	sf := []records.SalesforceColor{salesforceColor("a0x1", "55", "2024", "3", "Prata", fptr(500))}

	result := Colors(loc, sf)

	require.Len(t, result.Divergences, 1)
	d := result.Divergences[0]
	assert.Equal(t, "Name", d.LocaviaField)
	assert.Equal(t, "Preto", d.LocaviaValue)
	assert.Equal(t, "IRIS_Cor_Name", d.SalesforceField)
	assert.Equal(t, "Prata", d.SalesforceValue)
}

func TestColorsKeyNormalization(t *testing.T) {
	// "55.0" and four-digit years on one side must still match "55"/"24".
	loc := []records.LocaviaColor{locaviaColor("55.0", "2024", "3.0", "Preto", fptr(500))}
	sf := []records.SalesforceColor{salesforceColor("a0x1", "55", "24", "3", "Preto", fptr(500))}

	result := Colors(loc, sf)

	assert.Empty(t, result.Divergences)
	assert.Empty(t, result.MissingInSalesforce)
	assert.Empty(t, result.MissingInLocavia)
}

func TestColorsUnmatchedSides(t *testing.T) {
	loc := []records.LocaviaColor{locaviaColor("55", "2024", "3", "Preto", fptr(500))}
	sf := []records.SalesforceColor{salesforceColor("a0x1", "99", "2024", "7", "Verde", fptr(500))}

	result := Colors(loc, sf)

	assert.Empty(t, result.Divergences)
	require.Len(t, result.MissingInSalesforce, 1)
	assert.Equal(t, "55", result.MissingInSalesforce[0].ModelCode)
	require.Len(t, result.MissingInLocavia, 1)
	assert.Equal(t, "a0x1", result.MissingInLocavia[0].ID)
}

func TestColorsDuplicateConsumedAtMostOnce(t *testing.T) {
	// Two Salesforce rows share the key; one Locavia row consumes only the
	// first, the second surfaces as missing in Locavia.
	loc := []records.LocaviaColor{locaviaColor("55", "2024", "3", "Preto", fptr(500))}
	sf := []records.SalesforceColor{
		salesforceColor("first", "55", "2024", "3", "Preto", fptr(500)),
		salesforceColor("second", "55", "2024", "3", "Preto", fptr(500)),
	}

	result := Colors(loc, sf)

	assert.Empty(t, result.Divergences)
	assert.Empty(t, result.MissingInSalesforce)
	require.Len(t, result.MissingInLocavia, 1)
	assert.Equal(t, "second", result.MissingInLocavia[0].ID)
}

func TestColorsDuplicateLocaviaRowsEachConsumeOne(t *testing.T) {
	loc := []records.LocaviaColor{
		locaviaColor("55", "2024", "3", "Preto", fptr(500)),
		locaviaColor("55", "2024", "3", "Preto", fptr(500)),
	}
	sf := []records.SalesforceColor{
		salesforceColor("first", "55", "2024", "3", "Preto", fptr(500)),
		salesforceColor("second", "55", "2024", "3", "Preto", fptr(500)),
	}

	result := Colors(loc, sf)

	assert.Empty(t, result.Divergences)
	assert.Empty(t, result.MissingInSalesforce)
	assert.Empty(t, result.MissingInLocavia)
}

func TestColorsNaNPriceAlwaysDiverges(t *testing.T) {
	loc := []records.LocaviaColor{locaviaColor("55", "2024", "3", "Preto", fptr(math.NaN()))}
	sf := []records.SalesforceColor{salesforceColor("a0x1", "55", "2024", "3", "Preto", fptr(math.NaN()))}

	result := Colors(loc, sf)

	require.Len(t, result.Divergences, 1)
	assert.Equal(t, "Preco_Publico__c", result.Divergences[0].LocaviaField)
}

func TestColorsEmptyPriceBothSidesEqual(t *testing.T) {
	loc := []records.LocaviaColor{locaviaColor("55", "2024", "3", "Preto", nil)}
	sf := []records.SalesforceColor{salesforceColor("a0x1", "55", "2024", "3", "Preto", nil)}

	result := Colors(loc, sf)

	assert.Empty(t, result.Divergences)
}
