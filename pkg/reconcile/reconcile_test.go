package reconcile_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	pkgerrors "github.com/irisfleet/fleetrecon/pkg/errors"
	"github.com/irisfleet/fleetrecon/pkg/reconcile"
)

// workbook builds a single-sheet .xlsx fixture and returns its path.
func workbook(t *testing.T, dir, name string, lines [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, line := range lines {
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", ref, &line))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestModelsMissingInputs(t *testing.T) {
	_, err := reconcile.Models(context.Background(), reconcile.Inputs{})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsMissingInput(err))
	assert.Contains(t, err.Error(), "locavia")
	assert.Contains(t, err.Error(), "salesforce")
}

func TestColorsMissingInputsNamesAll(t *testing.T) {
	_, err := reconcile.Colors(context.Background(), reconcile.Inputs{Locavia: "x.xlsx"})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsMissingInput(err))
	assert.Contains(t, err.Error(), "salesforce")
	assert.Contains(t, err.Error(), "base-ids")
	assert.Contains(t, err.Error(), "product-options")
}

func TestModelsParseFailureAborts(t *testing.T) {
	dir := t.TempDir()
	locavia := workbook(t, dir, "locavia.xlsx", [][]any{
		{"CodigoModelo", "Descricao", "AnoFabricacao", "AnoModelo"},
	})

	_, err := reconcile.Models(context.Background(), reconcile.Inputs{
		Locavia:    locavia,
		Salesforce: filepath.Join(dir, "does-not-exist.xlsx"),
	})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsParseError(err))
	assert.Contains(t, err.Error(), "salesforce")
}

func TestModelsEndToEnd(t *testing.T) {
	dir := t.TempDir()

	locavia := workbook(t, dir, "locavia.xlsx", [][]any{
		{"CodigoModelo", "Descricao", "AnoFabricacao", "AnoModelo", "Ativo_Especificacao", "NaoComercializado", "SiglaCategoriaModelo", "ValorPublico"},
		{"55", "Leves", "2023", "2024", "S", "N", "SUV", "120000"},
		{"66", "Pesados", "2023", "2024", "S", "N", "CAM", "300000"},
		{"77", "Leves", "2023", "2024", "S", "N", "SED", "90000"},
	})
	salesforce := workbook(t, dir, "salesforce.xlsx", [][]any{
		{"IRIS_Codigo_Modelo_Locavia_Integracao__c", "IRIS_AnodeFabricacao__c", "IRIS_Anodomodelo__c", "IsActive", "IRIS_Categoria__c", "Preco_Publico__c"},
		{"55", "23", "24", "true", "SUV", "118000"},
		{"88", "23", "24", "true", "HATCH", "80000"},
	})

	report, err := reconcile.Models(context.Background(), reconcile.Inputs{
		Locavia:    locavia,
		Salesforce: salesforce,
	})

	require.NoError(t, err)

	// 55 matches with a price divergence, 77 has no pair, 66 is not a light
	// vehicle, 88 exists only in Salesforce.
	require.Len(t, report.Result.Divergences, 1)
	assert.Equal(t, "ValorPublico", report.Result.Divergences[0].LocaviaField)

	require.Len(t, report.Result.MissingInSalesforce, 1)
	assert.Equal(t, "77", report.Result.MissingInSalesforce[0].ModelCode)

	require.Len(t, report.Result.MissingInLocavia, 1)
	assert.Equal(t, "88", report.Result.MissingInLocavia[0].IntegrationModelCode)
}

func TestColorsEndToEnd(t *testing.T) {
	dir := t.TempDir()

	locavia := workbook(t, dir, "locavia.xlsx", [][]any{
		{"CodigoModelo", "AnoModelo", "Name", "IRIS_Cor_ID__c", "IsActive", "Preco_Publico__c"},
		{"55", "2024", "Preto", "3", "1", "1000"},
		{"55", "2024", "Verde", "7", "1", "500"},
	})
	salesforce := workbook(t, dir, "salesforce.xlsx", [][]any{
		{
			"Id",
			"IRIS_Codigo_Modelo_Locavia_Integracao__c",
			"IRIS_AnodeFabricacao__c",
			"IRIS_Anodomodelo__c",
			"IRIS_Cor_Name",
			"IRIS_Cor_ID__c",
			"IRIS_Valor__c",
		},
		{"a0x1", "55", "23", "24", "preto", "3", "900"},
		{"a0x2", "55", "23", "24", "Azul", "9", "700"},
	})
	baseIDs := workbook(t, dir, "base.xlsx", [][]any{
		{"Id", "IRIS_TipoRegistro__c", "IRIS_Codigo_Modelo_Locavia_Integracao__c", "IRIS_Codigo_Cor_Locavia__c", "IRIS_NaoComercializado__c"},
		{"dev1", "IRIS_Dispositivo", "55", "", "false"},
		{"cor1", "IRIS_Cores", "", "7", ""},
	})
	links := workbook(t, dir, "links.xlsx", [][]any{
		{
			"Id",
			"SBQQ__ConfiguredSKU__r.ProductCode",
			"SBQQ__OptionalSKU__r.IRIS_ProductFeature__c",
			"SBQQ__OptionalSKU__r.IRIS_Id_Locavia__c",
		},
		{"po1", "BNDL-DIS-55-23-24", "Cores", "9"},
		{"po2", "BNDL-DIS-55-23-24", "Opcionais", "9"},
	})

	report, err := reconcile.Colors(context.Background(), reconcile.Inputs{
		Locavia:        locavia,
		Salesforce:     salesforce,
		BaseIDs:        baseIDs,
		ProductOptions: links,
	})

	require.NoError(t, err)

	// Preto matches with a price divergence; Verde exists only in Locavia;
	// Azul exists only in Salesforce and pulls its bundle link in.
	require.Len(t, report.Result.Divergences, 1)
	assert.Equal(t, "Preco_Publico__c", report.Result.Divergences[0].LocaviaField)

	require.Len(t, report.Result.MissingInSalesforce, 1)
	assert.Equal(t, "7", report.Result.MissingInSalesforce[0].ColorID)

	require.Len(t, report.Result.MissingInLocavia, 1)
	assert.Equal(t, "a0x2", report.Result.MissingInLocavia[0].ID)

	require.Len(t, report.Removals, 1)
	assert.Equal(t, "po1", report.Removals[0].ID)

	require.NotNil(t, report.Lookups)
	assert.Equal(t, "dev1", report.Lookups.DeviceByModelCode["55"])
	assert.Equal(t, "cor1", report.Lookups.ColorByColorCode["7"])
}

func TestOptionsEndToEnd(t *testing.T) {
	dir := t.TempDir()

	locavia := workbook(t, dir, "locavia.xlsx", [][]any{
		{"CodigoModelo", "AnoModelo", "Name", "IRIS_IdOpcionais__c", "IsActive", "Preco_Publico__c", "IRIS_Segmento_do_Produto__c"},
		{"55", "2024", "Teto Solar", "9", "1", "4000", "Conforto"},
	})
	salesforce := workbook(t, dir, "salesforce.xlsx", [][]any{
		{
			"Id",
			"IRIS_Codigo_Modelo_Locavia_Integracao__c",
			"IRIS_Anodomodelo__c",
			"Name",
			"IRIS_IdOpcionais__c",
			"IsActive",
			"Preco_Publico__c",
			"IRIS_Segmento_do_Produto__c",
		},
		{"a0y1", "55", "24", "teto solar", "9", "true", "3500", "Conforto"},
	})
	baseIDs := workbook(t, dir, "base.xlsx", [][]any{
		{"Id", "IRIS_TipoRegistro__c", "IRIS_Id_Locavia__c"},
		{"opc1", "IRIS_Opicionais", "9"},
	})
	links := workbook(t, dir, "links.xlsx", [][]any{
		{"Id", "SBQQ__ConfiguredSKU__r.ProductCode", "SBQQ__OptionalSKU__r.IRIS_ProductFeature__c", "SBQQ__OptionalSKU__r.IRIS_Id_Locavia__c"},
		{"po1", "BNDL-DIS-55-23-24", "Opcionais", "9"},
	})

	report, err := reconcile.Options(context.Background(), reconcile.Inputs{
		Locavia:        locavia,
		Salesforce:     salesforce,
		BaseIDs:        baseIDs,
		ProductOptions: links,
	})

	require.NoError(t, err)

	require.Len(t, report.Result.Divergences, 1)
	assert.Equal(t, "Preco_Publico__c", report.Result.Divergences[0].LocaviaField)
	assert.Empty(t, report.Result.MissingInSalesforce)
	assert.Empty(t, report.Result.MissingInLocavia)
	assert.Empty(t, report.Removals)
	assert.Equal(t, "opc1", report.Lookups.OptionByLocaviaID["9"])
}
