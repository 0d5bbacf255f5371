package sheet

import (
	"math"
	"time"

	"github.com/agentstation/utc"
	"github.com/xuri/excelize/v2"

	"github.com/irisfleet/fleetrecon/pkg/baseids"
	"github.com/irisfleet/fleetrecon/pkg/normalize"
	"github.com/irisfleet/fleetrecon/pkg/records"
)

// Sheet names match the workbooks the reconciliation team already consumes.
const (
	sheetDivergences      = "Divergencias"
	sheetDivergencesSF    = "Divergencias SF"
	sheetMissingInSF      = "Sem Par no SF"
	sheetMissingInLocavia = "Sem Par no Locavia"
	sheetRemovals         = "Remocao Product Option"
)

// WriteModels renders a model-family result into a workbook at path.
func WriteModels(path string, result records.ModelResult) error {
	f := excelize.NewFile()
	defer f.Close()

	divergences := make([][]any, 0, len(result.Divergences))
	for _, d := range result.Divergences {
		divergences = append(divergences, []any{
			d.ModelCode, d.FabricationYear, d.ModelYear, d.Kind,
			d.LocaviaField, cell(d.LocaviaValue), d.SalesforceField, cell(d.SalesforceValue),
		})
	}
	if err := writeSheet(f, sheetDivergences, []string{
		"CodigoModelo", "AnoFabricacao", "AnoModelo", "Tipo",
		"Campo_Locavia", "Valor_Locavia", "Campo_SF", "Valor_SF",
	}, divergences); err != nil {
		return err
	}

	missingSF := make([][]any, 0, len(result.MissingInSalesforce))
	for _, r := range result.MissingInSalesforce {
		missingSF = append(missingSF, []any{
			r.ModelCode, r.FabricationYear, r.ModelYear, r.Description,
			r.ActiveFlag == "S", r.Category, r.Subcategory,
			cell(r.PublicPrice), cell(r.DeliveryDays), cell(r.SupplierPaymentDays),
			cell(r.RebateNetPrice), cell(r.RebatePublicPrice), cell(r.DiscountPercent),
		})
	}
	if err := writeSheet(f, sheetMissingInSF, []string{
		"IRIS_Codigo_Modelo_Locavia_Integracao__c", "IRIS_AnodeFabricacao__c", "IRIS_Anodomodelo__c",
		"IRIS_Descricao__c", "IsActive", "IRIS_Categoria__c", "IRIS_Subcategoria_do_Produto__c",
		"Preco_Publico__c", "IRIS_PrazoDeEntrega__c", "IRIS_PrazoPagamentoFornecedor__c",
		"IRIS_RebatePrecoLiquido__c", "IRIS_RebatePrecoPublico__c", "Desconto__c",
	}, missingSF); err != nil {
		return err
	}

	missingLocavia := make([][]any, 0, len(result.MissingInLocavia))
	for _, r := range result.MissingInLocavia {
		missingLocavia = append(missingLocavia, []any{
			r.LocaviaID, r.IntegrationModelCode, r.LocaviaModelCode, r.ProductCode,
			r.FabricationYear, r.ModelYear, r.Active, r.Category, r.Subcategory,
			cell(r.PublicPrice), cell(r.DeliveryDays), cell(r.SupplierPaymentDays),
			cell(r.RebateNetPrice), cell(r.RebatePublicPrice), cell(r.DiscountPercent),
		})
	}
	if err := writeSheet(f, sheetMissingInLocavia, []string{
		"IRIS_Id_Locavia__c", "IRIS_Codigo_Modelo_Locavia_Integracao__c",
		"IRIS_Codigo_do_Modelo_do_Locavia__c", "ProductCode",
		"IRIS_AnodeFabricacao__c", "IRIS_Anodomodelo__c", "IsActive",
		"IRIS_Categoria__c", "IRIS_Subcategoria_do_Produto__c",
		"Preco_Publico__c", "IRIS_PrazoDeEntrega__c", "IRIS_PrazoPagamentoFornecedor__c",
		"IRIS_RebatePrecoLiquido__c", "IRIS_RebatePrecoPublico__c", "Desconto__c",
	}, missingLocavia); err != nil {
		return err
	}

	return save(f, path)
}

// WriteColors renders a color-family result, its removal candidates and the
// lookup-resolved insert rows into a workbook at path.
func WriteColors(path string, result records.ColorResult, removals []records.ProductOptionLink, lookups *baseids.Lookups) error {
	f := excelize.NewFile()
	defer f.Close()

	divergences := make([][]any, 0, len(result.Divergences))
	updates := make([][]any, 0, len(result.Divergences))
	for _, d := range result.Divergences {
		divergences = append(divergences, []any{
			d.ModelCode, d.ModelYear, d.ColorID,
			d.LocaviaField, cell(d.LocaviaValue), d.SalesforceField, cell(d.SalesforceValue),
		})
		updates = append(updates, []any{
			d.SalesforceID, d.DeviceID, d.ModelYear, d.ColorRecordID,
			cell(d.LocaviaValue),
			"DIS-" + d.LocaviaModelCode + "-" + d.LocaviaModelCode + "-" + d.ColorProductCode,
		})
	}
	if err := writeSheet(f, sheetDivergences, []string{
		"Codigo Modelo", "Ano Modelo", "ID Cor",
		"Campo_Locavia", "Valor_Locavia", "Campo_SF", "Valor_SF",
	}, divergences); err != nil {
		return err
	}
	if err := writeSheet(f, sheetDivergencesSF, []string{
		"Id", "IRIS_Dispositvo__c", "IRIS_Ano_Modelo__c", "IRIS_Cor__c",
		"IRIS_Valor__c", "IRIS_IdDispositivo_Cor__c",
	}, updates); err != nil {
		return err
	}

	missingSF := make([][]any, 0, len(result.MissingInSalesforce))
	for _, r := range result.MissingInSalesforce {
		missingSF = append(missingSF, []any{
			lookups.DeviceByModelCode[normalize.Key(r.ModelCode)],
			r.ModelYear,
			lookups.ColorByColorCode[normalize.Key(r.ColorID)],
			r.Name, r.ColorID, r.ActiveFlag, cell(r.PublicPrice), r.Segment,
		})
	}
	if err := writeSheet(f, sheetMissingInSF, []string{
		"IRIS_Dispositivo__c", "IRIS_Anodomodelo__c", "IRIS_Cor__c",
		"IRIS_Cor_Name", "IRIS_Cor_ID__c", "IsActive", "IRIS_Valor__c",
		"IRIS_Segmento_do_Produto__c",
	}, missingSF); err != nil {
		return err
	}

	missingLocavia := make([][]any, 0, len(result.MissingInLocavia))
	for _, r := range result.MissingInLocavia {
		missingLocavia = append(missingLocavia, []any{
			r.ID, timestamp(r.CreatedDate), r.ModelProductCode, r.IntegrationModelCode,
			r.FabricationYear, r.ModelYear, r.ColorName, r.ColorIDRaw, r.ColorID,
			r.ColorRecordID, cell(r.Price),
		})
	}
	if err := writeSheet(f, sheetMissingInLocavia, []string{
		"Id", "CreatedDate", "Codigo Modelo (ProductCode)", "Codigo Modelo (Integracao)",
		"Ano Fabricacao", "Ano Modelo", "Nome Cor", "ID Cor (raw)", "ID Cor (normalizado)",
		"Cor Product2 Id", "Valor",
	}, missingLocavia); err != nil {
		return err
	}

	if err := writeRemovals(f, removals); err != nil {
		return err
	}

	return save(f, path)
}

// WriteOptions renders an option-family result, its removal candidates and
// the lookup-resolved insert rows into a workbook at path. Only price
// divergences are rendered in update-instruction shape; the other fields are
// fixed by hand.
func WriteOptions(path string, result records.OptionResult, removals []records.ProductOptionLink, lookups *baseids.Lookups) error {
	f := excelize.NewFile()
	defer f.Close()

	divergences := make([][]any, 0, len(result.Divergences))
	updates := [][]any{}
	for _, d := range result.Divergences {
		divergences = append(divergences, []any{
			d.ModelCode, d.ModelYear, d.OptionalID,
			d.LocaviaField, cell(d.LocaviaValue), d.SalesforceField, cell(d.SalesforceValue),
		})
		if d.LocaviaField == "Preco_Publico__c" {
			updates = append(updates, []any{
				d.SalesforceID, d.DeviceID, d.ModelYear, d.OptionalRecordID, cell(d.LocaviaValue),
			})
		}
	}
	if err := writeSheet(f, sheetDivergences, []string{
		"Codigo Modelo", "Ano Modelo", "ID Opcional",
		"Campo_Locavia", "Valor_Locavia", "Campo_SF", "Valor_SF",
	}, divergences); err != nil {
		return err
	}
	if err := writeSheet(f, sheetDivergencesSF, []string{
		"Id", "IRIS_Dispositivo__c", "IRIS_Ano_Modelo__c", "IRIS_Opcional__c", "Preco_Publico__c",
	}, updates); err != nil {
		return err
	}

	missingSF := make([][]any, 0, len(result.MissingInSalesforce))
	for _, r := range result.MissingInSalesforce {
		missingSF = append(missingSF, []any{
			lookups.DeviceByModelCode[normalize.Key(r.ModelCode)],
			r.ModelYear,
			lookups.OptionByLocaviaID[normalize.Key(r.OptionalID)],
			r.Name, r.OptionalID, r.ActiveFlag, cell(r.PublicPrice), r.Segment,
		})
	}
	if err := writeSheet(f, sheetMissingInSF, []string{
		"IRIS_Dispositivo__c", "IRIS_Anodomodelo__c", "IRIS_Opcional__c",
		"Name", "IRIS_IdOpcionais__c", "IsActive", "Preco_Publico__c",
		"IRIS_Segmento_do_Produto__c",
	}, missingSF); err != nil {
		return err
	}

	missingLocavia := make([][]any, 0, len(result.MissingInLocavia))
	for _, r := range result.MissingInLocavia {
		missingLocavia = append(missingLocavia, []any{
			r.ID, timestamp(r.CreatedDate), r.ModelProductCode, r.IntegrationModelCode,
			r.FabricationYear, r.ModelYear, r.Name, r.OptionalID, r.Active,
			cell(r.PublicPrice), r.Segment,
		})
	}
	if err := writeSheet(f, sheetMissingInLocavia, []string{
		"Id", "CreatedDate", "Codigo Modelo (ProductCode)", "Codigo Modelo (Integracao)",
		"Ano Fabricacao", "Ano Modelo", "Nome", "ID Opcional", "Ativo",
		"Preco Publico", "Segmento",
	}, missingLocavia); err != nil {
		return err
	}

	if err := writeRemovals(f, removals); err != nil {
		return err
	}

	return save(f, path)
}

func writeRemovals(f *excelize.File, removals []records.ProductOptionLink) error {
	rows := make([][]any, 0, len(removals))
	for _, r := range removals {
		rows = append(rows, []any{
			r.ID, r.ConfiguredName, r.ConfiguredProductCode,
			r.Feature, r.OptionalName, r.OptionalLocaviaID, r.OptionalID,
		})
	}
	return writeSheet(f, sheetRemovals, []string{
		"Id", "SBQQ__ConfiguredSKU__r.Name", "SBQQ__ConfiguredSKU__r.ProductCode",
		"SBQQ__OptionalSKU__r.IRIS_ProductFeature__c", "SBQQ__OptionalSKU__r.Name",
		"SBQQ__OptionalSKU__r.IRIS_Id_Locavia__c", "SBQQ__OptionalSKU__r.Id",
	}, rows)
}

// writeSheet appends one worksheet with a header line and data rows.
func writeSheet(f *excelize.File, name string, headers []string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, ref, &row); err != nil {
			return err
		}
	}
	return nil
}

// save drops the default sheet excelize creates and writes the workbook.
func save(f *excelize.File, path string) error {
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// cell flattens a field value for a worksheet cell: nullable numbers deref,
// nil stays an empty cell, and NaN (an unparseable source cell) renders as
// a literal marker instead of poisoning the sheet.
func cell(v records.FieldValue) any {
	switch t := v.(type) {
	case *float64:
		if t == nil {
			return nil
		}
		return cell(*t)
	case float64:
		if math.IsNaN(t) {
			return "NaN"
		}
		return t
	default:
		return v
	}
}

func timestamp(t utc.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
