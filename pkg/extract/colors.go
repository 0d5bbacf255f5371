package extract

import "github.com/irisfleet/fleetrecon/pkg/records"

// LocaviaColors maps raw Locavia color rows into typed records and collapses
// duplicate business keys, keeping the highest-priced variant per key.
func LocaviaColors(rows []Row) []records.LocaviaColor {
	out := make([]records.LocaviaColor, 0, len(rows))
	for _, row := range rows {
		out = append(out, records.LocaviaColor{
			ModelCode:   row.String("CodigoModelo"),
			ModelYear:   row.String("AnoModelo"),
			Name:        row.String("Name"),
			ColorID:     row.Key("IRIS_Cor_ID__c"),
			ActiveFlag:  row.String("IsActive"),
			PublicPrice: row.Number("Preco_Publico__c"),
			Segment:     row.String("IRIS_Segmento_do_Produto__c"),
		})
	}

	return dedupeByHighestPrice(out,
		func(c records.LocaviaColor) string { return c.Key() },
		func(c records.LocaviaColor) *float64 { return c.PublicPrice },
	)
}

// SalesforceColors maps raw IRIS_Produto_Cor__c rows into typed records.
// Relationship-path columns are tried before their flat aliases because the
// report configuration decides which naming the export carries.
func SalesforceColors(rows []Row) []records.SalesforceColor {
	out := make([]records.SalesforceColor, 0, len(rows))
	for _, row := range rows {
		out = append(out, records.SalesforceColor{
			ID: row.String("Id"),
			IntegrationModelCode: row.String(
				"IRIS_Dispositvo__r.IRIS_Codigo_Modelo_Locavia_Integracao__c",
				"IRIS_Codigo_Modelo_Locavia_Integracao__c"),
			LocaviaModelCode: row.String(
				"IRIS_Dispositvo__r.IRIS_Codigo_do_Modelo_do_Locavia__c",
				"IRIS_Codigo_do_Modelo_do_Locavia__c"),
			ModelProductCode: row.String("IRIS_Dispositvo__r.ProductCode", "ProductCode_Modelo"),
			DeviceID:         row.String("IRIS_Dispositvo__r.Id", "IRIS_Dispositvo_Id"),
			FabricationYear:  row.String("IRIS_Dispositvo__r.IRIS_AnodeFabricacao__c", "IRIS_AnodeFabricacao__c"),
			ModelYear:        row.String("IRIS_Dispositvo__r.IRIS_Anodomodelo__c", "IRIS_Anodomodelo__c"),
			ColorName:        row.String("IRIS_Cor__r.Name", "IRIS_Cor_Name"),
			ColorID:          row.Key("IRIS_Cor__r.IRIS_Cor_ID__c", "IRIS_Cor_ID__c"),
			ColorIDRaw:       row.String("IRIS_Cor__r.IRIS_Cor_ID__c", "IRIS_Cor_ID__c"),
			ColorProductCode: row.String("IRIS_Cor__r.ProductCode", "ProductCode_Cor"),
			ColorRecordID:    row.String("IRIS_Cor__r.Id"),
			Price:            row.Number("IRIS_Valor__c"),
			CreatedDate:      row.Time("CreatedDate"),
		})
	}
	return out
}
