package extract

import "github.com/irisfleet/fleetrecon/pkg/records"

// LocaviaOptions maps raw Locavia accessory rows into typed records and
// collapses duplicate business keys, keeping the highest-priced variant.
func LocaviaOptions(rows []Row) []records.LocaviaOption {
	out := make([]records.LocaviaOption, 0, len(rows))
	for _, row := range rows {
		out = append(out, records.LocaviaOption{
			ModelCode:   row.String("CodigoModelo"),
			ModelYear:   row.String("AnoModelo"),
			Name:        row.String("Name"),
			OptionalID:  row.Key("IRIS_Optional_ID__c", "IRIS_IdOpcionais__c"),
			ActiveFlag:  row.String("IsActive"),
			PublicPrice: row.Number("Preco_Publico__c"),
			Segment:     row.String("IRIS_Segmento_do_Produto__c"),
		})
	}

	return dedupeByHighestPrice(out,
		func(o records.LocaviaOption) string { return o.Key() },
		func(o records.LocaviaOption) *float64 { return o.PublicPrice },
	)
}

// SalesforceOptions maps raw IRIS_Produto_Opcional__c rows into typed
// records. Unlike the color object, the device relationship here is spelled
// "IRIS_Dispositivo__r".
func SalesforceOptions(rows []Row) []records.SalesforceOption {
	out := make([]records.SalesforceOption, 0, len(rows))
	for _, row := range rows {
		out = append(out, records.SalesforceOption{
			ID: row.String("Id"),
			IntegrationModelCode: row.String(
				"IRIS_Dispositivo__r.IRIS_Codigo_Modelo_Locavia_Integracao__c",
				"IRIS_Codigo_Modelo_Locavia_Integracao__c"),
			LocaviaModelCode: row.String(
				"IRIS_Dispositivo__r.IRIS_Codigo_do_Modelo_do_Locavia__c",
				"IRIS_Codigo_do_Modelo_do_Locavia__c"),
			ModelProductCode:    row.String("IRIS_Dispositivo__r.ProductCode", "ProductCode_Modelo"),
			DeviceID:            row.String("IRIS_Dispositivo__r.Id", "IRIS_Dispositivo_Id"),
			FabricationYear:     row.String("IRIS_Dispositivo__r.IRIS_AnodeFabricacao__c", "IRIS_AnodeFabricacao__c"),
			ModelYear:           row.String("IRIS_Dispositivo__r.IRIS_Anodomodelo__c", "IRIS_Anodomodelo__c"),
			Name:                row.String("IRIS_Opcional__r.Name", "Name"),
			OptionalID:          row.Key("IRIS_Opcional__r.IRIS_IdOpcionais__c", "IRIS_IdOpcionais__c"),
			OptionalProductCode: row.String("IRIS_Opcional__r.ProductCode", "ProductCode_Opcional"),
			OptionalRecordID:    row.String("IRIS_Opcional__r.Id"),
			Active:              row.Bool("IsActive"),
			PublicPrice:         row.Number("IRIS_Opcional__r.Preco_Publico__c", "Preco_Publico__c"),
			Segment:             row.String("IRIS_Segmento_do_Produto__c"),
			CreatedDate:         row.Time("CreatedDate"),
		})
	}
	return out
}
