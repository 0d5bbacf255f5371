package extract

import "github.com/irisfleet/fleetrecon/pkg/records"

// BaseIDs maps raw Product2 registry rows into typed records. Every natural
// key is normalized here because registry exports are the worst offenders
// for the "67.0" numeric-cell problem. Rows without an ID or a record-type
// tag carry nothing usable and are dropped.
func BaseIDs(rows []Row) []records.BaseID {
	out := make([]records.BaseID, 0, len(rows))
	for _, row := range rows {
		rec := records.BaseID{
			ID:                   row.Key("Id"),
			Name:                 row.String("Name"),
			IntegrationModelCode: row.Key("IRIS_Codigo_Modelo_Locavia_Integracao__c"),
			ColorCode:            row.Key("IRIS_Codigo_Cor_Locavia__c"),
			LocaviaID:            row.Key("IRIS_Id_Locavia__c"),
			RecordType:           row.String("IRIS_TipoRegistro__c"),
			NotCommercialized:    row.OptionalBool("IRIS_NaoComercializado__c"),
		}
		if rec.ID == "" || rec.RecordType == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// ProductOptionLinks maps raw SBQQ__ProductOption__c rows into typed
// records. Rows missing the link ID or either end of the
// (productCode, legacyID) pair cannot participate in removal derivation and
// are dropped.
func ProductOptionLinks(rows []Row) []records.ProductOptionLink {
	out := make([]records.ProductOptionLink, 0, len(rows))
	for _, row := range rows {
		rec := records.ProductOptionLink{
			ID:                    row.String("Id"),
			ConfiguredName:        row.String("SBQQ__ConfiguredSKU__r.Name"),
			ConfiguredProductCode: row.Key("SBQQ__ConfiguredSKU__r.ProductCode"),
			Feature:               row.String("SBQQ__OptionalSKU__r.IRIS_ProductFeature__c"),
			OptionalName:          row.String("SBQQ__OptionalSKU__r.Name"),
			OptionalLocaviaID:     row.Key("SBQQ__OptionalSKU__r.IRIS_Id_Locavia__c"),
			OptionalID:            row.String("SBQQ__OptionalSKU__r.Id"),
		}
		if rec.ID == "" || rec.ConfiguredProductCode == "" || rec.OptionalLocaviaID == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}
