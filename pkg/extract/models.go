package extract

import "github.com/irisfleet/fleetrecon/pkg/records"

// LocaviaModels maps raw Locavia model rows into typed records and collapses
// duplicate business keys, keeping the highest-priced variant per key.
func LocaviaModels(rows []Row) []records.LocaviaModel {
	out := make([]records.LocaviaModel, 0, len(rows))
	for _, row := range rows {
		out = append(out, records.LocaviaModel{
			ModelCode:           row.String("CodigoModelo"),
			Description:         row.String("Descricao"),
			FabricationYear:     row.String("AnoFabricacao"),
			ModelYear:           row.String("AnoModelo"),
			ActiveFlag:          row.String("Ativo_Especificacao"),
			NotCommercialized:   row.String("NaoComercializado"),
			Category:            row.String("SiglaCategoriaModelo"),
			Subcategory:         row.String("SubCategoria"),
			PublicPrice:         row.Number("ValorPublico"),
			DeliveryDays:        row.Number("PrazoEntrega"),
			SupplierPaymentDays: row.Number("PrazoPagamentoFornecedor"),
			RebateNetPrice:      row.Number("RebateValorLiquido"),
			RebatePublicPrice:   row.Number("RebateValorPublico"),
			DiscountPercent:     row.Number("PercentualDesconto"),
		})
	}

	return dedupeByHighestPrice(out,
		func(m records.LocaviaModel) string { return m.Key() },
		func(m records.LocaviaModel) *float64 { return m.PublicPrice },
	)
}

// SalesforceModels maps raw Salesforce device rows into typed records.
func SalesforceModels(rows []Row) []records.SalesforceModel {
	out := make([]records.SalesforceModel, 0, len(rows))
	for _, row := range rows {
		out = append(out, records.SalesforceModel{
			LocaviaID:            row.String("IRIS_Id_Locavia__c"),
			IntegrationModelCode: row.String("IRIS_Codigo_Modelo_Locavia_Integracao__c"),
			LocaviaModelCode:     row.String("IRIS_Codigo_do_Modelo_do_Locavia__c"),
			ProductCode:          row.String("ProductCode"),
			FabricationYear:      row.String("IRIS_AnodeFabricacao__c"),
			ModelYear:            row.String("IRIS_Anodomodelo__c"),
			Active:               row.Bool("IsActive"),
			Category:             row.String("IRIS_Categoria__c"),
			Subcategory:          row.String("IRIS_Subcategoria_do_Produto__c"),
			PublicPrice:          row.Number("Preco_Publico__c"),
			DeliveryDays:         row.Number("IRIS_PrazoDeEntrega__c"),
			SupplierPaymentDays:  row.Number("IRIS_PrazoPagamentoFornecedor__c"),
			RebateNetPrice:       row.Number("IRIS_RebatePrecoLiquido__c"),
			RebatePublicPrice:    row.Number("IRIS_RebatePrecoPublico__c"),
			DiscountPercent:      row.Number("Desconto__c"),
		})
	}
	return out
}

// dedupeByHighestPrice groups records by business key and keeps the
// highest-priced record per group; ties keep the first encountered. Losers
// are dropped silently and never surface in any comparison output. Output
// order follows first appearance of each key.
func dedupeByHighestPrice[T any](items []T, key func(T) string, price func(T) *float64) []T {
	index := make(map[string]int, len(items))
	out := make([]T, 0, len(items))

	for _, item := range items {
		k := key(item)
		at, seen := index[k]
		if !seen {
			index[k] = len(out)
			out = append(out, item)
			continue
		}
		if priceOrZero(price(item)) > priceOrZero(price(out[at])) {
			out[at] = item
		}
	}
	return out
}

func priceOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
