package compare

import (
	"strings"

	"github.com/irisfleet/fleetrecon/pkg/records"
)

// lightVehicleSegment is the only Locavia segment reconciled against the
// Salesforce device catalog; other segments live in a different org.
const lightVehicleSegment = "Leves"

// Models reconciles the Locavia and Salesforce model exports. Only Locavia
// rows in the light-vehicle segment participate. Matched pairs whose legacy
// row is flagged not-commercialized are consumed without field comparison:
// they exist on both sides, but their attributes are not maintained.
func Models(locavia []records.LocaviaModel, salesforce []records.SalesforceModel) records.ModelResult {
	result := records.ModelResult{
		Divergences:         []records.ModelDivergence{},
		MissingInSalesforce: []records.LocaviaModel{},
		MissingInLocavia:    []records.SalesforceModel{},
	}

	buckets := newFIFOBuckets(len(salesforce))
	for i, sf := range salesforce {
		buckets.add(sf.Key(), i)
	}

	for _, loc := range locavia {
		if loc.Description != lightVehicleSegment {
			continue
		}

		i, ok := buckets.take(loc.Key())
		if !ok {
			result.MissingInSalesforce = append(result.MissingInSalesforce, loc)
			continue
		}
		sf := salesforce[i]

		if loc.NotCommercialized != "N" {
			continue
		}

		result.Divergences = append(result.Divergences, modelDivergences(loc, sf)...)
	}

	for _, i := range buckets.leftovers() {
		result.MissingInLocavia = append(result.MissingInLocavia, salesforce[i])
	}

	return result
}

// modelDivergences runs the model-family field comparisons for one matched
// pair and returns one divergence per mismatching field.
func modelDivergences(loc records.LocaviaModel, sf records.SalesforceModel) []records.ModelDivergence {
	fields := []struct {
		locaviaField    string
		locaviaValue    records.FieldValue
		displayValue    records.FieldValue
		salesforceField string
		salesforceValue records.FieldValue
	}{
		{"SiglaCategoriaModelo", loc.Category, nil, "IRIS_Categoria__c", sf.Category},
		{"SubCategoria", loc.Subcategory, nil, "IRIS_Subcategoria_do_Produto__c", sf.Subcategory},
		// The active flag compares as a boolean but reports the raw token.
		{"Ativo_Especificacao", loc.ActiveFlag == "S", loc.ActiveFlag, "IsActive", sf.Active},
		{"ValorPublico", loc.PublicPrice, nil, "Preco_Publico__c", sf.PublicPrice},
		{"PrazoEntrega", loc.DeliveryDays, nil, "IRIS_PrazoDeEntrega__c", sf.DeliveryDays},
		{"PrazoPagamentoFornecedor", loc.SupplierPaymentDays, nil, "IRIS_PrazoPagamentoFornecedor__c", sf.SupplierPaymentDays},
		{"RebateValorLiquido", loc.RebateNetPrice, nil, "IRIS_RebatePrecoLiquido__c", sf.RebateNetPrice},
		{"RebateValorPublico", loc.RebatePublicPrice, nil, "IRIS_RebatePrecoPublico__c", sf.RebatePublicPrice},
		{"PercentualDesconto", loc.DiscountPercent, nil, "Desconto__c", sf.DiscountPercent},
	}

	var out []records.ModelDivergence
	for _, f := range fields {
		if Equal(f.locaviaValue, f.salesforceValue) {
			continue
		}

		value := f.locaviaValue
		if f.displayValue != nil {
			value = f.displayValue
		}

		out = append(out, records.ModelDivergence{
			ModelCode:       loc.ModelCode,
			FabricationYear: loc.FabricationYear,
			ModelYear:       loc.ModelYear,
			Kind:            modelKind(sf.LocaviaModelCode),
			LocaviaField:    f.locaviaField,
			LocaviaValue:    value,
			SalesforceField: f.salesforceField,
			SalesforceValue: f.salesforceValue,
		})
	}
	return out
}

// modelKind classifies a divergence by the shape of the Salesforce-side
// Locavia model code: purely numeric (or absent) codes belong to the free
// rental fleet, everything else to the corporate fleet.
func modelKind(locaviaModelCode string) string {
	code := strings.TrimSpace(locaviaModelCode)
	if code == "" {
		return "livre"
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return "fleet"
		}
	}
	return "livre"
}
