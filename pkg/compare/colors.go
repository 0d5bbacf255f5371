package compare

import "github.com/irisfleet/fleetrecon/pkg/records"

// Colors reconciles the Locavia and Salesforce color exports. The Locavia
// side arrives already deduplicated (highest price per business key); every
// Salesforce record is consumed by at most one match, and duplicates beyond
// the first match surface as missing-in-Locavia.
func Colors(locavia []records.LocaviaColor, salesforce []records.SalesforceColor) records.ColorResult {
	result := records.ColorResult{
		Divergences:         []records.ColorDivergence{},
		MissingInSalesforce: []records.LocaviaColor{},
		MissingInLocavia:    []records.SalesforceColor{},
	}

	buckets := newFIFOBuckets(len(salesforce))
	for i, sf := range salesforce {
		buckets.add(sf.Key(), i)
	}

	for _, loc := range locavia {
		i, ok := buckets.take(loc.Key())
		if !ok {
			result.MissingInSalesforce = append(result.MissingInSalesforce, loc)
			continue
		}
		sf := salesforce[i]

		if !EqualFold(loc.Name, sf.ColorName) {
			result.Divergences = append(result.Divergences, colorDivergence(loc, sf,
				"Name", loc.Name, "IRIS_Cor_Name", sf.ColorName))
		}
		if !Equal(loc.PublicPrice, sf.Price) {
			result.Divergences = append(result.Divergences, colorDivergence(loc, sf,
				"Preco_Publico__c", loc.PublicPrice, "IRIS_Valor__c", sf.Price))
		}
	}

	for _, i := range buckets.leftovers() {
		result.MissingInLocavia = append(result.MissingInLocavia, salesforce[i])
	}

	return result
}

func colorDivergence(loc records.LocaviaColor, sf records.SalesforceColor, locField string, locValue records.FieldValue, sfField string, sfValue records.FieldValue) records.ColorDivergence {
	return records.ColorDivergence{
		SalesforceID:     sf.ID,
		ModelCode:        loc.ModelCode,
		ModelYear:        loc.ModelYear,
		ColorID:          loc.ColorID,
		ModelProductCode: sf.ModelProductCode,
		DeviceID:         sf.DeviceID,
		LocaviaModelCode: sf.LocaviaModelCode,
		ColorProductCode: sf.ColorProductCode,
		ColorRecordID:    sf.ColorRecordID,
		Price:            sf.Price,
		LocaviaField:     locField,
		LocaviaValue:     locValue,
		SalesforceField:  sfField,
		SalesforceValue:  sfValue,
	}
}
