package compare

import "github.com/irisfleet/fleetrecon/pkg/records"

// Options reconciles the Locavia and Salesforce accessory exports.
func Options(locavia []records.LocaviaOption, salesforce []records.SalesforceOption) records.OptionResult {
	result := records.OptionResult{
		Divergences:         []records.OptionDivergence{},
		MissingInSalesforce: []records.LocaviaOption{},
		MissingInLocavia:    []records.SalesforceOption{},
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

		if !EqualFold(loc.Name, sf.Name) {
			result.Divergences = append(result.Divergences, optionDivergence(loc, sf,
				"Name", loc.Name, "Name", sf.Name))
		}

		// The active flag bypasses Equal's null handling: a missing token
		// simply means inactive, so this is a direct boolean check.
		if activeToken(loc.ActiveFlag) != sf.Active {
			result.Divergences = append(result.Divergences, optionDivergence(loc, sf,
				"IsActive", activeToken(loc.ActiveFlag), "IsActive", sf.Active))
		}

		if !Equal(loc.PublicPrice, sf.PublicPrice) {
			result.Divergences = append(result.Divergences, optionDivergence(loc, sf,
				"Preco_Publico__c", loc.PublicPrice, "Preco_Publico__c", sf.PublicPrice))
		}

		if !Equal(loc.Segment, sf.Segment) {
			result.Divergences = append(result.Divergences, optionDivergence(loc, sf,
				"IRIS_Segmento_do_Produto__c", loc.Segment, "IRIS_Segmento_do_Produto__c", sf.Segment))
		}
	}

	for _, i := range buckets.leftovers() {
		result.MissingInLocavia = append(result.MissingInLocavia, salesforce[i])
	}

	return result
}

func optionDivergence(loc records.LocaviaOption, sf records.SalesforceOption, locField string, locValue records.FieldValue, sfField string, sfValue records.FieldValue) records.OptionDivergence {
	return records.OptionDivergence{
		SalesforceID:        sf.ID,
		ModelCode:           loc.ModelCode,
		ModelYear:           loc.ModelYear,
		OptionalID:          loc.OptionalID,
		ModelProductCode:    sf.ModelProductCode,
		DeviceID:            sf.DeviceID,
		LocaviaModelCode:    sf.LocaviaModelCode,
		OptionalProductCode: sf.OptionalProductCode,
		OptionalRecordID:    sf.OptionalRecordID,
		LocaviaPrice:        loc.PublicPrice,
		SalesforcePrice:     sf.PublicPrice,
		LocaviaField:        locField,
		LocaviaValue:        locValue,
		SalesforceField:     sfField,
		SalesforceValue:     sfValue,
	}
}
