package records

import "github.com/agentstation/utc"

// LocaviaColor is one row of the Locavia model-color export. The legacy
// export repeats a color for every model/year it applies to, so the
// extractor deduplicates by business key before comparison.
type LocaviaColor struct {
	ModelCode   string   // CodigoModelo
	ModelYear   string   // AnoModelo
	Name        string   // Name
	ColorID     string   // IRIS_Cor_ID__c, normalized
	ActiveFlag  string   // IsActive, raw token
	PublicPrice *float64 // Preco_Publico__c
	Segment     string   // IRIS_Segmento_do_Produto__c
}

// SalesforceColor is one row of the IRIS_Produto_Cor__c export. Most columns
// arrive through dotted relationship paths (IRIS_Dispositvo__r.*,
// IRIS_Cor__r.*) with flat fallbacks.
//
// "Dispositvo" is how the upstream Salesforce org spells the device
// relationship; it has to be matched verbatim.
type SalesforceColor struct {
	ID                   string // Id of the IRIS_Produto_Cor__c record
	IntegrationModelCode string // IRIS_Dispositvo__r.IRIS_Codigo_Modelo_Locavia_Integracao__c
	LocaviaModelCode     string // IRIS_Dispositvo__r.IRIS_Codigo_do_Modelo_do_Locavia__c
	ModelProductCode     string // IRIS_Dispositvo__r.ProductCode
	DeviceID             string // IRIS_Dispositvo__r.Id
	FabricationYear      string // IRIS_Dispositvo__r.IRIS_AnodeFabricacao__c
	ModelYear            string // IRIS_Dispositvo__r.IRIS_Anodomodelo__c
	ColorName            string // IRIS_Cor__r.Name
	ColorID              string // IRIS_Cor__r.IRIS_Cor_ID__c, normalized
	ColorIDRaw           string // IRIS_Cor__r.IRIS_Cor_ID__c before normalization
	ColorProductCode     string // IRIS_Cor__r.ProductCode
	ColorRecordID        string // IRIS_Cor__r.Id
	Price                *float64
	CreatedDate          utc.Time // zero when the export omits the column
}

// ColorDivergence is one field-level mismatch between a matched color pair.
type ColorDivergence struct {
	SalesforceID     string
	ModelCode        string
	ModelYear        string
	ColorID          string
	ModelProductCode string
	DeviceID         string
	LocaviaModelCode string
	ColorProductCode string
	ColorRecordID    string
	Price            *float64
	LocaviaField     string
	LocaviaValue     FieldValue
	SalesforceField  string
	SalesforceValue  FieldValue
}

// ColorResult holds the three disjoint outcomes of a color-family comparison.
type ColorResult struct {
	Divergences         []ColorDivergence
	MissingInSalesforce []LocaviaColor
	MissingInLocavia    []SalesforceColor
}
