package records

import "github.com/agentstation/utc"

// LocaviaOption is one row of the Locavia model-accessory export.
type LocaviaOption struct {
	ModelCode   string   // CodigoModelo
	ModelYear   string   // AnoModelo
	Name        string   // Name
	OptionalID  string   // IRIS_IdOpcionais__c, normalized
	ActiveFlag  string   // IsActive, raw token
	PublicPrice *float64 // Preco_Publico__c
	Segment     string   // IRIS_Segmento_do_Produto__c
}

// SalesforceOption is one row of the IRIS_Produto_Opcional__c export.
type SalesforceOption struct {
	ID                   string // Id of the IRIS_Produto_Opcional__c record
	IntegrationModelCode string // IRIS_Dispositivo__r.IRIS_Codigo_Modelo_Locavia_Integracao__c
	LocaviaModelCode     string // IRIS_Dispositivo__r.IRIS_Codigo_do_Modelo_do_Locavia__c
	ModelProductCode     string // IRIS_Dispositivo__r.ProductCode
	DeviceID             string // IRIS_Dispositivo__r.Id
	FabricationYear      string // IRIS_Dispositivo__r.IRIS_AnodeFabricacao__c
	ModelYear            string // IRIS_Dispositivo__r.IRIS_Anodomodelo__c
	Name                 string // IRIS_Opcional__r.Name
	OptionalID           string // IRIS_Opcional__r.IRIS_IdOpcionais__c, normalized
	OptionalProductCode  string // IRIS_Opcional__r.ProductCode
	OptionalRecordID     string // IRIS_Opcional__r.Id
	Active               bool   // IsActive
	PublicPrice          *float64
	Segment              string // IRIS_Segmento_do_Produto__c
	CreatedDate          utc.Time
}

// OptionDivergence is one field-level mismatch between a matched option pair.
type OptionDivergence struct {
	SalesforceID        string
	ModelCode           string
	ModelYear           string
	OptionalID          string
	ModelProductCode    string
	DeviceID            string
	LocaviaModelCode    string
	OptionalProductCode string
	OptionalRecordID    string
	LocaviaPrice        *float64
	SalesforcePrice     *float64
	LocaviaField        string
	LocaviaValue        FieldValue
	SalesforceField     string
	SalesforceValue     FieldValue
}

// OptionResult holds the three disjoint outcomes of an option-family
// comparison.
type OptionResult struct {
	Divergences         []OptionDivergence
	MissingInSalesforce []LocaviaOption
	MissingInLocavia    []SalesforceOption
}
