package records

// BaseID is one row of the Product2 reference registry. Rows are tagged with
// a record type discriminator and carry the natural keys used to resolve
// Salesforce surrogate IDs when building insert instructions.
type BaseID struct {
	ID                   string // Id
	Name                 string
	IntegrationModelCode string // IRIS_Codigo_Modelo_Locavia_Integracao__c
	ColorCode            string // IRIS_Codigo_Cor_Locavia__c
	LocaviaID            string // IRIS_Id_Locavia__c
	RecordType           string // IRIS_TipoRegistro__c, matched literally
	NotCommercialized    *bool  // IRIS_NaoComercializado__c; nil when absent
}

// ProductOptionLink is one row of the SBQQ__ProductOption__c export, linking
// a configured bundle SKU to an optional color/accessory SKU.
type ProductOptionLink struct {
	ID                    string // Id
	ConfiguredName        string // SBQQ__ConfiguredSKU__r.Name
	ConfiguredProductCode string // SBQQ__ConfiguredSKU__r.ProductCode, normalized
	Feature               string // SBQQ__OptionalSKU__r.IRIS_ProductFeature__c
	OptionalName          string // SBQQ__OptionalSKU__r.Name
	OptionalLocaviaID     string // SBQQ__OptionalSKU__r.IRIS_Id_Locavia__c, normalized
	OptionalID            string // SBQQ__OptionalSKU__r.Id
}
