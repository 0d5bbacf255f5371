package records

// LocaviaModel is one row of the Locavia vehicle-model export.
type LocaviaModel struct {
	ModelCode           string   // CodigoModelo
	Description         string   // Descricao
	FabricationYear     string   // AnoFabricacao
	ModelYear           string   // AnoModelo
	ActiveFlag          string   // Ativo_Especificacao, "S"/"N" token
	NotCommercialized   string   // NaoComercializado, "S"/"N" token
	Category            string   // SiglaCategoriaModelo
	Subcategory         string   // SubCategoria
	PublicPrice         *float64 // ValorPublico
	DeliveryDays        *float64 // PrazoEntrega
	SupplierPaymentDays *float64 // PrazoPagamentoFornecedor
	RebateNetPrice      *float64 // RebateValorLiquido
	RebatePublicPrice   *float64 // RebateValorPublico
	DiscountPercent     *float64 // PercentualDesconto
}

// SalesforceModel is one row of the Salesforce device (Product2) export.
type SalesforceModel struct {
	LocaviaID            string   // IRIS_Id_Locavia__c
	IntegrationModelCode string   // IRIS_Codigo_Modelo_Locavia_Integracao__c
	LocaviaModelCode     string   // IRIS_Codigo_do_Modelo_do_Locavia__c
	ProductCode          string   // ProductCode
	FabricationYear      string   // IRIS_AnodeFabricacao__c
	ModelYear            string   // IRIS_Anodomodelo__c
	Active               bool     // IsActive
	Category             string   // IRIS_Categoria__c
	Subcategory          string   // IRIS_Subcategoria_do_Produto__c
	PublicPrice          *float64 // Preco_Publico__c
	DeliveryDays         *float64 // IRIS_PrazoDeEntrega__c
	SupplierPaymentDays  *float64 // IRIS_PrazoPagamentoFornecedor__c
	RebateNetPrice       *float64 // IRIS_RebatePrecoLiquido__c
	RebatePublicPrice    *float64 // IRIS_RebatePrecoPublico__c
	DiscountPercent      *float64 // Desconto__c
}

// ModelDivergence is one field-level mismatch between a matched model pair.
// Field names are the literal column names of each source export so the row
// can be turned into an update instruction without re-joining.
type ModelDivergence struct {
	ModelCode       string
	FabricationYear string
	ModelYear       string
	Kind            string // "livre" when the Locavia model code is numeric or empty, else "fleet"
	LocaviaField    string
	LocaviaValue    FieldValue
	SalesforceField string
	SalesforceValue FieldValue
}

// ModelResult holds the three disjoint outcomes of a model-family comparison.
type ModelResult struct {
	Divergences         []ModelDivergence
	MissingInSalesforce []LocaviaModel
	MissingInLocavia    []SalesforceModel
}
