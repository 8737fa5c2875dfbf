package schema

// PricedProductTable represents the 'pricing.product' table
type PricedProductTable struct {
	Table string
	ID    string
	Name  string
	Price string
}

// PricedProduct is the schema definition for pricing.product
var PricedProduct = PricedProductTable{
	Table: "pricing.product",
	ID:    "id",
	Name:  "name",
	Price: "price",
}

func (t PricedProductTable) Columns() []string {
	return []string{t.ID, t.Name, t.Price}
}
