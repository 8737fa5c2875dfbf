package schema

// ShopProductTable represents the 'shop.product' table
type ShopProductTable struct {
	Table        string
	ID           string
	Name         string
	Description  string
	Price        string
	InStock      string
	IsAvailable  string
	CreationDate string
}

// ShopProduct is the schema definition for shop.product
var ShopProduct = ShopProductTable{
	Table:        "shop.product",
	ID:           "id",
	Name:         "name",
	Description:  "description",
	Price:        "price",
	InStock:      "instock",
	IsAvailable:  "isavailable",
	CreationDate: "creationdate",
}

func (t ShopProductTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.Price, t.InStock, t.IsAvailable, t.CreationDate}
}
