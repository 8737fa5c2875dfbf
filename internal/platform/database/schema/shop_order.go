package schema

// OrderTable represents the 'shop.orders' table
type OrderTable struct {
	Table        string
	ID           string
	ProfileID    string
	TotalPrice   string
	IsCompleted  string
	CreationDate string
}

// Order is the schema definition for shop.orders
var Order = OrderTable{
	Table:        "shop.orders",
	ID:           "id",
	ProfileID:    "profileid",
	TotalPrice:   "totalprice",
	IsCompleted:  "iscompleted",
	CreationDate: "creationdate",
}

func (t OrderTable) Columns() []string {
	return []string{t.ID, t.ProfileID, t.TotalPrice, t.IsCompleted, t.CreationDate}
}
