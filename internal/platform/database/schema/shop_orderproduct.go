package schema

// OrderProductTable represents the 'shop.orderproduct' join table
type OrderProductTable struct {
	Table     string
	OrderID   string
	ProductID string
}

// OrderProduct is the schema definition for shop.orderproduct
var OrderProduct = OrderProductTable{
	Table:     "shop.orderproduct",
	OrderID:   "orderid",
	ProductID: "productid",
}
