package schema

// ListingTable represents the 'catalog.listing' table
type ListingTable struct {
	Table        string
	ID           string
	PropertyType string
	Price        string
	Bedrooms     string
	Location     string
}

// Listing is the schema definition for catalog.listing
var Listing = ListingTable{
	Table:        "catalog.listing",
	ID:           "id",
	PropertyType: "propertytype",
	Price:        "price",
	Bedrooms:     "bedrooms",
	Location:     "location",
}

func (t ListingTable) Columns() []string {
	return []string{t.ID, t.PropertyType, t.Price, t.Bedrooms, t.Location}
}
