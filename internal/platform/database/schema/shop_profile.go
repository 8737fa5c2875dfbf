package schema

// ProfileTable represents the 'shop.profile' table
type ProfileTable struct {
	Table        string
	ID           string
	FullName     string
	Email        string
	PhoneNumber  string
	Address      string
	IsActive     string
	CreationDate string
}

// Profile is the schema definition for shop.profile
var Profile = ProfileTable{
	Table:        "shop.profile",
	ID:           "id",
	FullName:     "fullname",
	Email:        "email",
	PhoneNumber:  "phonenumber",
	Address:      "address",
	IsActive:     "isactive",
	CreationDate: "creationdate",
}

func (t ProfileTable) Columns() []string {
	return []string{t.ID, t.FullName, t.Email, t.PhoneNumber, t.Address, t.IsActive, t.CreationDate}
}
