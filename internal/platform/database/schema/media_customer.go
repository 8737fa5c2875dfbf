package schema

// CustomerTable represents the 'media.customer' table
type CustomerTable struct {
	Table       string
	ID          string
	Name        string
	Age         string
	Email       string
	PhoneNumber string
	WebsiteURL  string
}

// Customer is the schema definition for media.customer
var Customer = CustomerTable{
	Table:       "media.customer",
	ID:          "id",
	Name:        "name",
	Age:         "age",
	Email:       "email",
	PhoneNumber: "phonenumber",
	WebsiteURL:  "websiteurl",
}

func (t CustomerTable) Columns() []string {
	return []string{t.ID, t.Name, t.Age, t.Email, t.PhoneNumber, t.WebsiteURL}
}
