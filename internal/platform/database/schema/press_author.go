package schema

// PressAuthorTable represents the 'press.author' table
type PressAuthorTable struct {
	Table     string
	ID        string
	FullName  string
	Email     string
	IsBanned  string
	BirthYear string
	Website   string
}

// PressAuthor is the schema definition for press.author
var PressAuthor = PressAuthorTable{
	Table:     "press.author",
	ID:        "id",
	FullName:  "fullname",
	Email:     "email",
	IsBanned:  "isbanned",
	BirthYear: "birthyear",
	Website:   "website",
}

func (t PressAuthorTable) Columns() []string {
	return []string{t.ID, t.FullName, t.Email, t.IsBanned, t.BirthYear, t.Website}
}
