package schema

// DirectorTable represents the 'cinema.director' table
type DirectorTable struct {
	Table             string
	ID                string
	FullName          string
	BirthDate         string
	Nationality       string
	YearsOfExperience string
}

// Director is the schema definition for cinema.director
var Director = DirectorTable{
	Table:             "cinema.director",
	ID:                "id",
	FullName:          "fullname",
	BirthDate:         "birthdate",
	Nationality:       "nationality",
	YearsOfExperience: "yearsofexperience",
}

func (t DirectorTable) Columns() []string {
	return []string{t.ID, t.FullName, t.BirthDate, t.Nationality, t.YearsOfExperience}
}
