package schema

// ActorTable represents the 'cinema.actor' table
type ActorTable struct {
	Table       string
	ID          string
	FullName    string
	BirthDate   string
	Nationality string
	IsAwarded   string
	LastUpdated string
}

// Actor is the schema definition for cinema.actor
var Actor = ActorTable{
	Table:       "cinema.actor",
	ID:          "id",
	FullName:    "fullname",
	BirthDate:   "birthdate",
	Nationality: "nationality",
	IsAwarded:   "isawarded",
	LastUpdated: "lastupdated",
}

func (t ActorTable) Columns() []string {
	return []string{t.ID, t.FullName, t.BirthDate, t.Nationality, t.IsAwarded, t.LastUpdated}
}
