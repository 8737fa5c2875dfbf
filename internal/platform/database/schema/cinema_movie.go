package schema

// MovieTable represents the 'cinema.movie' table
type MovieTable struct {
	Table           string
	ID              string
	Title           string
	ReleaseDate     string
	Storyline       string
	Genre           string
	Rating          string
	IsClassic       string
	IsAwarded       string
	LastUpdated     string
	DirectorID      string
	StarringActorID string
}

// Movie is the schema definition for cinema.movie
var Movie = MovieTable{
	Table:           "cinema.movie",
	ID:              "id",
	Title:           "title",
	ReleaseDate:     "releasedate",
	Storyline:       "storyline",
	Genre:           "genre",
	Rating:          "rating",
	IsClassic:       "isclassic",
	IsAwarded:       "isawarded",
	LastUpdated:     "lastupdated",
	DirectorID:      "directorid",
	StarringActorID: "starringactorid",
}

func (t MovieTable) Columns() []string {
	return []string{t.ID, t.Title, t.ReleaseDate, t.Storyline, t.Genre, t.Rating, t.IsClassic, t.IsAwarded, t.LastUpdated, t.DirectorID, t.StarringActorID}
}
