package schema

// VideoGameTable represents the 'catalog.videogame' table
type VideoGameTable struct {
	Table       string
	ID          string
	Title       string
	Genre       string
	ReleaseYear string
	Rating      string
}

// VideoGame is the schema definition for catalog.videogame
var VideoGame = VideoGameTable{
	Table:       "catalog.videogame",
	ID:          "id",
	Title:       "title",
	Genre:       "genre",
	ReleaseYear: "releaseyear",
	Rating:      "rating",
}

func (t VideoGameTable) Columns() []string {
	return []string{t.ID, t.Title, t.Genre, t.ReleaseYear, t.Rating}
}
