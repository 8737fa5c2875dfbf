package schema

// MediaMovieTable represents the 'media.movie' table
type MediaMovieTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	Genre       string
	CreatedAt   string
	Director    string
}

// MediaMovie is the schema definition for media.movie
var MediaMovie = MediaMovieTable{
	Table:       "media.movie",
	ID:          "id",
	Title:       "title",
	Description: "description",
	Genre:       "genre",
	CreatedAt:   "createdat",
	Director:    "director",
}

func (t MediaMovieTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.Genre, t.CreatedAt, t.Director}
}
