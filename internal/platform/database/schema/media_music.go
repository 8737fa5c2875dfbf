package schema

// MusicTable represents the 'media.music' table
type MusicTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	Genre       string
	CreatedAt   string
	Artist      string
}

// Music is the schema definition for media.music
var Music = MusicTable{
	Table:       "media.music",
	ID:          "id",
	Title:       "title",
	Description: "description",
	Genre:       "genre",
	CreatedAt:   "createdat",
	Artist:      "artist",
}

func (t MusicTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.Genre, t.CreatedAt, t.Artist}
}
