package schema

// BookTable represents the 'media.book' table
type BookTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	Genre       string
	CreatedAt   string
	Author      string
	ISBN        string
}

// Book is the schema definition for media.book
var Book = BookTable{
	Table:       "media.book",
	ID:          "id",
	Title:       "title",
	Description: "description",
	Genre:       "genre",
	CreatedAt:   "createdat",
	Author:      "author",
	ISBN:        "isbn",
}

func (t BookTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.Genre, t.CreatedAt, t.Author, t.ISBN}
}
