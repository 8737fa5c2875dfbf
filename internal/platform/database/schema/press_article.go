package schema

// ArticleTable represents the 'press.article' table
type ArticleTable struct {
	Table       string
	ID          string
	Title       string
	Content     string
	Category    string
	PublishedOn string
}

// Article is the schema definition for press.article
var Article = ArticleTable{
	Table:       "press.article",
	ID:          "id",
	Title:       "title",
	Content:     "content",
	Category:    "category",
	PublishedOn: "publishedon",
}

func (t ArticleTable) Columns() []string {
	return []string{t.ID, t.Title, t.Content, t.Category, t.PublishedOn}
}
