package schema

// ReviewTable represents the 'press.review' table
type ReviewTable struct {
	Table       string
	ID          string
	Content     string
	Rating      string
	AuthorID    string
	ArticleID   string
	PublishedOn string
}

// Review is the schema definition for press.review
var Review = ReviewTable{
	Table:       "press.review",
	ID:          "id",
	Content:     "content",
	Rating:      "rating",
	AuthorID:    "authorid",
	ArticleID:   "articleid",
	PublishedOn: "publishedon",
}

func (t ReviewTable) Columns() []string {
	return []string{t.ID, t.Content, t.Rating, t.AuthorID, t.ArticleID, t.PublishedOn}
}
