package schema

// ArticleAuthorTable represents the 'press.articleauthor' join table
type ArticleAuthorTable struct {
	Table     string
	ArticleID string
	AuthorID  string
}

// ArticleAuthor is the schema definition for press.articleauthor
var ArticleAuthor = ArticleAuthorTable{
	Table:     "press.articleauthor",
	ArticleID: "articleid",
	AuthorID:  "authorid",
}
