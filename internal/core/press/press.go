// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package press

import "time"

// Article categories.
const (
	CategoryTechnology = "Technology"
	CategoryScience    = "Science"
	CategoryEducation  = "Education"
)

// Author writes articles and reviews. Emails are unique.
type Author struct {
	ID        int64   `json:"id"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	IsBanned  bool    `json:"is_banned"`
	BirthYear int     `json:"birth_year"`
	Website   *string `json:"website"`
}

// Article is written by one or more authors.
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	AuthorIDs   []int64   `json:"author_ids"`
	PublishedOn time.Time `json:"published_on"`
}

// Review rates an article on a 1 to 5 scale.
type Review struct {
	ID          int64     `json:"id"`
	Content     string    `json:"content"`
	Rating      float64   `json:"rating"`
	AuthorID    int64     `json:"author_id"`
	ArticleID   int64     `json:"article_id"`
	PublishedOn time.Time `json:"published_on"`
}

// AuthorFilter selects authors by case-insensitive substrings. Nil fields are not applied.
type AuthorFilter struct {
	Name  *string
	Email *string
}

// AuthorCount is an author annotated with a number of articles or reviews.
type AuthorCount struct {
	Author Author `json:"author"`
	Count  int    `json:"count"`
}

// ArticleSummary is an article with its author names and review statistics.
type ArticleSummary struct {
	Article   Article  `json:"article"`
	Authors   []string `json:"authors"`
	Reviews   int      `json:"reviews"`
	AvgRating *float64 `json:"avg_rating"`
}

// Ban is the outcome of banning an author.
type Ban struct {
	Author         Author `json:"author"`
	ReviewsDeleted int    `json:"reviews_deleted"`
}

// Validation bounds.
const (
	MinBirthYear = 1900
	MaxBirthYear = 2005
	MinRating    = 1.0
	MaxRating    = 5.0
)

// Field names for validation
const (
	FieldFullName  = "full_name"
	FieldEmail     = "email"
	FieldBirthYear = "birth_year"
	FieldWebsite   = "website"
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldCategory  = "category"
	FieldRating    = "rating"
	FieldAuthorID  = "author_id"
	FieldArticleID = "article_id"
)
