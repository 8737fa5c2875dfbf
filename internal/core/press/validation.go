// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package press

import "github.com/taibuivan/querylab/internal/platform/validate"

// ValidateAuthor checks an author before it is written.
func ValidateAuthor(author *Author) error {
	validator := (&validate.Validator{}).
		MinLen(FieldFullName, author.FullName, 3).
		MaxLen(FieldFullName, author.FullName, 100).
		Email(FieldEmail, author.Email).
		Range(FieldBirthYear, author.BirthYear, MinBirthYear, MaxBirthYear)

	if author.Website != nil {
		validator.URL(FieldWebsite, *author.Website)
	}
	return validator.Err()
}

// ValidateArticle checks an article before it is written.
func ValidateArticle(article *Article) error {
	return (&validate.Validator{}).
		MinLen(FieldTitle, article.Title, 5).
		MaxLen(FieldTitle, article.Title, 200).
		MinLen(FieldContent, article.Content, 10).
		OneOf(FieldCategory, article.Category, CategoryTechnology, CategoryScience, CategoryEducation).
		Err()
}

// ValidateReview checks a review before it is written.
func ValidateReview(review *Review) error {
	return (&validate.Validator{}).
		MinLen(FieldContent, review.Content, 10).
		FloatRange(FieldRating, review.Rating, MinRating, MaxRating).
		Custom(FieldAuthorID, review.AuthorID < 1, "This field is required").
		Custom(FieldArticleID, review.ArticleID < 1, "This field is required").
		Err()
}
