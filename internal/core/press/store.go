// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package press

import "context"

// Repository defines the persistence operations for authors, articles and reviews.
type Repository interface {
	CreateAuthor(ctx context.Context, author *Author) error
	GetAuthor(ctx context.Context, id int64) (*Author, error)
	CreateArticle(ctx context.Context, article *Article) error
	GetArticle(ctx context.Context, id int64) (*Article, error)
	CreateReview(ctx context.Context, review *Review) error
	GetReview(ctx context.Context, id int64) (*Review, error)

	// SearchAuthors applies the filter and orders by full name descending.
	SearchAuthors(ctx context.Context, filter AuthorFilter) ([]Author, error)

	// AuthorsByArticleCount ranks every author by articles written desc, then email.
	AuthorsByArticleCount(ctx context.Context, limit int) ([]AuthorCount, error)

	// AuthorsByReviewCount ranks every author by reviews written desc, then email.
	AuthorsByReviewCount(ctx context.Context, limit int) ([]AuthorCount, error)

	// LatestArticle returns the newest article, or nil when there are none.
	LatestArticle(ctx context.Context) (*ArticleSummary, error)

	// TopRatedArticle returns the reviewed article with the best average rating, ties by
	// title, or nil when nothing has been reviewed.
	TopRatedArticle(ctx context.Context) (*ArticleSummary, error)

	// BanAuthor atomically deletes the reviews of the author with this exact email and marks
	// them banned. It returns nil when no author has the email.
	BanAuthor(ctx context.Context, email string) (*Ban, error)
}
