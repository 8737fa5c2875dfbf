// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package press

import (
	"fmt"
	"strings"

	"github.com/taibuivan/querylab/pkg/convert"
	"github.com/taibuivan/querylab/pkg/slice"
)

// NoAuthorsBanned is returned when a ban matches nobody.
const NoAuthorsBanned = "No authors banned."

// FormatAuthors renders the author search results.
func FormatAuthors(authors []Author) string {
	return slice.Join(authors, "\n", func(author Author) string {
		status := "Not Banned"
		if author.IsBanned {
			status = "Banned"
		}
		return fmt.Sprintf("Author: %s, email: %s, status: %s", author.FullName, author.Email, status)
	})
}

// FormatTopPublisher renders the author with the most articles; "" when nobody published.
func FormatTopPublisher(row AuthorCount) string {
	if row.Count == 0 {
		return ""
	}
	return fmt.Sprintf("Top Author: %s with %d published articles.", row.Author.FullName, row.Count)
}

// FormatTopReviewer renders the author with the most reviews; "" when nobody reviewed.
func FormatTopReviewer(row AuthorCount) string {
	if row.Count == 0 {
		return ""
	}
	return fmt.Sprintf("Top Reviewer: %s with %d published reviews.", row.Author.FullName, row.Count)
}

// FormatLatestArticle renders the newest article. An unreviewed article averages "0.00".
func FormatLatestArticle(summary *ArticleSummary) string {
	if summary == nil {
		return ""
	}

	average := "0.00"
	if summary.AvgRating != nil {
		average = convert.Decimal(*summary.AvgRating, 2)
	}
	return fmt.Sprintf("The latest article is: %s. Authors: %s. Reviewed: %d times. Average Rating: %s.",
		summary.Article.Title, strings.Join(summary.Authors, ", "), summary.Reviews, average)
}

// FormatTopRatedArticle renders the best rated article.
func FormatTopRatedArticle(summary *ArticleSummary) string {
	if summary == nil || summary.AvgRating == nil {
		return ""
	}
	return fmt.Sprintf("The top-rated article is: %s, with an average rating of %s, reviewed %d times.",
		summary.Article.Title, convert.Decimal(*summary.AvgRating, 2), summary.Reviews)
}

// FormatBan renders the outcome of a ban.
func FormatBan(ban *Ban) string {
	if ban == nil {
		return NoAuthorsBanned
	}
	return fmt.Sprintf("Author: %s is banned! %d reviews deleted.", ban.Author.FullName, ban.ReviewsDeleted)
}
