// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package press_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/press"
	"github.com/taibuivan/querylab/pkg/pointer"
)

func newService(repo press.Repository) *press.Service {
	return press.NewService(repo, nil, slog.New(slog.DiscardHandler))
}

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 9, 0, 0, 0, time.UTC)
}

// seedPress loads four authors, three articles and four reviews.
func seedPress(t *testing.T, service *press.Service) {
	t.Helper()
	ctx := context.Background()

	authors := map[string]int64{}
	for _, author := range []press.Author{
		{FullName: "Alice Johnson", Email: "alice@example.com", BirthYear: 1985, Website: pointer.To("https://alice.dev")},
		{FullName: "Bob Smith", Email: "bob@example.com", BirthYear: 1979},
		{FullName: "Carol White", Email: "carol@example.com", BirthYear: 1990},
		{FullName: "Dan Brown", Email: "dan@news.com", BirthYear: 1964},
	} {
		created := author
		require.NoError(t, service.CreateAuthor(ctx, &created))
		authors[created.FullName] = created.ID
	}

	articles := []press.Article{
		{
			Title: "Quantum Computing Basics", Content: "Qubits and superposition explained.", Category: press.CategoryScience,
			AuthorIDs: []int64{authors["Bob Smith"], authors["Alice Johnson"]}, PublishedOn: day(time.January, 10),
		},
		{
			Title: "Learning Go Concurrency", Content: "Goroutines, channels and select.",
			AuthorIDs: []int64{authors["Alice Johnson"]}, PublishedOn: day(time.March, 5),
		},
		{
			Title: "Teaching With Games", Content: "Play as a classroom tool.", Category: press.CategoryEducation,
			AuthorIDs: []int64{authors["Carol White"]}, PublishedOn: day(time.February, 1),
		},
	}
	for i := range articles {
		require.NoError(t, service.CreateArticle(ctx, &articles[i]))
	}

	for _, review := range []press.Review{
		{Content: "Clear and practical guide.", Rating: 4.5, AuthorID: authors["Bob Smith"], ArticleID: articles[1].ID},
		{Content: "Good, could use more examples.", Rating: 3.5, AuthorID: authors["Carol White"], ArticleID: articles[1].ID},
		{Content: "Best primer I have read.", Rating: 5.0, AuthorID: authors["Bob Smith"], ArticleID: articles[0].ID},
		{Content: "A decent overview of the topic.", Rating: 3.0, AuthorID: authors["Dan Brown"], ArticleID: articles[2].ID},
	} {
		created := review
		created.PublishedOn = day(time.April, 1)
		require.NoError(t, service.CreateReview(ctx, &created))
	}
}

// assertReports checks every read-only report against the seeded data set.
func assertReports(t *testing.T, service *press.Service) {
	t.Helper()
	ctx := context.Background()

	report, err := service.SearchAuthors(ctx, pointer.To("A"), pointer.To("example"))
	require.NoError(t, err)
	assert.Equal(t, "Author: Carol White, email: carol@example.com, status: Not Banned\n"+
		"Author: Alice Johnson, email: alice@example.com, status: Not Banned", report)

	rows, err := service.AuthorsByArticleCount(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	ranking := make([]string, 0, len(rows))
	for _, row := range rows {
		ranking = append(ranking, row.Author.Email)
	}
	assert.Equal(t, []string{"alice@example.com", "bob@example.com", "carol@example.com", "dan@news.com"}, ranking)
	assert.Equal(t, []int{2, 1, 1, 0}, []int{rows[0].Count, rows[1].Count, rows[2].Count, rows[3].Count})

	report, err = service.TopPublisher(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Top Author: Alice Johnson with 2 published articles.", report)

	report, err = service.TopReviewer(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Top Reviewer: Bob Smith with 2 published reviews.", report)

	report, err = service.LatestArticle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "The latest article is: Learning Go Concurrency. Authors: Alice Johnson. Reviewed: 2 times. Average Rating: 4.00.", report)

	report, err = service.TopRatedArticle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "The top-rated article is: Quantum Computing Basics, with an average rating of 5.00, reviewed 1 times.", report)
}

// assertBan bans the top reviewer and checks the reports that depend on reviews.
func assertBan(t *testing.T, service *press.Service) {
	t.Helper()
	ctx := context.Background()

	report, err := service.BanAuthor(ctx, pointer.To("bob@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Author: Bob Smith is banned! 2 reviews deleted.", report)

	report, err = service.SearchAuthors(ctx, pointer.To("bob"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Author: Bob Smith, email: bob@example.com, status: Banned", report)

	report, err = service.TopRatedArticle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "The top-rated article is: Learning Go Concurrency, with an average rating of 3.50, reviewed 1 times.", report)

	report, err = service.TopReviewer(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Top Reviewer: Carol White with 1 published reviews.", report)

	report, err = service.BanAuthor(ctx, pointer.To("nobody@example.com"))
	require.NoError(t, err)
	assert.Equal(t, press.NoAuthorsBanned, report)
}
