// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/media"
	"github.com/taibuivan/querylab/internal/platform/apperr"
)

func newService(repo media.Repository) *media.Service {
	return media.NewService(repo, slog.New(slog.DiscardHandler))
}

var shelved = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func base(title string, age time.Duration) media.BaseMedia {
	return media.BaseMedia{Title: title, Description: "A description.", Genre: "Drama", CreatedAt: shelved.Add(-age)}
}

// assertCollections creates one of each media kind and checks the default ordering.
func assertCollections(t *testing.T, service *media.Service) {
	t.Helper()
	ctx := context.Background()

	for _, book := range []media.Book{
		{BaseMedia: base("Dune", time.Hour), Author: "Frank Herbert", ISBN: "9780441013593"},
		{BaseMedia: base("Emma", 0), Author: "Jane Austen", ISBN: "9780141439587"},
		{BaseMedia: base("Beloved", 0), Author: "Toni Morrison", ISBN: "9781400033416"},
	} {
		created := book
		require.NoError(t, service.CreateBook(ctx, &created))
		assert.Positive(t, created.ID)
	}

	books, err := service.ListBooks(ctx)
	require.NoError(t, err)
	titles := make([]string, 0, len(books))
	for _, book := range books {
		titles = append(titles, book.Title)
	}
	assert.Equal(t, []string{"Beloved", "Emma", "Dune"}, titles)

	duplicate := media.Book{BaseMedia: base("Dune Messiah", 0), Author: "Frank Herbert", ISBN: "9780441013593"}
	err = service.CreateBook(ctx, &duplicate)
	require.True(t, apperr.HasCode(err, "CONFLICT"))
	assert.Equal(t, "Book with this isbn already exists", apperr.As(err).Message)

	movie := media.Movie{BaseMedia: base("Heat", 0), Director: "Michael Mann"}
	require.NoError(t, service.CreateMovie(ctx, &movie))
	movies, err := service.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Michael Mann", movies[0].Director)

	music := media.Music{BaseMedia: base("Blue", 0), Artist: "Joni Mitchell"}
	require.NoError(t, service.CreateMusic(ctx, &music))
	records, err := service.ListMusic(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, shelved.Equal(records[0].CreatedAt))

	customer := media.Customer{Name: "Maria Ivanova", Age: 30, Email: "maria@example.com", PhoneNumber: "+359888123456", WebsiteURL: "https://maria.bg"}
	require.NoError(t, service.CreateCustomer(ctx, &customer))
	stored, err := service.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer, *stored)
}
