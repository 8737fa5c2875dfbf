// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cinema_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/cinema"
	"github.com/taibuivan/querylab/pkg/pointer"
)

func newService(repo cinema.Repository) *cinema.Service {
	return cinema.NewService(repo, nil, slog.New(slog.DiscardHandler))
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seedCinema loads four directors, four actors and five movies.
func seedCinema(t *testing.T, service *cinema.Service) {
	t.Helper()
	ctx := context.Background()

	directors := map[string]*cinema.Director{}
	for _, director := range []cinema.Director{
		{Person: cinema.Person{FullName: "Christopher Nolan", Nationality: "British"}, YearsOfExperience: 25},
		{Person: cinema.Person{FullName: "Steven Spielberg", Nationality: "American"}, YearsOfExperience: 50},
		{Person: cinema.Person{FullName: "Sofia Coppola", Nationality: "American"}, YearsOfExperience: 30},
		{Person: cinema.Person{FullName: "Quentin Tarantino", Nationality: "American"}, YearsOfExperience: 30},
	} {
		created := director
		require.NoError(t, service.CreateDirector(ctx, &created))
		directors[created.FullName] = &created
	}

	actors := map[string]int64{}
	for _, actor := range []cinema.Actor{
		{Person: cinema.Person{FullName: "Leonardo DiCaprio"}, Awarded: cinema.Awarded{IsAwarded: true}},
		{Person: cinema.Person{FullName: "Tom Hardy"}},
		{Person: cinema.Person{FullName: "Matthew McConaughey"}},
		{Person: cinema.Person{FullName: "Anne Hathaway"}},
	} {
		created := actor
		require.NoError(t, service.CreateActor(ctx, &created))
		actors[created.FullName] = created.ID
	}

	movies := []cinema.Movie{
		{
			Title: "Inception", ReleaseDate: date(2010, 7, 16), Genre: cinema.GenreAction, Rating: 8.8,
			Awarded: cinema.Awarded{IsAwarded: true}, DirectorID: directors["Christopher Nolan"].ID,
			StarringActorID: pointer.To(actors["Leonardo DiCaprio"]),
			ActorIDs:        []int64{actors["Leonardo DiCaprio"], actors["Tom Hardy"]},
		},
		{
			Title: "Interstellar", ReleaseDate: date(2014, 11, 7), Genre: cinema.GenreDrama, Rating: 8.6,
			Awarded: cinema.Awarded{IsAwarded: true}, DirectorID: directors["Christopher Nolan"].ID,
			StarringActorID: pointer.To(actors["Matthew McConaughey"]),
			ActorIDs:        []int64{actors["Matthew McConaughey"], actors["Anne Hathaway"]},
		},
		{
			Title: "The Dark Knight Rises", ReleaseDate: date(2012, 7, 20), Genre: cinema.GenreAction, Rating: 7.8,
			IsClassic: true, DirectorID: directors["Christopher Nolan"].ID,
			ActorIDs: []int64{actors["Tom Hardy"], actors["Anne Hathaway"]},
		},
		{
			Title: "Jurassic Park", ReleaseDate: date(1993, 6, 11), Rating: 8.2,
			IsClassic: true, Awarded: cinema.Awarded{IsAwarded: true}, DirectorID: directors["Steven Spielberg"].ID,
		},
		{
			Title: "Once Upon a Time in Hollywood", ReleaseDate: date(2019, 7, 26), Genre: cinema.GenreComedy, Rating: 7.6,
			DirectorID:      directors["Quentin Tarantino"].ID,
			StarringActorID: pointer.To(actors["Leonardo DiCaprio"]),
			ActorIDs:        []int64{actors["Leonardo DiCaprio"]},
		},
	}
	for i := range movies {
		require.NoError(t, service.CreateMovie(ctx, &movies[i]))
	}
}

// assertReports checks every read-only report against the seeded data set.
func assertReports(t *testing.T, service *cinema.Service) {
	t.Helper()
	ctx := context.Background()

	report, err := service.DirectorsByMovieCountReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Christopher Nolan, movies: 3\nQuentin Tarantino, movies: 1\nSteven Spielberg, movies: 1\nSofia Coppola, movies: 0", report)

	report, err = service.TopDirector(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Top Director: Christopher Nolan, movies: 3.", report)

	report, err = service.TopActor(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Top Actor: Leonardo DiCaprio, starring in movies: Inception, Once Upon a Time in Hollywood, movies average rating: 8.2", report)

	report, err = service.ActorsByMovieCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Anne Hathaway, participated in 2 movies\nLeonardo DiCaprio, participated in 2 movies\nTom Hardy, participated in 2 movies", report)

	report, err = service.TopRatedAwardedMovie(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Top rated awarded movie: Inception, rating: 8.8. Starring actor: Leonardo DiCaprio. Cast: Leonardo DiCaprio, Tom Hardy.", report)

	report, err = service.SearchDirectors(ctx, pointer.To("american"), pointer.To("s"))
	require.NoError(t, err)
	assert.Equal(t, "", report, "arguments are name then nationality")

	report, err = service.SearchDirectors(ctx, pointer.To("s"), pointer.To("american"))
	require.NoError(t, err)
	assert.Equal(t, "Director: Sofia Coppola, nationality: American, experience: 30\nDirector: Steven Spielberg, nationality: American, experience: 50", report)
}
