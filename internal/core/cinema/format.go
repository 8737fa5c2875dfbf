// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cinema

import (
	"fmt"
	"strings"

	"github.com/taibuivan/querylab/pkg/convert"
	"github.com/taibuivan/querylab/pkg/pointer"
	"github.com/taibuivan/querylab/pkg/slice"
)

// FormatDirectors renders one line per director.
func FormatDirectors(directors []Director) string {
	return slice.Join(directors, "\n", func(director Director) string {
		return fmt.Sprintf("Director: %s, nationality: %s, experience: %d",
			director.FullName, director.Nationality, director.YearsOfExperience)
	})
}

// FormatDirectorMovieCounts renders one line per director with their movie count.
func FormatDirectorMovieCounts(rows []DirectorMovies) string {
	return slice.Join(rows, "\n", func(row DirectorMovies) string {
		return fmt.Sprintf("%s, movies: %d", row.Director.FullName, row.Movies)
	})
}

// FormatTopDirector renders the director with the most movies.
func FormatTopDirector(row DirectorMovies) string {
	return fmt.Sprintf("Top Director: %s, movies: %d.", row.Director.FullName, row.Movies)
}

// FormatTopActor renders the actor starring in the most movies.
// Returns "" when the actor stars in nothing.
func FormatTopActor(row *StarringActor) string {
	if row == nil || row.Movies == 0 {
		return ""
	}
	return fmt.Sprintf("Top Actor: %s, starring in movies: %s, movies average rating: %s",
		row.Actor.FullName,
		strings.Join(row.Titles, ", "),
		convert.Decimal(pointer.Val(row.AvgRating), 1),
	)
}

// FormatActorsByMovieCount renders the participation ranking.
// Returns "" when nobody is cast in anything.
func FormatActorsByMovieCount(rows []ActorMovies) string {
	if len(rows) == 0 || rows[0].Movies == 0 {
		return ""
	}
	return slice.Join(rows, "\n", func(row ActorMovies) string {
		return fmt.Sprintf("%s, participated in %d movies", row.Actor.FullName, row.Movies)
	})
}

// FormatAwardedMovie renders the top rated awarded movie.
func FormatAwardedMovie(row *AwardedMovie) string {
	if row == nil {
		return ""
	}
	return fmt.Sprintf("Top rated awarded movie: %s, rating: %s. Starring actor: %s. Cast: %s.",
		row.Movie.Title,
		convert.Decimal(row.Movie.Rating, 1),
		pointer.Fallback(row.StarringActor, "N/A"),
		strings.Join(row.Cast, ", "),
	)
}

// FormatRatingIncrease renders the outcome of the bulk rating update.
func FormatRatingIncrease(updated int) string {
	if updated == 0 {
		return "No ratings increased."
	}
	return fmt.Sprintf("Rating increased for %d movies.", updated)
}
