// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cinema

import "time"

// Genres a movie may be filed under.
const (
	GenreAction = "Action"
	GenreComedy = "Comedy"
	GenreDrama  = "Drama"
	GenreOther  = "Other"
)

// Defaults applied to people created without the optional fields.
var (
	DefaultBirthDate   = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	DefaultNationality = "Unknown"
)

// Person holds the fields shared by directors and actors.
type Person struct {
	FullName    string    `json:"full_name"`
	BirthDate   time.Time `json:"birth_date"`
	Nationality string    `json:"nationality"`
}

// Awarded marks records that may have won an award.
type Awarded struct {
	IsAwarded bool `json:"is_awarded"`
}

// Tracked carries the timestamp refreshed on every write.
type Tracked struct {
	LastUpdated time.Time `json:"last_updated"`
}

// Director directs any number of movies.
type Director struct {
	ID int64 `json:"id"`
	Person
	YearsOfExperience int `json:"years_of_experience"`
}

// Actor stars in, or is cast in, movies.
type Actor struct {
	ID int64 `json:"id"`
	Person
	Awarded
	Tracked
}

// Movie belongs to one director and optionally has a starring actor plus a cast.
type Movie struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ReleaseDate time.Time `json:"release_date"`
	Storyline   *string   `json:"storyline"`
	Genre       string    `json:"genre"`
	Rating      float64   `json:"rating"`
	IsClassic   bool      `json:"is_classic"`
	Awarded
	Tracked
	DirectorID      int64   `json:"director_id"`
	StarringActorID *int64  `json:"starring_actor_id"`
	ActorIDs        []int64 `json:"actor_ids"`
}

// DirectorFilter selects directors by case-insensitive substrings. Nil fields are not applied.
type DirectorFilter struct {
	Name        *string
	Nationality *string
}

// DirectorMovies is a director annotated with the number of movies they directed.
type DirectorMovies struct {
	Director Director `json:"director"`
	Movies   int      `json:"movies"`
}

// StarringActor is an actor annotated with the movies they star in.
type StarringActor struct {
	Actor     Actor    `json:"actor"`
	Movies    int      `json:"movies"`
	AvgRating *float64 `json:"avg_rating"`
	Titles    []string `json:"titles"`
}

// ActorMovies is an actor annotated with the number of movies they are cast in.
type ActorMovies struct {
	Actor  Actor `json:"actor"`
	Movies int   `json:"movies"`
}

// AwardedMovie is an awarded movie with its starring actor and cast names resolved.
type AwardedMovie struct {
	Movie         Movie    `json:"movie"`
	StarringActor *string  `json:"starring_actor"`
	Cast          []string `json:"cast"`
}

// Rating bounds and the bulk increment step.
const (
	MinRating       = 0.0
	MaxRating       = 10.0
	RatingIncrement = 0.1
)

// Field names for validation
const (
	FieldFullName          = "full_name"
	FieldNationality       = "nationality"
	FieldYearsOfExperience = "years_of_experience"
	FieldTitle             = "title"
	FieldReleaseDate       = "release_date"
	FieldGenre             = "genre"
	FieldRating            = "rating"
	FieldDirectorID        = "director_id"
)
