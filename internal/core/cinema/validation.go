// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cinema

import (
	"github.com/taibuivan/querylab/internal/platform/validate"
	"github.com/taibuivan/querylab/pkg/convert"
)

// ApplyPersonDefaults fills the optional person fields.
func ApplyPersonDefaults(person *Person) {
	if person.BirthDate.IsZero() {
		person.BirthDate = DefaultBirthDate
	}
	if person.Nationality == "" {
		person.Nationality = DefaultNationality
	}
}

func validatePerson(validator *validate.Validator, person Person) {
	validator.
		MinLen(FieldFullName, person.FullName, 2).
		MaxLen(FieldFullName, person.FullName, 120).
		MaxLen(FieldNationality, person.Nationality, 50)
}

// ValidateDirector checks a director before it is written.
func ValidateDirector(director *Director) error {
	validator := &validate.Validator{}
	validatePerson(validator, director.Person)
	validator.Min(FieldYearsOfExperience, director.YearsOfExperience, 0)
	return validator.Err()
}

// ValidateActor checks an actor before it is written.
func ValidateActor(actor *Actor) error {
	validator := &validate.Validator{}
	validatePerson(validator, actor.Person)
	return validator.Err()
}

// ValidateMovie checks a movie before it is written.
func ValidateMovie(movie *Movie) error {
	validator := &validate.Validator{}

	validator.
		MinLen(FieldTitle, movie.Title, 5).
		MaxLen(FieldTitle, movie.Title, 150).
		Custom(FieldReleaseDate, movie.ReleaseDate.IsZero(), "This field is required").
		OneOf(FieldGenre, movie.Genre, GenreAction, GenreComedy, GenreDrama, GenreOther).
		FloatRange(FieldRating, movie.Rating, MinRating, MaxRating).
		Custom(FieldRating, convert.Round(movie.Rating, 1) != movie.Rating, "At most 1 decimal place").
		Custom(FieldDirectorID, movie.DirectorID < 1, "This field is required")

	return validator.Err()
}
