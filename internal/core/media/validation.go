// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"regexp"

	"github.com/taibuivan/querylab/internal/platform/validate"
)

var (
	namePattern  = regexp.MustCompile(`^[\p{L} ]+$`)
	phonePattern = regexp.MustCompile(`^\+359\d{9}$`)
)

// MinCustomerAge is the youngest accepted customer.
const MinCustomerAge = 18

func validateBase(base *BaseMedia) *validate.Validator {
	return (&validate.Validator{}).
		Required(FieldTitle, base.Title).
		MaxLen(FieldTitle, base.Title, 100).
		Required(FieldDescription, base.Description).
		Required(FieldGenre, base.Genre).
		MaxLen(FieldGenre, base.Genre, 50)
}

// ValidateBook checks a book before it is written.
func ValidateBook(book *Book) error {
	return validateBase(&book.BaseMedia).
		MinLenMessage(FieldAuthor, book.Author, 5, "Author must be at least 5 characters long").
		MaxLen(FieldAuthor, book.Author, 100).
		MinLenMessage(FieldISBN, book.ISBN, 6, "ISBN must be at least 6 characters long").
		MaxLen(FieldISBN, book.ISBN, 20).
		Err()
}

// ValidateMovie checks a movie before it is written.
func ValidateMovie(movie *Movie) error {
	return validateBase(&movie.BaseMedia).
		MinLenMessage(FieldDirector, movie.Director, 8, "Director must be at least 8 characters long").
		MaxLen(FieldDirector, movie.Director, 100).
		Err()
}

// ValidateMusic checks a music record before it is written.
func ValidateMusic(music *Music) error {
	return validateBase(&music.BaseMedia).
		MinLenMessage(FieldArtist, music.Artist, 9, "Artist must be at least 9 characters long").
		MaxLen(FieldArtist, music.Artist, 100).
		Err()
}

// ValidateCustomer checks a customer before it is written.
func ValidateCustomer(customer *Customer) error {
	return (&validate.Validator{}).
		Pattern(FieldName, customer.Name, namePattern, "Name can only contain letters and spaces").
		MaxLen(FieldName, customer.Name, 100).
		MinMessage(FieldAge, customer.Age, MinCustomerAge, "Age must be greater than 18").
		EmailMessage(FieldEmail, customer.Email, "Enter a valid email address").
		Pattern(FieldPhoneNumber, customer.PhoneNumber, phonePattern, "Phone number must start with '+359' followed by 9 digits").
		URLMessage(FieldWebsiteURL, customer.WebsiteURL, "Enter a valid URL").
		Err()
}
