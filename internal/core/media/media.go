// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import "time"

// BaseMedia holds the fields shared by every media kind.
//
// Lists are ordered newest first, then by title.
type BaseMedia struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	CreatedAt   time.Time `json:"created_at"`
}

// Book is identified by a unique ISBN.
type Book struct {
	BaseMedia
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

type Movie struct {
	BaseMedia
	Director string `json:"director"`
}

type Music struct {
	BaseMedia
	Artist string `json:"artist"`
}

// Customer is a validated contact record.
type Customer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	WebsiteURL  string `json:"website_url"`
}

// Field names for validation
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldGenre       = "genre"
	FieldAuthor      = "author"
	FieldISBN        = "isbn"
	FieldDirector    = "director"
	FieldArtist      = "artist"
	FieldName        = "name"
	FieldAge         = "age"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldWebsiteURL  = "website_url"
)
