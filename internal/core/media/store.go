// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import "context"

// Repository defines the persistence operations for media and customers.
//
// List methods order by creation time descending, then title.
type Repository interface {
	CreateBook(ctx context.Context, book *Book) error
	ListBooks(ctx context.Context) ([]Book, error)
	CreateMovie(ctx context.Context, movie *Movie) error
	ListMovies(ctx context.Context) ([]Movie, error)
	CreateMusic(ctx context.Context, music *Music) error
	ListMusic(ctx context.Context) ([]Music, error)

	CreateCustomer(ctx context.Context, customer *Customer) error
	GetCustomer(ctx context.Context, id int64) (*Customer, error)
}
