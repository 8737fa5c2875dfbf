// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"log/slog"
)

// Service creates and lists media and customers. None of its reads are cached.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Media

func (service *Service) CreateBook(ctx context.Context, book *Book) error {
	if err := ValidateBook(book); err != nil {
		return err
	}
	if err := service.repo.CreateBook(ctx, book); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "book_created", slog.Int64("book_id", book.ID), slog.String("isbn", book.ISBN))
	return nil
}

func (service *Service) ListBooks(ctx context.Context) ([]Book, error) {
	return service.repo.ListBooks(ctx)
}

func (service *Service) CreateMovie(ctx context.Context, movie *Movie) error {
	if err := ValidateMovie(movie); err != nil {
		return err
	}
	if err := service.repo.CreateMovie(ctx, movie); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "movie_created", slog.Int64("movie_id", movie.ID))
	return nil
}

func (service *Service) ListMovies(ctx context.Context) ([]Movie, error) {
	return service.repo.ListMovies(ctx)
}

func (service *Service) CreateMusic(ctx context.Context, music *Music) error {
	if err := ValidateMusic(music); err != nil {
		return err
	}
	if err := service.repo.CreateMusic(ctx, music); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "music_created", slog.Int64("music_id", music.ID))
	return nil
}

func (service *Service) ListMusic(ctx context.Context) ([]Music, error) {
	return service.repo.ListMusic(ctx)
}

// # Customers

func (service *Service) CreateCustomer(ctx context.Context, customer *Customer) error {
	if err := ValidateCustomer(customer); err != nil {
		return err
	}
	if err := service.repo.CreateCustomer(ctx, customer); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "customer_created", slog.Int64("customer_id", customer.ID))
	return nil
}

func (service *Service) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	return service.repo.GetCustomer(ctx, id)
}
