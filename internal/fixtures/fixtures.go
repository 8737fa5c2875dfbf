// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package fixtures loads a small, deterministic demo data set through the exercise services.

Every record goes through the same service call an API client would use, so fixtures are
validated and logged like any other write. Dates are fixed so report output never depends on
the day the server started.
*/
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/taibuivan/querylab/internal/core/artifact"
	"github.com/taibuivan/querylab/internal/core/catalog"
	"github.com/taibuivan/querylab/internal/core/cinema"
	"github.com/taibuivan/querylab/internal/core/hero"
	"github.com/taibuivan/querylab/internal/core/media"
	"github.com/taibuivan/querylab/internal/core/press"
	"github.com/taibuivan/querylab/internal/core/pricing"
	"github.com/taibuivan/querylab/internal/core/shop"
	"github.com/taibuivan/querylab/pkg/pointer"
)

// epoch anchors every timestamp in the data set.
var epoch = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// # Cinema

// Cinema seeds three directors, three actors and four movies.
func Cinema(ctx context.Context, service *cinema.Service) error {
	directors := []cinema.Director{
		{Person: cinema.Person{FullName: "Christopher Nolan", Nationality: "British"}, YearsOfExperience: 25},
		{Person: cinema.Person{FullName: "Steven Spielberg", Nationality: "American"}, YearsOfExperience: 50},
		{Person: cinema.Person{FullName: "Sofia Coppola", Nationality: "American"}, YearsOfExperience: 30},
	}
	for i := range directors {
		if err := service.CreateDirector(ctx, &directors[i]); err != nil {
			return fmt.Errorf("fixtures: director %q: %w", directors[i].FullName, err)
		}
	}

	actors := []cinema.Actor{
		{Person: cinema.Person{FullName: "Leonardo DiCaprio", Nationality: "American"}, Awarded: cinema.Awarded{IsAwarded: true}},
		{Person: cinema.Person{FullName: "Tom Hardy", Nationality: "British"}},
		{Person: cinema.Person{FullName: "Anne Hathaway", Nationality: "American"}},
	}
	for i := range actors {
		if err := service.CreateActor(ctx, &actors[i]); err != nil {
			return fmt.Errorf("fixtures: actor %q: %w", actors[i].FullName, err)
		}
	}

	movies := []cinema.Movie{
		{
			Title: "Inception", ReleaseDate: date(2010, time.July, 16), Genre: cinema.GenreAction, Rating: 8.8,
			Awarded: cinema.Awarded{IsAwarded: true}, DirectorID: directors[0].ID,
			StarringActorID: pointer.To(actors[0].ID), ActorIDs: []int64{actors[0].ID, actors[1].ID},
		},
		{
			Title: "Interstellar", ReleaseDate: date(2014, time.November, 7), Genre: cinema.GenreDrama, Rating: 8.6,
			DirectorID: directors[0].ID, ActorIDs: []int64{actors[2].ID},
		},
		{
			Title: "Jurassic Park", ReleaseDate: date(1993, time.June, 11), Rating: 8.2,
			IsClassic: true, Awarded: cinema.Awarded{IsAwarded: true}, DirectorID: directors[1].ID,
		},
		{
			Title: "Lost in Translation", ReleaseDate: date(2003, time.September, 12), Genre: cinema.GenreComedy, Rating: 7.7,
			DirectorID: directors[2].ID,
		},
	}
	for i := range movies {
		if err := service.CreateMovie(ctx, &movies[i]); err != nil {
			return fmt.Errorf("fixtures: movie %q: %w", movies[i].Title, err)
		}
	}
	return nil
}

// # Shop

// Shop seeds three profiles, four products and five orders.
func Shop(ctx context.Context, service *shop.Service) error {
	profiles := []shop.Profile{
		{FullName: "Alice Johnson", Email: "alice@example.com", PhoneNumber: "+359888000001", Address: "1 Vitosha Blvd", IsActive: true},
		{FullName: "Bob Smith", Email: "bob@example.com", PhoneNumber: "+359888000002", Address: "2 Rakovski St", IsActive: true},
		{FullName: "Carol White", Email: "carol@example.com", PhoneNumber: "+359888000003", Address: "3 Shipka St"},
	}
	for i := range profiles {
		if err := service.CreateProfile(ctx, &profiles[i]); err != nil {
			return fmt.Errorf("fixtures: profile %q: %w", profiles[i].FullName, err)
		}
	}

	products := []shop.Product{
		{Name: "Laptop", Description: "14 inch", Price: 999.99, InStock: 2, IsAvailable: true},
		{Name: "Mouse", Description: "Wireless", Price: 19.99, InStock: 10, IsAvailable: true},
		{Name: "Keyboard", Description: "Mechanical", Price: 49.99, InStock: 4, IsAvailable: true},
		{Name: "Monitor", Description: "27 inch", Price: 199.99, InStock: 3, IsAvailable: true},
	}
	for i := range products {
		if err := service.CreateProduct(ctx, &products[i]); err != nil {
			return fmt.Errorf("fixtures: product %q: %w", products[i].Name, err)
		}
	}

	orders := []struct {
		profile  int
		products []int
		total    float64
	}{
		{0, []int{0, 1}, 1019.98},
		{0, []int{3}, 199.99},
		{1, []int{1, 2, 3}, 269.97},
		{1, []int{2}, 49.99},
		{2, []int{1}, 19.99},
	}
	for i, planned := range orders {
		order := &shop.Order{
			ProfileID:   profiles[planned.profile].ID,
			TotalPrice:  planned.total,
			Timestamped: shop.Timestamped{CreationDate: epoch.Add(time.Duration(i+1) * time.Hour)},
		}
		for _, product := range planned.products {
			order.ProductIDs = append(order.ProductIDs, products[product].ID)
		}
		if err := service.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("fixtures: order %d: %w", i+1, err)
		}
	}
	return nil
}

// # Press

// Press seeds three authors, two articles and three reviews.
func Press(ctx context.Context, service *press.Service) error {
	authors := []press.Author{
		{FullName: "Alice Johnson", Email: "alice@example.com", BirthYear: 1985, Website: pointer.To("https://alice.dev")},
		{FullName: "Bob Smith", Email: "bob@example.com", BirthYear: 1979},
		{FullName: "Carol White", Email: "carol@example.com", BirthYear: 1990},
	}
	for i := range authors {
		if err := service.CreateAuthor(ctx, &authors[i]); err != nil {
			return fmt.Errorf("fixtures: author %q: %w", authors[i].FullName, err)
		}
	}

	articles := []press.Article{
		{
			Title: "Learning Go Concurrency", Content: "Goroutines, channels and select.",
			AuthorIDs: []int64{authors[0].ID}, PublishedOn: date(2024, time.March, 5),
		},
		{
			Title: "Quantum Computing Basics", Content: "Qubits and superposition explained.", Category: press.CategoryScience,
			AuthorIDs: []int64{authors[0].ID, authors[1].ID}, PublishedOn: date(2024, time.January, 10),
		},
	}
	for i := range articles {
		if err := service.CreateArticle(ctx, &articles[i]); err != nil {
			return fmt.Errorf("fixtures: article %q: %w", articles[i].Title, err)
		}
	}

	reviews := []press.Review{
		{Content: "Clear and practical guide.", Rating: 4.5, AuthorID: authors[1].ID, ArticleID: articles[0].ID},
		{Content: "Good, could use more examples.", Rating: 3.5, AuthorID: authors[2].ID, ArticleID: articles[0].ID},
		{Content: "Best primer I have read.", Rating: 5.0, AuthorID: authors[2].ID, ArticleID: articles[1].ID},
	}
	for i := range reviews {
		reviews[i].PublishedOn = date(2024, time.April, 1)
		if err := service.CreateReview(ctx, &reviews[i]); err != nil {
			return fmt.Errorf("fixtures: review %d: %w", i+1, err)
		}
	}
	return nil
}

// # Catalog

// Catalog seeds five listings and four video games.
func Catalog(ctx context.Context, service *catalog.Service) error {
	listings := []catalog.Listing{
		{PropertyType: "House", Price: 150000, Bedrooms: 3, Location: "Sofia"},
		{PropertyType: "Apartment", Price: 85000, Bedrooms: 2, Location: "Sofia"},
		{PropertyType: "Apartment", Price: 60000, Bedrooms: 2, Location: "Plovdiv"},
		{PropertyType: "Villa", Price: 320000, Bedrooms: 5, Location: "Varna"},
		{PropertyType: "Studio", Price: 45000, Bedrooms: 1, Location: "Sofia"},
	}
	for i := range listings {
		if err := service.CreateListing(ctx, &listings[i]); err != nil {
			return fmt.Errorf("fixtures: listing %d: %w", i+1, err)
		}
	}

	games := []catalog.VideoGame{
		{Title: "The Witcher 3", Genre: "RPG", ReleaseYear: 2015, Rating: 9.5},
		{Title: "Hades", Genre: "Roguelike", ReleaseYear: 2020, Rating: 9.0},
		{Title: "Cyberpunk 2077", Genre: "RPG", ReleaseYear: 2020, Rating: 7.2},
		{Title: "Fall Guys", Genre: "Party", ReleaseYear: 2020, Rating: 6.0},
	}
	for i := range games {
		if err := service.CreateVideoGame(ctx, &games[i]); err != nil {
			return fmt.Errorf("fixtures: video game %q: %w", games[i].Title, err)
		}
	}
	return nil
}

// # Media

// Media seeds one record of every media kind and one customer.
func Media(ctx context.Context, service *media.Service) error {
	book := &media.Book{
		BaseMedia: media.BaseMedia{Title: "Dune", Description: "Spice and sandworms.", Genre: "Sci-Fi", CreatedAt: epoch},
		Author:    "Frank Herbert", ISBN: "9780441013593",
	}
	if err := service.CreateBook(ctx, book); err != nil {
		return fmt.Errorf("fixtures: book: %w", err)
	}

	movie := &media.Movie{
		BaseMedia: media.BaseMedia{Title: "Arrival", Description: "Linguists meet heptapods.", Genre: "Sci-Fi", CreatedAt: epoch.Add(time.Hour)},
		Director:  "Denis Villeneuve",
	}
	if err := service.CreateMovie(ctx, movie); err != nil {
		return fmt.Errorf("fixtures: movie: %w", err)
	}

	music := &media.Music{
		BaseMedia: media.BaseMedia{Title: "Kind of Blue", Description: "Modal jazz landmark.", Genre: "Jazz", CreatedAt: epoch.Add(2 * time.Hour)},
		Artist:    "Miles Davis",
	}
	if err := service.CreateMusic(ctx, music); err != nil {
		return fmt.Errorf("fixtures: music: %w", err)
	}

	customer := &media.Customer{
		Name: "Maria Ivanova", Age: 29, Email: "maria@example.com",
		PhoneNumber: "+359888123456", WebsiteURL: "https://maria.example.com",
	}
	if err := service.CreateCustomer(ctx, customer); err != nil {
		return fmt.Errorf("fixtures: customer: %w", err)
	}
	return nil
}

// # Pricing

// Pricing seeds two products.
func Pricing(ctx context.Context, service *pricing.Service) error {
	for _, product := range []*pricing.Product{
		{Name: "Desk", Price: 250.4},
		{Name: "Chair", Price: 89.9},
	} {
		if err := service.CreateProduct(ctx, product); err != nil {
			return fmt.Errorf("fixtures: priced product %q: %w", product.Name, err)
		}
	}
	return nil
}

// # Heroes

// Heroes seeds one hero for each ability.
func Heroes(ctx context.Context, service *hero.Service) error {
	for _, item := range []*hero.Hero{
		{Name: "Peter Parker", HeroTitle: "Spider-Man", Energy: hero.MaxEnergy},
		{Name: "Barry Allen", HeroTitle: "The Flash", Energy: 70},
	} {
		if err := service.CreateHero(ctx, item); err != nil {
			return fmt.Errorf("fixtures: hero %q: %w", item.Name, err)
		}
	}
	return nil
}

// # Artifacts

// Artifacts seeds three artifacts, one of which may be renamed.
func Artifacts(ctx context.Context, service *artifact.Service) error {
	for _, item := range []*artifact.Artifact{
		{Name: "Sword of Light", Origin: "Avalon", Age: 1200, Description: "Glows at dusk.", IsMagical: true},
		{Name: "Clay Pot", Origin: "Thrace", Age: 2400},
		{Name: "Amulet", Origin: "Babylon", Age: 120, IsMagical: true},
	} {
		if _, err := service.CreateArtifact(ctx, item); err != nil {
			return fmt.Errorf("fixtures: artifact %q: %w", item.Name, err)
		}
	}
	return nil
}
