// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package press

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/querylab/internal/platform/database/schema"
	"github.com/taibuivan/querylab/internal/platform/dberr"
	"github.com/taibuivan/querylab/internal/platform/postgres"
	"github.com/taibuivan/querylab/pkg/pointer"
	"github.com/taibuivan/querylab/pkg/query"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	authorColumns  = schema.Select("au", schema.PressAuthor.Columns()...)
	articleColumns = schema.Select("ar", schema.Article.Columns()...)
	reviewColumns  = schema.Select("r", schema.Review.Columns()...)

	// articleSummary selects an article of alias ar with its author names, review count and
	// average rating. Callers append WHERE, ORDER BY and LIMIT.
	articleSummary = fmt.Sprintf(`
		SELECT %s,
		       COALESCE((SELECT array_agg(aa.%s ORDER BY aa.%s) FROM %s aa WHERE aa.%s = ar.%s), '{}'),
		       COALESCE((SELECT array_agg(au.%s ORDER BY au.%s %s)
		                 FROM %s aa JOIN %s au ON au.%s = aa.%s
		                 WHERE aa.%s = ar.%s), '{}'),
		       stats.reviews,
		       stats.avg_rating
		FROM %s ar
		CROSS JOIN LATERAL (
			SELECT COUNT(*) AS reviews, AVG(r.%s) AS avg_rating
			FROM %s r WHERE r.%s = ar.%s
		) stats
	`,
		articleColumns,
		schema.ArticleAuthor.AuthorID, schema.ArticleAuthor.AuthorID, schema.ArticleAuthor.Table, schema.ArticleAuthor.ArticleID, schema.Article.ID,
		schema.PressAuthor.FullName, schema.PressAuthor.FullName, schema.CollateC,
		schema.ArticleAuthor.Table, schema.PressAuthor.Table, schema.PressAuthor.ID, schema.ArticleAuthor.AuthorID,
		schema.ArticleAuthor.ArticleID, schema.Article.ID,
		schema.Article.Table,
		schema.Review.Rating,
		schema.Review.Table, schema.Review.ArticleID, schema.Article.ID,
	)
)

func scanAuthor(row pgx.Row, author *Author, extra ...any) error {
	dest := append([]any{&author.ID, &author.FullName, &author.Email, &author.IsBanned, &author.BirthYear, &author.Website}, extra...)
	return row.Scan(dest...)
}

func scanSummary(row pgx.Row) (*ArticleSummary, error) {
	summary := &ArticleSummary{}
	article := &summary.Article
	err := row.Scan(&article.ID, &article.Title, &article.Content, &article.Category, &article.PublishedOn,
		&article.AuthorIDs, &summary.Authors, &summary.Reviews, &summary.AvgRating)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// # Records

func (repository *PostgresRepository) CreateAuthor(ctx context.Context, author *Author) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`,
		schema.PressAuthor.Table,
		schema.PressAuthor.FullName, schema.PressAuthor.Email, schema.PressAuthor.IsBanned,
		schema.PressAuthor.BirthYear, schema.PressAuthor.Website,
		schema.PressAuthor.ID,
	)

	err := repository.db.QueryRow(ctx, sql,
		author.FullName, author.Email, author.IsBanned, author.BirthYear, author.Website,
	).Scan(&author.ID)
	return dberr.Wrap(err, "Author", "create_author")
}

func (repository *PostgresRepository) GetAuthor(ctx context.Context, id int64) (*Author, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s au WHERE au.%s = $1`, authorColumns, schema.PressAuthor.Table, schema.PressAuthor.ID)

	author := &Author{}
	if err := scanAuthor(repository.db.QueryRow(ctx, sql, id), author); err != nil {
		return nil, dberr.Wrap(err, "Author", "get_author")
	}
	return author, nil
}

func (repository *PostgresRepository) CreateArticle(ctx context.Context, article *Article) error {
	insertArticle := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, COALESCE($4::timestamptz, now()))
		RETURNING %s, %s
	`,
		schema.Article.Table,
		schema.Article.Title, schema.Article.Content, schema.Article.Category, schema.Article.PublishedOn,
		schema.Article.ID, schema.Article.PublishedOn,
	)
	insertAuthors := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`, schema.ArticleAuthor.Table, schema.ArticleAuthor.ArticleID, schema.ArticleAuthor.AuthorID)

	err := postgres.WithTx(ctx, repository.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertArticle,
			article.Title, article.Content, article.Category, pointer.NonZero(article.PublishedOn),
		).Scan(&article.ID, &article.PublishedOn); err != nil {
			return err
		}

		if len(article.AuthorIDs) == 0 {
			article.AuthorIDs = []int64{}
			return nil
		}
		_, err := tx.Exec(ctx, insertAuthors, article.ID, article.AuthorIDs)
		return err
	})
	return dberr.Wrap(err, "Article", "create_article")
}

func (repository *PostgresRepository) GetArticle(ctx context.Context, id int64) (*Article, error) {
	sql := articleSummary + fmt.Sprintf(` WHERE ar.%s = $1`, schema.Article.ID)

	summary, err := scanSummary(repository.db.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Article", "get_article")
	}
	if summary == nil {
		return nil, dberr.Wrap(pgx.ErrNoRows, "Article", "get_article")
	}
	return &summary.Article, nil
}

func (repository *PostgresRepository) CreateReview(ctx context.Context, review *Review) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, COALESCE($5::timestamptz, now()))
		RETURNING %s, %s
	`,
		schema.Review.Table,
		schema.Review.Content, schema.Review.Rating, schema.Review.AuthorID, schema.Review.ArticleID, schema.Review.PublishedOn,
		schema.Review.ID, schema.Review.PublishedOn,
	)

	err := repository.db.QueryRow(ctx, sql,
		review.Content, review.Rating, review.AuthorID, review.ArticleID, pointer.NonZero(review.PublishedOn),
	).Scan(&review.ID, &review.PublishedOn)
	return dberr.Wrap(err, "Review", "create_review")
}

func (repository *PostgresRepository) GetReview(ctx context.Context, id int64) (*Review, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s r WHERE r.%s = $1`, reviewColumns, schema.Review.Table, schema.Review.ID)

	review := &Review{}
	err := repository.db.QueryRow(ctx, sql, id).Scan(
		&review.ID, &review.Content, &review.Rating, &review.AuthorID, &review.ArticleID, &review.PublishedOn,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Review", "get_review")
	}
	return review, nil
}

// # Reports

func (repository *PostgresRepository) SearchAuthors(ctx context.Context, filter AuthorFilter) ([]Author, error) {
	var conditions []string
	var args []any

	if filter.Name != nil {
		args = append(args, query.Contains(*filter.Name))
		conditions = append(conditions, fmt.Sprintf("au.%s ILIKE $%d", schema.PressAuthor.FullName, len(args)))
	}
	if filter.Email != nil {
		args = append(args, query.Contains(*filter.Email))
		conditions = append(conditions, fmt.Sprintf("au.%s ILIKE $%d", schema.PressAuthor.Email, len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	sql := fmt.Sprintf(`
		SELECT %s FROM %s au
		%s
		ORDER BY au.%s %s DESC, au.%s
	`, authorColumns, schema.PressAuthor.Table, where, schema.PressAuthor.FullName, schema.CollateC, schema.PressAuthor.ID)

	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Author", "search_authors")
	}
	defer rows.Close()

	var authors []Author
	for rows.Next() {
		var author Author
		if err := scanAuthor(rows, &author); err != nil {
			return nil, dberr.Wrap(err, "Author", "scan_author")
		}
		authors = append(authors, author)
	}
	return authors, dberr.Wrap(rows.Err(), "Author", "search_authors")
}

func (repository *PostgresRepository) AuthorsByArticleCount(ctx context.Context, limit int) ([]AuthorCount, error) {
	count := fmt.Sprintf(`(SELECT COUNT(*) FROM %s aa WHERE aa.%s = au.%s)`,
		schema.ArticleAuthor.Table, schema.ArticleAuthor.AuthorID, schema.PressAuthor.ID)
	return repository.rankAuthors(ctx, "authors_by_article_count", count, limit)
}

func (repository *PostgresRepository) AuthorsByReviewCount(ctx context.Context, limit int) ([]AuthorCount, error) {
	count := fmt.Sprintf(`(SELECT COUNT(*) FROM %s r WHERE r.%s = au.%s)`,
		schema.Review.Table, schema.Review.AuthorID, schema.PressAuthor.ID)
	return repository.rankAuthors(ctx, "authors_by_review_count", count, limit)
}

// rankAuthors orders every author by the correlated count subquery desc, then email.
func (repository *PostgresRepository) rankAuthors(ctx context.Context, action, count string, limit int) ([]AuthorCount, error) {
	sql := fmt.Sprintf(`
		SELECT %s, %s AS total
		FROM %s au
		ORDER BY total DESC, au.%s %s, au.%s
		LIMIT $1
	`, authorColumns, count, schema.PressAuthor.Table, schema.PressAuthor.Email, schema.CollateC, schema.PressAuthor.ID)

	rows, err := repository.db.Query(ctx, sql, schema.Limit(limit))
	if err != nil {
		return nil, dberr.Wrap(err, "Author", action)
	}
	defer rows.Close()

	var result []AuthorCount
	for rows.Next() {
		var row AuthorCount
		if err := scanAuthor(rows, &row.Author, &row.Count); err != nil {
			return nil, dberr.Wrap(err, "Author", "scan_author_count")
		}
		result = append(result, row)
	}
	return result, dberr.Wrap(rows.Err(), "Author", action)
}

func (repository *PostgresRepository) LatestArticle(ctx context.Context) (*ArticleSummary, error) {
	sql := articleSummary + fmt.Sprintf(` ORDER BY ar.%s DESC, ar.%s DESC LIMIT 1`, schema.Article.PublishedOn, schema.Article.ID)

	summary, err := scanSummary(repository.db.QueryRow(ctx, sql))
	return summary, dberr.Wrap(err, "Article", "latest_article")
}

func (repository *PostgresRepository) TopRatedArticle(ctx context.Context) (*ArticleSummary, error) {
	sql := articleSummary + fmt.Sprintf(`
		WHERE stats.reviews > 0
		ORDER BY stats.avg_rating DESC, ar.%s %s, ar.%s
		LIMIT 1
	`, schema.Article.Title, schema.CollateC, schema.Article.ID)

	summary, err := scanSummary(repository.db.QueryRow(ctx, sql))
	return summary, dberr.Wrap(err, "Article", "top_rated_article")
}

// # Bulk Updates

func (repository *PostgresRepository) BanAuthor(ctx context.Context, email string) (*Ban, error) {
	lockAuthor := fmt.Sprintf(`SELECT %s FROM %s au WHERE au.%s = $1 FOR UPDATE`,
		authorColumns, schema.PressAuthor.Table, schema.PressAuthor.Email)
	deleteReviews := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Review.Table, schema.Review.AuthorID)
	markBanned := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`,
		schema.PressAuthor.Table, schema.PressAuthor.IsBanned, schema.PressAuthor.ID)

	var ban *Ban
	err := postgres.WithTx(ctx, repository.db, func(tx pgx.Tx) error {
		var author Author
		err := scanAuthor(tx.QueryRow(ctx, lockAuthor, email), &author)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, deleteReviews, author.ID)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, markBanned, author.ID); err != nil {
			return err
		}

		author.IsBanned = true
		ban = &Ban{Author: author, ReviewsDeleted: int(tag.RowsAffected())}
		return nil
	})
	if err != nil {
		return nil, dberr.Wrap(err, "Author", "ban_author")
	}
	return ban, nil
}
