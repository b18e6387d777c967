package repository

import (
	"context"
	"fmt"

	"filmfeed/internal/data/entity"
	"filmfeed/pkg/database"

	"go.uber.org/zap"
)

type LedgerRepository interface {
	// SaveRating resolves (or creates) the movie row for the given
	// title/year pair and appends one review and one rating for it,
	// all in a single transaction. Returns the movie id.
	SaveRating(ctx context.Context, movie *entity.Movie, reviewText string, rating float64, userID int64) (int64, error)

	// ListFeed returns every movie with its review texts and rating
	// values aggregated as arrays.
	ListFeed(ctx context.Context) ([]*entity.FeedMovie, error)
}

type ledgerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLedgerRepository(db database.PgxIface, log *zap.Logger) LedgerRepository {
	return &ledgerRepository{
		db:  db,
		log: log.With(zap.String("repository", "ledger")),
	}
}

func (r *ledgerRepository) SaveRating(ctx context.Context, movie *entity.Movie, reviewText string, rating float64, userID int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return 0, fmt.Errorf("begin rating transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// The UNIQUE (title, release_year) constraint makes the upsert
	// converge on one row even when two first-time ratings race.
	movieQuery := `
		INSERT INTO movies (title, release_year, actors, poster_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (title, release_year) DO UPDATE SET title = EXCLUDED.title
		RETURNING id
	`

	var movieID int64
	err = tx.QueryRow(ctx, movieQuery,
		movie.Title,
		movie.ReleaseYear,
		movie.Actors,
		movie.PosterURL,
	).Scan(&movieID)

	if err != nil {
		r.log.Error("Failed to upsert movie",
			zap.Error(err),
			zap.String("title", movie.Title),
			zap.String("release_year", movie.ReleaseYear),
		)
		return 0, fmt.Errorf("upsert movie %q (%s): %w", movie.Title, movie.ReleaseYear, err)
	}

	reviewQuery := `
		INSERT INTO reviews (user_id, movie_id, review_text)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.Exec(ctx, reviewQuery, userID, movieID, reviewText); err != nil {
		r.log.Error("Failed to insert review",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.Int64("user_id", userID),
		)
		return 0, fmt.Errorf("insert review for movie %d: %w", movieID, err)
	}

	ratingQuery := `
		INSERT INTO ratings (user_id, movie_id, rating)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.Exec(ctx, ratingQuery, userID, movieID, rating); err != nil {
		r.log.Error("Failed to insert rating",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.Int64("user_id", userID),
		)
		return 0, fmt.Errorf("insert rating for movie %d: %w", movieID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit rating transaction",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return 0, fmt.Errorf("commit rating transaction: %w", err)
	}

	return movieID, nil
}

func (r *ledgerRepository) ListFeed(ctx context.Context) ([]*entity.FeedMovie, error) {
	// Reviews and ratings are aggregated in correlated subqueries so a
	// movie with n reviews and m ratings does not produce an n*m cross
	// product.
	query := `
		SELECT m.id, m.title, m.release_year, m.actors, m.poster_url,
		       (SELECT COALESCE(array_agg(rv.review_text ORDER BY rv.id), '{}')
		          FROM reviews rv WHERE rv.movie_id = m.id),
		       (SELECT COALESCE(array_agg(rt.rating ORDER BY rt.id), '{}')
		          FROM ratings rt WHERE rt.movie_id = m.id)
		FROM movies m
		ORDER BY m.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query home feed", zap.Error(err))
		return nil, fmt.Errorf("query home feed: %w", err)
	}
	defer rows.Close()

	var movies []*entity.FeedMovie
	for rows.Next() {
		var movie entity.FeedMovie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.ReleaseYear,
			&movie.Actors,
			&movie.PosterURL,
			&movie.Reviews,
			&movie.Ratings,
		)
		if err != nil {
			r.log.Error("Failed to scan feed row", zap.Error(err))
			return nil, fmt.Errorf("scan feed row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate feed rows: %w", err)
	}

	return movies, nil
}
