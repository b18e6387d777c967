package repository

import (
	"context"
	"fmt"

	"filmfeed/internal/data/entity"
	"filmfeed/pkg/database"

	"go.uber.org/zap"
)

type WatchlistRepository interface {
	Create(ctx context.Context, entry *entity.WatchlistEntry) error
	FindByUserID(ctx context.Context, userID int64) ([]*entity.WatchlistEntry, error)
	Delete(ctx context.Context, id int64) error
}

type watchlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWatchlistRepository(db database.PgxIface, log *zap.Logger) WatchlistRepository {
	return &watchlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "watchlist")),
	}
}

// Create is an unconditional insert; the same movie may be saved twice.
func (r *watchlistRepository) Create(ctx context.Context, entry *entity.WatchlistEntry) error {
	query := `
		INSERT INTO watchlists (title, poster, release_year, user_id)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		entry.Title,
		entry.Poster,
		entry.ReleaseYear,
		entry.UserID,
	)

	if err != nil {
		r.log.Error("Failed to add watchlist entry",
			zap.Error(err),
			zap.String("title", entry.Title),
			zap.Int64("user_id", entry.UserID),
		)
		return fmt.Errorf("add watchlist entry %q for user %d: %w", entry.Title, entry.UserID, err)
	}

	return nil
}

func (r *watchlistRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.WatchlistEntry, error) {
	query := `
		SELECT id, title, poster, release_year, user_id
		FROM watchlists
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find watchlist entries",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find watchlist for user %d: %w", userID, err)
	}
	defer rows.Close()

	var entries []*entity.WatchlistEntry
	for rows.Next() {
		var entry entity.WatchlistEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Title,
			&entry.Poster,
			&entry.ReleaseYear,
			&entry.UserID,
		)
		if err != nil {
			r.log.Error("Failed to scan watchlist row", zap.Error(err))
			return nil, fmt.Errorf("scan watchlist row: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate watchlist rows: %w", err)
	}

	return entries, nil
}

// Delete removes an entry by id. No ownership check: the route never
// carried a user id for deletes.
func (r *watchlistRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM watchlists WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete watchlist entry",
			zap.Error(err),
			zap.Int64("entry_id", id),
		)
		return fmt.Errorf("delete watchlist entry %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
