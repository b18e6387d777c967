package usecase

import (
	"context"
	"errors"
	"fmt"

	"filmfeed/internal/data/entity"
	"filmfeed/internal/data/repository"
	"filmfeed/internal/dto/request"
	"filmfeed/internal/dto/response"

	"go.uber.org/zap"
)

type WatchlistService interface {
	Add(ctx context.Context, req *request.AddWatchlistRequest) error
	Show(ctx context.Context, userID int64) ([]response.WatchlistEntryResponse, error)
	Delete(ctx context.Context, entryID int64) error
}

type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
	log           *zap.Logger
}

func NewWatchlistService(watchlistRepo repository.WatchlistRepository, log *zap.Logger) WatchlistService {
	return &watchlistService{
		watchlistRepo: watchlistRepo,
		log:           log,
	}
}

func (s *watchlistService) Add(ctx context.Context, req *request.AddWatchlistRequest) error {
	entry := &entity.WatchlistEntry{
		Title:       req.Title,
		Poster:      req.Poster,
		ReleaseYear: req.ReleaseYear,
		UserID:      req.UserID,
	}

	if err := s.watchlistRepo.Create(ctx, entry); err != nil {
		s.log.Error("Failed to add watchlist entry",
			zap.Error(err),
			zap.String("title", req.Title),
			zap.Int64("user_id", req.UserID),
		)
		return fmt.Errorf("add watchlist entry: %w", err)
	}

	s.log.Info("Watchlist entry added",
		zap.String("title", req.Title),
		zap.Int64("user_id", req.UserID))

	return nil
}

func (s *watchlistService) Show(ctx context.Context, userID int64) ([]response.WatchlistEntryResponse, error) {
	entries, err := s.watchlistRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load watchlist", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("load watchlist: %w", err)
	}

	resp := make([]response.WatchlistEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, response.WatchlistEntryToResponse(entry))
	}

	return resp, nil
}

func (s *watchlistService) Delete(ctx context.Context, entryID int64) error {
	if err := s.watchlistRepo.Delete(ctx, entryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("Watchlist entry not found", zap.Int64("entry_id", entryID))
			return ErrEntryNotFound
		}
		s.log.Error("Failed to delete watchlist entry", zap.Error(err), zap.Int64("entry_id", entryID))
		return fmt.Errorf("delete watchlist entry: %w", err)
	}

	s.log.Info("Watchlist entry deleted", zap.Int64("entry_id", entryID))
	return nil
}
