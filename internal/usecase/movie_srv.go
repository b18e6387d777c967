package usecase

import (
	"context"
	"fmt"

	"filmfeed/internal/catalog"
	"filmfeed/internal/data/entity"
	"filmfeed/internal/data/repository"
	"filmfeed/internal/dto/request"
	"filmfeed/internal/dto/response"

	"go.uber.org/zap"
)

// MovieSearcher is the catalog side of movie search; implemented by
// catalog.Client.
type MovieSearcher interface {
	Search(ctx context.Context, query string) ([]catalog.MovieSummary, error)
}

type MovieService interface {
	Search(ctx context.Context, query string) ([]catalog.MovieSummary, error)
	Rate(ctx context.Context, req *request.RateMovieRequest) (int64, error)
	HomeFeed(ctx context.Context) ([]response.FeedMovieResponse, error)
}

type movieService struct {
	ledgerRepo repository.LedgerRepository
	searcher   MovieSearcher
	log        *zap.Logger
}

func NewMovieService(ledgerRepo repository.LedgerRepository, searcher MovieSearcher, log *zap.Logger) MovieService {
	return &movieService{
		ledgerRepo: ledgerRepo,
		searcher:   searcher,
		log:        log,
	}
}

func (s *movieService) Search(ctx context.Context, query string) ([]catalog.MovieSummary, error) {
	movies, err := s.searcher.Search(ctx, query)
	if err != nil {
		s.log.Error("Catalog search failed", zap.Error(err), zap.String("query", query))
		return nil, ErrCatalogUnavailable
	}

	s.log.Debug("Catalog search",
		zap.String("query", query),
		zap.Int("results", len(movies)))

	return movies, nil
}

// Rate appends one review and one rating for the movie, creating the
// movie row on first reference. A user may rate the same movie any
// number of times.
func (s *movieService) Rate(ctx context.Context, req *request.RateMovieRequest) (int64, error) {
	movie := &entity.Movie{
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		Actors:      req.Actors,
		PosterURL:   req.Poster,
	}

	movieID, err := s.ledgerRepo.SaveRating(ctx, movie, req.Review, req.Rating, req.UserID)
	if err != nil {
		s.log.Error("Failed to save review and rating",
			zap.Error(err),
			zap.String("title", req.Title),
			zap.Int64("user_id", req.UserID),
		)
		return 0, fmt.Errorf("save rating: %w", err)
	}

	s.log.Info("Movie rated",
		zap.Int64("movie_id", movieID),
		zap.Int64("user_id", req.UserID),
		zap.Float64("rating", req.Rating))

	return movieID, nil
}

func (s *movieService) HomeFeed(ctx context.Context) ([]response.FeedMovieResponse, error) {
	movies, err := s.ledgerRepo.ListFeed(ctx)
	if err != nil {
		s.log.Error("Failed to load home feed", zap.Error(err))
		return nil, fmt.Errorf("load home feed: %w", err)
	}

	feed := make([]response.FeedMovieResponse, 0, len(movies))
	for _, m := range movies {
		feed = append(feed, response.FeedMovieResponse{
			MovieID:       m.ID,
			Title:         m.Title,
			ReleaseDate:   m.ReleaseYear,
			Actors:        emptyIfNil(m.Actors),
			Poster:        m.PosterURL,
			Reviews:       emptyIfNil(m.Reviews),
			AverageRating: averageRating(m.Ratings),
		})
	}

	return feed, nil
}

// averageRating is the arithmetic mean, 0 when no ratings exist.
func averageRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return sum / float64(len(ratings))
}

// emptyIfNil keeps JSON output as [] rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
