package usecase

import (
	"context"
	"testing"

	"filmfeed/internal/data/entity"
	"filmfeed/internal/data/repository"
	"filmfeed/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockWatchlistRepo struct {
	mock.Mock
}

func (m *MockWatchlistRepo) Create(ctx context.Context, entry *entity.WatchlistEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWatchlistRepo) FindByUserID(ctx context.Context, userID int64) ([]*entity.WatchlistEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestWatchlistAdd(t *testing.T) {
	repo := new(MockWatchlistRepo)
	svc := NewWatchlistService(repo, zap.NewNop())

	var saved *entity.WatchlistEntry
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.WatchlistEntry) }).
		Return(nil).Once()

	err := svc.Add(context.Background(), &request.AddWatchlistRequest{
		Title:       "Heat",
		Poster:      "https://image.tmdb.org/t/p/w500/heat.jpg",
		ReleaseYear: "1995",
		UserID:      3,
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, "Heat", saved.Title)
	assert.Equal(t, int64(3), saved.UserID)
	repo.AssertExpectations(t)
}

func TestWatchlistShow(t *testing.T) {
	repo := new(MockWatchlistRepo)
	svc := NewWatchlistService(repo, zap.NewNop())

	entries := []*entity.WatchlistEntry{
		{ID: 1, Title: "Heat", Poster: "p1", ReleaseYear: "1995", UserID: 3},
		{ID: 2, Title: "Heat", Poster: "p1", ReleaseYear: "1995", UserID: 3}, // duplicates allowed
	}
	repo.On("FindByUserID", mock.Anything, int64(3)).Return(entries, nil).Once()

	resp, err := svc.Show(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, int64(1), resp[0].ID)
	assert.Equal(t, "1995", resp[0].ReleaseYear)
}

func TestWatchlistDelete_NotFound(t *testing.T) {
	repo := new(MockWatchlistRepo)
	svc := NewWatchlistService(repo, zap.NewNop())

	repo.On("Delete", mock.Anything, int64(99)).Return(repository.ErrNotFound).Once()

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestWatchlistDelete(t *testing.T) {
	repo := new(MockWatchlistRepo)
	svc := NewWatchlistService(repo, zap.NewNop())

	repo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	err := svc.Delete(context.Background(), 1)
	assert.NoError(t, err)
}
