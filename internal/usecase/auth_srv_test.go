package usecase

import (
	"context"
	"testing"

	"filmfeed/internal/data/entity"
	"filmfeed/internal/data/repository"
	"filmfeed/internal/dto/request"
	"filmfeed/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *entity.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewAuthService(repo, zap.NewNop())

	var saved *entity.User
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.User) }).
		Return(int64(1), nil).Once()

	userID, err := svc.Register(context.Background(), &request.SignupRequest{
		Name:     "a",
		Email:    "a@x.com",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)

	require.NotNil(t, saved)
	assert.NotEqual(t, "pw", saved.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("pw", saved.PasswordHash))
	repo.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewAuthService(repo, zap.NewNop())

	repo.On("Create", mock.Anything, mock.Anything).
		Return(int64(0), repository.ErrConflict).Once()

	_, err := svc.Register(context.Background(), &request.SignupRequest{
		Name:     "a",
		Email:    "taken@x.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("pw")
	require.NoError(t, err)
	stored := &entity.User{ID: 7, Username: "a", Email: "a@x.com", PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewAuthService(repo, zap.NewNop())
		repo.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil).Once()

		userID, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "a@x.com",
			Password: "pw",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), userID)
	})

	// Wrong password and unknown email must stay distinguishable.
	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewAuthService(repo, zap.NewNop())
		repo.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil).Once()

		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "a@x.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewAuthService(repo, zap.NewNop())
		repo.On("FindByEmail", mock.Anything, "nobody@x.com").
			Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "nobody@x.com",
			Password: "pw",
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}
