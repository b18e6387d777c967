package usecase

import (
	"context"
	"errors"
	"fmt"

	"filmfeed/internal/data/entity"
	"filmfeed/internal/data/repository"
	"filmfeed/internal/dto/request"
	"filmfeed/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.SignupRequest) (int64, error)
	Login(ctx context.Context, req *request.LoginRequest) (int64, error)
}

type authService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		log:      log,
	}
}

// Register hashes the password and stores the new user. No session or
// token is issued; callers keep the returned id and echo it back.
func (s *authService) Register(ctx context.Context, req *request.SignupRequest) (int64, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:     req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			s.log.Warn("Email already registered", zap.String("email", req.Email))
			return 0, ErrEmailTaken
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return 0, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", userID),
		zap.String("email", req.Email))

	return userID, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (int64, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("User not found for login", zap.String("email", req.Email))
			return 0, ErrUserNotFound
		}
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return 0, fmt.Errorf("find user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return 0, ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return user.ID, nil
}
