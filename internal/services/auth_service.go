package services

import (
	"context"

	"tripmind/internal/models/db_models"
	"tripmind/internal/models/request_models"
	"tripmind/internal/models/response_models"
	"tripmind/internal/repositories"
	"tripmind/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.LoginResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, email string) (*response_models.UserResponse, error)
}

type AuthService struct {
	userRepo repositories.UserRepositoryInterface
}

func NewAuthService(userRepo repositories.UserRepositoryInterface) AuthServiceInterface {
	return &AuthService{userRepo: userRepo}
}

func (s *AuthService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.LoginResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &db_models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         db_models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) GetProfile(ctx context.Context, email string) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *AuthService) issueToken(user *db_models.User) (*response_models.LoginResponse, error) {
	token, err := utils.CreateToken(user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &response_models.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func toUserResponse(user *db_models.User) response_models.UserResponse {
	return response_models.UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		Role:      user.Role,
	}
}
