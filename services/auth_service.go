package services

import (
	"context"
	"errors"

	"storefront-api/models"
	"storefront-api/repositories"
	"storefront-api/utils"
)

var (
	ErrMissingCredentials = errors.New("missing required fields")
	ErrEmailTaken         = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password
	// so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	users     repositories.UserRepository
	jwtSecret string
}

func NewAuthService(users repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (int, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return 0, ErrMissingCredentials
	}

	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return 0, err
	}

	return user.ID, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, *models.UserSummary, error) {
	if req.Email == "" || req.Password == "" {
		return "", nil, ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.jwtSecret, user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	summary := &models.UserSummary{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}
	return token, summary, nil
}

func (s *AuthService) LoginAdmin(ctx context.Context, req models.LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", ErrMissingCredentials
	}

	admin, err := s.users.FindAdminByEmail(ctx, req.Email)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if !utils.VerifyPassword(admin.Password, req.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateAdminToken(s.jwtSecret, admin.ID, admin.Role)
}
