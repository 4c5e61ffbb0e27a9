package service

import (
	"context"
	"errors"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"
	"evrental-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type userService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewUserService(userRepo repository.UserRepository, tokens security.TokenManager) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, u *domain.User, password string) error {
	hash, err := security.HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	if u.Role == "" {
		u.Role = domain.RoleRenter
	}
	if u.KYC == "" {
		u.KYC = domain.KYCPending
	}
	return s.userRepo.Create(ctx, u)
}

func (s *userService) Login(ctx context.Context, email, password string) (string, string, *domain.User, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", nil, ErrInvalidCredentials
	}
	if u.IsBlocked {
		return "", "", nil, errors.New("account is blocked")
	}
	if !security.CheckPassword(u.PasswordHash, password) {
		return "", "", nil, ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return "", "", nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(u.ID, u.Email)
	if err != nil {
		return "", "", nil, err
	}
	return access, refresh, u, nil
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) UpdateKYC(ctx context.Context, adminID, userID int32, status domain.KYCStatus) error {
	admin, err := s.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin.Role != domain.RoleAdmin && admin.Role != domain.RoleStaff {
		return errors.New("unauthorized")
	}
	return s.userRepo.UpdateKYC(ctx, userID, status)
}

func (s *userService) ListUsers(ctx context.Context, role string, page, pageSize int32) ([]domain.User, int32, error) {
	return s.userRepo.List(ctx, role, page, pageSize)
}
