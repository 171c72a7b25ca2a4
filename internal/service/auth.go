package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsewear/storefront/internal/hash"
	"github.com/pulsewear/storefront/internal/models"
	"github.com/pulsewear/storefront/internal/repo"
	"github.com/pulsewear/storefront/internal/tokens"
	"github.com/pulsewear/storefront/internal/transport"
)

const accessTokenTTL = 15 * time.Minute

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password required", ErrValidation)
	}

	if _, err := s.Repo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleClient,
		Status:       models.UserStatusActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return "", nil, fmt.Errorf("%w: email and password required", ErrValidation)
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return "", nil, ErrInvalidCredentials
	}
	if user.Status == models.UserStatusBlocked {
		return "", nil, fmt.Errorf("%w: account blocked", ErrForbidden)
	}

	token, err := tokens.SignAccessToken(user.ID.String(), user.Role, s.JWTSecret, time.Now().UTC().Add(accessTokenTTL))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	return user, err
}

func (s *AuthService) AddAddress(ctx context.Context, userID uuid.UUID, req transport.AddressRequest) (*models.Address, error) {
	if req.Street == "" || req.City == "" {
		return nil, fmt.Errorf("%w: street and city required", ErrValidation)
	}

	addr := &models.Address{
		ID:      uuid.New(),
		UserID:  userID,
		Label:   req.Label,
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Country: req.Country,
	}
	if err := s.Repo.AddAddress(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}
