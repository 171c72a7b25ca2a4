package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsewear/storefront/internal/models"
	"github.com/pulsewear/storefront/internal/repo"
)

type CustomerService struct {
	Repo *repo.GormRepo
}

func (s *CustomerService) ListClients(ctx context.Context) ([]repo.ClientSummary, error) {
	return s.Repo.ListClients(ctx)
}

func (s *CustomerService) Block(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, models.UserStatusBlocked)
}

func (s *CustomerService) Unblock(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, models.UserStatusActive)
}

func (s *CustomerService) setStatus(ctx context.Context, id uuid.UUID, status string) error {
	err := s.Repo.SetUserStatus(ctx, id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrClientNotFound, id)
	}
	return err
}
