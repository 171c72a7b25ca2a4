package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsewear/storefront/internal/models"
	"github.com/pulsewear/storefront/internal/repo"
	"github.com/pulsewear/storefront/internal/transport"
)

type CategoryService struct {
	Repo *repo.GormRepo
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CategoryService) Create(ctx context.Context, req transport.CategoryRequest) (*models.Category, error) {
	if req.Name == "" || req.Slug == "" {
		return nil, fmt.Errorf("%w: name and slug required", ErrValidation)
	}
	status := req.Status
	if status == "" {
		status = "active"
	}

	category := &models.Category{
		ID:     uuid.New(),
		Name:   req.Name,
		Slug:   req.Slug,
		Status: status,
	}
	if err := s.Repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req transport.CategoryRequest) (*models.Category, error) {
	category, err := s.Repo.GetCategory(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: category %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Slug != "" {
		category.Slug = req.Slug
	}
	if req.Status != "" {
		category.Status = req.Status
	}

	if err := s.Repo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.DeleteCategory(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: category %s", ErrNotFound, id)
	}
	return err
}
