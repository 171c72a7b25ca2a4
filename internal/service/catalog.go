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

type CatalogService struct {
	Repo *repo.GormRepo
}

// ResolvedItem is a sellable (product, variation) pair at the moment of
// lookup: the price to charge and the stock on hand. Resolve never
// mutates anything.
type ResolvedItem struct {
	ProductID   uuid.UUID
	VariationID uuid.UUID
	SKU         string
	UnitPrice   float64
	Stock       int
}

func (s *CatalogService) Resolve(ctx context.Context, productID, variationID uuid.UUID) (*ResolvedItem, error) {
	product, err := s.Repo.GetProduct(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product %s", ErrProductUnavailable, productID)
	}
	if err != nil {
		return nil, err
	}
	if product.Status != models.ProductStatusActive {
		return nil, fmt.Errorf("%w: product %s", ErrProductUnavailable, productID)
	}

	for i := range product.Variations {
		v := &product.Variations[i]
		if v.ID == variationID {
			return &ResolvedItem{
				ProductID:   product.ID,
				VariationID: v.ID,
				SKU:         v.SKU,
				UnitPrice:   product.UnitPrice(),
				Stock:       v.Stock,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: variation %s", ErrVariationInvalid, variationID)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	return product, err
}

func (s *CatalogService) ListProducts(ctx context.Context, filter repo.ProductFilter) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, filter)
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if product.Price <= 0 {
		return fmt.Errorf("%w: price must be > 0", ErrValidation)
	}
	if product.SalePrice != nil && *product.SalePrice <= 0 {
		return fmt.Errorf("%w: sale price must be > 0", ErrValidation)
	}
	if product.Status == "" {
		product.Status = models.ProductStatusActive
	}

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	for i := range product.Variations {
		if product.Variations[i].ID == uuid.Nil {
			product.Variations[i].ID = uuid.New()
		}
		if product.Variations[i].Stock < 0 {
			return fmt.Errorf("%w: stock must be >= 0", ErrValidation)
		}
	}

	return s.Repo.CreateProduct(ctx, product)
}

func (s *CatalogService) PatchProduct(ctx context.Context, id uuid.UUID, apply func(*models.Product) error) (*models.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(product); err != nil {
		return nil, err
	}
	if product.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be > 0", ErrValidation)
	}

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.DeleteProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	return err
}

func (s *CatalogService) AddVariation(ctx context.Context, productID uuid.UUID, variation *models.ProductVariation) error {
	if variation.SKU == "" {
		return fmt.Errorf("%w: sku required", ErrValidation)
	}
	if variation.Stock < 0 {
		return fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}

	if _, err := s.GetProduct(ctx, productID); err != nil {
		return err
	}

	variation.ID = uuid.New()
	variation.ProductID = productID
	return s.Repo.AddVariation(ctx, variation)
}
