package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pulsewear/storefront/internal/events"
	"github.com/pulsewear/storefront/internal/logging"
	"github.com/pulsewear/storefront/internal/models"
	"github.com/pulsewear/storefront/internal/repo"
	"github.com/pulsewear/storefront/internal/service"
	"github.com/pulsewear/storefront/internal/transport"
)

type ProductHTTP struct {
	Svc      *service.CatalogService
	Producer *events.Producer
}

func (h *ProductHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicProductEvents, fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	filter := repo.ProductFilter{
		Featured:   c.QueryParam("featured") == "true",
		ActiveOnly: c.QueryParam("status") == models.ProductStatusActive,
	}
	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid categoryId")
		}
		filter.CategoryID = &id
	}

	products, err := h.Svc.ListProducts(ctx, filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		CategoryID:  req.CategoryID,
		Brand:       req.Brand,
		Collection:  req.Collection,
		Status:      req.Status,
		Featured:    req.Featured,
		CreatedAt:   time.Now().UTC(),
	}
	for _, v := range req.Variations {
		product.Variations = append(product.Variations, models.ProductVariation{
			Size:  v.Size,
			Color: v.Color,
			SKU:   v.SKU,
			Stock: v.Stock,
		})
	}

	if err := h.Svc.CreateProduct(ctx, product); err != nil {
		he := httpError(err)
		l.Warn("create_product_error", "status", he.Code, "error", err)
		return he
	}

	h.publish(c, map[string]any{
		"type":      "product_created",
		"productID": product.ID.String(),
		"name":      product.Name,
	})

	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.PatchProduct(ctx, id, func(p *models.Product) error {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.SalePrice != nil {
			p.SalePrice = req.SalePrice
		}
		if req.CategoryID != nil {
			p.CategoryID = *req.CategoryID
		}
		if req.Brand != nil {
			p.Brand = *req.Brand
		}
		if req.Collection != nil {
			p.Collection = *req.Collection
		}
		if req.Status != nil {
			p.Status = *req.Status
		}
		if req.Featured != nil {
			p.Featured = *req.Featured
		}
		return nil
	})
	if err != nil {
		return httpError(err)
	}

	h.publish(c, map[string]any{
		"type":      "product_updated",
		"productID": product.ID.String(),
		"name":      product.Name,
	})

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		return httpError(err)
	}

	h.publish(c, map[string]any{
		"type":      "product_deleted",
		"productID": id.String(),
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHTTP) AddVariation(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.CreateVariationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	variation := &models.ProductVariation{
		Size:  req.Size,
		Color: req.Color,
		SKU:   req.SKU,
		Stock: req.Stock,
	}
	if err := h.Svc.AddVariation(ctx, id, variation); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, variation)
}
