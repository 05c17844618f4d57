package impl

import (
	"context"
	"log/slog"

	"teslo/internal/domain/entity"
	domainerrors "teslo/internal/domain/errors"
	"teslo/internal/domain/repository"
	"teslo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPageSize = 10

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// Create persists a new product owned by the given user.
func (srv *productService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Title:       input.Title,
		Price:       input.Price,
		Description: input.Description,
		Slug:        input.Slug,
		Stock:       input.Stock,
		Sizes:       input.Sizes,
		Gender:      input.Gender,
		Tags:        input.Tags,
		Images:      input.Images,
		UserID:      ownerID,
	}
	product.NormalizeSlug()

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, domainerrors.ErrProductConflict) {
			srv.logger.Warn("Product conflict on create", slog.String("title", input.Title))

			return nil, errors.Wrap(err, "product creation failed")
		}
		srv.logger.Error("Failed to create product", slog.String("title", input.Title), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to create product")
	}

	srv.logger.Info("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// List returns a page of products, defaulting the page size when unset.
func (srv *productService) List(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	products, err := srv.productRepo.List(ctx, limit, input.Offset)
	if err != nil {
		srv.logger.Error("Failed to list products", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to list products")
	}

	return products, nil
}

// GetByTerm resolves a product by UUID first, falling back to slug lookup.
func (srv *productService) GetByTerm(ctx context.Context, term string) (*entity.Product, error) {
	var product *entity.Product
	var err error

	if id, parseErr := uuid.Parse(term); parseErr == nil {
		product, err = srv.productRepo.FindByID(ctx, id)
	} else {
		product, err = srv.productRepo.FindBySlug(ctx, term)
	}

	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(term)
		}
		srv.logger.Error("Failed to find product", slog.String("term", term), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to find product")
	}

	return product, nil
}

// Update applies a partial update and re-normalizes the slug.
func (srv *productService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(id.String())
		}
		srv.logger.Error("Failed to load product for update", slog.Any("productID", id), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to load product")
	}

	applyProductUpdate(product, input)
	product.NormalizeSlug()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, domainerrors.ErrProductConflict) {
			return nil, errors.Wrap(err, "product update failed")
		}
		srv.logger.Error("Failed to update product", slog.Any("productID", id), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to update product")
	}

	return product, nil
}

// Delete removes a product.
func (srv *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WithDetails(id.String())
		}
		srv.logger.Error("Failed to delete product", slog.Any("productID", id), slog.Any("error", err))

		return domainerrors.ErrInternalError.WrapMessage("failed to delete product")
	}

	srv.logger.Info("Product deleted", slog.Any("productID", id))

	return nil
}

func applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Slug != nil {
		product.Slug = *input.Slug
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Sizes != nil {
		product.Sizes = input.Sizes
	}
	if input.Gender != nil {
		product.Gender = *input.Gender
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}
	if input.Images != nil {
		product.Images = input.Images
	}
}
