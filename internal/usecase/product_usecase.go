package usecase

import (
	"context"

	"teslo/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a catalog item.
type CreateProductInput struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Price       float64  `json:"price" validate:"gte=0"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Sizes       []string `json:"sizes" validate:"required,min=1"`
	Gender      string   `json:"gender" validate:"required,oneof=men women kid unisex"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// UpdateProductInput carries partial updates; nil fields are left untouched.
type UpdateProductInput struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Slug        *string  `json:"slug"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Sizes       []string `json:"sizes"`
	Gender      *string  `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// ListProductsInput carries pagination parameters.
type ListProductsInput struct {
	Limit  int `query:"limit" validate:"gte=0,lte=100"`
	Offset int `query:"offset" validate:"gte=0"`
}

// ProductUsecase defines the interface for catalog operations.
type ProductUsecase interface {
	// Create persists a new product owned by the given user.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// List returns a page of products.
	List(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)

	// GetByTerm resolves a product by UUID or, failing that, by slug.
	GetByTerm(ctx context.Context, term string) (*entity.Product, error)

	// Update applies a partial update to an existing product.
	Update(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error
}
