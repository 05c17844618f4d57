// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"teslo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// Create persists a new product with its images.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a product by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// List retrieves a page of products ordered by creation time.
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)

	// Update replaces an existing product record, images included.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
