package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product represents a single catalog item owned by the user who created it.
type Product struct {
	ID          uuid.UUID // The unique identifier for the product.
	Title       string    // Display title. Unique across the catalog.
	Price       float64   // Unit price. Defaults to 0.
	Description string    // Free-form description, may be empty.
	Slug        string    // URL-friendly identifier derived from the title. Unique.
	Stock       int       // Units available. Defaults to 0.
	Sizes       []string  // Available sizes, e.g. ["M", "XL"].
	Gender      string    // Target audience: "men", "women", "kid" or "unisex".
	Tags        []string  // Search tags.
	Images      []string  // Image URLs, ordered as uploaded.
	UserID      uuid.UUID // The account that owns this product.
	CreatedAt   time.Time // Timestamp of when this product was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// NormalizeSlug derives the slug from the title when empty and rewrites it
// into canonical form: lowercase, spaces replaced with underscores,
// apostrophes removed. Called before every create and update.
func (p *Product) NormalizeSlug() {
	if p.Slug == "" {
		p.Slug = p.Title
	}

	p.Slug = strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(p.Slug), " ", "_"), "'", "")
}
