package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_NormalizeSlug(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		slug     string
		expected string
	}{
		{
			name:     "empty slug falls back to title",
			title:    "Men's Chill Crew Neck",
			slug:     "",
			expected: "mens_chill_crew_neck",
		},
		{
			name:     "explicit slug is canonicalized",
			title:    "Some Title",
			slug:     "Custom Slug's Value",
			expected: "custom_slugs_value",
		},
		{
			name:     "already canonical slug is unchanged",
			title:    "Some Title",
			slug:     "already_canonical",
			expected: "already_canonical",
		},
		{
			name:     "uppercase is lowered",
			title:    "T-Shirt",
			slug:     "T-SHIRT",
			expected: "t-shirt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := &Product{Title: tt.title, Slug: tt.slug}
			product.NormalizeSlug()

			assert.Equal(t, tt.expected, product.Slug)
		})
	}
}
