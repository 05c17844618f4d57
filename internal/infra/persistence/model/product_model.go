package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string         `gorm:"type:text;unique;not null"`
	Price       float64        `gorm:"not null;default:0"`
	Description string         `gorm:"type:text"`
	Slug        string         `gorm:"type:text;unique;not null"`
	Stock       int            `gorm:"not null;default:0"`
	Sizes       pq.StringArray `gorm:"type:text[];not null"`
	Gender      string         `gorm:"type:text;not null"`
	Tags        pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Images []ProductImageModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table.
type ProductImageModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	URL       string    `gorm:"type:text;not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}
