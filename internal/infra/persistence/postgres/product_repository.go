package postgres

import (
	"context"

	"teslo/internal/domain/entity"
	domainerrors "teslo/internal/domain/errors"
	"teslo/internal/domain/repository"
	"teslo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product together with its images.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductConflict.WrapMessage("title or slug already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid product owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its unique ID, preloading images.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindBySlug retrieves a product by its unique slug, preloading images.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *productRepository) findOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Images").
		Where(query, arg).
		Take(&productM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// List retrieves a page of products ordered by creation time.
func (repo *productRepository) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Images").
		Order("created_at").
		Limit(limit).
		Offset(offset).
		Find(&productModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductDomain(&productModels[i]))
	}

	return products, nil
}

// Update replaces an existing product record. Images are replaced wholesale
// so the stored set always matches the entity.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&model.ProductImageModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear product images")
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(productM).Error
	})

	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductConflict.WrapMessage("title or slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Delete removes a product by its ID. Images follow via ON DELETE CASCADE.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]string, 0, len(data.Images))
	for _, img := range data.Images {
		images = append(images, img.URL)
	}

	return &entity.Product{
		ID:          data.ID,
		Title:       data.Title,
		Price:       data.Price,
		Description: data.Description,
		Slug:        data.Slug,
		Stock:       data.Stock,
		Sizes:       []string(data.Sizes),
		Gender:      data.Gender,
		Tags:        []string(data.Tags),
		Images:      images,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
// CreatedAt must survive the round trip: Update saves every column, so a
// zero value here would rewrite the stored creation timestamp.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	images := make([]model.ProductImageModel, 0, len(data.Images))
	for _, url := range data.Images {
		images = append(images, model.ProductImageModel{URL: url, ProductID: data.ID})
	}

	return &model.ProductModel{
		ID:          data.ID,
		Title:       data.Title,
		Price:       data.Price,
		Description: data.Description,
		Slug:        data.Slug,
		Stock:       data.Stock,
		Sizes:       pq.StringArray(data.Sizes),
		Gender:      data.Gender,
		Tags:        pq.StringArray(data.Tags),
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		Images:      images,
	}
}
