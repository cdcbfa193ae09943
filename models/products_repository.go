package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductsRepository struct {
	db *gorm.DB
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// withRelations attaches the category, images and variants of a product.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Images").
		Preload("Variants")
}

// withVariantAttributes expands variants down to their attribute definitions.
func withVariantAttributes(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Images").
		Preload("Variants.Attributes.AttributeValue.Attribute")
}

func (r *ProductsRepository) CreateProduct(ctx context.Context, in ProductCreate) (*Product, error) {
	product := in.product()
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&product).Error; err != nil {
		return nil, err
	}
	return r.find(ctx, product.ID, withRelations)
}

// ListProducts returns one page of active products in their listing shape: only
// the main image and the category name are loaded.
func (r *ProductsRepository) ListProducts(ctx context.Context, q ProductQuery) ([]Product, error) {
	var products []Product
	err := r.db.WithContext(ctx).
		Model(&Product{}).
		Select([]string{
			"products.id",
			"products.name",
			"products.slug",
			"products.sale_price",
			"products.base_price",
			"products.category_id",
		}).
		Scopes(q.Scopes()...).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_main = ?", true).Order("product_images.id")
		}).
		Preload("Category", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	// A product flagged with several main images lists only the first by id.
	for i := range products {
		if len(products[i].Images) > 1 {
			products[i].Images = products[i].Images[:1]
		}
	}
	return products, nil
}

func (r *ProductsRepository) GetProductByID(ctx context.Context, id string) (*Product, error) {
	return r.find(ctx, id, withVariantAttributes)
}

// UpdateProduct writes the fields present in the update and returns the product
// with its relations. An update with no fields only checks the product exists.
func (r *ProductsRepository) UpdateProduct(ctx context.Context, id string, update ProductUpdate) (*Product, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	if cols := update.Columns(); len(cols) > 0 {
		if s, ok := cols["slug"]; ok && s == "" {
			cols["slug"] = id
		}
		res := r.db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrProductNotFound
		}
	}
	return r.find(ctx, id, withRelations)
}

// DeleteProduct hard-deletes a product and returns the deleted record.
func (r *ProductsRepository) DeleteProduct(ctx context.Context, id string) (*Product, error) {
	product, err := r.find(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).Delete(product)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (r *ProductsRepository) find(ctx context.Context, id string, relations func(*gorm.DB) *gorm.DB) (*Product, error) {
	query := r.db.WithContext(ctx)
	if relations != nil {
		query = query.Scopes(relations)
	}

	var product Product
	if err := query.Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}
