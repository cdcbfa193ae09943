package products

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mytheresa/product-catalog/models"
)

// --- Listing shape ---

type ProductSummary struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	SalePrice *float64        `json:"salePrice"`
	BasePrice *float64        `json:"basePrice"`
	Images    []ImageURL      `json:"images"`
	Category  CategorySummary `json:"category"`
}

type ImageURL struct {
	URL string `json:"url"`
}

type CategorySummary struct {
	Name string `json:"name"`
}

// --- Detail shape ---

// ProductRecord holds the scalar columns of a product.
type ProductRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	BasePrice   *float64  `json:"basePrice"`
	SalePrice   *float64  `json:"salePrice"`
	IsActive    bool      `json:"isActive"`
	CategoryID  string    `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Product struct {
	ProductRecord
	Category Category  `json:"category"`
	Images   []Image   `json:"images"`
	Variants []Variant `json:"variants"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Image struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"isMain"`
}

type Variant struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	SKU        string             `json:"sku"`
	Price      *float64           `json:"price"`
	Attributes []VariantAttribute `json:"attributes,omitempty"`
}

type VariantAttribute struct {
	ID             string         `json:"id"`
	AttributeValue AttributeValue `json:"attributeValue"`
}

type AttributeValue struct {
	ID        string    `json:"id"`
	Value     string    `json:"value"`
	Attribute Attribute `json:"attribute"`
}

type Attribute struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// --- Mapping ---

func toPrice(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}

func toSummary(p models.Product) ProductSummary {
	images := make([]ImageURL, len(p.Images))
	for i, img := range p.Images {
		images[i] = ImageURL{URL: img.URL}
	}
	return ProductSummary{
		ID:        p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		SalePrice: toPrice(p.SalePrice),
		BasePrice: toPrice(p.BasePrice),
		Images:    images,
		Category:  CategorySummary{Name: p.Category.Name},
	}
}

func toRecord(p *models.Product) ProductRecord {
	return ProductRecord{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		BasePrice:   toPrice(p.BasePrice),
		SalePrice:   toPrice(p.SalePrice),
		IsActive:    p.IsActive,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProduct(p *models.Product) Product {
	images := make([]Image, len(p.Images))
	for i, img := range p.Images {
		images[i] = Image{ID: img.ID, URL: img.URL, IsMain: img.IsMain}
	}

	variants := make([]Variant, len(p.Variants))
	for i, v := range p.Variants {
		var attrs []VariantAttribute
		for _, a := range v.Attributes {
			attrs = append(attrs, VariantAttribute{
				ID: a.ID,
				AttributeValue: AttributeValue{
					ID:    a.AttributeValue.ID,
					Value: a.AttributeValue.Value,
					Attribute: Attribute{
						ID:   a.AttributeValue.Attribute.ID,
						Name: a.AttributeValue.Attribute.Name,
						Type: a.AttributeValue.Attribute.Type,
					},
				},
			})
		}
		variants[i] = Variant{
			ID:         v.ID,
			Name:       v.Name,
			SKU:        v.SKU,
			Price:      toPrice(v.Price),
			Attributes: attrs,
		}
	}

	return Product{
		ProductRecord: toRecord(p),
		Category: Category{
			ID:   p.Category.ID,
			Name: p.Category.Name,
			Slug: p.Category.Slug,
		},
		Images:   images,
		Variants: variants,
	}
}
