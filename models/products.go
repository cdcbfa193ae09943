package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the catalog.
// It belongs to one category and owns its images and variants.
type Product struct {
	ID          string              `gorm:"type:varchar(36);primaryKey"`
	Name        string              `gorm:"not null"`
	Slug        string              `gorm:"uniqueIndex;not null"`
	Description *string             `gorm:"type:text"`
	BasePrice   decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	SalePrice   decimal.NullDecimal `gorm:"type:decimal(10,2);index"`
	IsActive    bool                `gorm:"not null;index"`
	CategoryID  string              `gorm:"type:varchar(36);not null;index"`
	Category    Category            `gorm:"foreignKey:CategoryID"`
	Images      []Image             `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants    []Variant           `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time           `gorm:"index"`
	UpdatedAt   time.Time
}

func (p *Product) TableName() string {
	return "products"
}

// BeforeCreate assigns the id, and uses it as the slug when the name has none.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Slug == "" {
		p.Slug = p.ID
	}
	return nil
}

// Image is a picture of a product. At most one image per product is expected
// to be flagged as the main one.
type Image struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	ProductID string `gorm:"type:varchar(36);not null;index"`
	URL       string `gorm:"not null"`
	IsMain    bool   `gorm:"not null"`
}

func (i *Image) TableName() string {
	return "product_images"
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Variant is a purchasable version of a product, described by attribute values
// such as color or size.
type Variant struct {
	ID         string              `gorm:"type:varchar(36);primaryKey"`
	ProductID  string              `gorm:"type:varchar(36);not null;index"`
	Name       string              `gorm:"not null"`
	SKU        string              `gorm:"uniqueIndex;not null"`
	Price      decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	Attributes []VariantAttribute  `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
}

func (v *Variant) TableName() string {
	return "product_variants"
}

func (v *Variant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// VariantAttribute links a variant to one attribute value.
type VariantAttribute struct {
	ID               string         `gorm:"type:varchar(36);primaryKey"`
	VariantID        string         `gorm:"type:varchar(36);not null;index"`
	AttributeValueID string         `gorm:"type:varchar(36);not null;index"`
	AttributeValue   AttributeValue `gorm:"foreignKey:AttributeValueID"`
}

func (va *VariantAttribute) TableName() string {
	return "variant_attributes"
}

func (va *VariantAttribute) BeforeCreate(tx *gorm.DB) error {
	if va.ID == "" {
		va.ID = uuid.NewString()
	}
	return nil
}

type AttributeValue struct {
	ID          string    `gorm:"type:varchar(36);primaryKey"`
	AttributeID string    `gorm:"type:varchar(36);not null;index"`
	Value       string    `gorm:"not null"`
	Attribute   Attribute `gorm:"foreignKey:AttributeID"`
}

func (av *AttributeValue) TableName() string {
	return "attribute_values"
}

func (av *AttributeValue) BeforeCreate(tx *gorm.DB) error {
	if av.ID == "" {
		av.ID = uuid.NewString()
	}
	return nil
}

// Attribute defines a variant dimension, e.g. name "Color" with type "color".
type Attribute struct {
	ID   string `gorm:"type:varchar(36);primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
	Type string `gorm:"not null"`
}

func (a *Attribute) TableName() string {
	return "attributes"
}

func (a *Attribute) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AutoMigrate creates or updates the catalog schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Category{},
		&Product{},
		&Image{},
		&Attribute{},
		&AttributeValue{},
		&Variant{},
		&VariantAttribute{},
	)
}
