package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mytheresa/product-catalog/slug"
)

// Category represents a product category.
// It includes a unique slug derived from its human-readable name.
type Category struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	Name      string `gorm:"not null"`
	Slug      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

func (c *Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Name)
	}
	if c.Slug == "" {
		c.Slug = c.ID
	}
	return nil
}
