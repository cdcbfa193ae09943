package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mytheresa/product-catalog/slug"
)

// Optional is a field of a partial payload. Set reports whether the field was
// present at all; Null reports an explicit JSON null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a present, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// column returns the value to store; nil for an explicit null.
func (o Optional[T]) column() any {
	if o.Null {
		return nil
	}
	return o.Value
}

// ProductCreate holds the fields accepted when creating a product.
type ProductCreate struct {
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	BasePrice   decimal.NullDecimal `json:"basePrice"`
	SalePrice   decimal.NullDecimal `json:"salePrice"`
	IsActive    *bool               `json:"isActive"`
	CategoryID  string              `json:"categoryId"`
}

func (c ProductCreate) product() Product {
	p := Product{
		Name:        c.Name,
		Slug:        slug.Generate(c.Name),
		Description: c.Description,
		BasePrice:   c.BasePrice,
		SalePrice:   c.SalePrice,
		IsActive:    true,
		CategoryID:  c.CategoryID,
	}
	if c.IsActive != nil {
		p.IsActive = *c.IsActive
	}
	return p
}

// ErrInvalidUpdate is returned when an update clears a required product field.
var ErrInvalidUpdate = errors.New("invalid product update")

// ProductUpdate is a partial product update. Only fields that are Set are
// written; a Set name also rewrites the slug.
type ProductUpdate struct {
	Name        Optional[string]          `json:"name"`
	Description Optional[string]          `json:"description"`
	BasePrice   Optional[decimal.Decimal] `json:"basePrice"`
	SalePrice   Optional[decimal.Decimal] `json:"salePrice"`
	IsActive    Optional[bool]            `json:"isActive"`
	CategoryID  Optional[string]          `json:"categoryId"`
}

func (u *ProductUpdate) UnmarshalJSON(data []byte) error {
	type fields ProductUpdate
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*u = ProductUpdate(f)
	return u.Validate()
}

// Validate rejects explicit nulls on fields that cannot be empty.
// Only description and the prices accept null.
func (u ProductUpdate) Validate() error {
	switch {
	case u.Name.Null:
		return fmt.Errorf("%w: name cannot be null", ErrInvalidUpdate)
	case u.IsActive.Null:
		return fmt.Errorf("%w: isActive cannot be null", ErrInvalidUpdate)
	case u.CategoryID.Null:
		return fmt.Errorf("%w: categoryId cannot be null", ErrInvalidUpdate)
	}
	return nil
}

// Columns returns the column assignments for the fields present in the update.
func (u ProductUpdate) Columns() map[string]any {
	cols := make(map[string]any)

	if u.Name.Set {
		cols["name"] = u.Name.Value
		cols["slug"] = slug.Generate(u.Name.Value)
	}
	if u.Description.Set {
		cols["description"] = u.Description.column()
	}
	if u.BasePrice.Set {
		cols["base_price"] = u.BasePrice.column()
	}
	if u.SalePrice.Set {
		cols["sale_price"] = u.SalePrice.column()
	}
	if u.IsActive.Set {
		cols["is_active"] = u.IsActive.column()
	}
	if u.CategoryID.Set {
		cols["category_id"] = u.CategoryID.column()
	}

	return cols
}
