package models

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidQuery is returned when listing parameters cannot be interpreted.
var ErrInvalidQuery = errors.New("invalid query parameter")

type SortField string

const (
	SortBySalePrice SortField = "salePrice"
	SortByCreatedAt SortField = "createdAt"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

var sortColumns = map[SortField]string{
	SortBySalePrice: "sale_price",
	SortByCreatedAt: "created_at",
}

// IsValid reports whether the field is one of the sortable columns.
func (f SortField) IsValid() bool {
	_, ok := sortColumns[f]
	return ok
}

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// ProductQuery describes a product listing: filters, ordering and the page to
// return. Listing is always restricted to active products.
type ProductQuery struct {
	Search     string
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	SortBy     SortField
	SortOrder  SortOrder
	Page       int
	Limit      int
}

// DefaultProductQuery returns the newest-first first page of ten products.
func DefaultProductQuery() ProductQuery {
	return ProductQuery{
		SortBy:    SortByCreatedAt,
		SortOrder: SortDesc,
		Page:      DefaultPage,
		Limit:     DefaultLimit,
	}
}

// Offset returns the number of rows before the requested page. It saturates at
// math.MaxInt instead of overflowing into a negative offset.
func (q ProductQuery) Offset() int {
	page, limit := q.pageAndLimit()
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// pageAndLimit returns Page and Limit with non-positive values replaced by the defaults.
func (q ProductQuery) pageAndLimit() (int, int) {
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// Scopes translates the query into GORM scopes on the products table.
func (q ProductQuery) Scopes() []func(*gorm.DB) *gorm.DB {
	return []func(*gorm.DB) *gorm.DB{
		q.filter,
		q.order,
		q.paginate,
	}
}

func (q ProductQuery) filter(db *gorm.DB) *gorm.DB {
	db = db.Where("products.is_active = ?", true)

	if q.Search != "" {
		db = db.Where(`LOWER(products.name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(q.Search))+"%")
	}
	if q.CategoryID != "" {
		db = db.Where("products.category_id = ?", q.CategoryID)
	}
	if q.MinPrice != nil {
		db = db.Where("products.sale_price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		db = db.Where("products.sale_price <= ?", *q.MaxPrice)
	}
	return db
}

func (q ProductQuery) order(db *gorm.DB) *gorm.DB {
	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = sortColumns[SortByCreatedAt]
	}
	desc := q.SortOrder != SortAsc

	return db.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Table: "products", Name: column}, Desc: desc},
		{Column: clause.Column{Table: "products", Name: "id"}, Desc: desc},
	}})
}

func (q ProductQuery) paginate(db *gorm.DB) *gorm.DB {
	_, limit := q.pageAndLimit()
	return db.Offset(q.Offset()).Limit(limit)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
