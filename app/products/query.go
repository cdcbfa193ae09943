package products

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mytheresa/product-catalog/models"
)

// ParseProductQuery builds a listing query from URL query parameters.
// Missing parameters keep their defaults; values that cannot be interpreted
// yield an error wrapping models.ErrInvalidQuery.
func ParseProductQuery(values url.Values) (models.ProductQuery, error) {
	q := models.DefaultProductQuery()

	q.Search = values.Get("search")
	q.CategoryID = values.Get("categoryId")

	if v := values.Get("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return q, invalid("minPrice must be a number")
		}
		q.MinPrice = &d
	}
	if v := values.Get("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return q, invalid("maxPrice must be a number")
		}
		q.MaxPrice = &d
	}

	if v := values.Get("sortBy"); v != "" {
		sortBy := models.SortField(v)
		if !sortBy.IsValid() {
			return q, invalid("sortBy must be one of: salePrice, createdAt")
		}
		q.SortBy = sortBy
	}
	if v := values.Get("sortOrder"); v != "" {
		order := models.SortOrder(v)
		if !order.IsValid() {
			return q, invalid("sortOrder must be one of: asc, desc")
		}
		q.SortOrder = order
	}

	if v := values.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return q, invalid("page must be a positive integer")
		}
		q.Page = page
	}
	if v := values.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return q, invalid("limit must be a positive integer")
		}
		q.Limit = limit
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return q, invalid("page is out of range for the given limit")
	}

	return q, nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", models.ErrInvalidQuery, msg)
}
