package products

import (
	"context"
	"net/http"

	"github.com/mytheresa/product-catalog/app/api"
	"github.com/mytheresa/product-catalog/models"
)

type ProductProvider interface {
	CreateProduct(ctx context.Context, in models.ProductCreate) (*models.Product, error)
	ListProducts(ctx context.Context, q models.ProductQuery) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) (*models.Product, error)
}

type ProductHandler struct {
	repo ProductProvider
}

func NewProductHandler(r ProductProvider) *ProductHandler {
	return &ProductHandler{
		repo: r,
	}
}

// HandleCreate handles POST /products
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) error {
	var input models.ProductCreate
	if err := api.DecodeJSON(r, &input); err != nil {
		return err
	}

	product, err := h.repo.CreateProduct(r.Context(), input)
	if err != nil {
		return err
	}
	return api.Created(w, toProduct(product))
}

// HandleList handles GET /products
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) error {
	query, err := ParseProductQuery(r.URL.Query())
	if err != nil {
		return err
	}

	res, err := h.repo.ListProducts(r.Context(), query)
	if err != nil {
		return err
	}

	products := make([]ProductSummary, len(res))
	for i, p := range res {
		products[i] = toSummary(p)
	}
	return api.OK(w, products)
}

// HandleGet handles GET /products/{id}
func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) error {
	product, err := h.repo.GetProductByID(r.Context(), r.PathValue("id"))
	if err != nil {
		return err
	}
	return api.OK(w, toProduct(product))
}

// HandleUpdate handles PATCH /products/{id}
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) error {
	var update models.ProductUpdate
	if err := api.DecodeJSON(r, &update); err != nil {
		return err
	}

	product, err := h.repo.UpdateProduct(r.Context(), r.PathValue("id"), update)
	if err != nil {
		return err
	}
	return api.OK(w, toProduct(product))
}

// HandleDelete handles DELETE /products/{id}
func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) error {
	product, err := h.repo.DeleteProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		return err
	}
	return api.OK(w, toRecord(product))
}
