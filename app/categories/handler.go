package categories

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/mytheresa/product-catalog/app/api"
	"github.com/mytheresa/product-catalog/models"
)

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryProvider interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

func toResponse(c models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) error {
	categories, err := h.repo.GetAllCategories(r.Context())
	if err != nil {
		return err
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = toResponse(c)
	}
	return api.OK(w, response)
}

func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) error {
	category, err := h.repo.GetCategoryByID(r.Context(), r.PathValue("id"))
	if err != nil {
		return err
	}
	return api.OK(w, toResponse(*category))
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := api.DecodeJSON(r, &input); err != nil {
		return err
	}

	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: missing name", api.ErrInvalidBody)
	}

	category := &models.Category{Name: input.Name}
	if err := h.repo.CreateCategory(r.Context(), category); err != nil {
		return err
	}
	return api.Created(w, toResponse(*category))
}
