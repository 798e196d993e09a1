package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kumbara/internal/categories"
	"kumbara/internal/models"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categorizer *categories.Categorizer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categorizer *categories.Categorizer) *CategoryHandler {
	return &CategoryHandler{categorizer: categorizer}
}

// CategorizeRequest represents the request payload for categorizing a description
type CategorizeRequest struct {
	Description string `json:"description"`
}

// CategorizeResponse is the category assigned to a description
type CategorizeResponse struct {
	Category string `json:"category"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
}

// CategoryListResponse lists the categories in matching order
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
	Fallback   string            `json:"fallback"`
}

// ListCategories returns every category in declared order
// @Summary     List categories
// @Description List the categories with their keywords, colors and icons in matching order
// @Tags        categories
// @Produce     json
// @Success     200 {object} CategoryListResponse "Categories"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{
		Categories: h.categorizer.Categories(),
		Fallback:   h.categorizer.FallbackName(),
	})
}

// Categorize assigns a category to a free-text description
// @Summary     Categorize a description
// @Description Return the category the description would be assigned. Never fails; unmatched descriptions get the fallback category.
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CategorizeRequest true "Description"
// @Success     200 {object} CategorizeResponse "Assigned category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /categories/categorize [post]
func (h *CategoryHandler) Categorize(c *gin.Context) {
	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	name := h.categorizer.Categorize(req.Description)
	c.JSON(http.StatusOK, CategorizeResponse{
		Category: name,
		Color:    h.categorizer.ColorOf(name),
		Icon:     h.categorizer.IconOf(name),
	})
}
