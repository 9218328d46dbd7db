package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmad-Raza810/blog-application/internal/services"
	"github.com/Ahmad-Raza810/blog-application/pkg/utils"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	categoryService services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListCategories serves all categories with published-post counts.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccessResponse(c, http.StatusOK, "Categories fetched successfully.", categories)
}

// CreateCategory creates a new category.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusCreated, "Category created successfully.", category)
}

// DeleteCategory removes a category.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccessResponse(c, http.StatusOK, "Category deleted successfully.", nil)
}
