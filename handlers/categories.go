// categories.go - Category CRUD handlers

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // Sentinel checks
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"storefront-backend/models" // Category and patch types
	"storefront-backend/store"  // Store errors
)

// ListCategories - GET /api/categories, sorted by name
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.store.Categories().List(c.Request.Context())
	if err != nil {
		h.fail(c, "list categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory - POST /api/categories, names are unique
func (h *Handler) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := bindBody(c, &category); err != nil { // Parse JSON input
		message(c, http.StatusBadRequest, err.Error())
		return
	}
	category.ID = ""
	if err := h.store.Categories().Create(c.Request.Context(), &category); err != nil {
		h.fail(c, "create category", err) // Duplicate names come back as 400
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory - PUT /api/categories/:id
func (h *Handler) UpdateCategory(c *gin.Context) {
	var patch models.CategoryPatch
	if err := bindBody(c, &patch); err != nil {
		message(c, http.StatusBadRequest, err.Error())
		return
	}
	category, err := h.store.Categories().Update(c.Request.Context(), c.Param("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		message(c, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		h.fail(c, "update category", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory - DELETE /api/categories/:id
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.store.Categories().Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete category", err)
		return
	}
	message(c, http.StatusOK, "Category deleted successfully")
}
